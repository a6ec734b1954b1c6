// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Command commonmark reads a CommonMark document from standard input and
// writes its HTML rendering to standard output.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/light-source/commonmark"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "commonmark:", err)
		os.Exit(1)
	}
}

func run() error {
	source, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	html, err := commonmark.MarkdownToHTML(source)
	if err != nil {
		return fmt.Errorf("convert to HTML: %w", err)
	}
	if _, err := io.WriteString(os.Stdout, html); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
