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

package commonmark_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/light-source/commonmark"
	"github.com/light-source/commonmark/internal/normhtml"
	"github.com/light-source/commonmark/internal/spec"
)

func TestSpec(t *testing.T) {
	examples, err := spec.Load()
	if err != nil {
		t.Fatal(err)
	}
	for _, ex := range examples {
		ex := ex
		name := fmt.Sprintf("%s/%d", ex.Section, ex.Example)
		t.Run(name, func(t *testing.T) {
			got, err := commonmark.MarkdownToHTML([]byte(ex.Markdown))
			if err != nil {
				t.Fatal(err)
			}
			gotNorm, err := normhtml.Normalize(got)
			if err != nil {
				t.Fatalf("normalize got output: %v", err)
			}
			wantNorm, err := normhtml.Normalize(ex.HTML)
			if err != nil {
				t.Fatalf("normalize want output: %v", err)
			}
			if diff := cmp.Diff(wantNorm, gotNorm); diff != "" {
				t.Errorf("MarkdownToHTML(%q) (-want +got):\n%s", ex.Markdown, diff)
			}
		})
	}
}
