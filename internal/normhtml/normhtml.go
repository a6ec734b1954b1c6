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

// Package normhtml normalizes HTML fragments for semantic comparison in
// tests, so that cosmetically different-but-equivalent HTML (differing
// attribute quoting, insignificant whitespace between block tags) still
// compares equal. Grounded on the teacher's internal/normhtml package,
// built on golang.org/x/net/html for parsing and go4.org/bytereplacer for
// the final whitespace collapse.
package normhtml

import (
	"bytes"
	"strings"

	"go4.org/bytereplacer"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// collapseWhitespace removes a single newline between a closing '>' and
// the next '<', and turns tabs into spaces, since the HTML conformance
// fixtures are not sensitive to exactly how that whitespace is formatted.
var collapseWhitespace = bytereplacer.New(
	">\n<", "><",
	"\t", " ",
)

// Normalize parses the HTML fragment s as a sequence of nodes and
// re-serializes it, so that differences in attribute quoting, character
// escaping, or self-closing tag syntax do not cause a semantically identical
// fragment to compare unequal.
func Normalize(s string) (string, error) {
	nodes, err := html.ParseFragment(strings.NewReader(s), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return string(collapseWhitespace.Replace(buf.Bytes())), nil
}
