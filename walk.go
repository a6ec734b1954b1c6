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

package commonmark

// Visitor is called for every node a [Walk] traverses.
// If Visitor returns false, the children of n are skipped.
type Visitor func(n *Node) bool

// Walk traverses the tree rooted at n in depth-first order,
// calling visit for each node encountered.
func Walk(n *Node, visit Visitor) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, visit)
	}
}

// collectText appends the flattened text content of n and its descendants
// to dst, treating HardBreak as a single space. Used to flatten an Image's
// alt text (spec.md §3: "alt_children ... flattened to plain text by the
// renderer") and a reference link's text when it is used as the label.
func collectText(dst []byte, n *Node) []byte {
	switch n.Kind {
	case TextKind, CodeKind, HTMLInlineKind:
		dst = append(dst, n.Literal...)
	case HardBreakKind:
		dst = append(dst, ' ')
	default:
		for _, c := range n.Children {
			dst = collectText(dst, c)
		}
	}
	return dst
}

// TextContent returns the flattened plain-text content of n.
func TextContent(n *Node) string {
	return string(collectText(nil, n))
}
