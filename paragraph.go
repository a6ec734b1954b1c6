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

// Paragraph block builder (spec.md §4.3's Paragraph block type), grounded
// on blocks.go's onCloseParagraph for the setext-heading lookahead.

package commonmark

import "strings"

// parseParagraph collects consecutive non-blank lines starting at
// lines[i] into a paragraph, stopping at a blank line or a line that can
// interrupt a paragraph. If the line immediately following the collected
// text is a setext underline, the result is a Heading instead.
func (b *blockBuilder) parseParagraph(lines []string, i, n int) (*Node, int) {
	start := i
	var raw []string
	for i < n {
		line := lines[i]
		if isBlankLine(line) {
			break
		}
		indent := indentColumns(line)
		stripped := stripIndent(line, indent)
		if indent < codeBlockIndentLimit {
			if len(raw) > 0 {
				if lvl := classifySetextUnderline(stripped); lvl > 0 {
					node := newNode(HeadingKind)
					node.Level = lvl
					node.Literal = joinParagraphLines(raw)
					return node, i - start + 1
				}
				if canInterruptParagraph(stripped) {
					break
				}
			}
		}
		raw = append(raw, trimLeadingSpaceTab(stripIndent(line, min(indent, codeBlockIndentLimit))))
		i++
	}
	node := newNode(ParagraphKind)
	node.Literal = joinParagraphLines(raw)
	return node, i - start
}

// joinParagraphLines joins a paragraph's raw lines into the single text
// blob the inline parser later tokenizes. Interior lines keep their
// trailing whitespace, since inline.go's hard-break scan needs to see a
// trailing two-or-more-space run before a line's newline; only the
// paragraph's last line has its trailing spaces/tabs stripped, per
// spec.md §4.4.
func joinParagraphLines(raw []string) string {
	trimmed := make([]string, len(raw))
	for i, l := range raw {
		trimmed[i] = trimLeadingSpaceTab(l)
	}
	if n := len(trimmed); n > 0 {
		trimmed[n-1] = trimTrailingSpaceTab(trimmed[n-1])
	}
	return strings.Join(trimmed, "\n")
}
