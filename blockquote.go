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

// Block quote builder (spec.md §4.3's BlockQuote block type), including
// lazy continuation of a quote's trailing paragraph, grounded on
// blocks.go's block-quote continuation matcher.

package commonmark

// parseBlockQuote collects the lines belonging to a block quote starting
// at lines[i]: every line that itself opens with '>' (after up to 3
// columns of indentation), plus any lazily-continued paragraph text that
// follows without its own '>' marker.
func (b *blockBuilder) parseBlockQuote(lines []string, i, n int) (*Node, int) {
	start := i
	var content []string
	lastWasParagraphText := false
	for i < n {
		line := lines[i]
		indent := indentColumns(line)
		if indent < codeBlockIndentLimit {
			stripped := stripIndent(line, indent)
			if classifyBlockQuoteStart(stripped) {
				rest := stripped[1:]
				if len(rest) > 0 && isSpaceOrTab(rest[0]) {
					rest = stripIndent(rest, 1)
				}
				content = append(content, rest)
				lastWasParagraphText = !isBlankLine(rest)
				i++
				continue
			}
		}
		if isBlankLine(line) {
			break
		}
		// A lazy line that is a setext underline ends the quote instead, so
		// it cannot turn the quoted paragraph into a heading.
		if indent < codeBlockIndentLimit && classifySetextUnderline(stripIndent(line, indent)) > 0 {
			break
		}
		if lastWasParagraphText && !canInterruptParagraph(stripIndent(line, indent)) {
			content = append(content, line)
			i++
			continue
		}
		break
	}
	node := newNode(BlockQuoteKind)
	node.Children = b.parseBlocks(content)
	return node, i - start
}
