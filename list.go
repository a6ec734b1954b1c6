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

// List and list-item builders (spec.md §4.3's UnorderedList/OrderedList/
// ListItem types), including tight/loose determination, grounded on
// blocks.go's parseListMarker and its list-tightness bookkeeping.

package commonmark

// parseList collects a run of list items sharing the same marker kind
// (bullet character, or ordered delimiter) starting at lines[i].
func (b *blockBuilder) parseList(lines []string, i, n int) (*Node, int) {
	start := i
	firstIndent := indentColumns(lines[i])
	firstMarker := classifyListMarker(stripIndent(lines[i], firstIndent))

	node := newNode(UnorderedListKind)
	if firstMarker.isOrdered() {
		node.Kind = OrderedListKind
		node.Start = firstMarker.start
	}

	tight := true
	sawBlankBetweenItems := false
	for i < n {
		indent := indentColumns(lines[i])
		if indent >= codeBlockIndentLimit {
			break
		}
		stripped := stripIndent(lines[i], indent)
		m := classifyListMarker(stripped)
		if m.end < 0 || m.delim != firstMarker.delim {
			break
		}

		itemLines, advance, endedBlank := collectListItemLines(lines, i, n, indent, m)
		item := newNode(ListItemKind)
		item.Children = b.parseBlocks(itemLines)
		if endedBlank && i+advance < n {
			nIdx := indentColumns(lines[i+advance])
			if nIdx < codeBlockIndentLimit && classifyListMarker(stripIndent(lines[i+advance], nIdx)).end >= 0 {
				tight = false
			}
		}
		if sawBlankBetweenItems {
			tight = false
		}
		node.Children = append(node.Children, item)
		i += advance

		sawBlankBetweenItems = false
		for i < n && isBlankLine(lines[i]) {
			sawBlankBetweenItems = true
			i++
		}
		if i < n {
			nextIndent := indentColumns(lines[i])
			if nextIndent < codeBlockIndentLimit {
				nm := classifyListMarker(stripIndent(lines[i], nextIndent))
				if nm.end < 0 || nm.delim != firstMarker.delim {
					break
				}
			} else {
				break
			}
		}
	}
	node.Tight = tight
	return node, i - start
}

// collectListItemLines gathers the lines belonging to a single list item
// whose marker occupies lines[i][:marker width], including any
// continuation lines indented to the item's content column. It reports
// the item's raw content lines (with the marker and its column stripped),
// the number of source lines consumed, and whether the item's content
// ended with one or more trailing blank lines absorbed into it.
func collectListItemLines(lines []string, i, n, markerIndent int, m listMarker) ([]string, int, bool) {
	start := i
	first := stripIndent(lines[i], markerIndent)
	markerWidth := m.end
	contentCol := markerIndent + markerWidth
	afterMarker := first[markerWidth:]
	spaces := 0
	for spaces < len(afterMarker) && afterMarker[spaces] == ' ' && spaces < 4 {
		spaces++
	}
	if spaces == 0 && len(afterMarker) > 0 {
		spaces = 1
	}
	if isBlankLine(afterMarker) {
		spaces = 1
	}
	contentCol += spaces

	var content []string
	content = append(content, afterMarker[min(spaces, len(afterMarker)):])
	i++

	lastWasParagraphText := !isBlankLine(afterMarker)
	trailingBlanks := 0
	for i < n {
		line := lines[i]
		if isBlankLine(line) {
			content = append(content, "")
			i++
			trailingBlanks++
			// A second consecutive blank line ends the item.
			if i < n && isBlankLine(lines[i]) {
				break
			}
			lastWasParagraphText = false
			continue
		}
		indent := indentColumns(line)
		if indent >= contentCol {
			content = append(content, stripIndent(line, contentCol))
			lastWasParagraphText = true
			trailingBlanks = 0
			i++
			continue
		}
		if indent < codeBlockIndentLimit && classifyListMarker(stripIndent(line, indent)).end >= 0 {
			break
		}
		if lastWasParagraphText && indent < codeBlockIndentLimit && !canInterruptParagraph(stripIndent(line, indent)) {
			content = append(content, stripIndent(line, min(indent, contentCol)))
			trailingBlanks = 0
			i++
			continue
		}
		break
	}
	endedBlank := trailingBlanks > 0
	for len(content) > 0 && content[len(content)-1] == "" {
		content = content[:len(content)-1]
	}
	return content, i - start, endedBlank
}
