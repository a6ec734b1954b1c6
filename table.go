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

// GFM pipe table builder: a supplemented feature (spec.md §3's optional
// Table/TableRow/TableCell node kinds, promoted to a required block type
// here) with no teacher equivalent in the Go example pack; the block-open/
// continuation logic follows the same dispatch-table pattern as the other
// block builders in this package, and cell-splitting/alignment semantics
// are grounded on the table fixtures in original_source/examples/
// test_tables.rs (basic tables, ":---:"/":---"/"---:" alignment markers,
// inline formatting inside cells, and escaped "\|" pipes).

package commonmark

import "strings"

// isTableStart reports whether lines[i] begins a GFM pipe table: a line
// containing an unescaped '|', immediately followed by a delimiter row of
// the form "|?:?-+:?|?" cells.
func isTableStart(lines []string, i, n, indent int) bool {
	if i+1 >= n {
		return false
	}
	header := stripIndent(lines[i], indent)
	if strings.TrimSpace(header) == "" {
		return false
	}
	hasPipe := false
	for k := 0; k < len(header) && !hasPipe; k++ {
		if header[k] == '\\' {
			k++
			continue
		}
		hasPipe = header[k] == '|'
	}
	if !hasPipe {
		return false
	}
	delimIndent := indentColumns(lines[i+1])
	if delimIndent >= codeBlockIndentLimit {
		return false
	}
	delim := stripIndent(lines[i+1], delimIndent)
	_, ok := parseTableDelimiterRow(delim)
	return ok
}

// parseTableDelimiterRow parses a table's second line (the alignment row)
// into one CellAlignment per column, reporting false if the line is not a
// valid delimiter row.
func parseTableDelimiterRow(line string) ([]CellAlignment, bool) {
	cells := splitTableRow(line)
	if len(cells) == 0 {
		return nil, false
	}
	aligns := make([]CellAlignment, len(cells))
	for i, cell := range cells {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			return nil, false
		}
		left := strings.HasPrefix(cell, ":")
		right := strings.HasSuffix(cell, ":")
		core := strings.Trim(cell, ":")
		if core == "" || strings.Trim(core, "-") != "" {
			return nil, false
		}
		switch {
		case left && right:
			aligns[i] = AlignCenter
		case left:
			aligns[i] = AlignLeft
		case right:
			aligns[i] = AlignRight
		default:
			aligns[i] = AlignNone
		}
	}
	return aligns, true
}

// splitTableRow splits a pipe-table row into its cell texts, honoring
// backslash-escaped pipes and leading/trailing pipe delimiters.
func splitTableRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, unescapedTrailingPipe(line))
	var cells []string
	var cur strings.Builder
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\\':
			cur.WriteByte(line[i])
			if i+1 < len(line) {
				cur.WriteByte(line[i+1])
				i++
			}
		case '|':
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(line[i])
		}
	}
	cells = append(cells, strings.TrimSpace(cur.String()))
	return cells
}

// unescapedTrailingPipe returns "|" if line ends with an unescaped pipe
// (so splitTableRow's caller can trim it), or "" otherwise.
func unescapedTrailingPipe(line string) string {
	if !strings.HasSuffix(line, "|") {
		return ""
	}
	backslashes := 0
	for i := len(line) - 2; i >= 0 && line[i] == '\\'; i-- {
		backslashes++
	}
	if backslashes%2 == 1 {
		return ""
	}
	return "|"
}

// parseTable collects a GFM pipe table starting at lines[i]: a header
// row, a delimiter row, and zero or more data rows. Data rows continue up
// to a blank line, a line indented as code, or a line without a '|' that
// could interrupt a paragraph.
func (b *blockBuilder) parseTable(lines []string, i, n int) (*Node, int) {
	start := i
	indent := indentColumns(lines[i])
	header := stripIndent(lines[i], indent)
	delim := stripIndent(lines[i+1], indentColumns(lines[i+1]))
	aligns, _ := parseTableDelimiterRow(delim)

	table := newNode(TableKind)
	table.Alignment = aligns

	headerRow := b.buildTableRow(splitTableRow(header), aligns, true)
	table.Children = append(table.Children, headerRow)
	i += 2

	for i < n {
		line := lines[i]
		if isBlankLine(line) {
			break
		}
		ind := indentColumns(line)
		if ind >= codeBlockIndentLimit {
			break
		}
		stripped := stripIndent(line, ind)
		if !strings.ContainsRune(stripped, '|') && canInterruptParagraph(stripped) {
			break
		}
		row := b.buildTableRow(splitTableRow(stripped), aligns, false)
		table.Children = append(table.Children, row)
		i++
	}
	return table, i - start
}

func (b *blockBuilder) buildTableRow(cells []string, aligns []CellAlignment, header bool) *Node {
	row := newNode(TableRowKind)
	row.IsHeader = header
	for idx, text := range cells {
		cell := newNode(TableCellKind)
		cell.Literal = text
		if idx < len(aligns) {
			cell.Alignment = []CellAlignment{aligns[idx]}
		}
		cell.IsHeader = header
		row.Children = append(row.Children, cell)
	}
	return row
}
