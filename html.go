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

// HTML Renderer (spec.md §6): walks a Node tree and writes the HTML
// output CommonMark and the GFM table extension specify, grounded on
// html_renderer.go's Render/AppendBlock tree walk and escapeHTML.

package commonmark

import (
	"fmt"
	"io"
	"strings"
)

// Render writes the HTML serialization of doc (a Document node returned
// by [Parse]) to w.
func Render(w io.Writer, doc *Node) error {
	var sb strings.Builder
	renderBlocks(&sb, doc.Children)
	_, err := io.WriteString(w, sb.String())
	return err
}

// MarkdownToHTML parses source as CommonMark (with the GFM table
// extension) and returns its HTML rendering.
func MarkdownToHTML(source []byte) (string, error) {
	doc := Parse(source)
	var sb strings.Builder
	renderBlocks(&sb, doc.Children)
	return sb.String(), nil
}

// resolveInlines walks the block tree replacing the raw text held in
// Paragraph, Heading, and TableCell nodes' Literal field with their
// parsed inline Children, the boundary between the Block Parser and the
// Inline Parser (spec.md §4's two-pass split).
func resolveInlines(n *Node, refs ReferenceMap) {
	switch n.Kind {
	case ParagraphKind, HeadingKind, TableCellKind:
		if n.Literal != "" || len(n.Children) == 0 {
			n.Children = parseInlines(n.Literal, refs)
			n.Literal = ""
		}
	case CodeBlockKind, HTMLBlockKind:
		return
	}
	for _, c := range n.Children {
		resolveInlines(c, refs)
	}
}

func renderBlocks(sb *strings.Builder, nodes []*Node) {
	for _, n := range nodes {
		renderBlock(sb, n)
	}
}

func renderBlock(sb *strings.Builder, n *Node) {
	switch n.Kind {
	case ParagraphKind:
		sb.WriteString("<p>")
		renderInlines(sb, n.Children)
		sb.WriteString("</p>\n")
	case HeadingKind:
		fmt.Fprintf(sb, "<h%d>", n.Level)
		renderInlines(sb, n.Children)
		fmt.Fprintf(sb, "</h%d>\n", n.Level)
	case ThematicBreakKind:
		sb.WriteString("<hr />\n")
	case CodeBlockKind:
		sb.WriteString("<pre><code")
		if n.Info != "" {
			sb.WriteString(` class="language-`)
			escapeHTML(sb, n.Info, true)
			sb.WriteByte('"')
		}
		sb.WriteByte('>')
		escapeHTML(sb, n.Literal, false)
		sb.WriteString("</code></pre>\n")
	case HTMLBlockKind:
		sb.WriteString(n.Literal)
		if !strings.HasSuffix(n.Literal, "\n") {
			sb.WriteByte('\n')
		}
	case BlockQuoteKind:
		sb.WriteString("<blockquote>\n")
		renderBlocks(sb, n.Children)
		sb.WriteString("</blockquote>\n")
	case UnorderedListKind:
		sb.WriteString("<ul>\n")
		renderListItems(sb, n)
		sb.WriteString("</ul>\n")
	case OrderedListKind:
		if n.Start != 1 {
			fmt.Fprintf(sb, "<ol start=\"%d\">\n", n.Start)
		} else {
			sb.WriteString("<ol>\n")
		}
		renderListItems(sb, n)
		sb.WriteString("</ol>\n")
	case TableKind:
		renderTable(sb, n)
	default:
		renderInlines(sb, n.Children)
	}
}

func renderListItems(sb *strings.Builder, list *Node) {
	for _, item := range list.Children {
		sb.WriteString("<li>")
		if list.Tight {
			renderTightItemContent(sb, item.Children)
		} else {
			sb.WriteByte('\n')
			renderBlocks(sb, item.Children)
		}
		sb.WriteString("</li>\n")
	}
}

// renderTightItemContent renders a tight list item's content, unwrapping
// each top-level paragraph's <p> tags (spec.md §6's tight-list rule)
// while still rendering any other nested block (a sub-list, for example)
// in full.
func renderTightItemContent(sb *strings.Builder, children []*Node) {
	for i, c := range children {
		if c.Kind == ParagraphKind {
			renderInlines(sb, c.Children)
			continue
		}
		if i == 0 {
			sb.WriteByte('\n')
		}
		renderBlock(sb, c)
	}
}

func renderTable(sb *strings.Builder, table *Node) {
	sb.WriteString("<table>\n")
	if len(table.Children) > 0 {
		sb.WriteString("<thead>\n")
		renderTableRow(sb, table.Children[0])
		sb.WriteString("</thead>\n")
	}
	if len(table.Children) > 1 {
		sb.WriteString("<tbody>\n")
		for _, row := range table.Children[1:] {
			renderTableRow(sb, row)
		}
		sb.WriteString("</tbody>\n")
	}
	sb.WriteString("</table>\n")
}

func renderTableRow(sb *strings.Builder, row *Node) {
	sb.WriteString("<tr>\n")
	tag := "td"
	if row.IsHeader {
		tag = "th"
	}
	for _, cell := range row.Children {
		sb.WriteByte('<')
		sb.WriteString(tag)
		if len(cell.Alignment) > 0 {
			switch cell.Alignment[0] {
			case AlignLeft:
				sb.WriteString(` style="text-align:left"`)
			case AlignCenter:
				sb.WriteString(` style="text-align:center"`)
			case AlignRight:
				sb.WriteString(` style="text-align:right"`)
			}
		}
		sb.WriteByte('>')
		renderInlines(sb, cell.Children)
		sb.WriteString("</")
		sb.WriteString(tag)
		sb.WriteString(">\n")
	}
	sb.WriteString("</tr>\n")
}

func renderInlines(sb *strings.Builder, nodes []*Node) {
	for _, n := range nodes {
		renderInline(sb, n)
	}
}

func renderInline(sb *strings.Builder, n *Node) {
	switch n.Kind {
	case TextKind:
		escapeHTML(sb, n.Literal, false)
	case CodeKind:
		sb.WriteString("<code>")
		escapeHTML(sb, n.Literal, false)
		sb.WriteString("</code>")
	case HardBreakKind:
		sb.WriteString("<br />\n")
	case HTMLInlineKind:
		sb.WriteString(n.Literal)
	case EmphasisKind:
		sb.WriteString("<em>")
		renderInlines(sb, n.Children)
		sb.WriteString("</em>")
	case StrongKind:
		sb.WriteString("<strong>")
		renderInlines(sb, n.Children)
		sb.WriteString("</strong>")
	case LinkKind:
		sb.WriteString(`<a href="`)
		escapeHTML(sb, n.Destination, true)
		sb.WriteByte('"')
		if n.TitlePresent {
			sb.WriteString(` title="`)
			escapeHTML(sb, n.Title, true)
			sb.WriteByte('"')
		}
		sb.WriteByte('>')
		renderInlines(sb, n.Children)
		sb.WriteString("</a>")
	case ImageKind:
		sb.WriteString(`<img src="`)
		escapeHTML(sb, n.Destination, true)
		sb.WriteString(`" alt="`)
		escapeHTML(sb, TextContent(n), true)
		sb.WriteByte('"')
		if n.TitlePresent {
			sb.WriteString(` title="`)
			escapeHTML(sb, n.Title, true)
			sb.WriteByte('"')
		}
		sb.WriteString(" />")
	default:
		renderInlines(sb, n.Children)
	}
}

// escapeHTML writes s to sb with '&', '<', '>' and '"' escaped, matching
// CommonMark's output escaping (spec.md §6). Text content and attribute
// values (attribute true) are escaped alike. Grounded on
// html_renderer.go's escapeHTML.
func escapeHTML(sb *strings.Builder, s string, attribute bool) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '"':
			sb.WriteString("&quot;")
		default:
			sb.WriteByte(s[i])
		}
	}
}
