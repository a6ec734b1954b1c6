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

// This file implements the Block Parser (spec.md §4.3): the dispatcher
// that turns a line array into the owned Node tree, grounded on the
// dispatch order of blocks.go's blockStarts/blockRules, but rewritten as
// a recursive-descent parser over line slices rather than the teacher's
// stateful "open blocks" engine, since the owned-tree data model
// (spec.md §3) has no notion of a block staying open across parser
// method calls.

package commonmark

// blockBuilder carries the state threaded through a single document
// parse: the shared reference map that every nested context's local
// reference-collector pass contributes to.
type blockBuilder struct {
	refs ReferenceMap
}

// parseDocument runs both parser passes (spec.md §4.2, §4.3) over source
// and returns the root Node along with the reference map the inline
// parser will need for link and image resolution.
func parseDocument(source []byte) (*Node, ReferenceMap) {
	refs := make(ReferenceMap)
	b := &blockBuilder{refs: refs}
	doc := newNode(DocumentKind)
	doc.Children = b.parseBlocks(splitLines(source))
	return doc, refs
}

// parseBlocks parses lines as a sequence of sibling blocks. It is called
// once for the document's top-level lines and again for every nested
// container's content lines (block quotes, list items), each time
// running its own local reference-collector pass first.
func (b *blockBuilder) parseBlocks(lines []string) []*Node {
	consumed := collectReferences(lines, b.refs)
	var out []*Node
	i, n := 0, len(lines)
	for i < n {
		if consumed[i] {
			i++
			continue
		}
		if isBlankLine(lines[i]) {
			i++
			continue
		}
		node, advance := b.parseOneBlock(lines, i, n)
		if advance <= 0 {
			advance = 1
		}
		if node != nil {
			out = append(out, node)
		}
		i += advance
	}
	return out
}

// parseOneBlock recognizes and parses a single block (and, for
// containers, everything nested inside it) starting at lines[i]. It
// returns the parsed node and the number of lines consumed.
func (b *blockBuilder) parseOneBlock(lines []string, i, n int) (*Node, int) {
	line := lines[i]
	indent := indentColumns(line)

	if indent >= codeBlockIndentLimit {
		return b.parseIndentedCode(lines, i, n)
	}
	stripped := stripIndent(line, indent)

	if classifyThematicBreak(stripped) {
		return newNode(ThematicBreakKind), 1
	}
	if h := classifyATXHeading(stripped); h.level > 0 {
		node := newNode(HeadingKind)
		node.Level = h.level
		node.Literal = h.content
		return node, 1
	}
	if classifyFencedCodeOpen(stripped).n > 0 {
		return b.parseFencedCode(lines, i, n, indent)
	}
	if classifyBlockQuoteStart(stripped) {
		return b.parseBlockQuote(lines, i, n)
	}
	if condIdx := matchHTMLBlockStart(stripped, false); condIdx >= 0 {
		return b.parseHTMLBlock(lines, i, n, condIdx)
	}
	if classifyListMarker(stripped).end >= 0 {
		return b.parseList(lines, i, n)
	}
	if isTableStart(lines, i, n, indent) {
		return b.parseTable(lines, i, n)
	}
	return b.parseParagraph(lines, i, n)
}

// matchHTMLBlockStart returns the index into htmlBlockConditions of the
// first HTML-block type whose start condition matches stripped, or -1.
// When insideParagraph is true, types that cannot interrupt a paragraph
// (type 7) are excluded.
func matchHTMLBlockStart(stripped string, insideParagraph bool) int {
	for idx, cond := range htmlBlockConditions {
		if insideParagraph && !cond.canInterruptParagraph {
			continue
		}
		if cond.start(stripped) {
			return idx
		}
	}
	return -1
}

// canInterruptParagraph reports whether stripped begins a block that may
// interrupt an open paragraph, per spec.md §4.3's "paragraph
// interruption" rule. A setext underline is deliberately excluded here:
// it is handled directly by parseParagraph's lookahead.
func canInterruptParagraph(stripped string) bool {
	if indentColumns(stripped) >= codeBlockIndentLimit {
		return false
	}
	if classifyThematicBreak(stripped) {
		return true
	}
	if classifyATXHeading(stripped).level > 0 {
		return true
	}
	if classifyFencedCodeOpen(stripped).n > 0 {
		return true
	}
	if classifyBlockQuoteStart(stripped) {
		return true
	}
	if matchHTMLBlockStart(stripped, true) >= 0 {
		return true
	}
	if m := classifyListMarker(stripped); m.end >= 0 {
		// An ordered list whose start number is not 1 cannot interrupt a
		// paragraph (spec.md §4.3).
		if m.isOrdered() && m.start != 1 {
			return false
		}
		return true
	}
	return false
}
