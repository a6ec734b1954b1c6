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

// Inline Parser (spec.md §4.5): tokenizes a block's raw text into the
// Text/Code/Emphasis/Strong/Link/Image/HardBreak/HTMLInline node kinds,
// grounded on inlines.go's inline tokenizer and its link/image bracket
// handling. Emphasis resolution (delimiter.go) runs inline as each
// closing delimiter run is scanned, rather than as a separate pass over
// a finished token list, since a closer only ever needs to look backward
// at delimiters already on the stack.

package commonmark

import (
	"strings"
	"unicode/utf8"
)

// parseInlines tokenizes raw (a paragraph's or heading's joined source
// text) into a sequence of inline nodes, resolving link/image references
// against refs.
func parseInlines(raw string, refs ReferenceMap) []*Node {
	p := &inlineParser{s: raw, refs: refs}
	p.run()
	return mergeAdjacentText(p.nodes)
}

// mergeAdjacentText joins each run of consecutive Text nodes into one.
func mergeAdjacentText(nodes []*Node) []*Node {
	var out []*Node
	for _, n := range nodes {
		if k := len(out); k > 0 && n.Kind == TextKind && out[k-1].Kind == TextKind {
			out[k-1].Literal += n.Literal
			continue
		}
		out = append(out, n)
	}
	return out
}

// bracketMarker records an unmatched '[' or '![' while scanning, so a
// later ']' can look it up to attempt a link or image.
type bracketMarker struct {
	nodeIndex int  // index into p.nodes of the placeholder Text node
	image     bool
	active    bool // deactivated once enclosed by a successfully closed link
}

// delimRun records a run of '*' or '_' characters that may open and/or
// close emphasis, per the flanking rules (spec.md §4.5).
type delimRun struct {
	nodeIndex int
	char      byte
	count     int
	canOpen   bool
	canClose  bool
}

type inlineParser struct {
	s    string
	pos  int
	refs ReferenceMap

	nodes    []*Node
	brackets []*bracketMarker
	delims   []*delimRun
}

func (p *inlineParser) run() {
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		switch {
		case c == '\\':
			p.scanBackslash()
		case c == '`':
			p.scanCodeSpan()
		case c == '\n':
			p.scanLineBreak()
		case c == '<':
			p.scanAngleBracket()
		case c == '&':
			p.scanEntity()
		case c == '!' && p.pos+1 < len(p.s) && p.s[p.pos+1] == '[':
			p.pos += 2
			p.pushText("![")
			p.brackets = append(p.brackets, &bracketMarker{nodeIndex: len(p.nodes) - 1, image: true, active: true})
		case c == '[':
			p.pos++
			p.pushText("[")
			p.brackets = append(p.brackets, &bracketMarker{nodeIndex: len(p.nodes) - 1, active: true})
		case c == ']':
			p.pos++
			p.closeBracket()
		case c == '*' || c == '_':
			p.scanDelimiterRun()
		default:
			p.scanText()
		}
	}
}

// pushText appends s as a new Text node, so that every bracket and
// delimiter placeholder keeps a node of its own while scanning; adjacent
// Text nodes are merged once scanning is done (see parseInlines).
func (p *inlineParser) pushText(s string) {
	node := newNode(TextKind)
	node.Literal = s
	p.nodes = append(p.nodes, node)
}

func (p *inlineParser) pushNode(n *Node) {
	p.nodes = append(p.nodes, n)
}

// scanText consumes a run of ordinary characters up to the next special
// character, decoding entities as it goes.
func (p *inlineParser) scanText() {
	start := p.pos
	for p.pos < len(p.s) && !isInlineSpecial(p.s[p.pos]) {
		_, size := utf8.DecodeRuneInString(p.s[p.pos:])
		if size == 0 {
			size = 1
		}
		p.pos += size
	}
	p.pushText(p.s[start:p.pos])
}

// precedingRune returns the rune immediately before byte offset i in s,
// or 0 if i is at the start of s.
func precedingRune(s string, i int) rune {
	if i <= 0 {
		return 0
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return r
}

// followingRune returns the rune immediately at byte offset i in s, or 0
// if i is at or past the end of s.
func followingRune(s string, i int) rune {
	if i >= len(s) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return r
}

func isInlineSpecial(c byte) bool {
	switch c {
	case '\\', '`', '\n', '<', '&', '!', '[', ']', '*', '_':
		return true
	}
	return false
}

func (p *inlineParser) scanBackslash() {
	if p.pos+1 < len(p.s) && p.s[p.pos+1] == '\n' {
		p.pushNode(newNode(HardBreakKind))
		p.pos += 2
		return
	}
	if p.pos+1 < len(p.s) && isEscapableASCIIPunctuation(p.s[p.pos+1]) {
		p.pushText(string(p.s[p.pos+1]))
		p.pos += 2
		return
	}
	p.pushText("\\")
	p.pos++
}

func (p *inlineParser) scanEntity() {
	if text, n, ok := decodeEntityAt(p.s, p.pos); ok {
		p.pushText(text)
		p.pos += n
		return
	}
	p.pushText("&")
	p.pos++
}

// scanCodeSpan attempts to parse a backtick-delimited code span starting
// at p.pos. If no matching closing run of backticks exists, the opening
// backticks are emitted as literal text.
func (p *inlineParser) scanCodeSpan() {
	start := p.pos
	n := 0
	for p.pos < len(p.s) && p.s[p.pos] == '`' {
		n++
		p.pos++
	}
	openLen := n
	contentStart := p.pos
	for p.pos < len(p.s) {
		if p.s[p.pos] == '`' {
			runStart := p.pos
			m := 0
			for p.pos < len(p.s) && p.s[p.pos] == '`' {
				m++
				p.pos++
			}
			if m == openLen {
				content := p.s[contentStart:runStart]
				content = normalizeCodeSpanContent(content)
				node := newNode(CodeKind)
				node.Literal = content
				p.pushNode(node)
				return
			}
			continue
		}
		_, size := utf8.DecodeRuneInString(p.s[p.pos:])
		if size == 0 {
			size = 1
		}
		p.pos += size
	}
	// No closing run: the opening backticks are literal text.
	p.pos = start + openLen
	p.pushText(p.s[start:p.pos])
}

// normalizeCodeSpanContent collapses code-span line endings to spaces and
// strips a single leading and trailing space when the content is
// non-blank and framed by spaces on both sides (spec.md §4.5).
func normalizeCodeSpanContent(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) >= 2 && s[0] == ' ' && s[len(s)-1] == ' ' && strings.TrimSpace(s) != "" {
		s = s[1 : len(s)-1]
	}
	return s
}

// scanLineBreak handles a bare newline: a hard break if the preceding
// text node ends in 2+ spaces or a trailing backslash (already converted
// to a HardBreak by scanBackslash), otherwise a soft break.
func (p *inlineParser) scanLineBreak() {
	p.pos++
	if n := len(p.nodes); n > 0 && p.nodes[n-1].Kind == TextKind {
		lit := p.nodes[n-1].Literal
		trimmed := strings.TrimRight(lit, " ")
		if len(lit)-len(trimmed) >= 2 {
			p.nodes[n-1].Literal = trimmed
			p.pushNode(newNode(HardBreakKind))
			p.skipLeadingLineSpace()
			return
		}
	}
	p.pushText("\n")
	p.skipLeadingLineSpace()
}

func (p *inlineParser) skipLeadingLineSpace() {
	for p.pos < len(p.s) && p.s[p.pos] == ' ' {
		p.pos++
	}
}

// scanAngleBracket tries an autolink, then raw HTML, falling back to a
// literal '<'.
func (p *inlineParser) scanAngleBracket() {
	if dest, n, ok := scanAutolink(p.s[p.pos:]); ok {
		link := newNode(LinkKind)
		link.Destination = NormalizeURI(dest)
		text := newNode(TextKind)
		text.Literal = dest
		link.Children = []*Node{text}
		p.pushNode(link)
		p.pos += n
		return
	}
	if end := scanHTMLTag(p.s, p.pos); end >= 0 {
		node := newNode(HTMLInlineKind)
		node.Literal = p.s[p.pos:end]
		p.pushNode(node)
		p.pos = end
		return
	}
	p.pushText("<")
	p.pos++
}

// scanAutolink recognizes "<scheme:...>" and "<email>" autolinks at the
// start of s, grounded on inlines.go's autolink scanner.
func scanAutolink(s string) (dest string, n int, ok bool) {
	if len(s) == 0 || s[0] != '<' {
		return "", 0, false
	}
	end := strings.IndexByte(s, '>')
	if end < 0 {
		return "", 0, false
	}
	inner := s[1:end]
	if isURIAutolink(inner) {
		return inner, end + 1, true
	}
	if isEmailAutolink(inner) {
		return "mailto:" + inner, end + 1, true
	}
	return "", 0, false
}

func isURIAutolink(s string) bool {
	colon := strings.IndexByte(s, ':')
	if colon < 2 {
		return false
	}
	scheme := s[:colon]
	if !isASCIILetter(scheme[0]) {
		return false
	}
	for i := 1; i < len(scheme); i++ {
		c := scheme[i]
		if !isASCIILetter(c) && !isASCIIDigit(c) && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	if len(scheme) > 32 {
		return false
	}
	for i := colon + 1; i < len(s); i++ {
		if s[i] <= ' ' || s[i] == '<' {
			return false
		}
	}
	return true
}

// closeBracket handles a ']' encountered at p.pos (already consumed): it
// looks for the innermost unmatched '[' or '![' and, if found, attempts
// to complete it as an inline link/image, a reference link/image (full,
// collapsed, or shortcut form), grounded on inlines.go's bracket-closing
// logic.
func (p *inlineParser) closeBracket() {
	if len(p.brackets) == 0 {
		p.pushText("]")
		return
	}
	marker := p.brackets[len(p.brackets)-1]
	p.brackets = p.brackets[:len(p.brackets)-1]
	if !marker.active {
		p.pushText("]")
		return
	}

	contentStart := marker.nodeIndex + 1
	if contentStart > len(p.nodes) {
		contentStart = len(p.nodes)
	}

	if dest, title, titlePresent, n, ok := p.tryInlineLinkTail(); ok {
		p.finishLink(marker, contentStart, dest, title, titlePresent)
		p.pos += n
		return
	}
	if label, n, ok := p.tryReferenceLabel(); ok {
		if def, found := p.lookupReference(label, marker, contentStart); found {
			p.finishLink(marker, contentStart, def.Destination, def.Title, def.TitlePresent)
			p.pos += n
			return
		}
	}
	p.pushText("]")
}

// lookupReference resolves a reference link/image's label: an explicit
// label from "[text][label]", the collapsed form "[text][]" (which reuses
// the link text as the label), or the shortcut form "[text]" (same reuse,
// with zero consumed trailing bytes already accounted for by the caller).
func (p *inlineParser) lookupReference(label string, marker *bracketMarker, contentStart int) (LinkDefinition, bool) {
	if label == "" {
		label = TextContent(wrapChildren(p.nodes[contentStart:]))
	}
	return p.refs.Lookup(label)
}

func wrapChildren(nodes []*Node) *Node {
	n := newNode(DocumentKind)
	n.Children = nodes
	return n
}

// finishLink splices nodes[contentStart:] into the new Link/Image node's
// children, removes the bracket placeholder node, and (for links)
// deactivates any earlier bracket markers so links cannot nest.
func (p *inlineParser) finishLink(marker *bracketMarker, contentStart int, dest, title string, titlePresent bool) {
	kind := LinkKind
	if marker.image {
		kind = ImageKind
	}
	node := newNode(kind)
	node.Destination = NormalizeURI(dest)
	node.Title = title
	node.TitlePresent = titlePresent
	node.Children = append([]*Node{}, p.nodes[contentStart:]...)

	delta := len(p.nodes) - marker.nodeIndex
	p.nodes = append(p.nodes[:marker.nodeIndex], node)
	delta -= 1 // the new node itself occupies one slot

	// Delimiters that were inside the consumed content are now nested
	// inside node.Children and can never be matched again at this level
	// (CommonMark's link-closing step discards them).
	kept := p.delims[:0]
	for _, d := range p.delims {
		if d.nodeIndex >= contentStart {
			continue
		}
		if d.nodeIndex > marker.nodeIndex {
			d.nodeIndex -= delta
		}
		kept = append(kept, d)
	}
	p.delims = kept
	for _, b := range p.brackets {
		if b.nodeIndex > marker.nodeIndex {
			b.nodeIndex -= delta
		}
	}
	if !marker.image {
		for _, b := range p.brackets {
			if !b.image {
				b.active = false
			}
		}
	}
}

// tryInlineLinkTail attempts to parse "(destination "title")" starting at
// p.pos, returning the number of bytes it spans if successful.
func (p *inlineParser) tryInlineLinkTail() (dest, title string, titlePresent bool, n int, ok bool) {
	s := p.s[p.pos:]
	if len(s) == 0 || s[0] != '(' {
		return "", "", false, 0, false
	}
	i := 1
	i = skipInlineSpace(s, i)
	if i < len(s) && s[i] == ')' {
		return "", "", false, i + 1, true
	}
	destRaw, dn, ok2 := scanInlineDestination(s, i)
	if !ok2 {
		return "", "", false, 0, false
	}
	i += dn
	afterDest := i
	i = skipInlineSpace(s, i)
	hadTitleSpace := i > afterDest
	if i < len(s) && s[i] == ')' {
		return normalizeDestination(destRaw), "", false, i + 1, true
	}
	if !hadTitleSpace {
		return "", "", false, 0, false
	}
	titleRaw, tn, ok3 := scanInlineTitle(s, i)
	if !ok3 {
		return "", "", false, 0, false
	}
	i += tn
	i = skipInlineSpace(s, i)
	if i >= len(s) || s[i] != ')' {
		return "", "", false, 0, false
	}
	return normalizeDestination(destRaw), processEscapesAndEntities(titleRaw), true, i + 1, true
}

func skipInlineSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n') {
		i++
	}
	return i
}

func scanInlineDestination(s string, i int) (string, int, bool) {
	if i < len(s) && s[i] == '<' {
		start := i + 1
		j := start
		for j < len(s) {
			switch s[j] {
			case '\\':
				j += 2
				continue
			case '>':
				return s[start:j], j + 1 - i, true
			case '<', '\n':
				return "", 0, false
			}
			j++
		}
		return "", 0, false
	}
	start := i
	depth := 0
	j := i
	for j < len(s) {
		c := s[j]
		switch {
		case c == '\\':
			j += 2
			continue
		case c <= ' ':
			goto done
		case c == '(':
			depth++
		case c == ')':
			if depth == 0 {
				goto done
			}
			depth--
		}
		j++
	}
done:
	if j == start || depth != 0 {
		return "", 0, false
	}
	return s[start:j], j - i, true
}

func scanInlineTitle(s string, i int) (string, int, bool) {
	if i >= len(s) {
		return "", 0, false
	}
	open := s[i]
	var closeCh byte
	switch open {
	case '"':
		closeCh = '"'
	case '\'':
		closeCh = '\''
	case '(':
		closeCh = ')'
	default:
		return "", 0, false
	}
	start := i + 1
	j := start
	for j < len(s) {
		switch s[j] {
		case '\\':
			j += 2
			continue
		case closeCh:
			return s[start:j], j + 1 - i, true
		}
		j++
	}
	return "", 0, false
}

// tryReferenceLabel attempts to parse a trailing "[label]" (full or
// collapsed reference form) at p.pos. An empty label result with ok=true
// signals the collapsed "[]" form.
func (p *inlineParser) tryReferenceLabel() (string, int, bool) {
	s := p.s[p.pos:]
	if len(s) == 0 || s[0] != '[' {
		return "", 0, true // shortcut reference form: no "[label]" tail at all.
	}
	depth := 0
	for j := 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case '[':
			depth++
		case ']':
			if depth == 0 {
				return s[1:j], j + 1, true
			}
			depth--
		}
	}
	return "", 0, false
}

func isEmailAutolink(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	for i := 0; i < len(local); i++ {
		if local[i] <= ' ' {
			return false
		}
	}
	labels := strings.Split(domain, ".")
	if len(labels) == 0 {
		return false
	}
	for _, label := range labels {
		if label == "" || len(label) > 63 {
			return false
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for i := 0; i < len(label); i++ {
			c := label[i]
			if !isASCIILetter(c) && !isASCIIDigit(c) && c != '-' {
				return false
			}
		}
	}
	return true
}
