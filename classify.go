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

// This file implements the Line Classifier (spec.md §4.1): a set of
// side-effect-free predicates over a single line, grounded on the
// teacher's blockStarts/blockRules matchers in blocks.go.

package commonmark

import "strings"

const codeBlockIndentLimit = 4

// atxHeading is the result of classifying a line as an ATX heading.
type atxHeading struct {
	level   int
	content string
}

// classifyATXHeading attempts to parse line (with indentation already
// stripped) as an ATX heading. Level is zero if it is not one.
// Grounded on blocks.go's parseATXHeading.
func classifyATXHeading(line string) atxHeading {
	var h atxHeading
	for h.level < len(line) && line[h.level] == '#' {
		h.level++
	}
	if h.level == 0 || h.level > 6 {
		return atxHeading{}
	}
	i := h.level
	if i >= len(line) {
		return atxHeading{level: h.level}
	}
	if !isSpaceOrTab(line[i]) {
		return atxHeading{}
	}
	rest := trimLeadingSpaceTab(line[i:])
	rest = trimTrailingSpaceTab(rest)

	// Strip an optional closing sequence of hashes, as long as it is
	// preceded by a space (or is the entire remaining content) and not
	// escaped.
	trimmed := rest
	j := len(trimmed)
	for j > 0 && trimmed[j-1] == '#' {
		j--
	}
	if j < len(trimmed) && (j == 0 || isSpaceOrTab(trimmed[j-1])) && !isEndEscaped(trimmed[:j]) {
		trimmed = trimTrailingSpaceTab(trimmed[:j])
	}
	h.content = trimmed
	return h
}

// classifyThematicBreak reports whether line (indentation stripped) is a
// thematic break. Grounded on blocks.go's parseThematicBreak.
func classifyThematicBreak(line string) bool {
	n := 0
	var want byte
	for i := 0; i < len(line); i++ {
		switch b := line[i]; b {
		case '-', '_', '*':
			if n == 0 {
				want = b
			} else if b != want {
				return false
			}
			n++
		case ' ', '\t':
			// ignore
		default:
			return false
		}
	}
	return n >= 3
}

type codeFence struct {
	char    byte // '`' or '~'
	n       int
	info    string
	hasInfo bool
}

// classifyFencedCodeOpen attempts to parse a code fence opener.
// Grounded on blocks.go's parseCodeFence.
func classifyFencedCodeOpen(line string) codeFence {
	const minConsecutive = 3
	if len(line) < minConsecutive || (line[0] != '`' && line[0] != '~') {
		return codeFence{}
	}
	f := codeFence{char: line[0], n: 1}
	for f.n < len(line) && line[f.n] == f.char {
		f.n++
	}
	if f.n < minConsecutive {
		return codeFence{}
	}
	rest := strings.TrimLeft(line[f.n:], " \t")
	rest = trimTrailingSpaceTab(rest)
	if rest != "" {
		if f.char == '`' && strings.ContainsRune(rest, '`') {
			return codeFence{}
		}
		f.info = rest
		f.hasInfo = true
	}
	return f
}

// classifyFencedCodeClose reports whether line (indentation stripped) is a
// closing fence matching the given opener.
func classifyFencedCodeClose(line string, char byte, minLen int) bool {
	n := 0
	for n < len(line) && line[n] == char {
		n++
	}
	if n < minLen {
		return false
	}
	return isBlankLine(line[n:])
}

func classifyBlockQuoteStart(line string) bool {
	return len(line) > 0 && line[0] == '>'
}

func classifyIndentedCode(line string) bool {
	return indentColumns(line) >= codeBlockIndentLimit && !isBlankLine(line)
}

type listMarker struct {
	delim byte // '-', '+', '*', '.', or ')'
	start int  // ordered list start number
	end   int  // byte length of the marker, excluding the following space; -1 if not a marker
}

func (m listMarker) isOrdered() bool {
	return m.delim == '.' || m.delim == ')'
}

// classifyListMarker attempts to parse a list marker at the beginning of
// line. Grounded on blocks.go's parseListMarker.
func classifyListMarker(line string) listMarker {
	if len(line) == 0 {
		return listMarker{end: -1}
	}
	switch c := line[0]; {
	case c == '-' || c == '+' || c == '*':
		if !hasTabOrSpacePrefixOrEOL(line[1:]) {
			return listMarker{end: -1}
		}
		return listMarker{delim: c, end: 1}
	case isASCIIDigit(c):
		n := int(c - '0')
		const maxDigits = 9
		for i := 1; i < maxDigits+1 && i < len(line); i++ {
			switch d := line[i]; {
			case isASCIIDigit(d):
				n = n*10 + int(d-'0')
			case d == '.' || d == ')':
				if !hasTabOrSpacePrefixOrEOL(line[i+1:]) {
					return listMarker{end: -1}
				}
				return listMarker{delim: d, start: n, end: i + 1}
			default:
				return listMarker{end: -1}
			}
		}
		return listMarker{end: -1}
	default:
		return listMarker{end: -1}
	}
}

// classifySetextUnderline returns the heading level (1 or 2) if line
// (indentation stripped) is a setext underline, or 0 otherwise.
func classifySetextUnderline(line string) int {
	trimmed := trimTrailingSpaceTab(line)
	if trimmed == "" {
		return 0
	}
	var level int
	switch trimmed[0] {
	case '=':
		level = 1
	case '-':
		level = 2
	default:
		return 0
	}
	for i := 1; i < len(trimmed); i++ {
		if trimmed[i] != trimmed[0] {
			return 0
		}
	}
	return level
}

// htmlBlockCondition describes one of the seven HTML-block types
// (spec.md §4.4). Grounded on parse_html.go's htmlBlockConditions.
type htmlBlockCondition struct {
	start                 func(line string) bool
	end                   func(line string) bool
	canInterruptParagraph bool
}

var htmlBlockStarters1 = []string{"<pre", "<script", "<style", "<textarea"}
var htmlBlockEnders1 = []string{"</pre>", "</script>", "</style>", "</textarea>"}

var htmlBlockStarters6 = []string{
	"address", "article", "aside", "base", "basefont", "blockquote", "body",
	"caption", "center", "col", "colgroup", "dd", "details", "dialog", "dir",
	"div", "dl", "dt", "fieldset", "figcaption", "figure", "footer", "form",
	"frame", "frameset", "h1", "h2", "h3", "h4", "h5", "h6", "head", "header",
	"hr", "html", "iframe", "legend", "li", "link", "main", "menu", "menuitem",
	"nav", "noframes", "ol", "optgroup", "option", "p", "param", "section",
	"source", "summary", "table", "tbody", "td", "tfoot", "th", "thead",
	"title", "tr", "track", "ul",
}

func hasCaseInsensitivePrefix(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return strings.EqualFold(s[:len(prefix)], prefix)
}

var htmlBlockConditions = []htmlBlockCondition{
	{ // Type 1
		start: func(line string) bool {
			for _, starter := range htmlBlockStarters1 {
				if hasCaseInsensitivePrefix(line, starter) {
					rest := line[len(starter):]
					if rest == "" || isSpaceOrTab(rest[0]) || rest[0] == '>' {
						return true
					}
				}
			}
			return false
		},
		end: func(line string) bool {
			lower := strings.ToLower(line)
			for _, ender := range htmlBlockEnders1 {
				if strings.Contains(lower, ender) {
					return true
				}
			}
			return false
		},
		canInterruptParagraph: true,
	},
	{ // Type 2: comment
		start:                 func(line string) bool { return strings.HasPrefix(line, "<!--") },
		end:                   func(line string) bool { return strings.Contains(line, "-->") },
		canInterruptParagraph: true,
	},
	{ // Type 3: processing instruction
		start:                 func(line string) bool { return strings.HasPrefix(line, "<?") },
		end:                   func(line string) bool { return strings.Contains(line, "?>") },
		canInterruptParagraph: true,
	},
	{ // Type 4: declaration
		start: func(line string) bool {
			return strings.HasPrefix(line, "<!") && len(line) >= 3 && isASCIILetter(line[2])
		},
		end:                   func(line string) bool { return strings.Contains(line, ">") },
		canInterruptParagraph: true,
	},
	{ // Type 5: CDATA
		start:                 func(line string) bool { return strings.HasPrefix(line, "<![CDATA[") },
		end:                   func(line string) bool { return strings.Contains(line, "]]>") },
		canInterruptParagraph: true,
	},
	{ // Type 6: known block tag
		start: func(line string) bool {
			rest := line
			switch {
			case strings.HasPrefix(rest, "</"):
				rest = rest[2:]
			case strings.HasPrefix(rest, "<"):
				rest = rest[1:]
			default:
				return false
			}
			for _, starter := range htmlBlockStarters6 {
				if hasCaseInsensitivePrefix(rest, starter) {
					tail := rest[len(starter):]
					if tail == "" || isSpaceOrTab(tail[0]) || tail[0] == '>' || strings.HasPrefix(tail, "/>") {
						return true
					}
				}
			}
			return false
		},
		end:                   isBlankLine,
		canInterruptParagraph: true,
	},
	{ // Type 7: complete open/closing tag, own line
		start: func(line string) bool {
			if !strings.HasPrefix(line, "<") {
				return false
			}
			var end int
			if strings.HasPrefix(line, "</") {
				end = scanHTMLClosingTag(line, 2)
			} else {
				end = scanHTMLOpenTag(line, 1)
			}
			if end < 0 {
				return false
			}
			return isBlankLine(line[end:])
		},
		end:                   isBlankLine,
		canInterruptParagraph: false,
	},
}
