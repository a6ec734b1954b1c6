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

// HTML tag scanning shared between the HTML-block type-7 classifier
// (classify.go) and the inline raw-HTML parser (inline.go). Grounded on
// parse_html.go's parseHTMLTag/parseHTMLOpenTag/parseHTMLClosingTag/
// parseHTMLAttribute, rewritten against plain string indices instead of
// the teacher's inlineByteReader cursor.

package commonmark

import "strings"

// scanHTMLTag attempts to scan a complete raw-HTML construct (open tag,
// closing tag, comment, processing instruction, declaration, or CDATA
// section) starting at s[i], which must be '<'. It returns the index just
// past the construct, or -1 if s[i:] does not begin with one.
func scanHTMLTag(s string, i int) int {
	if i >= len(s) || s[i] != '<' {
		return -1
	}
	j := i + 1
	if j >= len(s) {
		return -1
	}
	switch s[j] {
	case '?':
		// Processing instruction.
		j++
		end := strings.Index(s[j:], "?>")
		if end < 0 {
			return -1
		}
		return j + end + len("?>")
	case '!':
		j++
		rest := s[j:]
		switch {
		case rest != "" && isASCIILetter(rest[0]):
			end := strings.IndexByte(rest, '>')
			if end < 0 {
				return -1
			}
			return j + end + 1
		case strings.HasPrefix(rest, "--"):
			j += 2
			if strings.HasPrefix(s[j:], ">") || strings.HasPrefix(s[j:], "->") {
				return -1
			}
			for {
				rem := s[j:]
				if strings.HasPrefix(rem, "-->") {
					return j + len("-->")
				}
				if strings.HasPrefix(rem, "--") {
					return -1
				}
				if rem == "" {
					return -1
				}
				j++
			}
		case strings.HasPrefix(rest, "[CDATA["):
			j += len("[CDATA[")
			end := strings.Index(s[j:], "]]>")
			if end < 0 {
				return -1
			}
			return j + end + len("]]>")
		default:
			return -1
		}
	case '/':
		return scanHTMLClosingTag(s, j+1)
	default:
		return scanHTMLOpenTag(s, j)
	}
}

// scanHTMLOpenTag parses an open tag starting at s[i] (the character just
// after '<'). It returns the index just past the closing '>', or -1.
func scanHTMLOpenTag(s string, i int) int {
	j, ok := scanHTMLTagName(s, i)
	if !ok {
		return -1
	}
	for {
		j = skipSpacesAndTabsAndNewlines(s, j)
		if j >= len(s) {
			return -1
		}
		switch s[j] {
		case '/':
			j++
			if j >= len(s) || s[j] != '>' {
				return -1
			}
			return j + 1
		case '>':
			return j + 1
		}
		nj, ok := scanHTMLAttribute(s, j)
		if !ok {
			return -1
		}
		j = nj
	}
}

// scanHTMLClosingTag parses a closing tag starting at s[i] (the character
// just after "</"). It returns the index just past the closing '>', or -1.
func scanHTMLClosingTag(s string, i int) int {
	j, ok := scanHTMLTagName(s, i)
	if !ok {
		return -1
	}
	j = skipSpacesAndTabsAndNewlines(s, j)
	if j >= len(s) || s[j] != '>' {
		return -1
	}
	return j + 1
}

func scanHTMLTagName(s string, i int) (end int, ok bool) {
	if i >= len(s) || !isASCIILetter(s[i]) {
		return i, false
	}
	j := i + 1
	for j < len(s) && (isASCIILetter(s[j]) || isASCIIDigit(s[j]) || s[j] == '-') {
		j++
	}
	return j, true
}

func scanHTMLAttribute(s string, i int) (end int, ok bool) {
	if i >= len(s) {
		return i, false
	}
	c := s[i]
	if !isASCIILetter(c) && c != '_' && c != ':' {
		return i, false
	}
	j := i + 1
	for j < len(s) && (isASCIILetter(s[j]) || isASCIIDigit(s[j]) || strings.IndexByte("_.:-", s[j]) >= 0) {
		j++
	}

	// Optional attribute value.
	k := skipSpacesAndTabsAndNewlines(s, j)
	if k >= len(s) || s[k] != '=' {
		return j, true
	}
	k++
	k = skipSpacesAndTabsAndNewlines(s, k)
	if k >= len(s) {
		return i, false
	}
	switch c := s[k]; {
	case c == '\'':
		end := strings.IndexByte(s[k+1:], '\'')
		if end < 0 {
			return i, false
		}
		return k + 1 + end + 1, true
	case c == '"':
		end := strings.IndexByte(s[k+1:], '"')
		if end < 0 {
			return i, false
		}
		return k + 1 + end + 1, true
	case isUnquotedAttributeValueChar(c):
		m := k
		for m < len(s) && isUnquotedAttributeValueChar(s[m]) {
			m++
		}
		return m, true
	default:
		return i, false
	}
}

func skipSpacesAndTabsAndNewlines(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n') {
		i++
	}
	return i
}

func isUnquotedAttributeValueChar(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '"', '\'', '=', '<', '>', '`':
		return false
	default:
		return true
	}
}
