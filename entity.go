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

// HTML entity and backslash-escape decoding for link titles, destinations,
// and inline text (spec.md §4.5, §4.2). Grounded on inlines.go's entity
// handling; the named-entity table is a curated subset of the HTML5
// named character references rather than the full ~2000-entry table,
// covering the entities that appear in ordinary Markdown prose.

package commonmark

import (
	"strconv"
	"strings"
)

// isEscapableASCIIPunctuation reports whether c is one of the ASCII
// punctuation characters that may be backslash-escaped (spec.md §4.2/§9).
func isEscapableASCIIPunctuation(c byte) bool {
	return isASCIIPunctuation(c)
}

// unescapeBackslashes replaces backslash-escaped ASCII punctuation with the
// bare character, leaving other backslashes untouched.
func unescapeBackslashes(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && isEscapableASCIIPunctuation(s[i+1]) {
			sb.WriteByte(s[i+1])
			i++
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// decodeEntities replaces every named or numeric HTML entity reference in s
// with its decoded text, leaving unrecognized "&...;" sequences as-is.
func decodeEntities(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		amp := strings.IndexByte(s[i:], '&')
		if amp < 0 {
			sb.WriteString(s[i:])
			break
		}
		sb.WriteString(s[i : i+amp])
		i += amp
		if text, n, ok := decodeEntityAt(s, i); ok {
			sb.WriteString(text)
			i += n
			continue
		}
		sb.WriteByte('&')
		i++
	}
	return sb.String()
}

// decodeEntityAt attempts to decode an entity reference beginning at s[i]
// (which must be '&'). It returns the decoded text, the number of bytes
// consumed from s, and whether a valid entity was found.
func decodeEntityAt(s string, i int) (string, int, bool) {
	rest := s[i+1:]
	semi := strings.IndexByte(rest, ';')
	if semi < 0 || semi == 0 || semi > 32 {
		return "", 0, false
	}
	body := rest[:semi]
	total := 1 + semi + 1 // '&' + body + ';'

	if body[0] == '#' {
		digits := body[1:]
		var r rune
		var err error
		if len(digits) > 0 && (digits[0] == 'x' || digits[0] == 'X') {
			v, e := strconv.ParseInt(digits[1:], 16, 64)
			r, err = rune(v), e
		} else {
			v, e := strconv.ParseInt(digits, 10, 64)
			r, err = rune(v), e
		}
		if err != nil || len(digits) == 0 {
			return "", 0, false
		}
		return string(sanitizeEntityCodepoint(r)), total, true
	}

	if text, ok := namedEntities[body]; ok {
		return text, total, true
	}
	return "", 0, false
}

// sanitizeEntityCodepoint maps invalid/forbidden numeric character
// references to U+FFFD, per the HTML5 "numeric character reference end
// state" table (spec.md §9's note on disallowed code points).
func sanitizeEntityCodepoint(r rune) rune {
	switch {
	case r == 0:
		return '�'
	case r > 0x10FFFF:
		return '�'
	case r >= 0xD800 && r <= 0xDFFF:
		return '�'
	}
	return r
}

// processEscapesAndEntities applies backslash-unescaping and entity
// decoding to link title and destination text, in the order CommonMark's
// reference grammar requires: entities first, then backslash escapes are
// resolved as the text is emitted (spec.md §4.2).
func processEscapesAndEntities(s string) string {
	return unescapeBackslashes(decodeEntities(s))
}

// namedEntities is a curated subset of the HTML5 named character
// reference table, covering the entities common in ordinary prose.
var namedEntities = map[string]string{
	"amp": "&", "lt": "<", "gt": ">", "quot": "\"", "apos": "'",
	"nbsp": " ", "copy": "©", "reg": "®", "trade": "™",
	"hellip": "…", "mdash": "—", "ndash": "–",
	"lsquo": "‘", "rsquo": "’", "sbquo": "‚",
	"ldquo": "“", "rdquo": "”", "bdquo": "„",
	"times": "×", "divide": "÷", "plusmn": "±",
	"deg": "°", "micro": "µ", "para": "¶", "middot": "·",
	"laquo": "«", "raquo": "»", "iexcl": "¡", "iquest": "¿",
	"cent": "¢", "pound": "£", "yen": "¥", "euro": "€",
	"sect": "§", "dagger": "†", "Dagger": "‡", "bull": "•",
	"prime": "′", "Prime": "″",
	"frac12": "½", "frac14": "¼", "frac34": "¾",
	"sup1": "¹", "sup2": "²", "sup3": "³",
	"AElig": "Æ", "aelig": "æ", "Ccedil": "Ç", "ccedil": "ç",
	"Ntilde": "Ñ", "ntilde": "ñ", "Oslash": "Ø", "oslash": "ø",
	"szlig": "ß", "Uuml": "Ü", "uuml": "ü",
	"Ouml": "Ö", "ouml": "ö", "Auml": "Ä", "auml": "ä",
	"eacute": "é", "Eacute": "É", "egrave": "è", "Egrave": "È",
	"agrave": "à", "Agrave": "À", "acirc": "â", "Acirc": "Â",
	"ocirc": "ô", "Ocirc": "Ô", "ucirc": "û", "Ucirc": "Û",
	"alpha": "α", "Alpha": "Α", "beta": "β", "Beta": "Β",
	"gamma": "γ", "Gamma": "Γ", "delta": "δ", "Delta": "Δ",
	"epsilon": "ε", "Epsilon": "Ε", "pi": "π", "Pi": "Π",
	"sigma": "σ", "Sigma": "Σ", "omega": "ω", "Omega": "Ω",
	"theta": "θ", "Theta": "Θ", "lambda": "λ", "Lambda": "Λ",
	"mu": "μ", "phi": "φ", "Phi": "Φ",
	"larr": "←", "uarr": "↑", "rarr": "→", "darr": "↓",
	"harr": "↔", "lArr": "⇐", "rArr": "⇒",
	"forall": "∀", "part": "∂", "exist": "∃", "empty": "∅",
	"nabla": "∇", "isin": "∈", "notin": "∉", "sum": "∑",
	"minus": "−", "lowast": "∗", "radic": "√", "infin": "∞",
	"ang": "∠", "and": "∧", "or": "∨", "cap": "∩",
	"cup": "∪", "int": "∫", "there4": "∴", "sim": "∼",
	"cong": "≅", "asymp": "≈", "ne": "≠", "equiv": "≡",
	"le": "≤", "ge": "≥", "sub": "⊂", "sup": "⊃",
	"nsub": "⊄", "sube": "⊆", "supe": "⊇", "oplus": "⊕",
	"otimes": "⊗", "perp": "⊥", "sdot": "⋅",
	"spades": "♠", "clubs": "♣", "hearts": "♥", "diams": "♦",
	"loz": "◊", "star": "☆", "starf": "★",
	"check": "✓", "cross": "✗",
	"shy": "­", "ensp": " ", "emsp": " ", "thinsp": " ",
	"zwnj": "‌", "zwj": "‍", "lrm": "‎", "rlm": "‏",
	"sbull": "•", "oline": "‾", "frasl": "⁄",
	"image": "ℑ", "weierp": "℘", "real": "ℜ", "alefsym": "ℵ",
	"crarr": "↵", "infintie": "⧜",
	"ETH": "Ð", "eth": "ð", "THORN": "Þ", "thorn": "þ",
	"Yacute": "Ý", "yacute": "ý", "yuml": "ÿ", "Yuml": "Ÿ",
	"iacute": "í", "Iacute": "Í", "igrave": "ì", "Igrave": "Ì",
	"oacute": "ó", "Oacute": "Ó", "ograve": "ò", "Ograve": "Ò",
	"uacute": "ú", "Uacute": "Ú", "ugrave": "ù", "Ugrave": "Ù",
	"atilde": "ã", "Atilde": "Ã", "otilde": "õ", "Otilde": "Õ",
	"num": "#", "colon": ":", "semi": ";", "comma": ",", "period": ".",
	"excl": "!", "quest": "?", "lpar": "(", "rpar": ")", "lbrace": "{",
	"rbrace": "}", "lsqb": "[", "rsqb": "]", "plus": "+", "equals": "=",
	"commat": "@", "sol": "/", "bsol": "\\", "grave": "`", "tilde": "~",
	"verbar": "|", "ast": "*", "percnt": "%", "dollar": "$",
	"NewLine": "\n", "Tab": "\t", "space": " ",
}
