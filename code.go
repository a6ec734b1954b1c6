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

// Code block builders (spec.md §4.3's CodeBlock type, both the fenced and
// indented forms), grounded on blocks.go's parseCodeFence and its
// indented-code continuation rule.

package commonmark

import "strings"

// parseFencedCode collects a fenced code block starting at lines[i].
func (b *blockBuilder) parseFencedCode(lines []string, i, n, openIndent int) (*Node, int) {
	start := i
	stripped := stripIndent(lines[i], openIndent)
	f := classifyFencedCodeOpen(stripped)
	i++

	var body []string
	closed := false
	for i < n {
		line := lines[i]
		indent := indentColumns(line)
		candidate := stripIndent(line, min(indent, openIndent))
		if indent < codeBlockIndentLimit+openIndent && classifyFencedCodeClose(stripIndent(line, indent), f.char, f.n) {
			closed = true
			i++
			break
		}
		body = append(body, candidate)
		i++
	}
	_ = closed // an unclosed fence runs to the end of the input (spec.md §4.3).

	node := newNode(CodeBlockKind)
	if f.hasInfo {
		node.Info = firstInfoWord(f.info)
	}
	node.Literal = strings.Join(body, "\n")
	if len(body) > 0 {
		node.Literal += "\n"
	}
	return node, i - start
}

// firstInfoWord returns the first whitespace-delimited word of a fenced
// code block's info string, which is conventionally used as the language
// tag by renderers (spec.md §6).
func firstInfoWord(info string) string {
	info = processEscapesAndEntities(info)
	if idx := strings.IndexAny(info, " \t"); idx >= 0 {
		return info[:idx]
	}
	return info
}

// parseIndentedCode collects an indented code block: a maximal run of
// lines indented at least 4 columns, interior blank lines included as
// long as a further indented line follows.
func (b *blockBuilder) parseIndentedCode(lines []string, i, n int) (*Node, int) {
	start := i
	var body []string
	for i < n {
		if isBlankLine(lines[i]) {
			j := i
			for j < n && isBlankLine(lines[j]) {
				j++
			}
			if j < n && indentColumns(lines[j]) >= codeBlockIndentLimit {
				for k := i; k < j; k++ {
					body = append(body, "")
				}
				i = j
				continue
			}
			break
		}
		if indentColumns(lines[i]) < codeBlockIndentLimit {
			break
		}
		body = append(body, stripIndent(lines[i], codeBlockIndentLimit))
		i++
	}
	for len(body) > 0 && body[len(body)-1] == "" {
		body = body[:len(body)-1]
	}
	node := newNode(CodeBlockKind)
	node.Literal = strings.Join(body, "\n")
	if len(body) > 0 {
		node.Literal += "\n"
	}
	return node, i - start
}
