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

// HTML block builder covering all seven block types (spec.md §4.4),
// grounded on parse_html.go's htmlBlockConditions and the classifier
// table in classify.go.

package commonmark

import "strings"

// parseHTMLBlock collects an HTML block starting at lines[i], whose start
// condition is htmlBlockConditions[condIdx].
func (b *blockBuilder) parseHTMLBlock(lines []string, i, n, condIdx int) (*Node, int) {
	cond := htmlBlockConditions[condIdx]
	start := i
	var body []string
	for i < n {
		line := lines[i]
		body = append(body, line)
		i++
		if cond.end(line) {
			break
		}
		if i < n && isBlankLine(lines[i]) && condIdx >= 5 {
			// Types 6 and 7 end at the first blank line following the
			// start line (spec.md §4.4); the blank line itself is not part
			// of the block.
			break
		}
	}
	node := newNode(HTMLBlockKind)
	node.Literal = strings.Join(body, "\n")
	return node, i - start
}
