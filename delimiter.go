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

// Delimiter Stack Processor (spec.md §4.5): flanking-rule classification
// of '*'/'_' runs and the left-to-right emphasis-resolution algorithm,
// including the "rule of 3" mod-3 constraint. Grounded on inlines.go's
// delimiter-run scanner; the teacher's own emphasis resolution lives in
// a separate pass over a finished token list, while this implementation
// resolves each closer against the stack as it is scanned, since a
// closer's match is always among delimiters already pushed.

package commonmark

// scanDelimiterRun consumes a run of identical '*' or '_' characters,
// classifies its flanking properties, pushes it onto the delimiter stack,
// and, if it can close, immediately attempts to close emphasis with it.
func (p *inlineParser) scanDelimiterRun() {
	start := p.pos
	char := p.s[p.pos]
	for p.pos < len(p.s) && p.s[p.pos] == char {
		p.pos++
	}
	run := p.s[start:p.pos]
	before := precedingRune(p.s, start)
	after := followingRune(p.s, p.pos)

	beforeWhite := before == 0 || isUnicodeWhitespace(before)
	afterWhite := after == 0 || isUnicodeWhitespace(after)
	beforePunct := before != 0 && isUnicodePunctuation(before)
	afterPunct := after != 0 && isUnicodePunctuation(after)

	leftFlanking := !afterWhite && (!afterPunct || beforeWhite || beforePunct)
	rightFlanking := !beforeWhite && (!beforePunct || afterWhite || afterPunct)

	var canOpen, canClose bool
	if char == '*' {
		canOpen, canClose = leftFlanking, rightFlanking
	} else {
		canOpen = leftFlanking && (!rightFlanking || beforePunct)
		canClose = rightFlanking && (!leftFlanking || afterPunct)
	}

	p.pushText(run)
	d := &delimRun{nodeIndex: len(p.nodes) - 1, char: char, count: len(run), canOpen: canOpen, canClose: canClose}
	p.delims = append(p.delims, d)
	if canClose {
		p.resolveCloser(len(p.delims) - 1)
	}
}

// resolveCloser attempts to match the delimiter at p.delims[closerIdx]
// (known to be able to close) against the nearest compatible opener
// earlier on the stack, repeating as long as the closer has remaining
// count, per spec.md §4.5.
func (p *inlineParser) resolveCloser(closerIdx int) {
	for {
		closer := p.delims[closerIdx]
		if closer.count == 0 {
			return
		}
		openerIdx := -1
		for k := closerIdx - 1; k >= 0; k-- {
			o := p.delims[k]
			if o.count <= 0 || o.char != closer.char || !o.canOpen {
				continue
			}
			if (o.canOpen && o.canClose || closer.canOpen && closer.canClose) &&
				(o.count+closer.count)%3 == 0 && (o.count%3 != 0 || closer.count%3 != 0) {
				continue
			}
			openerIdx = k
			break
		}
		if openerIdx < 0 {
			return
		}
		opener := p.delims[openerIdx]

		n := 1
		kind := EmphasisKind
		if opener.count >= 2 && closer.count >= 2 {
			n = 2
			kind = StrongKind
		}

		wrap := newNode(kind)
		contentStart := opener.nodeIndex + 1
		contentEnd := closer.nodeIndex
		wrap.Children = append([]*Node{}, p.nodes[contentStart:contentEnd]...)
		trimDelimText(p.nodes[opener.nodeIndex], n)
		trimDelimText(p.nodes[closer.nodeIndex], n)
		opener.count -= n
		closer.count -= n

		removeOpenerNode := opener.count == 0 && p.nodes[opener.nodeIndex].Literal == ""
		removeCloserNode := closer.count == 0 && p.nodes[closer.nodeIndex].Literal == ""

		spliceStart := opener.nodeIndex
		if !removeOpenerNode {
			spliceStart++
		}
		spliceEnd := closer.nodeIndex
		if removeCloserNode {
			spliceEnd++
		}

		newNodes := make([]*Node, 0, len(p.nodes)-(spliceEnd-spliceStart)+1)
		newNodes = append(newNodes, p.nodes[:spliceStart]...)
		newNodes = append(newNodes, wrap)
		newNodes = append(newNodes, p.nodes[spliceEnd:]...)
		delta := len(p.nodes) - len(newNodes)
		p.nodes = newNodes

		for _, b := range p.brackets {
			if b.nodeIndex > opener.nodeIndex {
				b.nodeIndex -= delta
			}
		}
		for _, d := range p.delims {
			if d == opener || d == closer {
				continue
			}
			if d.nodeIndex > opener.nodeIndex {
				d.nodeIndex -= delta
			}
		}
		if removeOpenerNode {
			opener.count = -1 // marks fully spent and detached
		}
		if removeCloserNode {
			closer.count = -1
		}
		if closer.count <= 0 {
			return
		}
	}
}

// trimDelimText removes n characters of a delimiter run's own character
// from the end of its placeholder Text node's literal.
func trimDelimText(node *Node, n int) {
	if len(node.Literal) >= n {
		node.Literal = node.Literal[:len(node.Literal)-n]
	}
}
