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

package commonmark

import "testing"

func TestClassifyATXHeading(t *testing.T) {
	tests := []struct {
		line      string
		wantLevel int
		wantText  string
	}{
		{"# foo", 1, "foo"},
		{"## foo ##", 2, "foo"},
		{"###### foo", 6, "foo"},
		{"####### foo", 0, ""},
		{"#foo", 0, ""},
		{"#", 1, ""},
	}
	for _, test := range tests {
		h := classifyATXHeading(test.line)
		if h.level != test.wantLevel || h.content != test.wantText {
			t.Errorf("classifyATXHeading(%q) = {%d, %q}; want {%d, %q}",
				test.line, h.level, h.content, test.wantLevel, test.wantText)
		}
	}
}

func TestClassifyThematicBreak(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"***", true},
		{"---", true},
		{"___", true},
		{"- - -", true},
		{"--", false},
		{"**a", false},
	}
	for _, test := range tests {
		if got := classifyThematicBreak(test.line); got != test.want {
			t.Errorf("classifyThematicBreak(%q) = %t; want %t", test.line, got, test.want)
		}
	}
}

func TestClassifyListMarker(t *testing.T) {
	tests := []struct {
		line    string
		wantEnd int
		ordered bool
		start   int
	}{
		{"- foo", 1, false, 0},
		{"* foo", 1, false, 0},
		{"1. foo", 2, true, 1},
		{"42) foo", 3, true, 42},
		{"not a list", -1, false, 0},
		{"-nope", -1, false, 0},
	}
	for _, test := range tests {
		m := classifyListMarker(test.line)
		if m.end != test.wantEnd {
			t.Errorf("classifyListMarker(%q).end = %d; want %d", test.line, m.end, test.wantEnd)
			continue
		}
		if m.end < 0 {
			continue
		}
		if m.isOrdered() != test.ordered {
			t.Errorf("classifyListMarker(%q).isOrdered() = %t; want %t", test.line, m.isOrdered(), test.ordered)
		}
		if test.ordered && m.start != test.start {
			t.Errorf("classifyListMarker(%q).start = %d; want %d", test.line, m.start, test.start)
		}
	}
}

func TestClassifySetextUnderline(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"===", 1},
		{"---", 2},
		{"- - -", 0},
		{"===foo", 0},
		{"", 0},
	}
	for _, test := range tests {
		if got := classifySetextUnderline(test.line); got != test.want {
			t.Errorf("classifySetextUnderline(%q) = %d; want %d", test.line, got, test.want)
		}
	}
}
