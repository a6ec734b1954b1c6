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

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"lf", "a\nb\nc", []string{"a", "b", "c"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"cr", "a\rb\r", []string{"a", "b"}},
		{"trailingNoNewline", "a\nb", []string{"a", "b"}},
		{"empty", "", nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := splitLines([]byte(test.in))
			if len(got) != len(test.want) {
				t.Fatalf("splitLines(%q) = %q; want %q", test.in, got, test.want)
			}
			for i := range got {
				if got[i] != test.want[i] {
					t.Errorf("splitLines(%q)[%d] = %q; want %q", test.in, i, got[i], test.want[i])
				}
			}
		})
	}
}

func TestIndentColumns(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"foo", 0},
		{"   foo", 3},
		{"\tfoo", 4},
		{" \tfoo", 4},
		{"  \tfoo", 4},
		{"   \tfoo", 4},
		{"    \tfoo", 8},
	}
	for _, test := range tests {
		if got := indentColumns(test.line); got != test.want {
			t.Errorf("indentColumns(%q) = %d; want %d", test.line, got, test.want)
		}
	}
}

func TestStripIndent(t *testing.T) {
	tests := []struct {
		line string
		n    int
		want string
	}{
		{"    foo", 4, "foo"},
		{"\tfoo", 4, "foo"},
		{"\tfoo", 2, "  foo"},
		{"   foo", 2, " foo"},
	}
	for _, test := range tests {
		if got := stripIndent(test.line, test.n); got != test.want {
			t.Errorf("stripIndent(%q, %d) = %q; want %q", test.line, test.n, got, test.want)
		}
	}
}

func TestIsBlankLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"\t", true},
		{"a", false},
		{"  a  ", false},
	}
	for _, test := range tests {
		if got := isBlankLine(test.line); got != test.want {
			t.Errorf("isBlankLine(%q) = %t; want %t", test.line, got, test.want)
		}
	}
}
