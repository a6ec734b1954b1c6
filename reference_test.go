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

func TestCollectReferences(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		label      string
		wantDest   string
		wantTitle  string
		wantHasDef bool
	}{
		{
			name:       "simple",
			source:     "[foo]: /url \"title\"",
			label:      "foo",
			wantDest:   "/url",
			wantTitle:  "title",
			wantHasDef: true,
		},
		{
			name:       "angleBrackets",
			source:     "[foo]: <my url>",
			label:      "FOO",
			wantDest:   "my url",
			wantHasDef: true,
		},
		{
			name:       "multiline",
			source:     "[foo]:\n/url\n'title'",
			label:      "foo",
			wantDest:   "/url",
			wantTitle:  "title",
			wantHasDef: true,
		},
		{
			name:       "firstWins",
			source:     "[foo]: /url1\n\n[foo]: /url2",
			label:      "foo",
			wantDest:   "/url1",
			wantHasDef: true,
		},
		{
			name:       "notFound",
			source:     "just a paragraph\n",
			label:      "foo",
			wantHasDef: false,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			refs := make(ReferenceMap)
			lines := splitLines([]byte(test.source))
			collectReferences(lines, refs)
			def, ok := refs.Lookup(test.label)
			if ok != test.wantHasDef {
				t.Fatalf("Lookup(%q) ok = %t; want %t", test.label, ok, test.wantHasDef)
			}
			if !ok {
				return
			}
			if def.Destination != test.wantDest {
				t.Errorf("Destination = %q; want %q", def.Destination, test.wantDest)
			}
			if test.wantTitle != "" && def.Title != test.wantTitle {
				t.Errorf("Title = %q; want %q", def.Title, test.wantTitle)
			}
		})
	}
}

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Foo", "foo"},
		{"  Foo  Bar  ", "foo bar"},
		{"FOO\tBAR", "foo bar"},
	}
	for _, test := range tests {
		if got := normalizeLabel(test.in); got != test.want {
			t.Errorf("normalizeLabel(%q) = %q; want %q", test.in, got, test.want)
		}
	}
}
