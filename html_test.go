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

func TestMarkdownToHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "paragraph",
			in:   "hello *world*\n",
			want: "<p>hello <em>world</em></p>\n",
		},
		{
			name: "tightList",
			in:   "- a\n- b\n",
			want: "<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n",
		},
		{
			name: "looseList",
			in:   "- a\n\n- b\n",
			want: "<ul>\n<li>\n<p>a</p>\n</li>\n<li>\n<p>b</p>\n</li>\n</ul>\n",
		},
		{
			name: "blockquote",
			in:   "> hi\n",
			want: "<blockquote>\n<p>hi</p>\n</blockquote>\n",
		},
		{
			name: "heading",
			in:   "# Title\n",
			want: "<h1>Title</h1>\n",
		},
		{
			name: "escaping",
			in:   "a < b & c > d\n",
			want: "<p>a &lt; b &amp; c &gt; d</p>\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := MarkdownToHTML([]byte(test.in))
			if err != nil {
				t.Fatal(err)
			}
			if got != test.want {
				t.Errorf("MarkdownToHTML(%q) = %q; want %q", test.in, got, test.want)
			}
		})
	}
}
