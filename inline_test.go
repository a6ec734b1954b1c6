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

func nodeKinds(nodes []*Node) []NodeKind {
	kinds := make([]NodeKind, len(nodes))
	for i, n := range nodes {
		kinds[i] = n.Kind
	}
	return kinds
}

func TestParseInlinesEmphasis(t *testing.T) {
	nodes := parseInlines("*foo* and **bar**", nil)
	if len(nodes) != 3 {
		t.Fatalf("len(nodes) = %d; want 3 (%v)", len(nodes), nodeKinds(nodes))
	}
	if nodes[0].Kind != EmphasisKind {
		t.Errorf("nodes[0].Kind = %v; want EmphasisKind", nodes[0].Kind)
	}
	if nodes[2].Kind != StrongKind {
		t.Errorf("nodes[2].Kind = %v; want StrongKind", nodes[2].Kind)
	}
	if got := TextContent(nodes[0]); got != "foo" {
		t.Errorf("TextContent(nodes[0]) = %q; want %q", got, "foo")
	}
	if got := TextContent(nodes[2]); got != "bar" {
		t.Errorf("TextContent(nodes[2]) = %q; want %q", got, "bar")
	}
}

func TestParseInlinesCodeSpan(t *testing.T) {
	nodes := parseInlines("`a b`", nil)
	if len(nodes) != 1 || nodes[0].Kind != CodeKind {
		t.Fatalf("nodes = %v; want single CodeKind node", nodeKinds(nodes))
	}
	if nodes[0].Literal != "a b" {
		t.Errorf("Literal = %q; want %q", nodes[0].Literal, "a b")
	}
}

func TestParseInlinesLinkReference(t *testing.T) {
	refs := make(ReferenceMap)
	refs.define("foo", LinkDefinition{Destination: "/url", Title: "a title", TitlePresent: true})
	nodes := parseInlines("[foo][]", refs)
	if len(nodes) != 1 || nodes[0].Kind != LinkKind {
		t.Fatalf("nodes = %v; want single LinkKind node", nodeKinds(nodes))
	}
	if nodes[0].Destination != "/url" {
		t.Errorf("Destination = %q; want %q", nodes[0].Destination, "/url")
	}
	if got := TextContent(nodes[0]); got != "foo" {
		t.Errorf("TextContent = %q; want %q", got, "foo")
	}
}

func TestParseInlinesInlineLink(t *testing.T) {
	nodes := parseInlines(`[text](/url "t")`, nil)
	if len(nodes) != 1 || nodes[0].Kind != LinkKind {
		t.Fatalf("nodes = %v; want single LinkKind node", nodeKinds(nodes))
	}
	if nodes[0].Destination != "/url" || nodes[0].Title != "t" {
		t.Errorf("got dest=%q title=%q; want dest=/url title=t", nodes[0].Destination, nodes[0].Title)
	}
}

func TestParseInlinesUnmatchedBracket(t *testing.T) {
	nodes := parseInlines("[not a link", nil)
	if len(nodes) != 1 || nodes[0].Kind != TextKind {
		t.Fatalf("nodes = %v; want single TextKind node", nodeKinds(nodes))
	}
	if nodes[0].Literal != "[not a link" {
		t.Errorf("Literal = %q; want %q", nodes[0].Literal, "[not a link")
	}
}

func TestParseInlinesAutolink(t *testing.T) {
	nodes := parseInlines("<https://example.com>", nil)
	if len(nodes) != 1 || nodes[0].Kind != LinkKind {
		t.Fatalf("nodes = %v; want single LinkKind node", nodeKinds(nodes))
	}
	if nodes[0].Destination != "https://example.com" {
		t.Errorf("Destination = %q; want %q", nodes[0].Destination, "https://example.com")
	}
}
