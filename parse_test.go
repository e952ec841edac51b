// Copyright 2024 Ross Light
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

package kramdown

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeSource(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"", "\n"},
		{"a", "a\n"},
		{"a\n", "a\n"},
		{"a\n\n", "a\n\n"},
		{"a\r\nb\rc\r", "a\nb\nc\n"},
		{"\r\r\n", "\n\n"},
		{"Hello,\x00World", "Hello,\ufffdWorld\n"},
	}
	for _, test := range tests {
		source := []byte(test.source)
		if got := string(normalizeSource(source)); got != test.want {
			t.Errorf("normalizeSource(%q) = %q; want %q", test.source, got, test.want)
		}
		if string(source) != test.source {
			t.Errorf("normalizeSource(%q) modified its argument to %q", test.source, source)
		}
	}
}

func TestInsecureCharacters(t *testing.T) {
	const input = "- Hello,\x00World"
	const want = "Hello,\ufffdWorld"

	doc := Parse([]byte(input))
	if got := doc.ChildCount(); got != 1 {
		t.Fatalf("doc.ChildCount() = %d; want 1", got)
	}
	list := doc.Child(0)
	if got := list.Kind(); got != UnorderedListKind {
		t.Fatalf("doc.Child(0).Kind() = %v; want %v", got, UnorderedListKind)
	}
	if got := list.Text(); got != want {
		t.Errorf("doc.Child(0).Text() = %q; want %q", got, want)
	}
}

func TestParseReader(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		got, err := new(Parser).ParseReader(strings.NewReader("- a\r\n- b\r\n"))
		if err != nil {
			t.Fatal(err)
		}
		want := doc(
			node(UnorderedListKind,
				node(ListItemKind, text("a")),
				node(ListItemKind, text("b")),
			),
		)
		if diff := cmp.Diff(want, got, treeDiffOptions); diff != "" {
			t.Errorf("ParseReader(...) (-want +got):\n%s", diff)
		}
	})

	t.Run("Error", func(t *testing.T) {
		errBroken := errors.New("bork")
		got, err := new(Parser).ParseReader(iotest.ErrReader(errBroken))
		if !errors.Is(err, errBroken) {
			t.Errorf("ParseReader(...) error = %v; want %v", err, errBroken)
		}
		if got != nil {
			t.Errorf("ParseReader(...) = %v; want <nil>", got)
		}
	})
}

func TestCursor(t *testing.T) {
	c := &cursor{src: []byte("\n\n- a\nb\n")}
	if c.check(parseEOBLine) {
		t.Error("check(parseEOBLine) = true; want false")
	}
	if got := c.scan(parseEOBLine); got != nil || c.pos != 0 {
		t.Errorf("scan(parseEOBLine) = %q, pos = %d; want <nil>, 0", got, c.pos)
	}
	if got := c.scan(parseBlankLines); string(got) != "\n\n" {
		t.Errorf("scan(parseBlankLines) = %q; want %q", got, "\n\n")
	}
	if got := string(c.line()); got != "- a\n" {
		t.Errorf("line() = %q; want %q", got, "- a\n")
	}
	c.advance(len(c.line()))
	if got := string(c.rest()); got != "b\n" {
		t.Errorf("rest() = %q; want %q", got, "b\n")
	}
	c.advance(2)
	if !c.eos() {
		t.Error("eos() = false after consuming all input")
	}
}

func FuzzParse(f *testing.F) {
	f.Add("- a\n- b\n")
	f.Add("- a\n\n- b\n")
	f.Add("- a\n  - b\n")
	f.Add("term\n: def\n")
	f.Add("1. a\n\t2. b\n^\n")
	f.Add("t1\n: d1\n\nt2\n\n: d2\n    code\n")

	f.Fuzz(func(t *testing.T, markdown string) {
		if !utf8.ValidString(markdown) {
			t.Skip("Invalid UTF-8")
		}
		root := Parse([]byte(markdown))
		if got := root.Kind(); got != DocumentKind {
			t.Fatalf("Parse(...).Kind() = %v; want %v", got, DocumentKind)
		}
		verifyStructure(t, root)
	})
}

// verifyStructure checks the parent/child relationships in a tree.
func verifyStructure(tb testing.TB, root *Node) {
	tb.Helper()
	Walk(root, &WalkOptions{
		Pre: func(c *Cursor) bool {
			n, parent := c.Node(), c.Parent()
			switch k := n.Kind(); {
			case k == containerKind:
				tb.Errorf("temporary container left in tree")
			case k == ListItemKind && !parent.Kind().IsList():
				tb.Errorf("list item in %v", parent.Kind())
			case (k == TermKind || k == DefinitionKind) && parent.Kind() != DefinitionListKind:
				tb.Errorf("%v in %v", k, parent.Kind())
			case k == ParagraphKind && (n.ChildCount() != 1 || n.Child(0).Kind() != TextKind):
				tb.Errorf("paragraph with %d children", n.ChildCount())
			case !k.hasValue() && n.Value() != "":
				tb.Errorf("%v has value %q", k, n.Value())
			}
			if n.Kind().IsList() {
				for i := 0; i < n.ChildCount(); i++ {
					if got := n.Child(i).Kind(); got != ListItemKind {
						tb.Errorf("%v child %d is %v", n.Kind(), i, got)
					}
				}
			}
			if n.Kind() == DefinitionListKind && n.ChildCount() > 0 && n.Child(0).Kind() != TermKind {
				tb.Errorf("definition list starts with %v", n.Child(0).Kind())
			}
			return true
		},
	})
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{UnorderedListKind, "UnorderedListKind"},
		{DefinitionKind, "DefinitionKind"},
		{EOBKind, "EOBKind"},
		{DocumentKind, "DocumentKind"},
		{0, "Kind(0)"},
		{containerKind + 1, "Kind(15)"},
	}
	for _, test := range tests {
		if got := test.kind.String(); got != test.want {
			t.Errorf("Kind(%d).String() = %q; want %q", uint16(test.kind), got, test.want)
		}
	}
}
