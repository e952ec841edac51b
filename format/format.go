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

// Package format provides a function to write a kramdown parse tree
// as an indented outline.
package format

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/atom"
	"zombiezen.com/go/kramdown"
)

// elements maps block kinds to the HTML element they are rendered as.
var elements = map[kramdown.Kind]atom.Atom{
	kramdown.UnorderedListKind:  atom.Ul,
	kramdown.OrderedListKind:    atom.Ol,
	kramdown.ListItemKind:       atom.Li,
	kramdown.DefinitionListKind: atom.Dl,
	kramdown.TermKind:           atom.Dt,
	kramdown.DefinitionKind:     atom.Dd,
	kramdown.ParagraphKind:      atom.P,
	kramdown.CodeBlockKind:      atom.Pre,
	kramdown.HorizontalRuleKind: atom.Hr,
}

// Tree writes the tree rooted at root to w, one node per line.
// Each line is indented by two spaces for every level below root.
// Block nodes are named after the HTML element they correspond to.
// Loose list items and definitions are marked with "loose",
// and nodes that carry text are followed by the quoted text.
func Tree(w io.Writer, root *kramdown.Node) error {
	ww := &errWriter{w: w}
	kramdown.Walk(root, &kramdown.WalkOptions{
		Pre: func(c *kramdown.Cursor) bool {
			n := c.Node()
			ww.WriteString(strings.Repeat("  ", c.Depth()))
			ww.WriteString(nodeName(n.Kind()))
			if n.IsLoose() {
				ww.WriteString(" loose")
			}
			switch n.Kind() {
			case kramdown.TextKind, kramdown.BlankKind, kramdown.CodeBlockKind:
				ww.WriteString(" ")
				ww.WriteString(strconv.Quote(n.Value()))
			}
			ww.WriteString("\n")
			return ww.err == nil
		},
		Post: func(c *kramdown.Cursor) bool {
			return ww.err == nil
		},
	})
	return ww.err
}

func nodeName(kind kramdown.Kind) string {
	if a, ok := elements[kind]; ok {
		return a.String()
	}
	switch kind {
	case kramdown.DocumentKind:
		return "document"
	case kramdown.TextKind:
		return "text"
	case kramdown.BlankKind:
		return "blank"
	case kramdown.EOBKind:
		return "eob"
	default:
		return kind.String()
	}
}

type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) WriteString(s string) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = io.WriteString(w.w, s)
	return n, w.err
}
