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

import "strings"

// A Node is an element in a parsed document tree.
// Each node exclusively owns its children.
type Node struct {
	kind     Kind
	value    string
	flags    Flags
	children []*Node
}

// Kind returns the type of the node
// or zero if the node is nil.
func (n *Node) Kind() Kind {
	if n == nil {
		return 0
	}
	return n.kind
}

// Value returns the text carried by a [TextKind], [BlankKind],
// or [CodeBlockKind] node.
// Blank nodes carry the exact whitespace lines they represent.
// Value returns the empty string for other kinds of nodes
// or if the node is nil.
func (n *Node) Value() string {
	if n == nil {
		return ""
	}
	return n.value
}

// Flags returns the options recorded on the node during parsing.
func (n *Node) Flags() Flags {
	if n == nil {
		return 0
	}
	return n.flags
}

// IsLoose reports whether the node is a list item or definition
// whose content is kept as blocks.
func (n *Node) IsLoose() bool {
	return n.Flags()&ForcedLoose != 0
}

// ChildCount returns the number of children the node has.
// Calling ChildCount on nil returns 0.
func (n *Node) ChildCount() int {
	if n == nil {
		return 0
	}
	return len(n.children)
}

// Child returns the i'th child of the node.
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

// Text returns the concatenated values of the text nodes
// contained in the node.
func (n *Node) Text() string {
	if n.Kind() == TextKind {
		return n.value
	}
	sb := new(strings.Builder)
	Walk(n, &WalkOptions{
		Pre: func(c *Cursor) bool {
			if c.Node().Kind() == TextKind {
				sb.WriteString(c.Node().Value())
			}
			return true
		},
	})
	return sb.String()
}

func (n *Node) lastChild() *Node {
	if n.ChildCount() == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

// nthLastChild returns the i'th child from the end
// (1 being the last child) or nil if there is no such child.
func (n *Node) nthLastChild(i int) *Node {
	if i < 1 || i > n.ChildCount() {
		return nil
	}
	return n.children[len(n.children)-i]
}

func (n *Node) appendChild(child *Node) {
	n.children = append(n.children, child)
}

// popChild removes the last child and returns it.
func (n *Node) popChild() *Node {
	last := n.lastChild()
	if last != nil {
		n.children[len(n.children)-1] = nil
		n.children = n.children[:len(n.children)-1]
	}
	return last
}

func newTextNode(text string) *Node {
	return &Node{kind: TextKind, value: text}
}
