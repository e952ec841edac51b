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

package kramdown_test

import (
	"fmt"
	"strings"

	"zombiezen.com/go/kramdown"
)

func Example() {
	doc := kramdown.Parse([]byte("- tight\n- list\n\n1. loose\n\n2. list\n"))
	kramdown.Walk(doc, &kramdown.WalkOptions{
		Pre: func(c *kramdown.Cursor) bool {
			n := c.Node()
			if n.Kind() != kramdown.ListItemKind {
				return true
			}
			fmt.Printf("%v item %q (loose=%t)\n", c.Parent().Kind(), n.Text(), n.IsLoose())
			return false
		},
	})
	// Output:
	// UnorderedListKind item "tight" (loose=false)
	// UnorderedListKind item "list" (loose=false)
	// OrderedListKind item "loose" (loose=true)
	// OrderedListKind item "list" (loose=false)
}

func ExampleParser() {
	p := &kramdown.Parser{MaxNestingDepth: 2}
	doc, err := p.ParseReader(strings.NewReader("- one\n  - two\n    - three\n"))
	if err != nil {
		panic(err)
	}
	depth := 0
	for n := doc.Child(0); n.Kind().IsList(); {
		depth++
		item := n.Child(n.ChildCount() - 1)
		n = item.Child(item.ChildCount() - 1)
	}
	fmt.Println("nested lists:", depth)
	// Output:
	// nested lists: 2
}
