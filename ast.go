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

//go:generate stringer -type=Kind

// Kind is an enumeration of values returned by [*Node.Kind].
type Kind uint16

const (
	UnorderedListKind Kind = 1 + iota
	OrderedListKind
	ListItemKind
	DefinitionListKind
	TermKind
	DefinitionKind
	ParagraphKind
	BlankKind
	TextKind
	CodeBlockKind
	HorizontalRuleKind

	// EOBKind is an explicit end-of-block marker.
	// It carries no content and only separates the blocks around it.
	EOBKind

	// DocumentKind is the kind of the node returned by [Parse].
	DocumentKind
	// containerKind is used for the temporary roots
	// that item content is parsed into before it is moved into the item.
	containerKind
)

// IsList reports whether the kind is an ordered or unordered list.
func (kind Kind) IsList() bool {
	return kind == UnorderedListKind || kind == OrderedListKind
}

// hasValue reports whether nodes of the kind carry text in [*Node.Value].
func (kind Kind) hasValue() bool {
	return kind == TextKind || kind == BlankKind || kind == CodeBlockKind
}

// Flags is a set of options recorded on a node during parsing.
type Flags uint8

const (
	// ForcedLoose is set on a list item or definition
	// whose first child was kept as a block
	// instead of being unwrapped into bare text.
	ForcedLoose Flags = 1 << iota
)
