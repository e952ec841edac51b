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

// parseDefinitionList parses definitions at the cursor.
// The terms come from the paragraph that precedes the first definition,
// one term per line.
// Definitions that follow an existing definition list,
// possibly separated by a blank line, are added to it.
func parseDefinitionList(p *blockParser) bool {
	if !p.canNest() || parseDefinitionMarker(p.cur.line(), maxMarkerIndent) < 0 {
		return false
	}
	p.flushTail()
	tree := p.container
	para, firstAsPara := definitionTermParagraph(tree)
	if para == nil {
		return false
	}
	terms := splitTerms(para.Child(0).Value())
	if len(terms) == 0 {
		return false
	}
	if firstAsPara {
		tree.popChild()
	}
	tree.popChild()

	deflist := &Node{kind: DefinitionListKind}
	for _, term := range terms {
		dt := &Node{kind: TermKind}
		dt.appendChild(newTextNode(term))
		deflist.appendChild(dt)
	}

	var items []*listItem
	maxIndent := maxMarkerIndent
	for !p.cur.eos() {
		line := p.cur.line()
		if end := parseDefinitionMarker(line, maxIndent); end >= 0 {
			p.cur.advance(len(line))
			item := newListItem(DefinitionKind, end, line[end:])
			item.firstAsPara = firstAsPara
			items = append(items, item)
			deflist.appendChild(item.node)
			maxIndent = min(maxMarkerIndent, item.indent.width-1)
			firstAsPara = false
			continue
		}

		item := items[len(items)-1]
		if end := item.indent.matchContinuation(line); end >= 0 {
			p.cur.advance(end)
			item.raw = append(item.raw, item.indent.strip(line)...)
			firstAsPara = false
		} else if blank := p.cur.scan(parseBlankLines); blank != nil {
			item.raw = append(item.raw, blank...)
			firstAsPara = true
		} else {
			break
		}
	}

	trailingBlank := finishDefinitions(p, items)
	switch last, prev := tree.lastChild(), tree.nthLastChild(2); {
	case last.Kind() == DefinitionListKind:
		last.children = append(last.children, deflist.children...)
	case last.Kind() == BlankKind && prev.Kind() == DefinitionListKind:
		tree.popChild()
		prev.children = append(prev.children, deflist.children...)
	default:
		tree.appendChild(deflist)
	}
	if trailingBlank != nil {
		tree.appendChild(trailingBlank)
	}
	return true
}

// definitionTermParagraph returns the paragraph at the end of the tree
// that holds the terms for a new definition.
// The paragraph may be followed by exactly one empty line,
// in which case firstAsPara is true.
// definitionTermParagraph returns nil if the tree does not end that way.
func definitionTermParagraph(tree *Node) (para *Node, firstAsPara bool) {
	last, prev := tree.lastChild(), tree.nthLastChild(2)
	switch {
	case last.Kind() == ParagraphKind:
		return last, false
	case last.Kind() == BlankKind && last.Value() == "\n" && prev.Kind() == ParagraphKind:
		return prev, true
	default:
		return nil, false
	}
}

// splitTerms splits paragraph text into lines,
// dropping any trailing empty lines.
func splitTerms(text string) []string {
	terms := strings.Split(text, "\n")
	for len(terms) > 0 && terms[len(terms)-1] == "" {
		terms = terms[:len(terms)-1]
	}
	return terms
}

// finishDefinitions parses the content of each definition.
// A definition's leading paragraph is replaced by its text
// unless the definition was separated from its terms by a blank line.
// finishDefinitions returns the blank node removed from the end
// of the last non-empty definition, if any.
func finishDefinitions(p *blockParser, items []*listItem) (trailingBlank *Node) {
	for _, item := range items {
		item.parseContent(p)
		dd := item.node
		if dd.ChildCount() == 0 {
			continue
		}

		if dd.lastChild().Kind() == BlankKind {
			trailingBlank = dd.popChild()
		} else {
			trailingBlank = nil
		}
		if dd.ChildCount() > 0 && dd.Child(0).Kind() == ParagraphKind && !item.firstAsPara {
			text := dd.children[0].children[0]
			if dd.ChildCount() > 1 {
				text.value += "\n"
			}
			dd.children[0] = text
		} else {
			dd.flags |= ForcedLoose
		}
	}
	return trailingBlank
}
