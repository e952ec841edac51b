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

import "bytes"

// maxMarkerIndent is the largest number of spaces
// that may precede a list or definition marker.
const maxMarkerIndent = 3

// itemIndent is the indentation of a list item or definition
// as established by its first line.
type itemIndent struct {
	// width is the column of the item's content,
	// counting the marker and the spaces around it.
	width int
}

// parseFirstItemLine determines the indentation of an item
// from the line containing its marker.
// markerEnd is the number of columns taken by the marker
// and the spaces before it,
// and rest is the remainder of the line after the marker.
// The returned content is rest with its leading whitespace removed.
//
// An item whose first line is blank has a width of one tab stop
// regardless of its marker.
func parseFirstItemLine(markerEnd int, rest []byte) (content []byte, indent itemIndent) {
	if isBlankLine(rest) {
		return nil, itemIndent{width: tabStopSize}
	}
	col := markerEnd
	i := 0
scan:
	for ; i < len(rest); i++ {
		switch rest[i] {
		case ' ':
			col++
		case '\t':
			col += tabStopSize - col%tabStopSize
		default:
			break scan
		}
	}
	return rest[i:], itemIndent{width: col}
}

// matchContinuation attempts to match the first line of b
// as a continuation line of the item.
// A continuation line is indented by at least the item's width,
// where a tab counts the same as four spaces.
// It returns the end of the line or -1.
func (ind itemIndent) matchContinuation(b []byte) (end int) {
	line := b[:lineLen(b)]
	units, spaces := ind.width/tabStopSize, ind.width%tabStopSize
	if i, ok := skipIndentUnits(line, units); ok && hasSpaces(line[i:], spaces) {
		return len(line)
	}
	if _, ok := skipIndentUnits(line, units+1); ok {
		return len(line)
	}
	return -1
}

// strip removes the item's indentation from a continuation line.
// Leading tabs are expanded to four spaces first.
// If the expanded line does not start with enough spaces,
// it is returned with only its tabs expanded.
func (ind itemIndent) strip(line []byte) []byte {
	tabs := 0
	for tabs < len(line) && line[tabs] == '\t' {
		tabs++
	}
	if tabs > 0 {
		expanded := make([]byte, 0, tabs*tabStopSize+len(line)-tabs)
		for i := 0; i < tabs*tabStopSize; i++ {
			expanded = append(expanded, ' ')
		}
		line = append(expanded, line[tabs:]...)
	}
	if hasSpaces(line, ind.width) {
		line = line[ind.width:]
	}
	return line
}

// skipIndentUnits returns the end of n indent units
// at the beginning of line.
func skipIndentUnits(line []byte, n int) (end int, ok bool) {
	for ; n > 0; n-- {
		u := indentUnitLen(line[end:])
		if u == 0 {
			return end, false
		}
		end += u
	}
	return end, true
}

// A markerFunc attempts to parse an item marker
// preceded by at most maxIndent spaces
// at the beginning of line.
// It returns the end of the marker or -1 if the line does not start with one.
type markerFunc func(line []byte, maxIndent int) (end int)

// parseBulletMarker parses an unordered list marker.
func parseBulletMarker(line []byte, maxIndent int) (end int) {
	i := skipSpaces(line, maxIndent)
	if i >= len(line) {
		return -1
	}
	switch line[i] {
	case '+', '*', '-':
		return markerEnd(line, i+1)
	default:
		return -1
	}
}

// parseOrderedMarker parses an ordered list marker:
// one or more digits followed by a period.
func parseOrderedMarker(line []byte, maxIndent int) (end int) {
	start := skipSpaces(line, maxIndent)
	i := start
	for i < len(line) && '0' <= line[i] && line[i] <= '9' {
		i++
	}
	if i == start || i >= len(line) || line[i] != '.' {
		return -1
	}
	return markerEnd(line, i+1)
}

// parseDefinitionMarker parses a definition marker.
func parseDefinitionMarker(line []byte, maxIndent int) (end int) {
	i := skipSpaces(line, maxIndent)
	if i >= len(line) || line[i] != ':' {
		return -1
	}
	return markerEnd(line, i+1)
}

// markerEnd returns end if it is followed by a space or tab.
func markerEnd(line []byte, end int) int {
	if end >= len(line) || (line[end] != ' ' && line[end] != '\t') {
		return -1
	}
	return end
}

// skipSpaces returns the number of spaces at the beginning of line,
// up to n.
func skipSpaces(line []byte, n int) int {
	i := 0
	for i < len(line) && i < n && line[i] == ' ' {
		i++
	}
	return i
}

// isListStart reports whether the line starts an ordered or unordered list.
func isListStart(line []byte) bool {
	return parseBulletMarker(line, maxMarkerIndent) >= 0 ||
		parseOrderedMarker(line, maxMarkerIndent) >= 0
}

// listItem is the scanning state of a list item or definition.
// It lives only until the item's content has been parsed.
type listItem struct {
	node   *Node
	indent itemIndent
	raw    []byte // unparsed content with the item's indentation removed

	// firstAsPara is set on definitions separated from their terms
	// by a blank line.
	firstAsPara bool
}

func newListItem(kind Kind, markerEnd int, rest []byte) *listItem {
	content, indent := parseFirstItemLine(markerEnd, rest)
	return &listItem{
		node:   &Node{kind: kind},
		indent: indent,
		raw:    append([]byte(nil), content...),
	}
}

// parseContent parses the item's buffered text
// and moves the resulting blocks into the item's node.
func (item *listItem) parseContent(p *blockParser) {
	item.node.children = append(item.node.children, p.parseFragment(item.raw)...)
	item.raw = nil
}

// listScan is the state of the list scanner for a single list.
type listScan struct {
	kind        Kind
	parseMarker markerFunc
	items       []*listItem

	// maxIndent is the largest marker indent accepted for further items.
	// It is narrowed by each item so that later items
	// may be indented less than the first one.
	maxIndent int

	// nestedFound is set once the current item
	// has been checked for a lazily nested list,
	// or once it contains a blank line.
	nestedFound bool

	// eobFound is set if the list was terminated
	// by an end-of-block marker.
	eobFound bool
}

// parseList parses an ordered or unordered list at the cursor.
// A list cannot start directly after paragraph text.
func parseList(p *blockParser) bool {
	if p.container.lastChild().Kind() == ParagraphKind || !p.canNest() ||
		p.cur.check(parseHorizontalRuleLine) {
		return false
	}
	s := &listScan{
		kind:        UnorderedListKind,
		parseMarker: parseBulletMarker,
		maxIndent:   maxMarkerIndent,
	}
	if line := p.cur.line(); parseBulletMarker(line, maxMarkerIndent) < 0 {
		if parseOrderedMarker(line, maxMarkerIndent) < 0 {
			return false
		}
		s.kind = OrderedListKind
		s.parseMarker = parseOrderedMarker
	}

	for !p.cur.eos() && s.scanLine(p) {
	}

	list := &Node{kind: s.kind}
	for _, item := range s.items {
		list.appendChild(item.node)
	}
	p.container.appendChild(list)

	if trailingBlank := finishListItems(p, s.items, s.eobFound); trailingBlank != nil && !s.eobFound {
		p.container.appendChild(trailingBlank)
	}
	return true
}

// scanLine consumes the line at the cursor into the list.
// It reports false if the line ends the list.
func (s *listScan) scanLine(p *blockParser) bool {
	line := p.cur.line()
	if parseHorizontalRuleLine(line) >= 0 {
		return false
	}
	if end := s.parseMarker(line, s.maxIndent); end >= 0 {
		p.cur.advance(len(line))
		item := newListItem(ListItemKind, end, line[end:])
		s.items = append(s.items, item)
		s.maxIndent = min(maxMarkerIndent, item.indent.width-1)
		s.nestedFound = false
		return true
	}

	item := s.items[len(s.items)-1]
	if end := item.indent.matchContinuation(line); end >= 0 {
		p.cur.advance(end)
		stripped := item.indent.strip(line)
		if !s.nestedFound && isListStart(stripped) {
			// The item's text so far is either a single paragraph
			// that the nested list follows,
			// or something that the nested marker continues.
			if para := leadingParagraph(p, item.raw); para != nil {
				item.node.children = []*Node{para}
				item.raw = item.raw[:0]
			}
			s.nestedFound = true
		}
		item.raw = append(item.raw, stripped...)
		return true
	}
	if blank := p.cur.scan(parseBlankLines); blank != nil {
		s.nestedFound = true
		item.raw = append(item.raw, blank...)
		return true
	}
	if p.cur.scan(parseEOBLine) != nil {
		s.eobFound = true
	}
	return false
}

// leadingParagraph returns the paragraph that text would parse into
// one level below p's container,
// or nil if text would not parse into exactly one paragraph.
// Instead of parsing text, it checks that parseBlocks
// would hand every line to parseParagraph,
// so item content is never parsed more than once.
func leadingParagraph(p *blockParser, text []byte) *Node {
	if len(text) == 0 {
		return nil
	}
	nest := p.depth+1 < p.maxDepth
	for pos, first := 0, true; pos < len(text); first = false {
		line := text[pos : pos+lineLen(text[pos:])]
		pos += len(line)
		if isBlankLine(line) || indentUnitLen(line) > 0 ||
			parseHorizontalRuleLine(line) >= 0 || parseEOBLine(line) >= 0 {
			return nil
		}
		if nest && first && isListStart(line) {
			return nil
		}
		// A definition marker turns the preceding lines into terms.
		if nest && !first && parseDefinitionMarker(line, maxMarkerIndent) >= 0 {
			return nil
		}
	}
	text = bytes.TrimLeft(text, " \t")
	para := &Node{kind: ParagraphKind}
	para.appendChild(newTextNode(string(bytes.TrimSuffix(text, []byte("\n")))))
	return para
}

// finishListItems parses the content of each list item
// and decides whether the item is tight or loose.
// A tight item's leading paragraph is replaced by its text.
// finishListItems returns the blank node removed from the end
// of the last non-empty item, if any.
func finishListItems(p *blockParser, items []*listItem, eobFound bool) (trailingBlank *Node) {
	for i, item := range items {
		item.parseContent(p)
		li := item.node
		if li.ChildCount() == 0 {
			continue
		}

		if isTightListItem(li, i == len(items)-1, eobFound) {
			text := li.children[0].children[0]
			if li.ChildCount() > 1 && li.children[1].Kind() != BlankKind {
				text.value += "\n"
			}
			li.children[0] = text
		} else {
			li.flags |= ForcedLoose
		}

		if li.lastChild().Kind() == BlankKind {
			trailingBlank = li.popChild()
		} else {
			trailingBlank = nil
		}
	}
	return trailingBlank
}

// isTightListItem reports whether the item's first paragraph
// should be unwrapped.
// The last item of a list is tight when it only ends in a blank line,
// unless the list was closed with an end-of-block marker.
func isTightListItem(li *Node, isLast, eobFound bool) bool {
	if li.Child(0).Kind() != ParagraphKind {
		return false
	}
	n := li.ChildCount()
	return n < 2 ||
		li.Child(1).Kind() != BlankKind ||
		(isLast && n == 2 && !eobFound)
}
