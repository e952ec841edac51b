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

// Package kramdown provides a parser for the block structure
// of [kramdown] documents,
// with a focus on lists and definition lists.
//
// [kramdown]: https://kramdown.gettalong.org/syntax.html
package kramdown

import (
	"bytes"
	"fmt"
	"io"

	"go4.org/bytereplacer"
)

// tabStopSize is the multiple of columns that a tab advances to.
const tabStopSize = 4

// defaultMaxNestingDepth is the nesting limit used
// when [Parser.MaxNestingDepth] is zero.
const defaultMaxNestingDepth = 32

// Parser holds the options for parsing a document.
// The zero value is a parser with default options.
type Parser struct {
	// MaxNestingDepth is the maximum number of times
	// list items or definitions may be nested inside each other.
	// Markers past the limit are treated as paragraph text.
	// If MaxNestingDepth is zero, a default limit of 32 is used.
	MaxNestingDepth int
}

// Parse parses a document with the default options.
func Parse(source []byte) *Node {
	return new(Parser).Parse(source)
}

// Parse parses the source into a tree rooted at a [DocumentKind] node.
// Parsing never fails: every input produces a tree.
func (p *Parser) Parse(source []byte) *Node {
	doc := &Node{kind: DocumentKind}
	bp := &blockParser{
		cur:       cursor{src: normalizeSource(source)},
		container: doc,
		maxDepth:  p.maxDepth(),
	}
	bp.parseBlocks()
	return doc
}

// ParseReader reads all of r and parses it with [*Parser.Parse].
func (p *Parser) ParseReader(r io.Reader) (*Node, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parse kramdown: %w", err)
	}
	return p.Parse(source), nil
}

func (p *Parser) maxDepth() int {
	if p == nil || p.MaxNestingDepth <= 0 {
		return defaultMaxNestingDepth
	}
	return p.MaxNestingDepth
}

var sourceReplacer = bytereplacer.New(
	"\r\n", "\n",
	"\r", "\n",
	// Replace NUL bytes with the Unicode replacement character.
	"\x00", "\ufffd",
)

// normalizeSource returns a copy of source with Unix line endings
// that ends in exactly one line feed.
func normalizeSource(source []byte) []byte {
	source = sourceReplacer.Replace(bytes.Clone(source))
	source = bytes.TrimSuffix(source, []byte("\n"))
	return append(source, '\n')
}

// cursor is a scan position in a normalized source.
// Every line in the source ends with a line feed.
type cursor struct {
	src []byte
	pos int
}

// A matchFunc attempts to match a pattern at the beginning of b.
// It returns the end of the match or -1 if the pattern does not match.
type matchFunc func(b []byte) (end int)

func (c *cursor) eos() bool {
	return c.pos >= len(c.src)
}

// rest returns the unconsumed source.
func (c *cursor) rest() []byte {
	return c.src[c.pos:]
}

// line returns the current line, including its line ending.
func (c *cursor) line() []byte {
	rest := c.rest()
	return rest[:lineLen(rest)]
}

// advance moves the cursor forward by n bytes.
// It panics if n is greater than the number of bytes remaining.
func (c *cursor) advance(n int) {
	if n < 0 || c.pos+n > len(c.src) {
		panic("index out of bounds")
	}
	c.pos += n
}

// check reports whether m matches at the cursor
// without advancing the cursor.
func (c *cursor) check(m matchFunc) bool {
	return m(c.rest()) >= 0
}

// scan advances the cursor past the match of m and returns the matched bytes.
// If m does not match, scan returns nil and the cursor is not moved.
func (c *cursor) scan(m matchFunc) []byte {
	start := c.pos
	end := m(c.rest())
	if end <= 0 {
		return nil
	}
	c.advance(end)
	return c.src[start:c.pos:c.pos]
}

// blockParser parses the blocks of a single container
// (the document or the content of a list item).
type blockParser struct {
	cur       cursor
	container *Node
	depth     int // number of enclosing item fragments
	maxDepth  int

	// tail is the most recently extended text-bearing node.
	// Its value is out of date until flushTail is called:
	// the current contents are in tailText.
	tail     *Node
	tailText []byte
}

// A blockStart attempts to parse a block at the cursor.
// If it reports true, it has advanced the cursor
// and appended to the container.
// Otherwise it must leave the cursor and the container unchanged.
type blockStart func(*blockParser) bool

// blockStarts is the block grammar in order of precedence.
// It is populated in init because the list parsers
// recurse back into parseBlocks.
var blockStarts []blockStart

func init() {
	blockStarts = []blockStart{
		parseBlankLine,
		parseCodeBlock,
		parseHorizontalRule,
		parseList,
		parseDefinitionList,
		parseEOBMarker,
		parseParagraph,
	}
}

// parseBlocks parses the remaining source,
// appending blocks to the container.
func (p *blockParser) parseBlocks() {
	for !p.cur.eos() {
		found := false
		for _, start := range blockStarts {
			if start(p) {
				found = true
				break
			}
		}
		if !found {
			panic("no block matched line")
		}
	}
	p.flushTail()
}

// extendValue appends text to the value of n,
// which must be a paragraph's text node or a code block.
// Successive calls for the same node share a buffer.
func (p *blockParser) extendValue(n *Node, text []byte) {
	if n != p.tail {
		p.flushTail()
		p.tail = n
		p.tailText = append(p.tailText[:0], n.value...)
	}
	p.tailText = append(p.tailText, text...)
}

// flushTail stores the buffered text into the tail node's value.
// The tail remains open for further calls to extendValue.
func (p *blockParser) flushTail() {
	if p.tail != nil {
		p.tail.value = string(p.tailText)
	}
}

// parseFragment parses text as a sequence of blocks
// in a temporary container nested one level below p's container
// and returns the resulting nodes.
// The text must end in a line feed if it is not empty.
// parseFragment does not modify p.
func (p *blockParser) parseFragment(text []byte) []*Node {
	temp := &Node{kind: containerKind}
	sub := &blockParser{
		cur:       cursor{src: text},
		container: temp,
		depth:     p.depth + 1,
		maxDepth:  p.maxDepth,
	}
	sub.parseBlocks()
	return temp.children
}

// canNest reports whether a list or definition list
// may be opened in the current container.
func (p *blockParser) canNest() bool {
	return p.depth < p.maxDepth
}

// lineLen returns the length of the first line in b,
// including its line feed.
func lineLen(b []byte) int {
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		return i + 1
	}
	return len(b)
}

func isBlankLine(line []byte) bool {
	for _, b := range line {
		if !(b == '\r' || b == '\n' || b == ' ' || b == '\t') {
			return false
		}
	}
	return true
}
