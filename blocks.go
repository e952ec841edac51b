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
	"bytes"
	"strings"
)

// parseBlankLine consumes a run of blank lines.
// Consecutive blank runs are merged into a single [BlankKind] node.
func parseBlankLine(p *blockParser) bool {
	text := p.cur.scan(parseBlankLines)
	if text == nil {
		return false
	}
	if last := p.container.lastChild(); last.Kind() == BlankKind {
		last.value += string(text)
	} else {
		p.container.appendChild(&Node{kind: BlankKind, value: string(text)})
	}
	return true
}

// parseBlankLines returns the end of the run of blank lines
// at the beginning of b
// or -1 if the first line is not blank.
func parseBlankLines(b []byte) (end int) {
	end = -1
	for pos := 0; pos < len(b); {
		n := lineLen(b[pos:])
		if !isBlankLine(b[pos : pos+n]) {
			break
		}
		pos += n
		end = pos
	}
	return end
}

// parseCodeBlock consumes a run of indented lines as a code block.
// A code block separated from a preceding code block
// by a single blank node is merged into it.
func parseCodeBlock(p *blockParser) bool {
	text := p.cur.scan(parseCodeLines)
	if text == nil {
		return false
	}
	code := stripIndentUnit(text)
	last, prev := p.container.lastChild(), p.container.nthLastChild(2)
	if last.Kind() == BlankKind && prev.Kind() == CodeBlockKind {
		p.extendValue(prev, []byte(stripIndentUnit([]byte(last.value))))
		p.extendValue(prev, []byte(code))
		p.container.popChild()
		return true
	}
	p.container.appendChild(&Node{kind: CodeBlockKind, value: code})
	return true
}

// parseCodeLines returns the end of the run of non-blank lines
// that start with an indent unit
// or -1 if the first line does not.
func parseCodeLines(b []byte) (end int) {
	end = -1
	for pos := 0; pos < len(b); {
		line := b[pos : pos+lineLen(b[pos:])]
		if indentUnitLen(line) == 0 || isBlankLine(line) {
			break
		}
		pos += len(line)
		end = pos
	}
	return end
}

// indentUnitLen returns the length of the tab or four spaces
// at the beginning of line or 0 if line does not start with either.
func indentUnitLen(line []byte) int {
	switch {
	case len(line) > 0 && line[0] == '\t':
		return 1
	case hasSpaces(line, tabStopSize):
		return tabStopSize
	default:
		return 0
	}
}

// stripIndentUnit removes up to one indent unit from every line in text.
func stripIndentUnit(text []byte) string {
	sb := new(strings.Builder)
	sb.Grow(len(text))
	for len(text) > 0 {
		line := text[:lineLen(text)]
		text = text[len(line):]
		sb.Write(line[indentUnitLen(line):])
	}
	return sb.String()
}

func hasSpaces(line []byte, n int) bool {
	if len(line) < n {
		return false
	}
	for _, c := range line[:n] {
		if c != ' ' {
			return false
		}
	}
	return true
}

func parseHorizontalRule(p *blockParser) bool {
	if p.cur.scan(parseHorizontalRuleLine) == nil {
		return false
	}
	p.container.appendChild(&Node{kind: HorizontalRuleKind})
	return true
}

// parseHorizontalRuleLine attempts to parse the first line of b
// as a horizontal rule.
// It returns the end of the line
// or -1 if the line is not a horizontal rule.
func parseHorizontalRuleLine(b []byte) (end int) {
	line := b[:lineLen(b)]
	i := skipSpaces(line, maxMarkerIndent)
	if i >= len(line) {
		return -1
	}
	want := line[i]
	if want != '-' && want != '_' && want != '*' {
		return -1
	}
	n := 0
	for _, c := range line[i:] {
		switch c {
		case want:
			n++
		case ' ', '\t', '\n':
			// Ignore
		default:
			return -1
		}
	}
	if n < 3 {
		return -1
	}
	return len(line)
}

// parseEOBMarker consumes an end-of-block marker
// and leaves an [EOBKind] node to separate the blocks around it.
func parseEOBMarker(p *blockParser) bool {
	if p.cur.scan(parseEOBLine) == nil {
		return false
	}
	p.container.appendChild(&Node{kind: EOBKind})
	return true
}

// parseEOBLine attempts to parse the first line of b
// as an end-of-block marker:
// a caret followed only by whitespace.
// It returns the end of the line or -1.
func parseEOBLine(b []byte) (end int) {
	line := b[:lineLen(b)]
	if len(line) == 0 || line[0] != '^' || !isBlankLine(line[1:]) {
		return -1
	}
	return len(line)
}

// parseParagraph consumes any line.
// If the container already ends in a paragraph,
// the line is added to it.
func parseParagraph(p *blockParser) bool {
	if p.cur.eos() {
		return false
	}
	line := bytes.TrimSuffix(p.cur.scan(lineLen), []byte("\n"))
	if last := p.container.lastChild(); last.Kind() == ParagraphKind {
		text := last.children[0]
		p.extendValue(text, []byte("\n"))
		p.extendValue(text, line)
		return true
	}
	para := &Node{kind: ParagraphKind}
	para.appendChild(newTextNode(string(bytes.TrimLeft(line, " \t"))))
	p.container.appendChild(para)
	return true
}
