package asm

import (
	"strings"
)

// cursor walks the bytes of a single source line.
type cursor struct {
	line string
	pos  int
}

func (c *cursor) done() bool {
	return c.pos >= len(c.line)
}

func (c *cursor) peek() byte {
	return c.line[c.pos]
}

func (c *cursor) advance() (ch byte) {
	ch = c.line[c.pos]
	c.pos++
	return
}

// rest returns the unconsumed remainder of the line.
func (c *cursor) rest() string {
	return c.line[c.pos:]
}

func isBlank(ch byte) bool {
	return ch == ' ' || ch == '\t'
}

// TokenizeLine splits one source line into raw tokens. A token starting
// with ';' is a comment and runs to the end of the line, always last. A
// single-quoted run is consumed as a unit, honoring backslash pairs, and
// merges with any text abutting it. Tokens come back with surrounding
// whitespace trimmed.
func TokenizeLine(line string) (tokens []string) {
	c := &cursor{line: line}

	for !c.done() {
		for !c.done() && isBlank(c.peek()) {
			c.advance()
		}
		if c.done() {
			break
		}

		if c.peek() == ';' {
			tokens = append(tokens, strings.TrimSpace(c.rest()))
			break
		}

		var token strings.Builder
		for !c.done() {
			ch := c.peek()
			if isBlank(ch) || ch == ';' {
				break
			}
			if ch == '\'' {
				scanQuoted(c, &token)
				continue
			}
			token.WriteByte(c.advance())
		}
		tokens = append(tokens, strings.TrimSpace(token.String()))
	}

	return
}

// scanQuoted consumes a quoted character run: the opening quote, one
// character unit (a backslash and the byte after it count as one unit),
// then everything up to and including the closing quote. A quote left
// unterminated consumes the rest of the line as-is.
func scanQuoted(c *cursor, token *strings.Builder) {
	token.WriteByte(c.advance())
	if c.done() {
		return
	}

	unit := c.advance()
	token.WriteByte(unit)
	switch {
	case unit == '\'':
		// Empty literal.
		return
	case unit == '\\' && !c.done():
		token.WriteByte(c.advance())
	}

	for !c.done() {
		ch := c.advance()
		token.WriteByte(ch)
		if ch == '\'' {
			return
		}
	}
}
