package iniconf

import (
	"io"

	"github.com/go-gcfg/iniconf/strbuf"
)

const (
	eof     = -1
	noDelim = -2 // scanText runs to the end of the line
)

var bom = [...]int{0xEF, 0xBB, 0xBF}

// cursor is the byte-level state of one parse.
type cursor struct {
	src    io.ByteReader
	line   int   // physical line, from 1, counted when a newline is read
	offset int64 // bytes read from src
	cc     int   // current character, newlines normalized to '\n'
	err    error // first read error other than io.EOF

	atEOF   bool
	pending []int // pushed back bytes, next one last
}

// read returns the next byte of the source, or eof. End of input and read
// errors are sticky.
func (c *cursor) read() int {
	if n := len(c.pending); n > 0 {
		ch := c.pending[n-1]
		c.pending = c.pending[:n-1]
		return ch
	}
	if c.atEOF {
		return eof
	}
	b, err := c.src.ReadByte()
	if err != nil {
		c.atEOF = true
		if err != io.EOF {
			c.err = err
		}
		return eof
	}
	c.offset++
	return int(b)
}

func (c *cursor) unread(ch int) {
	if ch != eof {
		c.pending = append(c.pending, ch)
	}
}

// skipBOM consumes a UTF-8 byte order mark at the start of the input.
// Anything else is left to be read again.
func (c *cursor) skipBOM() bool {
	var got [len(bom)]int
	for i, b := range bom {
		got[i] = c.read()
		if got[i] != b {
			for j := i; j >= 0; j-- {
				c.unread(got[j])
			}
			return false
		}
	}
	return true
}

// advance reads the next character into cc, turning CRLF and CR into '\n'
// and counting lines.
func (c *cursor) advance() int {
	ch := c.read()
	if ch == '\r' {
		if next := c.read(); next != '\n' {
			c.unread(next)
		}
		ch = '\n'
	}
	if ch == '\n' {
		c.line++
	}
	c.cc = ch
	return ch
}

func (c *cursor) skipBlank() {
	for c.cc == ' ' || c.cc == '\t' {
		c.advance()
	}
}

func isSpace(ch int) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func (c *cursor) skipSpace() {
	for isSpace(c.cc) {
		c.advance()
	}
}

// skipLine skips up to and including the next newline.
func (c *cursor) skipLine() {
	for c.cc != eof && c.cc != '\n' {
		c.advance()
	}
	if c.cc == '\n' {
		c.advance()
	}
}

func (c *cursor) isComment() bool {
	return c.cc == '#' || c.cc == ';'
}

// scanText appends text up to, not including, delim or the end of the line
// to buf, then trims trailing white space back to keep. Leading blanks are
// skipped. A backslash before a newline or at the end of the input is
// dropped together with the newline; any other backslash is kept.
func (c *cursor) scanText(delim int, buf *strbuf.Buffer, keep int) {
	c.skipBlank()
	for c.cc != eof && c.cc != delim && c.cc != '\n' {
		if c.cc == '\\' {
			if c.advance() == '\n' {
				c.advance()
			} else if c.cc != eof {
				buf.AddByte('\\')
			}
			continue
		}
		buf.AddByte(byte(c.cc))
		c.advance()
	}
	trimRight(buf, keep)
}

func trimRight(buf *strbuf.Buffer, keep int) {
	b := buf.Bytes()
	i := len(b)
	for i > keep && isSpace(int(b[i-1])) {
		i--
	}
	buf.Trunc(i)
}

func (c *cursor) error(filename string, err error) *ParseError {
	return &ParseError{File: filename, Line: c.line, Err: err}
}
