package iniconf

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/go-gcfg/iniconf/strbuf"
)

// Handler is called for every entry with a non-empty name. Line is the line
// on which the name starts. Returning a non-nil error stops the parse, and
// the parse function returns that error unchanged.
type Handler func(section, name, value string, line int) error

// Parser holds the settings of a parse. The zero value is ready to use:
// no size limit and no logging.
type Parser struct {
	// MaxEntrySize limits the combined length of the section, name and
	// value of one entry. Exceeding it aborts the parse with ErrNoMem.
	// Zero means no limit.
	MaxEntrySize int

	// Logger receives debug messages about malformed lines the parser
	// recovered from. Nil means no logging.
	Logger log.Logger
}

func (p *Parser) logger() log.Logger {
	if p.Logger == nil {
		return log.NewNopLogger()
	}
	return p.Logger
}

// Parse reads configuration text from src and calls h for every entry.
//
// The text is a sequence of lines. A line whose first non-blank character
// is '#' or ';' is a comment. "[name]" starts a section; entries before the
// first section header belong to the section named "". Any other non-blank
// line is an entry, "name = value" or just "name", which has an empty
// value. Blanks around names and values are dropped. A backslash at the end
// of a line joins it with the next one. Lines end in LF, CRLF or CR, and a
// UTF-8 byte order mark at the very start of the input is skipped.
//
// Entries with an empty name are not reported. A section header lacking its
// closing bracket ends at the end of the line.
//
// Parse returns nil after consuming all of src, the first error returned by
// h, or a *ParseError wrapping ErrNoMem or a read error.
func (p *Parser) Parse(src io.ByteReader, h Handler) error {
	return p.parse("", src, h)
}

// ParseString parses the configuration text s.
func (p *Parser) ParseString(s string, h Handler) error {
	return p.parse("", stringReader(s), h)
}

// ParseReader parses configuration text read from r. The reader is not
// closed. If r does not implement io.ByteReader it is buffered, so it may
// be read beyond the point where h stopped the parse.
func (p *Parser) ParseReader(r io.Reader, h Handler) error {
	return p.parse("", byteReader(r), h)
}

// ParseFile parses the file filename. Errors from opening the file are
// returned as they are.
func (p *Parser) ParseFile(filename string, h Handler) error {
	return withFile(filename, func(src io.ByteReader) error {
		return p.parse(filename, src, h)
	})
}

// ParseFunc parses the bytes returned by successive calls of f. A nil f is
// an empty input.
func (p *Parser) ParseFunc(f ReadFunc, h Handler) error {
	if f == nil {
		return nil
	}
	return p.parse("", f, h)
}

// Parse calls Parser.Parse on a zero Parser.
func Parse(src io.ByteReader, h Handler) error {
	return new(Parser).Parse(src, h)
}

// ParseString calls Parser.ParseString on a zero Parser.
func ParseString(s string, h Handler) error {
	return new(Parser).ParseString(s, h)
}

// ParseReader calls Parser.ParseReader on a zero Parser.
func ParseReader(r io.Reader, h Handler) error {
	return new(Parser).ParseReader(r, h)
}

// ParseFile calls Parser.ParseFile on a zero Parser.
func ParseFile(filename string, h Handler) error {
	return new(Parser).ParseFile(filename, h)
}

// ParseFunc calls Parser.ParseFunc on a zero Parser.
func ParseFunc(f ReadFunc, h Handler) error {
	return new(Parser).ParseFunc(f, h)
}

func (p *Parser) parse(filename string, src io.ByteReader, h Handler) error {
	c := &cursor{src: src, line: 1}
	logger := log.With(p.logger(), "file", filename)

	// buf holds the section, then the name, then the value of the current
	// entry; nameOfs and valueOfs mark where each starts.
	buf := strbuf.Buffer{Max: p.MaxEntrySize}
	nameOfs := 0

	c.skipBOM()
	c.advance()

	for c.cc != eof {
		c.skipSpace()
		switch {
		case c.cc == eof:
		case c.isComment():
			c.skipLine()
		case c.cc == '[':
			line := c.line
			c.advance()
			buf.Trunc(0)
			c.scanText(']', &buf, 0)
			nameOfs = buf.Len()
			if c.cc == ']' {
				c.advance()
			} else {
				level.Debug(logger).Log("msg", "section header not closed", "line", line, "offset", c.offset, "section", buf.String())
				c.skipLine()
			}
			if buf.Failed() {
				return c.error(filename, ErrNoMem)
			}
		default:
			line := c.line
			buf.Trunc(nameOfs)
			c.scanText('=', &buf, nameOfs)
			valueOfs := buf.Len()
			if c.cc == '=' {
				c.advance()
				c.scanText(noDelim, &buf, valueOfs)
			}
			c.advance() // the newline

			if buf.Failed() {
				return c.error(filename, ErrNoMem)
			}
			if c.err != nil {
				return c.error(filename, c.err)
			}
			if valueOfs == nameOfs {
				level.Debug(logger).Log("msg", "dropped entry with empty name", "line", line)
				continue
			}
			if h == nil {
				continue
			}
			b := buf.Bytes()
			if err := h(string(b[:nameOfs]), string(b[nameOfs:valueOfs]), string(b[valueOfs:]), line); err != nil {
				return err
			}
		}
	}

	if c.err != nil {
		return c.error(filename, c.err)
	}
	return nil
}
