package iniconf

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"gopkg.in/warnings.v0"

	"github.com/go-gcfg/iniconf/scan"
)

var errBadHeader = errors.New("invalid section header")

// splitSection splits section header text into a section name and an
// optional quoted subsection name: `name` or `name "sub"`.
func splitSection(text string) (sect, sub string, err error) {
	n := scan.Until(text, " \t\"")
	sect, rest := text[:n], text[n:]
	if rest == "" {
		return sect, "", nil
	}
	rest = rest[scan.Blank(rest):]
	if sect == "" || len(rest) < 2 || rest[0] != '"' || rest[len(rest)-1] != '"' {
		return "", "", fmt.Errorf("%w: %q", errBadHeader, text)
	}
	sub = rest[1 : len(rest)-1]
	if sub == "" {
		return "", "", fmt.Errorf("%w: empty subsection name in %q", errBadHeader, text)
	}
	return sect, sub, nil
}

// binder routes the entries of one parse into a config struct.
type binder struct {
	c        *warnings.Collector
	vCfg     reflect.Value
	filename string

	header string        // raw section text of the previous entry
	sect   string        // parsed from header
	sub    string        // parsed from header
	vSect  reflect.Value // invalid while the section has no field
	seen   bool
}

func (b *binder) handle(section, name, value string, line int) error {
	if !b.seen || section != b.header {
		b.seen, b.header = true, section
		if err := b.enter(section); err != nil {
			return b.fatal(line, err)
		}
	}
	if !b.vSect.IsValid() {
		return nil
	}
	if err := setVariable(b.c, b.vSect, b.sect, b.sub, name, value); err != nil {
		return b.fatal(line, err)
	}
	return nil
}

// fatal hands err to the collector with the position of the entry.
func (b *binder) fatal(line int, err error) error {
	return b.c.Collect(&ParseError{File: b.filename, Line: line, Err: err})
}

func (b *binder) enter(section string) error {
	sect, sub, err := splitSection(section)
	if err != nil {
		b.vSect = reflect.Value{}
		return err
	}
	b.sect, b.sub = sect, sub
	b.vSect, err = sectionValue(b.c, b.vCfg, sect, sub)
	return err
}

func (p *Parser) readInto(config any, filename string, src io.ByteReader) error {
	vPCfg := reflect.ValueOf(config)
	if vPCfg.Kind() != reflect.Ptr || vPCfg.Elem().Kind() != reflect.Struct {
		panic(fmt.Errorf("config must be a pointer to a struct"))
	}
	b := &binder{
		c:        warnings.NewCollector(isFatal),
		vCfg:     vPCfg.Elem(),
		filename: filename,
	}
	if err := p.parse(filename, src, b.handle); err != nil {
		return err
	}
	return b.c.Done()
}

// ReadInto reads configuration text from r and sets the values into the
// corresponding fields in config.
//
// Config must be a pointer to a struct. Entries before the first section
// header set fields of config itself. Each section corresponds to a struct
// field in config, and each variable in a section corresponds to a field in
// the section struct. The name of the field must match the name of the
// section or variable, ignoring case, or be given by a `gcfg:"name"` tag.
// Hyphens in section and variable names correspond to underscores in field
// names.
//
// A section header may carry a quoted subsection name, as in
// `[profile "work"]`. For sections with subsections, the corresponding field
// in config must be a map with string keys and pointer-to-struct values;
// the subsection name (case sensitive) is the map key, and a header without
// a subsection stores its values under "". A section field may also be a
// pointer to a struct, allocated on first use, or a map[string]string,
// which takes any variable.
//
// Values are set according to the field type:
//
//   - integer types take decimal, or hexadecimal with a 0x prefix
//   - time.Time takes "2006-01-02" or "2006-01-02 15:04[:05]" in UTC, or
//     anything its UnmarshalText accepts
//   - netip.Addr and netip.AddrPort take dotted IPv4 (with ":port"), or
//     anything their UnmarshalText accepts
//   - types implementing encoding.TextUnmarshaler use UnmarshalText
//   - strings take the value as it is
//   - bools take true, yes, on, 1, false, no, off or 0, ignoring case; an
//     empty value means true
//   - everything else goes through fmt.Sscanf with the verb "%v", which
//     must consume the whole value
//
// Fields of an unnamed slice type are multi-valued: each entry appends
// one value.
//
// Sections and variables without a corresponding field produce warnings.
// They do not stop the parse and are returned together in a
// warnings.List once parsing is done; use FatalOnly to ignore them. A value
// that cannot be set stops the parse with a *ParseError.
//
// ReadInto panics if config is not a pointer to a struct, or if a section
// field is not of a suitable type.
func (p *Parser) ReadInto(config any, r io.Reader) error {
	return p.readInto(config, "", byteReader(r))
}

// ReadStringInto reads configuration text from str into config; see
// ReadInto.
func (p *Parser) ReadStringInto(config any, str string) error {
	return p.readInto(config, "", stringReader(str))
}

// ReadFileInto reads the file filename into config; see ReadInto.
func (p *Parser) ReadFileInto(config any, filename string) error {
	return withFile(filename, func(src io.ByteReader) error {
		return p.readInto(config, filename, src)
	})
}

// ReadInto calls Parser.ReadInto on a zero Parser.
func ReadInto(config any, r io.Reader) error {
	return new(Parser).ReadInto(config, r)
}

// ReadStringInto calls Parser.ReadStringInto on a zero Parser.
func ReadStringInto(config any, str string) error {
	return new(Parser).ReadStringInto(config, str)
}

// ReadFileInto calls Parser.ReadFileInto on a zero Parser.
func ReadFileInto(config any, filename string) error {
	return new(Parser).ReadFileInto(config, filename)
}
