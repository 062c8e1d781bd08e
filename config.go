package iniconf

import (
	"io"
	"strings"

	"github.com/go-gcfg/iniconf/strbuf"
)

// Entry is one name/value pair as it appeared in the input.
type Entry struct {
	Name  string
	Value string
	Line  int
}

// Section is the merged content of all section headers with the same name.
type Section struct {
	name    string
	idxer   Idxer
	entries []Entry
	values  map[Idx][]string
}

// Name returns the section name, "" for entries before any header.
func (s *Section) Name() string { return s.name }

// Names returns the distinct variable names of the section, in the order
// they were first seen. Names differing only in case count as one.
func (s *Section) Names() []string { return s.idxer.Names() }

// Entries returns all entries of the section in input order.
func (s *Section) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// Get returns the last value of the variable name, matched ignoring case.
func (s *Section) Get(name string) (string, bool) {
	vs := s.values[s.idxer.Idx(name)]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// GetAll returns every value of the variable name, matched ignoring case.
func (s *Section) GetAll(name string) []string {
	return append([]string(nil), s.values[s.idxer.Idx(name)]...)
}

func (s *Section) add(name, value string, line int) {
	i := s.idxer.add(name)
	s.entries = append(s.entries, Entry{Name: name, Value: value, Line: line})
	if s.values == nil {
		s.values = make(map[Idx][]string)
	}
	s.values[i] = append(s.values[i], value)
}

// Config is a parsed configuration kept in memory. Sections appear only
// once they hold an entry.
type Config struct {
	sections []*Section
	byName   map[string]*Section
}

// Sections returns the sections in the order of their first entry.
func (c *Config) Sections() []*Section {
	return append([]*Section(nil), c.sections...)
}

// Section returns the section called name, matched exactly, or nil.
func (c *Config) Section(name string) *Section {
	return c.byName[name]
}

// Get returns the last value of name in section.
func (c *Config) Get(section, name string) (string, bool) {
	s := c.Section(section)
	if s == nil {
		return "", false
	}
	return s.Get(name)
}

// GetAll returns every value of name in section.
func (c *Config) GetAll(section, name string) []string {
	s := c.Section(section)
	if s == nil {
		return nil
	}
	return s.GetAll(name)
}

func (c *Config) add(section, name, value string, line int) error {
	s := c.byName[section]
	if s == nil {
		if c.byName == nil {
			c.byName = make(map[string]*Section)
		}
		s = &Section{name: section}
		c.byName[section] = s
		c.sections = append(c.sections, s)
	}
	s.add(name, value, line)
	return nil
}

// WriteTo writes c to w in a form Load reads back into an equal Config.
// Entries of a leading section named "" come first, without a header.
func (c *Config) WriteTo(w io.Writer) (int64, error) {
	var buf strbuf.Buffer
	for i, s := range c.sections {
		if i > 0 {
			buf.AddByte('\n')
		}
		if i > 0 || s.name != "" {
			buf.Addf("[%s]\n", s.name)
		}
		for _, e := range s.entries {
			switch {
			case e.Value == "" && strings.HasSuffix(e.Name, "\\"):
				buf.Addf("%s \n", e.Name)
			case e.Value == "":
				buf.Addf("%s\n", e.Name)
			case e.Value[len(e.Value)-1] == '\\':
				// keep the backslash off the newline
				buf.Addf("%s = %s \n", e.Name, e.Value)
			default:
				buf.Addf("%s = %s\n", e.Name, e.Value)
			}
		}
	}
	if buf.Failed() {
		return 0, ErrNoMem
	}
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

func (p *Parser) load(filename string, src io.ByteReader) (*Config, error) {
	c := new(Config)
	if err := p.parse(filename, src, c.add); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads configuration text from r into a new Config.
func (p *Parser) Load(r io.Reader) (*Config, error) {
	return p.load("", byteReader(r))
}

// LoadString reads the configuration text s into a new Config.
func (p *Parser) LoadString(s string) (*Config, error) {
	return p.load("", stringReader(s))
}

// LoadFile reads the file filename into a new Config.
func (p *Parser) LoadFile(filename string) (*Config, error) {
	var c *Config
	err := withFile(filename, func(src io.ByteReader) error {
		var err error
		c, err = p.load(filename, src)
		return err
	})
	return c, err
}

// Load calls Parser.Load on a zero Parser.
func Load(r io.Reader) (*Config, error) { return new(Parser).Load(r) }

// LoadString calls Parser.LoadString on a zero Parser.
func LoadString(s string) (*Config, error) { return new(Parser).LoadString(s) }

// LoadFile calls Parser.LoadFile on a zero Parser.
func LoadFile(filename string) (*Config, error) { return new(Parser).LoadFile(filename) }
