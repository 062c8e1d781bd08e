package iniconf

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = `; top-level entries
name = demo
verbose

[server]
listen = 127.0.0.1:8080
Backend = a
backend = b

[paths]
root = C:\data
home = /srv/demo

[server]
timeout = 30
`

func TestLoadString(t *testing.T) {
	c, err := LoadString(sample)
	require.NoError(t, err)

	var names []string
	for _, s := range c.Sections() {
		names = append(names, s.Name())
	}
	require.Equal(t, []string{"", "server", "paths"}, names)

	v, ok := c.Get("", "name")
	require.True(t, ok)
	require.Equal(t, "demo", v)

	v, ok = c.Get("", "verbose")
	require.True(t, ok)
	require.Equal(t, "", v)

	v, ok = c.Get("server", "BACKEND")
	require.True(t, ok)
	require.Equal(t, "b", v)
	require.Equal(t, []string{"a", "b"}, c.GetAll("server", "backend"))

	v, ok = c.Get("server", "timeout")
	require.True(t, ok)
	require.Equal(t, "30", v)

	_, ok = c.Get("Server", "timeout")
	require.False(t, ok, "section names are case sensitive")
	_, ok = c.Get("server", "missing")
	require.False(t, ok)
	require.Nil(t, c.GetAll("nowhere", "x"))
	require.Nil(t, c.Section("nowhere"))

	server := c.Section("server")
	require.Equal(t, []string{"listen", "Backend", "timeout"}, server.Names())
	require.Equal(t, []Entry{
		{Name: "listen", Value: "127.0.0.1:8080", Line: 6},
		{Name: "Backend", Value: "a", Line: 7},
		{Name: "backend", Value: "b", Line: 8},
		{Name: "timeout", Value: "30", Line: 15},
	}, server.Entries())

	v, ok = c.Get("paths", "root")
	require.True(t, ok)
	require.Equal(t, `C:\data`, v)
}

func TestLoadSources(t *testing.T) {
	c, err := Load(strings.NewReader("[S]\nkey = value\n"))
	require.NoError(t, err)
	v, _ := c.Get("S", "key")
	require.Equal(t, "value", v)

	c, err = LoadFile("testdata/simple.ini")
	require.NoError(t, err)
	v, _ = c.Get("S", "key")
	require.Equal(t, "value", v)

	_, err = LoadFile("testdata/does-not-exist.ini")
	require.Error(t, err)
}

func TestLoadEmpty(t *testing.T) {
	c, err := LoadString("; nothing here\n")
	require.NoError(t, err)
	require.Empty(t, c.Sections())

	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestLoadError(t *testing.T) {
	p := Parser{MaxEntrySize: 8}
	c, err := p.LoadString("[a]\nname = value\n")
	require.Nil(t, c)
	require.True(t, errors.Is(err, ErrNoMem))
}

func TestWriteTo(t *testing.T) {
	c, err := LoadString(sample)
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)
	require.Equal(t, `name = demo
verbose

[server]
listen = 127.0.0.1:8080
Backend = a
backend = b
timeout = 30

[paths]
root = C:\data
home = /srv/demo
`, buf.String())
}

func TestWriteToTrailingBackslash(t *testing.T) {
	c, err := LoadString("a\\ =\nb = 2\nc = d\\ \n")
	require.NoError(t, err)
	require.Equal(t, "a\\", c.Sections()[0].Entries()[0].Name)

	var buf bytes.Buffer
	_, err = c.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, "a\\ \nb = 2\nc = d\\ \n", buf.String())
}

func TestWriteToRoundTrip(t *testing.T) {
	srcs := []string{
		sample,
		"[]\nfirst = 1\n",
		"[a]\nx = 1\n[]\ny = 2\n",
		"trailing = back\\ \n[s]\nk = v\\ \n",
		"a\\ =\nb = 2\n",
		"a = b = c\n[s t]\nweird name = value # not a comment\n",
	}
	for _, src := range srcs {
		c, err := LoadString(src)
		require.NoError(t, err)

		var buf bytes.Buffer
		_, err = c.WriteTo(&buf)
		require.NoError(t, err)

		c2, err := LoadString(buf.String())
		require.NoError(t, err, buf.String())
		require.Equal(t, flatten(c), flatten(c2), buf.String())
	}
}

// flatten lists the content of c without line numbers.
func flatten(c *Config) [][3]string {
	var l [][3]string
	for _, s := range c.Sections() {
		for _, e := range s.Entries() {
			l = append(l, [3]string{s.Name(), e.Name, e.Value})
		}
	}
	return l
}
