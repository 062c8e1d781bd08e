package iniconf

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// ReadFunc adapts a function to the io.ByteReader interface, making any
// byte producer a parser input. The function returns io.EOF at the end of
// the input; any other error aborts the parse. State is whatever the
// function closes over.
type ReadFunc func() (byte, error)

// ReadByte calls f.
func (f ReadFunc) ReadByte() (byte, error) { return f() }

// byteReader returns r itself if it can read single bytes, else a buffered
// reader on top of it.
func byteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// withFile opens filename, hands a byte source to fn and closes the file on
// every path out.
func withFile(filename string, fn func(io.ByteReader) error) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return fn(bufio.NewReader(f))
}

func stringReader(s string) io.ByteReader {
	return strings.NewReader(s)
}
