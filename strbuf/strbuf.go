// Package strbuf implements a growable, always NUL-terminated byte buffer
// with a sticky failure state.
//
// A Buffer is in one of three states. The zero value is Empty and ready to
// use. The first successful append moves it to Active. When a growth would
// exceed the buffer's Max size the buffer moves to Failed and stays there:
// all further mutations are no-ops until Reset is called. This lets a caller
// perform a long sequence of appends and check for failure once at the end.
//
// A Buffer must not be copied after first use and is not safe for
// concurrent use.
package strbuf

import (
	"github.com/go-gcfg/iniconf/print"
)

// State is the allocation state of a Buffer.
type State int

// Buffer states.
const (
	Empty State = iota
	Active
	Failed
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Active:
		return "active"
	case Failed:
		return "failed"
	}
	return "invalid"
}

const minSize = 16

// Buffer is a growable byte buffer. In Active state buf[len] is always a
// NUL byte and len+1 <= cap(buf).
type Buffer struct {
	// Max limits the storage size, terminating NUL included. A growth
	// beyond Max fails the buffer. Zero means no limit.
	Max int

	buf   []byte
	len   int
	state State
}

// State returns the current state.
func (b *Buffer) State() State { return b.state }

// Failed reports whether an append has failed since the last Reset.
func (b *Buffer) Failed() bool { return b.state == Failed }

// Len returns the length of the content, excluding the terminator.
func (b *Buffer) Len() int {
	if b.state != Active {
		return 0
	}
	return b.len
}

// Cap returns the size of the storage, terminator included.
func (b *Buffer) Cap() int {
	if b.state != Active {
		return 0
	}
	return len(b.buf)
}

// Bytes returns the content. The slice aliases the buffer storage and is
// valid only until the next mutation.
func (b *Buffer) Bytes() []byte {
	if b.state != Active {
		return nil
	}
	return b.buf[:b.len:b.len]
}

// String returns a copy of the content.
func (b *Buffer) String() string {
	if b.state != Active {
		return ""
	}
	return string(b.buf[:b.len])
}

// Byte returns the i'th byte of the content.
func (b *Buffer) Byte(i int) byte {
	return b.Bytes()[i]
}

// Ready makes sure there is room for n more bytes plus the terminator.
// It returns false if the buffer is or becomes Failed.
func (b *Buffer) Ready(n int) bool {
	if b.state == Failed {
		return false
	}
	need := b.Len() + n + 1
	if n < 0 || need < 0 || b.Max > 0 && need > b.Max {
		b.fail()
		return false
	}
	if b.state == Active && need <= len(b.buf) {
		return true
	}
	size := len(b.buf)
	if size < minSize {
		size = minSize
	}
	for size < need {
		size *= 2
	}
	if b.Max > 0 && size > b.Max {
		size = b.Max
	}
	nb := make([]byte, size)
	copy(nb, b.buf[:b.Len()])
	b.buf = nb
	if b.state == Empty {
		b.len = 0
		b.state = Active
	}
	b.buf[b.len] = 0
	return true
}

func (b *Buffer) fail() {
	b.buf = nil
	b.len = 0
	b.state = Failed
}

// AddByte appends c.
func (b *Buffer) AddByte(c byte) bool {
	if !b.Ready(1) {
		return false
	}
	b.buf[b.len] = c
	b.len++
	b.buf[b.len] = 0
	return true
}

// AddString appends s.
func (b *Buffer) AddString(s string) bool {
	if !b.Ready(len(s)) {
		return false
	}
	b.len += copy(b.buf[b.len:], s)
	b.buf[b.len] = 0
	return true
}

// AddBytes appends p.
func (b *Buffer) AddBytes(p []byte) bool {
	if !b.Ready(len(p)) {
		return false
	}
	b.len += copy(b.buf[b.len:], p)
	b.buf[b.len] = 0
	return true
}

// Add appends the content of q. A failed q fails b.
func (b *Buffer) Add(q *Buffer) bool {
	if q.Failed() {
		b.fail()
		return false
	}
	return b.AddBytes(q.Bytes())
}

// Addf appends the output of print.Format.
func (b *Buffer) Addf(format string, args ...any) bool {
	n := print.Formatv(nil, format, args)
	if !b.Ready(n) {
		return false
	}
	// Formatv needs room for its own terminator, which lands on ours.
	print.Formatv(b.buf[b.len:b.len+n+1], format, args)
	b.len += n
	return true
}

// Trunc shortens the content to n bytes. It does nothing if n is not
// shorter than the current length.
func (b *Buffer) Trunc(n int) {
	if b.state != Active || n < 0 || n >= b.len {
		return
	}
	b.len = n
	b.buf[n] = 0
}

// Reset releases the storage and returns the buffer to the Empty state.
// Max is kept.
func (b *Buffer) Reset() {
	b.buf = nil
	b.len = 0
	b.state = Empty
}
