package print

import (
	"fmt"
	"reflect"
)

const (
	nullString       = "(null)"
	percentBangStr   = "%!"
	missingArgString = "(MISSING)"
)

// sink counts every byte shipped to it and stores those that fit, keeping
// the last byte of buf for the terminating NUL.
type sink struct {
	buf []byte
	n   int
}

func (s *sink) put(c byte) {
	if s.n < len(s.buf)-1 {
		s.buf[s.n] = c
	}
	s.n++
}

func (s *sink) putString(str string) {
	for i := 0; i < len(str); i++ {
		s.put(str[i])
	}
}

func (s *sink) putBytes(p []byte) {
	for _, c := range p {
		s.put(c)
	}
}

func (s *sink) terminate() {
	if len(s.buf) == 0 {
		return
	}
	i := s.n
	if i > len(s.buf)-1 {
		i = len(s.buf) - 1
	}
	s.buf[i] = 0
}

// Format is a much simplified snprintf. It understands the verbs
//
//	%s  string, []byte, error or fmt.Stringer; nil renders as (null)
//	%d  signed decimal
//	%u  unsigned decimal
//	%x  unsigned hexadecimal, uppercase digits
//	%c  the low byte of an integer
//	%%  a percent sign
//
// Any other byte after a percent sign is copied together with the percent
// sign, and a percent sign at the very end of format is copied as is.
//
// At most len(buf)-1 bytes are stored, followed by a NUL byte if buf is not
// empty. The return value is the length of the complete output, whether or
// not it fit, so Format(nil, ...) measures the output.
func Format(buf []byte, format string, args ...any) int {
	return Formatv(buf, format, args)
}

// Formatv is Format with the arguments passed as a slice.
func Formatv(buf []byte, format string, args []any) int {
	var (
		s    = sink{buf: buf}
		num  [24]byte
		argi int
	)
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			s.put(c)
			continue
		}
		i++
		if i == len(format) {
			s.put('%')
			break
		}
		verb := format[i]
		switch verb {
		case 's', 'd', 'u', 'x', 'c':
		case '%':
			s.put('%')
			continue
		default:
			s.put('%')
			s.put(verb)
			continue
		}

		if argi >= len(args) {
			badArg(&s, verb, missingArgString)
			continue
		}
		arg := args[argi]
		argi++

		if verb == 's' {
			str, ok := stringArg(arg)
			if !ok {
				badArg(&s, verb, fmt.Sprintf("(%T=%v)", arg, arg))
				continue
			}
			s.putString(str)
			continue
		}

		u, signed, ok := integerArg(arg)
		if !ok {
			badArg(&s, verb, fmt.Sprintf("(%T=%v)", arg, arg))
			continue
		}
		switch verb {
		case 'd':
			if signed {
				s.putBytes(num[:Int(num[:], int64(u))])
			} else {
				s.putBytes(num[:Uint(num[:], u)])
			}
		case 'u':
			s.putBytes(num[:Uint(num[:], u)])
		case 'x':
			s.putBytes(num[:Hex(num[:], u)])
		case 'c':
			s.put(byte(u))
		}
	}
	s.terminate()
	return s.n
}

func badArg(s *sink, verb byte, what string) {
	s.putString(percentBangStr)
	s.put(verb)
	s.putString(what)
}

func stringArg(arg any) (string, bool) {
	switch v := arg.(type) {
	case nil:
		return nullString, true
	case string:
		return v, true
	case []byte:
		if v == nil {
			return nullString, true
		}
		return string(v), true
	case *string:
		if v == nil {
			return nullString, true
		}
		return *v, true
	}
	if rv := reflect.ValueOf(arg); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return nullString, true
	}
	switch v := arg.(type) {
	case error:
		return v.Error(), true
	case fmt.Stringer:
		return v.String(), true
	}
	return "", false
}

// integerArg returns the bits of an integer argument as uint64 and whether
// they are to be read as two's complement.
func integerArg(arg any) (u uint64, signed, ok bool) {
	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(rv.Int()), true, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), false, true
	}
	return 0, false, false
}
