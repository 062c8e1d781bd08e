// Package scan implements small fixed-grammar scanners.
//
// Each scanner matches its grammar against a prefix of the input and returns
// the number of bytes consumed. A return of 0 means no match; the output
// argument, if any, is then left unchanged. Output arguments may be nil when
// only the length of the match is of interest. Scanners never consume part
// of a token.
//
// The numeric scanners do not check for overflow: digits beyond the range
// of the result type wrap around silently.
package scan

import "strings"

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isBlank(c byte) bool { return c == ' ' || c == '\t' }

// Int scans a decimal integer with an optional leading sign.
// A sign without digits does not match.
func Int(s string, v *int) int {
	i, neg := 0, false
	if len(s) > 0 {
		switch s[0] {
		case '-':
			neg = true
			i++
		case '+':
			i++
		}
	}
	start := i
	// accumulate -val so that math.MinInt does not overflow
	val := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		val = 10*val - int(s[i]-'0')
	}
	if i == start {
		return 0
	}
	if v != nil {
		if neg {
			*v = val
		} else {
			*v = -val
		}
	}
	return i
}

// Uint scans an unsigned decimal integer.
func Uint(s string, v *uint) int {
	var u uint
	i := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		u = 10*u + uint(s[i]-'0')
	}
	if i > 0 && v != nil {
		*v = u
	}
	return i
}

// Ulong scans an unsigned 64-bit decimal integer.
func Ulong(s string, v *uint64) int {
	var u uint64
	i := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		u = 10*u + uint64(s[i]-'0')
	}
	if i > 0 && v != nil {
		*v = u
	}
	return i
}

// Hex scans hexadecimal digits, ignoring case. There is no 0x prefix.
func Hex(s string, v *uint64) int {
	var u uint64
	i := 0
	for ; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			break
		}
		u = 16*u + uint64(d)
	}
	if i > 0 && v != nil {
		*v = u
	}
	return i
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

// Blank scans spaces and tabs.
func Blank(s string) int {
	i := 0
	for i < len(s) && isBlank(s[i]) {
		i++
	}
	return i
}

// White scans the ASCII white space characters space, \f, \n, \r, \t
// and \v.
func White(s string) int {
	i := 0
	for ; i < len(s); i++ {
		switch s[i] {
		case ' ', '\f', '\n', '\r', '\t', '\v':
		default:
			return i
		}
	}
	return i
}

// Text scans the literal t.
func Text(s, t string) int {
	if len(t) == 0 || len(s) < len(t) || s[:len(t)] != t {
		return 0
	}
	return len(t)
}

// Until scans bytes that are not in reject.
func Until(s, reject string) int {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(reject, s[i]) >= 0 {
			return i
		}
	}
	return len(s)
}

// While scans bytes that are in accept.
func While(s, accept string) int {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(accept, s[i]) < 0 {
			return i
		}
	}
	return len(s)
}
