// Package print renders numbers and strings into caller-supplied byte
// slices.
//
// Every printer returns the number of bytes in the rendered representation.
// When the destination slice is nil nothing is written and only the length
// is computed, so a caller can size a buffer before allocating it:
//
//	b := make([]byte, print.Int(nil, v))
//	print.Int(b, v)
//
// A non-nil destination must be at least as long as the measured length.
package print

const (
	decDigits = "0123456789"
	hexDigits = "0123456789ABCDEF"
)

// Uint renders val in decimal.
func Uint(b []byte, val uint64) int {
	n := 1
	for v := val; v > 9; v /= 10 {
		n++
	}
	if b != nil {
		// least significant digit first, from the end of the region
		i := n
		for {
			i--
			b[i] = decDigits[val%10]
			val /= 10
			if val == 0 {
				break
			}
		}
	}
	return n
}

// Uint0 renders val in decimal, zero padded to at least n digits.
func Uint0(b []byte, val uint64, n int) int {
	return pad0(b, n, Uint(nil, val), func(b []byte) { Uint(b, val) })
}

// Hex renders val in hexadecimal with uppercase digits.
func Hex(b []byte, val uint64) int {
	n := 1
	for v := val; v > 15; v /= 16 {
		n++
	}
	if b != nil {
		i := n
		for {
			i--
			b[i] = hexDigits[val%16]
			val /= 16
			if val == 0 {
				break
			}
		}
	}
	return n
}

// Hex0 renders val in hexadecimal, zero padded to at least n digits.
func Hex0(b []byte, val uint64, n int) int {
	return pad0(b, n, Hex(nil, val), func(b []byte) { Hex(b, val) })
}

func pad0(b []byte, n, digits int, render func([]byte)) int {
	zeros := 0
	if n > digits {
		zeros = n - digits
	}
	if b != nil {
		for i := 0; i < zeros; i++ {
			b[i] = '0'
		}
		render(b[zeros:])
	}
	return zeros + digits
}

// Int renders val in signed decimal.
func Int(b []byte, val int64) int {
	if val >= 0 {
		return Uint(b, uint64(val))
	}
	// -val overflows for math.MinInt64; negate in the unsigned domain.
	u := -uint64(val)
	if b != nil {
		b[0] = '-'
		b = b[1:]
	}
	return 1 + Uint(b, u)
}

// String copies s.
func String(b []byte, s string) int {
	if b != nil {
		copy(b, s)
	}
	return len(s)
}

// StringN copies s, but no more than limit bytes.
func StringN(b []byte, s string, limit int) int {
	if limit <= 0 {
		return 0
	}
	if len(s) > limit {
		s = s[:limit]
	}
	return String(b, s)
}

// Byte stores a single byte.
func Byte(b []byte, c byte) int {
	if b != nil {
		b[0] = c
	}
	return 1
}
