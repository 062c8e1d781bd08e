package scan

import "time"

// Stamp holds the broken-down fields written by Date and Time. Each scanner
// updates only its own fields, so a date and a time can be scanned into
// the same Stamp.
type Stamp struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// Time converts st to a time.Time in loc, normalizing out-of-range fields
// the way time.Date does. A nil loc means UTC.
func (st Stamp) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(st.Year, st.Month, st.Day, st.Hour, st.Minute, st.Second, 0, loc)
}

// number scans one or more decimal digits starting at s[i].
func number(s string, i int) (val, j int, ok bool) {
	for j = i; j < len(s) && isDigit(s[j]); j++ {
		val = 10*val + int(s[j]-'0')
	}
	return val, j, j > i
}

func expect(s string, i int, c byte) bool {
	return i < len(s) && s[i] == c
}

// Date scans an ISO 8601 style date, like 2005-07-14. The year may be
// negative and have any number of digits. Only Year, Month and Day are
// set; the values are not range checked.
func Date(s string, st *Stamp) int {
	i, sign := 0, 1
	if expect(s, i, '-') {
		sign = -1
		i++
	}
	y, i, ok := number(s, i)
	if !ok || !expect(s, i, '-') {
		return 0
	}
	m, i, ok := number(s, i+1)
	if !ok || !expect(s, i, '-') {
		return 0
	}
	d, i, ok := number(s, i+1)
	if !ok {
		return 0
	}
	if st != nil {
		st.Year = sign * y
		st.Month = time.Month(m)
		st.Day = d
	}
	return i
}

// Time scans a time of day, like 12:34:56 or 12:34. Seconds default to
// zero. Only Hour, Minute and Second are set; the values are not range
// checked.
func Time(s string, st *Stamp) int {
	h, i, ok := number(s, 0)
	if !ok || !expect(s, i, ':') {
		return 0
	}
	m, i, ok := number(s, i+1)
	if !ok {
		return 0
	}
	sec := 0
	if expect(s, i, ':') {
		if sec, i, ok = number(s, i+1); !ok {
			return 0
		}
	}
	if st != nil {
		st.Hour = h
		st.Minute = m
		st.Second = sec
	}
	return i
}
