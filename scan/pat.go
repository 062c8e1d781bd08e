package scan

// Pat matches s against the pattern pat and returns the number of bytes
// matched in s. The pattern language is tiny:
//
//   - a run of blanks at the beginning of pat matches any run of blanks
//     and tabs in s, including the empty one;
//   - any other run of blanks matches a non-empty run of blanks and tabs;
//   - an asterisk matches anything up to the first occurrence in s of the
//     next byte of pat, or the rest of s if it ends the pattern;
//   - every other byte matches itself.
//
// No pattern requires a blank at the start of s; check for one before
// calling Pat if that matters.
func Pat(s, pat string) int {
	si, pi := 0, 0
	for pi < len(pat) {
		c := pat[pi]
		pi++
		switch c {
		case ' ':
			start := si
			for si < len(s) && isBlank(s[si]) {
				si++
			}
			if si == start && pi > 1 {
				return 0
			}
			for pi < len(pat) && isBlank(pat[pi]) {
				pi++
			}
		case '*':
			if pi == len(pat) {
				return len(s)
			}
			next := pat[pi]
			for si < len(s) && s[si] != next {
				si++
			}
		default:
			if si == len(s) || s[si] != c {
				return 0
			}
			si++
		}
	}
	return si
}
