package pattern

// pcreSpecial lists the characters Quote escapes, besides the delimiter.
const pcreSpecial = `.\+*?[^]$(){}=!<>|:-#`

// Quote returns s with every PCRE metacharacter, and every occurrence of
// delimiter, escaped with a backslash, so the result matches s literally
// when embedded in another pattern. NUL bytes become \000.
//
// Example:
//
//	pattern.Quote("~a.b~i", "~") // `\~a\.b\~i`
func Quote(s, delimiter string) string {
	var delim byte
	hasDelim := len(delimiter) == 1
	if hasDelim {
		delim = delimiter[0]
	}

	// Count how many characters need escaping
	n := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == 0:
			n += 3
		case isSpecial(s[i], pcreSpecial), hasDelim && s[i] == delim:
			n++
		}
	}

	// If no escaping needed, return original
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == 0:
			buf = append(buf, '\\', '0', '0', '0')
			continue
		case isSpecial(c, pcreSpecial), hasDelim && c == delim:
			buf = append(buf, '\\')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// isSpecial returns true if c is in the special characters string.
func isSpecial(c byte, special string) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}
