package syntax

import "strings"

var metaNames = [...]string{
	Digit:              "digit",
	NonDigit:           "non_digit",
	HorizontalSpace:    "horizontal_space",
	NonHorizontalSpace: "non_horizontal_space",
	AnyChar:            "any",
	LineStart:          "line_start",
	LineEnd:            "line_end",
	Space:              "space",
	NonSpace:           "non_space",
	VerticalSpace:      "vertical_space",
	NonVerticalSpace:   "non_vertical_space",
	Word:               "word",
	NonWord:            "non_word",
	WordBoundary:       "word_boundary",
	UnicodeEscape:      "unicode",
}

var whitespaceNames = [...]string{
	AnyWhitespace:  "any",
	SingleSpace:    "space",
	Tab:            "tab",
	AnyVertical:    "vertical",
	AnyHorizontal:  "horizontal",
	Newline:        "newline",
	CarriageReturn: "carriage_return",
	LineFeed:       "line_feed",
	NullChar:       "null",
}

var unprintableNames = [...]string{
	"NUL", "SOH", "STX", "ETX", "EOT", "ENQ", "ACK", "BEL",
	"BS", "HT", "LF", "VT", "FF", "CR", "SO", "SI",
	"DLE", "DC1", "DC2", "DC3", "DC4", "NAK", "SYN", "ETB",
	"CAN", "EM", "SUB", "ESC", "FS", "GS", "RS", "US",
	"SP",
}

// Name returns the metacharacter name, such as "non_digit".
func (m Metacharacter) Name() string {
	if !m.Valid() {
		return ""
	}
	return metaNames[m]
}

// Name returns the whitespace kind name, such as "tab".
func (w Whitespace) Name() string {
	if !w.Valid() {
		return ""
	}
	return whitespaceNames[w]
}

// Name returns the ASCII abbreviation, such as "ESC".
func (u Unprintable) Name() string {
	switch {
	case u == DEL:
		return "DEL"
	case u.Valid():
		return unprintableNames[u]
	}
	return ""
}

// MetacharacterNamed looks up a metacharacter by name.
func MetacharacterNamed(name string) (Metacharacter, bool) {
	i := indexOf(metaNames[:], name)
	return Metacharacter(i), i >= 0 //nolint:gosec // G115: bounded by len(metaNames)
}

// WhitespaceNamed looks up a whitespace kind by name.
func WhitespaceNamed(name string) (Whitespace, bool) {
	i := indexOf(whitespaceNames[:], name)
	return Whitespace(i), i >= 0 //nolint:gosec // G115: bounded by len(whitespaceNames)
}

// UnprintableNamed looks up an unprintable character by its ASCII
// abbreviation, ignoring case.
func UnprintableNamed(name string) (Unprintable, bool) {
	name = strings.ToUpper(name)
	if name == "DEL" {
		return DEL, true
	}
	i := indexOf(unprintableNames[:], name)
	return Unprintable(i), i >= 0 //nolint:gosec // G115: bounded by len(unprintableNames)
}

// MetacharacterNames returns every metacharacter name in declaration order.
func MetacharacterNames() []string { return append([]string(nil), metaNames[:]...) }

// PosixClassNames returns every POSIX class name in declaration order.
func PosixClassNames() []string { return append([]string(nil), posixNames[:]...) }

// WhitespaceNames returns every whitespace kind name in declaration order.
func WhitespaceNames() []string { return append([]string(nil), whitespaceNames[:]...) }

// UnprintableNames returns every unprintable abbreviation, DEL last.
func UnprintableNames() []string {
	return append(append([]string(nil), unprintableNames[:]...), "DEL")
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
