package syntax

import (
	"fmt"

	"github.com/coregx/coregex"

	"github.com/coregx/patternkit/fault"
)

// Metacharacter is a predefined escape or anchor.
type Metacharacter uint8

const (
	Digit Metacharacter = iota
	NonDigit
	HorizontalSpace
	NonHorizontalSpace
	AnyChar
	LineStart
	LineEnd
	Space
	NonSpace
	VerticalSpace
	NonVerticalSpace
	Word
	NonWord
	WordBoundary
	UnicodeEscape
)

var metaSymbols = [...]string{
	Digit:              `\d`,
	NonDigit:           `\D`,
	HorizontalSpace:    `\h`,
	NonHorizontalSpace: `\H`,
	AnyChar:            `.`,
	LineStart:          `^`,
	LineEnd:            `$`,
	Space:              `\s`,
	NonSpace:           `\S`,
	VerticalSpace:      `\v`,
	NonVerticalSpace:   `\V`,
	Word:               `\w`,
	NonWord:            `\W`,
	WordBoundary:       `\b`,
	UnicodeEscape:      `\u`,
}

// Valid reports whether m is a known metacharacter.
func (m Metacharacter) Valid() bool { return int(m) < len(metaSymbols) }

// String returns the pattern symbol.
func (m Metacharacter) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Metacharacter(%d)", m)
	}
	return metaSymbols[m]
}

// PosixClass is a named POSIX character class.
type PosixClass uint8

const (
	PosixASCII PosixClass = iota
	PosixAlpha
	PosixAlnum
	PosixBlank
	PosixCntrl
	PosixDigit
	PosixGraph
	PosixLower
	PosixPrint
	PosixPunct
	PosixSpace
	PosixUpper
	PosixWord
	PosixXDigit
)

var posixNames = [...]string{
	PosixASCII:  "ascii",
	PosixAlpha:  "alpha",
	PosixAlnum:  "alnum",
	PosixBlank:  "blank",
	PosixCntrl:  "cntrl",
	PosixDigit:  "digit",
	PosixGraph:  "graph",
	PosixLower:  "lower",
	PosixPrint:  "print",
	PosixPunct:  "punct",
	PosixSpace:  "space",
	PosixUpper:  "upper",
	PosixWord:   "word",
	PosixXDigit: "xdigit",
}

// Valid reports whether p is a known class.
func (p PosixClass) Valid() bool { return int(p) < len(posixNames) }

// Name returns the class name, such as "alpha".
func (p PosixClass) Name() string {
	if !p.Valid() {
		return ""
	}
	return posixNames[p]
}

// String returns the bracketed class, such as "[[:alpha:]]".
func (p PosixClass) String() string {
	if !p.Valid() {
		return fmt.Sprintf("PosixClass(%d)", p)
	}
	return "[[:" + posixNames[p] + ":]]"
}

// PosixClassNamed looks up a class by name.
func PosixClassNamed(name string) (PosixClass, bool) {
	for i, n := range posixNames {
		if n == name {
			return PosixClass(i), true
		}
	}
	return 0, false
}

// Whitespace selects a kind of blank.
type Whitespace uint8

const (
	AnyWhitespace Whitespace = iota
	SingleSpace
	Tab
	AnyVertical
	AnyHorizontal
	Newline
	CarriageReturn
	LineFeed
	NullChar
)

var whitespaceSymbols = [...]string{
	AnyWhitespace:  `\s`,
	SingleSpace:    ` `,
	Tab:            `\t`,
	AnyVertical:    `\v`,
	AnyHorizontal:  `\h`,
	Newline:        `\n`,
	CarriageReturn: `\r`,
	LineFeed:       `\n`,
	NullChar:       `\0`,
}

// Valid reports whether w is a known whitespace kind.
func (w Whitespace) Valid() bool { return int(w) < len(whitespaceSymbols) }

// String returns the pattern symbol.
func (w Whitespace) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Whitespace(%d)", w)
	}
	return whitespaceSymbols[w]
}

// Unprintable is an ASCII control character, space or DEL.
type Unprintable byte

const (
	NUL Unprintable = iota
	SOH
	STX
	ETX
	EOT
	ENQ
	ACK
	BEL
	BS
	HT
	LF
	VT
	FF
	CR
	SO
	SI
	DLE
	DC1
	DC2
	DC3
	DC4
	NAK
	SYN
	ETB
	CAN
	EM
	SUB
	ESC
	FS
	GS
	RS
	US
	SP
	DEL Unprintable = 127
)

// Valid reports whether u is a control character, space or DEL.
func (u Unprintable) Valid() bool { return u <= SP || u == DEL }

// String returns the \xHH escape.
func (u Unprintable) String() string {
	return fmt.Sprintf(`\x%02x`, byte(u))
}

// NewMeta creates a metacharacter node.
func NewMeta(m Metacharacter) (*Node, error) {
	if !m.Valid() {
		return nil, fault.Newf(fault.InvalidPattern, "unknown metacharacter %d", uint8(m))
	}
	return &Node{kind: KindMeta, raw: m.String()}, nil
}

// NewPosix creates a POSIX class node.
func NewPosix(p PosixClass) (*Node, error) {
	if !p.Valid() {
		return nil, fault.Newf(fault.InvalidPattern, "unknown posix class %d", uint8(p))
	}
	return &Node{kind: KindPosix, raw: p.String()}, nil
}

// NewWhitespace creates a whitespace node.
func NewWhitespace(w Whitespace) (*Node, error) {
	if !w.Valid() {
		return nil, fault.Newf(fault.InvalidPattern, "unknown whitespace kind %d", uint8(w))
	}
	return &Node{kind: KindWhitespace, raw: w.String()}, nil
}

// NewUnprintable creates a node matching an unprintable character.
func NewUnprintable(u Unprintable) (*Node, error) {
	if !u.Valid() {
		return nil, fault.Newf(fault.InvalidPattern, "character %d is printable", byte(u))
	}
	return &Node{kind: KindUnprintable, raw: u.String()}, nil
}

var unicodeEscape = coregex.MustCompile(`\\u(?:[0-9A-Fa-f]{2}){1,4}`)

// NewUnicode creates a node from a \uXXXX escape found in code: \u followed
// by one to four pairs of hex digits. Only the matched escape is kept.
func NewUnicode(code string) (*Node, error) {
	escape := unicodeEscape.FindString(code)
	if escape == "" {
		return nil, fault.Newf(fault.InvalidPattern, "%q is not a valid unicode escape", code)
	}
	return &Node{kind: KindUnicode, raw: escape}, nil
}
