package pattern

import "github.com/coregx/patternkit/syntax"

// PosixAlpha adds [[:alpha:]].
func (b *Builder) PosixAlpha() *syntax.Node { return b.AddPosix(syntax.PosixAlpha) }

// PosixAlphaNumeric adds [[:alnum:]].
func (b *Builder) PosixAlphaNumeric() *syntax.Node { return b.AddPosix(syntax.PosixAlnum) }

// PosixBlank adds [[:blank:]].
func (b *Builder) PosixBlank() *syntax.Node { return b.AddPosix(syntax.PosixBlank) }

// PosixControl adds [[:cntrl:]].
func (b *Builder) PosixControl() *syntax.Node { return b.AddPosix(syntax.PosixCntrl) }

// PosixDigit adds [[:digit:]].
func (b *Builder) PosixDigit() *syntax.Node { return b.AddPosix(syntax.PosixDigit) }

// PosixGraph adds [[:graph:]].
func (b *Builder) PosixGraph() *syntax.Node { return b.AddPosix(syntax.PosixGraph) }

// PosixLower adds [[:lower:]].
func (b *Builder) PosixLower() *syntax.Node { return b.AddPosix(syntax.PosixLower) }

// PosixPrint adds [[:print:]].
func (b *Builder) PosixPrint() *syntax.Node { return b.AddPosix(syntax.PosixPrint) }

// PosixPunctuation adds [[:punct:]].
func (b *Builder) PosixPunctuation() *syntax.Node { return b.AddPosix(syntax.PosixPunct) }

// PosixSpace adds [[:space:]].
func (b *Builder) PosixSpace() *syntax.Node { return b.AddPosix(syntax.PosixSpace) }

// PosixUpper adds [[:upper:]].
func (b *Builder) PosixUpper() *syntax.Node { return b.AddPosix(syntax.PosixUpper) }

// PosixHexDigit adds [[:xdigit:]].
func (b *Builder) PosixHexDigit() *syntax.Node { return b.AddPosix(syntax.PosixXDigit) }

// PosixASCII adds [[:ascii:]].
func (b *Builder) PosixASCII() *syntax.Node { return b.AddPosix(syntax.PosixASCII) }

// PosixWord adds [[:word:]].
func (b *Builder) PosixWord() *syntax.Node { return b.AddPosix(syntax.PosixWord) }
