package pattern

import (
	"github.com/coregx/patternkit/syntax"
)

// AddText adds text verbatim. The text is not escaped, so it may carry
// regex syntax of its own.
func (b *Builder) AddText(text string) *syntax.Node {
	return b.add(syntax.NewText(text))
}

// Raw is AddText under the name used for hand-written fragments.
func (b *Builder) Raw(pattern string) *syntax.Node {
	return b.AddText(pattern)
}

// AddCharacter adds the first character of s.
func (b *Builder) AddCharacter(s string) *syntax.Node {
	return b.add(syntax.NewCharacter(s))
}

// AddAnything adds the . wildcard.
func (b *Builder) AddAnything() *syntax.Node {
	return b.add(syntax.NewCharacter("."))
}

// AddCharacterClass adds a [...] class of the characters in chars.
func (b *Builder) AddCharacterClass(chars string, negate bool) *syntax.Node {
	return b.add(syntax.NewCharacterClass(chars, negate))
}

// AddRange adds a [...] class built from spans.
func (b *Builder) AddRange(spans []syntax.Span, negate bool) *syntax.Node {
	return b.add(syntax.NewRange(spans, negate))
}

// AddInteger adds the decimal form of n, unsigned unless syntax.Signed is
// passed.
func (b *Builder) AddInteger(n int, opts ...syntax.NumberOption) *syntax.Node {
	return b.add(syntax.NewInteger(n, opts...), nil)
}

// AddFloat adds the decimal form of f rounded to two decimals, or to
// syntax.Precision decimals.
func (b *Builder) AddFloat(f float64, opts ...syntax.NumberOption) *syntax.Node {
	return b.add(syntax.NewFloat(f, opts...))
}

// AddMeta adds a metacharacter such as \d.
func (b *Builder) AddMeta(m syntax.Metacharacter) *syntax.Node {
	return b.add(syntax.NewMeta(m))
}

// AddPosix adds a POSIX class such as [[:alpha:]].
func (b *Builder) AddPosix(p syntax.PosixClass) *syntax.Node {
	return b.add(syntax.NewPosix(p))
}

// AddWhitespace adds a whitespace symbol.
func (b *Builder) AddWhitespace(w syntax.Whitespace) *syntax.Node {
	return b.add(syntax.NewWhitespace(w))
}

// AddUnprintable adds a control character as a \xHH escape.
func (b *Builder) AddUnprintable(u syntax.Unprintable) *syntax.Node {
	return b.add(syntax.NewUnprintable(u))
}

// AddUnicode adds a \uXXXX escape.
func (b *Builder) AddUnicode(code string) *syntax.Node {
	return b.add(syntax.NewUnicode(code))
}

// AddAlternation adds a (a|b|c) group of values.
func (b *Builder) AddAlternation(values ...string) *syntax.Node {
	return b.add(syntax.NewAlternation(values...), nil)
}

// AddAlternationOf adds an alternation of any slice, stringifying each
// element.
func (b *Builder) AddAlternationOf(values any) *syntax.Node {
	return b.add(syntax.AlternationOf(values))
}

// AddOr adds a bare | separating the preceding and following children.
func (b *Builder) AddOr() *Builder {
	b.add(syntax.NewText("|"))
	return b
}

// SimpleText is AddText returning the builder.
func (b *Builder) SimpleText(text string) *Builder {
	b.AddText(text)
	return b
}

// SimpleCharacter is AddCharacter returning the builder.
func (b *Builder) SimpleCharacter(s string) *Builder {
	b.AddCharacter(s)
	return b
}

// SimpleAnything is AddAnything returning the builder.
func (b *Builder) SimpleAnything() *Builder {
	b.AddAnything()
	return b
}

// SimpleCharacterClass is AddCharacterClass returning the builder.
func (b *Builder) SimpleCharacterClass(chars string, negate bool) *Builder {
	b.AddCharacterClass(chars, negate)
	return b
}

// SimpleRange is AddRange returning the builder.
func (b *Builder) SimpleRange(spans []syntax.Span, negate bool) *Builder {
	b.AddRange(spans, negate)
	return b
}

// SimpleInteger is AddInteger returning the builder.
func (b *Builder) SimpleInteger(n int, opts ...syntax.NumberOption) *Builder {
	b.AddInteger(n, opts...)
	return b
}

// SimpleFloat is AddFloat returning the builder.
func (b *Builder) SimpleFloat(f float64, opts ...syntax.NumberOption) *Builder {
	b.AddFloat(f, opts...)
	return b
}

// SimpleMeta is AddMeta returning the builder.
func (b *Builder) SimpleMeta(m syntax.Metacharacter) *Builder {
	b.AddMeta(m)
	return b
}

// SimplePosix is AddPosix returning the builder.
func (b *Builder) SimplePosix(p syntax.PosixClass) *Builder {
	b.AddPosix(p)
	return b
}

// SimpleWhitespace is AddWhitespace returning the builder.
func (b *Builder) SimpleWhitespace(w syntax.Whitespace) *Builder {
	b.AddWhitespace(w)
	return b
}

// SimpleUnprintable is AddUnprintable returning the builder.
func (b *Builder) SimpleUnprintable(u syntax.Unprintable) *Builder {
	b.AddUnprintable(u)
	return b
}

// SimpleUnicode is AddUnicode returning the builder.
func (b *Builder) SimpleUnicode(code string) *Builder {
	b.AddUnicode(code)
	return b
}

// SimpleAlternation is AddAlternation returning the builder.
func (b *Builder) SimpleAlternation(values ...string) *Builder {
	b.AddAlternation(values...)
	return b
}

// SimpleAlternationOf is AddAlternationOf returning the builder.
func (b *Builder) SimpleAlternationOf(values any) *Builder {
	b.AddAlternationOf(values)
	return b
}
