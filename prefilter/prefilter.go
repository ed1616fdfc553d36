// Package prefilter rejects subjects that cannot match a composed pattern
// before the regex engine runs.
//
// A prefilter searches for the literals a pattern requires (see package
// literal). A subject without any of them cannot match, so grep-like
// operations over many subjects skip the engine for it entirely.
//
// The strategy is selected from the literals:
//   - Single byte → memchr
//   - Single substring → memmem
//   - Several literals → Aho-Corasick automaton
//
// Example usage:
//
//	pf := prefilter.NewBuilder(literal.FromStrings("cat", "dog")).Build()
//	pf.Find([]byte("hot dog"), 0) // 4
package prefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/patternkit/literal"
)

// Prefilter finds candidate positions for a pattern in a haystack.
type Prefilter interface {
	// Find returns the index of the first required literal at or after
	// start, or -1 when none occurs. A candidate does not guarantee a match
	// unless IsComplete is true.
	Find(haystack []byte, start int) int

	// IsComplete reports whether finding a literal is a full match.
	IsComplete() bool

	// LiteralLen returns the length of the literal when it is unique, 0
	// otherwise.
	LiteralLen() int

	// HeapBytes returns the heap memory held by the prefilter.
	HeapBytes() int
}

// Builder selects a prefilter for a literal sequence.
//
// Example:
//
//	pf := prefilter.NewBuilder(seq).Build()
//	if pf != nil && pf.Find(subject, 0) < 0 {
//	    // subject can not match
//	}
type Builder struct {
	literals *literal.Seq
}

// NewBuilder creates a builder for the given required literals. seq may be
// nil when the pattern requires no literal.
func NewBuilder(seq *literal.Seq) *Builder {
	return &Builder{literals: seq}
}

// Build returns the best prefilter for the literals, or nil when none can
// help: no literals, or an empty literal that every subject contains.
func (b *Builder) Build() Prefilter {
	if b.literals.IsEmpty() {
		return nil
	}

	seq := b.literals.Clone()
	seq.Minimize()

	for i := 0; i < seq.Len(); i++ {
		if seq.Get(i).Len() == 0 {
			return nil
		}
	}

	if seq.Len() == 1 {
		lit := seq.Get(0)
		if lit.Len() == 1 {
			return newMemchrPrefilter(lit.Bytes[0], lit.Complete)
		}
		return newMemmemPrefilter(lit.Bytes, lit.Complete)
	}

	return newAhoCorasickPrefilter(seq)
}

// Admits reports whether haystack may match: true when pf is nil or one of
// its literals occurs.
func Admits(pf Prefilter, haystack []byte) bool {
	return pf == nil || pf.Find(haystack, 0) >= 0
}

// memchrPrefilter searches for a single byte.
type memchrPrefilter struct {
	needle   byte
	complete bool
}

func newMemchrPrefilter(needle byte, complete bool) Prefilter {
	return &memchrPrefilter{needle: needle, complete: complete}
}

func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	pos := bytes.IndexByte(haystack[start:], p.needle)
	if pos == -1 {
		return -1
	}
	return start + pos
}

func (p *memchrPrefilter) IsComplete() bool { return p.complete }

func (p *memchrPrefilter) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

func (p *memchrPrefilter) HeapBytes() int { return 0 }

// memmemPrefilter searches for a single substring.
type memmemPrefilter struct {
	needle   []byte
	complete bool
}

// newMemmemPrefilter copies needle to avoid aliasing the sequence.
func newMemmemPrefilter(needle []byte, complete bool) Prefilter {
	needleCopy := make([]byte, len(needle))
	copy(needleCopy, needle)
	return &memmemPrefilter{needle: needleCopy, complete: complete}
}

func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start > len(haystack) {
		return -1
	}
	pos := bytes.Index(haystack[start:], p.needle)
	if pos == -1 {
		return -1
	}
	return start + pos
}

func (p *memmemPrefilter) IsComplete() bool { return p.complete }

func (p *memmemPrefilter) LiteralLen() int {
	if p.complete {
		return len(p.needle)
	}
	return 0
}

func (p *memmemPrefilter) HeapBytes() int { return len(p.needle) }

// ahoCorasickPrefilter searches for any of several literals at once.
type ahoCorasickPrefilter struct {
	auto     *ahocorasick.Automaton
	complete bool
	size     int

	// fallback is used when the automaton can not be built.
	fallback [][]byte
}

func newAhoCorasickPrefilter(seq *literal.Seq) Prefilter {
	p := &ahoCorasickPrefilter{complete: seq.AllComplete()}

	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		lit := seq.Get(i)
		builder.AddPattern(lit.Bytes)
		p.size += lit.Len()
	}

	auto, err := builder.Build()
	if err != nil {
		p.fallback = seq.Bytes()
		return p
	}
	p.auto = auto
	return p
}

func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start > len(haystack) {
		return -1
	}

	if p.auto == nil {
		best := -1
		for _, needle := range p.fallback {
			if pos := bytes.Index(haystack[start:], needle); pos >= 0 && (best == -1 || pos < best) {
				best = pos
			}
		}
		if best == -1 {
			return -1
		}
		return start + best
	}

	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

func (p *ahoCorasickPrefilter) IsComplete() bool { return p.complete }

// LiteralLen is 0: the matched literal varies.
func (p *ahoCorasickPrefilter) LiteralLen() int { return 0 }

func (p *ahoCorasickPrefilter) HeapBytes() int { return p.size }
