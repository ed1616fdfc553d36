// Package modifier manages the trailing flags of a delimited pattern.
//
// A Set holds flag symbols such as i (case-insensitive) or m (multiline).
// Each Set may fall back to a shared global Set: when a Set has no flags of
// its own, Build returns the global flags instead. Local and global flags are
// never merged.
//
// Example:
//
//	global := modifier.NewSet(nil)
//	global.Multiline()
//
//	local := modifier.NewSet(global)
//	local.Build() // "m" (inherited)
//
//	local.CaseInsensitive()
//	local.Build() // "i" (global ignored)
package modifier

import (
	"fmt"
	"strings"

	"github.com/coregx/patternkit/internal/sparse"
)

// Flag is a single pattern modifier symbol.
type Flag byte

// Supported flags.
const (
	// CaseInsensitive makes letters match both upper and lower case.
	CaseInsensitive Flag = 'i'

	// Multiline makes ^ and $ match at line boundaries.
	Multiline Flag = 'm'

	// DotAll makes . match newlines.
	DotAll Flag = 's'

	// Extended ignores unescaped whitespace and #-comments in the pattern.
	Extended Flag = 'x'

	// Anchored constrains the match to the start of the subject.
	Anchored Flag = 'A'

	// DollarEndOnly makes $ match only at the very end of the subject.
	DollarEndOnly Flag = 'D'

	// Study asks the engine to spend extra time analysing the pattern.
	Study Flag = 'S'

	// Ungreedy inverts the greediness of quantifiers.
	Ungreedy Flag = 'U'

	// Extra rejects backslash escapes with no special meaning.
	Extra Flag = 'X'

	// Unicode treats pattern and subject as UTF-8.
	Unicode Flag = 'u'
)

// flags lists every supported flag; its index is the flag's slot in the
// sparse set.
var flags = [...]Flag{
	CaseInsensitive,
	Multiline,
	DotAll,
	Extended,
	Anchored,
	DollarEndOnly,
	Study,
	Ungreedy,
	Extra,
	Unicode,
}

// All returns every supported flag.
func All() []Flag {
	return flags[:]
}

// Parse looks up a flag by its symbol.
func Parse(symbol byte) (Flag, error) {
	f := Flag(symbol)
	if f.slot() < 0 {
		return 0, fmt.Errorf("unknown modifier %q", symbol)
	}
	return f, nil
}

// String returns the flag symbol.
func (f Flag) String() string {
	return string(rune(f))
}

// Valid reports whether f is a supported flag.
func (f Flag) Valid() bool {
	return f.slot() >= 0
}

func (f Flag) slot() int {
	for i, known := range flags {
		if known == f {
			return i
		}
	}
	return -1
}

// Set is an ordered, duplicate-free set of flags with an optional global
// fallback. The zero value is not usable; create sets with NewSet.
type Set struct {
	items  *sparse.SparseSet
	global *Set
}

// NewSet creates an empty set. global may be nil; when non-nil, Build falls
// back to it while this set is empty.
func NewSet(global *Set) *Set {
	return &Set{
		items:  sparse.NewSparseSet(uint32(len(flags))),
		global: global,
	}
}

// Add enables a flag. Adding a flag twice has no additional effect, and
// unsupported flags are ignored.
func (s *Set) Add(f Flag) *Set {
	if i := f.slot(); i >= 0 {
		s.items.Insert(uint32(i)) //nolint:gosec // G115: slot is bounded by len(flags)
	}
	return s
}

// Remove disables a flag.
func (s *Set) Remove(f Flag) *Set {
	if i := f.slot(); i >= 0 {
		s.items.Remove(uint32(i)) //nolint:gosec // G115: slot is bounded by len(flags)
	}
	return s
}

// Has reports whether a flag is enabled on this set (globals not consulted).
func (s *Set) Has(f Flag) bool {
	i := f.slot()
	return i >= 0 && s.items.Contains(uint32(i)) //nolint:gosec // G115: slot is bounded by len(flags)
}

// IsEmpty reports whether this set has no flags of its own.
func (s *Set) IsEmpty() bool {
	return s.items.IsEmpty()
}

// Clear removes every flag.
func (s *Set) Clear() {
	s.items.Clear()
}

// Flags returns this set's own flags in the order they were enabled.
func (s *Set) Flags() []Flag {
	values := s.items.Values()
	out := make([]Flag, len(values))
	for i, v := range values {
		out[i] = flags[v]
	}
	return out
}

// Effective returns the flags Build would emit: this set's own flags, or the
// global flags when this set is empty.
func (s *Set) Effective() []Flag {
	if s.IsEmpty() && s.global != nil && !s.global.IsEmpty() {
		return s.global.Effective()
	}
	return s.Flags()
}

// Build returns the concatenated flag symbols.
func (s *Set) Build() string {
	if !s.IsEmpty() {
		var b strings.Builder
		for _, v := range s.items.Values() {
			b.WriteByte(byte(flags[v]))
		}
		return b.String()
	}

	if s.global != nil && !s.global.IsEmpty() {
		return s.global.Build()
	}

	return ""
}

// CaseInsensitive enables the i flag.
func (s *Set) CaseInsensitive() *Set { return s.Add(CaseInsensitive) }

// Multiline enables the m flag.
func (s *Set) Multiline() *Set { return s.Add(Multiline) }

// DotAll enables the s flag.
func (s *Set) DotAll() *Set { return s.Add(DotAll) }

// Extended enables the x flag.
func (s *Set) Extended() *Set { return s.Add(Extended) }

// Anchored enables the A flag.
func (s *Set) Anchored() *Set { return s.Add(Anchored) }

// DollarEndOnly enables the D flag.
func (s *Set) DollarEndOnly() *Set { return s.Add(DollarEndOnly) }

// Study enables the S flag.
func (s *Set) Study() *Set { return s.Add(Study) }

// Ungreedy enables the U flag.
func (s *Set) Ungreedy() *Set { return s.Add(Ungreedy) }

// Extra enables the X flag.
func (s *Set) Extra() *Set { return s.Add(Extra) }

// Unicode enables the u flag.
func (s *Set) Unicode() *Set { return s.Add(Unicode) }
