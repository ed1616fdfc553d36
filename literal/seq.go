// Package literal describes the literal text a composed pattern requires.
//
// Before a subject is handed to a regex engine, a pattern's required literals
// let the caller skip subjects that cannot possibly match: if every match of
// /(7){2,4}(cat|dog)/ contains "cat" or "dog", a line containing neither is
// rejected without running the engine.
//
// Key concepts:
//   - A Literal is a byte sequence that appears in matches
//   - A Seq is a set of alternative literals; at least one of them appears in
//     every match
//   - Minimize drops literals implied by shorter ones
package literal

import (
	"bytes"
	"sort"
)

// Literal is a byte sequence required by a pattern. Complete reports whether
// the literal is the whole match, in which case finding it is enough.
//
// Example:
//   - Pattern ~hello~ → Literal{[]byte("hello"), true}
//   - Pattern ~hello\d~ → Literal{[]byte("hello"), false}
type Literal struct {
	// Bytes contains the literal byte sequence.
	Bytes []byte

	// Complete is true when the literal is the entire match.
	Complete bool
}

// NewLiteral creates a new Literal from the given byte sequence and completeness flag.
//
// Example:
//
//	lit := literal.NewLiteral([]byte("hello"), true)
//	fmt.Printf("%s (complete=%v)\n", lit.Bytes, lit.Complete)
//	// Output: hello (complete=true)
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{
		Bytes:    b,
		Complete: complete,
	}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a string representation of the literal for debugging purposes.
// Format: "literal{bytes, complete=true/false}"
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq is a set of alternative literals: every match contains at least one
// of them. A nil or empty Seq imposes no requirement.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("cat"), false),
//	    literal.NewLiteral([]byte("dog"), false),
//	)
//	fmt.Println(seq.Len()) // Output: 2
type Seq struct {
	literals []Literal
}

// NewSeq creates a new sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{
		literals: lits,
	}
}

// FromStrings creates a sequence of incomplete literals.
func FromStrings(strs ...string) *Seq {
	lits := make([]Literal, len(strs))
	for i, s := range strs {
		lits[i] = NewLiteral([]byte(s), false)
	}
	return NewSeq(lits...)
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at the specified index.
// Panics if index is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty returns true if the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// AllComplete reports whether every literal is a complete match.
func (s *Seq) AllComplete() bool {
	if s.IsEmpty() {
		return false
	}
	for _, lit := range s.literals {
		if !lit.Complete {
			return false
		}
	}
	return true
}

// Bytes returns the literal byte sequences in order.
func (s *Seq) Bytes() [][]byte {
	if s.IsEmpty() {
		return nil
	}
	out := make([][]byte, len(s.literals))
	for i, lit := range s.literals {
		out[i] = lit.Bytes
	}
	return out
}

// Clone returns a deep copy of the sequence.
// All literals and their byte slices are duplicated.
func (s *Seq) Clone() *Seq {
	if s == nil {
		return nil
	}

	cloned := make([]Literal, len(s.literals))
	for i, lit := range s.literals {
		bytesCopy := make([]byte, len(lit.Bytes))
		copy(bytesCopy, lit.Bytes)
		cloned[i] = Literal{
			Bytes:    bytesCopy,
			Complete: lit.Complete,
		}
	}

	return &Seq{literals: cloned}
}

// Minimize removes redundant literals from the sequence.
//
// A literal L is redundant if a shorter kept literal S occurs inside L: any
// subject containing L also contains S, so searching for S alone accepts
// the same subjects. Duplicates are dropped too. A redundant literal loses
// its Complete flag to the literal that covers it.
//
// Algorithm:
//  1. Sort literals by length (shortest first), keeping input order for ties
//  2. For each literal L:
//     - Check if any kept literal S is contained in L
//     - If yes, L is redundant (skip it)
//     - If no, keep L
//
// Example:
//
//	seq := literal.FromStrings("foo", "seafood")
//	seq.Minimize()
//	fmt.Println(seq.Len()) // Output: 1 (only "foo" remains)
func (s *Seq) Minimize() {
	if s.IsEmpty() {
		return
	}

	sort.SliceStable(s.literals, func(i, j int) bool {
		return len(s.literals[i].Bytes) < len(s.literals[j].Bytes)
	})

	kept := make([]Literal, 0, len(s.literals))
	for _, current := range s.literals {
		redundant := false
		for k := range kept {
			if bytes.Contains(current.Bytes, kept[k].Bytes) {
				if !bytes.Equal(current.Bytes, kept[k].Bytes) {
					kept[k].Complete = false
				}
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, current)
		}
	}

	s.literals = kept
}

// String returns a string representation for debugging.
// Format: "Seq[lit1, lit2, ...]"
func (s *Seq) String() string {
	if s.IsEmpty() {
		return "Seq[]"
	}

	var buf bytes.Buffer
	buf.WriteString("Seq[")
	for i, lit := range s.literals {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(lit.String())
	}
	buf.WriteString("]")
	return buf.String()
}
