package pattern

import (
	"strings"

	"github.com/coregx/patternkit/literal"
	"github.com/coregx/patternkit/modifier"
	"github.com/coregx/patternkit/syntax"
)

// RequiredLiterals returns literals of which at least one occurs in every
// match of the composed pattern, or nil when no such literal is known.
//
// The analysis is conservative: a bare | anywhere in the builder, an
// effective case-insensitive or free-spacing flag, or raw text opening an
// inline group such as (?i) disables it.
func (b *Builder) RequiredLiterals() *literal.Seq {
	if b.err != nil || b.IsEmpty() || b.inlineGroups() {
		return nil
	}
	for _, f := range b.mods.Effective() {
		if f == modifier.CaseInsensitive || f == modifier.Extended {
			return nil
		}
	}

	seq := b.required()
	if seq.IsEmpty() {
		return nil
	}

	if b.Len() == 1 && len(b.mods.Effective()) == 0 {
		if it := b.items[b.keys[0]]; it.Node != nil {
			if q := it.Node.Quantifier(); !q.IsSet() {
				seq = complete(seq)
			}
		}
	}
	return seq
}

// required picks the most selective requirement among the children: the
// one whose shortest literal is longest.
func (b *Builder) required() *literal.Seq {
	var best []string
	bestLen := 0

	for _, k := range b.keys {
		it := b.items[k]

		var lits []string
		var ok bool
		switch {
		case it.Group != nil:
			if s := it.Group.required(); !s.IsEmpty() {
				for _, raw := range s.Bytes() {
					lits = append(lits, string(raw))
				}
				ok = true
			}
		case it.Node.Kind() == syntax.KindText && strings.Contains(it.Node.Raw(), "|"):
			return nil
		default:
			lits, ok = it.Node.Required()
		}
		if !ok {
			continue
		}

		shortest := len(lits[0])
		for _, l := range lits[1:] {
			shortest = min(shortest, len(l))
		}
		if shortest > bestLen || (shortest == bestLen && len(lits) < len(best)) {
			best, bestLen = lits, shortest
		}
	}

	if best == nil {
		return nil
	}
	return literal.FromStrings(best...)
}

// inlineGroups reports whether any text child, at any depth, contains (?.
// Inline flags change how the literals around them match.
func (b *Builder) inlineGroups() bool {
	for _, k := range b.keys {
		it := b.items[k]
		if it.Group != nil {
			if it.Group.inlineGroups() {
				return true
			}
			continue
		}
		if it.Node.Kind() == syntax.KindText && strings.Contains(it.Node.Raw(), "(?") {
			return true
		}
	}
	return false
}

// complete marks every literal of seq as a whole match.
func complete(seq *literal.Seq) *literal.Seq {
	lits := make([]literal.Literal, seq.Len())
	for i := range lits {
		lits[i] = literal.NewLiteral(seq.Get(i).Bytes, true)
	}
	return literal.NewSeq(lits...)
}
