// Package syntax defines the atomic fragments a pattern is composed of.
//
// A Node is a closed tagged variant: its Kind selects how the validated raw
// payload is serialized, and every node owns a quantifier.Resolver that adds
// a repetition suffix. Nodes are created by one constructor per kind; each
// constructor validates its input and returns a *fault.Error describing any
// rejection, leaving the decision of what to do with it to the caller.
package syntax

import (
	"strings"

	"github.com/coregx/patternkit/quantifier"
)

// Kind identifies the variant of a Node.
type Kind uint8

const (
	// KindPlaceholder is a no-op node standing in for a rejected one.
	KindPlaceholder Kind = iota
	KindText
	KindCharacter
	KindCharacterClass
	KindRange
	KindInteger
	KindFloat
	KindMeta
	KindPosix
	KindWhitespace
	KindUnprintable
	KindUnicode
	KindAlternation
)

var kindNames = [...]string{
	KindPlaceholder:    "placeholder",
	KindText:           "text",
	KindCharacter:      "character",
	KindCharacterClass: "class",
	KindRange:          "range",
	KindInteger:        "integer",
	KindFloat:          "float",
	KindMeta:           "meta",
	KindPosix:          "posix",
	KindWhitespace:     "whitespace",
	KindUnprintable:    "unprintable",
	KindUnicode:        "unicode",
	KindAlternation:    "alternation",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Node is one atomic pattern fragment with its own repetition rule.
//
// The payload is fixed at construction; only the quantifier may change
// afterwards.
type Node struct {
	kind Kind
	raw  string
	q    quantifier.Resolver

	// alts holds the stringified members of an alternation.
	alts []string
}

// Placeholder returns a node that serializes to the empty string whatever
// its quantifier.
func Placeholder() *Node {
	return &Node{kind: KindPlaceholder}
}

// Kind returns the variant of n.
func (n *Node) Kind() Kind { return n.kind }

// Raw returns the validated payload without its quantifier.
func (n *Node) Raw() string { return n.raw }

// Quantifier returns a copy of the node's repetition state.
func (n *Node) Quantifier() quantifier.Resolver { return n.q }

// Build serializes the node. Text and number payloads are wrapped in
// parentheses when a quantifier suffix follows, so the suffix applies to the
// whole payload; every other kind takes the suffix directly.
func (n *Node) Build() string {
	suffix := n.q.Resolve()

	switch n.kind {
	case KindPlaceholder:
		return ""
	case KindText, KindInteger, KindFloat:
		if suffix != "" {
			return "(" + n.raw + ")" + suffix
		}
		return n.raw
	default:
		return n.raw + suffix
	}
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return n.Build()
}

// AtLeast sets the minimum number of repetitions.
func (n *Node) AtLeast(count int) *Node {
	n.q.SetMin(count)
	return n
}

// AtMost sets the maximum number of repetitions; -1 means unbounded.
func (n *Node) AtMost(count int) *Node {
	n.q.SetMax(count)
	return n
}

// Between sets both bounds.
func (n *Node) Between(atLeast, atMost int) *Node {
	n.q.SetMin(atLeast)
	n.q.SetMax(atMost)
	return n
}

// Exactly requires exactly count repetitions. Zero leaves the quantifier
// untouched.
func (n *Node) Exactly(count int) *Node {
	if count != 0 {
		count = abs(count)
		n.q.SetMin(count)
		n.q.SetMax(count)
	}
	return n
}

// Unlimited allows any number of repetitions, including none.
func (n *Node) Unlimited() *Node {
	n.q.SetMin(0)
	n.q.SetMax(quantifier.Unbounded)
	return n
}

// Greedy selects greedy repetition.
func (n *Node) Greedy() *Node {
	n.q.SetMode(quantifier.Greedy)
	return n
}

// Reluctant selects lazy repetition.
func (n *Node) Reluctant() *Node {
	n.q.SetMode(quantifier.Reluctant)
	return n
}

// Possessive selects possessive repetition.
func (n *Node) Possessive() *Node {
	n.q.SetMode(quantifier.Possessive)
	return n
}

// Required returns literals of which at least one appears in every match of
// the node. ok is false when the node guarantees no literal text, for
// example because it may repeat zero times or contains metacharacters.
func (n *Node) Required() (lits []string, ok bool) {
	if n.q.Bounded() {
		if minimum, _ := n.q.Bounds(); minimum == 0 {
			return nil, false
		}
	}

	switch n.kind {
	case KindText, KindCharacter, KindInteger:
		if isPlain(n.raw) {
			return []string{n.raw}, true
		}
	case KindAlternation:
		if len(n.alts) == 0 {
			return nil, false
		}
		for _, alt := range n.alts {
			if alt == "" || !isPlain(alt) {
				return nil, false
			}
		}
		return append([]string(nil), n.alts...), true
	}
	return nil, false
}

const metaBytes = `\.+*?()|[]{}^$`

// isPlain reports whether s matches itself literally.
func isPlain(s string) bool {
	return s != "" && !strings.ContainsAny(s, metaBytes)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
