// Package quantifier resolves repetition rules into regex quantifier suffixes.
//
// A Resolver holds a minimum, a maximum and an optional repetition mode, and
// turns them into the shortest valid suffix:
//
//	min=0 max=1   → ?
//	min=0 max=-1  → *
//	min=0 max=5   → {0,5}
//	min=2 max=2   → {2}
//	min=2 max=0   → {2,}
//	min=2 max=5   → {2,5}
//
// followed by ? (reluctant) or + (possessive) when a mode was set.
//
// The maximum uses two sentinels: -1 means unbounded, 0 means "unset" and is
// treated as unbounded whenever it differs from the minimum.
package quantifier

import "strconv"

// Unbounded is the maximum value meaning "no upper limit".
const Unbounded = -1

// Mode selects how a quantifier consumes input.
type Mode uint8

const (
	// Greedy matches as many repetitions as possible. It adds no suffix.
	Greedy Mode = iota

	// Reluctant matches as few repetitions as possible (suffix "?").
	Reluctant

	// Possessive matches as many repetitions as possible and never
	// backtracks (suffix "+").
	Possessive
)

// String returns the suffix appended to a quantifier for this mode.
func (m Mode) String() string {
	switch m {
	case Reluctant:
		return "?"
	case Possessive:
		return "+"
	default:
		return ""
	}
}

// Resolver holds the repetition state of a single pattern node.
//
// The zero value is ready to use and resolves to an empty suffix: a node
// whose repetition was never configured matches exactly once.
type Resolver struct {
	min int
	max int

	mode    Mode
	modeSet bool

	// bounded records whether min or max was ever set. An untouched
	// resolver produces no bounds at all.
	bounded bool
}

// SetMin sets the minimum number of repetitions. Negative values are stored
// as their absolute value.
func (r *Resolver) SetMin(n int) {
	r.min = abs(n)
	r.bounded = true
}

// SetMax sets the maximum number of repetitions. Pass Unbounded (-1) for no
// upper limit. A positive maximum below the minimum is widened to the
// minimum when the quantifier is resolved.
func (r *Resolver) SetMax(n int) {
	r.max = n
	r.bounded = true
}

// SetMode sets the repetition mode. Once set, the mode suffix is always
// emitted, even for Greedy (which contributes nothing).
func (r *Resolver) SetMode(m Mode) {
	r.mode = m
	r.modeSet = true
}

// Min returns the configured minimum.
func (r *Resolver) Min() int { return r.min }

// Max returns the configured maximum as given by the caller.
func (r *Resolver) Max() int { return r.max }

// Mode returns the configured mode and whether one was set.
func (r *Resolver) Mode() (Mode, bool) { return r.mode, r.modeSet }

// Bounded reports whether a minimum or maximum has been configured.
func (r *Resolver) Bounded() bool { return r.bounded }

// IsSet reports whether any bound or mode has been configured.
func (r *Resolver) IsSet() bool { return r.bounded || r.modeSet }

// Bounds returns the normalized (min, max) pair used by Resolve.
//
// A maximum other than -1 and 0 becomes max(|max|, |min|), so the minimum
// never exceeds a finite maximum.
func (r *Resolver) Bounds() (minimum, maximum int) {
	minimum, maximum = r.min, r.max
	if maximum != Unbounded && maximum != 0 {
		maximum = max(abs(maximum), abs(minimum))
	}
	return minimum, maximum
}

// Resolve returns the quantifier suffix. It never fails and does not modify
// the resolver, so repeated calls return identical strings.
func (r *Resolver) Resolve() string {
	var suffix string
	if r.bounded {
		suffix = bounds(r.Bounds())
	}
	if r.modeSet {
		suffix += r.mode.String()
	}
	return suffix
}

// Resolve is a convenience for one-shot resolution of explicit bounds.
//
// Example:
//
//	quantifier.Resolve(2, 5, quantifier.Reluctant) // "{2,5}?"
func Resolve(minimum, maximum int, mode Mode) string {
	var r Resolver
	r.SetMin(minimum)
	r.SetMax(maximum)
	r.SetMode(mode)
	return r.Resolve()
}

func bounds(minimum, maximum int) string {
	switch {
	case minimum == 0 && maximum == 1:
		return "?"
	case minimum == 0 && maximum == Unbounded:
		return "*"
	case minimum == 0 && maximum > 1:
		return "{0," + strconv.Itoa(maximum) + "}"
	case minimum == maximum:
		return "{" + strconv.Itoa(minimum) + "}"
	case maximum == 0 || maximum == Unbounded:
		return "{" + strconv.Itoa(minimum) + ",}"
	default:
		return "{" + strconv.Itoa(minimum) + "," + strconv.Itoa(maximum) + "}"
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
