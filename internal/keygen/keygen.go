// Package keygen generates the keys under which composites store their
// children. Group keys double as capture group names, so they only contain
// ASCII letters, digits, underscores and hyphens.
package keygen

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Prefix starts every generated key.
const Prefix = "pk"

var counter atomic.Uint64

// Sanitize keeps only ASCII letters, digits, underscores and hyphens.
func Sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		}
		return -1
	}, name)
}

// Generate returns "pk_<name>" when name survives sanitization, and a
// process-unique opaque key otherwise.
func Generate(name string) string {
	if clean := Sanitize(name); clean != "" {
		return Prefix + "_" + clean
	}
	return Unique()
}

// Unique returns a process-unique opaque key. Unique keys never contain an
// underscore, so they can not collide with named keys.
func Unique() string {
	return fmt.Sprintf("%s%08x", Prefix, counter.Add(1))
}
