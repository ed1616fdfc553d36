// Package engine runs composed patterns against subjects.
//
// A composed pattern is a delimited string with trailing flags, such as
// ~(?P<pk_year>\d{4})~i. Parse splits it into body and flags; an Engine
// translates the flags into its own syntax and compiles the body into a
// Program. Two engines are provided:
//
//   - RE2: github.com/coregx/coregex, linear time, no backreferences or
//     lookaround. Flags i, m, s and U become inline flags.
//   - Backtrack: github.com/dlclark/regexp2, Perl/.NET compatible, supports
//     lookaround and free-spacing (x). Flag U is not supported.
//
// Flag A anchors the pattern at the start of the subject on both engines.
// Flags D, S, X and u are accepted and have no effect.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/coregx/patternkit/modifier"
)

// Common engine errors
var (
	// ErrMalformed indicates the pattern is not a delimited pattern
	ErrMalformed = errors.New("malformed delimited pattern")

	// ErrUnsupportedFlag indicates the engine can not honor a flag
	ErrUnsupportedFlag = errors.New("unsupported modifier")

	// ErrUnknownEngine indicates an engine name could not be resolved
	ErrUnknownEngine = errors.New("unknown engine")
)

// CompileError wraps compilation errors with additional context
type CompileError struct {
	Engine  string
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("%s compilation failed for pattern %q: %v", e.Engine, e.Pattern, e.Err)
	}
	return fmt.Sprintf("%s compilation failed: %v", e.Engine, e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// Expr is a parsed delimited pattern.
type Expr struct {
	Delimiter byte
	Body      string
	Flags     []modifier.Flag
}

// Has reports whether f is among the expression flags.
func (e Expr) Has(f modifier.Flag) bool {
	for _, g := range e.Flags {
		if g == f {
			return true
		}
	}
	return false
}

// Parse splits a delimited pattern into its body and flags. The first byte
// is the delimiter; the body runs up to the last occurrence of it, and every
// byte after that must be a known flag.
func Parse(pattern string) (Expr, error) {
	if pattern == "" {
		return Expr{}, fmt.Errorf("%w: empty pattern", ErrMalformed)
	}

	delim := pattern[0]
	if isAlnum(delim) || delim == '\\' || delim == ' ' || delim == '\t' || delim == '\n' {
		return Expr{}, fmt.Errorf("%w: delimiter must not be alphanumeric, backslash or whitespace", ErrMalformed)
	}

	end := strings.LastIndexByte(pattern[1:], delim)
	if end < 0 {
		return Expr{}, fmt.Errorf("%w: no ending delimiter %q found", ErrMalformed, delim)
	}
	end++

	expr := Expr{Delimiter: delim, Body: pattern[1:end]}
	for i := end + 1; i < len(pattern); i++ {
		f, err := modifier.Parse(pattern[i])
		if err != nil {
			return Expr{}, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		expr.Flags = append(expr.Flags, f)
	}
	return expr, nil
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// Group is the span of one capture group within a match. Start and End are
// byte offsets into the subject; both are -1 when the group did not
// participate in the match.
type Group struct {
	Name  string
	Start int
	End   int
}

// Matched reports whether the group participated in the match.
func (g Group) Matched() bool { return g.Start >= 0 }

// Match is one match of a program: the overall span plus every capture
// group in group-number order. The re2 engine numbers groups by their
// opening parenthesis; the backtracking engine numbers named groups after
// the unnamed ones.
type Match struct {
	Start  int
	End    int
	Groups []Group
}

// Text returns the matched text of subject.
func (m Match) Text(subject string) string {
	return subject[m.Start:m.End]
}

// Group returns the text of the group with the given index (1-based), or ""
// when it did not participate.
func (m Match) Group(subject string, index int) string {
	if index == 0 {
		return m.Text(subject)
	}
	if index < 1 || index > len(m.Groups) || !m.Groups[index-1].Matched() {
		return ""
	}
	g := m.Groups[index-1]
	return subject[g.Start:g.End]
}

// Named returns the text of the named group, and whether such a group
// participated in the match.
func (m Match) Named(subject, name string) (string, bool) {
	for _, g := range m.Groups {
		if g.Name == name && g.Matched() {
			return subject[g.Start:g.End], true
		}
	}
	return "", false
}

// Engine compiles parsed patterns.
type Engine interface {
	// Name identifies the engine, e.g. "re2".
	Name() string

	// Compile compiles expr into a program.
	Compile(expr Expr) (Program, error)
}

// Program is a compiled pattern.
type Program interface {
	// FindAll returns up to n successive non-overlapping matches; n < 0
	// means all of them.
	FindAll(subject string, n int) ([]Match, error)

	// GroupNames returns the name of every capture group, "" for unnamed
	// groups. Index 0 is the first group, not the whole match.
	GroupNames() []string
}

// Compile parses pattern and compiles it with eng.
func Compile(eng Engine, pattern string) (Program, error) {
	expr, err := Parse(pattern)
	if err != nil {
		return nil, &CompileError{Engine: eng.Name(), Pattern: pattern, Err: err}
	}
	prog, err := eng.Compile(expr)
	if err != nil {
		return nil, &CompileError{Engine: eng.Name(), Pattern: pattern, Err: err}
	}
	return prog, nil
}

// ByName returns the engine called name: "re2" or "backtrack".
func ByName(name string) (Engine, error) {
	switch strings.ToLower(name) {
	case "", "re2":
		return RE2(), nil
	case "backtrack", "pcre":
		return Backtrack(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}

// anchor wraps body so it can only match at the start of the subject.
func anchor(body string) string {
	return `\A(?:` + body + `)`
}
