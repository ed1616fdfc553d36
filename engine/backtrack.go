package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/coregx/patternkit/modifier"
)

// BacktrackOption configures the backtracking engine.
type BacktrackOption func(*backtrackEngine)

// WithTimeout bounds the time a single match attempt may take.
func WithTimeout(d time.Duration) BacktrackOption {
	return func(e *backtrackEngine) { e.timeout = d }
}

type backtrackEngine struct {
	timeout time.Duration
}

// Backtrack returns the Perl-compatible engine backed by regexp2.
func Backtrack(opts ...BacktrackOption) Engine {
	e := &backtrackEngine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (*backtrackEngine) Name() string { return "backtrack" }

func (e *backtrackEngine) Compile(expr Expr) (Program, error) {
	var opts regexp2.RegexOptions
	for _, f := range expr.Flags {
		switch f {
		case modifier.CaseInsensitive:
			opts |= regexp2.IgnoreCase
		case modifier.Multiline:
			opts |= regexp2.Multiline
		case modifier.DotAll:
			opts |= regexp2.Singleline
		case modifier.Extended:
			opts |= regexp2.IgnorePatternWhitespace
		case modifier.Ungreedy:
			return nil, fmt.Errorf("%w: %q (ungreedy) requires the re2 engine", ErrUnsupportedFlag, byte(f))
		}
	}

	body := strings.ReplaceAll(expr.Body, "(?P<", "(?<")
	if expr.Has(modifier.Anchored) {
		body = anchor(body)
	}

	re, err := regexp2.Compile(body, opts)
	if err != nil {
		return nil, err
	}
	if e.timeout > 0 {
		re.MatchTimeout = e.timeout
	}
	return newBacktrackProgram(re), nil
}

type backtrackProgram struct {
	re *regexp2.Regexp

	// numbers holds the group numbers in capture order, names their names.
	numbers []int
	names   []string
}

func newBacktrackProgram(re *regexp2.Regexp) *backtrackProgram {
	p := &backtrackProgram{re: re}
	for _, num := range re.GetGroupNumbers() {
		if num == 0 {
			continue
		}
		name := re.GroupNameFromNumber(num)
		if name == fmt.Sprint(num) {
			name = ""
		}
		p.numbers = append(p.numbers, num)
		p.names = append(p.names, name)
	}
	return p
}

func (p *backtrackProgram) GroupNames() []string {
	return append([]string(nil), p.names...)
}

func (p *backtrackProgram) FindAll(subject string, n int) ([]Match, error) {
	if n == 0 {
		return nil, nil
	}

	// regexp2 reports offsets in runes.
	offsets := runeOffsets(subject)

	var matches []Match
	m, err := p.re.FindStringMatch(subject)
	for m != nil && err == nil {
		match := Match{
			Start:  offsets[m.Index],
			End:    offsets[m.Index+m.Length],
			Groups: make([]Group, len(p.numbers)),
		}
		for i, num := range p.numbers {
			g := m.GroupByNumber(num)
			start, end := -1, -1
			if g != nil && len(g.Captures) > 0 {
				start, end = offsets[g.Index], offsets[g.Index+g.Length]
			}
			match.Groups[i] = Group{Name: p.names[i], Start: start, End: end}
		}
		matches = append(matches, match)

		if n > 0 && len(matches) >= n {
			break
		}
		m, err = p.re.FindNextMatch(m)
	}
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// runeOffsets maps rune indexes to byte offsets, with one extra entry for
// the end of s.
func runeOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}
