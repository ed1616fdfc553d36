package patternkit

import (
	"github.com/coregx/patternkit/engine"
)

// Result is one named group of a match. Offset is the byte offset of the
// group in the subject, -1 when the group did not participate.
type Result struct {
	Name    string
	Content string
	Offset  int
}

// results collects the named groups of m.
func results(subject string, m engine.Match) []Result {
	var out []Result
	for _, g := range m.Groups {
		if g.Name == "" {
			continue
		}
		r := Result{Name: g.Name, Offset: -1}
		if g.Matched() {
			r.Content = subject[g.Start:g.End]
			r.Offset = g.Start
		}
		out = append(out, r)
	}
	return out
}

// Match finds the first match of a pattern in the subject.
type Match struct {
	wrapper

	offset  int
	full    string
	results []Result
	count   int
}

// Match returns a wrapper finding the first match of a pattern.
func (op *Operation) Match() *Match {
	return &Match{wrapper: newWrapper(op)}
}

// SetOffset makes the search start at byte offset n of the subject. The
// absolute value of n is used. Anchors see the offset as the start of the
// subject.
func (m *Match) SetOffset(n int) *Match {
	if n < 0 {
		n = -n
	}
	m.offset = n
	return m
}

// Execute runs the pattern and reports whether it matched.
func (m *Match) Execute() (bool, error) {
	m.executed = true
	m.full, m.results, m.count = "", nil, 0

	prog, err := m.prepare(m.patterns)
	if prog == nil {
		return false, err
	}

	subject := m.op.Subject()
	if m.offset > len(subject) {
		return false, nil
	}

	matches, err := m.find(prog, subject[m.offset:], 1)
	if len(matches) == 0 {
		return false, err
	}

	match := shift(matches[0], m.offset)
	m.full = match.Text(subject)
	m.results = results(subject, match)
	m.count = 1
	return true, nil
}

// FullMatch returns the text of the whole match.
func (m *Match) FullMatch() string { return m.full }

// Results returns the named groups of the match.
func (m *Match) Results() []Result { return m.results }

// Count returns 1 after a successful match, 0 otherwise.
func (m *Match) Count() int { return m.count }

// shift moves every offset of m by delta.
func shift(m engine.Match, delta int) engine.Match {
	if delta == 0 {
		return m
	}
	m.Start += delta
	m.End += delta
	groups := make([]engine.Group, len(m.Groups))
	for i, g := range m.Groups {
		if g.Matched() {
			g.Start += delta
			g.End += delta
		}
		groups[i] = g
	}
	m.Groups = groups
	return m
}

// MatchAll finds every match of a pattern in the subject.
type MatchAll struct {
	wrapper

	full    []string
	results [][]Result
}

// MatchAll returns a wrapper finding every match of a pattern.
func (op *Operation) MatchAll() *MatchAll {
	return &MatchAll{wrapper: newWrapper(op)}
}

// Execute runs the pattern and reports whether it matched at least once.
func (m *MatchAll) Execute() (bool, error) {
	m.executed = true
	m.full, m.results = nil, nil

	prog, err := m.prepare(m.patterns)
	if prog == nil {
		return false, err
	}

	subject := m.op.Subject()
	if !m.tracker().Admit([]byte(subject)) {
		return false, nil
	}

	matches, err := m.find(prog, subject, -1)
	if len(matches) == 0 {
		return false, err
	}
	for _, match := range matches {
		m.full = append(m.full, match.Text(subject))
		m.results = append(m.results, results(subject, match))
	}
	return true, nil
}

// FullMatches returns the text of every match.
func (m *MatchAll) FullMatches() []string { return m.full }

// FirstMatch returns the text of the first match, "" when there is none.
func (m *MatchAll) FirstMatch() string {
	if len(m.full) == 0 {
		return ""
	}
	return m.full[0]
}

// Results returns the named groups of every match, one slice per match.
func (m *MatchAll) Results() [][]Result { return m.results }

// Count returns the number of matches.
func (m *MatchAll) Count() int { return len(m.full) }
