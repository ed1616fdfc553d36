package patternkit

import "strings"

// Grep selects the lines of the subject matching a pattern. An operation
// with several subjects treats each subject as a line; a single subject is
// split on newlines.
type Grep struct {
	wrapper

	invert  bool
	results map[int]string
}

// Grep returns a wrapper selecting lines by a pattern.
func (op *Operation) Grep() *Grep {
	return &Grep{wrapper: newWrapper(op)}
}

// Invert selects the lines that do not match instead.
func (g *Grep) Invert(invert bool) *Grep {
	g.invert = invert
	return g
}

// Execute selects the lines and reports whether any line was selected.
func (g *Grep) Execute() (bool, error) {
	g.executed = true
	g.results = make(map[int]string)

	prog, err := g.prepare(g.patterns)
	if prog == nil {
		return false, err
	}

	tracker := g.tracker()
	for i, line := range g.lines() {
		// A hit of a complete prefilter is the match itself.
		complete := tracker.IsActive() && tracker.Inner().IsComplete()

		matched := false
		if tracker.Admit([]byte(line)) {
			if complete {
				matched = true
			} else {
				matches, err := g.find(prog, line, 1)
				if err != nil {
					return false, err
				}
				matched = len(matches) > 0
			}
			if matched {
				tracker.Confirm()
			}
		}
		if matched != g.invert {
			g.results[i] = line
		}
	}

	candidates, confirms, rejected, active := tracker.Stats()
	g.op.logger.Debug("grep finished",
		"selected", len(g.results),
		"prefilter", active,
		"candidates", candidates,
		"confirms", confirms,
		"rejected", rejected)
	return len(g.results) > 0, nil
}

func (g *Grep) lines() []string {
	subjects := g.op.Subjects()
	if len(subjects) == 1 {
		return strings.Split(subjects[0], "\n")
	}
	return subjects
}

// Results returns the selected lines keyed by their line index.
func (g *Grep) Results() map[int]string { return g.results }

// Count returns the number of selected lines.
func (g *Grep) Count() int { return len(g.results) }
