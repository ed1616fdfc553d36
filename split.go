package patternkit

// Split cuts the subject around the matches of a pattern.
type Split struct {
	wrapper

	limit   int
	results []string
}

// Split returns a wrapper splitting the subject by a pattern.
func (op *Operation) Split() *Split {
	return &Split{wrapper: newWrapper(op), limit: -1}
}

// Limit caps the number of pieces; the last piece holds the unsplit
// remainder. Zero or a negative n removes the cap.
func (s *Split) Limit(n int) *Split {
	if n <= 0 {
		n = -1
	}
	s.limit = n
	return s
}

// Execute splits the subject and reports whether the pattern matched.
// Without a match the result is the whole subject.
func (s *Split) Execute() (bool, error) {
	s.executed = true
	subject := s.op.Subject()
	s.results = []string{subject}

	prog, err := s.prepare(s.patterns)
	if prog == nil {
		return false, err
	}

	n := -1
	if s.limit > 0 {
		n = s.limit - 1
	}
	matches, err := s.find(prog, subject, n)
	if len(matches) == 0 {
		return false, err
	}

	pieces := make([]string, 0, len(matches)+1)
	lastEnd := 0
	for _, m := range matches {
		// An empty match at the very start does not produce a piece.
		if m.End == 0 {
			continue
		}
		pieces = append(pieces, subject[lastEnd:m.Start])
		lastEnd = m.End
	}
	s.results = append(pieces, subject[lastEnd:])
	return true, nil
}

// Results returns the pieces of the subject.
func (s *Split) Results() []string { return s.results }

// Count returns the number of pieces.
func (s *Split) Count() int { return len(s.results) }
