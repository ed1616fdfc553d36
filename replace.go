package patternkit

import (
	"strings"

	"github.com/coregx/patternkit/engine"
	"github.com/coregx/patternkit/fault"
	"github.com/coregx/patternkit/pattern"
)

// Captures is the view of a match handed to replacement callbacks.
type Captures struct {
	// Text is the whole match.
	Text string

	// Groups holds every capture group in number order; "" for groups that
	// did not participate.
	Groups []string

	// Named maps the names of participating named groups to their text.
	Named map[string]string
}

func capturesOf(subject string, m engine.Match) Captures {
	c := Captures{
		Text:   m.Text(subject),
		Groups: make([]string, len(m.Groups)),
		Named:  make(map[string]string),
	}
	for i, g := range m.Groups {
		if !g.Matched() {
			continue
		}
		c.Groups[i] = subject[g.Start:g.End]
		if g.Name != "" {
			c.Named[g.Name] = c.Groups[i]
		}
	}
	return c
}

// ReplaceFunc computes the replacement of one match.
type ReplaceFunc func(Captures) string

// replaceAll substitutes every match in subject with repl(match).
func replaceAll(subject string, matches []engine.Match, repl func(engine.Match) string) string {
	if len(matches) == 0 {
		return subject
	}

	var b strings.Builder
	b.Grow(len(subject))
	lastEnd := 0
	for _, m := range matches {
		b.WriteString(subject[lastEnd:m.Start])
		b.WriteString(repl(m))
		lastEnd = m.End
	}
	b.WriteString(subject[lastEnd:])
	return b.String()
}

// expand appends template to b, replacing group references with the text
// of the corresponding group of m. References are $n, ${n}, \n (n up to
// two digits, 0 is the whole match) and ${name}. $$ is a literal $.
// References to unknown groups expand to "".
func expand(b *strings.Builder, template, subject string, m engine.Match) {
	i := 0
	for i < len(template) {
		c := template[i]
		if (c != '$' && c != '\\') || i+1 >= len(template) {
			b.WriteByte(c)
			i++
			continue
		}

		next := template[i+1]

		// $n and \n
		if isDigit(next) {
			n, width := digits(template[i+1:])
			b.WriteString(m.Group(subject, n))
			i += 1 + width
			continue
		}

		if c == '\\' {
			b.WriteByte(c)
			i++
			continue
		}

		// ${n} and ${name}
		if next == '{' {
			if end := strings.IndexByte(template[i+2:], '}'); end > 0 {
				ref := template[i+2 : i+2+end]
				if n, width := digits(ref); width == len(ref) {
					b.WriteString(m.Group(subject, n))
					i += 3 + end
					continue
				}
				if isName(ref) {
					text, _ := m.Named(subject, ref)
					b.WriteString(text)
					i += 3 + end
					continue
				}
			}
			b.WriteByte('$')
			i++
			continue
		}

		// $$ -> $
		if next == '$' {
			b.WriteByte('$')
			i += 2
			continue
		}

		// Unknown $ escape, treat as literal
		b.WriteByte('$')
		i++
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// digits parses up to two leading decimal digits of s.
func digits(s string) (n, width int) {
	for width < len(s) && width < 2 && isDigit(s[width]) {
		n = n*10 + int(s[width]-'0')
		width++
	}
	return n, width
}

func isName(s string) bool {
	if s == "" || isDigit(s[0]) {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '_' && !isDigit(c) && (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// templateReplacer returns a replacer expanding template for each match.
func templateReplacer(subject, template string) func(engine.Match) string {
	return func(m engine.Match) string {
		var b strings.Builder
		expand(&b, template, subject, m)
		return b.String()
	}
}

// Replace substitutes the matches of a pattern in the subject.
type Replace struct {
	wrapper

	replacement string
	limit       int
	result      string
	count       int
}

// Replace returns a wrapper replacing every match of a pattern.
func (op *Operation) Replace() *Replace {
	return &Replace{wrapper: newWrapper(op), limit: -1}
}

// Replacement sets the replacement template. It may reference groups as
// $n, ${n}, \n or ${name}.
func (r *Replace) Replacement(s string) *Replace {
	r.replacement = s
	return r
}

// Limit caps the number of replacements; a negative n removes the cap.
func (r *Replace) Limit(n int) *Replace {
	if n < 0 {
		n = -1
	}
	r.limit = n
	return r
}

// Execute performs the replacement and reports whether anything was
// replaced. The result is the subject unchanged when nothing matched.
func (r *Replace) Execute() (bool, error) {
	r.executed = true
	r.result, r.count = r.op.Subject(), 0

	prog, err := r.prepare(r.patterns)
	if prog == nil {
		return false, err
	}

	subject := r.result
	matches, err := r.find(prog, subject, r.limit)
	if err != nil {
		return false, err
	}
	r.result = replaceAll(subject, matches, templateReplacer(subject, r.replacement))
	r.count = len(matches)
	return r.count > 0, nil
}

// Result returns the subject after replacement.
func (r *Replace) Result() string { return r.result }

// Count returns the number of replacements performed.
func (r *Replace) Count() int { return r.count }

// Filter replaces matches in every subject and keeps only the subjects
// where something was replaced.
type Filter struct {
	wrapper

	replacement string
	limit       int
	results     map[int]string
	count       int
}

// Filter returns a wrapper filtering the subjects by a pattern.
func (op *Operation) Filter() *Filter {
	return &Filter{wrapper: newWrapper(op), limit: -1}
}

// Replacement sets the replacement template, as for Replace.
func (f *Filter) Replacement(s string) *Filter {
	f.replacement = s
	return f
}

// Limit caps the number of replacements per subject; a negative n removes
// the cap.
func (f *Filter) Limit(n int) *Filter {
	if n < 0 {
		n = -1
	}
	f.limit = n
	return f
}

// Execute filters the subjects and reports whether any subject was kept.
func (f *Filter) Execute() (bool, error) {
	f.executed = true
	f.results, f.count = make(map[int]string), 0

	prog, err := f.prepare(f.patterns)
	if prog == nil {
		return false, err
	}

	tracker := f.tracker()
	for i, subject := range f.op.Subjects() {
		if !tracker.Admit([]byte(subject)) {
			continue
		}
		matches, err := f.find(prog, subject, f.limit)
		if err != nil {
			return false, err
		}
		if len(matches) == 0 {
			continue
		}
		tracker.Confirm()
		f.results[i] = replaceAll(subject, matches, templateReplacer(subject, f.replacement))
		f.count += len(matches)
	}
	return len(f.results) > 0, nil
}

// Results returns the kept subjects after replacement, keyed by their
// index among the operation's subjects.
func (f *Filter) Results() map[int]string { return f.results }

// Count returns the total number of replacements performed.
func (f *Filter) Count() int { return f.count }

type registration struct {
	patterns *pattern.Builder
	template string
	fn       ReplaceFunc
}

// ReplaceMulti applies several pattern/replacement pairs to every subject,
// in registration order.
type ReplaceMulti struct {
	op       *Operation
	entries  []registration
	results  []string
	count    int
	executed bool
}

// ReplaceMulti returns a wrapper applying several replacements.
func (op *Operation) ReplaceMulti() *ReplaceMulti {
	return &ReplaceMulti{op: op}
}

// Register adds a pattern replaced by the template replacement and returns
// the builder to compose it in.
func (r *ReplaceMulti) Register(replacement string) *pattern.Builder {
	b := r.op.Builder()
	r.entries = append(r.entries, registration{patterns: b, template: replacement})
	return b
}

// RegisterFunc adds a pattern whose matches are replaced by fn and returns
// the builder to compose it in.
func (r *ReplaceMulti) RegisterFunc(fn ReplaceFunc) *pattern.Builder {
	b := r.op.Builder()
	r.entries = append(r.entries, registration{patterns: b, fn: fn})
	return b
}

// Len returns the number of registered patterns.
func (r *ReplaceMulti) Len() int { return len(r.entries) }

// Execute applies every registration and reports whether anything was
// replaced.
func (r *ReplaceMulti) Execute() (bool, error) {
	r.executed = true
	r.results, r.count = nil, 0

	if ok, err := r.op.ready(); !ok {
		return false, err
	}
	if len(r.entries) == 0 {
		return false, r.op.route(fault.New(fault.EmptyPattern, "can not execute a multiple replacement without registering a pattern"))
	}

	progs := make([]engine.Program, len(r.entries))
	for i, e := range r.entries {
		prog, err := compile(r.op, e.patterns)
		if prog == nil {
			return false, err
		}
		progs[i] = prog
	}

	for _, subject := range r.op.Subjects() {
		for i, e := range r.entries {
			matches, err := find(r.op, progs[i], subject, -1)
			if err != nil {
				return false, err
			}
			subject = replaceAll(subject, matches, e.replacer(subject))
			r.count += len(matches)
		}
		r.results = append(r.results, subject)
	}
	return r.count > 0, nil
}

func (e registration) replacer(subject string) func(engine.Match) string {
	if e.fn != nil {
		return func(m engine.Match) string { return e.fn(capturesOf(subject, m)) }
	}
	return templateReplacer(subject, e.template)
}

// Results returns every subject after replacement. Reading the results
// before Execute is routed as fault.EarlyAccess.
func (r *ReplaceMulti) Results() ([]string, error) {
	if err := earlyAccess(r.op, r.executed); err != nil || !r.executed {
		return nil, err
	}
	return r.results, nil
}

// Count returns the total number of replacements performed.
func (r *ReplaceMulti) Count() int { return r.count }
