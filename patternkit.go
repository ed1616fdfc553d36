// Package patternkit composes regular expressions from typed building blocks
// and runs them.
//
// An Operation is the context of one regex operation: it owns the option
// store, the error log, the failure router, the global modifier set and the
// subject(s). Builders obtained from an Operation share that context, and
// the execution wrappers (Match, MatchAll, Replace, Filter, ReplaceMulti,
// Split, Grep) compile the composed pattern with the operation's engine.
//
// Basic usage:
//
//	op := patternkit.New("order 2024-03 shipped")
//	m := op.Match()
//	m.Patterns().Group(func(g *pattern.Builder) {
//	    g.AddMeta(syntax.Digit).Exactly(4)
//	}, "year")
//	ok, err := m.Execute()
//	// ok == true, m.Results()[0].Content == "2024"
//
// Failures are routed according to the exception_on_* options: by default
// the global exception_on_error switch is off, so failures are recorded in
// the error log (see Operation.Errors) and execution reports no match.
package patternkit

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/coregx/patternkit/config"
	"github.com/coregx/patternkit/engine"
	"github.com/coregx/patternkit/fault"
	"github.com/coregx/patternkit/modifier"
	"github.com/coregx/patternkit/pattern"
)

// Option configures an Operation.
type Option func(*Operation)

// WithLogger sets the logger failures are reported to.
func WithLogger(logger *log.Logger) Option {
	return func(op *Operation) { op.logger = logger }
}

// WithEngine selects the regex engine. The default is engine.RE2().
func WithEngine(eng engine.Engine) Option {
	return func(op *Operation) { op.engine = eng }
}

// WithOption sets a configuration option once the operation is created.
// An invalid option is routed like any other configuration failure.
func WithOption(opt config.Option, value any) Option {
	return func(op *Operation) { op.pending = append(op.pending, setting{opt, value}) }
}

type setting struct {
	opt   config.Option
	value any
}

// Operation is the context of one regex operation. It is not safe for
// concurrent use.
type Operation struct {
	subjects []string
	scope    *pattern.Scope
	engine   engine.Engine
	logger   *log.Logger
	builders []*pattern.Builder
	pending  []setting
	err      error
}

// New creates an operation over a single subject.
func New(subject string, opts ...Option) *Operation {
	return newOperation([]string{subject}, opts)
}

// NewMulti creates an operation over several subjects. A nil slice creates
// an operation without a subject; executing it fails with fault.NullSubject.
func NewMulti(subjects []string, opts ...Option) *Operation {
	if subjects != nil {
		subjects = append([]string{}, subjects...)
	}
	return newOperation(subjects, opts)
}

func newOperation(subjects []string, opts []Option) *Operation {
	op := &Operation{subjects: subjects}
	for _, opt := range opts {
		opt(op)
	}
	if op.logger == nil {
		op.logger = log.New(io.Discard)
	}
	if op.engine == nil {
		op.engine = engine.RE2()
	}
	op.scope = pattern.NewScope(op.logger)

	for _, s := range op.pending {
		if err := op.SetOption(s.opt, s.value); err != nil && op.err == nil {
			op.err = err
		}
	}
	op.pending = nil
	return op
}

// Err returns the failure propagated while applying WithOption settings.
func (op *Operation) Err() error { return op.err }

// Config returns the operation's option store.
func (op *Operation) Config() *config.Store { return op.scope.Config }

// SetOption sets a configuration option. An unknown option or a value of
// the wrong type is routed as fault.InvalidConfig.
func (op *Operation) SetOption(opt config.Option, value any) error {
	return op.route(op.scope.Config.Set(opt, value))
}

// Option returns the current value of a configuration option.
func (op *Operation) Option(opt config.Option) any {
	return op.scope.Config.Get(opt)
}

// GlobalModifiers returns the modifier set every builder of this operation
// falls back to.
func (op *Operation) GlobalModifiers() *modifier.Set { return op.scope.Global }

// Engine returns the engine patterns are compiled with.
func (op *Operation) Engine() engine.Engine { return op.engine }

// Logger returns the operation's logger.
func (op *Operation) Logger() *log.Logger { return op.logger }

// Builder returns a new root builder in this operation's scope.
func (op *Operation) Builder() *pattern.Builder {
	b := pattern.New(op.scope)
	op.builders = append(op.builders, b)
	return b
}

// HasSubject reports whether the operation was given a subject.
func (op *Operation) HasSubject() bool { return op.subjects != nil }

// Subjects returns the operation's subjects.
func (op *Operation) Subjects() []string { return op.subjects }

// Subject returns the subjects joined by newlines.
func (op *Operation) Subject() string { return strings.Join(op.subjects, "\n") }

// Errors returns the recorded failures, oldest first.
func (op *Operation) Errors() []fault.Entry {
	return op.scope.Errors().Entries()
}

// LastError returns the most recent recorded failure, removing it from the
// log when pop is true.
func (op *Operation) LastError(pop bool) error {
	return op.scope.Errors().Latest(pop)
}

// LastErrorMessage is LastError rendered as a string; "" when the log is
// empty.
func (op *Operation) LastErrorMessage(pop bool) string {
	if err := op.LastError(pop); err != nil {
		return err.Error()
	}
	return ""
}

// Close clears every builder created by the operation and the error log.
func (op *Operation) Close() {
	for _, b := range op.builders {
		b.Clear()
	}
	op.builders = nil
	op.scope.Errors().Clear()
}

func (op *Operation) route(err error) error {
	return op.scope.Router.Route(err)
}
