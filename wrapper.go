package patternkit

import (
	"github.com/coregx/patternkit/engine"
	"github.com/coregx/patternkit/fault"
	"github.com/coregx/patternkit/modifier"
	"github.com/coregx/patternkit/pattern"
	"github.com/coregx/patternkit/prefilter"
)

// wrapper holds what every execution wrapper shares: the operation and the
// root builder the pattern is composed in.
type wrapper struct {
	op       *Operation
	patterns *pattern.Builder
	executed bool
}

func newWrapper(op *Operation) wrapper {
	return wrapper{op: op, patterns: op.Builder()}
}

// Patterns returns the builder the wrapper's pattern is composed in.
func (w *wrapper) Patterns() *pattern.Builder { return w.patterns }

// Modifiers returns the modifier set of the wrapper's pattern.
func (w *wrapper) Modifiers() *modifier.Set { return w.patterns.Modifiers() }

// Executed reports whether Execute has run.
func (w *wrapper) Executed() bool { return w.executed }

// prepare checks the subject and compiles b. A nil program with a nil
// error means a failure was recorded and execution must report no match.
func (w *wrapper) prepare(b *pattern.Builder) (engine.Program, error) {
	if ok, err := w.op.ready(); !ok {
		return nil, err
	}
	return compile(w.op, b)
}

// ready reports whether the operation can execute. When it can not, the
// error is the propagated failure, or nil when it was recorded.
func (op *Operation) ready() (bool, error) {
	if op.err != nil {
		return false, op.err
	}
	if !op.HasSubject() {
		return false, op.route(fault.New(fault.NullSubject, "can not execute a regex operation without a subject"))
	}
	return true, nil
}

// compile builds b and compiles it with the operation's engine.
func compile(op *Operation, b *pattern.Builder) (engine.Program, error) {
	expr, err := b.Build()
	if err != nil || expr == "" {
		return nil, err
	}

	prog, err := engine.Compile(op.engine, expr)
	if err != nil {
		return nil, op.route(fault.Wrap(fault.Execution, "the composed pattern was rejected by the engine", err))
	}
	op.logger.Debug("pattern compiled", "engine", op.engine.Name(), "pattern", expr)
	return prog, nil
}

// find runs prog and routes engine failures.
func (w *wrapper) find(prog engine.Program, subject string, n int) ([]engine.Match, error) {
	return find(w.op, prog, subject, n)
}

func find(op *Operation, prog engine.Program, subject string, n int) ([]engine.Match, error) {
	matches, err := prog.FindAll(subject, n)
	if err != nil {
		return nil, op.route(fault.Wrap(fault.Execution, "the regex engine failed", err))
	}
	return matches, nil
}

// tracker returns a prefilter tracker for the wrapper's pattern. It admits
// every subject when no required literal is known.
func (w *wrapper) tracker() *prefilter.Tracker {
	pf := prefilter.NewBuilder(w.patterns.RequiredLiterals()).Build()
	if pf != nil {
		w.op.logger.Debug("prefilter selected",
			"complete", pf.IsComplete(),
			"literal_len", pf.LiteralLen(),
			"heap_bytes", pf.HeapBytes())
	}
	return prefilter.NewTracker(pf)
}

// earlyAccess routes a read of results before Execute.
func earlyAccess(op *Operation, executed bool) error {
	if executed {
		return nil
	}
	return op.route(fault.New(fault.EarlyAccess, "the regex result is requested before the operation has been executed"))
}
