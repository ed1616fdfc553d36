// Package policy decides the fate of every validation and composition
// failure raised while building and executing patterns.
//
// A failure is either Recorded (appended to the operation's fault.Log, the
// caller continues with a placeholder) or Propagated (returned to the
// caller). The decision is made from the operation's configuration only:
//
//  1. exception_on_error false: Recorded.
//  2. The option for the failure's category (config.OptionFor) false: Recorded.
//  3. Otherwise: Propagated.
package policy

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/coregx/patternkit/config"
	"github.com/coregx/patternkit/fault"
)

// Router routes failures according to a configuration store.
type Router struct {
	store  *config.Store
	log    *fault.Log
	logger *log.Logger
}

// NewRouter creates a router recording into l. A nil logger discards output.
func NewRouter(store *config.Store, l *fault.Log, logger *log.Logger) *Router {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Router{store: store, log: l, logger: logger}
}

// Route records err and returns nil, or returns err unchanged when it must
// be propagated. A nil err is ignored.
func (r *Router) Route(err error) error {
	if err == nil {
		return nil
	}

	kind := fault.KindOf(err)
	if r.Propagates(kind) {
		r.logger.Debug("failure propagated", "kind", kind, "error", err)
		return err
	}

	key := r.log.Write(err)
	r.logger.Debug("failure recorded", "kind", kind, "key", key, "error", err)
	return nil
}

// Propagates reports whether failures of kind k are returned to the caller.
func (r *Router) Propagates(k fault.Kind) bool {
	if !r.store.Bool(config.ExceptionOnError) {
		return false
	}
	return r.store.Bool(config.OptionFor(k))
}

// Config returns the store the router consults.
func (r *Router) Config() *config.Store {
	return r.store
}

// Log returns the log recorded failures are written to.
func (r *Router) Log() *fault.Log {
	return r.log
}

// Logger returns the router's logger.
func (r *Router) Logger() *log.Logger {
	return r.logger
}
