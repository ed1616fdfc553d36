package pattern

import (
	"github.com/charmbracelet/log"

	"github.com/coregx/patternkit/config"
	"github.com/coregx/patternkit/fault"
	"github.com/coregx/patternkit/modifier"
	"github.com/coregx/patternkit/policy"
)

// Scope is the state shared by every builder of one regex operation: its
// options, the router deciding the fate of failures, and the global
// modifier set local sets fall back to.
//
// A Scope must not be shared between independent operations.
type Scope struct {
	Config *config.Store
	Router *policy.Router
	Global *modifier.Set
}

// NewScope creates a scope with default options, an empty error log and an
// empty global modifier set. logger may be nil.
func NewScope(logger *log.Logger) *Scope {
	store := config.New()
	return &Scope{
		Config: store,
		Router: policy.NewRouter(store, &fault.Log{}, logger),
		Global: modifier.NewSet(nil),
	}
}

// Errors returns the failures recorded in this scope.
func (s *Scope) Errors() *fault.Log {
	return s.Router.Log()
}

// route hands err to the router.
func (s *Scope) route(err error) error {
	return s.Router.Route(err)
}
