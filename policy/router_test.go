package policy

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/coregx/patternkit/config"
	"github.com/coregx/patternkit/fault"
)

func newRouter(t *testing.T, opts map[config.Option]bool) (*Router, *fault.Log) {
	t.Helper()
	store := config.New()
	for opt, v := range opts {
		if err := store.Set(opt, v); err != nil {
			t.Fatal(err)
		}
	}
	var l fault.Log
	return NewRouter(store, &l, nil), &l
}

func TestRouteGlobalSwitchOff(t *testing.T) {
	r, l := newRouter(t, nil)

	// Every category defaults to true, but the global switch defaults to false.
	for _, err := range []error{fault.ErrEmptyInput, fault.ErrEmptyPattern, fault.ErrInvalidConfig} {
		if got := r.Route(err); got != nil {
			t.Errorf("Route(%v) = %v, want recorded", err, got)
		}
	}
	if l.Len() != 3 {
		t.Errorf("log has %d entries, want 3", l.Len())
	}
}

func TestRouteCategory(t *testing.T) {
	tests := []struct {
		name      string
		opts      map[config.Option]bool
		err       error
		propagate bool
	}{
		{
			name:      "category enabled",
			opts:      map[config.Option]bool{config.ExceptionOnError: true},
			err:       fault.ErrEmptyInput,
			propagate: true,
		},
		{
			name: "category disabled",
			opts: map[config.Option]bool{
				config.ExceptionOnError:      true,
				config.ExceptionOnBadPattern: false,
			},
			err:       fault.New(fault.InvalidPattern, "bad"),
			propagate: false,
		},
		{
			name: "other category disabled",
			opts: map[config.Option]bool{
				config.ExceptionOnError:     true,
				config.ExceptionOnNoPattern: false,
			},
			err:       fault.ErrEmptyInput,
			propagate: true,
		},
		{
			name: "delimiter follows bad config",
			opts: map[config.Option]bool{
				config.ExceptionOnError:     true,
				config.ExceptionOnBadConfig: false,
			},
			err:       fault.ErrInvalidDelimiter,
			propagate: false,
		},
		{
			name:      "foreign errors are bad patterns",
			opts:      map[config.Option]bool{config.ExceptionOnError: true},
			err:       errors.New("boom"),
			propagate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, l := newRouter(t, tt.opts)
			got := r.Route(tt.err)

			if tt.propagate {
				if got != tt.err {
					t.Errorf("Route() = %v, want %v propagated", got, tt.err)
				}
				if !l.IsEmpty() {
					t.Error("propagated failure was also recorded")
				}
				return
			}

			if got != nil {
				t.Errorf("Route() = %v, want nil", got)
			}
			if l.Latest(false) != tt.err {
				t.Error("recorded failure missing from log")
			}
		})
	}
}

func TestRouteNil(t *testing.T) {
	r, l := newRouter(t, map[config.Option]bool{config.ExceptionOnError: true})
	if err := r.Route(nil); err != nil {
		t.Errorf("Route(nil) = %v", err)
	}
	if !l.IsEmpty() {
		t.Error("Route(nil) wrote to the log")
	}
}

func TestRouteLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	var l fault.Log
	r := NewRouter(config.New(), &l, logger)
	_ = r.Route(fault.ErrEmptyPattern)

	out := buf.String()
	if !strings.Contains(out, "failure recorded") || !strings.Contains(out, "empty pattern") {
		t.Errorf("log output %q lacks the recorded failure", out)
	}
}
