// Package config holds the options of a single regex operation.
//
// A Store is backed by its own viper instance, so two operations never share
// settings. Every option has a default; unknown options and values of the
// wrong type are rejected with a fault.InvalidConfig error.
package config

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"

	"github.com/coregx/patternkit/fault"
)

// Option names a configuration entry.
type Option string

// Supported options.
const (
	// Delimiter is the character wrapping a composed pattern.
	Delimiter Option = "delimiter"

	// Quote escapes the whole composed pattern for literal inclusion in
	// another pattern.
	Quote Option = "quote"

	// ExceptionOnError is the global switch: when false every failure is
	// recorded, regardless of the per-category options below.
	ExceptionOnError Option = "exception_on_error"

	// ExceptionOnNull propagates operations executed without a subject.
	ExceptionOnNull Option = "exception_on_null"

	// ExceptionOnBadPattern propagates invalid node input and engine failures.
	ExceptionOnBadPattern Option = "exception_on_bad_pattern"

	// ExceptionOnBadConfig propagates invalid options and delimiters.
	ExceptionOnBadConfig Option = "exception_on_bad_config"

	// ExceptionOnBadService propagates unresolvable collaborators.
	ExceptionOnBadService Option = "exception_on_bad_service"

	// ExceptionOnNoPattern propagates building an empty pattern.
	ExceptionOnNoPattern Option = "exception_on_no_pattern"

	// ExceptionOnEarlyAccess propagates reading results before execution.
	ExceptionOnEarlyAccess Option = "exception_on_early_access"

	// DefaultOptionOnError falls back to an option's default when its
	// configured value is unusable and the failure was recorded.
	DefaultOptionOnError Option = "default_option_on_error"
)

// DefaultDelimiter is the delimiter used when none is configured.
const DefaultDelimiter = "~"

// Delimiters lists the characters accepted as a pattern delimiter.
const Delimiters = "!\"#$%&'*+,./:;=?@^_`|~-"

var defaults = map[Option]any{
	Delimiter:              DefaultDelimiter,
	Quote:                  false,
	ExceptionOnError:       false,
	ExceptionOnNull:        true,
	ExceptionOnBadPattern:  true,
	ExceptionOnBadConfig:   true,
	ExceptionOnBadService:  true,
	ExceptionOnNoPattern:   true,
	ExceptionOnEarlyAccess: true,
	DefaultOptionOnError:   true,
}

// Options returns every supported option, sorted by name.
func Options() []Option {
	out := make([]Option, 0, len(defaults))
	for opt := range defaults {
		out = append(out, opt)
	}
	slices.Sort(out)
	return out
}

// Default returns the default value of opt, or nil for an unknown option.
func Default(opt Option) any {
	return defaults[opt]
}

// Valid reports whether opt is a supported option.
func (o Option) Valid() bool {
	_, ok := defaults[o]
	return ok
}

// Store is the option store of one regex operation.
type Store struct {
	v *viper.Viper
}

// New returns a store holding the default value of every option.
func New() *Store {
	v := viper.New()
	for opt, value := range defaults {
		v.SetDefault(string(opt), value)
	}
	return &Store{v: v}
}

// Get returns the current value of opt, or nil for an unknown option.
func (s *Store) Get(opt Option) any {
	if !opt.Valid() {
		return nil
	}
	return s.v.Get(string(opt))
}

// Bool returns the current value of a boolean option.
func (s *Store) Bool(opt Option) bool {
	return s.v.GetBool(string(opt))
}

// Delimiter returns the configured delimiter as stored, without validation.
// Use ParseDelimiter to obtain a usable delimiter.
func (s *Store) Delimiter() string {
	return s.v.GetString(string(Delimiter))
}

// Set changes a single option.
func (s *Store) Set(opt Option, value any) error {
	if err := check(opt, value); err != nil {
		return err
	}
	s.v.Set(string(opt), value)
	return nil
}

// Reset restores every option to its default value.
func (s *Store) Reset() {
	fresh := New()
	s.v = fresh.v
}

// MergeMap merges decoded option values, such as the [options] table of a
// recipe. Nothing is merged when any entry is invalid.
func (s *Store) MergeMap(values map[string]any) error {
	for key, value := range values {
		if err := check(Option(strings.ToLower(key)), value); err != nil {
			return err
		}
	}
	for key, value := range values {
		s.v.Set(strings.ToLower(key), value)
	}
	return nil
}

// LoadFile merges an options file. The format follows the file extension
// (toml, yaml or json).
func (s *Store) LoadFile(path string) error {
	file := viper.New()
	file.SetConfigFile(path)
	if err := file.ReadInConfig(); err != nil {
		return fault.Wrap(fault.InvalidConfig, fmt.Sprintf("failed to read options file %s", path), err)
	}
	return s.MergeMap(file.AllSettings())
}

// Settings returns the current value of every option.
func (s *Store) Settings() map[Option]any {
	out := make(map[Option]any, len(defaults))
	for opt := range defaults {
		out[opt] = s.v.Get(string(opt))
	}
	return out
}

func check(opt Option, value any) error {
	def, ok := defaults[opt]
	if !ok {
		return fault.Newf(fault.InvalidConfig, "unknown option %q", string(opt))
	}

	switch def.(type) {
	case string:
		if _, ok := value.(string); !ok {
			return fault.Newf(fault.InvalidConfig, "option %q expects a string, got %T", string(opt), value)
		}
	case bool:
		if _, ok := value.(bool); !ok {
			return fault.Newf(fault.InvalidConfig, "option %q expects a boolean, got %T", string(opt), value)
		}
	}
	return nil
}

// ParseDelimiter turns a configured value into a usable delimiter: surrounding
// whitespace is trimmed and only the first character is kept. The result must
// be one of Delimiters.
func ParseDelimiter(raw string) (string, error) {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return "", fault.New(fault.InvalidDelimiter, "an empty delimiter has been provided")
	}

	r, _ := utf8.DecodeRuneInString(clean)
	if r >= utf8.RuneSelf || !strings.ContainsRune(Delimiters, r) {
		return "", fault.Newf(fault.InvalidDelimiter, "%q can not be used as a delimiter", string(r))
	}
	return string(r), nil
}

// OptionFor returns the option deciding whether failures of kind k are
// propagated.
func OptionFor(k fault.Kind) Option {
	switch k {
	case fault.EmptyPattern:
		return ExceptionOnNoPattern
	case fault.InvalidConfig, fault.InvalidDelimiter:
		return ExceptionOnBadConfig
	case fault.InvalidService:
		return ExceptionOnBadService
	case fault.NullSubject:
		return ExceptionOnNull
	case fault.EarlyAccess:
		return ExceptionOnEarlyAccess
	default:
		return ExceptionOnBadPattern
	}
}
