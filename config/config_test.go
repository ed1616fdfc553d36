package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/coregx/patternkit/fault"
)

func TestDefaults(t *testing.T) {
	s := New()

	want := map[Option]any{
		Delimiter:              "~",
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
	if diff := cmp.Diff(want, s.Settings()); diff != "" {
		t.Errorf("Settings() mismatch (-want +got):\n%s", diff)
	}
	if len(Options()) != len(want) {
		t.Errorf("Options() has %d entries, want %d", len(Options()), len(want))
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a, b := New(), New()
	if err := a.Set(Quote, true); err != nil {
		t.Fatal(err)
	}
	if b.Bool(Quote) {
		t.Error("setting an option leaked into another store")
	}
}

func TestSet(t *testing.T) {
	tests := []struct {
		name    string
		opt     Option
		value   any
		wantErr bool
	}{
		{"bool option", ExceptionOnError, true, false},
		{"string option", Delimiter, "#", false},
		{"unknown option", Option("colour"), true, true},
		{"bool option given string", Quote, "yes", true},
		{"string option given bool", Delimiter, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			err := s.Set(tt.opt, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, fault.ErrInvalidConfig) {
					t.Errorf("Set() error = %v, want invalid config", err)
				}
				return
			}
			if got := s.Get(tt.opt); got != tt.value {
				t.Errorf("Get() = %v, want %v", got, tt.value)
			}
		})
	}
}

func TestMergeMapIsAtomic(t *testing.T) {
	s := New()
	err := s.MergeMap(map[string]any{
		"quote":   true,
		"unknown": 1,
	})
	if !errors.Is(err, fault.ErrInvalidConfig) {
		t.Fatalf("MergeMap() error = %v, want invalid config", err)
	}
	if s.Bool(Quote) {
		t.Error("MergeMap() applied entries despite an invalid one")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.toml")
	data := []byte("delimiter = \"#\"\nexception_on_error = true\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	s := New()
	if err := s.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if got := s.Delimiter(); got != "#" {
		t.Errorf("Delimiter() = %q, want %q", got, "#")
	}
	if !s.Bool(ExceptionOnError) {
		t.Error("exception_on_error not loaded")
	}
	if !s.Bool(ExceptionOnBadPattern) {
		t.Error("untouched options must keep their defaults")
	}
}

func TestLoadFileMissing(t *testing.T) {
	err := New().LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, fault.ErrInvalidConfig) {
		t.Errorf("LoadFile() error = %v, want invalid config", err)
	}
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"~", "~", false},
		{"  #  ", "#", false},
		{"/abc", "/", false},
		{"-", "-", false},
		{"", "", true},
		{"   ", "", true},
		{"a", "", true},
		{"(", "", true},
		{"\\", "", true},
		{"é", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseDelimiter(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDelimiter(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, fault.ErrInvalidDelimiter) {
				t.Errorf("error = %v, want invalid delimiter", err)
			}
			if got != tt.want {
				t.Errorf("ParseDelimiter(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestOptionFor(t *testing.T) {
	tests := []struct {
		kind fault.Kind
		want Option
	}{
		{fault.EmptyInput, ExceptionOnBadPattern},
		{fault.InvalidPattern, ExceptionOnBadPattern},
		{fault.Execution, ExceptionOnBadPattern},
		{fault.Unknown, ExceptionOnBadPattern},
		{fault.EmptyPattern, ExceptionOnNoPattern},
		{fault.InvalidConfig, ExceptionOnBadConfig},
		{fault.InvalidDelimiter, ExceptionOnBadConfig},
		{fault.InvalidService, ExceptionOnBadService},
		{fault.NullSubject, ExceptionOnNull},
		{fault.EarlyAccess, ExceptionOnEarlyAccess},
	}

	for _, tt := range tests {
		if got := OptionFor(tt.kind); got != tt.want {
			t.Errorf("OptionFor(%v) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
