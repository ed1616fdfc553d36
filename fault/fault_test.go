package fault

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestErrorIsMatchesKind(t *testing.T) {
	err := New(EmptyInput, "character must not be empty")

	if !errors.Is(err, ErrEmptyInput) {
		t.Error("errors.Is(err, ErrEmptyInput) = false")
	}
	if errors.Is(err, ErrEmptyPattern) {
		t.Error("errors.Is(err, ErrEmptyPattern) = true for an empty input error")
	}

	wrapped := fmt.Errorf("add character: %w", err)
	if !errors.Is(wrapped, ErrEmptyInput) {
		t.Error("wrapped error lost its kind")
	}
	if got := KindOf(wrapped); got != EmptyInput {
		t.Errorf("KindOf(wrapped) = %v, want %v", got, EmptyInput)
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := Wrap(Execution, "compile pattern", io.ErrUnexpectedEOF)

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("cause not reachable through Unwrap")
	}
	if got, want := err.Error(), "compile pattern: unexpected EOF"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestKindOfForeignError(t *testing.T) {
	if got := KindOf(io.EOF); got != Unknown {
		t.Errorf("KindOf(io.EOF) = %v, want Unknown", got)
	}
	if got := KindOf(nil); got != Unknown {
		t.Errorf("KindOf(nil) = %v, want Unknown", got)
	}
}

func TestKindString(t *testing.T) {
	if got := InvalidDelimiter.String(); got != "invalid delimiter" {
		t.Errorf("String() = %q", got)
	}
	if got := Kind(200).String(); got != "Kind(200)" {
		t.Errorf("String() = %q", got)
	}
}

func TestLog(t *testing.T) {
	var l Log
	if !l.IsEmpty() || l.Latest(false) != nil {
		t.Fatal("zero Log should be empty")
	}

	k1 := l.Write(ErrEmptyInput)
	k2 := l.Write(ErrInvalidPattern)
	if k1 == k2 {
		t.Fatalf("keys should be distinct, both %q", k1)
	}

	if got, ok := l.Get(k1); !ok || got != ErrEmptyInput {
		t.Errorf("Get(k1) = %v, %v", got, ok)
	}
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}

	if got := l.Latest(false); got != ErrInvalidPattern {
		t.Errorf("Latest(false) = %v", got)
	}
	if got := l.Latest(true); got != ErrInvalidPattern {
		t.Errorf("Latest(true) = %v", got)
	}
	if l.Len() != 1 {
		t.Errorf("Len() after pop = %d, want 1", l.Len())
	}

	errs := l.Errors()
	if len(errs) != 1 || errs[0] != ErrEmptyInput {
		t.Errorf("Errors() = %v", errs)
	}

	l.Clear()
	if !l.IsEmpty() {
		t.Error("Clear() left entries behind")
	}
}
