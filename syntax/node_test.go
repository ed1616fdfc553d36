package syntax

import (
	"errors"
	"strings"
	"testing"

	"github.com/coregx/patternkit/fault"
)

// must returns a helper unwrapping constructor results.
func must(t *testing.T) func(*Node, error) *Node {
	return func(n *Node, err error) *Node {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return n
	}
}

func TestBuildQuantifierWrapping(t *testing.T) {
	node := must(t)
	text := func() *Node { n, _ := NewText("ab"); return n }
	char := func() *Node { n, _ := NewCharacter("a"); return n }
	class := func() *Node { n, _ := NewCharacterClass("xy", false); return n }

	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"text plain", text(), "ab"},
		{"text quantified", text().Between(2, 3), "(ab){2,3}"},
		{"text mode only", text().Reluctant(), "(ab)?"},
		{"integer quantified", NewInteger(7).Between(2, 4), "(7){2,4}"},
		{"float quantified", node(NewFloat(1.5)).AtLeast(1), "(1.5){1,}"},
		{"character appends", char().Unlimited(), "a*"},
		{"class appends", class().AtMost(1), "[xy]?"},
		{"exactly", char().Exactly(3), "a{3}"},
		{"exactly zero is a no-op", char().Exactly(0), "a"},
		{"exactly negative", char().Exactly(-2), "a{2}"},
		{"possessive", char().AtLeast(1).Possessive(), "a{1,}+"},
		{"greedy set explicitly", char().Between(0, 1).Greedy(), "a?"},
		{"placeholder ignores quantifier", Placeholder().Between(1, 2), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Build(); got != tt.want {
				t.Errorf("Build() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEmptyInput(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
	}{
		{"text", func() error { _, err := NewText(""); return err }},
		{"character", func() error { _, err := NewCharacter(""); return err }},
		{"class", func() error { _, err := NewCharacterClass("", true); return err }},
		{"range", func() error { _, err := NewRange(nil, false); return err }},
		{"range of empty strings", func() error { _, err := NewRange([]Span{CharSpan("", "")}, false); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !errors.Is(err, fault.ErrEmptyInput) {
				t.Errorf("error = %v, want empty input", err)
			}
		})
	}
}

func TestCharacter(t *testing.T) {
	node := must(t)
	tests := []struct{ in, want string }{
		{"a", "a"},
		{"abc", "a"},
		{"ßx", "ß"},
		{"日本", "日"},
	}
	for _, tt := range tests {
		n := node(NewCharacter(tt.in))
		if got := n.Build(); got != tt.want {
			t.Errorf("NewCharacter(%q).Build() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCharacterClass(t *testing.T) {
	node := must(t)
	tests := []struct {
		chars  string
		negate bool
		want   string
	}{
		{"aabbc", false, "[abc]"},
		{"aabbc", true, "[^abc]"},
		{"cba", false, "[cba]"},
		{"ééa", false, "[éa]"},
	}
	for _, tt := range tests {
		n := node(NewCharacterClass(tt.chars, tt.negate))
		if got := n.Build(); got != tt.want {
			t.Errorf("NewCharacterClass(%q, %v) = %q, want %q", tt.chars, tt.negate, got, tt.want)
		}
	}
}

func TestRange(t *testing.T) {
	tests := []struct {
		name   string
		spans  []Span
		negate bool
		want   string
	}{
		{"digits", []Span{IntSpan(13, 27)}, false, "[3-7]"},
		{"digits collapse to zero", []Span{IntSpan(10, 20)}, false, "[0]"},
		{"digits reversed", []Span{IntSpan(9, 2)}, false, "[2-9]"},
		{"larger digit zero keeps smaller", []Span{IntSpan(5, 10)}, false, "[0]"},
		{"equal digits", []Span{IntSpan(3, 13)}, false, "[3-3]"},
		{"negative digits", []Span{IntSpan(-4, -8)}, false, "[4-8]"},
		{"letters reversed", []Span{CharSpan("r", "a")}, false, "[a-r]"},
		{"letters equal", []Span{CharSpan("m", "m")}, false, "[m]"},
		{"first characters only", []Span{CharSpan("alpha", "zulu")}, false, "[a-z]"},
		{"several", []Span{CharSpan("a", "z"), CharSpan("A", "Z"), IntSpan(0, 9)}, false, "[a-zA-Z0-9]"},
		{"negated", []Span{CharSpan("a", "f")}, true, "[^a-f]"},
		{"mixed ends are characters", []Span{SpanOf(1, "x")}, false, "[1-x]"},
		{"SpanOf integers", []Span{SpanOf(int64(1), uint8(5))}, false, "[1-5]"},
		{"SpanOf unsigned integers", []Span{SpanOf(uint(13), uint64(27))}, false, "[3-7]"},
		{"SpanOf uintptr", []Span{SpanOf(uintptr(2), uintptr(9))}, false, "[2-9]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewRange(tt.spans, tt.negate)
			if err != nil {
				t.Fatal(err)
			}
			if got := n.Build(); got != tt.want {
				t.Errorf("Build() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNumbers(t *testing.T) {
	node := must(t)
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"integer", NewInteger(42), "42"},
		{"integer unsigned by default", NewInteger(-42), "42"},
		{"integer signed", NewInteger(-42, Signed()), "-42"},
		{"float default precision", node(NewFloat(3.14159)), "3.14"},
		{"float rounds half up", node(NewFloat(2.675, Precision(1))), "2.7"},
		{"float drops trailing zeros", node(NewFloat(2.50)), "2.5"},
		{"float whole", node(NewFloat(3.0)), "3"},
		{"float unsigned", node(NewFloat(-1.25)), "1.25"},
		{"float signed", node(NewFloat(-1.25, Signed(), Precision(1))), "-1.3"},
		{"float negative precision", node(NewFloat(1234.5, Precision(-2))), "1200"},
		{"float negative zero", node(NewFloat(-0.001, Signed())), "0"},
		{"float huge precision", node(NewFloat(1.5, Precision(400))), "1.5"},
		{"float zero huge precision", node(NewFloat(0, Precision(400))), "0"},
		{"float scaling overflow", node(NewFloat(1e307)), "1" + strings.Repeat("0", 307)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Build(); got != tt.want {
				t.Errorf("Build() = %q, want %q", got, tt.want)
			}
		})
	}
}
