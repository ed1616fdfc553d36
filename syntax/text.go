package syntax

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/coregx/patternkit/fault"
)

// NewText creates a node matching text verbatim. The text is not escaped.
func NewText(text string) (*Node, error) {
	if text == "" {
		return nil, fault.ErrEmptyInput
	}
	return &Node{kind: KindText, raw: text}, nil
}

// NewCharacter creates a node from the first character of s.
func NewCharacter(s string) (*Node, error) {
	if s == "" {
		return nil, fault.ErrEmptyInput
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		// Keep a lone invalid byte as is.
		return &Node{kind: KindCharacter, raw: s[:1]}, nil
	}
	return &Node{kind: KindCharacter, raw: s[:size]}, nil
}

// NewCharacterClass creates a [...] class of the characters in chars.
// Duplicates are dropped, keeping the first occurrence. A negated class is
// rendered as [^...].
func NewCharacterClass(chars string, negate bool) (*Node, error) {
	if chars == "" {
		return nil, fault.ErrEmptyInput
	}

	seen := make(map[rune]struct{}, len(chars))
	var b strings.Builder
	b.WriteByte('[')
	if negate {
		b.WriteByte('^')
	}
	for _, r := range chars {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		b.WriteRune(r)
	}
	b.WriteByte(']')

	return &Node{kind: KindCharacterClass, raw: b.String()}, nil
}

// NumberOption configures NewInteger and NewFloat.
type NumberOption func(*numberConfig)

type numberConfig struct {
	signed    bool
	precision int
}

// Signed keeps the sign of a negative number. By default numbers are
// rendered as their absolute value.
func Signed() NumberOption {
	return func(c *numberConfig) { c.signed = true }
}

// Precision sets the number of decimals a float is rounded to (default 2).
// Negative values round to the left of the decimal point.
func Precision(p int) NumberOption {
	return func(c *numberConfig) { c.precision = p }
}

func numberOptions(opts []NumberOption) numberConfig {
	c := numberConfig{precision: 2}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewInteger creates a node matching the decimal form of n.
func NewInteger(n int, opts ...NumberOption) *Node {
	c := numberOptions(opts)
	if !c.signed && n < 0 {
		return &Node{kind: KindInteger, raw: strconv.FormatUint(uint64(-(n + 1))+1, 10)}
	}
	return &Node{kind: KindInteger, raw: strconv.Itoa(n)}
}

// NewFloat creates a node matching the decimal form of f after rounding.
// Trailing zeros are dropped, so 2.50 renders as "2.5" and 3.0 as "3".
func NewFloat(f float64, opts ...NumberOption) (*Node, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fault.Newf(fault.InvalidPattern, "%v can not be used as a number pattern", f)
	}

	c := numberOptions(opts)
	if !c.signed {
		f = math.Abs(f)
	}
	f = round(f, c.precision)
	if f == 0 {
		f = 0 // drop negative zero
	}
	return &Node{kind: KindFloat, raw: strconv.FormatFloat(f, 'f', -1, 64)}, nil
}

// round rounds half away from zero to the given number of decimals. f is
// returned unchanged when scaling it by the precision overflows.
func round(f float64, precision int) float64 {
	if precision >= 0 {
		pow := math.Pow(10, float64(precision))
		scaled := f * pow
		if math.IsInf(pow, 0) || math.IsInf(scaled, 0) || math.IsNaN(scaled) {
			return f
		}
		return math.Round(scaled) / pow
	}
	inv := math.Pow(10, float64(-precision))
	if math.IsInf(inv, 0) {
		return f
	}
	r := math.Round(f/inv) * inv
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return f
	}
	return r
}

// NewAlternation creates a (a|b|c) group of the given values, stringified.
func NewAlternation(values ...string) *Node {
	return &Node{
		kind: KindAlternation,
		raw:  "(" + strings.Join(values, "|") + ")",
		alts: append([]string(nil), values...),
	}
}

// AlternationOf creates an alternation from any slice or array, stringifying
// each element with fmt. Other input is rejected with fault.InvalidPattern.
func AlternationOf(values any) (*Node, error) {
	if s, ok := values.([]string); ok {
		return NewAlternation(s...), nil
	}

	v := reflect.ValueOf(values)
	if !v.IsValid() || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) {
		return nil, fault.New(fault.InvalidPattern, "the input value for the text group must be a sequence")
	}

	items := make([]string, v.Len())
	for i := range items {
		items[i] = fmt.Sprint(v.Index(i).Interface())
	}
	return NewAlternation(items...), nil
}
