package syntax

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/coregx/patternkit/fault"
)

// Span is one start/end pair of a character range.
//
// Numeric spans are reduced to single digits (value mod 10) and ordered
// ascending; a span whose larger digit is 0 collapses to the smaller digit,
// so IntSpan(10, 20) renders as "0". Character spans compare the first
// characters of both ends: equal ends render one character, otherwise the
// ends are ordered and joined with '-'.
type Span struct {
	from, to string
	numeric  bool
	lo, hi   int
}

// IntSpan returns a numeric span.
func IntSpan(from, to int) Span {
	return Span{numeric: true, lo: from, hi: to}
}

// CharSpan returns a character span.
func CharSpan(from, to string) Span {
	return Span{from: from, to: to}
}

// SpanOf returns a numeric span when both ends are integers, and a character
// span of their fmt representation otherwise.
func SpanOf(from, to any) Span {
	a, aok := toInt(from)
	b, bok := toInt(to)
	if aok && bok {
		return IntSpan(a, b)
	}
	return CharSpan(fmt.Sprint(from), fmt.Sprint(to))
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint:
		return int(n), n <= math.MaxInt
	case uint64:
		return int(n), n <= math.MaxInt
	case uintptr:
		return int(n), uint64(n) <= math.MaxInt
	default:
		return 0, false
	}
}

// String renders the span as it appears inside a class.
func (s Span) String() string {
	if s.numeric {
		return numberRange(s.lo, s.hi)
	}
	return charRange(s.from, s.to)
}

func numberRange(start, end int) string {
	start = abs(start%10)
	end = abs(end%10)

	lo, hi := min(start, end), max(start, end)
	if hi == 0 {
		return strconv.Itoa(lo)
	}
	if lo < hi {
		return strconv.Itoa(lo) + "-" + strconv.Itoa(hi)
	}
	return strconv.Itoa(hi) + "-" + strconv.Itoa(lo)
}

func charRange(start, end string) string {
	start, end = first(start), first(end)
	switch strings.Compare(start, end) {
	case 0:
		return start
	case 1:
		return end + "-" + start
	default:
		return start + "-" + end
	}
}

func first(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}

// NewRange creates a [...] class from spans, in order. A negated range is
// rendered as [^...].
func NewRange(spans []Span, negate bool) (*Node, error) {
	var body strings.Builder
	for _, s := range spans {
		body.WriteString(s.String())
	}
	if body.Len() == 0 {
		return nil, fault.ErrEmptyInput
	}

	prefix := "["
	if negate {
		prefix = "[^"
	}
	return &Node{kind: KindRange, raw: prefix + body.String() + "]"}, nil
}
