package engine

import (
	"fmt"
	"strings"

	"github.com/coregx/coregex"

	"github.com/coregx/patternkit/modifier"
)

type re2Engine struct{}

// RE2 returns the linear-time engine backed by coregex.
func RE2() Engine { return re2Engine{} }

func (re2Engine) Name() string { return "re2" }

func (re2Engine) Compile(expr Expr) (Program, error) {
	var inline strings.Builder
	for _, f := range expr.Flags {
		switch f {
		case modifier.CaseInsensitive, modifier.Multiline, modifier.DotAll, modifier.Ungreedy:
			if !strings.ContainsRune(inline.String(), rune(f)) {
				inline.WriteByte(byte(f))
			}
		case modifier.Extended:
			return nil, fmt.Errorf("%w: %q (free-spacing) requires the backtracking engine", ErrUnsupportedFlag, byte(f))
		}
	}

	body := expr.Body
	if expr.Has(modifier.Anchored) {
		body = anchor(body)
	}
	if inline.Len() > 0 {
		body = "(?" + inline.String() + ")" + body
	}

	re, err := coregex.Compile(body)
	if err != nil {
		return nil, err
	}
	return &re2Program{re: re}, nil
}

type re2Program struct {
	re *coregex.Regex
}

func (p *re2Program) GroupNames() []string {
	names := p.re.SubexpNames()
	if len(names) == 0 {
		return nil
	}
	return append([]string(nil), names[1:]...)
}

func (p *re2Program) FindAll(subject string, n int) ([]Match, error) {
	all := p.re.FindAllStringSubmatchIndex(subject, n)
	if len(all) == 0 {
		return nil, nil
	}

	names := p.GroupNames()
	matches := make([]Match, len(all))
	for i, loc := range all {
		m := Match{Start: loc[0], End: loc[1], Groups: make([]Group, len(names))}
		for g := range names {
			start, end := -1, -1
			if 2*g+3 < len(loc) {
				start, end = loc[2*g+2], loc[2*g+3]
			}
			m.Groups[g] = Group{Name: names[g], Start: start, End: end}
		}
		matches[i] = m
	}
	return matches, nil
}
