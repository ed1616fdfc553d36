package patternkit_test

import (
	"fmt"

	"github.com/coregx/patternkit"
	"github.com/coregx/patternkit/pattern"
	"github.com/coregx/patternkit/syntax"
)

// ExampleOperation_Match demonstrates extracting a named group.
func ExampleOperation_Match() {
	m := patternkit.New("order 2024-03 shipped").Match()
	m.Patterns().Group(func(g *pattern.Builder) {
		g.AddMeta(syntax.Digit).Exactly(4)
	}, "year")

	if ok, _ := m.Execute(); ok {
		for _, r := range m.Results() {
			fmt.Printf("%s=%s at %d\n", r.Name, r.Content, r.Offset)
		}
	}
	// Output: pk_year=2024 at 6
}

// ExampleOperation_Replace demonstrates replacement with group references.
func ExampleOperation_Replace() {
	r := patternkit.New("smith, john").Replace().Replacement("$2 $1")
	p := r.Patterns()
	p.Group(func(g *pattern.Builder) { g.AddMeta(syntax.Word).AtLeast(1) }, "last")
	p.AddText(", ")
	p.Group(func(g *pattern.Builder) { g.AddMeta(syntax.Word).AtLeast(1) }, "first")

	r.Execute()
	fmt.Println(r.Result())
	// Output: john smith
}

// ExampleOperation_Grep demonstrates selecting lines.
func ExampleOperation_Grep() {
	g := patternkit.New("GET /\nPOST /login\nGET /about").Grep()
	g.Patterns().AddText("GET ")

	g.Execute()
	fmt.Println(g.Count(), g.Results()[2])
	// Output: 2 GET /about
}

// ExampleOperation_Errors demonstrates recorded failures.
func ExampleOperation_Errors() {
	op := patternkit.New("abc")
	b := op.Builder()
	b.AddText("")
	b.AddText("b")

	p, _ := b.Build()
	fmt.Println(p)
	fmt.Println(op.LastErrorMessage(false))
	// Output:
	// ~b~
	// an empty input has been passed as a pattern
}
