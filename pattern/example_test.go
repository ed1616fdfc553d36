package pattern_test

import (
	"fmt"

	"github.com/coregx/patternkit/pattern"
	"github.com/coregx/patternkit/syntax"
)

func Example() {
	b := pattern.New(pattern.NewScope(nil))
	b.AddInteger(7).Between(2, 4)
	b.AddAlternation("cat", "dog")

	fmt.Println(b.MustBuild())
	// Output: ~(7){2,4}(cat|dog)~
}

func ExampleBuilder_Group() {
	b := pattern.New(pattern.NewScope(nil))
	b.Group(func(g *pattern.Builder) {
		g.AddRange([]syntax.Span{syntax.IntSpan(0, 9)}, false).Exactly(4)
	}, "year")
	b.AddCharacter("-")
	b.Group(func(g *pattern.Builder) {
		g.AddMeta(syntax.Digit).Exactly(2)
	}, "month")

	fmt.Println(b.MustBuild())
	// Output: ~(?P<pk_year>[0-9]{4})-(?P<pk_month>\d{2})~
}
