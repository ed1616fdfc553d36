// Package pattern composes typed nodes into a delimited regular expression.
//
// A Builder is an insertion-ordered, keyed collection of syntax nodes and
// nested builders (groups). The root builder serializes to
//
//	<delimiter><children><delimiter><modifiers>
//
// and a group serializes to a named capturing group (?P<key>...).
//
// Add operations validate their input; failures go through the scope's
// router. A recorded failure yields a placeholder node that is not inserted.
// A propagated failure is kept as the builder's sticky error: later add
// operations become no-ops, and Build returns it.
//
// Example:
//
//	b := pattern.New(pattern.NewScope(nil))
//	b.AddInteger(7).Between(2, 4)
//	b.AddAlternation("cat", "dog")
//	p, err := b.Build() // "~(7){2,4}(cat|dog)~"
package pattern

import (
	"strings"

	"github.com/coregx/patternkit/config"
	"github.com/coregx/patternkit/fault"
	"github.com/coregx/patternkit/internal/keygen"
	"github.com/coregx/patternkit/modifier"
	"github.com/coregx/patternkit/syntax"
)

// Item is one child of a builder: either a node or a group.
type Item struct {
	Node  *syntax.Node
	Group *Builder
}

func (it Item) build(key string) (string, error) {
	if it.Group != nil {
		return it.Group.Build(key)
	}
	return it.Node.Build(), nil
}

// Builder composes a pattern. Create root builders with New and groups with
// Builder.Group.
type Builder struct {
	scope *Scope
	isSub bool
	mods  *modifier.Set

	keys  []string
	items map[string]Item

	err error
}

// New creates a root builder in scope.
func New(scope *Scope) *Builder {
	return newBuilder(scope, false)
}

func newBuilder(scope *Scope, isSub bool) *Builder {
	return &Builder{
		scope: scope,
		isSub: isSub,
		mods:  modifier.NewSet(scope.Global),
		items: make(map[string]Item),
	}
}

// Scope returns the scope the builder belongs to.
func (b *Builder) Scope() *Scope { return b.scope }

// Err returns the first propagated failure, if any.
func (b *Builder) Err() error { return b.err }

// IsGroup reports whether b is a nested group.
func (b *Builder) IsGroup() bool { return b.isSub }

// Modifiers returns the builder's own modifier set.
func (b *Builder) Modifiers() *modifier.Set { return b.mods }

// IsEmpty reports whether nothing has been added.
func (b *Builder) IsEmpty() bool { return len(b.keys) == 0 }

// Len returns the number of children.
func (b *Builder) Len() int { return len(b.keys) }

// Keys returns the child keys in insertion order.
func (b *Builder) Keys() []string {
	return append([]string(nil), b.keys...)
}

// Item returns the child stored under key.
func (b *Builder) Item(key string) (Item, bool) {
	it, ok := b.items[key]
	return it, ok
}

// Clear removes every child and forgets the sticky error.
func (b *Builder) Clear() {
	b.keys = nil
	b.items = make(map[string]Item)
	b.err = nil
}

// insert stores it under key. Reusing a key replaces the child in place.
func (b *Builder) insert(key string, it Item) {
	if _, exists := b.items[key]; !exists {
		b.keys = append(b.keys, key)
	}
	b.items[key] = it
}

// add inserts a freshly constructed node, or routes its construction
// failure and returns a placeholder.
func (b *Builder) add(n *syntax.Node, err error) *syntax.Node {
	if b.err != nil {
		return syntax.Placeholder()
	}
	if err != nil {
		if perr := b.scope.route(err); perr != nil {
			b.err = perr
		}
		return syntax.Placeholder()
	}
	b.insert(keygen.Unique(), Item{Node: n})
	return n
}

// Group runs fn against a new nested builder and adds it when fn added
// anything. Empty groups are dropped silently. The optional name becomes
// part of the group key.
func (b *Builder) Group(fn func(g *Builder), name ...string) *Builder {
	if b.err != nil {
		return b
	}

	g := newBuilder(b.scope, true)
	fn(g)

	if g.err != nil {
		b.err = g.err
		return b
	}
	if !g.IsEmpty() {
		var n string
		if len(name) > 0 {
			n = name[0]
		}
		b.insert(keygen.Generate(n), Item{Group: g})
	}
	return b
}

// Build serializes the builder. key names the capturing group when b is a
// group; it is ignored for the root.
//
// Building an empty builder is a fault.EmptyPattern failure; when that
// failure is recorded Build returns "" and no error.
func (b *Builder) Build(key ...string) (string, error) {
	if b.err != nil {
		return "", b.err
	}

	if b.IsEmpty() {
		if err := b.scope.route(fault.New(fault.EmptyPattern, fault.ErrEmptyPattern.Message)); err != nil {
			return "", err
		}
		return "", nil
	}

	var body strings.Builder
	for _, k := range b.keys {
		s, err := b.items[k].build(k)
		if err != nil {
			return "", err
		}
		body.WriteString(s)
	}

	if b.isSub {
		var k string
		if len(key) > 0 {
			k = key[0]
		}
		return "(?P<" + k + ">" + body.String() + ")", nil
	}

	delim, err := b.delimiter()
	if err != nil {
		return "", err
	}

	p := delim + body.String() + delim + b.mods.Build()
	if b.scope.Config.Bool(config.Quote) {
		p = Quote(p, delim)
	}
	return p, nil
}

// Pattern is Build for a root builder.
func (b *Builder) Pattern() (string, error) {
	return b.Build()
}

// MustBuild is like Build but panics if the pattern can not be built.
func (b *Builder) MustBuild() string {
	p, err := b.Build()
	if err != nil {
		panic("pattern: Build(): " + err.Error())
	}
	return p
}

// delimiter resolves the configured delimiter. An unusable value is routed;
// when recorded, the default delimiter replaces it if default_option_on_error
// is set, otherwise the raw value is used as is.
func (b *Builder) delimiter() (string, error) {
	raw := b.scope.Config.Delimiter()
	delim, err := config.ParseDelimiter(raw)
	if err == nil {
		return delim, nil
	}
	if perr := b.scope.route(err); perr != nil {
		return "", perr
	}
	if b.scope.Config.Bool(config.DefaultOptionOnError) {
		return config.DefaultDelimiter, nil
	}
	return strings.TrimSpace(raw), nil
}
