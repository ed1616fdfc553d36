// Package recipe describes patterns declaratively.
//
// A recipe is a TOML document validated against an embedded CUE schema and
// replayed onto a pattern.Builder:
//
//	flags = ["i"]
//
//	[options]
//	delimiter = "#"
//
//	[[node]]
//	kind = "text"
//	value = "id="
//
//	[[node]]
//	kind = "group"
//	name = "num"
//
//	  [[node.node]]
//	  kind = "meta"
//	  value = "digit"
//	  min = 2
//	  max = 4
//
// Applying it yields #id=(?P<pk_num>\d{2,4})#i.
package recipe

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/pelletier/go-toml/v2"

	"github.com/coregx/patternkit/fault"
	"github.com/coregx/patternkit/modifier"
	"github.com/coregx/patternkit/pattern"
	"github.com/coregx/patternkit/syntax"
)

//go:embed schema.cue
var schema string

// Recipe errors
var (
	// ErrDecode indicates the document is not valid TOML
	ErrDecode = errors.New("recipe is not valid TOML")

	// ErrSchema indicates the document does not satisfy the recipe schema
	ErrSchema = errors.New("recipe does not match the schema")
)

// Recipe is a decoded pattern description.
type Recipe struct {
	Flags   []string       `json:"flags,omitempty"`
	Options map[string]any `json:"options,omitempty"`
	Nodes   []Node         `json:"node,omitempty"`
}

// Span is one range span: From/To for characters, Lo/Hi for digits.
type Span struct {
	From *string `json:"from,omitempty"`
	To   *string `json:"to,omitempty"`
	Lo   *int    `json:"lo,omitempty"`
	Hi   *int    `json:"hi,omitempty"`
}

// Node is one entry of a recipe.
type Node struct {
	Kind      string   `json:"kind"`
	Value     string   `json:"value,omitempty"`
	Values    []string `json:"values,omitempty"`
	Integer   *int     `json:"integer,omitempty"`
	Float     *float64 `json:"float,omitempty"`
	Signed    bool     `json:"signed,omitempty"`
	Precision *int     `json:"precision,omitempty"`
	Negate    bool     `json:"negate,omitempty"`
	Spans     []Span   `json:"spans,omitempty"`
	Name      string   `json:"name,omitempty"`
	Nodes     []Node   `json:"node,omitempty"`
	Min       *int     `json:"min,omitempty"`
	Max       *int     `json:"max,omitempty"`
	Exactly   *int     `json:"exactly,omitempty"`
	Unlimited bool     `json:"unlimited,omitempty"`
	Mode      string   `json:"mode,omitempty"`
}

// Parse decodes a TOML recipe and validates it against the schema.
func Parse(data []byte) (*Recipe, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if raw == nil {
		raw = map[string]any{}
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(schema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}
	def := schemaValue.LookupPath(cue.ParsePath("#Recipe"))
	if def.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition #Recipe not found: %w", def.Err())
	}

	unified := def.Unify(ctx.Encode(raw))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}

	var r Recipe
	if err := unified.Decode(&r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}
	return &r, nil
}

// ParseFile reads and parses the recipe at path.
func ParseFile(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Apply merges the recipe options into the builder's configuration, adds
// the root flags to the builder's modifiers and replays every node. It
// returns the first propagated failure.
func (r *Recipe) Apply(b *pattern.Builder) error {
	scope := b.Scope()
	if err := scope.Router.Route(scope.Config.MergeMap(r.Options)); err != nil {
		return err
	}

	for _, f := range r.Flags {
		if f != "" {
			b.Modifiers().Add(modifier.Flag(f[0]))
		}
	}

	if err := apply(b, r.Nodes); err != nil {
		return err
	}
	return b.Err()
}

// Build applies the recipe to a new builder in scope and builds it.
func (r *Recipe) Build(scope *pattern.Scope) (string, error) {
	b := pattern.New(scope)
	if err := r.Apply(b); err != nil {
		return "", err
	}
	return b.Build()
}

func apply(b *pattern.Builder, nodes []Node) error {
	for i, n := range nodes {
		switch n.Kind {
		case "or":
			b.AddOr()
		case "group":
			var err error
			b.Group(func(g *pattern.Builder) { err = apply(g, n.Nodes) }, n.Name)
			if err != nil {
				return err
			}
		default:
			node, err := n.add(b)
			if err != nil {
				return fmt.Errorf("node %d: %w", i, err)
			}
			n.quantify(node)
		}
	}
	return nil
}

func (n Node) add(b *pattern.Builder) (*syntax.Node, error) {
	switch n.Kind {
	case "text":
		return b.AddText(n.Value), nil
	case "character":
		return b.AddCharacter(n.Value), nil
	case "anything":
		return b.AddAnything(), nil
	case "class":
		return b.AddCharacterClass(n.Value, n.Negate), nil
	case "range":
		spans, err := n.spans()
		if err != nil {
			return nil, err
		}
		return b.AddRange(spans, n.Negate), nil
	case "integer":
		return b.AddInteger(*n.Integer, n.numberOptions()...), nil
	case "float":
		return b.AddFloat(*n.Float, n.numberOptions()...), nil
	case "meta":
		m, ok := syntax.MetacharacterNamed(n.Value)
		if !ok {
			return nil, fault.Newf(fault.InvalidPattern, "unknown metacharacter %q", n.Value)
		}
		return b.AddMeta(m), nil
	case "posix":
		p, ok := syntax.PosixClassNamed(n.Value)
		if !ok {
			return nil, fault.Newf(fault.InvalidPattern, "unknown posix class %q", n.Value)
		}
		return b.AddPosix(p), nil
	case "whitespace":
		w, ok := syntax.WhitespaceNamed(n.Value)
		if !ok {
			return nil, fault.Newf(fault.InvalidPattern, "unknown whitespace kind %q", n.Value)
		}
		return b.AddWhitespace(w), nil
	case "unprintable":
		u, ok := syntax.UnprintableNamed(n.Value)
		if !ok {
			return nil, fault.Newf(fault.InvalidPattern, "unknown unprintable character %q", n.Value)
		}
		return b.AddUnprintable(u), nil
	case "unicode":
		return b.AddUnicode(n.Value), nil
	case "alternation":
		return b.AddAlternation(n.Values...), nil
	}
	return nil, fault.Newf(fault.InvalidPattern, "unknown node kind %q", n.Kind)
}

func (n Node) spans() ([]syntax.Span, error) {
	spans := make([]syntax.Span, 0, len(n.Spans))
	for _, s := range n.Spans {
		switch {
		case s.From != nil && s.To != nil:
			spans = append(spans, syntax.CharSpan(*s.From, *s.To))
		case s.Lo != nil && s.Hi != nil:
			spans = append(spans, syntax.IntSpan(*s.Lo, *s.Hi))
		default:
			return nil, fault.New(fault.InvalidPattern, "a span needs either from and to, or lo and hi")
		}
	}
	return spans, nil
}

func (n Node) numberOptions() []syntax.NumberOption {
	var opts []syntax.NumberOption
	if n.Signed {
		opts = append(opts, syntax.Signed())
	}
	if n.Precision != nil {
		opts = append(opts, syntax.Precision(*n.Precision))
	}
	return opts
}

func (n Node) quantify(node *syntax.Node) {
	switch {
	case n.Exactly != nil:
		node.Exactly(*n.Exactly)
	case n.Unlimited:
		node.Unlimited()
	case n.Min != nil && n.Max != nil:
		node.Between(*n.Min, *n.Max)
	case n.Min != nil:
		node.AtLeast(*n.Min)
	case n.Max != nil:
		node.AtMost(*n.Max)
	}

	switch n.Mode {
	case "greedy":
		node.Greedy()
	case "reluctant":
		node.Reluctant()
	case "possessive":
		node.Possessive()
	}
}
