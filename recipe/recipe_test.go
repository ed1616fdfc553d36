package recipe

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/coregx/patternkit/config"
	"github.com/coregx/patternkit/fault"
	"github.com/coregx/patternkit/pattern"
)

const sample = `
flags = ["i"]

[options]
delimiter = "#"

[[node]]
kind = "text"
value = "id="

[[node]]
kind = "group"
name = "num"

  [[node.node]]
  kind = "meta"
  value = "digit"
  min = 2
  max = 4

[[node]]
kind = "alternation"
values = ["cat", "dog"]
`

func TestParseAndBuild(t *testing.T) {
	r, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if diff := cmp.Diff([]string{"i"}, r.Flags); diff != "" {
		t.Errorf("Flags mismatch (-want +got):\n%s", diff)
	}
	if len(r.Nodes) != 3 || len(r.Nodes[1].Nodes) != 1 {
		t.Fatalf("decoded nodes = %+v", r.Nodes)
	}

	scope := pattern.NewScope(nil)
	got, err := r.Build(scope)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if want := `#id=(?P<pk_num>\d{2,4})(cat|dog)#i`; got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}
	if d := scope.Config.Delimiter(); d != "#" {
		t.Errorf("delimiter option = %q, want #", d)
	}
}

func TestNodeKinds(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"character", `[[node]]
kind = "character"
value = "xyz"
exactly = 3`, `~x{3}~`},
		{"anything", `[[node]]
kind = "anything"
unlimited = true
mode = "reluctant"`, `~.*?~`},
		{"class", `[[node]]
kind = "class"
value = "abca"
negate = true`, `~[^abc]~`},
		{"char range", `[[node]]
kind = "range"
spans = [{from = "z", to = "a"}]`, `~[a-z]~`},
		{"digit range", `[[node]]
kind = "range"
spans = [{lo = 1, hi = 5}, {from = "a", to = "f"}]`, `~[1-5a-f]~`},
		{"integer", `[[node]]
kind = "integer"
integer = 7
min = 1`, `~(7){1,}~`},
		{"signed integer", `[[node]]
kind = "integer"
integer = -7
signed = true`, `~-7~`},
		{"float", `[[node]]
kind = "float"
float = 3.14159
precision = 3`, `~3.142~`},
		{"posix", `[[node]]
kind = "posix"
value = "alpha"
max = 3`, `~[[:alpha:]]{0,3}~`},
		{"whitespace", `[[node]]
kind = "whitespace"
value = "tab"`, `~\t~`},
		{"unprintable", `[[node]]
kind = "unprintable"
value = "ESC"`, `~\x1b~`},
		{"unicode", `[[node]]
kind = "unicode"
value = '\u00e9'`, `~\u00e9~`},
		{"or", `[[node]]
kind = "text"
value = "a"
[[node]]
kind = "or"
[[node]]
kind = "text"
value = "b"`, `~a|b~`},
		{"possessive", `[[node]]
kind = "meta"
value = "word"
min = 1
mode = "possessive"`, `~\w{1,}+~`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse([]byte(tt.doc))
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			got, err := r.Build(pattern.NewScope(nil))
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Build() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"not toml", `[[node`, ErrDecode},
		{"unknown kind", "[[node]]\nkind = \"lookahead\"", ErrSchema},
		{"missing text value", "[[node]]\nkind = \"text\"", ErrSchema},
		{"empty text value", "[[node]]\nkind = \"text\"\nvalue = \"\"", ErrSchema},
		{"unknown meta", "[[node]]\nkind = \"meta\"\nvalue = \"digits\"", ErrSchema},
		{"unknown flag", "flags = [\"q\"]", ErrSchema},
		{"bad mode", "[[node]]\nkind = \"anything\"\nmode = \"lazy\"", ErrSchema},
		{"empty alternation", "[[node]]\nkind = \"alternation\"\nvalues = []", ErrSchema},
		{"missing integer", "[[node]]\nkind = \"integer\"", ErrSchema},
		{"unknown field", "[[node]]\nkind = \"anything\"\ncolour = \"red\"", ErrSchema},
		{"option type", "[options]\nquote = 3", ErrSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestApplyOptions(t *testing.T) {
	r, err := Parse([]byte("[options]\nexception_on_error = true\nno_such_option = true\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	scope := pattern.NewScope(nil)
	scope.Config.Set(config.ExceptionOnError, true)
	err = r.Apply(pattern.New(scope))
	if !errors.Is(err, fault.ErrInvalidConfig) {
		t.Fatalf("Apply() error = %v, want an invalid config failure", err)
	}
}

func TestApplySpanWithoutEnds(t *testing.T) {
	r, err := Parse([]byte("[[node]]\nkind = \"range\"\nspans = [{from = \"a\"}]"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if err := r.Apply(pattern.New(pattern.NewScope(nil))); !errors.Is(err, fault.ErrInvalidPattern) {
		t.Errorf("Apply() error = %v, want an invalid pattern failure", err)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "id.toml")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatal(err)
	}
	r, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if len(r.Nodes) != 3 {
		t.Errorf("ParseFile() decoded %d nodes, want 3", len(r.Nodes))
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("ParseFile() of a missing file succeeded")
	}
}

func TestEmptyRecipe(t *testing.T) {
	r, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error: %v", err)
	}
	scope := pattern.NewScope(nil)
	got, err := r.Build(scope)
	if got != "" || err != nil {
		t.Errorf("Build() = %q, %v; want recorded empty pattern", got, err)
	}
	if !errors.Is(scope.Errors().Latest(false), fault.ErrEmptyPattern) {
		t.Error("empty pattern failure was not recorded")
	}
}
