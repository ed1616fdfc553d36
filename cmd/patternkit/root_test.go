package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const dateRecipe = `
[[node]]
kind = "group"
name = "year"

  [[node.node]]
  kind = "meta"
  value = "digit"
  exactly = 4

[[node]]
kind = "text"
value = "-"

[[node]]
kind = "group"
name = "month"

  [[node.node]]
  kind = "meta"
  value = "digit"
  exactly = 2
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), err
}

func TestBuildCmd(t *testing.T) {
	path := writeFile(t, "date.toml", dateRecipe)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default", []string{"build", path}, `~(?P<pk_year>\d{4})-(?P<pk_month>\d{2})~`},
		{"delimiter flag", []string{"build", "--delimiter", "#", path}, `#(?P<pk_year>\d{4})-(?P<pk_month>\d{2})#`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("Execute() error: %v", err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildCmdConfigFile(t *testing.T) {
	recipePath := writeFile(t, "date.toml", dateRecipe)
	cfgPath := writeFile(t, "options.toml", "delimiter = \"%\"\n")

	out, err := run(t, "", "build", "--config", cfgPath, recipePath)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.HasPrefix(out, "%(?P<pk_year>") {
		t.Errorf("output = %q, want the configured delimiter", out)
	}
}

func TestBuildCmdInvalidDelimiter(t *testing.T) {
	path := writeFile(t, "date.toml", dateRecipe)
	if _, err := run(t, "", "build", "--delimiter", "a", path); err == nil {
		t.Error("Execute() accepted an alphanumeric delimiter")
	}
}

func TestMatchCmd(t *testing.T) {
	path := writeFile(t, "date.toml", dateRecipe)

	out, err := run(t, "", "match", path, "shipped 2024-03, billed 2024-04")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	for _, want := range []string{"2024-03", "pk_year", "2024", "pk_month", "03", "@8"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out, err = run(t, "", "match", "--all", path, "shipped 2024-03, billed 2024-04")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(out, "2024-04") {
		t.Errorf("--all output missing the second match:\n%s", out)
	}

	_, err = run(t, "", "match", path, "no dates here")
	if !errors.Is(err, errNoMatch) {
		t.Errorf("Execute() error = %v, want errNoMatch", err)
	}
}

func TestGrepCmd(t *testing.T) {
	recipePath := writeFile(t, "date.toml", dateRecipe)
	input := "start\n2024-03 shipped\nidle\n2024-04 billed\n"

	out, err := run(t, input, "grep", recipePath)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(out, "2024-03 shipped") || !strings.Contains(out, "2024-04 billed") || strings.Contains(out, "idle") {
		t.Errorf("unexpected grep output:\n%s", out)
	}

	logPath := writeFile(t, "app.log", input)
	out, err = run(t, "", "grep", "--invert", recipePath, logPath)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(out, "1:") || !strings.Contains(out, "start") || strings.Contains(out, "shipped") {
		t.Errorf("unexpected inverted grep output:\n%s", out)
	}
}

func TestOptionsCmd(t *testing.T) {
	out, err := run(t, "", "options")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	for _, want := range []string{"delimiter", "exception_on_early_access", "default_option_on_error"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestUnknownEngine(t *testing.T) {
	path := writeFile(t, "date.toml", dateRecipe)
	if _, err := run(t, "", "build", "--engine", "onig", path); err == nil {
		t.Error("Execute() accepted an unknown engine")
	}
}
