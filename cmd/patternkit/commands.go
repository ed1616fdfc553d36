package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coregx/patternkit"
	"github.com/coregx/patternkit/config"
	"github.com/coregx/patternkit/recipe"
)

func newBuildCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "build RECIPE",
		Short: "Print the pattern composed by a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := recipe.ParseFile(args[0])
			if err != nil {
				return err
			}
			op, err := a.operation(nil)
			if err != nil {
				return err
			}
			b := op.Builder()
			if err := r.Apply(b); err != nil {
				return err
			}
			p, err := b.Build()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func newMatchCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "match RECIPE SUBJECT",
		Short: "Print the first match of a recipe and its named groups",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := recipe.ParseFile(args[0])
			if err != nil {
				return err
			}
			op, err := a.operation([]string{args[1]})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if all {
				m := op.MatchAll()
				if err := r.Apply(m.Patterns()); err != nil {
					return err
				}
				ok, err := m.Execute()
				if err != nil {
					return err
				}
				if !ok {
					return noMatch(out)
				}
				for i, full := range m.FullMatches() {
					printMatch(out, full, m.Results()[i])
				}
				return nil
			}

			m := op.Match()
			if err := r.Apply(m.Patterns()); err != nil {
				return err
			}
			ok, err := m.Execute()
			if err != nil {
				return err
			}
			if !ok {
				return noMatch(out)
			}
			printMatch(out, m.FullMatch(), m.Results())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "print every match")
	return cmd
}

func newGrepCmd(a *app) *cobra.Command {
	var invert bool

	cmd := &cobra.Command{
		Use:   "grep RECIPE [FILE]",
		Short: "Print the lines matching a recipe",
		Long:  "Print the lines of FILE, or of standard input, matching a recipe.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := recipe.ParseFile(args[0])
			if err != nil {
				return err
			}

			var data []byte
			if len(args) == 2 {
				data, err = os.ReadFile(args[1])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			text := strings.TrimSuffix(string(data), "\n")
			op, err := a.operation(strings.Split(text, "\n"))
			if err != nil {
				return err
			}
			g := op.Grep().Invert(invert)
			if err := r.Apply(g.Patterns()); err != nil {
				return err
			}
			ok, err := g.Execute()
			if err != nil {
				return err
			}
			if !ok {
				return errNoMatch
			}

			lines := g.Results()
			indexes := make([]int, 0, len(lines))
			for i := range lines {
				indexes = append(indexes, i)
			}
			slices.Sort(indexes)

			out := cmd.OutOrStdout()
			for _, i := range indexes {
				fmt.Fprintf(out, "%s%s\n", subtitleStyle.Render(fmt.Sprintf("%d:", i+1)), lines[i])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&invert, "invert", false, "print the lines that do not match")
	return cmd
}

func newOptionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the configuration options and their values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			op, err := a.operation(nil)
			if err != nil {
				return err
			}
			settings := op.Config().Settings()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("Options"))
			for _, opt := range config.Options() {
				value := fmt.Sprint(settings[opt])
				if settings[opt] != config.Default(opt) {
					value += subtitleStyle.Render(fmt.Sprintf(" (default %v)", config.Default(opt)))
				}
				fmt.Fprintf(out, "  %s%s\n", keyStyle.Render(string(opt)), value)
			}
			return nil
		},
	}
}

func printMatch(out io.Writer, full string, groups []patternkit.Result) {
	fmt.Fprintln(out, successStyle.Render(full))
	for _, g := range groups {
		if g.Offset < 0 {
			fmt.Fprintf(out, "  %s %s\n", patternStyle.Render(g.Name), subtitleStyle.Render("(unmatched)"))
			continue
		}
		fmt.Fprintf(out, "  %s %s %s\n", patternStyle.Render(g.Name), g.Content, subtitleStyle.Render(fmt.Sprintf("@%d", g.Offset)))
	}
}

func noMatch(out io.Writer) error {
	fmt.Fprintln(out, warningStyle.Render("no match"))
	return errNoMatch
}
