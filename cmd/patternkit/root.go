package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/coregx/patternkit"
	"github.com/coregx/patternkit/config"
	"github.com/coregx/patternkit/engine"
)

// errNoMatch is returned by match and grep when nothing matched.
var errNoMatch = errors.New("no match")

// app holds the global flags shared by every command.
type app struct {
	verbose   bool
	cfgFile   string
	engine    string
	delimiter string
	quote     bool

	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "patternkit",
		Short: "Compose regular expressions from recipes",
		Long: titleStyle.Render("patternkit") + subtitleStyle.Render(" - compose regular expressions from recipes") + `

A recipe is a TOML file listing the building blocks of a pattern: text,
character classes, ranges, metacharacters, alternations and named groups,
each with an optional quantifier.

` + subtitleStyle.Render("Examples:") + `
  patternkit build date.toml             Print the composed pattern
  patternkit match date.toml "2024-03"   Print the first match and its groups
  patternkit grep date.toml access.log   Print the matching lines
  patternkit options                     List the configuration options`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "patternkit"})
			if a.verbose {
				a.logger.SetLevel(log.DebugLevel)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "options file (toml, yaml or json)")
	root.PersistentFlags().StringVar(&a.engine, "engine", "re2", "regex engine: re2 or backtrack")
	root.PersistentFlags().StringVar(&a.delimiter, "delimiter", "", "pattern delimiter")
	root.PersistentFlags().BoolVar(&a.quote, "quote", false, "quote the composed pattern")

	root.AddCommand(
		newBuildCmd(a),
		newMatchCmd(a),
		newGrepCmd(a),
		newOptionsCmd(a),
	)
	return root
}

// operation creates an operation configured from the global flags. The
// options file is applied first so explicit flags win over it.
func (a *app) operation(subjects []string) (*patternkit.Operation, error) {
	eng, err := engine.ByName(a.engine)
	if err != nil {
		return nil, err
	}
	if a.logger == nil {
		a.logger = log.New(os.Stderr)
	}

	op := patternkit.NewMulti(subjects,
		patternkit.WithLogger(a.logger),
		patternkit.WithEngine(eng),
		patternkit.WithOption(config.ExceptionOnError, true),
	)
	if err := op.Err(); err != nil {
		return nil, err
	}

	if a.cfgFile != "" {
		if err := op.Config().LoadFile(a.cfgFile); err != nil {
			return nil, err
		}
		a.logger.Debug("options loaded", "file", a.cfgFile)
	}
	if a.delimiter != "" {
		if err := op.SetOption(config.Delimiter, a.delimiter); err != nil {
			return nil, err
		}
	}
	if a.quote {
		if err := op.SetOption(config.Quote, true); err != nil {
			return nil, err
		}
	}
	return op, nil
}
