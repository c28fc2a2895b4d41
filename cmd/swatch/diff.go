package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/config"
	"github.com/alexisbeaulieu97/swatch/internal/logger"
	"github.com/alexisbeaulieu97/swatch/internal/theme"
	"github.com/alexisbeaulieu97/swatch/pkg/diff"
)

// stockThemeArg stands for the built-in theme wherever a theme file is expected.
const stockThemeArg = "default"

type diffOptions struct {
	exitCode bool
}

var errThemesDiffer = errors.New("themes differ")

func newDiffCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:     "diff <from> <to>",
		Short:   "Compare the tokens of two themes",
		Long:    "Compare the tokens of two themes. Pass \"default\" to use the stock theme.",
		Example: `  swatch diff default brand.yaml`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, rootFlags, args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.exitCode, "exit-code", false, "Fail when the themes differ")

	return cmd
}

func runDiff(cmd *cobra.Command, rootFlags *rootFlags, from, to string, opts *diffOptions) error {
	fromTheme, err := loadThemeArg(cmd, rootFlags, from)
	if err != nil {
		return err
	}
	toTheme, err := loadThemeArg(cmd, rootFlags, to)
	if err != nil {
		return err
	}

	out, stats := diff.Unified(fromTheme.Dump(), toTheme.Dump(), from, to)
	rootFlags.log.Debug("themes compared", logger.Fields{"from": from, "to": to, "added": stats.Added, "removed": stats.Removed})

	if !stats.Changed() {
		fmt.Fprintln(cmd.OutOrStdout(), "No differences.")
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	if opts.exitCode {
		return newCommandError("diff themes", fmt.Sprintf("%s and %s", from, to), errThemesDiffer, "Drop --exit-code to only print the differences.")
	}
	return nil
}

func loadThemeArg(cmd *cobra.Command, rootFlags *rootFlags, arg string) (theme.Theme, error) {
	if arg == stockThemeArg {
		return theme.Default(), nil
	}
	loaded, err := config.NewLoader(rootFlags.log).Load(cmd.Context(), arg)
	if err != nil {
		return theme.Theme{}, newCommandError("load theme", arg, err, "Run with --verbose for details and check the theme file.")
	}
	return loaded.Theme, nil
}
