package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/swatch/internal/config"
	"github.com/alexisbeaulieu97/swatch/internal/logger"
)

type rootFlags struct {
	configPath string
	verbose    bool

	settings *config.Settings
	log      *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "swatch",
		Short:         "Swatch generates colour scales and resolves design tokens",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Settings file (default ./swatch.yaml or ~/.config/swatch/swatch.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newScaleCmd(flags))
	cmd.AddCommand(newContrastCmd(flags))
	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newStyleCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (f *rootFlags) setup(cmd *cobra.Command) error {
	settings, err := config.LoadSettings(f.configPath)
	if err != nil {
		return newCommandError("load settings", valueOrFallback(f.configPath, "default locations"), err, "Check the settings file or SWATCH_* environment variables.")
	}

	level := settings.Log.Level
	if f.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: settings.Log.Human,
		Writer:        cmd.ErrOrStderr(),
		Component:     cmd.Name(),
	})
	if err != nil {
		return newCommandError("create logger", level, err, "Use one of trace, debug, info, warn or error for log.level.")
	}

	f.settings = settings
	f.log = log
	return nil
}

// themePath prefers an explicit --theme flag over the theme.file setting.
func (f *rootFlags) themePath(flag string) string {
	if flag != "" {
		return flag
	}
	if f.settings != nil {
		return f.settings.Theme.File
	}
	return ""
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func valueOrFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
