package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/config"
	"github.com/alexisbeaulieu97/swatch/internal/logger"
)

type resolveOptions struct {
	themePath  string
	jsonOutput bool
}

func newResolveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <category> <token>",
		Short: "Resolve a design token against a theme",
		Example: `  swatch resolve space 3
  swatch resolve colors primary.2
  swatch resolve colors primaryText --theme brand.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, rootFlags, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.themePath, "theme", "", "Theme file (default from settings, else the stock theme)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the result as JSON")

	return cmd
}

type resolveJSONPayload struct {
	Theme    string `json:"theme"`
	Category string `json:"category"`
	Token    string `json:"token"`
	Value    any    `json:"value"`
}

func runResolve(cmd *cobra.Command, rootFlags *rootFlags, category, token string, opts *resolveOptions) error {
	path := rootFlags.themePath(opts.themePath)
	loaded, err := config.NewLoader(rootFlags.log).Load(cmd.Context(), path)
	if err != nil {
		return newCommandError("load theme", valueOrFallback(path, "stock theme"), err, "Run with --verbose for details and check the theme file.")
	}

	value, err := loaded.Theme.Resolve(category, token)
	if err != nil {
		rootFlags.log.Debug("token did not resolve", logger.Fields{"category": category, "token": token})
		return newCommandError("resolve token", fmt.Sprintf("%s in %s", token, category), err, fmt.Sprintf("Known categories: %v.", loaded.Theme.Categories()))
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(resolveJSONPayload{
			Theme:    loaded.Theme.Name(),
			Category: category,
			Token:    token,
			Value:    value,
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
