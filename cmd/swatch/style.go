package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/config"
	"github.com/alexisbeaulieu97/swatch/internal/preview"
	"github.com/alexisbeaulieu97/swatch/internal/props"
)

type styleOptions struct {
	themePath string
	props     map[string]string
	strict    bool
	preview   bool
}

func newStyleCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &styleOptions{}

	cmd := &cobra.Command{
		Use:     "style <component>",
		Short:   "Resolve a theme component's style for a set of props",
		Example: `  swatch style button --theme brand.yaml --prop size=lg --prop tone=muted`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStyle(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.themePath, "theme", "", "Theme file declaring the component")
	cmd.Flags().StringToStringVar(&opts.props, "prop", nil, "Variant prop as key=value (repeatable)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail when a token does not resolve")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Render the component instead of printing JSON")

	return cmd
}

func runStyle(cmd *cobra.Command, rootFlags *rootFlags, component string, opts *styleOptions) error {
	path := rootFlags.themePath(opts.themePath)
	loaded, err := config.NewLoader(rootFlags.log).Load(cmd.Context(), path)
	if err != nil {
		return newCommandError("load theme", valueOrFallback(path, "stock theme"), err, "Run with --verbose for details and check the theme file.")
	}

	style, ok := loaded.Components[component]
	if !ok {
		names := make([]string, 0, len(loaded.Components))
		for name := range loaded.Components {
			names = append(names, name)
		}
		sort.Strings(names)
		return newCommandError("resolve style", component, fmt.Errorf("unknown component"), fmt.Sprintf("Declared components: %v.", names))
	}

	input := make(props.Props, len(opts.props))
	for key, value := range opts.props {
		input[key] = value
	}

	resolve := loaded.Theme.ResolveStyle
	if opts.strict {
		resolve = loaded.Theme.ResolveStyleStrict
	}

	resolved, err := resolve(style, input)
	if err != nil {
		return newCommandError("resolve style", component, err, "Check the --prop values against the component's variants.")
	}

	if opts.preview {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, preview.Component(component, resolved, preview.Options{Color: isTerminal(out)}))
		return nil
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(resolved)
}
