// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvplot/internal/logger"
	"github.com/katalvlaran/lvplot/key"
	"github.com/katalvlaran/lvplot/keyconf"
)

// flags holds the command-line overrides applied on top of the config file.
type flags struct {
	hide    bool
	box     bool
	title   string
	verbose bool
}

// newRootCmd builds the lvkey command.
func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "lvkey [config.toml|config.yaml]",
		Short: "Compile a plot legend description into a gnuplot 'set key' line.",
		Long: `lvkey reads a legend description (TOML or YAML) and prints the ` +
			`matching gnuplot "set key" command on stdout. Without a file the ` +
			`engine defaults are used; flags override the file.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(f.verbose)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer l.Sync() //nolint:errcheck

			ctx := logger.NewContext(cmd.Context(), l)
			if err := run(ctx, cmd, f, args); err != nil {
				l.Error("compile legend", zap.Strings("args", args), zap.Error(err))
				return err
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&f.hide, "hide", false, "emit 'set key off' regardless of the config")
	cmd.Flags().BoolVar(&f.box, "box", false, "draw a border around the key")
	cmd.Flags().StringVar(&f.title, "title", "", "key title (overrides the config)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "verbose (development) logging")

	return cmd
}

// newLogger builds the zap logger: development output when verbose, JSON otherwise.
var newLogger = func(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

// run loads the config (if any), applies flag overrides and writes the line.
func run(ctx context.Context, cmd *cobra.Command, f flags, args []string) error {
	p := key.New()
	if len(args) == 1 {
		var err error
		if p, err = keyconf.LoadProperties(ctx, args[0]); err != nil {
			return err
		}
	}

	if cmd.Flags().Changed("title") {
		p.SetTitle(f.title)
	}
	if f.box {
		p.SetBoxed(key.Yes)
	}
	if f.hide {
		p.Hide()
	}
	logger.L(ctx).Debug("writing legend", zap.Stringer("key", p))

	_, err := p.WriteTo(cmd.OutOrStdout())

	return err
}
