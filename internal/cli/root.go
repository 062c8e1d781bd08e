// Package cli implements the iniconf command.
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/go-gcfg/iniconf"
)

type options struct {
	logLevel     string
	maxEntrySize int
	noColor      bool

	logger log.Logger
	header *color.Color
}

// parser returns a Parser configured from the global flags.
func (o *options) parser() *iniconf.Parser {
	return &iniconf.Parser{
		MaxEntrySize: o.maxEntrySize,
		Logger:       o.logger,
	}
}

func (o *options) setup(cmd *cobra.Command) error {
	lvl, err := level.Parse(o.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log.level %q: %w", o.logLevel, err)
	}
	if o.maxEntrySize < 0 {
		return fmt.Errorf("invalid --max-entry-size %d", o.maxEntrySize)
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(cmd.ErrOrStderr()))
	o.logger = level.NewFilter(logger, level.Allow(lvl))

	o.header = color.New(color.FgCyan, color.Bold)
	if o.noColor {
		o.header.DisableColor()
	}
	return nil
}

// Command returns the root command.
func Command() *cobra.Command {
	o := &options{logLevel: "info"}

	cmd := &cobra.Command{
		Use:   "iniconf [global options] <subcommand>",
		Short: "Inspect and rewrite INI configuration files",
		Long: `iniconf reads INI-style configuration files: sections in [brackets],
name = value entries, '#' and ';' comment lines and backslash continuations.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Usage()
		},
	}

	cmd.PersistentFlags().StringVar(&o.logLevel, "log.level", o.logLevel, "Level of diagnostics written to stderr: debug, info, warn or error.")
	cmd.PersistentFlags().IntVar(&o.maxEntrySize, "max-entry-size", 0, "Largest section, name and value of one entry together, in bytes; 0 means no limit.")
	cmd.PersistentFlags().BoolVar(&o.noColor, "no-color", false, "Disable colored output.")

	cmd.AddCommand(
		dumpCommand(o),
		getCommand(o),
		fmtCommand(o),
		scanCommand(),
	)
	return cmd
}
