package cli

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/go-gcfg/iniconf/strbuf"
)

func dumpCommand(o *options) *cobra.Command {
	var showLines bool

	cmd := &cobra.Command{
		Use:   "dump [flags] [file...]",
		Short: "Print every entry of the given files",
		Long: `dump prints one line per entry, "[section] name = value", in input order.
A file name of "-", or no file at all, reads standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range inputNames(args) {
				if err := o.dump(cmd, name, showLines); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showLines, "show-lines", false, "Prefix each entry with its file name and line number.")
	return cmd
}

func (o *options) dump(cmd *cobra.Command, name string, showLines bool) error {
	in, err := openInput(cmd, name)
	if err != nil {
		return err
	}
	defer in.Close()

	w := cmd.OutOrStdout()
	var line strbuf.Buffer
	entries := 0
	err = o.parser().ParseReader(in, func(section, key, value string, n int) error {
		entries++
		line.Reset()
		if showLines {
			line.Addf("%s:%d: ", name, n)
		}
		line.Addf("%s %s = %s\n", o.header.Sprint("["+section+"]"), key, value)
		_, err := w.Write(line.Bytes())
		return err
	})
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	level.Debug(o.logger).Log("msg", "dumped input", "file", name, "entries", entries)
	return nil
}
