package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
)

func fmtCommand(o *options) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt [flags] file",
		Short: "Rewrite a file in canonical form",
		Long: `fmt loads a file and prints it back with comments and blank lines dropped,
entries grouped by section and written as "name = value".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.format(cmd, args[0], write)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the result back to the file instead of standard output.")
	return cmd
}

func (o *options) format(cmd *cobra.Command, name string, write bool) error {
	in, err := openInput(cmd, name)
	if err != nil {
		return err
	}
	c, err := o.parser().Load(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return err
	}
	if !write || name == "-" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	fi, err := os.Stat(name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(name, buf.Bytes(), fi.Mode().Perm()); err != nil {
		return err
	}
	level.Info(o.logger).Log("msg", "rewrote file", "file", name, "sections", len(c.Sections()))
	return nil
}
