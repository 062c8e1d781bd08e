package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNotFound = errors.New("not found")

func getCommand(o *options) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "get [flags] file section name",
		Short: "Print the value of one variable",
		Long: `get prints the last value of name in section; use "" for entries before the
first section header. Names are matched ignoring case, section names exactly.
It fails if the variable is not set.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.get(cmd, args[0], args[1], args[2], all)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Print every value of a multi-valued variable, one per line.")
	return cmd
}

func (o *options) get(cmd *cobra.Command, name, section, key string, all bool) error {
	in, err := openInput(cmd, name)
	if err != nil {
		return err
	}
	defer in.Close()

	c, err := o.parser().Load(in)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	values := c.GetAll(section, key)
	if len(values) == 0 {
		return fmt.Errorf("%s: [%s] %s: %w", name, section, key, errNotFound)
	}
	if !all {
		values = values[len(values)-1:]
	}
	for _, v := range values {
		fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}
