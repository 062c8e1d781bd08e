package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-gcfg/iniconf/scan"
	"github.com/go-gcfg/iniconf/strbuf"
)

// scanner runs one scanner over in, appending the scanned value to out.
type scanner func(in, arg string, out *strbuf.Buffer) int

var scanners = map[string]scanner{
	"int": func(in, _ string, out *strbuf.Buffer) int {
		var v int
		n := scan.Int(in, &v)
		out.Addf("%d", v)
		return n
	},
	"uint": func(in, _ string, out *strbuf.Buffer) int {
		var v uint
		n := scan.Uint(in, &v)
		out.Addf("%u", v)
		return n
	},
	"ulong": func(in, _ string, out *strbuf.Buffer) int {
		var v uint64
		n := scan.Ulong(in, &v)
		out.Addf("%u", v)
		return n
	},
	"hex": func(in, _ string, out *strbuf.Buffer) int {
		var v uint64
		n := scan.Hex(in, &v)
		out.Addf("%x", v)
		return n
	},
	"blank": func(in, _ string, _ *strbuf.Buffer) int { return scan.Blank(in) },
	"white": func(in, _ string, _ *strbuf.Buffer) int { return scan.White(in) },
	"text":  func(in, arg string, _ *strbuf.Buffer) int { return scan.Text(in, arg) },
	"until": func(in, arg string, _ *strbuf.Buffer) int { return scan.Until(in, arg) },
	"while": func(in, arg string, _ *strbuf.Buffer) int { return scan.While(in, arg) },
	"pat":   func(in, arg string, _ *strbuf.Buffer) int { return scan.Pat(in, arg) },
	"ip4": func(in, _ string, out *strbuf.Buffer) int {
		var ip [4]byte
		n := scan.IP4(in, &ip)
		out.Addf("%u.%u.%u.%u", ip[0], ip[1], ip[2], ip[3])
		return n
	},
	"ip4port": func(in, _ string, out *strbuf.Buffer) int {
		var ip [4]byte
		var port uint16
		n := scan.IP4Port(in, &ip, &port)
		out.Addf("%u.%u.%u.%u:%u", ip[0], ip[1], ip[2], ip[3], port)
		return n
	},
	"date": func(in, _ string, out *strbuf.Buffer) int {
		var st scan.Stamp
		n := scan.Date(in, &st)
		out.Addf("%d-%d-%d", st.Year, int(st.Month), st.Day)
		return n
	},
	"time": func(in, _ string, out *strbuf.Buffer) int {
		var st scan.Stamp
		n := scan.Time(in, &st)
		out.Addf("%d:%d:%d", st.Hour, st.Minute, st.Second)
		return n
	},
}

// withArg lists the scanners that take a third argument.
var withArg = map[string]bool{"text": true, "until": true, "while": true, "pat": true}

func scannerNames() string {
	names := make([]string, 0, len(scanners))
	for k := range scanners {
		names = append(names, k)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func scanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scan kind input [argument]",
		Short: "Run one of the value scanners",
		Long: `scan runs a scanner on input and prints the number of bytes it consumed,
followed by the scanned value if there is one. text, until, while and pat
take the literal, byte set or pattern as argument.

Kinds: ` + scannerNames() + `.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, in := args[0], args[1]
			s, ok := scanners[kind]
			if !ok {
				return fmt.Errorf("unknown scanner %q; want one of %s", kind, scannerNames())
			}
			var arg string
			if withArg[kind] {
				if len(args) != 3 {
					return fmt.Errorf("scanner %s needs an argument", kind)
				}
				arg = args[2]
			} else if len(args) == 3 {
				return fmt.Errorf("scanner %s takes no argument", kind)
			}

			var value strbuf.Buffer
			n := s(in, arg, &value)
			var out strbuf.Buffer
			out.Addf("%d", n)
			if n > 0 && value.Len() > 0 {
				out.AddByte(' ')
				out.Add(&value)
			}
			out.AddByte('\n')
			_, err := cmd.OutOrStdout().Write(out.Bytes())
			return err
		},
	}
}
