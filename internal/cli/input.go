package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/dimchansky/utfbom"
	"github.com/spf13/cobra"
)

// utf8BOM is put back in front of UTF-8 input, where the parser skips it
// like iniconf.ParseReader does.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// openInput opens name, or standard input for "-". Input with a UTF-16 or
// UTF-32 byte order mark is rejected.
func openInput(cmd *cobra.Command, name string) (io.ReadCloser, error) {
	var rc io.ReadCloser
	if name == "-" {
		rc = io.NopCloser(cmd.InOrStdin())
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		rc = f
	}

	r, enc := utfbom.Skip(rc)
	var in io.Reader = r
	switch enc {
	case utfbom.Unknown:
	case utfbom.UTF8:
		in = io.MultiReader(bytes.NewReader(utf8BOM), r)
	default:
		rc.Close()
		return nil, fmt.Errorf("%s: unsupported encoding %s", name, enc)
	}
	return struct {
		io.Reader
		io.Closer
	}{in, rc}, nil
}

// inputNames returns args, or "-" if there are none.
func inputNames(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
