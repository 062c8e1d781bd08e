// Command iniconf inspects and rewrites INI configuration files.
package main

import (
	"os"

	"github.com/go-gcfg/iniconf/internal/cli"
)

func main() {
	if err := cli.Command().Execute(); err != nil {
		os.Exit(1)
	}
}
