package main

import (
	"fmt"
	"os"

	"github.com/dymensionxyz/kaspa-validator/cmd/kasvalidator"
)

// Name used by build script for the binaries. (Please keep on single line)
const progname = "kasvalidator"

// Version & commit strings injected at build with -ldflags -X...
var (
	version string
	commit  string
)

func main() {
	if err := kasvalidator.Run(progname, version, commit, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
