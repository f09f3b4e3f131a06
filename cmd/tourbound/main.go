package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/tourbound/internal/cli"
)

// Populated via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	cli.SetVersion(version, commit)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
