package main

import (
	"os"

	"github.com/pratik-anurag/procflag/internal/cli"
)

// set with -ldflags "-X main.version=..."
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	cli.SetVersion(version, commit, date)
	os.Exit(cli.Run(os.Args[1:]))
}
