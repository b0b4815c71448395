// Package cli implements the procflag command line.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var build = struct {
	Version, Commit, Date string
}{Version: "dev"}

// SetVersion records the build metadata printed by the version command.
func SetVersion(version, commit, date string) {
	if version != "" {
		build.Version = version
	}
	build.Commit = commit
	build.Date = date
}

// Run executes one command and returns the process exit code. With no
// command, or when the first argument is a flag, it scans.
func Run(args []string) int {
	if len(args) == 0 {
		return runScan(nil)
	}
	switch args[0] {
	case "scan":
		return runScan(args[1:])
	case "rules":
		return runRules(args[1:])
	case "version", "--version":
		return runVersion()
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return 0
	}
	if strings.HasPrefix(args[0], "-") {
		return runScan(args)
	}
	fmt.Fprintf(stderr, "procflag: unknown command %q\n\n", args[0])
	usage(stderr)
	return 2
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: procflag [command] [flags]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  scan      flag suspicious processes (default)")
	fmt.Fprintln(w, "  rules     print the active lookup tables")
	fmt.Fprintln(w, "  version   print build information")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'procflag <command> -h' for command flags.")
}

func runVersion() int {
	fmt.Fprintf(stdout, "procflag %s", build.Version)
	if build.Commit != "" {
		fmt.Fprintf(stdout, " (%s", build.Commit)
		if build.Date != "" {
			fmt.Fprintf(stdout, ", %s", build.Date)
		}
		fmt.Fprint(stdout, ")")
	}
	fmt.Fprintln(stdout)
	return 0
}
