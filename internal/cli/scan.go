package cli

import (
	"encoding/json"
	"flag"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pratik-anurag/procflag/internal/proc"
	"github.com/pratik-anurag/procflag/internal/render"
	"github.com/pratik-anurag/procflag/internal/report"
	"github.com/pratik-anurag/procflag/internal/scan"
	"github.com/pratik-anurag/procflag/internal/tui"
)

// replaced in tests
var (
	newSource = proc.System
	runTUI    = tui.Run
)

func runScan(args []string) int {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	fs.SetOutput(stderr)

	c := parseCommon(fs)

	var outDir, format string
	var interactive bool
	fs.StringVar(&outDir, "out-dir", report.DefaultDir, "directory for "+report.FileName)
	fs.StringVar(&format, "format", "plain", "output format: plain|table|json")
	fs.BoolVar(&interactive, "i", false, "browse flags in an interactive table")
	fs.BoolVar(&interactive, "interactive", false, "browse flags in an interactive table")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintln(stderr, "scan: unexpected arguments")
		return 2
	}
	if c.JSON {
		format = "json"
	}
	switch format {
	case "plain", "table", "json":
	default:
		fmt.Fprintln(stderr, "scan: invalid --format (plain|table|json)")
		return 2
	}
	if !validColor(c.Color) {
		fmt.Fprintln(stderr, "scan: invalid --color (auto|always|never)")
		return 2
	}
	if interactive && format == "json" {
		fmt.Fprintln(stderr, "scan: cannot use --interactive with JSON output")
		return 2
	}
	if outDir == "" {
		fmt.Fprintln(stderr, "scan: --out-dir must not be empty")
		return 2
	}

	log := newLogger(c)

	rs, err := loadRuleset(c.Rules)
	if err != nil {
		log.Error().Err(err).Str("rules", c.Rules).Msg("load rules")
		return 1
	}
	src, err := newSource()
	if err != nil {
		log.Error().Err(err).Msg("open process source")
		return 1
	}

	res, err := scan.New(src, rs, scan.WithLogger(log.With().Str("component", "scan").Logger())).Run()
	if err != nil {
		log.Error().Err(err).Msg("scan")
		return 1
	}

	if interactive {
		return browse(res, outDir, log)
	}

	switch {
	case format == "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		err = enc.Encode(res)
	case format == "table":
		opt := renderOptions(c)
		_, err = fmt.Fprint(stdout, render.FlagTable(res.Flags, opt)+render.Summary(res))
	default:
		err = report.WriteConsole(stdout, res.Flags)
	}
	if err != nil {
		log.Error().Err(err).Msg("write output")
		return 1
	}

	path, err := report.WriteCSV(outDir, res.Flags)
	if err != nil {
		log.Error().Err(err).Msg("write csv")
		return 1
	}
	// keep stdout a single JSON document
	if format == "json" {
		fmt.Fprintln(stderr, report.WrittenMsg(path))
	} else {
		fmt.Fprintln(stdout, report.WrittenMsg(path))
	}
	return 0
}

// browse writes the CSV first so it exists while the browser holds the
// terminal. A browser that cannot start falls back to the plain listing.
func browse(res scan.Result, outDir string, log zerolog.Logger) int {
	path, err := report.WriteCSV(outDir, res.Flags)
	if err != nil {
		log.Error().Err(err).Msg("write csv")
		return 1
	}
	if err := runTUI(res); err != nil {
		log.Warn().Err(err).Msg("interactive view unavailable, printing flags")
		if err := report.WriteConsole(stdout, res.Flags); err != nil {
			log.Error().Err(err).Msg("write output")
			return 1
		}
	}
	fmt.Fprintln(stdout, report.WrittenMsg(path))
	return 0
}
