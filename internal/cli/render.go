package cli

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/pratik-anurag/procflag/internal/render"
)

const maxExeWidth = 60

func renderOptions(c *commonFlags) render.Options {
	opt := render.Options{
		Color:  resolveColor(c.Color, stdout),
		MaxExe: maxExeWidth,
	}
	if c.JSON {
		opt.Color = false
	}
	if c.Verbose {
		opt.MaxExe = 0
	}
	return opt
}

func resolveColor(mode string, w io.Writer) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "always":
		return true
	case "never":
		return false
	default:
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
}
