// Package report writes flags to the console and to the results CSV file.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pratik-anurag/procflag/internal/model"
)

const (
	DefaultDir = "results"
	FileName   = "process_flags.csv"
	NoFlagsMsg = "[✓] No simple anomalies flagged."
)

// WriteConsole prints a header and one comma-joined line per flag. Values are
// not escaped, so a comma inside a path shifts the columns; use the CSV file
// for machine consumption.
func WriteConsole(w io.Writer, flags []model.Flag) error {
	if len(flags) == 0 {
		_, err := fmt.Fprintln(w, NoFlagsMsg)
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Join(model.Header, ",")); err != nil {
		return err
	}
	for _, f := range flags {
		if _, err := fmt.Fprintln(w, strings.Join(f.Fields(), ",")); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV creates dir if needed and overwrites dir/process_flags.csv with
// the header and one row per flag. It returns the written path.
func WriteCSV(dir string, flags []model.Flag) (string, error) {
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create results dir: %w", err)
	}
	path := filepath.Join(dir, FileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := writeCSV(f, flags); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

func writeCSV(w io.Writer, flags []model.Flag) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(model.Header); err != nil {
		return err
	}
	for _, f := range flags {
		if err := cw.Write(f.Fields()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WrittenMsg is the confirmation line printed after WriteCSV.
func WrittenMsg(path string) string {
	return "[*] CSV written to " + filepath.ToSlash(path)
}
