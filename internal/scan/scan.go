// Package scan runs one pass of the rules over the process table.
package scan

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"github.com/pratik-anurag/procflag/internal/model"
	"github.com/pratik-anurag/procflag/internal/proc"
	"github.com/pratik-anurag/procflag/internal/rules"
)

const parentCacheSize = 4096

// Result is the outcome of one scan pass. Flags keep the order in which
// processes were enumerated.
type Result struct {
	ID        string        `json:"scan_id"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration_ns"`
	Scanned   int           `json:"scanned"`
	Skipped   int           `json:"skipped"`
	Flags     []model.Flag  `json:"flags"`
}

type Scanner struct {
	src   proc.Source
	rules *rules.Ruleset
	log   zerolog.Logger
	now   func() time.Time

	cacheSize int
}

type Option func(*Scanner)

func WithLogger(l zerolog.Logger) Option {
	return func(s *Scanner) { s.log = l }
}

func New(src proc.Source, rs *rules.Ruleset, opts ...Option) *Scanner {
	s := &Scanner{
		src:   src,
		rules: rs,
		log:   zerolog.Nop(),
		now:   time.Now,

		cacheSize: parentCacheSize,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Run lists the process table once and evaluates every process. Only a
// failure to list the table is returned; per-process failures drop that
// process and are counted in Result.Skipped.
func (s *Scanner) Run() (Result, error) {
	res := Result{
		ID:        uuid.NewString(),
		StartedAt: s.now(),
		Flags:     []model.Flag{},
	}

	procs, err := s.src.Processes()
	if err != nil {
		return res, fmt.Errorf("list processes: %w", err)
	}

	// parent names live for this pass only
	names, err := lru.New[int32, string](s.cacheSize)
	if err != nil {
		return res, fmt.Errorf("parent name cache: %w", err)
	}

	for _, v := range procs {
		flags, err := s.evaluate(v, names)
		res.Scanned++
		if err != nil {
			res.Skipped++
			ev := s.log.Warn()
			if proc.IsSkip(err) {
				ev = s.log.Debug()
			}
			ev.Err(err).Int32("pid", v.PID).Str("name", v.Name).Msg("process skipped")
			continue
		}
		res.Flags = append(res.Flags, flags...)
	}

	res.Duration = s.now().Sub(res.StartedAt)
	s.log.Debug().
		Str("scan_id", res.ID).
		Int("scanned", res.Scanned).
		Int("skipped", res.Skipped).
		Int("flags", len(res.Flags)).
		Msg("scan complete")
	return res, nil
}

func (s *Scanner) evaluate(v model.ProcessView, names *lru.Cache[int32, string]) ([]model.Flag, error) {
	parent := s.parentName(v, names)

	var conns []model.Conn
	if s.rules.NeedsConnections(v) {
		var err error
		conns, err = s.src.Connections(v.PID)
		if err != nil {
			return nil, err
		}
	}
	return s.rules.Evaluate(v, parent, conns), nil
}

// parentName resolves the parent's current name. A failed lookup yields "".
func (s *Scanner) parentName(v model.ProcessView, names *lru.Cache[int32, string]) string {
	if !v.HasParent() {
		return ""
	}
	if name, ok := names.Get(v.PPID); ok {
		return name
	}
	name, err := s.src.ProcessName(v.PPID)
	if err != nil {
		s.log.Debug().Err(err).Int32("pid", v.PID).Int32("ppid", v.PPID).Msg("parent lookup failed")
		return ""
	}
	names.Add(v.PPID, name)
	return name
}
