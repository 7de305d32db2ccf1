// Package lint runs the rules over a batch of icon files.
package lint

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gogpu/iconlint"
	"github.com/gogpu/iconlint/internal/cache"
	"github.com/gogpu/iconlint/internal/markup"
	"github.com/gogpu/iconlint/internal/parallel"
	"github.com/gogpu/iconlint/internal/rules"
	"golang.org/x/sync/errgroup"
)

// Report holds the outcome for one icon file.
type Report struct {
	File        string
	Diagnostics []rules.Diagnostic
	// Err is set when the markup could not be scanned at all.
	Err error
}

// Failed reports whether the icon has any finding.
func (r Report) Failed() bool {
	return r.Err != nil || len(r.Diagnostics) > 0
}

// Lines renders the report as "file: [rule] message" lines.
func (r Report) Lines() []string {
	if r.Err != nil {
		return []string{fmt.Sprintf("%s: %v", r.File, r.Err)}
	}
	lines := make([]string, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		lines[i] = r.File + ": " + d.String()
	}
	return lines
}

// Source is an icon read into memory.
type Source struct {
	Name string
	Raw  string
	// Err is set when the file could not be read; Raw is then empty.
	Err error
}

// geometryCacheSize bounds the number of distinct path analyses kept.
const geometryCacheSize = 4096

// Linter analyzes icons on a worker pool.
type Linter struct {
	eval     *rules.Evaluator
	pool     *parallel.WorkerPool
	geometry *cache.Cache[string, rules.Geometry]
}

// New returns a Linter using ev with the given number of workers
// (0 selects GOMAXPROCS). Close releases the workers.
func New(ev *rules.Evaluator, workers int) *Linter {
	pool := parallel.NewWorkerPool(workers)
	iconlint.Logger().Debug("lint: worker pool started", slog.Int("workers", pool.Workers()))
	return &Linter{
		eval:     ev,
		pool:     pool,
		geometry: cache.New[string, rules.Geometry](geometryCacheSize),
	}
}

// Close stops the worker pool.
func (l *Linter) Close() {
	st := l.geometry.Stats()
	iconlint.Logger().Debug("lint: done",
		slog.Int("paths", st.Len), slog.Uint64("hits", st.Hits), slog.Uint64("misses", st.Misses))
	l.pool.Close()
}

// LintSource analyzes a single icon.
func (l *Linter) LintSource(src Source) Report {
	if src.Err != nil {
		return Report{File: src.Name, Err: src.Err}
	}
	doc, err := markup.Parse(src.Raw)
	if err != nil {
		iconlint.Logger().Debug("lint: markup scan failed", slog.String("file", src.Name), slog.Any("err", err))
		return Report{File: src.Name, Err: err}
	}
	g := l.geometry.GetOrCreate(doc.PathData, func() rules.Geometry {
		return rules.Analyze(doc.PathData)
	})
	in := &rules.Input{Doc: doc, Geometry: g}
	if in.PathErr != nil {
		iconlint.Logger().Debug("lint: malformed path", slog.String("file", src.Name), slog.Any("err", in.PathErr))
	}
	return Report{File: src.Name, Diagnostics: l.eval.Evaluate(in)}
}

// LintSources analyzes every source in parallel. Reports are returned in
// the order of srcs.
func (l *Linter) LintSources(ctx context.Context, srcs []Source) ([]Report, error) {
	return parallel.Map(ctx, l.pool, srcs, func(_ context.Context, src Source) Report {
		return l.LintSource(src)
	})
}

// LintFiles reads every file and then analyzes them in parallel. A file
// that cannot be read gets a report carrying the read error; the rest of
// the batch is still analyzed.
func (l *Linter) LintFiles(ctx context.Context, files []string) ([]Report, error) {
	srcs, err := ReadSources(ctx, files, l.pool.Workers())
	if err != nil {
		return nil, err
	}
	return l.LintSources(ctx, srcs)
}

// ReadSources loads the named files with at most limit reads in flight.
// Read failures are kept on the individual Source; only cancellation of
// ctx fails the whole call.
func ReadSources(ctx context.Context, files []string, limit int) ([]Source, error) {
	srcs := make([]Source, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			srcs[i] = Source{Name: f}
			data, err := os.ReadFile(f)
			if err != nil {
				iconlint.Logger().Debug("lint: read failed", slog.String("file", f), slog.Any("err", err))
				srcs[i].Err = fmt.Errorf("lint: %w", err)
				return nil
			}
			srcs[i].Raw = string(data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return srcs, nil
}

// Files lists the *.svg files directly inside dir, sorted by name.
func Files(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("lint: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.EqualFold(filepath.Ext(e.Name()), ".svg") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
