// Command iconlint checks SVG icons against the library's drawing rules.
//
// Usage:
//
//	iconlint [flags] [file.svg ...]
//
// With no files, every *.svg in the configured icons directory is linted.
// Each finding is printed as "file: [rule] message" and the exit status is
// 1 when there is at least one.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/iconlint"
	"github.com/gogpu/iconlint/internal/catalog"
	"github.com/gogpu/iconlint/internal/config"
	"github.com/gogpu/iconlint/internal/ledger"
	"github.com/gogpu/iconlint/internal/lint"
	"github.com/gogpu/iconlint/internal/rules"
)

const (
	exitOK       = 0
	exitFindings = 1
	exitError    = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("iconlint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath   = fs.String("config", "", "TOML configuration file")
		updateIgnore = fs.Bool("update-ignore", false, "regenerate the known-issues ledger")
		verbose      = fs.Bool("v", false, "enable debug logging")
		iconTitle    = fs.String("icon", "", "lint only the icon with this catalog title")
		dumpConfig   = fs.Bool("dump-config", false, "print the effective configuration and exit")
	)
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	if *updateIgnore {
		cfg.Ledger.Regenerate = true
	}
	if *dumpConfig {
		data, err := cfg.Marshal()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitError
		}
		_, _ = stdout.Write(data)
		return exitOK
	}

	level, _ := cfg.Level()
	if *verbose {
		level = slog.LevelDebug
	}
	iconlint.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer iconlint.SetLogger(nil)

	failed, err := lintAll(ctx, cfg, *iconTitle, fs.Args(), stdout)
	switch {
	case err != nil:
		iconlint.Logger().Error("iconlint failed", slog.Any("err", err))
		return exitError
	case failed:
		return exitFindings
	}
	return exitOK
}

func lintAll(ctx context.Context, cfg config.Config, iconTitle string, files []string, stdout io.Writer) (bool, error) {
	mode := ledger.Loaded
	if cfg.Ledger.Regenerate {
		mode = ledger.Regenerating
	}
	known, err := ledger.Open(cfg.Ledger.File, mode, cfg.Ledger.Required)
	if err != nil {
		return false, err
	}

	ev := &rules.Evaluator{
		Settings: rules.Settings{
			CanvasSize:        cfg.CanvasSize,
			FloatPrecision:    cfg.FloatPrecision,
			MaxFloatPrecision: cfg.MaxFloatPrecision,
			Tolerance:         cfg.Tolerance,
		},
		Ledger: known,
	}
	var cat *catalog.Catalog
	if cfg.Catalog != "" {
		if cat, err = catalog.Load(cfg.Catalog); err != nil {
			return false, err
		}
		ev.Catalog = cat
	}

	if files, err = selectFiles(cfg, cat, iconTitle, files); err != nil {
		return false, err
	}
	iconlint.Logger().Debug("linting icons", slog.Int("files", len(files)), slog.String("ledger", mode.String()))

	lt := lint.New(ev, cfg.Workers)
	reports, err := lt.LintFiles(ctx, files)
	lt.Close()
	if err != nil {
		return false, err
	}

	failed := false
	for _, r := range reports {
		for _, line := range r.Lines() {
			fmt.Fprintln(stdout, line)
		}
		failed = failed || r.Failed()
	}

	if mode == ledger.Regenerating {
		if err := known.Flush(cfg.Ledger.File); err != nil {
			return failed, err
		}
	}
	return failed, nil
}

// selectFiles decides which icons to lint: an explicit list, a single
// catalog title, or the whole icons directory.
func selectFiles(cfg config.Config, cat *catalog.Catalog, iconTitle string, files []string) ([]string, error) {
	switch {
	case iconTitle != "":
		if cat == nil {
			return nil, errors.New("-icon needs a catalog")
		}
		icon, ok := cat.Lookup(iconTitle)
		if !ok {
			return nil, fmt.Errorf("no icon with title %q in %s", iconTitle, cfg.Catalog)
		}
		return []string{filepath.Join(cfg.IconsDir, icon.FileSlug()+".svg")}, nil
	case len(files) > 0:
		return files, nil
	default:
		return lint.Files(cfg.IconsDir)
	}
}
