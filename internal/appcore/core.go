// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"sensorscan-core/classify"
	"sensorscan/internal/cliutil"
	"sensorscan/internal/config"
	"sensorscan/internal/diag"
	"sensorscan/internal/pipeline"
	"sensorscan/internal/report"
	"sensorscan/internal/writers"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitFileFailed = 1
	ExitUsage      = 2
	ExitWrite      = 3
	ExitCancelled  = 130
)

// Run executes one scan with a merged configuration. Logs go to stderr and
// the run summary to stdout.
func Run(parent context.Context, stdout, stderr io.Writer, cfg config.Config) int {
	groups, err := config.Groups(cfg)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}
	if !writers.HasSummary(cfg.Summary.Format) {
		fmt.Fprintf(stderr, "error: unknown summary format %q (want one of %v)\n", cfg.Summary.Format, writers.SummaryFormats())
		return ExitUsage
	}

	log, runID := diag.NewLogger(stderr, cfg.Logging.Level)

	files := cfg.InputFiles
	if len(files) == 0 {
		files, err = cliutil.ListInputs(cfg.InputDirectory, cfg.InputSuffix)
		if err != nil {
			log.Error("cannot list input directory", "dir", cfg.InputDirectory, "err", err)
			return ExitUsage
		}
	}

	if _, err := os.Stat(cfg.OutputDirectory); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(cfg.OutputDirectory, 0o755); err != nil {
			log.Error("cannot create output directory", "dir", cfg.OutputDirectory, "err", err)
			return ExitUsage
		}
		log.Info("created output directory", "dir", cfg.OutputDirectory)
	} else if err != nil {
		log.Error("cannot access output directory", "dir", cfg.OutputDirectory, "err", err)
		return ExitUsage
	}

	thr := cfg.Workers
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	cls := classify.Compile(groups)
	names := make([]string, 0, len(groups))
	for _, g := range cls.Groups() {
		names = append(names, g.Name)
		log.Info("motif group", "group", g.Name, "search_set", len(g.Set), "states", g.Matcher.States())
	}
	log.Info("run start", "files", len(files), "workers", thr, "output", cfg.OutputDirectory)

	sum := report.New(runID, names)
	start := time.Now()
	perr := pipeline.Run(parent, pipeline.Config{
		OutputDir: cfg.OutputDirectory,
		Suffix:    cfg.InputSuffix,
		Workers:   thr,
		Log:       log,
	}, cls, files, func(f report.File) {
		sum.Add(f)
		if f.Failed() {
			log.Error("file failed", "file", f.Path, "err", f.Err)
			return
		}
		args := []any{"file", f.Path, "records", f.Tally.Records, "elapsed", f.Elapsed.Round(time.Millisecond)}
		for i, n := range f.Tally.Matches {
			args = append(args, names[i], n)
		}
		log.Info("file done", args...)
	})
	sum.Sort()

	completed, failed, _ := sum.Totals()
	log.Info("run done", "completed", completed, "failed", failed, "elapsed", time.Since(start).Round(time.Millisecond))

	outw := bufio.NewWriter(stdout)
	if err := writers.WriteSummary(cfg.Summary.Format, outw, sum); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitWrite
	}
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitWrite
	}

	if cfg.Summary.Chart != "" {
		switch err := report.WriteChart(cfg.Summary.Chart, sum); {
		case errors.Is(err, report.ErrNoData):
			log.Warn("chart skipped", "path", cfg.Summary.Chart, "err", err)
		case err != nil:
			log.Error("cannot write chart", "path", cfg.Summary.Chart, "err", err)
			return ExitWrite
		}
	}

	switch {
	case errors.Is(perr, context.Canceled), errors.Is(perr, context.DeadlineExceeded):
		return ExitCancelled
	case failed > 0:
		return ExitFileFailed
	}
	return ExitOK
}
