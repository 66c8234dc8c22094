// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"sensorscan-core/classify"
	"sensorscan-core/fastq"
	"sensorscan/internal/diag"
	"sensorscan/internal/report"
	"sensorscan/internal/writers"
)

// cancelCheckEvery is how many records are processed between context checks.
const cancelCheckEvery = 4096

// Config controls the file pipeline.
type Config struct {
	OutputDir string
	Suffix    string       // stripped from the input name to build output names
	Workers   int          // files processed concurrently (>=1)
	Log       *slog.Logger // nil discards
}

// OutputBase returns the input file name without its recognized suffix.
// Names lacking the suffix lose ".gz" and one further extension.
func OutputBase(input, suffix string) string {
	name := filepath.Base(input)
	if input == "-" {
		return "stdin"
	}
	if suffix != "" && strings.HasSuffix(name, suffix) && name != suffix {
		return strings.TrimSuffix(name, suffix)
	}
	name = strings.TrimSuffix(name, ".gz")
	if ext := filepath.Ext(name); ext != "" && ext != name {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}

// OutputPath is <dir>/<base>_matches_group<n>.txt, n counting from 1.
func OutputPath(dir, input, suffix string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_matches_group%d.txt", OutputBase(input, suffix), n))
}

// ProcessFile runs one input file to completion or failure. All outputs
// opened for the file are committed on success and removed otherwise.
func ProcessFile(ctx context.Context, cfg Config, cls *classify.Classifier, path string) (res report.File) {
	log := cfg.Log
	if log == nil {
		log = diag.Discard()
	}
	groups := cls.Groups()
	res = report.File{Path: path, Tally: report.NewTally(len(groups))}
	start := time.Now()
	defer func() { res.Elapsed = time.Since(start) }()

	// Pending → Opened
	in, err := fastq.Open(path)
	if err != nil {
		res.Err = fmt.Errorf("open: %w", err)
		return res
	}
	defer func() { _ = in.Close() }()

	outs := make([]*writers.GroupFile, len(groups))
	defer func() {
		for _, o := range outs {
			if o != nil {
				o.Abort()
			}
		}
	}()
	for i, g := range groups {
		o, err := writers.CreateGroupFile(g.Name, OutputPath(cfg.OutputDir, path, cfg.Suffix, i+1))
		if err != nil {
			res.Err = fmt.Errorf("create output for %s: %w", g.Name, err)
			return res
		}
		outs[i] = o
	}
	log.Info("processing file", "file", path)

	// Streaming
	var (
		o     classify.Outcome
		block []byte
		debug = log.Enabled(ctx, slog.LevelDebug)
	)
	for in.Next() {
		if res.Tally.Records%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				res.Err = err
				return res
			}
		}
		res.Tally.Records++
		cls.ClassifyInto(&o, in.Record())
		if !o.Any() {
			continue
		}
		block = classify.AppendBlock(block[:0], o.ID, o.Seq)
		for i, hit := range o.Matched {
			if !hit {
				continue
			}
			if res.Tally.Matches[i] == 0 && debug {
				if h, ok := groups[i].Matcher.Find(o.Seq); ok {
					log.Debug("first match", "file", path, "group", groups[i].Name, "read", o.ID,
						"motif", string(groups[i].Matcher.Pattern(h.Pattern)), "end", h.End)
				}
			}
			res.Tally.Matches[i]++
			if _, err := outs[i].Write(block); err != nil {
				res.Err = fmt.Errorf("write %s: %w", outs[i].Path(), err)
				return res
			}
		}
	}
	if err := in.Err(); err != nil {
		res.Err = fmt.Errorf("parse: %w", err)
		return res
	}

	// Completed
	committed, err := writers.CommitAll(outs)
	if err != nil {
		res.Err = err
		return res
	}
	res.Outputs = committed
	return res
}

// Run processes files with cfg.Workers goroutines and calls visit once per
// file from a single goroutine, in completion order. Cancellation is checked
// before each file is started; it returns ctx.Err() if the run was cut short.
// File failures are reported through visit, never returned.
func Run(
	ctx context.Context,
	cfg Config,
	cls *classify.Classifier,
	files []string,
	visit func(report.File),
) error {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	type job struct {
		idx  int
		path string
		err  error
	}
	jobs := make(chan job, cfg.Workers)
	results := make(chan report.File, cfg.Workers)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Workers)
	for w := 0; w < cfg.Workers; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				if ctx.Err() != nil {
					continue
				}
				var r report.File
				if j.err != nil {
					r = report.File{Path: j.path, Tally: report.NewTally(len(cls.Groups())), Err: j.err}
				} else {
					r = ProcessFile(ctx, cfg, cls, j.path)
				}
				r.Index = j.idx
				results <- r
			}
		}()
	}

	// Collector
	var cwg sync.WaitGroup
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range results {
			visit(r)
		}
	}()

	// Feed work; two inputs must not write the same output names.
	owner := make(map[string]string, len(files))
feed:
	for i, f := range files {
		select {
		case <-ctx.Done():
			break feed
		default:
		}
		j := job{idx: i, path: f}
		base := OutputBase(f, cfg.Suffix)
		if prev, dup := owner[base]; dup {
			j.err = fmt.Errorf("output name %q already used by %s", base, prev)
		} else {
			owner[base] = f
		}
		select {
		case <-ctx.Done():
			break feed
		case jobs <- j:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	return ctx.Err()
}
