// Package report aggregates per-file tallies into a run summary.
package report

import (
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Tally counts records and per-group matches for one input file.
type Tally struct {
	Records int
	Matches []int // parallel to the run's groups
}

// NewTally returns a zeroed tally for n groups.
func NewTally(n int) Tally { return Tally{Matches: make([]int, n)} }

// Output describes one committed per-group output file.
type Output struct {
	Group string
	Path  string
	Bytes int64
	CRC64 uint64
}

// File is the outcome of one input file.
type File struct {
	Index   int // position in the input list
	Path    string
	Tally   Tally
	Outputs []Output
	Elapsed time.Duration
	Err     error
}

// Label is the file name without ".gz" and one further extension.
func (f File) Label() string {
	base := strings.TrimSuffix(filepath.Base(f.Path), ".gz")
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

// Failed reports whether the file ended in the failed state.
func (f File) Failed() bool { return f.Err != nil }

// Summary is the run-level view.
type Summary struct {
	RunID  string
	Groups []string
	Files  []File
}

// New starts an empty summary for the given groups.
func New(runID string, groups []string) *Summary {
	return &Summary{RunID: runID, Groups: append([]string(nil), groups...)}
}

// Add records one file outcome.
func (s *Summary) Add(f File) { s.Files = append(s.Files, f) }

// Sort orders files by their input position.
func (s *Summary) Sort() {
	sort.SliceStable(s.Files, func(i, j int) bool { return s.Files[i].Index < s.Files[j].Index })
}

// Totals sums completed files.
func (s *Summary) Totals() (completed, failed int, t Tally) {
	t = NewTally(len(s.Groups))
	for _, f := range s.Files {
		if f.Failed() {
			failed++
			continue
		}
		completed++
		t.Records += f.Tally.Records
		for i := range t.Matches {
			if i < len(f.Tally.Matches) {
				t.Matches[i] += f.Tally.Matches[i]
			}
		}
	}
	return completed, failed, t
}
