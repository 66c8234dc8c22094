// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"sensorscan/internal/report"
)

// SummaryWriters maps a format name to its renderer. Formats register
// themselves in init() blocks.
var SummaryWriters = map[string]func(w io.Writer, s *report.Summary) error{}

// RegisterSummary adds or replaces a format (last wins).
func RegisterSummary(format string, fn func(io.Writer, *report.Summary) error) {
	SummaryWriters[format] = fn
}

// HasSummary reports whether format is registered.
func HasSummary(format string) bool {
	_, ok := SummaryWriters[format]
	return ok
}

// SummaryFormats lists registered formats, sorted.
func SummaryFormats() []string {
	out := make([]string, 0, len(SummaryWriters))
	for k := range SummaryWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// WriteSummary renders s in the given format.
func WriteSummary(format string, w io.Writer, s *report.Summary) error {
	fn, ok := SummaryWriters[format]
	if !ok {
		return fmt.Errorf("unknown summary format %q (no writer registered)", format)
	}
	return fn(w, s)
}
