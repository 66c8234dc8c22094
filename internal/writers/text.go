package writers

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"sensorscan/internal/report"
)

func init() { RegisterSummary("text", WriteText) }

var (
	okColor   = color.New(color.FgGreen)
	errColor  = color.New(color.FgRed, color.Bold)
	headColor = color.New(color.Bold)
)

// WriteText writes the human-readable report: one block per file, then run
// totals and per-group match-rate statistics.
func WriteText(w io.Writer, s *report.Summary) error {
	bw := bufio.NewWriter(w)
	for _, f := range s.Files {
		if f.Failed() {
			errColor.Fprintf(bw, "An error occurred while processing %s: %v\n", f.Path, f.Err)
			continue
		}
		okColor.Fprintf(bw, "Finished processing %s. Processed %d records.\n", f.Path, f.Tally.Records)
		for gi, name := range s.Groups {
			n := 0
			if gi < len(f.Tally.Matches) {
				n = f.Tally.Matches[gi]
			}
			bw.WriteString("  - ")
			headColor.Fprintf(bw, "Found %d matches for %s.", n, name)
			bw.WriteString("\n")
		}
	}

	done, failed, tot := s.Totals()
	bw.WriteString("\n")
	if failed > 0 {
		errColor.Fprintf(bw, "All files processed: %d completed, %d failed.\n", done, failed)
	} else {
		okColor.Fprintf(bw, "All files processed: %d completed, %d failed.\n", done, failed)
	}
	stats := s.Stats()
	for gi, name := range s.Groups {
		st := stats[gi]
		fmt.Fprintf(bw, "  %s: %d of %d records, mean rate %.4f (sd %.4f, n=%d)\n",
			name, tot.Matches[gi], tot.Records, st.Mean, st.StdDev, st.Files)
	}
	return bw.Flush()
}
