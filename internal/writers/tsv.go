package writers

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"sensorscan/internal/report"
)

func init() { RegisterSummary("tsv", WriteTSV) }

// WriteTSV writes one row per input file:
// file, status, records, one column per group, error.
func WriteTSV(w io.Writer, s *report.Summary) error {
	bw := bufio.NewWriter(w)
	hdr := append([]string{"file", "status", "records"}, s.Groups...)
	hdr = append(hdr, "error")
	fmt.Fprintln(bw, strings.Join(hdr, "\t"))
	for _, f := range s.Files {
		status, msg := "completed", ""
		if f.Failed() {
			status = "failed"
			msg = strings.NewReplacer("\t", " ", "\n", " ").Replace(f.Err.Error())
		}
		fmt.Fprintf(bw, "%s\t%s\t%d", f.Path, status, f.Tally.Records)
		for gi := range s.Groups {
			n := 0
			if gi < len(f.Tally.Matches) {
				n = f.Tally.Matches[gi]
			}
			fmt.Fprintf(bw, "\t%d", n)
		}
		fmt.Fprintf(bw, "\t%s\n", msg)
	}
	return bw.Flush()
}
