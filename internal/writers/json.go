package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"sensorscan/internal/report"
	"sensorscan/pkg/api"
)

func init() { RegisterSummary("json", WriteJSON) }

// ToAPISummary converts a summary to the stable wire schema (v1).
func ToAPISummary(s *report.Summary) api.SummaryV1 {
	done, failed, tot := s.Totals()
	v := api.SummaryV1{
		RunID:  s.RunID,
		Groups: append([]string{}, s.Groups...),
		Files:  make([]api.FileV1, 0, len(s.Files)),
		Totals: api.TotalsV1{Completed: done, Failed: failed, Records: tot.Records, Matches: tot.Matches},
	}
	for _, f := range s.Files {
		fv := api.FileV1{
			Path:      f.Path,
			Status:    api.StatusCompleted,
			Records:   f.Tally.Records,
			Matches:   append([]int{}, f.Tally.Matches...),
			ElapsedMS: f.Elapsed.Milliseconds(),
		}
		if f.Failed() {
			fv.Status = api.StatusFailed
			fv.Error = f.Err.Error()
		}
		for _, o := range f.Outputs {
			fv.Outputs = append(fv.Outputs, api.OutputV1{
				Group: o.Group, Path: o.Path, Bytes: o.Bytes, CRC64: fmt.Sprintf("%016x", o.CRC64),
			})
		}
		v.Files = append(v.Files, fv)
	}
	for _, g := range s.Stats() {
		v.Stats = append(v.Stats, api.GroupStatsV1{
			Group: g.Group, Files: g.Files, Mean: g.Mean, StdDev: g.StdDev, Min: g.Min, Max: g.Max,
		})
	}
	return v
}

// WriteJSON writes the summary as indented JSON.
func WriteJSON(w io.Writer, s *report.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPISummary(s))
}
