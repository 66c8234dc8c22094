package report

import (
	"gonum.org/v1/gonum/stat"
)

// GroupStats is the distribution of one group's match rate
// (matches / records) over completed, non-empty files.
type GroupStats struct {
	Group  string
	Files  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Stats computes per-group match-rate statistics.
func (s *Summary) Stats() []GroupStats {
	out := make([]GroupStats, len(s.Groups))
	for gi, name := range s.Groups {
		var rates []float64
		for _, f := range s.Files {
			if f.Failed() || f.Tally.Records == 0 || gi >= len(f.Tally.Matches) {
				continue
			}
			rates = append(rates, float64(f.Tally.Matches[gi])/float64(f.Tally.Records))
		}
		gs := GroupStats{Group: name, Files: len(rates)}
		switch len(rates) {
		case 0:
		case 1:
			gs.Mean, gs.Min, gs.Max = rates[0], rates[0], rates[0]
		default:
			gs.Mean, gs.StdDev = stat.MeanStdDev(rates, nil)
			gs.Min, gs.Max = rates[0], rates[0]
			for _, r := range rates[1:] {
				if r < gs.Min {
					gs.Min = r
				}
				if r > gs.Max {
					gs.Max = r
				}
			}
		}
		out[gi] = gs
	}
	return out
}
