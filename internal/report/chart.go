package report

import (
	"errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ErrNoData is returned by WriteChart when no file completed.
var ErrNoData = errors.New("report: no completed files to chart")

// WriteChart saves a grouped bar chart of matches per group per completed
// file. The image format follows the extension of path (svg, png, pdf, ...).
func WriteChart(path string, s *Summary) error {
	var (
		names []string
		files []File
	)
	for _, f := range s.Files {
		if f.Failed() {
			continue
		}
		files = append(files, f)
		names = append(names, f.Label())
	}
	if len(files) == 0 || len(s.Groups) == 0 {
		return ErrNoData
	}

	p := plot.New()
	p.Title.Text = "Motif matches per file"
	p.Y.Label.Text = "Matching reads"

	w := vg.Points(12)
	for gi, name := range s.Groups {
		vals := make(plotter.Values, len(files))
		for fi, f := range files {
			if gi < len(f.Tally.Matches) {
				vals[fi] = float64(f.Tally.Matches[gi])
			}
		}
		bars, err := plotter.NewBarChart(vals, w)
		if err != nil {
			return err
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(gi)
		bars.Offset = w * vg.Length(2*gi-len(s.Groups)+1) / 2
		p.Add(bars)
		p.Legend.Add(name, bars)
	}
	p.Legend.Top = true
	p.NominalX(names...)

	width := vg.Length(len(files)*len(s.Groups))*w + 3*vg.Inch
	return p.Save(width, 4*vg.Inch, path)
}
