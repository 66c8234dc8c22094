// pkg/api/summary_v1.go
package api

// SummaryV1 is the stable JSON schema for a run summary.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SummaryV1 struct {
	RunID  string         `json:"run_id"`
	Groups []string       `json:"groups"`
	Files  []FileV1       `json:"files"`
	Totals TotalsV1       `json:"totals"`
	Stats  []GroupStatsV1 `json:"stats"`
}

// FileV1 is one input file's outcome.
type FileV1 struct {
	Path      string     `json:"path"`
	Status    string     `json:"status"` // "completed" | "failed"
	Records   int        `json:"records"`
	Matches   []int      `json:"matches"` // parallel to SummaryV1.Groups
	Outputs   []OutputV1 `json:"outputs,omitempty"`
	ElapsedMS int64      `json:"elapsed_ms"`
	Error     string     `json:"error,omitempty"`
}

// OutputV1 is one committed per-group output file.
type OutputV1 struct {
	Group string `json:"group"`
	Path  string `json:"path"`
	Bytes int64  `json:"bytes"`
	CRC64 string `json:"crc64"` // CRC-64/ECMA, 16 lowercase hex digits
}

type TotalsV1 struct {
	Completed int   `json:"completed"`
	Failed    int   `json:"failed"`
	Records   int   `json:"records"`
	Matches   []int `json:"matches"`
}

// GroupStatsV1 describes a group's match rate across completed files.
type GroupStatsV1 struct {
	Group  string  `json:"group"`
	Files  int     `json:"files"`
	Mean   float64 `json:"mean_rate"`
	StdDev float64 `json:"stddev_rate"`
	Min    float64 `json:"min_rate"`
	Max    float64 `json:"max_rate"`
}

// Status values for FileV1.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)
