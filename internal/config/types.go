package config

// Config is the run configuration. It is read once and not changed while
// files are processed. JSON uses snake_case; unknown fields fail decoding.
type Config struct {
	// MotifGroups are searched in order; group N (1-based) writes
	// <input>_matches_group<N>.txt.
	MotifGroups []MotifGroup `json:"motif_groups"`
	// MotifFile is an optional "group motif" TSV appended to MotifGroups.
	MotifFile string `json:"motif_file"`

	InputDirectory  string   `json:"input_directory"`
	InputFiles      []string `json:"input_files"`
	OutputDirectory string   `json:"output_directory"`
	InputSuffix     string   `json:"input_suffix"`

	// Workers is the number of files processed concurrently (0 = all CPUs).
	// Negative values mean "not set" when merging.
	Workers int `json:"workers"`

	Summary Summary `json:"summary"`
	Logging Logging `json:"logging"`
}

// MotifGroup is a named set of literal motifs.
type MotifGroup struct {
	Name   string   `json:"name"`
	Motifs []string `json:"motifs"`
}

// Summary selects the run summary format and the optional chart path.
type Summary struct {
	Format string `json:"format"`
	Chart  string `json:"chart"`
}

type Logging struct {
	Level string `json:"level"`
}
