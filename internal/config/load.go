package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
)

// DefaultSuffix is the recognized input-file suffix.
const DefaultSuffix = ".fastq.gz"

// Defaults returns the base configuration. The motif groups are the ADAR
// sensor targets: group 1 carries the edited (TAG) site, group 2 the
// unedited (TGG) site.
func Defaults() Config {
	return Config{
		MotifGroups: []MotifGroup{
			{Name: "group1", Motifs: []string{"AAGAGAGACTATCGTGCCTaG", "TaGAAAATCGGTTCACTCCCA"}},
			{Name: "group2", Motifs: []string{"AAGAGAGACTATCGTGCCTGG", "TGGAAAATCGGTTCACTCCCA"}},
		},
		InputSuffix: DefaultSuffix,
		Workers:     1,
		Summary:     Summary{Format: "text"},
		Logging:     Logging{Level: "info"},
	}
}

// Unset returns an overlay in which nothing is set.
func Unset() Config { return Config{Workers: -1} }

// LoadJSON parses an overlay from raw JSON, or from path when raw is empty.
func LoadJSON(path string, raw []byte) (Config, error) {
	cfg := Unset()
	var r io.Reader
	switch {
	case len(raw) > 0:
		r = bytes.NewReader(raw)
	case path != "":
		f, err := os.Open(path)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		r = f
	default:
		return cfg, errors.New("no config source provided")
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Merge overlays over onto base. Empty strings, empty lists and negative
// Workers do not override; lists are replaced, not appended.
func Merge(base, over Config) Config {
	out := base
	if len(over.MotifGroups) > 0 {
		out.MotifGroups = cloneGroups(over.MotifGroups)
	}
	if s := strings.TrimSpace(over.MotifFile); s != "" {
		out.MotifFile = s
	}
	if s := strings.TrimSpace(over.InputDirectory); s != "" {
		out.InputDirectory = s
	}
	if len(over.InputFiles) > 0 {
		out.InputFiles = append([]string(nil), over.InputFiles...)
	}
	if s := strings.TrimSpace(over.OutputDirectory); s != "" {
		out.OutputDirectory = s
	}
	if over.InputSuffix != "" {
		out.InputSuffix = over.InputSuffix
	}
	if over.Workers >= 0 {
		out.Workers = over.Workers
	}
	if s := strings.TrimSpace(over.Summary.Format); s != "" {
		out.Summary.Format = s
	}
	if s := strings.TrimSpace(over.Summary.Chart); s != "" {
		out.Summary.Chart = s
	}
	if s := strings.TrimSpace(over.Logging.Level); s != "" {
		out.Logging.Level = s
	}
	return out
}

func cloneGroups(in []MotifGroup) []MotifGroup {
	out := make([]MotifGroup, len(in))
	for i, g := range in {
		out[i] = MotifGroup{Name: g.Name, Motifs: append([]string(nil), g.Motifs...)}
	}
	return out
}
