package config

import (
	"errors"
	"fmt"
	"strings"

	"sensorscan-core/motif"
)

var (
	ErrNoGroups = errors.New("no motif groups configured")
	ErrNoOutput = errors.New("output_directory is required")
	ErrNoInput  = errors.New("input_directory or input_files is required")
)

// Validate checks the path and scalar fields of a merged Config.
func Validate(c Config) error {
	if strings.TrimSpace(c.OutputDirectory) == "" {
		return ErrNoOutput
	}
	if strings.TrimSpace(c.InputDirectory) == "" && len(c.InputFiles) == 0 {
		return ErrNoInput
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.InputSuffix == "" {
		return errors.New("input_suffix must not be empty")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging level %q", c.Logging.Level)
	}
	return nil
}

// Groups returns the configured motif groups followed by those loaded from
// MotifFile, and checks that names are unique and every group has a motif.
func Groups(c Config) ([]motif.Group, error) {
	var out []motif.Group
	for _, g := range c.MotifGroups {
		out = append(out, motif.Group{Name: g.Name, Motifs: append([]string(nil), g.Motifs...)})
	}
	if c.MotifFile != "" {
		fromFile, err := motif.LoadTSV(c.MotifFile)
		if err != nil {
			return nil, fmt.Errorf("motif file: %w", err)
		}
		out = append(out, fromFile...)
	}
	if len(out) == 0 {
		return nil, ErrNoGroups
	}
	seen := make(map[string]bool, len(out))
	for i, g := range out {
		name := strings.TrimSpace(g.Name)
		if name == "" {
			return nil, fmt.Errorf("motif group %d has no name", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate motif group %q", name)
		}
		seen[name] = true
		motifs := g.Motifs[:0]
		for _, m := range g.Motifs {
			if m = strings.TrimSpace(m); m != "" {
				motifs = append(motifs, m)
			}
		}
		if len(motifs) == 0 {
			return nil, fmt.Errorf("motif group %q has no motifs", name)
		}
		out[i] = motif.Group{Name: name, Motifs: motifs}
	}
	return out, nil
}
