package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultsCarryTwoGroups(t *testing.T) {
	d := Defaults()
	if len(d.MotifGroups) != 2 || d.InputSuffix != ".fastq.gz" || d.Workers != 1 {
		t.Fatalf("unexpected defaults: %+v", d)
	}
	gs, err := Groups(d)
	if err != nil {
		t.Fatalf("Groups: %v", err)
	}
	if gs[0].Motifs[0] != "AAGAGAGACTATCGTGCCTaG" {
		t.Fatalf("group1 = %+v", gs[0])
	}
}

func TestLoadJSONRejectsUnknownFields(t *testing.T) {
	_, err := LoadJSON("", []byte(`{"output_directory":"out","bogus":1}`))
	if err == nil || !strings.Contains(err.Error(), "bogus") {
		t.Fatalf("want unknown field error, got %v", err)
	}
}

func TestLoadJSONFromFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cfg.json")
	raw := `{
  "motif_groups": [{"name": "edited", "motifs": ["ACGTTT"]}],
  "input_directory": "in",
  "output_directory": "out",
  "workers": 0,
  "summary": {"format": "json"}
}`
	if err := os.WriteFile(p, []byte(raw), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	over, err := LoadJSON(p, nil)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	got := Merge(Defaults(), over)
	if len(got.MotifGroups) != 1 || got.MotifGroups[0].Name != "edited" {
		t.Errorf("groups not replaced: %+v", got.MotifGroups)
	}
	if got.Workers != 0 {
		t.Errorf("workers = %d, want explicit 0", got.Workers)
	}
	if got.Summary.Format != "json" || got.InputSuffix != DefaultSuffix || got.Logging.Level != "info" {
		t.Errorf("merge result: %+v", got)
	}
}

func TestLoadJSONNoSource(t *testing.T) {
	if _, err := LoadJSON("", nil); err == nil {
		t.Fatal("expected error with no source")
	}
}

func TestMergeUnsetKeepsBase(t *testing.T) {
	base := Defaults()
	base.OutputDirectory = "out"
	got := Merge(base, Unset())
	if got.Workers != 1 || got.OutputDirectory != "out" || len(got.MotifGroups) != 2 {
		t.Fatalf("Unset overlay changed base: %+v", got)
	}
}

func TestMergeDoesNotAlias(t *testing.T) {
	over := Unset()
	over.MotifGroups = []MotifGroup{{Name: "a", Motifs: []string{"AC"}}}
	got := Merge(Defaults(), over)
	over.MotifGroups[0].Motifs[0] = "ZZ"
	if got.MotifGroups[0].Motifs[0] != "AC" {
		t.Fatal("Merge aliased overlay motifs")
	}
}

func TestValidate(t *testing.T) {
	ok := Defaults()
	ok.InputDirectory, ok.OutputDirectory = "in", "out"
	if err := Validate(ok); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name string
		mut  func(*Config)
		want error
	}{
		{"no output", func(c *Config) { c.OutputDirectory = " " }, ErrNoOutput},
		{"no input", func(c *Config) { c.InputDirectory = "" }, ErrNoInput},
		{"negative workers", func(c *Config) { c.Workers = -2 }, nil},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, nil},
		{"no suffix", func(c *Config) { c.InputSuffix = "" }, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := ok
			tc.mut(&c)
			err := Validate(c)
			if err == nil {
				t.Fatal("expected error")
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}

	files := ok
	files.InputDirectory = ""
	files.InputFiles = []string{"a.fastq.gz"}
	if err := Validate(files); err != nil {
		t.Fatalf("input_files alone rejected: %v", err)
	}
}

func TestGroupsChecks(t *testing.T) {
	cases := []struct {
		name   string
		groups []MotifGroup
		errSub string
	}{
		{"none", nil, "no motif groups"},
		{"unnamed", []MotifGroup{{Name: " ", Motifs: []string{"A"}}}, "no name"},
		{"duplicate", []MotifGroup{{Name: "a", Motifs: []string{"A"}}, {Name: "a", Motifs: []string{"C"}}}, "duplicate"},
		{"empty motifs", []MotifGroup{{Name: "a", Motifs: []string{"", "  "}}}, "no motifs"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Groups(Config{MotifGroups: tc.groups})
			if err == nil || !strings.Contains(err.Error(), tc.errSub) {
				t.Fatalf("err = %v, want substring %q", err, tc.errSub)
			}
		})
	}
	if _, err := Groups(Config{}); !errors.Is(err, ErrNoGroups) {
		t.Fatalf("want ErrNoGroups, got %v", err)
	}
}

func TestGroupsTrimsAndAppendsMotifFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "m.tsv")
	if err := os.WriteFile(p, []byte("extra\tGGGCCC\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c := Config{
		MotifGroups: []MotifGroup{{Name: " a ", Motifs: []string{" ACG ", ""}}},
		MotifFile:   p,
	}
	gs, err := Groups(c)
	if err != nil {
		t.Fatalf("Groups: %v", err)
	}
	if len(gs) != 2 || gs[0].Name != "a" || len(gs[0].Motifs) != 1 || gs[0].Motifs[0] != "ACG" {
		t.Fatalf("groups = %+v", gs)
	}
	if gs[1].Name != "extra" || gs[1].Motifs[0] != "GGGCCC" {
		t.Fatalf("file group = %+v", gs[1])
	}
}

func TestGroupsMissingMotifFile(t *testing.T) {
	_, err := Groups(Config{MotifFile: filepath.Join(t.TempDir(), "none.tsv")})
	if err == nil || !strings.Contains(err.Error(), "motif file") {
		t.Fatalf("want motif file error, got %v", err)
	}
}
