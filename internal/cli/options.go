// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"sensorscan/internal/cliutil"
	"sensorscan/internal/config"
)

// Options holds all CLI flags and arguments.
type Options struct {
	ConfigFile string

	// Input / output
	InputDir   string
	OutputDir  string
	Suffix     string
	InputFiles []string // positionals, globs expanded

	// Motifs
	Groups    []config.MotifGroup // from repeatable -group
	MotifFile string

	// Performance
	Threads int // -1 = not set

	// Reporting
	Summary  string
	Chart    string
	LogLevel string
	Quiet    bool

	Examples bool
	Version  bool
}

// stringSlice collects repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// ParseGroup parses "name=MOTIF1,MOTIF2".
func ParseGroup(s string) (config.MotifGroup, error) {
	name, list, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return config.MotifGroup{}, fmt.Errorf("bad -group %q: want name=MOTIF[,MOTIF...]", s)
	}
	var motifs []string
	for _, m := range strings.Split(list, ",") {
		if m = strings.TrimSpace(m); m != "" {
			motifs = append(motifs, m)
		}
	}
	if len(motifs) == 0 {
		return config.MotifGroup{}, fmt.Errorf("bad -group %q: no motifs", s)
	}
	return config.MotifGroup{Name: name, Motifs: motifs}, nil
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var (
		opt    Options
		help   bool
		groups stringSlice
	)

	fs.StringVar(&opt.ConfigFile, "config", "", "JSON configuration file")

	// Input / output
	fs.StringVar(&opt.InputDir, "input", "", "input directory")
	fs.StringVar(&opt.OutputDir, "output", "", "output directory (created if missing)")
	fs.StringVar(&opt.Suffix, "suffix", "", "input file suffix ["+config.DefaultSuffix+"]")

	// Motifs
	fs.Var(&groups, "group", "motif group name=MOTIF[,MOTIF...] (repeatable; replaces configured groups)")
	fs.StringVar(&opt.MotifFile, "motifs", "", "TSV of 'group motif' lines, appended to the groups")

	// Performance
	fs.IntVar(&opt.Threads, "threads", -1, "files processed concurrently (0 = all CPUs) [1]")
	fs.IntVar(&opt.Threads, "t", -1, "files processed concurrently (shorthand)")

	// Reporting
	fs.StringVar(&opt.Summary, "summary", "", "run summary format: text | json | tsv [text]")
	fs.StringVar(&opt.Chart, "chart", "", "write a bar chart of matches (.svg, .png, .pdf)")
	fs.StringVar(&opt.LogLevel, "log-level", "", "debug | info | warn | error [info]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "only log warnings and errors [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "only log warnings and errors (shorthand) [false]")
	fs.BoolVar(&opt.Examples, "examples", false, "show quickstart examples and exit [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version || opt.Examples {
		return opt, nil
	}

	for _, g := range groups {
		mg, err := ParseGroup(g)
		if err != nil {
			return opt, err
		}
		opt.Groups = append(opt.Groups, mg)
	}
	files, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	opt.InputFiles = files

	if opt.Threads < -1 {
		return opt, errors.New("-threads must be ≥ 0")
	}
	return opt, nil
}

// Overlay converts the flags that were set into a config overlay.
func (o Options) Overlay() config.Config {
	c := config.Unset()
	c.MotifGroups = o.Groups
	c.MotifFile = o.MotifFile
	c.InputDirectory = o.InputDir
	c.InputFiles = o.InputFiles
	c.OutputDirectory = o.OutputDir
	c.InputSuffix = o.Suffix
	c.Workers = o.Threads
	c.Summary = config.Summary{Format: o.Summary, Chart: o.Chart}
	c.Logging.Level = o.LogLevel
	if o.Quiet {
		c.Logging.Level = "warn"
	}
	return c
}
