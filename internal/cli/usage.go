// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"
	"io"

	"sensorscan/internal/config"
	"sensorscan/internal/version"
)

// NewFlagSet returns a FlagSet with ContinueOnError and the sectioned usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – split FASTQ reads by motif group (both strands)\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage: %s [flags] [input.fastq.gz ...]\n", name)
		fmt.Fprintf(out, "Without input files, every *%s file in --input is processed.\n", config.DefaultSuffix)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "      --config file           JSON configuration (flags override it)")
		fmt.Fprintln(out, "      --input dir             Directory of input files")
		fmt.Fprintf(out, "      --suffix string         Input file suffix [%s]\n", config.DefaultSuffix)
		fmt.Fprintln(out, "  [files...]                  FASTQ files or globs; '-' reads STDIN")

		fmt.Fprintln(out, "\nMotifs:")
		fmt.Fprintln(out, "      --group name=M1,M2      Motif group (repeatable; replaces the built-in groups)")
		fmt.Fprintln(out, "      --motifs file           TSV of 'group motif...' lines, appended to the groups")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintln(out, "      --output dir            Output directory, created if missing [*]")
		fmt.Fprintln(out, "                              writes <input>_matches_group<N>.txt per group")
		fmt.Fprintln(out, "      --summary string        Run summary on STDOUT: text | json | tsv [text]")
		fmt.Fprintln(out, "      --chart file            Bar chart of matches per file (.svg, .png, .pdf)")

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintln(out, "  -t, --threads int           Files processed concurrently (0=all CPUs) [1]")

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "      --log-level string      debug | info | warn | error [info]")
		fmt.Fprintf(out, "  -q, --quiet                 Only log warnings and errors [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Show quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
	return fs
}

// PrintExamples prints a short quickstart followed by a pointer to --help.
func PrintExamples(out io.Writer, name string) {
	_, _ = fmt.Fprintf(out, "%s – quickstart\n\n", name)
	_, _ = fmt.Fprintf(out, "  # scan every *%s in reads/ with the built-in sensor groups\n", config.DefaultSuffix)
	_, _ = fmt.Fprintf(out, "  %s --input reads --output results\n\n", name)
	_, _ = fmt.Fprintln(out, "  # custom groups, four files at a time, JSON summary")
	_, _ = fmt.Fprintf(out, "  %s --output results -t 4 --summary json \\\n", name)
	_, _ = fmt.Fprintln(out, "      --group edited=AAGAGAGACTATCGTGCCTAG --group unedited=AAGAGAGACTATCGTGCCTGG \\")
	_, _ = fmt.Fprintln(out, "      'reads/*.fastq.gz'")
	_, _ = fmt.Fprintln(out, "\n  # settings from a file, chart of per-file matches")
	_, _ = fmt.Fprintf(out, "  %s --config run.json --chart matches.svg\n", name)
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
