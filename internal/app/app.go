// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"sensorscan/internal/appcore"
	"sensorscan/internal/cli"
	"sensorscan/internal/config"
	"sensorscan/internal/version"
	"sensorscan/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("sensorscan")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		code := appcore.ExitOK
		if !errors.Is(err, flag.ErrHelp) {
			_, _ = fmt.Fprintln(stderr, err)
			code = appcore.ExitUsage
		}
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return code
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return appcore.ExitWrite
		}
		return code
	}

	if opts.Version || opts.Examples {
		if opts.Version {
			_, _ = fmt.Fprintf(outw, "sensorscan version %s\n", version.Version)
		} else {
			cli.PrintExamples(outw, "sensorscan")
		}
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return appcore.ExitOK
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return appcore.ExitWrite
		}
		return appcore.ExitOK
	}

	cfg := config.Defaults()
	if opts.ConfigFile != "" {
		fileCfg, err := config.LoadJSON(opts.ConfigFile, nil)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "config %s: %v\n", opts.ConfigFile, err)
			return appcore.ExitUsage
		}
		cfg = config.Merge(cfg, fileCfg)
	}
	cfg = config.Merge(cfg, opts.Overlay())

	return appcore.Run(parent, stdout, stderr, cfg)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
