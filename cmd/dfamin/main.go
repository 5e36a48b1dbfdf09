// Command dfamin reads a DFA document, minimizes it and writes the result.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/geange/dfamin"
	"github.com/geange/dfamin/codec"
	"github.com/geange/dfamin/internal/config"
	"github.com/geange/dfamin/internal/logger"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var rule = strings.Repeat("-", 80)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	conf, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "dfamin: %v\n", err)
		return exitUsage
	}

	fs := flag.NewFlagSet("dfamin", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", conf.Input, "input DFA document (.json, .yaml, .cbor)")
	out := fs.String("out", conf.Output, "output file for the minimal DFA")
	format := fs.String("format", conf.Format, "document format [json|yaml|cbor]; default from file extension")
	logLevel := fs.String("loglevel", conf.LogLevel, "log level [debug|info|warn|error]")
	representative := fs.String("representative", conf.Representative, "block representative [min|first-seen]")
	quiet := fs.Bool("quiet", false, "do not print the input and output automata")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	level, err := logger.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "dfamin: %v\n", err)
		return exitUsage
	}
	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(logger.Format(conf.LogFormat)),
		logger.WithOutput(stderr),
	)

	opts := []dfamin.Option{dfamin.WithLogger(log)}
	switch *representative {
	case config.RepresentativeMin:
	case config.RepresentativeFirstSeen:
		opts = append(opts, dfamin.WithFirstSeenOrder())
	default:
		fmt.Fprintf(stderr, "dfamin: unknown representative %q\n", *representative)
		return exitUsage
	}

	inFormat, outFormat, err := formats(*format, *in, *out)
	if err != nil {
		fmt.Fprintf(stderr, "dfamin: %v\n", err)
		return exitUsage
	}

	input, err := codec.LoadFileAs(*in, inFormat)
	if err != nil {
		switch {
		case errors.Is(err, codec.ErrSourceUnavailable):
			log.Error("could not read input", slog.String("path", *in), slog.Any("err", err))
		case errors.Is(err, dfamin.ErrInvalidAutomaton):
			log.Error("invalid automaton", slog.String("path", *in), slog.Any("err", err))
		default:
			log.Error("could not load input", slog.String("path", *in), slog.Any("err", err))
		}
		return exitFailure
	}

	if !*quiet {
		fmt.Fprintln(stdout, "Input:")
		if err := codec.Fprint(stdout, input); err != nil {
			log.Warn("could not print automaton", slog.Any("err", err))
		}
		fmt.Fprintln(stdout, rule)
	}

	minimal, stats := dfamin.MinimizeWithStats(input, opts...)
	log.Debug("minimized",
		slog.Int("input", stats.InputStates),
		slog.Int("reachable", stats.ReachableStates),
		slog.Int("classes", stats.EquivalenceClasses),
		slog.Int("rounds", stats.Rounds))

	if stats.Reduced() {
		fmt.Fprintf(stdout, "Reduced number of states from %d to %d.\n", stats.InputStates, stats.OutputStates)
	} else {
		fmt.Fprintln(stdout, "Input DFA already minimal.")
	}

	if err := codec.SaveFile(*out, minimal, outFormat); err != nil {
		log.Error("could not write output", slog.String("path", *out), slog.Any("err", err))
		return exitFailure
	}

	if !*quiet {
		fmt.Fprintln(stdout, "Output:")
		if err := codec.Fprint(stdout, minimal); err != nil {
			log.Warn("could not print automaton", slog.Any("err", err))
		}
		fmt.Fprintln(stdout, rule)
	}
	return exitOK
}

// formats resolves the input and output formats: an explicit name applies to
// both, otherwise each comes from its file extension.
func formats(name, in, out string) (codec.Format, codec.Format, error) {
	if name != "" {
		f, err := codec.ParseFormat(name)
		return f, f, err
	}
	inFormat, err := codec.FormatFromPath(in)
	if err != nil {
		return "", "", err
	}
	outFormat, err := codec.FormatFromPath(out)
	if err != nil {
		return "", "", err
	}
	return inFormat, outFormat, nil
}
