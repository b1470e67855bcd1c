// Command kpaths prints the k shortest loopless paths between two vertices of
// a graph read from a YAML or JSON file.
//
// Usage:
//
//	kpaths -graph FILE -from S -to T [-k 3] [-weight weight] [-format text|json]
//	       [-oracle dijkstra|gonum] [-check] [-no-color] [-v]
//
// With -check the result is compared against an exhaustive depth-first
// enumeration of every simple path, which is only practical on small graphs.
//
// Exit status is 0 on success (including fewer than k paths), 1 when the
// target is unreachable, 2 on usage or input errors and 3 when -check fails.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/ksp"
)

const (
	exitOK     = 0
	exitNoPath = 1
	exitUsage  = 2
	exitCheck  = 3
)

const (
	formatText = "text"
	formatJSON = "json"

	oracleDijkstra = "dijkstra"
	oracleGonum    = "gonum"
)

type options struct {
	graph     string
	from      string
	to        string
	k         int
	weightKey string
	format    string
	oracle    string
	check     bool
	noColor   bool
	verbose   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("kpaths", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.graph, "graph", "", "Graph file (.yaml, .yml or .json)")
	fs.StringVar(&opts.from, "from", "", "Source vertex")
	fs.StringVar(&opts.to, "to", "", "Target vertex")
	fs.IntVar(&opts.k, "k", 1, "Number of paths to find")
	fs.StringVar(&opts.weightKey, "weight", core.DefaultWeightKey, "Edge attribute read as the weight")
	fs.StringVar(&opts.format, "format", formatText, "Output format: text or json")
	fs.StringVar(&opts.oracle, "oracle", oracleDijkstra, "Shortest-path oracle: dijkstra or gonum")
	fs.BoolVar(&opts.check, "check", false, "Verify the result by enumerating every simple path")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable colorized output")
	fs.BoolVar(&opts.verbose, "v", false, "Log every spur search to stderr")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if opts.noColor {
		color.NoColor = true
	}
	logger := newLogger(stderr, opts.verbose)

	if err := opts.validate(); err != nil {
		logger.Error().Err(err).Msg("invalid arguments")
		fs.Usage()
		return exitUsage
	}

	g, err := loadGraph(opts.graph)
	if err != nil {
		logger.Error().Err(err).Str("file", opts.graph).Msg("cannot load graph")
		return exitUsage
	}
	logger.Debug().
		Str("file", opts.graph).
		Bool("directed", g.Directed()).
		Int("vertices", g.VertexCount()).
		Int("edges", g.EdgeCount()).
		Msg("graph loaded")

	yopts := []ksp.Option{ksp.WithWeightKey(opts.weightKey), ksp.WithLogger(logger)}
	if opts.oracle == oracleGonum {
		yopts = append(yopts, ksp.WithOracle(ksp.GonumOracle))
	}

	lengths, paths, err := ksp.Yen(g, opts.from, opts.to, opts.k, yopts...)
	switch {
	case errors.Is(err, ksp.ErrNoPath):
		logger.Error().Str("from", opts.from).Str("to", opts.to).Msg("no path")
		return exitNoPath
	case err != nil:
		logger.Error().Err(err).Msg("search failed")
		return exitUsage
	}
	if len(paths) < opts.k {
		logger.Info().Int("requested", opts.k).Int("found", len(paths)).Msg("fewer paths than requested")
	}
	if opts.check {
		if err = verify(g, opts.from, opts.to, opts.weightKey, opts.k, lengths, paths); err != nil {
			logger.Error().Err(err).Msg("check failed")
			return exitCheck
		}
		logger.Info().Msg("check passed")
	}

	if opts.format == formatJSON {
		err = writeJSON(stdout, opts.from, opts.to, lengths, paths)
	} else {
		err = writeText(stdout, opts.from, opts.to, lengths, paths)
	}
	if err != nil {
		logger.Error().Err(err).Msg("cannot write result")
		return exitUsage
	}

	return exitOK
}

func (o options) validate() error {
	switch {
	case o.graph == "":
		return errors.New("-graph is required")
	case o.from == "" || o.to == "":
		return errors.New("-from and -to are required")
	case o.k < 1:
		return fmt.Errorf("-k must be at least 1, got %d", o.k)
	case o.weightKey == "":
		return errors.New("-weight must not be empty")
	case o.format != formatText && o.format != formatJSON:
		return fmt.Errorf("unknown -format %q", o.format)
	case o.oracle != oracleDijkstra && o.oracle != oracleGonum:
		return fmt.Errorf("unknown -oracle %q", o.oracle)
	}

	return nil
}

// newLogger writes human-readable events to w: info and above, debug with -v.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.NoColor = color.NoColor
	})).Level(level).With().Timestamp().Logger()
}
