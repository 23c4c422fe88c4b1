// Command dijkstra prints single-source shortest path lengths for a graph
// stored as an adjacency list.
//
// Usage:
//
//	dijkstra [flags] <graph-file> [vertex ...]
//
// Each line of the graph file reads "vertex dest,weight dest,weight ...".
// Target vertices come from -targets and from the positional arguments
// after the file; with neither, every vertex of the graph is reported.
// One line is printed per target:
//
//	Vertex: 7 shortest path length: 2599
//	Vertex: 9 shortest path length: no path
//
// Logs are JSON on stderr; -v adds one debug record per finalized vertex.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/logging/ctxlog"

	"github.com/katalvlaran/frontier/adjlist"
	"github.com/katalvlaran/frontier/dijkstra"
)

func main() {
	ctx := context.Background()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "dijkstra: %v\n", err)
		os.Exit(1)
	}
}

type config struct {
	source      int
	targets     flags.Commas
	maxDistance int64
	verbose     bool
}

func parseArgs(args []string, stderr io.Writer) (config, []string, error) {
	cfg := config{targets: flags.Commas{Validate: validateVertex}}

	fs := flag.NewFlagSet("dijkstra", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: dijkstra [flags] <graph-file> [vertex ...]")
		fs.PrintDefaults()
	}
	fs.IntVar(&cfg.source, "source", dijkstra.DefaultSource, "vertex distances are measured from")
	fs.Var(&cfg.targets, "targets", "comma separated vertices to report")
	fs.Int64Var(&cfg.maxDistance, "max-distance", -1, "stop once every remaining vertex is farther than this (-1: no limit)")
	fs.BoolVar(&cfg.verbose, "v", false, "log every finalized vertex")
	if err := fs.Parse(args); err != nil {
		return cfg, nil, err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return cfg, nil, errors.New("missing graph file")
	}
	for _, a := range fs.Args()[1:] {
		if err := validateVertex(a); err != nil {
			return cfg, nil, err
		}
		cfg.targets.Values = append(cfg.targets.Values, a)
	}

	return cfg, fs.Args(), nil
}

func validateVertex(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("invalid vertex %q", s)
	}
	return nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, rest, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	ctx = ctxlog.NewJSONLogger(ctx, stderr, &slog.HandlerOptions{Level: level})
	logger := ctxlog.Logger(ctx)

	path := rest[0]
	g, err := adjlist.ParseFile(path)
	if err != nil {
		return err
	}
	logger.Info("graph loaded", "file", path, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	opts := []dijkstra.Option{
		dijkstra.Source(cfg.source),
		dijkstra.WithOnFinalize(func(v int, d int64) {
			logger.Debug("finalized", "vertex", v, "distance", d)
		}),
	}
	if cfg.maxDistance >= 0 {
		opts = append(opts, dijkstra.WithMaxDistance(cfg.maxDistance))
	}
	s, err := dijkstra.NewSolver(g, opts...)
	if err != nil {
		return err
	}
	if err = s.Solve(); err != nil {
		return err
	}
	logger.Info("shortest paths computed", "source", cfg.source, "reached", len(s.Distances()))

	targets := g.Vertices()
	if len(cfg.targets.Values) > 0 {
		targets = targets[:0:0]
		for _, t := range cfg.targets.Values {
			v, _ := strconv.Atoi(t) // validated while parsing flags
			targets = append(targets, v)
		}
	}
	for _, v := range targets {
		if d, ok := s.DistanceTo(v); ok {
			fmt.Fprintf(stdout, "Vertex: %d shortest path length: %d\n", v, d)
		} else {
			fmt.Fprintf(stdout, "Vertex: %d shortest path length: no path\n", v)
		}
	}

	return nil
}
