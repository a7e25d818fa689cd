// Runs the graph searches over the two example graphs, or over a seeded
// random graph, and prints one line per algorithm.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kataras/golog"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/report"
	"github.com/katalvlaran/lvsearch/scenario"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/suite"
)

const helpMessage = `
graphsearch runs BFS, DFS, Best-First Search, Hill Climbing, Branch and Bound
and Dijkstra over weighted undirected graphs.

Usage: graphsearch [options]

  -graph       (string)  1, 2 or all: which example graph to search (default all)
  -alg         (string)  algorithm name or alias, or all (default all)
  -start       (int)     start vertex id (default: 0)
  -goal        (int)     goal vertex id (default: 7, or n-1 with -random)
  -random      (int)     search a seeded random graph with n vertices instead
  -p           (float)   edge probability for -random (default 0.2)
  -seed        (int)     seed for -random (default 1)
  -max-steps   (int)     abort a search after this many expansions (0 = unlimited)
  -no-color    (flag)    disable colored output
  -v           (flag)    debug logging of every expansion
  -h, -help    (flag)    show this message
`

// config is the parsed command line.
type config struct {
	graph    string
	alg      string
	start    int
	goal     int
	random   int
	p        float64
	seed     int64
	maxSteps int
	noColor  bool
	verbose  bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("graphsearch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, helpMessage) }

	var cfg config
	fs.StringVar(&cfg.graph, "graph", "all", "")
	fs.StringVar(&cfg.alg, "alg", "all", "")
	fs.IntVar(&cfg.start, "start", -1, "")
	fs.IntVar(&cfg.goal, "goal", -1, "")
	fs.IntVar(&cfg.random, "random", 0, "")
	fs.Float64Var(&cfg.p, "p", 0.2, "")
	fs.Int64Var(&cfg.seed, "seed", 1, "")
	fs.IntVar(&cfg.maxSteps, "max-steps", 0, "")
	fs.BoolVar(&cfg.noColor, "no-color", false, "")
	fs.BoolVar(&cfg.verbose, "v", false, "")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	logger := golog.New()
	logger.SetOutput(stderr)
	logger.SetLevel("info")
	if cfg.verbose {
		logger.SetLevel("debug")
	}

	if err := execute(cfg, stdout, logger); err != nil {
		logger.Error(err)
		return 1
	}

	return 0
}

// execute resolves the scenarios and algorithms and prints every section.
func execute(cfg config, stdout io.Writer, logger *golog.Logger) error {
	scenarios, err := pickScenarios(cfg)
	if err != nil {
		return err
	}

	algs := suite.Names()
	if cfg.alg != "all" {
		name, err := suite.Parse(cfg.alg)
		if err != nil {
			return err
		}
		algs = []search.Algorithm{name}
	}

	var popts []report.Option
	if cfg.noColor {
		popts = append(popts, report.WithColor(false))
	}
	printer := report.New(stdout, popts...)
	sopts := []search.Option{search.WithLogger(logger), search.WithMaxSteps(cfg.maxSteps)}

	for _, sc := range scenarios {
		results := make([]*search.Result, 0, len(algs))
		for _, name := range algs {
			res, err := suite.Run(sc.Graph, name, sc.Start, sc.Goal, sopts...)
			if err != nil {
				return fmt.Errorf("%s: %w", sc.Name, err)
			}
			if !res.Found() {
				reason, err := suite.Explain(sc.Graph, res, sc.Start, sc.Goal)
				if err != nil {
					return err
				}
				logger.Infof("%s: %s: %s", sc.Name, name, reason)
			}
			results = append(results, res)
		}
		if err = printer.Section(sc.Name, results); err != nil {
			return err
		}
	}

	return nil
}

// pickScenarios returns the example scenarios selected by -graph, or one
// random scenario when -random is set, with -start/-goal overrides applied.
func pickScenarios(cfg config) ([]scenario.Scenario, error) {
	var out []scenario.Scenario

	if cfg.random > 0 {
		g, err := builder.BuildGraph(cfg.random,
			[]builder.BuilderOption{
				builder.WithSeed(cfg.seed),
				builder.WithLabelScheme(builder.AlphaLabel),
				builder.WithWeightFn(builder.UniformWeightFn(1, 9)),
			},
			builder.RandomSparse(cfg.p),
		)
		if err != nil {
			return nil, err
		}
		title := fmt.Sprintf("Random n=%d p=%g seed=%d", cfg.random, cfg.p, cfg.seed)
		out = []scenario.Scenario{scenario.New(title, g, 0, cfg.random-1)}
	} else {
		all, err := scenario.All()
		if err != nil {
			return nil, err
		}
		switch cfg.graph {
		case "all":
			out = all
		case "1":
			out = all[:1]
		case "2":
			out = all[1:]
		default:
			return nil, fmt.Errorf("unknown -graph %q (want 1, 2 or all)", cfg.graph)
		}
	}

	for i, sc := range out {
		start, goal := sc.Start, sc.Goal
		if cfg.start >= 0 {
			start = cfg.start
		}
		if cfg.goal >= 0 {
			goal = cfg.goal
		}
		out[i] = sc.With(start, goal)
	}

	return out, nil
}
