// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/roadsearch/config"
	"github.com/katalvlaran/roadsearch/core"
	"github.com/katalvlaran/roadsearch/heuristic"
	"github.com/katalvlaran/roadsearch/loader"
	"github.com/katalvlaran/roadsearch/report"
	"github.com/katalvlaran/roadsearch/search"
)

// input holds the raw flag values; only flags the user set override the config.
type input struct {
	configPath       string
	envFile          string
	logLevel         string
	verbose          bool
	strict           bool
	unknownHeuristic int64
	color            string

	start          string
	goal           string
	strategies     []string
	capacity       int
	frontier       string
	skipStale      bool
	checkHeuristic bool
	quiet          bool
}

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string, args []string) error {
	cmd := newRootCommand(ctx, version, os.Stdout, os.Stderr)
	cmd.SetArgs(args)

	return cmd.Execute()
}

func newRootCommand(ctx context.Context, version string, stdout, stderr io.Writer) *cobra.Command {
	in := &input{}
	rootCmd := &cobra.Command{
		Use:          "roadsearch [data-file]",
		Short:        "Find a route between two cities with Greedy Best-First and A* search.",
		Args:         cobra.MaximumNArgs(1),
		RunE:         newRunSearch(ctx, in, stdout, stderr),
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	in.addPersistentFlags(rootCmd.PersistentFlags())
	in.addSearchFlags(rootCmd.Flags())
	rootCmd.AddCommand(newExportCommand(in, stdout, stderr))

	return rootCmd
}

func (in *input) addPersistentFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&in.configPath, "config", "c", "", "path to a YAML config file")
	fs.StringVar(&in.envFile, "env-file", ".env", "dotenv file with ROADSEARCH_* variables")
	fs.StringVar(&in.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	fs.BoolVarP(&in.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVar(&in.strict, "strict", false, "fail on the first malformed data line")
	fs.Int64Var(&in.unknownHeuristic, "unknown-heuristic", 0, "estimate used for cities without a heuristic")
	fs.StringVar(&in.color, "color", "", "colour output: auto, always or never")
}

func (in *input) addSearchFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&in.start, "start", "s", "", "start city")
	fs.StringVarP(&in.goal, "goal", "g", "", "goal city")
	fs.StringSliceVarP(&in.strategies, "strategy", "S", nil, "strategy to run: greedy, astar (repeatable)")
	fs.IntVar(&in.capacity, "capacity", 0, "maximum search nodes per run")
	fs.StringVar(&in.frontier, "frontier", "", "frontier ordering: heap or linear")
	fs.BoolVar(&in.skipStale, "skip-stale", false, "skip outdated frontier entries instead of re-expanding them")
	fs.BoolVar(&in.checkHeuristic, "check-heuristic", false, "audit the heuristic table against true distances")
	fs.BoolVarP(&in.quiet, "quiet", "q", false, "print outcomes without the expansion trace")
}

// resolve loads the config and applies positional args and every flag the user changed.
func (in *input) resolve(fs *pflag.FlagSet, args []string) (*config.Config, error) {
	cfg, err := config.Load(in.configPath, in.envFile)
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		cfg.Data = args[0]
	}

	set := func(name string, apply func()) {
		if f := fs.Lookup(name); f != nil && f.Changed {
			apply()
		}
	}
	set("log-level", func() { cfg.LogLevel = in.logLevel })
	set("strict", func() { cfg.Strict = in.strict })
	set("unknown-heuristic", func() { cfg.UnknownHeuristic = in.unknownHeuristic })
	set("start", func() { cfg.Start = in.start })
	set("goal", func() { cfg.Goal = in.goal })
	set("strategy", func() { cfg.Strategies = in.strategies })
	set("capacity", func() { cfg.Capacity = in.capacity })
	set("frontier", func() { cfg.Frontier = in.frontier })
	set("skip-stale", func() { cfg.SkipStale = in.skipStale })
	set("check-heuristic", func() { cfg.CheckHeuristic = in.checkHeuristic })
	set("quiet", func() { cfg.Quiet = in.quiet })
	set("color", func() { cfg.Color = in.color })

	if in.verbose {
		if lvl, err := logrus.ParseLevel(cfg.LogLevel); err != nil || lvl < logrus.DebugLevel {
			cfg.LogLevel = logrus.DebugLevel.String()
		}
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newRunSearch(ctx context.Context, in *input, stdout, stderr io.Writer) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := in.resolve(cmd.Flags(), args)
		if err != nil {
			return err
		}
		log := newLogger(cfg, stderr)

		g, _, err := loader.LoadFile(cfg.Data, cfg.LoaderOptions(log)...)
		if err != nil {
			return err
		}

		p := report.New(stdout,
			report.WithColor(useColor(cfg.Color, stdout)),
			report.WithTrace(!cfg.Quiet))
		p.Banner(cfg.Start, cfg.Goal)
		p.Loaded(g.RoadCount(), g.CityCount())

		if cfg.CheckHeuristic {
			rep, err := heuristic.Check(g, cfg.Goal)
			if err != nil {
				return err
			}
			p.Audit(rep)
		}

		return runStrategies(ctx, cfg, g, p, log)
	}
}

// runStrategies runs every configured strategy in order and returns the first
// search error once all have been printed.
func runStrategies(ctx context.Context, cfg *config.Config, g *core.Graph, p *report.Printer, log logrus.FieldLogger) error {
	strategies, err := cfg.SearchStrategies()
	switch {
	case err != nil:
		return fmt.Errorf("%w: strategies: %w", config.ErrInvalid, err)
	case len(strategies) == 0:
		return fmt.Errorf("%w: strategies: none selected", config.ErrInvalid)
	}

	var firstErr error
	for _, s := range strategies {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := search.Run(g, s, cfg.SearchOptions(log)...)
		if res != nil {
			p.Result(res)
		}
		if err != nil {
			p.Failure(s, err)
			log.WithError(err).WithField("strategy", s.String()).Error("search failed")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if err := p.Err(); err != nil {
		return err
	}

	return firstErr
}

func newLogger(cfg *config.Config, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	color := useColor(cfg.Color, w)
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:      color,
		DisableColors:    !color,
		DisableTimestamp: true,
	})

	return log
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return report.Colorable(w)
	}
}
