// Command lvlath-anneal orders locations into a short open path by simulated
// annealing, or serves the annealer over HTTP.
//
//	lvlath-anneal                          # built-in ten-location demo
//	lvlath-anneal -f cities.yaml -seed 7 -trace trace.csv -progress
//	lvlath-anneal -serve :5000
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/katalvlaran/lvlath-anneal/anneal"
	"github.com/katalvlaran/lvlath-anneal/instance"
	"github.com/katalvlaran/lvlath-anneal/server"
)

// cliConfig carries the parsed command line.
type cliConfig struct {
	file        string
	seed        int64
	iterations  int
	temperature float64
	cooling     float64
	trace       string
	progress    bool
	verify      bool
	serve       string

	// set records which flags were given explicitly, so that only those
	// override the instance file.
	set map[string]bool
}

func parseFlags(args []string) (cliConfig, error) {
	var cfg cliConfig
	fs := flag.NewFlagSet("lvlath-anneal", flag.ContinueOnError)
	fs.StringVar(&cfg.file, "f", "", "instance file (YAML or JSON); empty runs the built-in demo")
	fs.Int64Var(&cfg.seed, "seed", 0, "random seed (0 uses the instance seed)")
	fs.IntVar(&cfg.iterations, "iterations", anneal.DefaultIterations, "iteration budget N")
	fs.Float64Var(&cfg.temperature, "temperature", anneal.DefaultInitialTemperature, "initial temperature T0")
	fs.Float64Var(&cfg.cooling, "cooling", anneal.DefaultCoolingStep, "cooling step tau subtracted per iteration")
	fs.StringVar(&cfg.trace, "trace", "", "write a per-iteration CSV trace to this file")
	fs.BoolVar(&cfg.progress, "progress", false, "show a progress bar on stderr")
	fs.BoolVar(&cfg.verify, "verify", false, "re-check permutation integrity after every move")
	fs.StringVar(&cfg.serve, "serve", "", "serve the HTTP API on this address instead of running once")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	cfg.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { cfg.set[f.Name] = true })
	return cfg, nil
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("[ANNEAL] %v", err)
	}

	if cfg.serve != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		scfg := server.DefaultConfig()
		scfg.Addr = cfg.serve
		scfg.Seed = cfg.seed
		if err = server.New(scfg).ListenAndServe(ctx); err != nil {
			log.Fatalf("[SERVER] %v", err)
		}
		return
	}

	if err = run(cfg, os.Stdout); err != nil {
		log.Fatalf("[ANNEAL] %v", err)
	}
}

// run loads the instance, applies flag overrides, anneals once and prints
// the initial and best configurations to out.
func run(cfg cliConfig, out io.Writer) error {
	in, err := loadInstance(cfg.file)
	if err != nil {
		return err
	}
	opts := applyOverrides(in.Options(), cfg)

	var tw *traceWriter
	if cfg.trace != "" {
		f, err := os.Create(cfg.trace)
		if err != nil {
			return fmt.Errorf("trace: %w", err)
		}
		if tw, err = newTraceWriter(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("trace: %w", err)
		}
		defer func() {
			if tw != nil {
				_ = tw.Close()
			}
		}()
		opts.Observer = chain(opts.Observer, tw.observe)
	}
	if cfg.progress && opts.Iterations > 0 {
		bar := newProgressBar(opts.Iterations)
		defer func() { _ = bar.Finish() }()
		opts.Observer = chain(opts.Observer, func(anneal.Step) { _ = bar.Add(1) })
	}

	dist, err := in.Matrix()
	if err != nil {
		return fmt.Errorf("build distances: %w", err)
	}
	a, err := anneal.NewAnnealer(dist, opts)
	if err != nil {
		return err
	}
	log.Printf("[ANNEAL] %s: n=%d N=%d T0=%g tau=%g seed=%d",
		displayName(in), a.Size(), opts.Iterations, opts.InitialTemperature, opts.CoolingStep, opts.Seed)

	start := time.Now()
	res, err := a.Run(anneal.NewRand(opts.Seed))
	if err != nil {
		return err
	}
	if tw != nil {
		closeErr := tw.Close()
		tw = nil
		if closeErr != nil {
			return fmt.Errorf("trace: %w", closeErr)
		}
	}
	log.Printf("[ANNEAL] done in %s: accepted=%d improved=%d final T=%g",
		time.Since(start).Round(time.Microsecond), res.Accepted, res.Improved, res.FinalTemperature)

	return report(out, res)
}

func loadInstance(path string) (*instance.Instance, error) {
	if path == "" {
		return instance.Demo(), nil
	}
	in, err := instance.Load(path)
	if err != nil {
		if instance.IsValidationError(err) {
			return nil, fmt.Errorf("invalid instance: %s", strings.Join(instance.Translate(err), "; "))
		}
		return nil, err
	}
	return in, nil
}

func applyOverrides(opts anneal.Options, cfg cliConfig) anneal.Options {
	if cfg.set["iterations"] {
		opts.Iterations = cfg.iterations
	}
	if cfg.set["temperature"] {
		opts.InitialTemperature = cfg.temperature
	}
	if cfg.set["cooling"] {
		opts.CoolingStep = cfg.cooling
	}
	if cfg.set["seed"] {
		opts.Seed = cfg.seed
	}
	opts.VerifyPermutations = cfg.verify
	return opts
}

func displayName(in *instance.Instance) string {
	if in.Name != "" {
		return in.Name
	}
	return in.Kind().String()
}

// report prints the starting and the best configuration with their costs.
func report(w io.Writer, res anneal.Result) error {
	_, err := fmt.Fprintf(w, "initial: %s\ncost:    %.6f\nbest:    %s\ncost:    %.6f\n",
		anneal.DebugString(res.Initial), res.InitialCost,
		anneal.DebugString(res.Best), res.BestCost)
	return err
}
