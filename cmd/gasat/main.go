// Command gasat solves a DIMACS CNF problem with a genetic-algorithm and
// tabu-search hybrid search.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/kr/pretty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tarsat/gasat"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	verbose           bool
	metricsAddr       string
	populationSize    int
	subPopulationSize int
	maxGenerations    int
	maxFlip           int
	tabuListLength    int
	crossoverOperator int
	isRVCF            bool
	isDiversification bool
	maxFalse          int
	rec               int
	k                 int
	seed              int64
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "gasat [input.cnf]",
		Short: "A hybrid genetic-algorithm / tabu-search SAT solver",
		Long: `gasat reads a single problem specification in the DIMACS CNF format and
searches for a satisfying assignment using a population of candidate
assignments evolved under tabu-guided local search.

If no input file is given, gasat reads from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, f)
		},
	}
	registerFlags(cmd.Flags(), f)
	return cmd
}

// registerFlags binds f's fields to fs. It takes a *pflag.FlagSet
// directly (rather than going through cobra's Command wrapper) so the
// flag surface can be reused by anything that builds its own pflag-based
// entry point, not just the cobra command tree above.
func registerFlags(fs *pflag.FlagSet, f *flags) {
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose logging and assignment dumps")
	fs.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics at this address (e.g. :9090); disabled if empty")
	fs.IntVar(&f.populationSize, "population-size", gasat.DefaultConfig().PopulationSize, "population cardinality")
	fs.IntVar(&f.subPopulationSize, "sub-population-size", gasat.DefaultConfig().SubPopulationSize, "elite slice size for selection and replacement")
	fs.IntVar(&f.maxGenerations, "max-generations", gasat.DefaultConfig().MaxGenerations, "driver iteration cap")
	fs.IntVar(&f.maxFlip, "max-flip", gasat.DefaultConfig().MaxFlip, "tabu iteration cap per descent")
	fs.IntVar(&f.tabuListLength, "tabu-list-length", gasat.DefaultConfig().TabuListLength, "FIFO capacity of tabu memory")
	fs.IntVar(&f.crossoverOperator, "crossover-operator", int(gasat.DefaultConfig().CrossoverOperator), "0=CC, 1=CCTM, 2=FF")
	fs.BoolVar(&f.isRVCF, "rvcf", false, "use the refined variable choice function instead of Standard")
	fs.BoolVar(&f.isDiversification, "diversification", false, "enable the diversification branch of the tabu search")
	fs.IntVar(&f.maxFalse, "max-false", 0, "clause false-count threshold that triggers diversification")
	fs.IntVar(&f.rec, "rec", 0, "cascade depth of diversification's forced flips")
	fs.IntVar(&f.k, "k", 0, "forbidden-flip aging threshold")
	fs.Int64Var(&f.seed, "seed", 1, "random seed; reproduces the same run")
}

func runSolve(cmd *cobra.Command, args []string, f *flags) error {
	log := logrus.StandardLogger()
	if f.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	var r = os.Stdin
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		r = file
	}

	formula, err := gasat.ParseDIMACS(r)
	if err != nil {
		return err
	}

	cfg := gasat.DefaultConfig()
	cfg.PopulationSize = f.populationSize
	cfg.SubPopulationSize = f.subPopulationSize
	cfg.MaxGenerations = f.maxGenerations
	cfg.MaxFlip = f.maxFlip
	cfg.TabuListLength = f.tabuListLength
	cfg.CrossoverOperator = gasat.CrossoverOperator(f.crossoverOperator)
	cfg.IsRVCF = f.isRVCF
	cfg.IsDiversification = f.isDiversification
	cfg.MaxFalse = f.maxFalse
	cfg.Rec = f.rec
	cfg.K = f.k
	cfg.Seed = f.seed

	if err := cfg.Validate(); err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	metrics := gasat.NewMetrics(registry)
	if f.metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		server := &http.Server{Addr: f.metricsAddr, Handler: mux}
		go func() {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.WithError(err).Error("gasat: metrics server stopped")
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	controller := &gasat.Controller{}
	run, err := controller.Start(ctx, formula, cfg, log, metrics)
	if err != nil {
		return err
	}
	if f.verbose {
		run.Engine().AddObserver(func(ev gasat.ProgressEvent) {
			fmt.Fprintf(cmd.OutOrStdout(), "generation %d/%d best=%d child=%d\n",
				ev.Generation, ev.MaxGenerations, ev.BestFitness, ev.CurrentChildFitness)
		})
	}

	result, ev, err := run.Wait()
	if err != nil && err != gasat.ErrCancelled {
		return err
	}

	if f.verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "%# v\n", pretty.Formatter(ev))
	}

	if !ev.Solved {
		fmt.Fprintln(cmd.OutOrStdout(), "UNSAT (best effort, ", ev.FinalFitness, "unsatisfied clauses)")
		return printAssignment(cmd, result)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "SAT")
	return printAssignment(cmd, result)
}

func printAssignment(cmd *cobra.Command, a *gasat.Assignment) error {
	for v := 1; v <= a.NVars(); v++ {
		if v > 1 {
			fmt.Fprint(cmd.OutOrStdout(), " ")
		}
		lit := v
		if !a.Get(v) {
			lit = -v
		}
		fmt.Fprint(cmd.OutOrStdout(), lit)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
