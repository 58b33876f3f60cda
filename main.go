package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"satmicro/parsers"
	"satmicro/sat"
)

var (
	flagStrategy     string
	flagMaxConflicts int64
	flagTimeout      time.Duration
	flagGzipped      bool
	flagVerbose      bool
	flagCPUProfile   bool
	flagMemProfile   bool
)

var rootCmd = &cobra.Command{
	Use:          "satmicro [flags] instance.cnf",
	Short:        "Decide the satisfiability of a DIMACS CNF formula",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0])
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagStrategy, "strategy", "cdcl", "search strategy: plain, backjump or cdcl")
	rootCmd.Flags().Int64Var(&flagMaxConflicts, "max-conflicts", -1, "maximum number of conflicts before giving up (-1 = no maximum)")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", -1, "time budget before giving up (-1 = no budget)")
	rootCmd.Flags().BoolVar(&flagGzipped, "gzip", false, "read the instance as a gzip compressed file")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log the solver's decisions and conflicts")
	rootCmd.Flags().BoolVar(&flagCPUProfile, "cpuprof", false, "save pprof CPU profile in cpuprof")
	rootCmd.Flags().BoolVar(&flagMemProfile, "memprof", false, "save pprof memory profile in memprof")
}

func solverOptions() (sat.Options, error) {
	strategy, err := sat.StrategyFromName(flagStrategy)
	if err != nil {
		return sat.Options{}, err
	}

	options := sat.DefaultOptions
	options.Strategy = strategy
	options.Logger = logrus.StandardLogger()
	if flagMaxConflicts >= 0 {
		options.MaxConflicts = flagMaxConflicts
	}
	if flagTimeout >= 0 {
		options.Timeout = flagTimeout
	}
	return options, nil
}

func run(instanceFile string) error {
	if flagVerbose {
		logrus.SetLevel(logrus.TraceLevel)
	}

	options, err := solverOptions()
	if err != nil {
		return err
	}

	if flagCPUProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			return err
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	s := sat.NewSolver(options)
	if err := parsers.LoadDIMACSFile(instanceFile, flagGzipped, s); err != nil {
		return fmt.Errorf("could not parse instance: %w", err)
	}

	fmt.Printf("c strategy:   %s\n", options.Strategy)
	fmt.Printf("c variables:  %d\n", s.NumVariables())
	fmt.Printf("c clauses:    %d\n", s.NumConstraints())

	t := time.Now()
	status := s.Solve()
	elapsed := time.Since(t)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c conflicts:  %d\n", s.TotalConflicts)
	fmt.Printf("c decisions:  %d\n", s.TotalDecisions)
	fmt.Printf("c learnts:    %d\n", s.NumLearnts())

	switch status {
	case sat.True:
		fmt.Println("s SATISFIABLE")
		fmt.Println(modelLine(s.Models[len(s.Models)-1]))
	case sat.False:
		fmt.Println("s UNSATISFIABLE")
	default:
		fmt.Println("s UNKNOWN")
	}

	if flagMemProfile {
		f, err := os.Create("memprof")
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return err
		}
	}

	return nil
}

// modelLine renders a model in the DIMACS output convention, e.g.
// "v 1 -2 3 0".
func modelLine(model []bool) string {
	lits := lo.Map(model, func(value bool, i int) string {
		if value {
			return strconv.Itoa(i + 1)
		}
		return strconv.Itoa(-(i + 1))
	})
	return "v " + strings.Join(lits, " ") + " 0"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
