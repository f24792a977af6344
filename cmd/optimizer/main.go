// Command optimizer is a one-shot CLI: it loads an armor catalog, optionally
// filters it by defense range, runs the chosen solver against a gold budget,
// and prints the selected armor with the measured solve time.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/avelsher/armory/internal/armory"
	"github.com/avelsher/armory/internal/catalog"
	"github.com/avelsher/armory/internal/logging"
	"github.com/avelsher/armory/internal/report"
)

func main() {
	_ = godotenv.Load()

	kingpinApp := kingpin.New("armory-optimizer", "Select the armor set maximizing defense within a gold budget")
	catalogPath := kingpinApp.Flag("catalog", "Path to the caret-delimited armor catalog file").Required().String()
	budget := kingpinApp.Flag("budget", "Gold budget the selection may spend").Required().Float64()
	solverName := kingpinApp.Flag("solver", "Solver to run: greedy, exhaustive, or both").Default("both").Enum("greedy", "exhaustive", "both")
	minDefense := kingpinApp.Flag("min-defense", "Lowest defense an item may have to be considered").Default("1").Float64()
	maxDefense := kingpinApp.Flag("max-defense", "Highest defense an item may have to be considered").Default("2500").Float64()
	limit := kingpinApp.Flag("limit", "Keep only the first N matching items (0 disables filtering)").Default("0").Int()

	kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	logger, err := logging.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	items, err := catalog.LoadFile(*catalogPath, logger)
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}
	if *limit > 0 {
		items = armory.Filter(items, *minDefense, *maxDefense, *limit)
	}

	if err := report.Write(os.Stdout, fmt.Sprintf("Catalog (%d items considered)", len(items)), items); err != nil {
		logger.Fatal("failed to write report", zap.Error(err))
	}

	solvers := map[string]armory.Solver{
		"greedy":     armory.NewGreedy(),
		"exhaustive": armory.NewExhaustive(),
	}
	names := []string{"greedy", "exhaustive"}
	if *solverName != "both" {
		names = []string{*solverName}
	}

	for _, name := range names {
		if err := runSolver(name, solvers[name], items, *budget); err != nil {
			logger.Fatal("solver failed", zap.String("solver", name), zap.Error(err))
		}
	}
}

func runSolver(name string, solver armory.Solver, items armory.Items, budget float64) error {
	start := time.Now()
	selected, err := solver.Select(items, budget)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	fmt.Println()
	title := fmt.Sprintf("%s solution (budget %g gold)", name, budget)
	if err := report.Write(os.Stdout, title, selected); err != nil {
		return err
	}
	fmt.Printf("> Solved in %s\n", elapsed)
	return nil
}
