package bench

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go4sqlite/go4sqlite/internal/version"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// benchmarkResult stores the outcome of a benchmark.
type benchmarkResult struct {
	Name        string
	Duration    time.Duration
	TotalReads  uint64
	TotalWrites uint64
}

// Run executes the workloads against go4sqlite and database/sql with
// mattn/go-sqlite3, and prints both result tables.
func Run(ctx context.Context) error {
	fmt.Println(version.BenchVersion())

	tmpDir, err := os.MkdirTemp("", "go4sqlitebench_*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	wrapperDrv, err := createWrapperDriver(tmpDir)
	if err != nil {
		return fmt.Errorf("error opening go4sqlite db: %w", err)
	}
	defer wrapperDrv.Close()

	mattnDrv, err := createMattnDriver(tmpDir)
	if err != nil {
		return fmt.Errorf("error opening mattn/go-sqlite3 db: %w", err)
	}
	defer mattnDrv.Close()

	fmt.Println("\n--- Benchmarks for go4sqlite ---")
	wrapperResults, err := runBenchmark(wrapperDrv, getWrapperConfig())
	if err != nil {
		return fmt.Errorf("error benchmarking go4sqlite: %w", err)
	}
	printResults(wrapperResults)

	fmt.Println("\n--- Benchmarks for mattn/go-sqlite3 ---")
	mattnResults, err := runBenchmark(mattnDrv, getMattnConfig())
	if err != nil {
		return fmt.Errorf("error benchmarking mattn/go-sqlite3: %w", err)
	}
	printResults(mattnResults)

	return nil
}

func printResults(results []benchmarkResult) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Color.Header = text.Colors{text.FgCyan, text.Bold}
	tw.AppendHeader(table.Row{"Name", "Reads", "Writes", "Duration"})

	for _, r := range results {
		tw.AppendRow(table.Row{r.Name, r.TotalReads, r.TotalWrites, r.Duration})
	}

	fmt.Println(tw.Render())
}

// runBenchmark executes all benchmarks, and returns results.
//
// It recreates the schema before each benchmark.
func runBenchmark(drv benchDriver, cfg benchmarksConfig) ([]benchmarkResult, error) {
	benchs := []func(benchDriver, benchmarksConfig) (benchmarkResult, error){
		runBenchmarkSimple,
		runBenchmarkComplex,
		runBenchmarkMany,
		runBenchmarkLarge,
	}

	var results []benchmarkResult

	for _, bench := range benchs {
		if err := recreateSchema(drv); err != nil {
			return nil, err
		}

		res, err := bench(drv, cfg)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, nil
}
