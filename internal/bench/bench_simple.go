package bench

import (
	"fmt"
	"time"

	"github.com/go4sqlite/go4sqlite/internal/bench/benchbar"
	"github.com/google/uuid"
)

type benchmarkSimpleConfig struct {
	insertXUsers int
}

// runBenchmarkSimple inserts X users one statement at a time and then reads
// all of them back in a single query.
func runBenchmarkSimple(
	drv benchDriver, fullConfig benchmarksConfig,
) (benchmarkResult, error) {
	conf := fullConfig.benchmarkSimpleConfig
	start := time.Now()
	var totalReads, totalWrites uint64

	bar := benchbar.NewBar(
		fmt.Sprintf("Inserting %d users", conf.insertXUsers), conf.insertXUsers,
	)

	for i := 0; i < conf.insertXUsers; i++ {
		affected, err := drv.Exec(
			"INSERT INTO users (created, email, active) VALUES (?, ?, ?)",
			time.Now().Unix(), uuid.NewString()+"@example.com", 1,
		)
		if err != nil {
			return benchmarkResult{}, fmt.Errorf("error when inserting: %w", err)
		}
		totalWrites += uint64(affected)
		bar.Inc()
	}
	bar.Finish()

	bar = benchbar.NewBar("Reading users", 1)
	reads, err := drv.CountRows(
		"SELECT id, created, email, active FROM users ORDER BY id",
	)
	if err != nil {
		return benchmarkResult{}, fmt.Errorf("error when querying: %w", err)
	}
	totalReads += reads
	bar.Finish()

	return benchmarkResult{
		Name:        "Simple",
		Duration:    time.Since(start),
		TotalReads:  totalReads,
		TotalWrites: totalWrites,
	}, nil
}
