package bench

import (
	"fmt"
	"time"

	"github.com/go4sqlite/go4sqlite/internal/bench/benchbar"
	"github.com/google/uuid"
)

type benchmarkManyConfig struct {
	insertXUsers     int
	queryUsersYTimes int
}

// runBenchmarkMany inserts X users in a single transaction and then queries
// all users Y times. This simulates a read-heavy workload.
func runBenchmarkMany(
	drv benchDriver, fullConfig benchmarksConfig,
) (benchmarkResult, error) {
	conf := fullConfig.benchmarkManyConfig
	start := time.Now()
	var totalReads, totalWrites uint64

	if err := drv.Begin(); err != nil {
		return benchmarkResult{}, err
	}

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

	if err := drv.Commit(); err != nil {
		return benchmarkResult{}, err
	}
	bar.Finish()

	bar = benchbar.NewBar(
		fmt.Sprintf("Querying all users %d times", conf.queryUsersYTimes),
		conf.queryUsersYTimes,
	)

	for i := 0; i < conf.queryUsersYTimes; i++ {
		reads, err := drv.CountRows(
			"SELECT id, created, email, active FROM users ORDER BY id",
		)
		if err != nil {
			return benchmarkResult{}, fmt.Errorf("error when querying: %w", err)
		}
		totalReads += reads
		bar.Inc()
	}
	bar.Finish()

	return benchmarkResult{
		Name:        "Many",
		Duration:    time.Since(start),
		TotalReads:  totalReads,
		TotalWrites: totalWrites,
	}, nil
}
