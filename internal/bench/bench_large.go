package bench

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go4sqlite/go4sqlite/internal/bench/benchbar"
	"github.com/google/uuid"
)

type benchmarkLargeConfig struct {
	insertXUsers int
	insertYBytes int
}

// runBenchmarkLarge inserts X users carrying a Y-byte BLOB avatar each and
// then reads all of them back in a single query.
func runBenchmarkLarge(
	drv benchDriver, fullConfig benchmarksConfig,
) (benchmarkResult, error) {
	conf := fullConfig.benchmarkLargeConfig
	start := time.Now()
	var totalReads, totalWrites uint64

	avatar := bytes.Repeat([]byte{0xA5}, conf.insertYBytes)
	bar := benchbar.NewBar(
		fmt.Sprintf("Inserting %d users with %d byte avatars",
			conf.insertXUsers, conf.insertYBytes),
		conf.insertXUsers,
	)

	for i := 0; i < conf.insertXUsers; i++ {
		affected, err := drv.Exec(
			"INSERT INTO users (created, email, active, avatar) VALUES (?, ?, ?, ?)",
			time.Now().Unix(), uuid.NewString()+"@example.com", 1, avatar,
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
		"SELECT id, created, email, active, avatar FROM users ORDER BY id",
	)
	if err != nil {
		return benchmarkResult{}, fmt.Errorf("error when querying: %w", err)
	}
	totalReads += reads
	bar.Finish()

	return benchmarkResult{
		Name:        "Large",
		Duration:    time.Since(start),
		TotalReads:  totalReads,
		TotalWrites: totalWrites,
	}, nil
}
