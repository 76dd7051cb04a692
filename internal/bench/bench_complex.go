package bench

import (
	"fmt"
	"time"

	"github.com/go4sqlite/go4sqlite/internal/bench/benchbar"
	"github.com/google/uuid"
)

type benchmarkComplexConfig struct {
	insertXUsers              int
	insertYArticlesPerUser    int
	insertZCommentsPerArticle int
}

// runBenchmarkComplex inserts X users, each with Y articles, and each
// article with Z comments. Then it reads all users, articles, and comments
// back with a JOIN query.
func runBenchmarkComplex(
	drv benchDriver, fullConfig benchmarksConfig,
) (benchmarkResult, error) {
	conf := fullConfig.benchmarkComplexConfig
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
			return benchmarkResult{}, fmt.Errorf("error inserting users: %w", err)
		}
		totalWrites += uint64(affected)
		bar.Inc()
	}
	bar.Finish()

	totalArticles := conf.insertXUsers * conf.insertYArticlesPerUser
	bar = benchbar.NewBar(
		fmt.Sprintf("Inserting %d articles", totalArticles), totalArticles,
	)

	for idx := 0; idx < totalArticles; idx++ {
		userID := (idx % conf.insertXUsers) + 1
		affected, err := drv.Exec(
			"INSERT INTO articles (created, userId, text) VALUES (?, ?, ?)",
			time.Now().Unix(), userID, fmt.Sprintf("article for user %d", userID),
		)
		if err != nil {
			return benchmarkResult{}, fmt.Errorf("error inserting articles: %w", err)
		}
		totalWrites += uint64(affected)
		bar.Inc()
	}
	bar.Finish()

	totalComments := totalArticles * conf.insertZCommentsPerArticle
	bar = benchbar.NewBar(
		fmt.Sprintf("Inserting %d comments", totalComments), totalComments,
	)

	for idx := 0; idx < totalComments; idx++ {
		articleID := (idx % totalArticles) + 1
		affected, err := drv.Exec(
			"INSERT INTO comments (created, articleId, text) VALUES (?, ?, ?)",
			time.Now().Unix(), articleID, "comment",
		)
		if err != nil {
			return benchmarkResult{}, fmt.Errorf("error inserting comments: %w", err)
		}
		totalWrites += uint64(affected)
		bar.Inc()
	}
	bar.Finish()

	bar = benchbar.NewBar("Reading users, articles, and comments", 1)
	reads, err := drv.CountRows(`
		SELECT
		users.id, users.created, users.email, users.active,
		articles.id, articles.created, articles.userId, articles.text,
		comments.id, comments.created, comments.articleId, comments.text
		FROM users
		LEFT JOIN articles ON articles.userId = users.id
		LEFT JOIN comments ON comments.articleId = articles.id
		ORDER BY users.created, articles.created, comments.created
	`)
	if err != nil {
		return benchmarkResult{}, fmt.Errorf("error querying: %w", err)
	}
	totalReads += reads
	bar.Finish()

	return benchmarkResult{
		Name:        "Complex",
		Duration:    time.Since(start),
		TotalReads:  totalReads,
		TotalWrites: totalWrites,
	}, nil
}
