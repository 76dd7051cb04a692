package bench

// benchmarksConfig holds all parameters for each benchmark.
type benchmarksConfig struct {
	benchmarkSimpleConfig
	benchmarkComplexConfig
	benchmarkManyConfig
	benchmarkLargeConfig
}

func getMattnConfig() benchmarksConfig {
	return benchmarksConfig{
		benchmarkSimpleConfig: benchmarkSimpleConfig{
			insertXUsers: 100_000,
		},

		benchmarkComplexConfig: benchmarkComplexConfig{
			insertXUsers:              200,
			insertYArticlesPerUser:    100,
			insertZCommentsPerArticle: 20,
		},

		benchmarkManyConfig: benchmarkManyConfig{
			insertXUsers:     1_000,
			queryUsersYTimes: 1_000,
		},

		benchmarkLargeConfig: benchmarkLargeConfig{
			insertXUsers: 10_000,
			insertYBytes: 10_000,
		},
	}
}

// getWrapperConfig mirrors the mattn workload sizes so the two result tables
// compare like for like.
func getWrapperConfig() benchmarksConfig {
	return getMattnConfig()
}
