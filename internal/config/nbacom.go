package config

import "time"

const (
	envNBAStaticBaseURL = "NBA_STATIC_BASE_URL"
	envNBAStatsBaseURL  = "NBA_STATS_BASE_URL"
	envNBATimeout       = "NBA_TIMEOUT"
	envNBAMaxRetries    = "NBA_MAX_RETRIES"

	defaultNBAStaticBaseURL = "https://cdn.nba.com/static/json"
	defaultNBAStatsBaseURL  = "https://stats.nba.com/stats"
	defaultNBATimeout       = 12 * Duration(time.Second)
	defaultNBAMaxRetries    = 1
)

// NBAComConfig controls how we talk to the NBA.com CDN and stats endpoints.
type NBAComConfig struct {
	StaticBaseURL string
	StatsBaseURL  string
	Timeout       Duration
	MaxRetries    int
}

func loadNBACom() NBAComConfig {
	return NBAComConfig{
		StaticBaseURL: envOrDefault(envNBAStaticBaseURL, defaultNBAStaticBaseURL),
		StatsBaseURL:  envOrDefault(envNBAStatsBaseURL, defaultNBAStatsBaseURL),
		Timeout:       durationEnvOrDefault(envNBATimeout, defaultNBATimeout),
		MaxRetries:    intEnvOrDefault(envNBAMaxRetries, defaultNBAMaxRetries),
	}
}
