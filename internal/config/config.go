package config

// Config holds runtime configuration for the server.
type Config struct {
	Port      string
	LogLevel  string
	LogFormat string
	ESPN      ESPNConfig
	NBACom    NBAComConfig
	Cache     CacheConfig
	Leaders   LeadersConfig
	Standings StandingsConfig
	Search    SearchConfig
	Metrics   MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:      envOrDefault(envPort, defaultPort),
		LogLevel:  envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat: envOrDefault(envLogFormat, defaultLogFormat),
		ESPN:      loadESPN(),
		NBACom:    loadNBACom(),
		Cache:     loadCache(),
		Leaders:   loadLeaders(),
		Standings: loadStandings(),
		Search:    loadSearch(),
		Metrics:   loadMetrics(),
	}
}

// CacheConfig carries per-payload TTLs for the read-through response cache.
type CacheConfig struct {
	ScoreboardTTL Duration
	StandingsTTL  Duration
	StatsTTL      Duration
	RosterTTL     Duration
}

func loadCache() CacheConfig {
	return CacheConfig{
		ScoreboardTTL: durationEnvOrDefault(envScoreboardTTL, defaultScoreboardTTL),
		StandingsTTL:  durationEnvOrDefault(envStandingsTTL, defaultStandingsTTL),
		StatsTTL:      durationEnvOrDefault(envStatsTTL, defaultStatsTTL),
		RosterTTL:     durationEnvOrDefault(envRosterTTL, defaultRosterTTL),
	}
}

// SearchConfig bounds player search input and output sizes.
type SearchConfig struct {
	MaxResults  int
	MinQueryLen int
}

func loadSearch() SearchConfig {
	return SearchConfig{
		MaxResults:  intEnvOrDefault(envSearchMaxResults, defaultSearchMaxResults),
		MinQueryLen: intEnvOrDefault(envSearchMinQuery, defaultSearchMinQuery),
	}
}
