package config

import "time"

const (
	envPort         = "PORT"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	envScoreboardTTL = "CACHE_SCOREBOARD_TTL"
	envStandingsTTL  = "CACHE_STANDINGS_TTL"
	envStatsTTL      = "CACHE_STATS_TTL"
	envRosterTTL     = "CACHE_ROSTER_TTL"

	envSearchMaxResults = "SEARCH_MAX_RESULTS"
	envSearchMinQuery   = "SEARCH_MIN_QUERY_LEN"

	defaultPort        = "4000"
	defaultLogLevel    = "info"
	defaultLogFormat   = "json"
	defaultMetricsPort = "9090"

	// Scoreboards change while games run; standings and season averages move
	// at most once a day.
	defaultScoreboardTTL = 60 * Duration(time.Second)
	defaultStandingsTTL  = 10 * Duration(time.Minute)
	defaultStatsTTL      = 30 * Duration(time.Minute)
	defaultRosterTTL     = 6 * Duration(time.Hour)

	defaultSearchMaxResults = 50
	defaultSearchMinQuery   = 2
)
