package config

import "time"

const (
	envLeadersLimit      = "LEADERS_LIMIT"
	envLeadersMinPPG     = "LEADERS_MIN_PPG"
	envLeadersBatchSize  = "LEADERS_BATCH_SIZE"
	envLeadersBatchDelay = "LEADERS_BATCH_DELAY"

	envStandingsScanDays = "STANDINGS_SCAN_DAYS"

	defaultLeadersLimit = 15
	// Rotation players below this scoring average are dropped from the
	// top-scorers list even when a source returns them.
	defaultLeadersMinPPG    = 15.0
	defaultLeadersBatchSize = 15
	// Pause between detail-fetch batches so the roster crawl stays polite.
	defaultLeadersBatchDelay = 250 * Duration(time.Millisecond)

	// How many days to walk back looking for a dated standings snapshot
	// before giving up on the scan strategy.
	defaultStandingsScanDays = 8
)

// LeadersConfig tunes the top-scorers pipeline.
type LeadersConfig struct {
	Limit      int
	MinPPG     float64
	BatchSize  int
	BatchDelay Duration
}

func loadLeaders() LeadersConfig {
	return LeadersConfig{
		Limit:      intEnvOrDefault(envLeadersLimit, defaultLeadersLimit),
		MinPPG:     floatEnvOrDefault(envLeadersMinPPG, defaultLeadersMinPPG),
		BatchSize:  intEnvOrDefault(envLeadersBatchSize, defaultLeadersBatchSize),
		BatchDelay: durationEnvOrDefault(envLeadersBatchDelay, defaultLeadersBatchDelay),
	}
}

// StandingsConfig tunes the standings date-scan fallback.
type StandingsConfig struct {
	ScanDays int
}

func loadStandings() StandingsConfig {
	return StandingsConfig{
		ScanDays: intEnvOrDefault(envStandingsScanDays, defaultStandingsScanDays),
	}
}
