package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.ESPN.SiteBaseURL != defaultEspnSiteBaseURL {
		t.Fatalf("unexpected ESPN site base URL: %s", cfg.ESPN.SiteBaseURL)
	}
	if cfg.NBACom.StaticBaseURL != defaultNBAStaticBaseURL {
		t.Fatalf("unexpected NBA static base URL: %s", cfg.NBACom.StaticBaseURL)
	}
	if cfg.Leaders.MinPPG != defaultLeadersMinPPG {
		t.Fatalf("expected min PPG %v, got %v", defaultLeadersMinPPG, cfg.Leaders.MinPPG)
	}
	if cfg.Leaders.BatchSize != defaultLeadersBatchSize {
		t.Fatalf("expected batch size %d, got %d", defaultLeadersBatchSize, cfg.Leaders.BatchSize)
	}
	if cfg.Standings.ScanDays != defaultStandingsScanDays {
		t.Fatalf("expected scan days %d, got %d", defaultStandingsScanDays, cfg.Standings.ScanDays)
	}
	if cfg.Search.MaxResults != defaultSearchMaxResults {
		t.Fatalf("expected max results %d, got %d", defaultSearchMaxResults, cfg.Search.MaxResults)
	}
	if !cfg.Metrics.Enabled {
		t.Fatalf("expected metrics enabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("LEADERS_MIN_PPG", "10.5")
	t.Setenv("LEADERS_BATCH_DELAY", "1s")
	t.Setenv("STANDINGS_SCAN_DAYS", "3")
	t.Setenv("CACHE_SCOREBOARD_TTL", "15s")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected port override, got %s", cfg.Port)
	}
	if cfg.Leaders.MinPPG != 10.5 {
		t.Fatalf("expected min PPG override, got %v", cfg.Leaders.MinPPG)
	}
	if cfg.Leaders.BatchDelay != time.Second {
		t.Fatalf("expected batch delay override, got %v", cfg.Leaders.BatchDelay)
	}
	if cfg.Standings.ScanDays != 3 {
		t.Fatalf("expected scan days override, got %d", cfg.Standings.ScanDays)
	}
	if cfg.Cache.ScoreboardTTL != 15*time.Second {
		t.Fatalf("expected scoreboard TTL override, got %v", cfg.Cache.ScoreboardTTL)
	}
}
