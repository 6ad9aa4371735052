package config

import "time"

const (
	envEspnSiteBaseURL   = "ESPN_SITE_BASE_URL"
	envEspnCommonBaseURL = "ESPN_COMMON_BASE_URL"
	envEspnWebBaseURL    = "ESPN_WEB_BASE_URL"
	envEspnCoreBaseURL   = "ESPN_CORE_BASE_URL"
	envEspnTimeout       = "ESPN_TIMEOUT"
	envEspnMaxRetries    = "ESPN_MAX_RETRIES"
	envEspnRatePerSecond = "ESPN_RATE_PER_SECOND"

	defaultEspnSiteBaseURL   = "https://site.api.espn.com/apis/site/v2/sports/basketball/nba"
	defaultEspnCommonBaseURL = "https://site.api.espn.com/apis/common/v3/sports/basketball/nba"
	defaultEspnWebBaseURL    = "https://site.web.api.espn.com/apis/common/v3/sports/basketball/nba"
	defaultEspnCoreBaseURL   = "https://sports.core.api.espn.com/v2/sports/basketball/leagues/nba"
	defaultEspnTimeout       = 10 * Duration(time.Second)
	defaultEspnMaxRetries    = 2
	defaultEspnRatePerSecond = 8
)

// ESPNConfig controls how we talk to the ESPN endpoints. The four base URLs
// map to the distinct API families ESPN splits its data across.
type ESPNConfig struct {
	SiteBaseURL   string
	CommonBaseURL string
	WebBaseURL    string
	CoreBaseURL   string
	Timeout       Duration
	MaxRetries    int
	RatePerSecond int
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		SiteBaseURL:   envOrDefault(envEspnSiteBaseURL, defaultEspnSiteBaseURL),
		CommonBaseURL: envOrDefault(envEspnCommonBaseURL, defaultEspnCommonBaseURL),
		WebBaseURL:    envOrDefault(envEspnWebBaseURL, defaultEspnWebBaseURL),
		CoreBaseURL:   envOrDefault(envEspnCoreBaseURL, defaultEspnCoreBaseURL),
		Timeout:       durationEnvOrDefault(envEspnTimeout, defaultEspnTimeout),
		MaxRetries:    intEnvOrDefault(envEspnMaxRetries, defaultEspnMaxRetries),
		RatePerSecond: intEnvOrDefault(envEspnRatePerSecond, defaultEspnRatePerSecond),
	}
}
