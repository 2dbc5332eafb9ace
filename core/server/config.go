package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// CacheTTLSeconds is how long a built dataset is served before rebuilding.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"3600"`
	// RefreshCron schedules background rebuilds (robfig/cron syntax). Empty disables them.
	RefreshCron string `mapstructure:"refresh_cron" default:""`
}

// CacheTTL returns the dataset cache lifetime. Negative values disable caching.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// HasRefresh reports whether background refresh is configured.
func (c Config) HasRefresh() bool {
	return c.RefreshCron != ""
}
