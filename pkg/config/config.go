// Package config loads and validates dirigent.yaml plus environment
// overrides.
package config

import "time"

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application.
type Config struct {
	configDir string

	Server  *ServerConfig
	Janitor *JanitorConfig
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// ServerConfig groups HTTP server settings.
type ServerConfig struct {
	// Host the HTTP server binds to.
	Host string `yaml:"host"`

	// Port the HTTP server binds to.
	Port int `yaml:"port"`

	// AllowedWSOrigins is additional WebSocket origin patterns beyond
	// same-origin (e.g. a dashboard served from another host).
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`

	// WriteTimeout bounds a single WebSocket send.
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Host:         "0.0.0.0",
		Port:         8080,
		WriteTimeout: 10 * time.Second,
	}
}

// JanitorConfig controls the background maintenance loops.
type JanitorConfig struct {
	// StaleJobThreshold is how long a running job may go without a
	// runner event before the sweep force-fails it.
	StaleJobThreshold time.Duration `yaml:"stale_job_threshold"`

	// SweepInterval is how often the stale-job sweep runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`

	// SweepIntervalJitter is the random jitter added to SweepInterval
	// so multiple replicas don't sweep in lockstep.
	SweepIntervalJitter time.Duration `yaml:"sweep_interval_jitter"`

	// EventTTL is the maximum age of persisted catchup events.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often event cleanup and the counter audit run.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultJanitorConfig returns the built-in janitor defaults.
func DefaultJanitorConfig() *JanitorConfig {
	return &JanitorConfig{
		StaleJobThreshold:   30 * time.Minute,
		SweepInterval:       5 * time.Minute,
		SweepIntervalJitter: 30 * time.Second,
		EventTTL:            1 * time.Hour,
		CleanupInterval:     12 * time.Hour,
	}
}
