package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// DirigentYAMLConfig represents the complete dirigent.yaml file structure
type DirigentYAMLConfig struct {
	Server  *ServerConfig  `yaml:"server"`
	Janitor *JanitorConfig `yaml:"janitor"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// A missing dirigent.yaml is not an error; built-in defaults apply.
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	log.Info("Configuration initialized successfully",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"stale_job_threshold", cfg.Janitor.StaleJobThreshold)
	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	var fileConfig DirigentYAMLConfig
	if err := loadYAML(filepath.Join(configDir, "dirigent.yaml"), &fileConfig); err != nil {
		if !os.IsNotExist(err) {
			return nil, NewLoadError("dirigent.yaml", err)
		}
		slog.Info("No dirigent.yaml found, using built-in defaults")
	}

	// Start with defaults, then merge user config on top so unset
	// fields keep their defaults.
	serverConfig := DefaultServerConfig()
	if fileConfig.Server != nil {
		if err := mergo.Merge(serverConfig, fileConfig.Server, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge server config: %w", err)
		}
	}

	janitorConfig := DefaultJanitorConfig()
	if fileConfig.Janitor != nil {
		if err := mergo.Merge(janitorConfig, fileConfig.Janitor, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge janitor config: %w", err)
		}
	}

	return &Config{
		configDir: configDir,
		Server:    serverConfig,
		Janitor:   janitorConfig,
	}, nil
}

func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port %d", ErrInvalidValue, cfg.Server.Port)
	}
	if cfg.Janitor.StaleJobThreshold <= 0 {
		return fmt.Errorf("%w: janitor.stale_job_threshold must be positive", ErrInvalidValue)
	}
	if cfg.Janitor.SweepInterval <= 0 {
		return fmt.Errorf("%w: janitor.sweep_interval must be positive", ErrInvalidValue)
	}
	if cfg.Janitor.EventTTL <= 0 {
		return fmt.Errorf("%w: janitor.event_ttl must be positive", ErrInvalidValue)
	}
	if cfg.Janitor.CleanupInterval <= 0 {
		return fmt.Errorf("%w: janitor.cleanup_interval must be positive", ErrInvalidValue)
	}
	return nil
}

func loadYAML(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return nil
}
