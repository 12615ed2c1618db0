package service

import (
	"log/slog"

	"github.com/xolan/tog/internal/catalog"
	"github.com/xolan/tog/internal/config"
	"github.com/xolan/tog/internal/timeutil"
	"github.com/xolan/tog/internal/toggl"
)

// Services holds all service instances used by the application
type Services struct {
	Timer   *TimerService
	Config  *ConfigService
	Catalog catalog.Catalog
}

// NewServices loads the configuration from the default paths and wires a
// remote client for it.
func NewServices(version string, logger *slog.Logger) (*Services, error) {
	paths, err := config.GetPaths()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Resolve(paths)
	if err != nil {
		return nil, err
	}

	return NewServicesWithConfig(cfg, paths.Config, version, logger)
}

// NewServicesWithConfig creates a Services instance from an already resolved
// configuration (useful for testing)
func NewServicesWithConfig(cfg config.Config, configPath, version string, logger *slog.Logger) (*Services, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	clock := timeutil.Clock(loc)

	userAgent := toggl.CreatedWith
	if version != "" {
		userAgent += "/" + version
	}

	client := toggl.NewClient(toggl.ClientConfig{
		BaseURL:   cfg.BaseURL,
		Token:     cfg.APIToken,
		Timeout:   cfg.Timeout,
		UserAgent: userAgent,
		Now:       clock,
	}, logger)

	return &Services{
		Timer:   NewTimerService(client, cfg.Projects, WithClock(clock), WithLogger(logger)),
		Config:  NewConfigService(configPath, cfg),
		Catalog: cfg.Projects,
	}, nil
}
