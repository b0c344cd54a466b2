package ports

import "go.trai.ch/makerun/internal/core/domain"

// ConfigLoader defines the interface for loading makerun settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves settings for the given working directory.
	//
	// If path is non-empty it names the config file, which must exist. Otherwise the
	// loader walks up from cwd looking for makerun.yaml and falls back to
	// domain.DefaultSettings when none is found.
	Load(cwd, path string) (domain.Settings, error)
}
