package ports

import "go.trai.ch/mum/internal/core/domain"

// ConfigLoader defines the interface for loading session settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the settings for a session started in cwd.
	// If path is non-empty it names the config file explicitly; otherwise the
	// loader searches cwd and its parents, falling back to defaults.
	Load(cwd, path string) (domain.Settings, error)
}
