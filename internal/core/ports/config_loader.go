package ports

import "go.trai.ch/bootstrap/internal/core/domain"

// ConfigLoader loads optional per-project defaults.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the defaults file from dir. A missing file is not an
	// error; it yields zero defaults.
	Load(dir string) (domain.Defaults, error)
}
