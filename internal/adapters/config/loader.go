// Package config loads the optional per-project defaults file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/bootstrap/internal/core/domain"
	"go.trai.ch/bootstrap/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads bootstrap.yaml from dir. A missing file yields zero defaults;
// flags always override file values.
func (l *Loader) Load(dir string) (domain.Defaults, error) {
	path := filepath.Join(dir, domain.DefaultsFileName)

	data, err := os.ReadFile(path) //nolint:gosec // project-local defaults file
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Defaults{}, nil
		}
		return domain.Defaults{}, errors.Join(domain.ErrConfigReadFailed, err)
	}

	var file defaultsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Defaults{}, errors.Join(
			zerr.With(domain.ErrConfigParseFailed, "path", path),
			err,
		)
	}

	return domain.Defaults{
		BuildDir:      file.BuildDir,
		Compiler:      file.Swiftc,
		DepSourceDir:  file.LLBuildSource,
		DepBuildDir:   file.LLBuildBuild,
		LinkFramework: file.LinkFramework,
		InstallPrefix: file.InstallPrefix,
	}, nil
}

var _ ports.ConfigLoader = (*Loader)(nil)
