// Package fsutil provides the small set of filesystem operations the
// bootstrap pipeline needs.
package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/bootstrap/internal/core/domain"
	"go.trai.ch/zerr"
)

// MkdirAll creates dir and any missing parents. An "already exists"
// condition is tolerated; it can occur during a directory creation race.
func MkdirAll(dir string) error {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil && !errors.Is(err, fs.ErrExist) {
		return zerr.Wrap(err, "failed to create directory "+dir)
	}
	return nil
}

// SymlinkForce creates a symlink at link pointing to target, replacing any
// existing file or link at that path. When link is an existing directory,
// the link is created inside it under the target's base name.
func SymlinkForce(target, link string) error {
	if info, err := os.Stat(link); err == nil && info.IsDir() {
		link = filepath.Join(link, filepath.Base(target))
	}

	err := os.Symlink(target, link)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrExist) {
		return zerr.Wrap(err, "failed to create symlink "+link)
	}

	if err := os.Remove(link); err != nil {
		return zerr.Wrap(err, "failed to replace existing entry "+link)
	}
	if err := os.Symlink(target, link); err != nil {
		return zerr.Wrap(err, "failed to create symlink "+link)
	}
	return nil
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
