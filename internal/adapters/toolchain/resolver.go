// Package toolchain resolves host facts: the Swift compiler, the target
// triple and the platform sysroot.
package toolchain

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"go.trai.ch/bootstrap/internal/core/domain"
	"go.trai.ch/bootstrap/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// darwinTargetTriple is the fixed triple for the SDK-registry platform.
const darwinTargetTriple = "x86_64-apple-macosx"

// Resolver implements ports.Toolchain. Host-fact queries are lazy and
// memoized per Resolver, never held in process-wide state, so tests can
// inject a fake host environment.
type Resolver struct {
	runner   ports.Runner
	goos     string
	getenv   func(string) string
	lookPath func(string) (string, error)

	group singleflight.Group
	mu    sync.Mutex
	facts map[string]string
}

// NewResolver creates a Resolver backed by the real host environment.
func NewResolver(runner ports.Runner) *Resolver {
	return &Resolver{
		runner:   runner,
		goos:     runtime.GOOS,
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
		facts:    make(map[string]string),
	}
}

// FindCompiler resolves the Swift compiler. Precedence: the explicit
// override path, the SWIFT_EXEC environment hint (a bare "swift" basename
// is rewritten to its "swiftc" sibling), then platform discovery.
func (r *Resolver) FindCompiler(ctx context.Context, override string) (string, error) {
	if override != "" {
		abs, err := filepath.Abs(override)
		if err != nil {
			return "", errors.Join(domain.ErrCompilerNotFound, err)
		}
		return abs, nil
	}

	return r.memoized(ctx, "compiler", func(ctx context.Context) (string, error) {
		if hint := r.getenv(domain.EnvCompilerOverride); hint != "" {
			return normalizeCompilerHint(hint), nil
		}

		if r.goos == "darwin" {
			out, err := r.runner.RunOutput(ctx, domain.Command{
				Args: []string{"xcrun", "--find", "swiftc"},
			})
			if err != nil {
				return "", errors.Join(domain.ErrCompilerNotFound, err)
			}
			path := strings.TrimSpace(out)
			if !exists(path) {
				return "", zerr.With(domain.ErrCompilerNotFound, "path", path)
			}
			return path, nil
		}

		path, err := r.lookPath("swiftc")
		if err != nil {
			return "", errors.Join(domain.ErrCompilerNotFound, err)
		}
		return path, nil
	})
}

// TargetTriple returns the host target triple: a known value on the
// SDK-registry platform, the toolchain's own answer elsewhere.
func (r *Resolver) TargetTriple(ctx context.Context) (string, error) {
	if r.goos == "darwin" {
		return darwinTargetTriple, nil
	}

	return r.memoized(ctx, "triple", func(ctx context.Context) (string, error) {
		out, err := r.runner.RunOutput(ctx, domain.Command{
			Args: []string{"clang", "--print-target-triple"},
		})
		if err != nil {
			return "", errors.Join(domain.ErrTargetTripleFailed, err)
		}
		return strings.TrimSpace(out), nil
	})
}

// Sysroot returns the platform SDK root. It is absent on platforms without
// an SDK registry; callers must branch.
func (r *Resolver) Sysroot(ctx context.Context) (string, bool) {
	if r.goos != "darwin" {
		return "", false
	}

	sysroot, err := r.memoized(ctx, "sysroot", func(ctx context.Context) (string, error) {
		out, err := r.runner.RunOutput(ctx, domain.Command{
			Args: []string{"xcrun", "--sdk", "macosx", "--show-sdk-path"},
		})
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(out), nil
	})
	if err != nil || sysroot == "" {
		return "", false
	}
	return sysroot, true
}

// memoized returns the cached fact for key, computing it at most once even
// under concurrent callers.
func (r *Resolver) memoized(ctx context.Context, key string, fn func(context.Context) (string, error)) (string, error) {
	r.mu.Lock()
	if v, ok := r.facts[key]; ok {
		r.mu.Unlock()
		return v, nil
	}
	r.mu.Unlock()

	v, err, _ := r.group.Do(key, func() (any, error) {
		val, err := fn(ctx)
		if err != nil {
			return "", err
		}
		r.mu.Lock()
		r.facts[key] = val
		r.mu.Unlock()
		return val, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// normalizeCompilerHint resolves symlinks in the hint and rewrites a bare
// interpreter name to its compiler-suffixed sibling.
func normalizeCompilerHint(hint string) string {
	path := hint
	if resolved, err := filepath.EvalSymlinks(hint); err == nil {
		path = resolved
	}
	if filepath.Base(path) == "swift" {
		path += "c"
	}
	return path
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

var _ ports.Toolchain = (*Resolver)(nil)
