// Package app implements the application layer for bootstrap.
package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/bootstrap/internal/core/domain"
	"go.trai.ch/bootstrap/internal/core/ports"
	"go.trai.ch/bootstrap/internal/engine/driver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader    ports.ConfigLoader
	toolchain ports.Toolchain
	driver    *driver.Driver
	logger    ports.Logger

	// getwd resolves the project root; injectable for tests.
	getwd func() (string, error)
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	toolchain ports.Toolchain,
	d *driver.Driver,
	log ports.Logger,
) *App {
	return &App{
		loader:    loader,
		toolchain: toolchain,
		driver:    d,
		logger:    log,
		getwd:     os.Getwd,
	}
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	BuildDir string
	Compiler string
	Release  bool
	Verbose  bool
}

// TestOptions configuration for the Test method.
type TestOptions struct {
	BuildOptions
	Parallel bool
	Filters  []string
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	BuildDir string
	Verbose  bool
}

// InstallOptions configuration for the Install method.
type InstallOptions struct {
	BuildOptions
	Prefix     string
	LibSwiftPM bool
}

// Build runs stages 1-3 of the bootstrap pipeline.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	cfg, err := a.assemble(ctx, opts, "")
	if err != nil {
		return err
	}
	return a.driver.Build(ctx, cfg)
}

// Test builds, then runs the self-built test runner.
func (a *App) Test(ctx context.Context, opts TestOptions) error {
	cfg, err := a.assemble(ctx, opts.BuildOptions, "")
	if err != nil {
		return err
	}
	if err := a.driver.Build(ctx, cfg); err != nil {
		return err
	}
	return a.driver.Test(ctx, cfg, driver.TestOptions{
		Parallel: opts.Parallel,
		Filters:  opts.Filters,
	})
}

// Clean removes the build root. A missing build root is a success.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	buildDir := opts.BuildDir
	if buildDir == "" {
		buildDir = domain.DefaultBuildDirName
	}
	abs, err := filepath.Abs(buildDir)
	if err != nil {
		return errors.Join(domain.ErrCleanFailed, err)
	}

	a.logger.Info("cleaning " + abs)
	if err := os.RemoveAll(abs); err != nil {
		return errors.Join(domain.ErrCleanFailed, err)
	}
	return nil
}

// Install builds, then runs the external install step.
func (a *App) Install(ctx context.Context, opts InstallOptions) error {
	cfg, err := a.assemble(ctx, opts.BuildOptions, opts.Prefix)
	if err != nil {
		return err
	}
	cfg.InstallLibSwiftPM = opts.LibSwiftPM

	if err := a.driver.Build(ctx, cfg); err != nil {
		return err
	}
	return a.driver.Install(ctx, cfg)
}

// assemble turns parsed flags, file defaults and host facts into the fully
// resolved build configuration. It performs no build side effects and is
// deterministic given identical inputs and host facts.
func (a *App) assemble(ctx context.Context, opts BuildOptions, prefix string) (domain.Config, error) {
	root, err := a.getwd()
	if err != nil {
		return domain.Config{}, errors.Join(domain.ErrProjectRootFailed, err)
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return domain.Config{}, errors.Join(domain.ErrProjectRootFailed, err)
	}

	defaults, err := a.loader.Load(root)
	if err != nil {
		return domain.Config{}, err
	}

	buildDir := first(opts.BuildDir, defaults.BuildDir, domain.DefaultBuildDirName)
	buildDir, err = filepath.Abs(buildDir)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to resolve build directory")
	}

	compilerPath, err := a.toolchain.FindCompiler(ctx, first(opts.Compiler, defaults.Compiler))
	if err != nil {
		return domain.Config{}, err
	}

	triple, err := a.toolchain.TargetTriple(ctx)
	if err != nil {
		return domain.Config{}, err
	}

	mode := domain.ModeDebug
	if opts.Release {
		mode = domain.ModeRelease
	}

	cfg := domain.Config{
		ProjectRoot:   root,
		BuildDir:      buildDir,
		TargetTriple:  triple,
		CompilerPath:  compilerPath,
		Mode:          mode,
		Verbose:       opts.Verbose,
		DepSourceDir:  first(defaults.DepSourceDir, filepath.Join(root, "..", domain.DependencySourceName)),
		DepBuildDir:   defaults.DepBuildDir,
		DepPrebuilt:   defaults.DepBuildDir != "",
		LinkFramework: defaults.LinkFramework,
		InstallPrefix: first(prefix, defaults.InstallPrefix, domain.DefaultInstallPrefix),
	}
	cfg.DeriveDirs()

	return cfg, nil
}

// first returns the first non-empty value.
func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
