// Package driver implements the staged bootstrap pipeline.
//
// The pipeline is a fixed linear sequence: dependency build, native
// bootstrap build, self-hosted build, then optionally test or install.
// Stages run strictly one after another; a failing stage aborts everything
// after it. There is no retry and no partial-result recovery.
package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/bootstrap/internal/adapters/fsutil"
	"go.trai.ch/bootstrap/internal/core/domain"
	"go.trai.ch/bootstrap/internal/core/ports"
	"go.trai.ch/zerr"
)

// Driver orchestrates the bootstrap stages.
type Driver struct {
	toolchain ports.Toolchain
	runner    ports.Runner
	logger    ports.Logger
}

// New creates a new Driver.
func New(toolchain ports.Toolchain, runner ports.Runner, logger ports.Logger) *Driver {
	return &Driver{
		toolchain: toolchain,
		runner:    runner,
		logger:    logger,
	}
}

// Build runs stages 1-3: the dependency build (unless a pre-built location
// was supplied), the native bootstrap build, and the self-hosted build.
func (d *Driver) Build(ctx context.Context, cfg domain.Config) error {
	if !cfg.DepPrebuilt {
		if err := d.buildDependency(ctx, cfg); err != nil {
			return err
		}
	}

	if err := d.bootstrapBuild(ctx, cfg); err != nil {
		return err
	}

	return d.selfBuild(ctx, cfg)
}

// TestOptions configures the test stage.
type TestOptions struct {
	Parallel bool
	Filters  []string
}

// Test runs the self-built test runner. Callers run Build first.
func (d *Driver) Test(ctx context.Context, cfg domain.Config, opts TestOptions) error {
	d.logger.Info("testing the package manager")

	args := []string{filepath.Join(cfg.BinDir, "swift-test")}
	if opts.Parallel {
		args = append(args, "--parallel")
	}
	for _, filter := range opts.Filters {
		args = append(args, "--filter", filter)
	}

	return d.runSelfHosted(ctx, cfg, args)
}

// Install runs the external install step in the bootstrap directory.
// Callers run Build first.
func (d *Driver) Install(ctx context.Context, cfg domain.Config) error {
	d.logger.Info("installing build products")

	return d.runner.Run(ctx, domain.Command{
		Args: []string{"ninja", "install"},
		Dir:  cfg.BootstrapDir,
		Echo: cfg.Verbose,
	})
}

// buildDependency is stage 1: build llbuild in its own build directory.
// The next stage depends on this directory's layout by convention.
func (d *Driver) buildDependency(ctx context.Context, cfg domain.Config) error {
	d.logger.Info("building llbuild")

	// Ask CMake's file api for the codemodel so later stages can read the
	// build layout.
	apiDir := domain.CMakeAPIQueryDir(cfg.DepBuildDir)
	if err := fsutil.MkdirAll(apiDir); err != nil {
		return err
	}
	marker := filepath.Join(apiDir, "codemodel-v2")
	if err := os.WriteFile(marker, nil, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to create cmake file-api marker")
	}

	if !fsutil.Exists(cfg.DepSourceDir) {
		d.logger.Info("clone llbuild next to the project checkout; see the development docs")
		return zerr.With(domain.ErrDependencySourceNotFound, "path", cfg.DepSourceDir)
	}

	args := []string{
		"-DCMAKE_C_COMPILER:=clang",
		"-DCMAKE_CXX_COMPILER:=clang++",
		"-DLLBUILD_SUPPORT_BINDINGS:=Swift",
	}
	if sysroot, ok := d.toolchain.Sysroot(ctx); ok {
		args = append(args, "-DSQLite3_INCLUDE_DIR="+filepath.Join(sysroot, "usr", "include"))
	}

	return d.buildWithCMake(ctx, cfg, args, cfg.DepSourceDir, cfg.DepBuildDir)
}

// bootstrapBuild is stage 2: build the first-generation package manager
// with CMake against stage 1's output, then link the bootstrap runtime
// directory to a well-known path so the fresh binary finds its runtime.
func (d *Driver) bootstrapBuild(ctx context.Context, cfg domain.Config) error {
	d.logger.Info("building the package manager with cmake")

	args := []string{
		llbuildCMakeArg(cfg),
		"-DSWIFTPM_BUILD_DIR=" + cfg.BinDir,
		"-DUSE_VENDORED_TSC=ON",
		"-DCMAKE_INSTALL_PREFIX=" + cfg.InstallPrefix,
		"-DINSTALL_LIBSWIFTPM=" + onOff(cfg.InstallLibSwiftPM),
	}

	if err := d.buildWithCMake(ctx, cfg, args, cfg.ProjectRoot, cfg.BootstrapDir); err != nil {
		return err
	}

	return d.makeSymlinks(cfg)
}

// selfBuild is stage 3: rebuild the package manager with the binary stage 2
// just produced, validating that it is itself capable of driving the build.
func (d *Driver) selfBuild(ctx context.Context, cfg domain.Config) error {
	d.logger.Info("building the package manager with itself")

	args := []string{
		filepath.Join(cfg.BootstrapDir, "bin", "swift-build"),
		// Always build tests in the self-hosted stage.
		"--build-tests",
	}

	return d.runSelfHosted(ctx, cfg, args)
}

// runSelfHosted invokes the self-hosted tool with the environment overlay
// and the common build flags appended.
func (d *Driver) runSelfHosted(ctx context.Context, cfg domain.Config, args []string) error {
	return d.runner.Run(ctx, domain.Command{
		Args: append(args, buildFlags(cfg)...),
		Dir:  cfg.ProjectRoot,
		Env:  domain.NewOverlay(cfg).Strings(),
		Echo: cfg.Verbose,
	})
}

// makeSymlinks links the bootstrap runtime directory into the target
// directory so the first-generation binary locates its runtime libraries
// without extra environment configuration. Re-linking replaces whatever is
// already there.
func (d *Driver) makeSymlinks(cfg domain.Config) error {
	runtimesDir := domain.RuntimeLibDir(cfg.TargetDir)
	if err := fsutil.MkdirAll(runtimesDir); err != nil {
		return err
	}
	return fsutil.SymlinkForce(filepath.Join(cfg.BootstrapDir, "pm"), runtimesDir)
}

// buildFlags returns the flag set for self-hosted invocations.
func buildFlags(cfg domain.Config) []string {
	flags := []string{
		// No need for indexing while building.
		"--disable-index-store",
	}

	if cfg.Mode == domain.ModeRelease {
		flags = append(flags,
			"-Xswiftc", "-enable-testing",
			"--configuration", "release",
		)
	}

	return flags
}

// llbuildCMakeArg points the bootstrap configure at stage 1's output,
// either as a framework bundle or as a conventional cmake package.
func llbuildCMakeArg(cfg domain.Config) string {
	if cfg.LinkFramework {
		return fmt.Sprintf("-DLLBUILD_FRAMEWORK=%s", cfg.DepBuildDir)
	}
	return "-DLLBuild_DIR=" + filepath.Join(cfg.DepBuildDir, "cmake", "modules")
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}
