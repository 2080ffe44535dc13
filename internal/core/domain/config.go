// Package domain holds the core types of the bootstrap orchestrator.
package domain

import "path/filepath"

// Mode selects the build configuration of the self-hosted stage.
type Mode string

const (
	// ModeDebug is the default build configuration.
	ModeDebug Mode = "debug"
	// ModeRelease enables release optimization in the self-hosted stage.
	ModeRelease Mode = "release"
)

// Config is the fully resolved build configuration for one invocation.
// It is assembled once from flags, file defaults and host facts, and is
// immutable afterwards; every stage consumes the same value.
type Config struct {
	// ProjectRoot is the package manager checkout being bootstrapped.
	ProjectRoot string

	// BuildDir is the absolute build root.
	BuildDir string

	// TargetTriple is the host triple, e.g. "x86_64-unknown-linux-gnu".
	TargetTriple string

	// CompilerPath is the resolved Swift compiler.
	CompilerPath string

	// Mode is debug or release.
	Mode Mode

	// Verbose echoes commands before execution. It never changes control flow.
	Verbose bool

	// TargetDir is BuildDir/TargetTriple.
	TargetDir string

	// BinDir is TargetDir/Mode; the self-built products land here.
	BinDir string

	// BootstrapDir is the CMake staging directory, TargetDir/bootstrap.
	BootstrapDir string

	// DepSourceDir is the llbuild source tree.
	DepSourceDir string

	// DepBuildDir is where llbuild is (or was) built.
	DepBuildDir string

	// DepPrebuilt skips the dependency stage; DepBuildDir was supplied by the
	// caller and is consumed as-is.
	DepPrebuilt bool

	// LinkFramework consumes llbuild as a linkable framework bundle instead
	// of a conventional library+headers pair.
	LinkFramework bool

	// InstallPrefix is passed to the bootstrap configure and used by install.
	InstallPrefix string

	// InstallLibSwiftPM additionally installs the package manager libraries.
	InstallLibSwiftPM bool
}

// DeriveDirs fills the directory fields computed from BuildDir, TargetTriple
// and Mode. Callers set the base fields first.
func (c *Config) DeriveDirs() {
	c.TargetDir = filepath.Join(c.BuildDir, c.TargetTriple)
	c.BinDir = filepath.Join(c.TargetDir, string(c.Mode))
	c.BootstrapDir = filepath.Join(c.TargetDir, BootstrapDirName)
	if c.DepBuildDir == "" {
		c.DepBuildDir = filepath.Join(c.TargetDir, DependencyDirName)
	}
}

// Defaults are optional per-project defaults loaded from bootstrap.yaml.
// Zero values mean "not set"; flags always win over file values.
type Defaults struct {
	BuildDir      string
	Compiler      string
	DepSourceDir  string
	DepBuildDir   string
	LinkFramework bool
	InstallPrefix string
}
