package domain

import (
	"path/filepath"
	"strings"
)

// Environment variables consumed and produced by the orchestrator.
const (
	// EnvCompilerOverride is read once at configure time to locate the
	// compiler when no --swiftc flag is given.
	EnvCompilerOverride = "SWIFT_EXEC"

	// EnvBuildDir tells the self-hosted build where the build root is.
	EnvBuildDir = "SWIFTPM_BUILD_DIR"

	// EnvRuntimeLibs points the self-hosted build at the bootstrap runtime
	// library directory.
	EnvRuntimeLibs = "SWIFTPM_PD_LIBS"

	// EnvBootstrap marks the self-hosted build as a bootstrap build when the
	// dependency is linked as a framework.
	EnvBootstrap = "SWIFTPM_BOOTSTRAP"

	// EnvUseLocalDeps selects local dependency checkouts over remote ones.
	EnvUseLocalDeps = "SWIFTCI_USE_LOCAL_DEPS"
)

// Var is a single environment assignment.
type Var struct {
	Key   string
	Value string
}

// Overlay is an ordered set of environment assignments scoped to a single
// child-process invocation. It is constructed fresh before each invocation
// of the self-hosted tool and never exported to the parent process.
type Overlay []Var

// NewOverlay builds the overlay for invoking the self-hosted tool.
func NewOverlay(cfg Config) Overlay {
	o := Overlay{
		{EnvCompilerOverride, cfg.CompilerPath},
		{EnvBuildDir, cfg.BuildDir},
		{EnvRuntimeLibs, filepath.Join(cfg.BootstrapDir, "pm")},
	}

	if cfg.LinkFramework {
		o = append(o,
			Var{"DYLD_FRAMEWORK_PATH", cfg.DepBuildDir},
			Var{EnvBootstrap, "1"},
		)
	} else {
		o = append(o, Var{EnvUseLocalDeps, "1"})
	}

	// Shared-library search paths for both platform loaders.
	libs := strings.Join([]string{
		filepath.Join(cfg.BootstrapDir, "lib"),
		filepath.Join(cfg.DepBuildDir, "lib"),
	}, ":")
	o = append(o,
		Var{"DYLD_LIBRARY_PATH", libs},
		Var{"LD_LIBRARY_PATH", libs},
	)

	return o
}

// Strings renders the overlay as KEY=VALUE pairs, preserving order.
func (o Overlay) Strings() []string {
	out := make([]string, 0, len(o))
	for _, v := range o {
		out = append(out, v.Key+"="+v.Value)
	}
	return out
}
