package domain

import "path/filepath"

const (
	// DefaultBuildDirName is the default build root, relative to the project root.
	DefaultBuildDirName = ".build"

	// BootstrapDirName is the CMake staging directory under the target directory.
	BootstrapDirName = "bootstrap"

	// DependencyDirName is the llbuild build directory under the target directory.
	DependencyDirName = "llbuild"

	// DependencySourceName is the llbuild checkout expected next to the project root.
	DependencySourceName = "llbuild"

	// CMakeCacheFileName marks a build directory as already configured.
	CMakeCacheFileName = "CMakeCache.txt"

	// ConfigureStampFileName records the configure argument digest next to the cache.
	ConfigureStampFileName = ".configure-stamp"

	// DefaultsFileName is the optional per-project defaults file.
	DefaultsFileName = "bootstrap.yaml"

	// DefaultInstallPrefix is where `install` places build products.
	DefaultInstallPrefix = "/usr"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// RuntimeLibDir returns the directory the self-built binary searches for its
// runtime libraries, under the given target directory.
func RuntimeLibDir(targetDir string) string {
	return filepath.Join(targetDir, "lib", "swift")
}

// CMakeAPIQueryDir returns the CMake file-api query directory for a build
// directory. The dependency build creates a codemodel marker there so later
// stages can read the build layout.
func CMakeAPIQueryDir(buildDir string) string {
	return filepath.Join(buildDir, ".cmake", "api", "v1", "query")
}
