package domain

import "go.trai.ch/zerr"

var (
	// ErrCompilerNotFound is returned when no Swift compiler can be located
	// for the bootstrap build.
	ErrCompilerNotFound = zerr.New("unable to find 'swiftc' tool for bootstrap build")

	// ErrDependencySourceNotFound is returned when the llbuild checkout is
	// missing; it is expected next to the project root.
	ErrDependencySourceNotFound = zerr.New("unable to find llbuild source directory")

	// ErrTargetTripleFailed is returned when the host target triple cannot be
	// determined.
	ErrTargetTripleFailed = zerr.New("failed to determine host target triple")

	// ErrConfigReadFailed is returned when the defaults file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read defaults file")

	// ErrConfigParseFailed is returned when the defaults file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse defaults file")

	// ErrProjectRootFailed is returned when the project root cannot be resolved.
	ErrProjectRootFailed = zerr.New("failed to resolve project root")

	// ErrCleanFailed is returned when removing the build root fails.
	ErrCleanFailed = zerr.New("failed to remove build directory")
)
