package ports

import "context"

// Toolchain resolves host facts: the native compiler, the target triple and
// the platform sysroot. Implementations memoize their queries; none of them
// mutate process-wide state.
//
//go:generate mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// FindCompiler resolves the Swift compiler. Precedence: the explicit
	// override path, the SWIFT_EXEC environment hint, then platform
	// discovery. Returns domain.ErrCompilerNotFound when nothing yields an
	// existing path.
	FindCompiler(ctx context.Context, override string) (string, error)

	// TargetTriple returns the host target triple.
	TargetTriple(ctx context.Context) (string, error)

	// Sysroot returns the platform SDK root. ok is false on platforms
	// without an SDK registry; callers must branch.
	Sysroot(ctx context.Context) (sysroot string, ok bool)
}
