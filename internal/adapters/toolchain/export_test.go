package toolchain

import "go.trai.ch/bootstrap/internal/core/ports"

// NewResolverForTest creates a Resolver with an injected host environment.
func NewResolverForTest(
	runner ports.Runner,
	goos string,
	getenv func(string) string,
	lookPath func(string) (string, error),
) *Resolver {
	return &Resolver{
		runner:   runner,
		goos:     goos,
		getenv:   getenv,
		lookPath: lookPath,
		facts:    make(map[string]string),
	}
}
