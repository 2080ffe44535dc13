package app

import (
	"context"

	"go.trai.ch/bootstrap/internal/core/domain"
)

// Assemble exposes config assembly for tests.
func (a *App) Assemble(ctx context.Context, opts BuildOptions) (domain.Config, error) {
	return a.assemble(ctx, opts, "")
}

// WithGetwd injects the project root lookup for tests.
func (a *App) WithGetwd(getwd func() (string, error)) *App {
	a.getwd = getwd
	return a
}
