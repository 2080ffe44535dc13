// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/bootstrap/internal/core/domain"
)

// Runner executes external commands.
//
// A nonzero exit or spawn failure yields an error whose message carries the
// literal command line, so failures are diagnosable after the fact. Runners
// never retry; one failure aborts the encompassing stage.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes the command, forwarding its output.
	Run(ctx context.Context, cmd domain.Command) error

	// RunOutput executes the command and returns its captured stdout.
	RunOutput(ctx context.Context, cmd domain.Command) (string, error)
}
