package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bootstrap/internal/app"
	"go.trai.ch/bootstrap/internal/core/domain"
	"go.trai.ch/bootstrap/internal/core/ports/mocks"
	"go.trai.ch/bootstrap/internal/engine/driver"
	"go.uber.org/mock/gomock"
)

func testComponents(t *testing.T) (*app.Components, *mocks.MockConfigLoader, *mocks.MockLogger) {
	t.Helper()

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	toolchain := mocks.NewMockToolchain(ctrl)
	runner := mocks.NewMockRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	a := app.New(loader, toolchain, driver.New(toolchain, runner, logger), logger)
	return &app.Components{App: a, Logger: logger}, loader, logger
}

func TestRun_Success(t *testing.T) {
	components, _, logger := testComponents(t)
	logger.EXPECT().Info(gomock.Any())

	stderr := &bytes.Buffer{}
	code := run(context.Background(),
		[]string{"clean", "--build-dir", filepath.Join(t.TempDir(), "missing")},
		stderr,
		func(context.Context) (*app.Components, error) { return components, nil },
	)

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr.String())
}

func TestRun_ProviderFailure(t *testing.T) {
	stderr := &bytes.Buffer{}
	code := run(context.Background(), nil, stderr,
		func(context.Context) (*app.Components, error) { return nil, assert.AnError },
	)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error: ")
}

func TestRun_CommandFailure(t *testing.T) {
	components, loader, logger := testComponents(t)
	loader.EXPECT().Load(gomock.Any()).Return(domain.Defaults{}, domain.ErrConfigReadFailed)
	logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		require.ErrorIs(t, err, domain.ErrConfigReadFailed)
	})

	stderr := &bytes.Buffer{}
	code := run(context.Background(), []string{"build"}, stderr,
		func(context.Context) (*app.Components, error) { return components, nil },
	)

	assert.Equal(t, 1, code)
}
