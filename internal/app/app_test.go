package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bootstrap/internal/app"
	"go.trai.ch/bootstrap/internal/core/domain"
	"go.trai.ch/bootstrap/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const testTriple = "x86_64-unknown-linux-gnu"

type fixture struct {
	loader    *mocks.MockConfigLoader
	toolchain *mocks.MockToolchain
	logger    *mocks.MockLogger
	app       *app.App
}

func newFixture(t *testing.T, root string) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		loader:    mocks.NewMockConfigLoader(ctrl),
		toolchain: mocks.NewMockToolchain(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	f.app = app.New(f.loader, f.toolchain, nil, f.logger).
		WithGetwd(func() (string, error) { return root, nil })
	return f
}

func TestApp_Assemble(t *testing.T) {
	t.Run("is deterministic for identical inputs", func(t *testing.T) {
		f := newFixture(t, "/work/swiftpm")
		f.loader.EXPECT().Load("/work/swiftpm").Return(domain.Defaults{}, nil).Times(2)
		f.toolchain.EXPECT().FindCompiler(gomock.Any(), "").Return("/usr/bin/swiftc", nil).Times(2)
		f.toolchain.EXPECT().TargetTriple(gomock.Any()).Return(testTriple, nil).Times(2)

		opts := app.BuildOptions{BuildDir: "/work/swiftpm/.build"}
		first, err := f.app.Assemble(context.Background(), opts)
		require.NoError(t, err)
		second, err := f.app.Assemble(context.Background(), opts)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("derives the bin dir from triple and mode", func(t *testing.T) {
		for _, tt := range []struct {
			release bool
			want    string
		}{
			{release: false, want: "debug"},
			{release: true, want: "release"},
		} {
			f := newFixture(t, "/work/swiftpm")
			f.loader.EXPECT().Load("/work/swiftpm").Return(domain.Defaults{}, nil)
			f.toolchain.EXPECT().FindCompiler(gomock.Any(), "").Return("/usr/bin/swiftc", nil)
			f.toolchain.EXPECT().TargetTriple(gomock.Any()).Return(testTriple, nil)

			cfg, err := f.app.Assemble(context.Background(), app.BuildOptions{
				BuildDir: "/work/swiftpm/.build",
				Release:  tt.release,
			})
			require.NoError(t, err)

			assert.Equal(t, filepath.Join("/work/swiftpm/.build", testTriple, tt.want), cfg.BinDir)
			assert.Equal(t, filepath.Join("/work/swiftpm/.build", testTriple, "bootstrap"), cfg.BootstrapDir)
		}
	})

	t.Run("flags take precedence over file defaults", func(t *testing.T) {
		f := newFixture(t, "/work/swiftpm")
		f.loader.EXPECT().Load("/work/swiftpm").Return(domain.Defaults{
			BuildDir: "/from-file",
			Compiler: "/from-file/swiftc",
		}, nil)
		f.toolchain.EXPECT().FindCompiler(gomock.Any(), "/from-flag/swiftc").Return("/from-flag/swiftc", nil)
		f.toolchain.EXPECT().TargetTriple(gomock.Any()).Return(testTriple, nil)

		cfg, err := f.app.Assemble(context.Background(), app.BuildOptions{
			BuildDir: "/flag-build",
			Compiler: "/from-flag/swiftc",
		})
		require.NoError(t, err)

		assert.Equal(t, "/flag-build", cfg.BuildDir)
		assert.Equal(t, "/from-flag/swiftc", cfg.CompilerPath)
	})

	t.Run("file defaults fill in missing flags", func(t *testing.T) {
		f := newFixture(t, "/work/swiftpm")
		f.loader.EXPECT().Load("/work/swiftpm").Return(domain.Defaults{
			BuildDir:     "/file-build",
			Compiler:     "/file/swiftc",
			DepSourceDir: "/checkouts/llbuild",
		}, nil)
		f.toolchain.EXPECT().FindCompiler(gomock.Any(), "/file/swiftc").Return("/file/swiftc", nil)
		f.toolchain.EXPECT().TargetTriple(gomock.Any()).Return(testTriple, nil)

		cfg, err := f.app.Assemble(context.Background(), app.BuildOptions{})
		require.NoError(t, err)

		assert.Equal(t, "/file-build", cfg.BuildDir)
		assert.Equal(t, "/checkouts/llbuild", cfg.DepSourceDir)
		assert.False(t, cfg.DepPrebuilt)
	})

	t.Run("dependency source defaults to a sibling checkout", func(t *testing.T) {
		f := newFixture(t, "/work/swiftpm")
		f.loader.EXPECT().Load("/work/swiftpm").Return(domain.Defaults{}, nil)
		f.toolchain.EXPECT().FindCompiler(gomock.Any(), "").Return("/usr/bin/swiftc", nil)
		f.toolchain.EXPECT().TargetTriple(gomock.Any()).Return(testTriple, nil)

		cfg, err := f.app.Assemble(context.Background(), app.BuildOptions{BuildDir: "/b"})
		require.NoError(t, err)

		assert.Equal(t, filepath.Join("/work/swiftpm", "..", "llbuild"), cfg.DepSourceDir)
	})

	t.Run("a pre-built dependency location disables stage one", func(t *testing.T) {
		f := newFixture(t, "/work/swiftpm")
		f.loader.EXPECT().Load("/work/swiftpm").Return(domain.Defaults{
			DepBuildDir: "/prebuilt/llbuild",
		}, nil)
		f.toolchain.EXPECT().FindCompiler(gomock.Any(), "").Return("/usr/bin/swiftc", nil)
		f.toolchain.EXPECT().TargetTriple(gomock.Any()).Return(testTriple, nil)

		cfg, err := f.app.Assemble(context.Background(), app.BuildOptions{BuildDir: "/b"})
		require.NoError(t, err)

		assert.True(t, cfg.DepPrebuilt)
		assert.Equal(t, "/prebuilt/llbuild", cfg.DepBuildDir)
	})

	t.Run("propagates loader failures", func(t *testing.T) {
		f := newFixture(t, "/work/swiftpm")
		f.loader.EXPECT().Load("/work/swiftpm").Return(domain.Defaults{}, domain.ErrConfigParseFailed)

		_, err := f.app.Assemble(context.Background(), app.BuildOptions{})

		require.ErrorIs(t, err, domain.ErrConfigParseFailed)
	})

	t.Run("propagates compiler discovery failures", func(t *testing.T) {
		f := newFixture(t, "/work/swiftpm")
		f.loader.EXPECT().Load("/work/swiftpm").Return(domain.Defaults{}, nil)
		f.toolchain.EXPECT().FindCompiler(gomock.Any(), "").Return("", domain.ErrCompilerNotFound)

		_, err := f.app.Assemble(context.Background(), app.BuildOptions{})

		require.ErrorIs(t, err, domain.ErrCompilerNotFound)
	})
}

func TestApp_Clean(t *testing.T) {
	t.Run("removes the build root", func(t *testing.T) {
		buildDir := filepath.Join(t.TempDir(), ".build")
		require.NoError(t, os.MkdirAll(filepath.Join(buildDir, "t", "debug"), 0o750))

		f := newFixture(t, "/work/swiftpm")
		f.logger.EXPECT().Info(gomock.Any())

		require.NoError(t, f.app.Clean(context.Background(), app.CleanOptions{BuildDir: buildDir}))

		_, err := os.Stat(buildDir)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("a missing build root is a success", func(t *testing.T) {
		f := newFixture(t, "/work/swiftpm")
		f.logger.EXPECT().Info(gomock.Any())

		err := f.app.Clean(context.Background(), app.CleanOptions{
			BuildDir: filepath.Join(t.TempDir(), "does-not-exist"),
		})

		assert.NoError(t, err)
	})

	t.Run("is idempotent", func(t *testing.T) {
		buildDir := filepath.Join(t.TempDir(), ".build")
		require.NoError(t, os.MkdirAll(buildDir, 0o750))

		f := newFixture(t, "/work/swiftpm")
		f.logger.EXPECT().Info(gomock.Any()).Times(2)

		require.NoError(t, f.app.Clean(context.Background(), app.CleanOptions{BuildDir: buildDir}))
		require.NoError(t, f.app.Clean(context.Background(), app.CleanOptions{BuildDir: buildDir}))
	})
}
