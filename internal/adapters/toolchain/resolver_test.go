package toolchain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bootstrap/internal/adapters/toolchain"
	"go.trai.ch/bootstrap/internal/core/domain"
)

// fakeRunner answers host-fact queries from a canned table, keyed by the
// rendered command line.
type fakeRunner struct {
	outputs map[string]string
	calls   []string
}

func (f *fakeRunner) Run(context.Context, domain.Command) error { return nil }

func (f *fakeRunner) RunOutput(_ context.Context, cmd domain.Command) (string, error) {
	key := cmd.String()
	f.calls = append(f.calls, key)
	out, ok := f.outputs[key]
	if !ok {
		return "", errors.New("unexpected command: " + key)
	}
	return out, nil
}

func noEnv(string) string { return "" }

func noLookPath(string) (string, error) { return "", errors.New("not found") }

func TestResolver_FindCompiler(t *testing.T) {
	t.Run("explicit override wins and is made absolute", func(t *testing.T) {
		r := toolchain.NewResolverForTest(&fakeRunner{}, "linux", noEnv, noLookPath)

		path, err := r.FindCompiler(context.Background(), "toolchain/bin/swiftc")

		require.NoError(t, err)
		wd, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(wd, "toolchain", "bin", "swiftc"), path)
	})

	t.Run("environment hint rewrites swift to swiftc", func(t *testing.T) {
		getenv := func(key string) string {
			if key == domain.EnvCompilerOverride {
				return "/toolchain/usr/bin/swift"
			}
			return ""
		}
		r := toolchain.NewResolverForTest(&fakeRunner{}, "linux", getenv, noLookPath)

		path, err := r.FindCompiler(context.Background(), "")

		require.NoError(t, err)
		assert.Equal(t, "/toolchain/usr/bin/swiftc", path)
	})

	t.Run("falls back to PATH discovery", func(t *testing.T) {
		lookPath := func(name string) (string, error) {
			require.Equal(t, "swiftc", name)
			return "/usr/local/bin/swiftc", nil
		}
		r := toolchain.NewResolverForTest(&fakeRunner{}, "linux", noEnv, lookPath)

		path, err := r.FindCompiler(context.Background(), "")

		require.NoError(t, err)
		assert.Equal(t, "/usr/local/bin/swiftc", path)
	})

	t.Run("darwin asks xcrun", func(t *testing.T) {
		compiler := filepath.Join(t.TempDir(), "swiftc")
		require.NoError(t, os.WriteFile(compiler, []byte("#!/bin/sh\n"), 0o755))

		runner := &fakeRunner{outputs: map[string]string{
			"xcrun --find swiftc": compiler + "\n",
		}}
		r := toolchain.NewResolverForTest(runner, "darwin", noEnv, noLookPath)

		path, err := r.FindCompiler(context.Background(), "")

		require.NoError(t, err)
		assert.Equal(t, compiler, path)
	})

	t.Run("reports a typed error when nothing is found", func(t *testing.T) {
		r := toolchain.NewResolverForTest(&fakeRunner{}, "linux", noEnv, noLookPath)

		_, err := r.FindCompiler(context.Background(), "")

		require.ErrorIs(t, err, domain.ErrCompilerNotFound)
	})

	t.Run("discovery runs once", func(t *testing.T) {
		calls := 0
		lookPath := func(string) (string, error) {
			calls++
			return "/usr/bin/swiftc", nil
		}
		r := toolchain.NewResolverForTest(&fakeRunner{}, "linux", noEnv, lookPath)

		for range 3 {
			_, err := r.FindCompiler(context.Background(), "")
			require.NoError(t, err)
		}

		assert.Equal(t, 1, calls)
	})
}

func TestResolver_TargetTriple(t *testing.T) {
	t.Run("darwin is fixed", func(t *testing.T) {
		r := toolchain.NewResolverForTest(&fakeRunner{}, "darwin", noEnv, noLookPath)

		triple, err := r.TargetTriple(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "x86_64-apple-macosx", triple)
	})

	t.Run("elsewhere the toolchain answers, once", func(t *testing.T) {
		runner := &fakeRunner{outputs: map[string]string{
			"clang --print-target-triple": "x86_64-unknown-linux-gnu\n",
		}}
		r := toolchain.NewResolverForTest(runner, "linux", noEnv, noLookPath)

		for range 3 {
			triple, err := r.TargetTriple(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "x86_64-unknown-linux-gnu", triple)
		}

		assert.Len(t, runner.calls, 1)
	})

	t.Run("query failure is typed", func(t *testing.T) {
		r := toolchain.NewResolverForTest(&fakeRunner{}, "linux", noEnv, noLookPath)

		_, err := r.TargetTriple(context.Background())

		require.ErrorIs(t, err, domain.ErrTargetTripleFailed)
	})
}

func TestResolver_Sysroot(t *testing.T) {
	t.Run("absent off darwin", func(t *testing.T) {
		r := toolchain.NewResolverForTest(&fakeRunner{}, "linux", noEnv, noLookPath)

		_, ok := r.Sysroot(context.Background())

		assert.False(t, ok)
	})

	t.Run("darwin asks the SDK registry, once", func(t *testing.T) {
		runner := &fakeRunner{outputs: map[string]string{
			"xcrun --sdk macosx --show-sdk-path": "/sdk/macosx\n",
		}}
		r := toolchain.NewResolverForTest(runner, "darwin", noEnv, noLookPath)

		for range 3 {
			sysroot, ok := r.Sysroot(context.Background())
			require.True(t, ok)
			assert.Equal(t, "/sdk/macosx", sysroot)
		}

		assert.Len(t, runner.calls, 1)
	})
}
