package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/bootstrap/internal/adapters/fsutil"
	"go.trai.ch/bootstrap/internal/core/domain"
)

// buildWithCMake runs the generic configure-if-needed, then compile
// procedure. A build directory that already contains CMakeCache.txt is
// assumed to be validly configured and only the compile step re-runs; the
// descriptor is never checked for staleness, `clean` is the reset.
func (d *Driver) buildWithCMake(
	ctx context.Context,
	cfg domain.Config,
	cmakeArgs []string,
	sourceDir, buildDir string,
) error {
	var swiftFlags string
	if sysroot, ok := d.toolchain.Sysroot(ctx); ok {
		swiftFlags = "-sdk " + sysroot
	}

	configure := []string{
		"cmake", "-G", "Ninja",
		"-DCMAKE_BUILD_TYPE:=Debug",
		"-DCMAKE_Swift_FLAGS=" + swiftFlags,
		"-DCMAKE_Swift_COMPILER:=" + cfg.CompilerPath,
	}
	configure = append(configure, cmakeArgs...)
	configure = append(configure, sourceDir)

	cachePath := filepath.Join(buildDir, domain.CMakeCacheFileName)
	if !fsutil.Exists(cachePath) {
		if err := fsutil.MkdirAll(buildDir); err != nil {
			return err
		}
		if err := d.runner.Run(ctx, domain.Command{
			Args: configure,
			Dir:  buildDir,
			Echo: cfg.Verbose,
		}); err != nil {
			return err
		}
		d.writeConfigureStamp(buildDir, configure)
	} else {
		d.checkConfigureStamp(buildDir, configure)
	}

	compile := []string{"ninja"}
	if cfg.Verbose {
		compile = append(compile, "-v")
	}

	return d.runner.Run(ctx, domain.Command{
		Args: compile,
		Dir:  buildDir,
		Echo: cfg.Verbose,
	})
}

// writeConfigureStamp records a digest of the configure argument vector.
// The stamp is advisory: it lets a later run notice that it would have
// configured differently.
func (d *Driver) writeConfigureStamp(buildDir string, configure []string) {
	stamp := configureDigest(configure)
	path := filepath.Join(buildDir, domain.ConfigureStampFileName)
	if err := os.WriteFile(path, []byte(stamp+"\n"), domain.FilePerm); err != nil {
		// The stamp is best-effort; the build proceeds without it.
		d.logger.Warn("failed to record configure stamp: " + err.Error())
	}
}

// checkConfigureStamp warns when the existing configuration was produced by
// different arguments. It never reconfigures on its own.
func (d *Driver) checkConfigureStamp(buildDir string, configure []string) {
	path := filepath.Join(buildDir, domain.ConfigureStampFileName)
	recorded, err := os.ReadFile(path) //nolint:gosec // stamp under our build dir
	if err != nil {
		return
	}
	if strings.TrimSpace(string(recorded)) != configureDigest(configure) {
		d.logger.Warn("configure arguments changed since " + buildDir + " was configured; run clean to reconfigure")
	}
}

func configureDigest(configure []string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(strings.Join(configure, "\x00")))
}
