//go:build unit

package controllers_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/dylibpatch/internal/domain/entities"
	"github.com/rios0rios0/dylibpatch/internal/infrastructure/controllers"
	commanddoubles "github.com/rios0rios0/dylibpatch/test/domain/commanddoubles"
)

// newCommand builds a command carrying the same flags as the CLI root.
func newCommand(t *testing.T, controller *controllers.PatchController, flags ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: "dylibpatch"}
	cmd.Flags().StringP("config", "c", "", "")
	cmd.Flags().Bool("dry-run", false, "")
	cmd.Flags().BoolP("verbose", "v", false, "")
	controller.AddFlags(cmd)
	require.NoError(t, cmd.ParseFlags(flags))

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	return cmd, out
}

func emptyConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dylibpatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o600))
	return path
}

func TestPatchController(t *testing.T) {
	t.Parallel()

	t.Run("should print usage and not patch on a wrong argument count", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPatchCommand{}
		controller := controllers.NewPatchController(stub)
		cmd, out := newCommand(t, controller)

		// when
		controller.Execute(cmd, []string{"/build/out/libfoo.dylib"})

		// then
		assert.Zero(t, stub.ExecuteCallCount)
		assert.Contains(t, out.String(), "missing args")
	})

	t.Run("should patch in place with two arguments", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPatchCommand{}
		controller := controllers.NewPatchController(stub)
		cmd, _ := newCommand(t, controller, "--config", emptyConfig(t))

		// when
		controller.Execute(cmd, []string{"/build/out/libfoo.dylib", "/build/out/"})

		// then
		require.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, "/build/out/libfoo.dylib", stub.LastOpts.LibraryPath)
		assert.Equal(t, "/build/out/", stub.LastOpts.BuildDir)
		assert.Empty(t, stub.LastOpts.OutputDir)
	})

	t.Run("should patch copies with three arguments", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPatchCommand{}
		controller := controllers.NewPatchController(stub)
		cmd, _ := newCommand(t, controller, "--config", emptyConfig(t), "--dry-run", "-v")

		// when
		controller.Execute(cmd, []string{"/build/out/libfoo.dylib", "/build/out/", "/dist/lib"})

		// then
		require.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, "/dist/lib", stub.LastOpts.OutputDir)
		assert.True(t, stub.LastOpts.DryRun)
		assert.True(t, stub.LastOpts.Verbose)
	})

	t.Run("should apply flag overrides on top of the config file", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPatchCommand{}
		controller := controllers.NewPatchController(stub)
		cmd, _ := newCommand(t, controller,
			"--config", emptyConfig(t),
			"--prefix", "/opt/deps/lib",
			"--prefix", "/opt/more/lib",
			"--system-local",
			"--rpath-token", "@loader_path",
			"--timeout", "2s",
		)

		// when
		controller.Execute(cmd, []string{"/build/out/libfoo.dylib", "/build/out/"})

		// then
		require.Equal(t, 1, stub.ExecuteCallCount)
		settings := stub.LastSettings
		assert.Equal(t, []string{"/opt/deps/lib", "/opt/more/lib"}, settings.InternalPrefixes)
		require.NotNil(t, settings.IncludeSystemLocal)
		assert.True(t, *settings.IncludeSystemLocal)
		assert.Equal(t, "@loader_path", settings.RPathToken)
		assert.Equal(t, 2*time.Second, settings.Tools.ListTimeout)
	})

	t.Run("should not patch when the config file is invalid", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "dylibpatch.yaml")
		require.NoError(t, os.WriteFile(path, []byte("rpath_token: rpath"), 0o600))
		stub := &commanddoubles.StubPatchCommand{}
		controller := controllers.NewPatchController(stub)
		cmd, _ := newCommand(t, controller, "--config", path)

		// when
		controller.Execute(cmd, []string{"/build/out/libfoo.dylib", "/build/out/"})

		// then
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should leave the system-local choice unset without the flag", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPatchCommand{}
		controller := controllers.NewPatchController(stub)
		cmd, _ := newCommand(t, controller, "--config", emptyConfig(t))

		// when
		controller.Execute(cmd, []string{"/build/out/libfoo.dylib", "/build/out/", "/dist/lib"})

		// then
		require.Equal(t, 1, stub.ExecuteCallCount)
		assert.Nil(t, stub.LastSettings.IncludeSystemLocal)
	})

	t.Run("should record an explicit --system-local=false", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPatchCommand{}
		controller := controllers.NewPatchController(stub)
		cmd, _ := newCommand(t, controller, "--config", emptyConfig(t), "--system-local=false")

		// when
		controller.Execute(cmd, []string{"/build/out/libfoo.dylib", "/build/out/", "/dist/lib"})

		// then
		require.Equal(t, 1, stub.ExecuteCallCount)
		require.NotNil(t, stub.LastSettings.IncludeSystemLocal)
		assert.False(t, *stub.LastSettings.IncludeSystemLocal)
	})

	t.Run("should not patch when a flag override is invalid", func(t *testing.T) {
		t.Parallel()

		overrides := [][]string{
			{"--rpath-token", "rpath"},
			{"--prefix", "build/out"},
		}
		for _, override := range overrides {
			// given
			stub := &commanddoubles.StubPatchCommand{}
			controller := controllers.NewPatchController(stub)
			cmd, _ := newCommand(t, controller, append([]string{"--config", emptyConfig(t)}, override...)...)

			// when
			controller.Execute(cmd, []string{"/build/out/libfoo.dylib", "/build/out/"})

			// then
			assert.Zero(t, stub.ExecuteCallCount, "override %v", override)
		}
	})

	t.Run("should report a failed patch without exiting", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPatchCommand{ExecuteErr: entities.ErrNotDynamicLibrary}
		controller := controllers.NewPatchController(stub)
		cmd, _ := newCommand(t, controller, "--config", emptyConfig(t))

		// when
		controller.Execute(cmd, []string{"/build/out/libfoo.a", "/build/out/"})

		// then
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.True(t, errors.Is(stub.ExecuteErr, entities.ErrNotDynamicLibrary))
	})
}

func TestVersionController(t *testing.T) {
	t.Parallel()

	t.Run("should print the version", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewVersionController()
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		cmd := &cobra.Command{Use: "version"}
		out := &bytes.Buffer{}
		cmd.SetOut(out)
		cmd.SetErr(out)

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Contains(t, out.String(), "dylibpatch "+controllers.Version)
		assert.Equal(t, "version", controller.GetBind().Use)
	})
}
