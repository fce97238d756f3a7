package controllers

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/dylibpatch/internal/domain/commands"
	"github.com/rios0rios0/dylibpatch/internal/domain/entities"
)

const (
	inPlaceArgs = 2
	copyArgs    = 3
)

// PatchController handles the root command: dylibpatch <library> <build_dir> [out_dir].
type PatchController struct {
	command commands.Patch
}

// NewPatchController creates a new PatchController.
func NewPatchController(command commands.Patch) *PatchController {
	return &PatchController{command: command}
}

// GetBind returns the Cobra command metadata for the patch controller.
func (it *PatchController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "dylibpatch <library_path> <build_dir> [patched_out_dir]",
		Short: "Rewrite build-tree load paths of dynamic libraries to @rpath",
		Long: `Walk the dependency graph of a dynamic library and rewrite its install name
and every reference that points inside the build directory to @rpath/<name>,
so the libraries can be shipped without the build machine's directory layout.

Usage modes:
  dylibpatch lib/libfoo.dylib /build/out/            Patch the libraries in place
  dylibpatch lib/libfoo.dylib /build/out/ dist/lib   Copy the libraries to dist/lib and patch the copies`,
	}
}

// Execute runs a patch. A wrong argument count only prints the usage.
func (it *PatchController) Execute(cmd *cobra.Command, args []string) {
	if len(args) != inPlaceArgs && len(args) != copyArgs {
		cmd.Println("missing args")
		cmd.Println(cmd.UsageString())
		return
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

	opts := commands.PatchOptions{
		LibraryPath: args[0],
		BuildDir:    args[1],
		DryRun:      dryRun,
		Verbose:     verbose,
	}
	if len(args) == copyArgs {
		opts.OutputDir = args[2]
	}

	logger.Info("Patching installed libraries with install_name_tool...")

	if _, patchErr := it.command.Execute(ctx, settings, opts); patchErr != nil {
		if errors.Is(patchErr, entities.ErrListTimeout) {
			logger.Fatalf("Patch aborted: %v", patchErr)
		}
		logger.Errorf("Patch failed: %v", patchErr)
	}
}

// AddFlags adds the patch-specific flags to the given Cobra command.
func (it *PatchController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("prefix", nil,
		"Additional internal directory prefix (repeatable)")
	cmd.Flags().Bool("system-local", false,
		"Treat "+entities.SystemLocalLibDir+" as internal (default: only when copying)")
	cmd.Flags().String("rpath-token", "",
		"Load-path token written into references (default "+entities.DefaultRPathToken+")")
	cmd.Flags().Duration("timeout", 0,
		"Timeout of each dependency listing (default 1s)")
}

// loadSettings reads the config file (explicit, discovered, or none) and applies flag overrides.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		found, findErr := entities.FindConfigFile()
		if findErr != nil {
			logger.Debugf("No config file found, using defaults: %v", findErr)
		}
		configPath = found
	}

	settings := entities.DefaultSettings()
	if configPath != "" {
		logger.Infof("Using config file: %s", configPath)
		loaded, err := entities.NewSettings(configPath)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}

	if prefixes, _ := cmd.Flags().GetStringArray("prefix"); len(prefixes) > 0 {
		settings.InternalPrefixes = append(settings.InternalPrefixes, prefixes...)
	}
	if cmd.Flags().Changed("system-local") {
		includeSystemLocal, _ := cmd.Flags().GetBool("system-local")
		settings.IncludeSystemLocal = &includeSystemLocal
	}
	if token, _ := cmd.Flags().GetString("rpath-token"); token != "" {
		settings.RPathToken = token
	}
	if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
		settings.Tools.ListTimeout = timeout
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}
