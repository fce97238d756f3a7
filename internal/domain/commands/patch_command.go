package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/dylibpatch/internal/domain/entities"
	"github.com/rios0rios0/dylibpatch/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/dylibpatch/internal/infrastructure/repositories"
)

// Patch is the interface for the patch command.
type Patch interface {
	Execute(ctx context.Context, settings *entities.Settings, opts PatchOptions) (*entities.PatchResult, error)
}

// PatchOptions holds runtime options for a single patch run.
type PatchOptions struct {
	LibraryPath string
	BuildDir    string
	OutputDir   string // Empty patches in place
	DryRun      bool
	Verbose     bool
}

// PatchCommand resolves the toolchain and internal prefixes from the settings
// and runs the library patcher.
type PatchCommand struct {
	toolRegistry   *infraRepos.ToolRegistry
	fileRepository repositories.FileRepository
}

// NewPatchCommand creates a new PatchCommand.
func NewPatchCommand(
	toolRegistry *infraRepos.ToolRegistry,
	fileRepository repositories.FileRepository,
) *PatchCommand {
	return &PatchCommand{
		toolRegistry:   toolRegistry,
		fileRepository: fileRepository,
	}
}

// Execute patches the library described by opts.
func (it *PatchCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts PatchOptions,
) (*entities.PatchResult, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	toolchain := infraRepos.ToolchainCCTools
	if opts.DryRun {
		toolchain = infraRepos.ToolchainDryRun
	}

	tools, err := it.toolRegistry.Get(toolchain, settings.Tools)
	if err != nil {
		return nil, fmt.Errorf("failed to create toolchain: %w", err)
	}

	target := entities.PatchTarget{
		RootPath:         opts.LibraryPath,
		OutputDir:        opts.OutputDir,
		InternalPrefixes: settings.PrefixesFor(opts.BuildDir, opts.OutputDir != ""),
		RPathToken:       settings.RPathToken,
		Extension:        settings.Extension,
		DryRun:           opts.DryRun,
	}

	logger.Debugf("Internal prefixes: %v", target.InternalPrefixes)
	if target.CopyMode() {
		logger.Infof("Patching copies in %s", target.OutputDir)
	}

	result, err := PatchLibrary(ctx, tools, it.fileRepository, target)
	if err != nil {
		return result, err
	}

	logger.Infof(
		"Patch complete: %d libraries visited, %d references rewritten, %d warnings",
		len(result.Visited), len(result.Rewrites), result.Warnings,
	)
	return result, nil
}
