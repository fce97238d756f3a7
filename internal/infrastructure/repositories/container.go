package repositories

import (
	"github.com/rios0rios0/dylibpatch/internal/domain/entities"
	domainRepos "github.com/rios0rios0/dylibpatch/internal/domain/repositories"
	"github.com/rios0rios0/dylibpatch/internal/infrastructure/repositories/filesystem"
	"github.com/rios0rios0/dylibpatch/internal/infrastructure/repositories/macho"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register tool registry with all toolchain factories
	if err := container.Provide(func() *ToolRegistry {
		reg := NewToolRegistry()
		reg.Register(ToolchainCCTools, func(tools entities.ToolsSettings) domainRepos.BinaryToolRepository {
			return macho.NewToolRepository(tools)
		})
		reg.Register(ToolchainDryRun, func(tools entities.ToolsSettings) domainRepos.BinaryToolRepository {
			return macho.NewDryRunToolRepository(macho.NewToolRepository(tools))
		})
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.FileRepository {
		return filesystem.NewFileRepository()
	}); err != nil {
		return err
	}

	return nil
}
