package controllers

import (
	"github.com/rios0rios0/dylibpatch/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewPatchController); err != nil {
		return err
	}
	if err := container.Provide(NewVersionController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers into a slice for the AppInternal.
// The patch controller backs the root command and is resolved on its own.
func NewControllers(
	versionController *VersionController,
) *[]entities.Controller {
	return &[]entities.Controller{
		versionController,
	}
}
