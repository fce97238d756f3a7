package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewPatchCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *PatchCommand) Patch {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
