package internal

import (
	"github.com/rios0rios0/dylibpatch/internal/domain/entities"
	"github.com/rios0rios0/dylibpatch/internal/infrastructure/controllers"
)

// AppInternal holds the controllers the CLI is assembled from.
type AppInternal struct {
	patchController *controllers.PatchController
	controllers     []entities.Controller
}

// NewAppInternal creates the AppInternal from the resolved controllers.
func NewAppInternal(
	patchController *controllers.PatchController,
	subcommands *[]entities.Controller,
) *AppInternal {
	return &AppInternal{
		patchController: patchController,
		controllers:     *subcommands,
	}
}

// GetPatchController returns the controller backing the root command.
func (it *AppInternal) GetPatchController() *controllers.PatchController {
	return it.patchController
}

// GetControllers returns the subcommand controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
