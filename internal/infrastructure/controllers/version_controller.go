package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/dylibpatch/internal/domain/entities"
)

// Version is the build version, overridden with -ldflags "-X ...controllers.Version=v1.2.3".
var Version = "dev" //nolint:gochecknoglobals // set at link time

// VersionController handles the "version" subcommand.
type VersionController struct{}

// NewVersionController creates a new VersionController.
func NewVersionController() *VersionController {
	return &VersionController{}
}

// GetBind returns the Cobra command metadata for the version controller.
func (it *VersionController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "version",
		Short: "Print the dylibpatch version",
		Long:  "Print the dylibpatch version.",
	}
}

// Execute prints the version.
func (it *VersionController) Execute(cmd *cobra.Command, _ []string) {
	cmd.Println("dylibpatch " + Version)
}
