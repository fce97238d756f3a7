package entities

import "github.com/spf13/cobra"

// ControllerBind carries the Cobra metadata of a controller.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is a CLI entry point backed by a command.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string)
}
