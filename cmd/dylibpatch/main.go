package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/dylibpatch/internal"
	"github.com/rios0rios0/dylibpatch/internal/infrastructure/controllers"
)

func buildRootCommand(patchController *controllers.PatchController) *cobra.Command {
	bind := patchController.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   bind.Use,
		Short: bind.Short,
		Long:  bind.Long,
		Args:  cobra.ArbitraryArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if len(args) == 0 {
				return command.Help()
			}
			patchController.Execute(command, args)
			return nil
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Show what would be done without making changes")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	patchController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Run: func(command *cobra.Command, arguments []string) {
				ctrl.Execute(command, arguments)
			},
		}
		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	appContext := injectAppContext()
	cobraRoot := buildRootCommand(appContext.GetPatchController())
	addSubcommands(cobraRoot, appContext)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cobraRoot.ExecuteContext(ctx); err != nil {
		logger.Fatalf("Error executing 'dylibpatch': %s", err)
	}
}
