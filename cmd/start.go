package cmd

import (
	"fmt"

	"fullstack-starter/core/config"
	"fullstack-starter/core/loader"
	"fullstack-starter/core/logger"
	"fullstack-starter/core/server"
	"fullstack-starter/feature"

	"github.com/spf13/cobra"
)

// @title Full-stack Starter API
// @version 1.0
// @description API of the full-stack starter back-end.
// @host localhost:3001
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the server",
	Long:  `Starts the HTTP server with all controllers in the mode selected by SERVER_ENV.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStart()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

func runStart() error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()

	mgr := loader.NewManager(logg)
	if err := mgr.Scan(feature.Controllers(logg)); err != nil {
		return fmt.Errorf("failed to discover controllers: %w", err)
	}

	app, err := server.New(cfg.Server.Resolve(), logg, mgr)
	if err != nil {
		return err
	}

	if err := app.Start(); err != nil {
		return err
	}
	return app.Wait()
}
