package cmd

import (
	"fmt"
	"os"

	"fullstack-starter/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command. Without a subcommand it starts the server.
var RootCmd = &cobra.Command{
	Use:   "starter",
	Short: "Full-stack starter server",
	Long: `Starter serves the API controllers and the front-end.
In development mode it points at the front-end dev server; in production mode
(SERVER_ENV=production) it serves the built bundle.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStart()
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with debug level gives ISO8601 timestamps for CLI output
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
