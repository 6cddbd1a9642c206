package cmd

import (
	"context"
	"fmt"

	"fullstack-starter/core/bundle"
	"fullstack-starter/core/config"
	"fullstack-starter/core/logger"
	"fullstack-starter/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Move the front-end bundle between object storage and the build directory",
}

var bundleSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Download the bundle into the build directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBundle(cmd.Context(), (*bundle.Syncer).Sync, "synced")
	},
}

var bundlePublishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the build directory as the bundle",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBundle(cmd.Context(), (*bundle.Syncer).Publish, "published")
	},
}

func init() {
	bundleCmd.AddCommand(bundleSyncCmd, bundlePublishCmd)
	RootCmd.AddCommand(bundleCmd)
}

func runBundle(ctx context.Context, op func(*bundle.Syncer, context.Context) (int, error), verb string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return err
	}

	dir := cfg.Server.Resolve().BuildDir
	s := bundle.NewSyncer(store, cfg.Storage.Bucket, cfg.Bundle.Prefix, dir, logg)
	n, err := op(s, ctx)
	if err != nil {
		return err
	}

	logg.Info("Bundle "+verb, zap.Int("files", n), zap.String("dir", dir))
	return nil
}
