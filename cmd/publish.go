package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"testsrv/core/config"
	"testsrv/core/contenttype"
	"testsrv/core/logger"
	"testsrv/core/storage"
	"testsrv/feature/publish"
	"testsrv/feature/site"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	publishDryRun bool
	publishPrune  bool
)

// publishCmd uploads the served directory to the configured bucket.
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the site to object storage",
	Long: `Uploads every file of the served directory to the configured S3/MinIO bucket,
using the same content types as the local server.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		root, err := site.ResolveRoot(cfg.Site.Root)
		if err != nil {
			return err
		}

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		svc := publish.NewService(store, cfg.Storage.Bucket, cfg.Storage.Region, contenttype.Default(), logg)
		report, err := svc.Publish(ctx, root, publish.Options{DryRun: publishDryRun, Prune: publishPrune})
		if err != nil {
			return err
		}

		for key, reason := range report.Failed {
			logg.Error("Object not published", zap.String("key", key), zap.String("reason", reason))
		}
		if len(report.Failed) > 0 {
			return fmt.Errorf("%d objects failed to publish", len(report.Failed))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Published %d files (%d bytes), removed %d\n",
			len(report.Uploaded), report.Bytes, len(report.Removed))
		return nil
	},
}

func init() {
	publishCmd.Flags().BoolVar(&publishDryRun, "dry-run", false, "report changes without writing to the bucket")
	publishCmd.Flags().BoolVar(&publishPrune, "prune", false, "remove objects that no longer exist locally")
	RootCmd.AddCommand(publishCmd)
}
