package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"testsrv/core/config"
	"testsrv/core/contenttype"
	"testsrv/core/loader"
	"testsrv/core/logger"
	"testsrv/core/middleware/rayid"
	"testsrv/core/middleware/requestlog"
	"testsrv/core/server"
	"testsrv/feature/site"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the static site server",
	Long:  `Starts the HTTP server. Equivalent to running testsrv without arguments.`,
	Args:  cobra.NoArgs,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	// 3. Resolve the served directory once; it never changes afterwards
	root, err := site.ResolveRoot(cfg.Site.Root)
	if err != nil {
		return err
	}

	srv := server.New(cfg.Server, logg, cmd.OutOrStdout())
	app := srv.App()

	// 4. Middleware: RayID first so everything after it is traceable
	app.Use(rayid.New())
	app.Use(requestlog.New(logg))

	// 5. Features
	mgr := loader.NewManager()
	mgr.Register(site.NewFeature(cfg.Site, root, contenttype.Default(), logg))
	if err := mgr.LoadAll(app); err != nil {
		return err
	}

	// 6. Serve. Without graceful mode interrupts keep their default behavior.
	ctx := cmd.Context()
	if cfg.Server.Graceful {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
	}

	return srv.Run(ctx)
}

func init() {
	RootCmd.AddCommand(startCmd)
}
