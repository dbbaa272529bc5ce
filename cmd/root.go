package cmd

import (
	"fmt"
	"os"

	"testsrv/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command. Without a subcommand it starts the server.
var RootCmd = &cobra.Command{
	Use:   "testsrv",
	Short: "Local static site server",
	Long: `testsrv serves the generated site in Content/.out next to the executable
on http://localhost:5080. Files without an extension are served as text/html.`,
	Args:          cobra.NoArgs,
	RunE:          runServer,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps, matching what a CLI user expects
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
