// Package cli implements the citytool command tree.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/baechuer/real-time-ressys/services/destination-service/internal/logger"
)

const defaultAPIURL = "http://localhost:8080"

var apiURL string

var rootCmd = &cobra.Command{
	Use:   "citytool",
	Short: "Travel destination lookup tools",
	Long: `citytool talks to the destination service and works with city data files.
It can query suggestions, resolve flag emoji, extract country lists and run an
interactive search-as-you-type client.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger.InitWithWriter(cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "url", envOr("CITYTOOL_URL", defaultAPIURL), "destination service base URL")
}

// Execute runs the command tree against os.Args.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
