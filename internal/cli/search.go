package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/baechuer/real-time-ressys/services/destination-service/internal/searchclient"
	"github.com/baechuer/real-time-ressys/services/destination-service/internal/tui"
)

var searchDebounce time.Duration

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Interactive search-as-you-type client",
	Long: `Opens a terminal search box. Suggestions are requested after typing pauses
for the debounce period, and only the newest answer is shown.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		chosen, err := tui.Run(cmd.Context(), searchclient.NewClient(apiURL), searchDebounce, cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if chosen != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s, %s\n", chosen.Flag, chosen.Name, chosen.Country)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().DurationVar(&searchDebounce, "debounce", searchclient.DefaultDebounce, "quiet period before a request is sent")
	rootCmd.AddCommand(searchCmd)
}
