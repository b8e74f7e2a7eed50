package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/baechuer/real-time-ressys/services/destination-service/internal/searchclient"
)

var suggestJSON bool

var suggestCmd = &cobra.Command{
	Use:   "suggest [query]",
	Short: "Print city suggestions for a query",
	Long: `Sends one GET /suggestions request and prints up to ten cities whose
name starts with the query, compared case-insensitively.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	items, err := searchclient.NewClient(apiURL).Suggest(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("suggest failed: %w", err)
	}

	if suggestJSON {
		return outputSuggestJSON(cmd, items)
	}
	outputSuggestList(cmd, items)
	return nil
}

func outputSuggestJSON(cmd *cobra.Command, items []searchclient.Suggestion) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func outputSuggestList(cmd *cobra.Command, items []searchclient.Suggestion) {
	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No cities found.")
		return
	}

	name := color.New(color.Bold)
	country := color.New(color.FgHiBlack)
	for _, it := range items {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", it.Flag, name.Sprint(it.Name), country.Sprint(it.Country))
	}
}
