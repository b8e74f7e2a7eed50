package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	cflag "github.com/baechuer/real-time-ressys/services/destination-service/internal/flag"
)

var flagCmd = &cobra.Command{
	Use:   "flag [code-or-country]",
	Short: "Print the flag emoji for a country",
	Long: `Resolves an ISO 3166-1 alpha-2 code such as "jp" or a country name such as
"United Kingdom" to its flag emoji. Unknown input prints the globe fallback.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		in := strings.Join(args, " ")
		if code, ok := cflag.CodeForCountry(in); ok {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cflag.FromCode(code), code)
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), cflag.Fallback)
	},
}

func init() {
	rootCmd.AddCommand(flagCmd)
}
