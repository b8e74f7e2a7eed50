package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/baechuer/real-time-ressys/services/destination-service/internal/catalog"
)

var (
	countriesIn  string
	countriesOut string
)

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "Extract the unique country list from a city CSV",
	Long: `Reads the country column of a city CSV (for example worldcities.csv) and
writes the distinct values, sorted alphabetically, to a one-column CSV.`,
	Args: cobra.NoArgs,
	RunE: runCountries,
}

func init() {
	countriesCmd.Flags().StringVar(&countriesIn, "in", "worldcities.csv", "input city CSV")
	countriesCmd.Flags().StringVar(&countriesOut, "out", "unique_countries.csv", "output CSV")
	rootCmd.AddCommand(countriesCmd)
}

func runCountries(cmd *cobra.Command, _ []string) error {
	in, err := os.Open(countriesIn)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("the file %s was not found", countriesIn)
		}
		return err
	}
	defer in.Close()

	names, err := catalog.ReadCountries(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", countriesIn, err)
	}

	out, err := os.Create(countriesOut)
	if err != nil {
		return err
	}
	if err := catalog.WriteCountries(out, names); err != nil {
		_ = out.Close()
		return fmt.Errorf("write %s: %w", countriesOut, err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Unique countries have been saved to %s (%d)\n", countriesOut, len(names))
	return nil
}
