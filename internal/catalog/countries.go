package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/baechuer/real-time-ressys/services/destination-service/internal/domain"
)

// ReadCountries collects the distinct values of the country column of a
// headered CSV, sorted alphabetically. Only the country column is required.
func ReadCountries(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty csv: %w", ErrMissingColumn)
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}
	idx := columnIndex(header, countryColumns)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %v", ErrMissingColumn, countryColumns)
	}

	var rows []domain.City
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", line, err)
		}
		rows = append(rows, domain.City{Country: field(rec, idx)})
	}
	return UniqueCountries(rows), nil
}

// WriteCountries writes a one-column CSV headed "country".
func WriteCountries(w io.Writer, countries []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"country"}); err != nil {
		return err
	}
	for _, c := range countries {
		if err := cw.Write([]string{c}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
