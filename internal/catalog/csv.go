package catalog

import (
	"context"
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/baechuer/real-time-ressys/services/destination-service/internal/domain"
)

//go:embed data/cities.csv
var embeddedData embed.FS

const embeddedPath = "data/cities.csv"

// Accepted header names, first match wins.
var (
	nameColumns    = []string{"city_ascii", "name", "city"}
	countryColumns = []string{"country"}
	iso2Columns    = []string{"iso2", "country_code"}
)

var ErrMissingColumn = errors.New("missing required column")

// ReadCSV parses a headered city CSV (worldcities layout or a subset of it).
// Rows with an empty name are skipped; everything else is kept in file order.
func ReadCSV(r io.Reader) ([]domain.City, error) {
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

	nameIdx := columnIndex(header, nameColumns)
	if nameIdx < 0 {
		return nil, fmt.Errorf("%w: one of %v", ErrMissingColumn, nameColumns)
	}
	countryIdx := columnIndex(header, countryColumns)
	if countryIdx < 0 {
		return nil, fmt.Errorf("%w: %v", ErrMissingColumn, countryColumns)
	}
	iso2Idx := columnIndex(header, iso2Columns)

	var cities []domain.City
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(cities)+2, err)
		}
		name := field(rec, nameIdx)
		if name == "" {
			continue
		}
		cities = append(cities, domain.City{
			Name:    name,
			Country: field(rec, countryIdx),
			ISO2:    strings.ToUpper(field(rec, iso2Idx)),
		})
	}
	return cities, nil
}

func columnIndex(header []string, names []string) int {
	for _, want := range names {
		for i, h := range header {
			// strip a UTF-8 BOM that spreadsheet exports put on the first cell
			h = strings.TrimPrefix(h, "\ufeff")
			if strings.EqualFold(strings.TrimSpace(h), want) {
				return i
			}
		}
	}
	return -1
}

func field(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

// EmbeddedSource reads the city list compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Name() string { return "embedded" }

func (EmbeddedSource) Load(_ context.Context) ([]domain.City, error) {
	f, err := embeddedData.Open(embeddedPath)
	if err != nil {
		return nil, fmt.Errorf("opening embedded data: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// FileSource reads a city CSV from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return "csv:" + s.Path }

func (s FileSource) Load(_ context.Context) ([]domain.City, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.Path, err)
	}
	defer f.Close()
	return ReadCSV(f)
}
