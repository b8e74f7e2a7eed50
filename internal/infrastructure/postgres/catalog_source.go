package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/baechuer/real-time-ressys/services/destination-service/internal/domain"
)

const DefaultTable = "cities"

// table names are interpolated, so only plain (optionally schema-qualified) identifiers pass
var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// CatalogSource reads the city catalog from a Postgres table with columns
// (id, city_ascii, country, iso2). It is read once at startup.
type CatalogSource struct {
	db    *sql.DB
	table string
}

func NewCatalogSource(db *sql.DB, table string) (*CatalogSource, error) {
	table = strings.TrimSpace(table)
	if table == "" {
		table = DefaultTable
	}
	if !identRe.MatchString(table) {
		return nil, domain.ErrValidationMeta("invalid catalog table", map[string]string{
			"table": table,
		})
	}
	return &CatalogSource{db: db, table: table}, nil
}

func (s *CatalogSource) Name() string { return "postgres:" + s.table }

func (s *CatalogSource) Load(ctx context.Context) ([]domain.City, error) {
	rows, err := s.db.QueryContext(ctx, listCitiesQuery(s.table))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.table, err)
	}
	defer rows.Close()

	var out []domain.City
	for rows.Next() {
		var c domain.City
		if err := rows.Scan(&c.Name, &c.Country, &c.ISO2); err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.table, err)
		}
		if c.Name == "" {
			continue
		}
		c.ISO2 = strings.ToUpper(strings.TrimSpace(c.ISO2))
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", s.table, err)
	}
	return out, nil
}
