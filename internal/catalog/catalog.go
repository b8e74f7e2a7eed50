// Package catalog holds the process-wide city list.
//
// A Catalog is built once at startup from a Source and is never mutated
// afterwards, so it can be shared by any number of request goroutines
// without locking. Accessors that hand out slices return copies.
package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/baechuer/real-time-ressys/services/destination-service/internal/domain"
)

// Source produces the ordered city records a Catalog is built from.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]domain.City, error)
}

type Catalog struct {
	cities []domain.City
}

// New copies cities into a new Catalog, keeping order and duplicates.
func New(cities []domain.City) *Catalog {
	own := make([]domain.City, len(cities))
	copy(own, cities)
	return &Catalog{cities: own}
}

// Build loads src once and wraps the result.
func Build(ctx context.Context, src Source) (*Catalog, error) {
	cities, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", src.Name(), err)
	}
	return &Catalog{cities: cities}, nil
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.cities)
}

// At returns the i-th record in catalog order.
func (c *Catalog) At(i int) domain.City {
	return c.cities[i]
}

// Range calls fn for each record in catalog order until fn returns false.
func (c *Catalog) Range(fn func(domain.City) bool) {
	if c == nil {
		return
	}
	for _, city := range c.cities {
		if !fn(city) {
			return
		}
	}
}

// All returns a copy of every record.
func (c *Catalog) All() []domain.City {
	out := make([]domain.City, c.Len())
	if c != nil {
		copy(out, c.cities)
	}
	return out
}

// Countries returns the distinct country names, sorted alphabetically.
func (c *Catalog) Countries() []string {
	return UniqueCountries(c.All())
}

// UniqueCountries collects distinct non-empty Country values in sorted order.
func UniqueCountries(cities []domain.City) []string {
	seen := make(map[string]struct{}, 256)
	out := make([]string, 0, 256)
	for _, city := range cities {
		if city.Country == "" {
			continue
		}
		if _, ok := seen[city.Country]; ok {
			continue
		}
		seen[city.Country] = struct{}{}
		out = append(out, city.Country)
	}
	sort.Strings(out)
	return out
}
