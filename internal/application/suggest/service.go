// Package suggest implements city autocomplete over an immutable catalog.
package suggest

import (
	"math/rand/v2"
	"strings"

	"github.com/baechuer/real-time-ressys/services/destination-service/internal/catalog"
	"github.com/baechuer/real-time-ressys/services/destination-service/internal/domain"
)

// MaxSuggestions caps every result list.
const MaxSuggestions = 10

type Service struct {
	catalog *catalog.Catalog
	intn    func(n int) int
}

type Option func(*Service)

// WithIntN replaces the random index source used by Random.
func WithIntN(fn func(n int) int) Option {
	return func(s *Service) {
		s.intn = fn
	}
}

func New(c *catalog.Catalog, opts ...Option) *Service {
	s := &Service{catalog: c, intn: rand.IntN}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Suggest returns up to MaxSuggestions cities whose name starts with query,
// compared case-insensitively, in catalog order.
// An empty query yields an empty, non-nil slice.
func (s *Service) Suggest(query string) []domain.City {
	return Filter(s.catalog, query, MaxSuggestions)
}

// Filter is the stateless core of Suggest with an explicit limit.
func Filter(c *catalog.Catalog, query string, limit int) []domain.City {
	out := make([]domain.City, 0)
	if query == "" || limit <= 0 {
		return out
	}

	prefix := domain.FoldQuery(query)
	c.Range(func(city domain.City) bool {
		if strings.HasPrefix(domain.FoldQuery(city.Name), prefix) {
			out = append(out, city)
		}
		return len(out) < limit
	})
	return out
}

// Random picks one catalog record, or ok=false if the catalog is empty.
func (s *Service) Random() (domain.City, bool) {
	n := s.catalog.Len()
	if n == 0 {
		return domain.City{}, false
	}
	return s.catalog.At(s.intn(n)), true
}

// Countries lists distinct country names in alphabetical order.
func (s *Service) Countries() []string {
	return s.catalog.Countries()
}

// Size reports how many records the catalog holds.
func (s *Service) Size() int {
	return s.catalog.Len()
}
