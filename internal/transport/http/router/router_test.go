package router

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baechuer/real-time-ressys/services/destination-service/internal/application/suggest"
	"github.com/baechuer/real-time-ressys/services/destination-service/internal/catalog"
	"github.com/baechuer/real-time-ressys/services/destination-service/internal/config"
	"github.com/baechuer/real-time-ressys/services/destination-service/internal/domain"
	"github.com/baechuer/real-time-ressys/services/destination-service/internal/transport/http/dto"
	"github.com/baechuer/real-time-ressys/services/destination-service/internal/transport/http/handlers"
)

func newTestRouter(t *testing.T, cities []domain.City, metrics bool) http.Handler {
	t.Helper()
	svc := suggest.New(catalog.New(cities), suggest.WithIntN(func(int) int { return 0 }))
	cfg := &config.Config{
		ServiceName:        "destination-service",
		CORSAllowedOrigins: []string{"http://localhost:3000"},
		MetricsEnabled:     metrics,
	}
	return New(cfg, zerolog.Nop(),
		handlers.NewSuggestionsHandler(svc),
		handlers.NewHealthHandler(handlers.CatalogChecker(svc.Size)),
	)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestRouter(t *testing.T) {
	cities := []domain.City{
		{Name: "Paris", Country: "France"},
		{Name: "Tokyo", Country: "Japan"},
		{Name: "Parma", Country: "Italy"},
	}
	r := newTestRouter(t, cities, true)

	t.Run("suggestions", func(t *testing.T) {
		rr := get(t, r, "/suggestions?q=par")
		require.Equal(t, http.StatusOK, rr.Code)

		var got []dto.CityResp
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "Paris", got[0].Name)
		assert.Equal(t, "Parma", got[1].Name)
		assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
	})

	t.Run("api_cities_alias_matches_suggestions", func(t *testing.T) {
		a := get(t, r, "/suggestions?q=To")
		b := get(t, r, "/api/cities?q=To")
		assert.Equal(t, a.Body.String(), b.Body.String())
	})

	t.Run("empty_query_is_empty_array", func(t *testing.T) {
		rr := get(t, r, "/suggestions?q=")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("random_city", func(t *testing.T) {
		rr := get(t, r, "/api/cities/random")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"city_ascii":"Paris","country":"France","iso2":"FR","flag":"🇫🇷"}`, rr.Body.String())
	})

	t.Run("countries_sorted", func(t *testing.T) {
		rr := get(t, r, "/api/countries")
		var got []dto.CountryResp
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 3)
		assert.Equal(t, "France", got[0].Country)
		assert.Equal(t, "Italy", got[1].Country)
		assert.Equal(t, "Japan", got[2].Country)
	})

	t.Run("flag", func(t *testing.T) {
		rr := get(t, r, "/api/flags/it")
		assert.JSONEq(t, `{"code":"IT","flag":"🇮🇹"}`, rr.Body.String())
	})

	t.Run("healthz_and_readyz", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get(t, r, "/healthz").Code)
		assert.Equal(t, http.StatusOK, get(t, r, "/readyz").Code)
	})

	t.Run("metrics_exposed", func(t *testing.T) {
		rr := get(t, r, "/metrics")
		assert.Equal(t, http.StatusOK, rr.Code)
		body, _ := io.ReadAll(rr.Body)
		assert.Contains(t, string(body), "http_requests_total")
	})

	t.Run("security_headers", func(t *testing.T) {
		rr := get(t, r, "/healthz")
		assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	})

	t.Run("unknown_route_is_404", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, get(t, r, "/nope").Code)
	})
}

func TestRouter_EmptyCatalog(t *testing.T) {
	r := newTestRouter(t, nil, false)

	t.Run("readyz_not_ready", func(t *testing.T) {
		assert.Equal(t, http.StatusServiceUnavailable, get(t, r, "/readyz").Code)
	})

	t.Run("random_not_found", func(t *testing.T) {
		rr := get(t, r, "/api/cities/random")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "not_found")
	})

	t.Run("metrics_disabled", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, get(t, r, "/metrics").Code)
	})

	t.Run("suggestions_still_ok", func(t *testing.T) {
		rr := get(t, r, "/suggestions?q=a")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})
}
