package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_Healthz(t *testing.T) {
	rr := httptest.NewRecorder()
	NewHealthHandler().Healthz(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":{"status":"ok"}}`, rr.Body.String())
}

func TestHealthHandler_Readyz(t *testing.T) {
	decode := func(t *testing.T, rr *httptest.ResponseRecorder) readyResp {
		t.Helper()
		var env struct {
			Data readyResp `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
		return env.Data
	}

	t.Run("ready_when_catalog_loaded", func(t *testing.T) {
		h := NewHealthHandler(CatalogChecker(func() int { return 3 }))

		rr := httptest.NewRecorder()
		h.Readyz(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		got := decode(t, rr)
		assert.Equal(t, "ready", got.Status)
		require.Len(t, got.Checks, 1)
		assert.Equal(t, "catalog", got.Checks[0].Name)
		assert.Equal(t, "healthy", got.Checks[0].Status)
	})

	t.Run("not_ready_when_catalog_empty", func(t *testing.T) {
		h := NewHealthHandler(CatalogChecker(func() int { return 0 }))

		rr := httptest.NewRecorder()
		h.Readyz(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		got := decode(t, rr)
		assert.Equal(t, "not_ready", got.Status)
		assert.Equal(t, ErrCatalogEmpty.Error(), got.Checks[0].Error)
	})

	t.Run("one_failing_checker_fails_all", func(t *testing.T) {
		h := NewHealthHandler(
			CatalogChecker(func() int { return 1 }),
			CheckerFunc{CheckName: "postgres", Fn: func(context.Context) error { return errors.New("down") }},
		)

		rr := httptest.NewRecorder()
		h.Readyz(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		got := decode(t, rr)
		require.Len(t, got.Checks, 2)
		assert.Equal(t, "healthy", got.Checks[0].Status)
		assert.Equal(t, "unhealthy", got.Checks[1].Status)
	})

	t.Run("no_checkers_is_ready", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewHealthHandler().Readyz(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
