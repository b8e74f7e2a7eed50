package handlers

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/baechuer/real-time-ressys/services/destination-service/internal/transport/http/response"
)

// ReadinessChecker reports whether one dependency is ready to serve.
type ReadinessChecker interface {
	Name() string
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function into a named ReadinessChecker.
type CheckerFunc struct {
	CheckName string
	Fn        func(ctx context.Context) error
}

func (c CheckerFunc) Name() string                    { return c.CheckName }
func (c CheckerFunc) Check(ctx context.Context) error { return c.Fn(ctx) }

var ErrCatalogEmpty = errors.New("catalog is empty")

// CatalogChecker is ready once the catalog holds at least one city.
func CatalogChecker(size func() int) ReadinessChecker {
	return CheckerFunc{
		CheckName: "catalog",
		Fn: func(context.Context) error {
			if size() == 0 {
				return ErrCatalogEmpty
			}
			return nil
		},
	}
}

type HealthHandler struct {
	checkers []ReadinessChecker
	timeout  time.Duration
}

func NewHealthHandler(checkers ...ReadinessChecker) *HealthHandler {
	return &HealthHandler{checkers: checkers, timeout: 2 * time.Second}
}

func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	response.Data(w, http.StatusOK, map[string]string{"status": "ok"})
}

type checkResult struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readyResp struct {
	Status string        `json:"status"`
	Checks []checkResult `json:"checks"`
}

func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	results := make([]checkResult, len(h.checkers))
	var wg sync.WaitGroup
	for i, c := range h.checkers {
		wg.Add(1)
		go func(idx int, c ReadinessChecker) {
			defer wg.Done()
			results[idx] = checkResult{Name: c.Name(), Status: "healthy"}
			if err := c.Check(ctx); err != nil {
				results[idx].Status = "unhealthy"
				results[idx].Error = err.Error()
			}
		}(i, c)
	}
	wg.Wait()

	resp := readyResp{Status: "ready", Checks: results}
	status := http.StatusOK
	for _, res := range results {
		if res.Status != "healthy" {
			resp.Status = "not_ready"
			status = http.StatusServiceUnavailable
			break
		}
	}

	response.Data(w, status, resp)
}
