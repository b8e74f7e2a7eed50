package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/baechuer/real-time-ressys/services/destination-service/internal/domain"
	"github.com/baechuer/real-time-ressys/services/destination-service/internal/flag"
	"github.com/baechuer/real-time-ressys/services/destination-service/internal/logger"
	"github.com/baechuer/real-time-ressys/services/destination-service/internal/transport/http/dto"
	"github.com/baechuer/real-time-ressys/services/destination-service/internal/transport/http/response"
)

// Suggester is the read side the HTTP surface needs from the suggestion service.
type Suggester interface {
	Suggest(query string) []domain.City
	Random() (domain.City, bool)
	Countries() []string
}

type SuggestionsHandler struct {
	svc Suggester
}

func NewSuggestionsHandler(svc Suggester) *SuggestionsHandler {
	return &SuggestionsHandler{svc: svc}
}

// Suggest serves GET /suggestions?q=. It never fails: a missing or empty q
// yields [].
func (h *SuggestionsHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	cities := h.svc.Suggest(q)
	observeSuggestion(q, len(cities))

	logger.Ctx(r.Context()).Debug().
		Str("q", q).
		Int("results", len(cities)).
		Msg("suggest")

	response.JSON(w, http.StatusOK, dto.FromCities(cities))
}

func (h *SuggestionsHandler) Random(w http.ResponseWriter, r *http.Request) {
	c, ok := h.svc.Random()
	if !ok {
		response.Err(w, r, domain.ErrNotFound("catalog is empty"))
		return
	}
	response.JSON(w, http.StatusOK, dto.FromCity(c))
}

func (h *SuggestionsHandler) Countries(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, dto.FromCountries(h.svc.Countries()))
}

// Flag serves GET /api/flags/{code}. Invalid codes get the fallback glyph.
func (h *SuggestionsHandler) Flag(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(chi.URLParam(r, "code"))
	response.JSON(w, http.StatusOK, dto.FlagResp{
		Code: code,
		Flag: flag.FromCode(code),
	})
}
