package handler

import (
	"log/slog"
	"net/http"

	"github.com/roamly/roamly/internal/handler/dto"
	"github.com/roamly/roamly/internal/repository"
)

// CityHandler serves the shared city reference data.
type CityHandler struct {
	logger *slog.Logger
	repo   *repository.Repository
}

// NewCityHandler creates a new CityHandler.
func NewCityHandler(logger *slog.Logger, repo *repository.Repository) *CityHandler {
	return &CityHandler{
		logger: logger,
		repo:   repo,
	}
}

// List handles GET /api/cities. No authentication required.
func (h *CityHandler) List(w http.ResponseWriter, r *http.Request) {
	cities, err := h.repo.ListCities(r.Context())
	if err != nil {
		h.logger.Error("internal_error", "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCityListResponse(cities))
}
