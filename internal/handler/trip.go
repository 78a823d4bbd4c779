package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/roamly/roamly/internal/auth"
	"github.com/roamly/roamly/internal/handler/dto"
	"github.com/roamly/roamly/internal/service"
)

// TripHandler handles HTTP requests for trip operations.
type TripHandler struct {
	svc    *service.TripService
	logger *slog.Logger
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(svc *service.TripService, logger *slog.Logger) *TripHandler {
	return &TripHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/trips. Runs behind the optional auth policy:
// authenticated callers see exactly their own trips, anonymous callers
// get the guest sample.
func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())

	trips, err := h.svc.ListTrips(r.Context(), identity)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTripListResponse(trips))
}

// Create handles POST /api/trips. Requires authentication.
func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFromContext(r.Context())

	var req dto.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	trip, err := h.svc.CreateTrip(r.Context(), *identity, toTripInput(req))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("trip_created",
		"trip_id", trip.ID,
		"user_id", identity.UserID,
	)

	writeJSON(w, http.StatusCreated, dto.ToTripResponse(trip))
}

// Update handles PUT /api/trips/{id}. Requires authentication; the
// mutation only lands when the trip belongs to the caller.
func (h *TripHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		h.writeError(w, http.StatusBadRequest, "MISSING_ID", "Trip ID is required")
		return
	}

	var req dto.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	trip, err := h.svc.UpdateTrip(r.Context(), *identity, id, toTripInput(req))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("trip_updated",
		"trip_id", trip.ID,
		"user_id", identity.UserID,
	)

	writeJSON(w, http.StatusOK, dto.ToTripResponse(trip))
}

// Delete handles DELETE /api/trips/{id}. Requires authentication.
func (h *TripHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		h.writeError(w, http.StatusBadRequest, "MISSING_ID", "Trip ID is required")
		return
	}

	if err := h.svc.DeleteTrip(r.Context(), *identity, id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("trip_deleted",
		"trip_id", id,
		"user_id", identity.UserID,
	)

	w.WriteHeader(http.StatusNoContent)
}

// toTripInput converts the request DTO into a service input.
func toTripInput(req dto.TripRequest) service.TripInput {
	return service.TripInput{
		Origin:        req.Origin,
		Destination:   req.Destination,
		Transport:     req.Transport,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Accommodation: req.Accommodation,
		Budget:        req.Budget,
		Travelers:     req.Travelers,
		Status:        req.Status,
		Activities:    req.Activities,
	}
}

// handleServiceError maps trip service errors to HTTP responses.
// "Absent" and "not yours" both surface as the same 404.
func (h *TripHandler) handleServiceError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		h.writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", verr.Error())
	case errors.Is(err, service.ErrTripNotFound):
		h.writeError(w, http.StatusNotFound, "TRIP_NOT_FOUND", "Trip not found")
	default:
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

// writeError writes an error response.
func (h *TripHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
