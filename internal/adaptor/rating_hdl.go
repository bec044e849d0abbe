package adaptor

import (
	"encoding/json"
	"net/http"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RatingHandler struct {
	service usecase.RatingService
	log     *zap.Logger
}

func NewRatingHandler(service usecase.RatingService, log *zap.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		log:     log.With(zap.String("handler", "rating")),
	}
}

// POST /api/ratings
func (h *RatingHandler) Give(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.GiveRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.GiveRating(r.Context(), requesterID.String(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Thanks for your feedback!", resp)
}

// GET /api/ratings/can-review/{userId}/{packageId}
func (h *RatingHandler) CanReview(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.CanReview(r.Context(), chi.URLParam(r, "userId"), chi.URLParam(r, "packageId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseJSON(w, http.StatusOK, resp.CanReview, resp.Message, resp, nil)
}

// GET /api/ratings/given/{userId}/{packageId}
func (h *RatingHandler) Given(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.RatingGiven(r.Context(), chi.URLParam(r, "userId"), chi.URLParam(r, "packageId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Rating retrieved", resp)
}

// GET /api/packages/{id}/rating-average
func (h *RatingHandler) Average(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetAverageRating(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Average rating retrieved", resp)
}

// GET /api/packages/{id}/ratings?limit=
func (h *RatingHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 4)

	resp, err := h.service.GetPackageRatings(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Ratings retrieved", resp)
}
