package adaptor

import (
	"encoding/json"
	"net/http"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// POST /api/bookings
func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Book(r.Context(), requesterID.String(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Your package has been booked!", resp)
}

// GET /api/admin/bookings and /api/admin/bookings/current
func (h *BookingHandler) AdminList(currentOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.service.GetAdminBookings(r.Context(), r.URL.Query().Get("searchTerm"), currentOnly)
		if err != nil {
			handleServiceError(w, err)
			return
		}

		h.writeBookingList(w, resp)
	}
}

// GET /api/user/{userId}/bookings and /api/user/{userId}/bookings/current
func (h *BookingHandler) UserList(currentOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requesterID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			utils.ResponseUnauthorized(w, "Authentication required")
			return
		}

		resp, err := h.service.GetUserBookings(
			r.Context(),
			requesterID.String(),
			chi.URLParam(r, "userId"),
			r.URL.Query().Get("searchTerm"),
			currentOnly,
		)
		if err != nil {
			handleServiceError(w, err)
			return
		}

		h.writeBookingList(w, resp)
	}
}

// PUT /api/user/{userId}/bookings/{id}/cancel
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	err := h.service.Cancel(r.Context(), requesterID.String(), chi.URLParam(r, "userId"), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled!", nil)
}

// DELETE /api/user/{userId}/bookings/{id}
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	err := h.service.DeleteHistory(r.Context(), requesterID.String(), chi.URLParam(r, "userId"), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Booking history deleted!", nil)
}

// GET /api/user/{userId}/travel-complete/{packageId}
func (h *BookingHandler) TravelComplete(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.CheckTravelComplete(
		r.Context(),
		requesterID.String(),
		chi.URLParam(r, "userId"),
		chi.URLParam(r, "packageId"),
	)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if !resp.Found {
		utils.ResponseJSON(w, http.StatusNotFound, false, resp.Message, resp, nil)
		return
	}

	utils.ResponseJSON(w, http.StatusOK, resp.Completed, resp.Message, resp, nil)
}

// An empty listing is a successful request with a sentinel message, not
// an error.
func (h *BookingHandler) writeBookingList(w http.ResponseWriter, bookings []response.BookingResponse) {
	if len(bookings) == 0 {
		utils.ResponseJSON(w, http.StatusOK, false, "No Bookings Available", nil, nil)
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", bookings)
}
