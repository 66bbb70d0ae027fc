package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/tavola-crm/internal/entity"
	"github.com/xavierca1/tavola-crm/internal/infra/database"
)

type ReservationHandler struct {
	Reservations *database.ReservationRepository
}

func NewReservationHandler(reservations *database.ReservationRepository) *ReservationHandler {
	return &ReservationHandler{Reservations: reservations}
}

func (h *ReservationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := database.ListReservationsFilter{
		RestaurantID: chi.URLParam(r, "restaurantID"),
		Status:       r.URL.Query().Get("status"),
		Date:         r.URL.Query().Get("date"),
		Page:         queryInt(r, "page", 0),
		PageSize:     queryInt(r, "page_size", 20),
	}
	filter.From = queryTime(r, "from")
	filter.To = queryTime(r, "to")

	reservations, err := h.Reservations.List(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ActionResponse{Success: false, Error: "failed to list reservations"})
		return
	}
	if reservations == nil {
		reservations = []*entity.Reservation{}
	}

	writeJSON(w, http.StatusOK, ActionResponse{Success: true, Data: reservations})
}
