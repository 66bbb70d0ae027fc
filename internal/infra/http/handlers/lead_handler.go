package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/tavola-crm/internal/entity"
	"github.com/xavierca1/tavola-crm/internal/infra/database"
)

// LeadHandler serves the admin back-office: read-heavy listing plus soft
// delete. It talks to the repositories directly, outside the lifecycle
// engine's action dispatch.
type LeadHandler struct {
	Leads  *database.LeadRepository
	Events *database.LeadEventRepository
}

func NewLeadHandler(leads *database.LeadRepository, events *database.LeadEventRepository) *LeadHandler {
	return &LeadHandler{Leads: leads, Events: events}
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := database.ListLeadsFilter{
		RestaurantID: chi.URLParam(r, "restaurantID"),
		Status:       r.URL.Query().Get("status"),
		Phone:        r.URL.Query().Get("phone"),
		Page:         queryInt(r, "page", 0),
		PageSize:     queryInt(r, "page_size", 20),
	}
	filter.From = queryTime(r, "from")
	filter.To = queryTime(r, "to")

	leads, err := h.Leads.List(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ActionResponse{Success: false, Error: "failed to list leads"})
		return
	}
	if leads == nil {
		leads = []*entity.Lead{}
	}

	writeJSON(w, http.StatusOK, ActionResponse{Success: true, Data: leads})
}

func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "restaurantID")
	leadID := chi.URLParam(r, "leadID")

	if err := h.Leads.SoftDelete(r.Context(), leadID, restaurantID); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			writeJSON(w, http.StatusNotFound, ActionResponse{Success: false, Error: "lead not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ActionResponse{Success: false, Error: "failed to delete lead"})
		return
	}

	writeJSON(w, http.StatusOK, ActionResponse{Success: true})
}

func (h *LeadHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "restaurantID")
	leadID := chi.URLParam(r, "leadID")

	events, err := h.Events.ListByLead(r.Context(), leadID, restaurantID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ActionResponse{Success: false, Error: "failed to list events"})
		return
	}
	if events == nil {
		events = []*entity.LeadEvent{}
	}

	writeJSON(w, http.StatusOK, ActionResponse{Success: true, Data: events})
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func queryTime(r *http.Request, key string) *time.Time {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	return nil
}
