package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/xavierca1/tavola-crm/internal/usecase"
)

const (
	ActionCreateLead              = "create_lead"
	ActionMarkContacted           = "mark_contacted"
	ActionCloseLead               = "close_lead"
	ActionConvertLead             = "convert_lead"
	ActionCreateReservation       = "create_reservation"
	ActionUpdateReservationStatus = "update_reservation_status"
)

// ActionHandler is the engine's single wire entry point: POST-only,
// JSON body {action, payload}, every payload carrying restaurant_id.
type ActionHandler struct {
	CreateLead              *usecase.CreateLeadUseCase
	MarkContacted           *usecase.MarkContactedUseCase
	CloseLead               *usecase.CloseLeadUseCase
	ConvertLead             *usecase.ConvertLeadUseCase
	CreateReservation       *usecase.CreateReservationUseCase
	UpdateReservationStatus *usecase.UpdateReservationStatusUseCase

	rateLimiter *RateLimiter
}

func NewActionHandler(
	createLead *usecase.CreateLeadUseCase,
	markContacted *usecase.MarkContactedUseCase,
	closeLead *usecase.CloseLeadUseCase,
	convertLead *usecase.ConvertLeadUseCase,
	createReservation *usecase.CreateReservationUseCase,
	updateReservationStatus *usecase.UpdateReservationStatusUseCase,
) *ActionHandler {
	return &ActionHandler{
		CreateLead:              createLead,
		MarkContacted:           markContacted,
		CloseLead:               closeLead,
		ConvertLead:             convertLead,
		CreateReservation:       createReservation,
		UpdateReservationStatus: updateReservationStatus,
		rateLimiter:             NewRateLimiter(30, time.Minute), // 30 req/min per IP
	}
}

type ActionRequest struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

type ActionResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *ActionHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ActionResponse{
			Success: false,
			Error:   "method not allowed",
		})
		return
	}

	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, ActionResponse{
			Success: false,
			Error:   "Too many requests. Please try again later.",
		})
		return
	}

	var req ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ActionResponse{
			Success: false,
			Error:   "invalid JSON",
		})
		return
	}

	ctx := r.Context()

	switch req.Action {
	case ActionCreateLead:
		var input usecase.CreateLeadInput
		if !decodePayload(w, req.Payload, &input) {
			return
		}
		lead, err := h.CreateLead.Execute(ctx, input)
		h.respond(w, lead, err)

	case ActionMarkContacted:
		var input usecase.MarkContactedInput
		if !decodePayload(w, req.Payload, &input) {
			return
		}
		lead, err := h.MarkContacted.Execute(ctx, input)
		h.respond(w, lead, err)

	case ActionCloseLead:
		var input usecase.CloseLeadInput
		if !decodePayload(w, req.Payload, &input) {
			return
		}
		lead, err := h.CloseLead.Execute(ctx, input)
		h.respond(w, lead, err)

	case ActionConvertLead:
		var input usecase.ConvertLeadInput
		if !decodePayload(w, req.Payload, &input) {
			return
		}
		output, err := h.ConvertLead.Execute(ctx, input)
		h.respond(w, output, err)

	case ActionCreateReservation:
		var input usecase.CreateReservationInput
		if !decodePayload(w, req.Payload, &input) {
			return
		}
		reservation, err := h.CreateReservation.Execute(ctx, input)
		h.respond(w, reservation, err)

	case ActionUpdateReservationStatus:
		var input usecase.UpdateReservationStatusInput
		if !decodePayload(w, req.Payload, &input) {
			return
		}
		reservation, err := h.UpdateReservationStatus.Execute(ctx, input)
		h.respond(w, reservation, err)

	default:
		writeJSON(w, http.StatusBadRequest, ActionResponse{
			Success: false,
			Error:   "unknown action: " + req.Action,
		})
	}
}

func (h *ActionHandler) respond(w http.ResponseWriter, data interface{}, err error) {
	if err != nil {
		if usecase.IsDomainError(err) {
			writeJSON(w, http.StatusBadRequest, ActionResponse{
				Success: false,
				Error:   err.Error(),
			})
			return
		}

		// Internal detail stays in the logs, not in the response.
		log.Printf("❌ action failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, ActionResponse{
			Success: false,
			Error:   "internal error",
		})
		return
	}

	writeJSON(w, http.StatusOK, ActionResponse{
		Success: true,
		Data:    data,
	})
}

func decodePayload(w http.ResponseWriter, raw json.RawMessage, target interface{}) bool {
	if len(raw) == 0 {
		writeJSON(w, http.StatusBadRequest, ActionResponse{
			Success: false,
			Error:   "missing payload",
		})
		return false
	}
	if err := json.Unmarshal(raw, target); err != nil {
		writeJSON(w, http.StatusBadRequest, ActionResponse{
			Success: false,
			Error:   "invalid payload",
		})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
