package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/blockfall/blockfall/internal/api/request"
	"github.com/blockfall/blockfall/internal/api/response"
	"github.com/blockfall/blockfall/internal/model"
	"github.com/blockfall/blockfall/internal/services/session"
	"github.com/blockfall/blockfall/internal/sse"
)

// SessionHandler handles session-related endpoints
type SessionHandler struct {
	controller  session.ControllerInterface
	hiddenRows  int
	hubManager  *sse.HubManager
	broadcaster *sse.Broadcaster
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(
	controller session.ControllerInterface,
	hubManager *sse.HubManager,
	logger *slog.Logger,
) *SessionHandler {
	var broadcaster *sse.Broadcaster
	if hubManager != nil {
		broadcaster = sse.NewBroadcaster(hubManager, logger)
	}
	return &SessionHandler{
		controller:  controller,
		hiddenRows:  controller.Config().HiddenRows,
		hubManager:  hubManager,
		broadcaster: broadcaster,
	}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	result, err := h.controller.Create(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromResult(result, h.hiddenRows))
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	result, err := h.controller.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromResult(result, h.hiddenRows))
}

// List handles GET /api/v1/sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.controller.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionListFromIDs(ids))
}

// Input handles POST /api/v1/sessions/{id}/input
func (h *SessionHandler) Input(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	var req request.InputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	action, err := session.ParseAction(req.Action)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.controller.Apply(r.Context(), id, action)
	if err != nil {
		WriteError(w, err)
		return
	}

	if h.broadcaster != nil {
		h.broadcaster.BroadcastEvents(id, result.Events)
	}

	response.JSON(w, http.StatusOK, response.SessionFromResult(result, h.hiddenRows))
}

// Delete handles DELETE /api/v1/sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	if err := h.controller.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	if h.hubManager != nil {
		h.hubManager.RemoveHub(id)
	}

	response.NoContent(w)
}

// Events handles GET /api/v1/sessions/{id}/events via SSE
func (h *SessionHandler) Events(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	// Reject streams for sessions that don't exist
	if _, err := h.controller.Get(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	hub := h.hubManager.GetOrCreateHub(id)
	sse.ServeSSE(w, r, hub)
}
