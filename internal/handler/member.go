package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"homeroster/internal/model"
	"homeroster/internal/store"
	"homeroster/internal/validate"
	ws "homeroster/internal/websocket"
)

type MemberHandler struct {
	store  *store.MemberStore
	hub    *ws.Hub
	logger *slog.Logger
}

func NewMemberHandler(s *store.MemberStore, hub *ws.Hub, logger *slog.Logger) *MemberHandler {
	return &MemberHandler{store: s, hub: hub, logger: logger}
}

// List returns every stored row. Sequence fields stay JSON-encoded text
// in the response; clients decode them.
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.store.List()
	if err != nil {
		h.serverError(w, "Failed to fetch members", err)
		return
	}

	rows := make([]model.MemberRow, len(members))
	for i, m := range members {
		rows[i] = model.RowFromMember(m)
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in validate.MemberInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	payload, err := validate.Member(in)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	member, err := h.store.Create(payload)
	if err != nil {
		h.serverError(w, "Failed to create member", err)
		return
	}

	h.hub.Broadcast(ws.MemberEvent("created", member.ID))
	writeJSON(w, http.StatusCreated, model.RowFromMember(*member))
}

func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var in validate.MemberInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	payload, err := validate.Member(in)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	member, err := h.store.Update(id, payload)
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Member not found"})
		return
	}
	if err != nil {
		h.serverError(w, "Failed to update member", err)
		return
	}

	h.hub.Broadcast(ws.MemberEvent("updated", member.ID))
	writeJSON(w, http.StatusOK, model.RowFromMember(*member))
}

func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if _, err := h.store.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Member not found"})
			return
		}
		h.serverError(w, "Failed to delete member", err)
		return
	}

	h.hub.Broadcast(ws.MemberEvent("deleted", id))
	writeJSON(w, http.StatusOK, map[string]string{"message": "Member deleted successfully"})
}

// serverError logs the full failure and replies with a generic message
// plus a short detail string. Query text and stack traces stay in the
// server log.
func (h *MemberHandler) serverError(w http.ResponseWriter, msg string, err error) {
	h.logger.Error(msg, "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   msg,
		"details": err.Error(),
	})
}

func writeValidationError(w http.ResponseWriter, err error) {
	var fe validate.FieldErrors
	if !errors.As(err, &fe) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error":  "validation failed",
		"fields": fe,
	})
}

func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
