package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/models"
	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/store"
)

func (h *Handler) handleListRegistrations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireRole(w, r, models.RoleAdmin); !ok {
		return
	}
	requests, err := h.store.ListPendingRequests(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"requests": emptyIfNil(requests)})
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

// handleRegistrationAction serves POST /api/admin/registrations/{id}/approve
// and /api/admin/registrations/{id}/reject.
func (h *Handler) handleRegistrationAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	admin, ok := requireRole(w, r, models.RoleAdmin)
	if !ok {
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/admin/registrations/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 {
		http.NotFound(w, r)
		return
	}
	requestID, action := parts[0], parts[1]
	if !isValidUUID(requestID) {
		writeError(w, http.StatusBadRequest, "invalid_request", "request id must be a UUID")
		return
	}

	var err error
	switch action {
	case "approve":
		err = h.store.ApproveRegistration(r.Context(), requestID, admin.UserID)
	case "reject":
		var req rejectRequest
		if r.Body != nil {
			// Reason is optional; a missing or invalid body just means no reason.
			_ = json.NewDecoder(r.Body).Decode(&req)
		}
		err = h.store.RejectRegistration(r.Context(), requestID, admin.UserID, strings.TrimSpace(req.Reason))
	default:
		writeError(w, http.StatusBadRequest, "invalid_request", "unknown action")
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, store.ErrRequestNotFound):
			writeError(w, http.StatusNotFound, "not_found", "registration request not found")
		case errors.Is(err, store.ErrRequestNotPending):
			writeError(w, http.StatusConflict, "not_pending", "registration request was already reviewed")
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireRole(w, r, models.RoleAdmin); !ok {
		return
	}
	role := strings.TrimSpace(r.URL.Query().Get("role"))
	users, err := h.store.ListUsers(r.Context(), role, listOptions(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"users": emptyIfNil(users)})
}

// handleUserAction serves POST /api/admin/users/{id}/deactivate and
// /api/admin/users/{id}/reactivate.
func (h *Handler) handleUserAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	admin, ok := requireRole(w, r, models.RoleAdmin)
	if !ok {
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/admin/users/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 {
		http.NotFound(w, r)
		return
	}
	userID, action := parts[0], parts[1]
	if !isValidUUID(userID) {
		writeError(w, http.StatusBadRequest, "invalid_request", "user id must be a UUID")
		return
	}

	var approved bool
	switch action {
	case "deactivate":
		approved = false
	case "reactivate":
		approved = true
	default:
		writeError(w, http.StatusBadRequest, "invalid_request", "unknown action")
		return
	}

	if err := h.store.SetUserApproved(r.Context(), admin.UserID, userID, approved); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "user not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) handleListAudit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireRole(w, r, models.RoleAdmin); !ok {
		return
	}
	actionType := strings.TrimSpace(r.URL.Query().Get("action"))
	logs, err := h.store.ListAudit(r.Context(), actionType, listOptions(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"audit": emptyIfNil(logs)})
}
