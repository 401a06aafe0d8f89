package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/models"
	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/store"
)

func (h *Handler) handleTheses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	theses, err := h.store.ListTheses(r.Context(), models.ContentPublished, listOptions(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"theses": emptyIfNil(theses)})
}

// handleThesisByID serves GET /api/theses/{id} and
// POST /api/theses/{id}/actions/{submit|publish|reject}.
func (h *Handler) handleThesisByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/theses/")
	parts := strings.Split(rest, "/")

	if len(parts) == 1 {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.getThesis(w, r, parts[0])
		return
	}

	if len(parts) == 3 && parts[1] == "actions" {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.thesisAction(w, r, parts[0], parts[2])
		return
	}

	http.NotFound(w, r)
}

func (h *Handler) getThesis(w http.ResponseWriter, r *http.Request, thesisID string) {
	if !isValidUUID(thesisID) {
		writeError(w, http.StatusBadRequest, "invalid_request", "thesis id must be a UUID")
		return
	}
	thesis, err := h.store.GetThesis(r.Context(), thesisID)
	if err != nil {
		if errors.Is(err, store.ErrContentNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "thesis not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, thesis)
}

func (h *Handler) thesisAction(w http.ResponseWriter, r *http.Request, thesisID, action string) {
	if !isValidUUID(thesisID) {
		writeError(w, http.StatusBadRequest, "invalid_request", "thesis id must be a UUID")
		return
	}

	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	thesis, err := h.store.GetThesis(r.Context(), thesisID)
	if err != nil {
		if errors.Is(err, store.ErrContentNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "thesis not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	switch action {
	case "submit":
		if thesis.AuthorID != user.UserID {
			writeError(w, http.StatusForbidden, "access_denied", "only the author can submit")
			return
		}
	case "publish", "reject":
		if user.Role != models.RoleSupervisor && user.Role != models.RoleAdmin {
			writeError(w, http.StatusForbidden, "access_denied", "reviewer role required")
			return
		}
		if user.Role == models.RoleSupervisor && thesis.SupervisorID != user.UserID {
			writeError(w, http.StatusForbidden, "access_denied", "not the assigned supervisor")
			return
		}
	default:
		writeError(w, http.StatusBadRequest, "invalid_request", "unknown action")
		return
	}

	if !store.ValidContentTransition(action, thesis.Status) {
		writeError(w, http.StatusConflict, "invalid_transition", "thesis is not in a state that allows this action")
		return
	}
	if err := h.store.SetThesisStatus(r.Context(), thesisID, action); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) handlePublications(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	publications, err := h.store.ListPublications(r.Context(), models.ContentPublished, listOptions(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"publications": emptyIfNil(publications)})
}

func (h *Handler) handlePublicationByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/publications/")
	if !isValidUUID(id) {
		writeError(w, http.StatusBadRequest, "invalid_request", "publication id must be a UUID")
		return
	}
	publication, err := h.store.GetPublication(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrContentNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "publication not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, publication)
}

func (h *Handler) handleDatasets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	datasets, err := h.store.ListDatasets(r.Context(), models.ContentPublished, listOptions(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"datasets": emptyIfNil(datasets)})
}

func (h *Handler) handleDatasetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/datasets/")
	if !isValidUUID(id) {
		writeError(w, http.StatusBadRequest, "invalid_request", "dataset id must be a UUID")
		return
	}
	dataset, err := h.store.GetDataset(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrContentNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "dataset not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, dataset)
}

func (h *Handler) handleModels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	list, err := h.store.ListModels(r.Context(), models.ContentPublished, listOptions(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"models": emptyIfNil(list)})
}

func (h *Handler) handleModelByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/models/")
	if !isValidUUID(id) {
		writeError(w, http.StatusBadRequest, "invalid_request", "model id must be a UUID")
		return
	}
	model, err := h.store.GetModel(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrContentNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "model not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, model)
}

func (h *Handler) handlePopular(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	items, err := h.store.PopularContent(r.Context(), listOptions(r).Limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"popular": emptyIfNil(items)})
}

func (h *Handler) handleStudentTheses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	theses, err := h.store.ListThesesByAuthor(r.Context(), user.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"theses": emptyIfNil(theses)})
}

func (h *Handler) handleSupervisorTheses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	user, ok := requireRole(w, r, models.RoleSupervisor)
	if !ok {
		return
	}
	status := strings.TrimSpace(r.URL.Query().Get("status"))
	theses, err := h.store.ListThesesBySupervisor(r.Context(), user.UserID, status)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"theses": emptyIfNil(theses)})
}

// emptyIfNil keeps list responses as [] instead of null.
func emptyIfNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
