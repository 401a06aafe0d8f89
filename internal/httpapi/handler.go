package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"expvar"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/models"
	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/search"
	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/store"

	"github.com/google/uuid"
)

type Handler struct {
	store         store.Store
	search        *search.Service
	sessionTTL    time.Duration
	secureCookies bool
}

type Options struct {
	SessionTTL    time.Duration
	SecureCookies bool
}

func NewHandler(st store.Store, searcher *search.Service, options Options) *Handler {
	ttl := options.SessionTTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Handler{
		store:         st,
		search:        searcher,
		sessionTTL:    ttl,
		secureCookies: options.SecureCookies,
	}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.handleHealth)
	mux.Handle("/metrics", expvar.Handler())
	mux.HandleFunc("/api/auth/login", h.handleLogin)
	mux.HandleFunc("/api/auth/me", h.handleMe)
	mux.HandleFunc("/api/logout", h.handleLogout)
	mux.HandleFunc("/api/register", h.handleRegister)
	mux.HandleFunc("/api/search", h.handleSearch)
	mux.HandleFunc("/api/content/log-view", h.handleLogView)
	mux.HandleFunc("/api/content/log-download", h.handleLogDownload)
	mux.HandleFunc("/api/theses", h.handleTheses)
	mux.HandleFunc("/api/theses/", h.handleThesisByID)
	mux.HandleFunc("/api/publications", h.handlePublications)
	mux.HandleFunc("/api/publications/", h.handlePublicationByID)
	mux.HandleFunc("/api/datasets", h.handleDatasets)
	mux.HandleFunc("/api/datasets/", h.handleDatasetByID)
	mux.HandleFunc("/api/models", h.handleModels)
	mux.HandleFunc("/api/models/", h.handleModelByID)
	mux.HandleFunc("/api/stats/popular", h.handlePopular)
	mux.HandleFunc("/api/student/theses", h.handleStudentTheses)
	mux.HandleFunc("/api/supervisor/theses", h.handleSupervisorTheses)
	mux.HandleFunc("/api/admin/registrations", h.handleListRegistrations)
	mux.HandleFunc("/api/admin/registrations/", h.handleRegistrationAction)
	mux.HandleFunc("/api/admin/users", h.handleListUsers)
	mux.HandleFunc("/api/admin/users/", h.handleUserAction)
	mux.HandleFunc("/api/admin/audit", h.handleListAudit)
	return mux
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User     models.User `json:"user"`
	Redirect string      `json:"redirect"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req loginRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid JSON payload")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "email and password are required")
		return
	}

	result, err := h.store.Login(r.Context(), store.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
		case errors.Is(err, store.ErrUserNotApproved):
			writeError(w, http.StatusForbidden, "not_approved", "account is awaiting admin approval")
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		}
		return
	}

	http.SetCookie(w, sessionCookie(result.Session.Token, h.sessionTTL, h.secureCookies))
	writeJSON(w, http.StatusOK, loginResponse{
		User:     result.User,
		Redirect: dashboardPath(result.User.Role),
	})
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	user, session, ok := currentUser(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "not signed in")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":       user,
		"expires_at": session.ExpiresAt.Format(time.RFC3339),
	})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if token := sessionTokenFromRequest(r); token != "" {
		// Best effort: an already-deleted token is fine.
		_ = h.store.DeleteSession(r.Context(), token)
	}
	http.SetCookie(w, clearedSessionCookie(h.secureCookies))
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/register?error=invalid_form", http.StatusSeeOther)
		return
	}

	input := store.RegisterInput{
		Email:          strings.TrimSpace(r.PostFormValue("email")),
		Password:       r.PostFormValue("password"),
		FullName:       strings.TrimSpace(r.PostFormValue("full_name")),
		Role:           strings.TrimSpace(r.PostFormValue("role")),
		StudentID:      strings.TrimSpace(r.PostFormValue("student_id")),
		Department:     strings.TrimSpace(r.PostFormValue("department")),
		Specialization: strings.TrimSpace(r.PostFormValue("specialization")),
	}
	if input.Role == "" {
		input.Role = models.RoleStudent
	}

	if code := validateRegistration(input); code != "" {
		http.Redirect(w, r, "/register?error="+code, http.StatusSeeOther)
		return
	}

	if _, err := h.store.Register(r.Context(), input); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			http.Redirect(w, r, "/register?error=email_taken", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/register?error=internal", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/register/success", http.StatusSeeOther)
}

func validateRegistration(input store.RegisterInput) string {
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return "invalid_email"
	}
	if len(input.Password) < 8 {
		return "weak_password"
	}
	if input.FullName == "" {
		return "missing_name"
	}
	if input.Role != models.RoleStudent && input.Role != models.RoleSupervisor {
		return "invalid_role"
	}
	return ""
}

type searchResponse struct {
	Results []search.Result `json:"results"`
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	query := r.URL.Query().Get("q")
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "limit must be an integer")
			return
		}
		limit = parsed
	}
	results := h.search.Search(r.Context(), query, limit)
	writeJSON(w, http.StatusOK, searchResponse{Results: results})
}

type logEventRequest struct {
	ContentType string `json:"contentType"`
	ContentID   string `json:"contentId"`
	FileSize    *int64 `json:"fileSize,omitempty"`
}

func (h *Handler) handleLogView(w http.ResponseWriter, r *http.Request) {
	h.handleLogEvent(w, r, h.store.LogView)
}

func (h *Handler) handleLogDownload(w http.ResponseWriter, r *http.Request) {
	h.handleLogEvent(w, r, h.store.LogDownload)
}

func (h *Handler) handleLogEvent(w http.ResponseWriter, r *http.Request, logFn func(ctx context.Context, input store.LogEventInput) error) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req logEventRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid JSON payload")
		return
	}
	req.ContentType = strings.TrimSpace(req.ContentType)
	req.ContentID = strings.TrimSpace(req.ContentID)
	if req.ContentType == "" || req.ContentID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "contentType and contentId are required")
		return
	}
	if _, ok := store.LookupContentTable(req.ContentType); !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "unknown content type")
		return
	}
	if !isValidUUID(req.ContentID) {
		writeError(w, http.StatusBadRequest, "invalid_request", "contentId must be a UUID")
		return
	}

	// Anonymous events are allowed; user_id stays null.
	var userID *string
	if user, _, ok := currentUser(r.Context()); ok {
		userID = &user.UserID
	}

	err := logFn(r.Context(), store.LogEventInput{
		ContentType: req.ContentType,
		ContentID:   req.ContentID,
		UserID:      userID,
		IPAddress:   clientIP(r),
		FileSize:    req.FileSize,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUnknownContentType):
			writeError(w, http.StatusBadRequest, "invalid_request", "unknown content type")
		case errors.Is(err, store.ErrContentNotFound):
			writeError(w, http.StatusNotFound, "not_found", "content not found")
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: responseError{Code: code, Message: message}})
}

type errorResponse struct {
	Error responseError `json:"error"`
}

type responseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func isValidUUID(value string) bool {
	_, err := uuid.Parse(value)
	return err == nil
}

func listOptions(r *http.Request) store.ListOptions {
	opts := store.ListOptions{Limit: 20}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			opts.Limit = parsed
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			opts.Offset = parsed
		}
	}
	return opts
}
