package httpapi

import (
	"context"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/models"
	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/store"
)

const sessionCookieName = "session_token"

type authContextKey struct{}

type authInfo struct {
	User    models.User
	Session models.Session
}

// SessionMiddleware resolves the session cookie to a user exactly once per
// request and stashes the result on the context, so handlers never repeat
// the lookup. Missing, expired, or malformed tokens all read as anonymous,
// and so does a store error: a flaky database logs the user out rather than
// erroring the page.
func SessionMiddleware(st store.Store, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := sessionTokenFromRequest(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}
		session, user, err := st.GetSession(r.Context(), token)
		if err != nil {
			if !isNotFound(err) {
				log.Printf("session lookup error: %v", err)
			}
			next.ServeHTTP(w, r)
			return
		}
		ctx := context.WithValue(r.Context(), authContextKey{}, authInfo{User: user, Session: session})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func isNotFound(err error) bool {
	return err == store.ErrSessionNotFound
}

func currentUser(ctx context.Context) (models.User, models.Session, bool) {
	value := ctx.Value(authContextKey{})
	if value == nil {
		return models.User{}, models.Session{}, false
	}
	info, ok := value.(authInfo)
	if !ok {
		return models.User{}, models.Session{}, false
	}
	return info.User, info.Session, true
}

func requireUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, _, ok := currentUser(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return models.User{}, false
	}
	return user, true
}

func requireRole(w http.ResponseWriter, r *http.Request, role string) (models.User, bool) {
	user, ok := requireUser(w, r)
	if !ok {
		return models.User{}, false
	}
	if user.Role != role {
		writeError(w, http.StatusForbidden, "access_denied", "insufficient role")
		return models.User{}, false
	}
	return user, true
}

func sessionTokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(cookie.Value)
}

func sessionCookie(token string, maxAge time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func clearedSessionCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func dashboardPath(role string) string {
	switch role {
	case models.RoleAdmin:
		return "/admin/dashboard"
	case models.RoleSupervisor:
		return "/supervisor/dashboard"
	default:
		return "/student/dashboard"
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
