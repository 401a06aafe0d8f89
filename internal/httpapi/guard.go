package httpapi

import (
	"net/http"
	"strings"
)

var publicPaths = map[string]bool{
	"/":                 true,
	"/login":            true,
	"/register":         true,
	"/register/success": true,
	"/browse":           true,
	"/healthz":          true,
	"/favicon.ico":      true,
}

var protectedPrefixes = []string{"/admin", "/student", "/supervisor"}

var guardExemptPrefixes = []string{"/api/", "/_next/static/", "/_next/image/"}

// RouteGuard gates the role dashboards on cookie presence only. Expiry and
// role checks happen later, once the session middleware and handlers see
// the request. API routes are exempt: each handler authenticates itself.
func RouteGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if publicPaths[path] {
			next.ServeHTTP(w, r)
			return
		}
		for _, prefix := range guardExemptPrefixes {
			if strings.HasPrefix(path, prefix) {
				next.ServeHTTP(w, r)
				return
			}
		}
		for _, prefix := range protectedPrefixes {
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				if _, err := r.Cookie(sessionCookieName); err != nil {
					http.Redirect(w, r, "/login", http.StatusSeeOther)
					return
				}
				break
			}
		}
		next.ServeHTTP(w, r)
	})
}
