package auth

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Authorize validates the admin session carried in a raw Cookie header.
// Every admin operation calls this first and fails closed.
func (a *AdminAuth) Authorize(cookieHeader string) error {
	if cookieHeader == "" {
		return huma.Error401Unauthorized("No autorizado")
	}

	// Reuse net/http cookie parsing on the raw header value.
	req := http.Request{Header: http.Header{"Cookie": []string{cookieHeader}}}
	cookie, err := req.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return huma.Error401Unauthorized("No autorizado")
	}

	if !a.ValidateToken(cookie.Value) {
		return huma.Error401Unauthorized("No autorizado")
	}
	return nil
}

// RequireAdmin guards the plain chi routes (upload) that bypass huma.
func (a *AdminAuth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookie)
		if err != nil || !a.ValidateToken(cookie.Value) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "No autorizado"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
