package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/uai-coreday/coreday-api/internal/config"
)

const (
	SessionCookie = "admin_session"
	TokenDuration = 24 * time.Hour
)

// AuthInput carries the raw Cookie header into huma operations so each admin
// handler can authorize before touching the store.
type AuthInput struct {
	Cookie string `header:"Cookie" doc:"Admin session cookie"`
}

// AdminAuth is the single admin gate: one shared password, one signed cookie.
// There is no session table; the cookie itself is the session.
type AdminAuth struct {
	cfg *config.Config
}

func NewAdminAuth(cfg *config.Config) *AdminAuth {
	return &AdminAuth{cfg: cfg}
}

// CheckPassword compares the submitted password against the configured one.
func (a *AdminAuth) CheckPassword(password string) bool {
	return subtle.ConstantTimeCompare([]byte(password), []byte(a.cfg.AdminPassword)) == 1
}

func (a *AdminAuth) GenerateToken() (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.cfg.SessionSecret))
}

// ValidateToken checks signature, expiry and the admin role claim.
func (a *AdminAuth) ValidateToken(tokenString string) bool {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(a.cfg.SessionSecret), nil
	})
	if err != nil || !token.Valid {
		return false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	role, _ := claims["role"].(string)
	return role == "admin"
}

func (a *AdminAuth) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.cfg.IsProduction(),
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

// HandleLogin issues the session cookie on an exact password match.
// POST /api/admin/login
func (a *AdminAuth) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req = loginRequest{}
	}

	if !a.CheckPassword(req.Password) {
		http.SetCookie(w, a.sessionCookie("", -1))
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Contraseña incorrecta"})
		return
	}

	token, err := a.GenerateToken()
	if err != nil {
		logger.Error.Printf("Failed to sign session token: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "No se pudo iniciar sesión"})
		return
	}

	http.SetCookie(w, a.sessionCookie(token, int(TokenDuration.Seconds())))
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// HandleLogout clears the session cookie.
// DELETE /api/admin/login
func (a *AdminAuth) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, a.sessionCookie("", -1))
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
