package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/obras-paraguay/natacion-api/internal/config"
)

const (
	CookieName    = "admin_token"
	TokenDuration = 24 * time.Hour
)

// AuthInput is embedded by every gated operation to pull the session cookie.
type AuthInput struct {
	Cookie string `header:"Cookie"`
}

// AuthHandler guards the staff panel. The gate is a single shared access ID
// compared for exact equality; no hashing, no lockout, no attempt counting.
// A matching login gets a signed cookie so the panel stays open across
// requests until the operator closes it.
type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// VerifyAccessID checks the operator's access ID against the configured one.
func (h *AuthHandler) VerifyAccessID(accessID string) error {
	if accessID != h.cfg.AdminAccessID {
		return huma.Error401Unauthorized("ID de acceso incorrecto")
	}
	return nil
}

// VerifyExportPIN is the optional second gate in front of the export
// operation. Disabled when no PIN is configured.
func (h *AuthHandler) VerifyExportPIN(pin string) error {
	if h.cfg.ExportPIN == "" {
		return nil
	}
	if pin != h.cfg.ExportPIN {
		return huma.Error401Unauthorized("PIN de exportación incorrecto")
	}
	return nil
}

func (h *AuthHandler) GenerateToken() (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

// Authorize validates the session cookie carried in the Cookie header.
func (h *AuthHandler) Authorize(ctx context.Context, cookieHeader string) error {
	tokenString, err := sessionToken(cookieHeader)
	if err != nil {
		return huma.Error401Unauthorized("Unauthorized")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return huma.Error401Unauthorized("Unauthorized: Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return huma.Error401Unauthorized("Unauthorized: Invalid token claims")
	}
	if role, _ := claims["role"].(string); role != "admin" {
		return huma.Error401Unauthorized("Unauthorized")
	}

	return nil
}

// SessionCookie builds the cookie set on a successful login.
func (h *AuthHandler) SessionCookie(token string) http.Cookie {
	return http.Cookie{
		Name:     CookieName,
		Value:    token,
		Expires:  time.Now().Add(TokenDuration),
		HttpOnly: true,
		Path:     "/",
	}
}

func sessionToken(cookieHeader string) (string, error) {
	if cookieHeader == "" {
		return "", http.ErrNoCookie
	}
	req := http.Request{Header: http.Header{"Cookie": {cookieHeader}}}
	cookie, err := req.Cookie(CookieName)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}
