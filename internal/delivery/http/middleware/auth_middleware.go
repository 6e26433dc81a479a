package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"

	"talent-screen/internal/domain/user"
)

const (
	CtxUserIDKey = "user_id"
	CtxEmailKey  = "email"
	CtxRoleKey   = "role"

	SessionCookieName = "session_token"
)

// SessionValidator resolves a session token to its user. Every request hits
// the store so a signout anywhere takes effect immediately.
type SessionValidator interface {
	CurrentUser(ctx context.Context, token string) (user.User, bool, error)
}

type AuthMiddleware struct {
	sessions SessionValidator
}

func NewAuthMiddleware(sessions SessionValidator) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token := TokenFromRequest(c)
		if token == "" {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		u, ok, err := m.sessions.CurrentUser(c.Context(), token)
		if err != nil {
			return NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Invalid session", nil, nil)
		}

		c.Locals(CtxUserIDKey, u.ID)
		c.Locals(CtxEmailKey, u.Email)
		c.Locals(CtxRoleKey, u.Role)

		return c.Next()
	}
}

// TokenFromRequest prefers the Authorization bearer header and falls back to
// the session cookie set at login.
func TokenFromRequest(c fiber.Ctx) string {
	if tok, ok := bearerTokenFromHeader(c.Get("Authorization")); ok {
		return tok
	}
	return strings.TrimSpace(c.Cookies(SessionCookieName))
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
