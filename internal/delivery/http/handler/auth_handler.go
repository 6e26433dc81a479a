package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"talent-screen/internal/delivery/http/dto"
	"talent-screen/internal/delivery/http/middleware"
	"talent-screen/internal/domain/user"
	"talent-screen/internal/pkg/response"
	ucauth "talent-screen/internal/usecase/auth"
)

type AuthUsecase interface {
	SignUp(ctx context.Context, in ucauth.SignUpInput) (user.User, string, error)
	SignIn(ctx context.Context, in ucauth.SignInInput) (user.User, string, error)
	CurrentUser(ctx context.Context, token string) (user.User, bool, error)
	SignOut(ctx context.Context, token string) error
}

type AuthHandler struct {
	uc         AuthUsecase
	sessionTTL time.Duration
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(uc AuthUsecase, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{uc: uc, sessionTTL: sessionTTL}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/signup", h.SignUp)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Get("/me", h.Me)
}

func (h *AuthHandler) SignUp(c fiber.Ctx) error {
	var req signupRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, token, err := h.uc.SignUp(c.Context(), ucauth.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		return mapAuthError(err)
	}

	h.setSessionCookie(c, token)

	data := map[string]any{
		"user":          dto.NewUserResponse(usr),
		"session_token": token,
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, data)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, token, err := h.uc.SignIn(c.Context(), ucauth.SignInInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthError(err)
	}

	h.setSessionCookie(c, token)

	data := map[string]any{
		"user":          dto.NewUserResponse(usr),
		"session_token": token,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

// Logout revokes the session server-side and clears the cookie. Safe to call
// with a stale or absent token.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	token := middleware.TokenFromRequest(c)
	if token != "" {
		if err := h.uc.SignOut(c.Context(), token); err != nil {
			return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}
	}

	c.ClearCookie(middleware.SessionCookieName)
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *AuthHandler) Me(c fiber.Ctx) error {
	token := middleware.TokenFromRequest(c)
	if token == "" {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	usr, ok, err := h.uc.CurrentUser(c.Context(), token)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid session", nil, nil)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"user": dto.NewUserResponse(usr)})
}

func (h *AuthHandler) setSessionCookie(c fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL / time.Second),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func mapAuthError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucauth.ErrEmailTaken):
		return middleware.NewAppError(fiber.StatusConflict, "An account with this email already exists", nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid email or password", nil, err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
