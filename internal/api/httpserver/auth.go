package httpserver

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/soul/laptopkade/internal/api/service"
	"github.com/soul/laptopkade/internal/api/transport"
	"github.com/soul/laptopkade/internal/events"
	"github.com/soul/laptopkade/pkg/logging"
)

type AuthHTTP struct {
	Svc      *service.AuthService
	Producer *events.Producer
}

const bearerPrefix = "Bearer "

func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Invalid token format")
	}
	return strings.TrimPrefix(header, bearerPrefix), nil
}

func (h *AuthHTTP) Signup(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.signup")

	var req transport.SignupRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("signup_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Signup(ctx, req)
	if err != nil {
		l.Warn("signup_failed", "error", err)
		return err
	}

	l.Info("signup_success", "username", user.Username)

	event := map[string]any{"type": "user_signed_up", "userID": user.ID, "username": user.Username}
	if err := h.Producer.PublishEvent(ctx, "user_events", fmt.Sprint(user.ID), event); err != nil {
		l.Error("event_publish_failed", "error", err)
	}

	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	resp, err := h.Svc.Login(ctx, req)
	if err != nil {
		l.Warn("login_failed", "error", err)
		return err
	}

	l.Info("login_success", "username", resp.Username)

	event := map[string]any{"type": "user_logged_in", "username": resp.Username}
	if err := h.Producer.PublishEvent(ctx, "user_events", resp.Username, event); err != nil {
		l.Error("event_publish_failed", "error", err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHTTP) GetUser(c echo.Context) error {
	user, err := h.Svc.GetUserByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ValidateToken reports structural validity only; revoked tokens that are
// unexpired still report true.
func (h *AuthHTTP) ValidateToken(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, false)
	}
	return c.JSON(http.StatusOK, h.Svc.ValidateToken(c.Request().Context(), token))
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}
	if err := h.Svc.RevokeToken(c.Request().Context(), token); err != nil {
		return err
	}
	return c.String(http.StatusOK, "Token revoked successfully")
}

func (h *AuthHTTP) GetUserTokens(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "userId must be a number")
	}

	tokens, err := h.Svc.GetUserActiveTokens(c.Request().Context(), uint(userID))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tokens)
}

func (h *AuthHTTP) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Auth API is running")
}
