package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soul/laptopkade/internal/storefront/models"
	"github.com/soul/laptopkade/internal/storefront/session"
	"github.com/soul/laptopkade/pkg/hash"
	"github.com/soul/laptopkade/pkg/logging"
)

func (h *StorefrontHTTP) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register", map[string]any{})
}

func (h *StorefrontHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	username := c.FormValue("username")
	email := c.FormValue("email")
	password := c.FormValue("password")
	phone := c.FormValue("phone")

	if _, err := h.Repo.FindUserByUsername(ctx, username); err == nil {
		l.Warn("register_rejected", "reason", "username taken", "username", username)
		return c.Render(http.StatusOK, "register", map[string]any{"Error": "Username already taken"})
	}
	if _, err := h.Repo.FindUserByEmail(ctx, email); err == nil {
		l.Warn("register_rejected", "reason", "email registered", "email", email)
		return c.Render(http.StatusOK, "register", map[string]any{"Error": "Email already registered"})
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_failed", "status", 500, "reason", "cannot hash password", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "registration failed")
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: pwHash,
		Phone:        phone,
	}
	if err := h.Repo.CreateUser(ctx, &user); err != nil {
		l.Error("register_failed", "status", 500, "reason", "cannot persist user", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "registration failed")
	}

	l.Info("user_registered", "username", username)

	event := map[string]any{
		"type":     "user_registered",
		"userID":   user.ID,
		"username": user.Username,
	}
	if err := h.Producer.PublishEvent(ctx, "user_events", fmt.Sprint(user.ID), event); err != nil {
		l.Error("event_publish_failed", "error", err)
	}

	return c.Redirect(http.StatusFound, "/user-login")
}

func (h *StorefrontHTTP) UserLoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "user-login", map[string]any{})
}

func (h *StorefrontHTTP) AuthenticateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.user_authenticate")

	username := c.FormValue("username")
	password := c.FormValue("password")

	// One generic message for both unknown user and wrong password.
	user, err := h.Repo.FindUserByUsername(ctx, username)
	if err != nil || !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("user_login_rejected", "username", username)
		return c.Render(http.StatusOK, "user-login", map[string]any{"Error": "Invalid username or password"})
	}

	sess := session.FromContext(c)
	sess.Do(func(s *session.Session) { s.User = user })

	l.Info("user_logged_in", "username", username)
	return c.Redirect(http.StatusFound, "/home")
}

func (h *StorefrontHTTP) UserLogout(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "auth.user_logout")

	sess := session.FromContext(c)
	sess.Do(func(s *session.Session) {
		if s.User != nil {
			l.Info("user_logged_out", "username", s.User.Username)
		}
		s.User = nil
	})

	return c.Redirect(http.StatusFound, "/home")
}

func (h *StorefrontHTTP) AdminLoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login", map[string]any{})
}

func (h *StorefrontHTTP) AuthenticateAdmin(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.admin_authenticate")

	username := c.FormValue("username")
	password := c.FormValue("password")

	admin, err := h.Repo.FindAdminByUsername(ctx, username)
	if err != nil || !hash.CheckPassword(admin.PasswordHash, password) {
		l.Warn("admin_login_rejected", "username", username)
		return c.Render(http.StatusOK, "login", map[string]any{"Error": "Invalid username or password"})
	}

	sess := session.FromContext(c)
	sess.Do(func(s *session.Session) { s.Admin = admin.Username })

	l.Info("admin_logged_in", "username", username)
	return c.Redirect(http.StatusFound, "/laptops/new")
}

func (h *StorefrontHTTP) AdminLogout(c echo.Context) error {
	sess := session.FromContext(c)
	sess.Do(func(s *session.Session) { s.Admin = "" })
	return c.Redirect(http.StatusFound, "/home")
}
