package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/soul/laptopkade/internal/api/service"
)

// ErrorResponse is the uniform error payload every API failure maps to.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

// HTTPErrorHandler translates any error escaping a handler into the
// uniform payload.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "An unexpected error occurred: " + err.Error()

	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		status = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		}
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, service.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		message = err.Error()
	}

	resp := ErrorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Message:   message,
		Path:      c.Request().URL.Path,
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, resp)
}
