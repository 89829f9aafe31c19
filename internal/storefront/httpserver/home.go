package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soul/laptopkade/internal/events"
	"github.com/soul/laptopkade/internal/storefront/repo"
	"github.com/soul/laptopkade/internal/storefront/session"
	"github.com/soul/laptopkade/pkg/logging"
)

type StorefrontHTTP struct {
	Repo      *repo.GormRepo
	Producer  *events.Producer
	UploadDir string
}

func (h *StorefrontHTTP) Home(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "storefront.home")

	laptops, err := h.Repo.ListLaptops(ctx)
	if err != nil {
		l.Error("home_failed", "status", 500, "reason", "cannot list laptops", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list laptops")
	}

	sess := session.FromContext(c)
	return c.Render(http.StatusOK, "home", map[string]any{
		"Laptops":  laptops,
		"User":     sess.User,
		"CartSize": len(sess.CartItems()),
	})
}

func (h *StorefrontHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "storefront.search")

	query := c.QueryParam("query")
	laptops, err := h.Repo.SearchLaptops(ctx, query)
	if err != nil {
		l.Error("search_failed", "status", 500, "query", query, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}

	l.Info("search_done", "query", query, "results", len(laptops))
	return c.Render(http.StatusOK, "search-results", map[string]any{
		"Laptops": laptops,
		"Query":   query,
	})
}
