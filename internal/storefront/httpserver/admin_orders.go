package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/soul/laptopkade/pkg/logging"
)

func (h *StorefrontHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin_orders.list")

	orders, err := h.Repo.ListOrders(ctx)
	if err != nil {
		l.Error("list_orders_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list orders")
	}

	return c.Render(http.StatusOK, "admin-orders", map[string]any{"Orders": orders})
}

func (h *StorefrontHTTP) ViewOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin_orders.view")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		l.Warn("view_order_failed", "status", 400, "reason", "id not a number", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	order, err := h.Repo.GetOrder(ctx, uint(id))
	if err != nil {
		l.Warn("view_order_failed", "reason", "order not found", "order_id", id)
		return c.Redirect(http.StatusFound, "/admin/orders")
	}

	return c.Render(http.StatusOK, "admin-order-details", map[string]any{"Order": order})
}

func (h *StorefrontHTTP) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin_orders.delete")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		l.Warn("delete_order_failed", "status", 400, "reason", "id not a number", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	if err := h.Repo.DeleteOrder(ctx, uint(id)); err != nil {
		l.Error("delete_order_failed", "status", 500, "order_id", id, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete order")
	}

	l.Info("order_deleted", "order_id", id)
	return c.Redirect(http.StatusFound, "/admin/orders")
}
