package httpserver

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/soul/laptopkade/internal/storefront/models"
	"github.com/soul/laptopkade/internal/storefront/session"
	"github.com/soul/laptopkade/pkg/logging"
)

func redirectBack(c echo.Context, fallback string) error {
	if ref := c.Request().Header.Get("Referer"); ref != "" {
		return c.Redirect(http.StatusFound, ref)
	}
	return c.Redirect(http.StatusFound, fallback)
}

func (h *StorefrontHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	laptopID, err := strconv.ParseUint(c.FormValue("laptopId"), 10, 32)
	if err != nil {
		l.Warn("add_to_cart_failed", "status", 400, "reason", "laptopId not a number", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid laptop id")
	}

	quantity := 1
	if q, err := strconv.Atoi(c.FormValue("quantity")); err == nil && q > 0 {
		quantity = q
	}

	laptop, err := h.Repo.GetLaptop(ctx, uint(laptopID))
	if err != nil {
		l.Warn("add_to_cart_failed", "reason", "laptop not found", "laptop_id", laptopID)
		return c.Redirect(http.StatusFound, "/home")
	}

	sess := session.FromContext(c)
	sess.AddToCart(laptop, quantity)

	l.Info("cart_add", "laptop_id", laptop.ID, "quantity", quantity)
	return redirectBack(c, "/home")
}

func (h *StorefrontHTTP) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	laptopID, err := strconv.ParseUint(c.FormValue("laptopId"), 10, 32)
	if err != nil {
		l.Warn("remove_from_cart_failed", "status", 400, "reason", "laptopId not a number", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid laptop id")
	}

	sess := session.FromContext(c)
	sess.RemoveFromCart(uint(laptopID))

	l.Info("cart_remove", "laptop_id", laptopID)
	return redirectBack(c, "/cart")
}

func (h *StorefrontHTTP) ViewCart(c echo.Context) error {
	sess := session.FromContext(c)
	return c.Render(http.StatusOK, "cart", map[string]any{
		"Items": sess.CartItems(),
		"Total": sess.CartTotal(),
		"User":  sess.User,
	})
}

// CartCheckout is kept for compatibility with old forms posting to
// /cart/checkout.
func (h *StorefrontHTTP) CartCheckout(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/checkout")
}

func (h *StorefrontHTTP) ShowCheckoutForm(c echo.Context) error {
	sess := session.FromContext(c)
	return c.Render(http.StatusOK, "checkout", map[string]any{
		"Items": sess.CartItems(),
		"Total": sess.CartTotal(),
		"User":  sess.User,
	})
}

func (h *StorefrontHTTP) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.checkout")

	sess := session.FromContext(c)
	items := sess.CartItems()
	if len(items) == 0 {
		l.Warn("checkout_rejected", "reason", "empty cart")
		return c.Redirect(http.StatusFound, "/cart")
	}

	order := &models.Order{
		FullName:   c.FormValue("fullName"),
		Phone:      c.FormValue("phone"),
		Address:    c.FormValue("address"),
		City:       c.FormValue("city"),
		PostalCode: c.FormValue("postalCode"),
		Status:     models.OrderStatusNew,
		CreatedAt:  time.Now(),
	}

	var total float64
	for _, ci := range items {
		order.Items = append(order.Items, models.OrderItem{
			LaptopID:  ci.LaptopID,
			Name:      ci.Name,
			Brand:     ci.Brand,
			UnitPrice: ci.NumericPrice(),
			Quantity:  ci.Quantity,
		})
		total += ci.Total()
	}
	order.Total = total

	if sess.User != nil {
		if user, err := h.Repo.GetUser(ctx, sess.User.ID); err == nil {
			order.UserID = &user.ID
		}
	}

	if err := h.Repo.CreateOrder(ctx, order); err != nil {
		l.Error("checkout_failed", "status", 500, "reason", "cannot persist order", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot persist order")
	}

	sess.ClearCart()

	l.Info("checkout_done", "order_id", order.ID, "items", len(order.Items), "total", order.Total)

	event := map[string]any{
		"type":    "order_created",
		"orderID": order.ID,
		"total":   order.Total,
	}
	if err := h.Producer.PublishEvent(ctx, "order_events", fmt.Sprint(order.ID), event); err != nil {
		l.Error("event_publish_failed", "error", err)
	}

	return c.Redirect(http.StatusFound, "/home")
}
