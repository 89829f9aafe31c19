package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/soul/laptopkade/internal/api/service"
	"github.com/soul/laptopkade/internal/api/transport"
	"github.com/soul/laptopkade/internal/events"
	"github.com/soul/laptopkade/pkg/logging"
)

type LaptopHTTP struct {
	Svc      *service.LaptopService
	Producer *events.Producer
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be a number")
	}
	return uint(id), nil
}

func (h *LaptopHTTP) publish(c echo.Context, event map[string]any) {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx)
	if err := h.Producer.PublishEvent(ctx, "laptop_events", fmt.Sprint(event["laptopID"]), event); err != nil {
		l.Error("event_publish_failed", "error", err)
	}
}

func (h *LaptopHTTP) CreateLaptop(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "laptop.create")

	var req transport.CreateLaptopRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_laptop_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	laptop, err := h.Svc.CreateLaptop(ctx, req)
	if err != nil {
		l.Warn("create_laptop_failed", "error", err)
		return err
	}

	l.Info("create_laptop_success", "laptop_id", laptop.ID)
	h.publish(c, map[string]any{"type": "laptop_created", "laptopID": laptop.ID, "model": laptop.Model})
	return c.JSON(http.StatusCreated, laptop)
}

func (h *LaptopHTTP) GetLaptops(c echo.Context) error {
	laptops, err := h.Svc.ListLaptops(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, laptops)
}

func (h *LaptopHTTP) GetLaptop(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "laptop.get")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	laptop, err := h.Svc.GetLaptop(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_laptop_failed", "status", 404, "laptop_id", id)
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Laptop not found with id: %d", id))
		}
		return err
	}

	return c.JSON(http.StatusOK, laptop)
}

func (h *LaptopHTTP) GetLaptopsByBrand(c echo.Context) error {
	laptops, err := h.Svc.GetLaptopsByBrand(c.Request().Context(), c.Param("brand"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, laptops)
}

func (h *LaptopHTTP) GetLaptopsByModel(c echo.Context) error {
	laptops, err := h.Svc.GetLaptopsByModel(c.Request().Context(), c.Param("model"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, laptops)
}

func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "price must be a number")
	}
	return price, nil
}

func (h *LaptopHTTP) GetLaptopsUnderPrice(c echo.Context) error {
	price, err := parsePrice(c.Param("price"))
	if err != nil {
		return err
	}
	laptops, err := h.Svc.GetLaptopsUnderPrice(c.Request().Context(), price)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, laptops)
}

func (h *LaptopHTTP) GetLaptopsAbovePrice(c echo.Context) error {
	price, err := parsePrice(c.Param("price"))
	if err != nil {
		return err
	}
	laptops, err := h.Svc.GetLaptopsAbovePrice(c.Request().Context(), price)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, laptops)
}

func (h *LaptopHTTP) GetLaptopsInPriceRange(c echo.Context) error {
	minPrice, err := parsePrice(c.QueryParam("minPrice"))
	if err != nil {
		return err
	}
	maxPrice, err := parsePrice(c.QueryParam("maxPrice"))
	if err != nil {
		return err
	}
	laptops, err := h.Svc.GetLaptopsInPriceRange(c.Request().Context(), minPrice, maxPrice)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, laptops)
}

func (h *LaptopHTTP) SearchLaptops(c echo.Context) error {
	laptops, err := h.Svc.SearchLaptops(c.Request().Context(), c.QueryParam("keyword"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, laptops)
}

func (h *LaptopHTTP) GetLaptopsInStock(c echo.Context) error {
	laptops, err := h.Svc.GetLaptopsInStock(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, laptops)
}

func (h *LaptopHTTP) GetLaptopsOutOfStock(c echo.Context) error {
	laptops, err := h.Svc.GetLaptopsOutOfStock(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, laptops)
}

func (h *LaptopHTTP) GetTotalCount(c echo.Context) error {
	count, err := h.Svc.GetTotalLaptopCount(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, count)
}

func (h *LaptopHTTP) GetAveragePrice(c echo.Context) error {
	avg, err := h.Svc.GetAveragePrice(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, avg)
}

func (h *LaptopHTTP) GetMostExpensive(c echo.Context) error {
	laptop, err := h.Svc.GetMostExpensiveLaptop(c.Request().Context())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "No laptops found")
		}
		return err
	}
	return c.JSON(http.StatusOK, laptop)
}

func (h *LaptopHTTP) GetLeastExpensive(c echo.Context) error {
	laptop, err := h.Svc.GetLeastExpensiveLaptop(c.Request().Context())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "No laptops found")
		}
		return err
	}
	return c.JSON(http.StatusOK, laptop)
}

func (h *LaptopHTTP) UpdateLaptop(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "laptop.update")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req transport.UpdateLaptopRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_laptop_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	laptop, err := h.Svc.UpdateLaptop(ctx, id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("update_laptop_failed", "status", 404, "laptop_id", id)
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Laptop not found with id: %d", id))
		}
		return err
	}

	l.Info("update_laptop_success", "laptop_id", id)
	h.publish(c, map[string]any{"type": "laptop_updated", "laptopID": laptop.ID, "model": laptop.Model})
	return c.JSON(http.StatusOK, laptop)
}

func (h *LaptopHTTP) UpdateLaptopStock(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return err
	}
	stock, err := strconv.Atoi(c.QueryParam("stock"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "stock must be a number")
	}

	laptop, err := h.Svc.UpdateLaptopStock(ctx, id, stock)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Laptop not found with id: %d", id))
		}
		return err
	}
	return c.JSON(http.StatusOK, laptop)
}

func (h *LaptopHTTP) UpdateLaptopPrice(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return err
	}
	price, err := parsePrice(c.QueryParam("price"))
	if err != nil {
		return err
	}

	laptop, err := h.Svc.UpdateLaptopPrice(ctx, id, price)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Laptop not found with id: %d", id))
		}
		return err
	}
	return c.JSON(http.StatusOK, laptop)
}

func (h *LaptopHTTP) DeleteLaptop(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "laptop.delete")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteLaptop(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("delete_laptop_failed", "status", 404, "laptop_id", id)
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Laptop not found with id: %d", id))
		}
		return err
	}

	l.Info("delete_laptop_success", "laptop_id", id)
	h.publish(c, map[string]any{"type": "laptop_deleted", "laptopID": id})
	return c.NoContent(http.StatusNoContent)
}

func (h *LaptopHTTP) DeleteAllLaptops(c echo.Context) error {
	if err := h.Svc.DeleteAllLaptops(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LaptopHTTP) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Laptop API is running")
}
