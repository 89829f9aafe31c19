package httpserver

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/soul/laptopkade/internal/storefront/models"
	"github.com/soul/laptopkade/pkg/logging"
)

func (h *StorefrontHTTP) NewLaptopForm(c echo.Context) error {
	return c.Render(http.StatusOK, "add", map[string]any{})
}

func (h *StorefrontHTTP) CreateLaptop(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "laptops.create")

	laptop := models.Laptop{
		Name:  c.FormValue("name"),
		Brand: c.FormValue("brand"),
		Price: c.FormValue("price"),
	}

	// Upload is optional; a failed upload is logged and the laptop saved
	// without an image.
	if file, err := c.FormFile("imageFile"); err == nil && file.Size > 0 {
		if url, err := h.saveImage(file); err != nil {
			l.Error("image_upload_failed", "filename", file.Filename, "error", err)
		} else {
			laptop.ImageURL = url
		}
	}

	if err := h.Repo.CreateLaptop(ctx, &laptop); err != nil {
		l.Error("create_laptop_failed", "status", 500, "reason", "cannot persist laptop", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot persist laptop")
	}

	l.Info("laptop_created", "laptop_id", laptop.ID, "name", laptop.Name)

	event := map[string]any{
		"type":     "laptop_created",
		"laptopID": laptop.ID,
		"name":     laptop.Name,
	}
	if err := h.Producer.PublishEvent(ctx, "laptop_events", fmt.Sprint(laptop.ID), event); err != nil {
		l.Error("event_publish_failed", "error", err)
	}

	return c.Redirect(http.StatusFound, "/home")
}

// saveImage stores the upload under a timestamp-prefixed name so repeated
// uploads of the same filename never collide.
func (h *StorefrontHTTP) saveImage(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
	dst, err := os.Create(filepath.Join(h.UploadDir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/images/laptops/" + filename, nil
}
