package seed

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"github.com/soul/laptopkade/internal/storefront/models"
	"github.com/soul/laptopkade/pkg/hash"
)

// Run seeds a default admin and a handful of demo laptops when the
// respective tables are empty. Safe to call on every startup.
func Run(ctx context.Context, db *gorm.DB, l *slog.Logger) error {
	var adminCount int64
	if err := db.WithContext(ctx).Model(&models.Admin{}).Count(&adminCount).Error; err != nil {
		return err
	}
	if adminCount == 0 {
		pwHash, err := hash.HashPassword("admin123")
		if err != nil {
			return err
		}
		admin := models.Admin{
			Username:     "admin",
			PasswordHash: pwHash,
			Email:        "admin@laptopstore.com",
		}
		if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
			return err
		}
		l.Info("seeded default admin", "username", admin.Username)
	}

	var laptopCount int64
	if err := db.WithContext(ctx).Model(&models.Laptop{}).Count(&laptopCount).Error; err != nil {
		return err
	}
	if laptopCount == 0 {
		laptops := []models.Laptop{
			{Name: "XPS 13", Brand: "Dell", Price: "$999", ImageURL: "/images/laptops/xps-13.jpg"},
			{Name: "MacBook Air", Brand: "Apple", Price: "$1199", ImageURL: "/images/laptops/macbook-air.jpg"},
			{Name: "ThinkPad X1", Brand: "Lenovo", Price: "$1299", ImageURL: "/images/laptops/thinkpad-x1.jpg"},
			{Name: "Pavilion 15", Brand: "HP", Price: "$849", ImageURL: "/images/laptops/pavilion-15.jpg"},
		}
		if err := db.WithContext(ctx).Create(&laptops).Error; err != nil {
			return err
		}
		l.Info("seeded demo laptops", "count", len(laptops))
	}

	return nil
}
