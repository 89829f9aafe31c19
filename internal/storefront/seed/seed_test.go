package seed

import (
	"context"
	"log/slog"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/soul/laptopkade/internal/storefront/models"
	"github.com/soul/laptopkade/pkg/hash"
)

func initTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}, &models.Laptop{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return db
}

func TestRun_SeedsAdminAndDemoLaptops(t *testing.T) {
	db := initTestDB(t)

	require.NoError(t, Run(context.Background(), db, slog.Default()))

	var admin models.Admin
	require.NoError(t, db.First(&admin).Error)
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, "admin@laptopstore.com", admin.Email)
	assert.True(t, hash.CheckPassword(admin.PasswordHash, "admin123"))

	var laptops int64
	db.Model(&models.Laptop{}).Count(&laptops)
	assert.Equal(t, int64(4), laptops)
}

func TestRun_IsIdempotent(t *testing.T) {
	db := initTestDB(t)

	require.NoError(t, Run(context.Background(), db, slog.Default()))
	require.NoError(t, Run(context.Background(), db, slog.Default()))

	var admins, laptops int64
	db.Model(&models.Admin{}).Count(&admins)
	db.Model(&models.Laptop{}).Count(&laptops)
	assert.Equal(t, int64(1), admins)
	assert.Equal(t, int64(4), laptops)
}
