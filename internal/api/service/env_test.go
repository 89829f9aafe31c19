package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	apijwt "github.com/soul/laptopkade/internal/api/jwt"
	"github.com/soul/laptopkade/internal/api/models"
	"github.com/soul/laptopkade/internal/api/repo"
)

func initTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(&models.Laptop{}, &models.User{}, &models.Token{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func newTestAuthService(t *testing.T) *AuthService {
	return &AuthService{
		Repo: &repo.GormRepo{DB: initTestDB(t)},
		Provider: &apijwt.Provider{
			Secret:     []byte("test-jwt-secret"),
			Expiration: 24 * time.Hour,
		},
	}
}

func newTestLaptopService(t *testing.T) *LaptopService {
	return &LaptopService{Repo: &repo.GormRepo{DB: initTestDB(t)}}
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
