package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/soul/laptopkade/internal/storefront/models"
)

type GormRepo struct {
	DB *gorm.DB
}

func (r *GormRepo) ListLaptops(ctx context.Context) ([]models.Laptop, error) {
	var laptops []models.Laptop
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&laptops).Error; err != nil {
		return nil, err
	}
	return laptops, nil
}

// SearchLaptops matches the query case-insensitively as a substring of
// name or brand. An empty query returns everything.
func (r *GormRepo) SearchLaptops(ctx context.Context, query string) ([]models.Laptop, error) {
	if query == "" {
		return r.ListLaptops(ctx)
	}

	pattern := "%" + query + "%"
	var laptops []models.Laptop
	if err := r.DB.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(brand) LIKE LOWER(?)", pattern, pattern).
		Find(&laptops).Error; err != nil {
		return nil, err
	}
	return laptops, nil
}

func (r *GormRepo) GetLaptop(ctx context.Context, id uint) (*models.Laptop, error) {
	var laptop models.Laptop
	if err := r.DB.WithContext(ctx).First(&laptop, id).Error; err != nil {
		return nil, err
	}
	return &laptop, nil
}

func (r *GormRepo) CreateLaptop(ctx context.Context, laptop *models.Laptop) error {
	return r.DB.WithContext(ctx).Create(laptop).Error
}

func (r *GormRepo) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

func (r *GormRepo) FindAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// CreateOrder persists the order together with its item snapshot as one
// unit of work.
func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Create(order).Error
}

func (r *GormRepo) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) DeleteOrder(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, id).Error
	})
}
