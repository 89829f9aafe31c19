package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/soul/laptopkade/internal/api/models"
)

type GormRepo struct {
	DB *gorm.DB
}

func (r *GormRepo) CreateLaptop(ctx context.Context, laptop *models.Laptop) error {
	return r.DB.WithContext(ctx).Create(laptop).Error
}

func (r *GormRepo) GetLaptop(ctx context.Context, id uint) (*models.Laptop, error) {
	var laptop models.Laptop
	if err := r.DB.WithContext(ctx).First(&laptop, id).Error; err != nil {
		return nil, err
	}
	return &laptop, nil
}

func (r *GormRepo) ListLaptops(ctx context.Context) ([]models.Laptop, error) {
	var laptops []models.Laptop
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&laptops).Error; err != nil {
		return nil, err
	}
	return laptops, nil
}

func (r *GormRepo) FindByBrand(ctx context.Context, brand string) ([]models.Laptop, error) {
	var laptops []models.Laptop
	if err := r.DB.WithContext(ctx).Where("brand = ?", brand).Find(&laptops).Error; err != nil {
		return nil, err
	}
	return laptops, nil
}

func (r *GormRepo) FindByModel(ctx context.Context, model string) ([]models.Laptop, error) {
	var laptops []models.Laptop
	if err := r.DB.WithContext(ctx).Where("model = ?", model).Find(&laptops).Error; err != nil {
		return nil, err
	}
	return laptops, nil
}

func (r *GormRepo) FindByPriceLessThan(ctx context.Context, price float64) ([]models.Laptop, error) {
	var laptops []models.Laptop
	if err := r.DB.WithContext(ctx).Where("price < ?", price).Find(&laptops).Error; err != nil {
		return nil, err
	}
	return laptops, nil
}

func (r *GormRepo) FindByPriceGreaterThan(ctx context.Context, price float64) ([]models.Laptop, error) {
	var laptops []models.Laptop
	if err := r.DB.WithContext(ctx).Where("price > ?", price).Find(&laptops).Error; err != nil {
		return nil, err
	}
	return laptops, nil
}

func (r *GormRepo) FindInPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]models.Laptop, error) {
	var laptops []models.Laptop
	if err := r.DB.WithContext(ctx).Where("price BETWEEN ? AND ?", minPrice, maxPrice).Find(&laptops).Error; err != nil {
		return nil, err
	}
	return laptops, nil
}

// SearchLaptops matches the keyword case-insensitively against brand,
// model and processor.
func (r *GormRepo) SearchLaptops(ctx context.Context, keyword string) ([]models.Laptop, error) {
	pattern := "%" + keyword + "%"
	var laptops []models.Laptop
	if err := r.DB.WithContext(ctx).
		Where("LOWER(brand) LIKE LOWER(?) OR LOWER(model) LIKE LOWER(?) OR LOWER(processor) LIKE LOWER(?)",
			pattern, pattern, pattern).
		Find(&laptops).Error; err != nil {
		return nil, err
	}
	return laptops, nil
}

func (r *GormRepo) FindInStock(ctx context.Context) ([]models.Laptop, error) {
	var laptops []models.Laptop
	if err := r.DB.WithContext(ctx).Where("stock > 0").Find(&laptops).Error; err != nil {
		return nil, err
	}
	return laptops, nil
}

func (r *GormRepo) FindOutOfStock(ctx context.Context) ([]models.Laptop, error) {
	var laptops []models.Laptop
	if err := r.DB.WithContext(ctx).Where("stock <= 0").Find(&laptops).Error; err != nil {
		return nil, err
	}
	return laptops, nil
}

func (r *GormRepo) SaveLaptop(ctx context.Context, laptop *models.Laptop) error {
	return r.DB.WithContext(ctx).Save(laptop).Error
}

func (r *GormRepo) DeleteLaptop(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Laptop{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) DeleteAllLaptops(ctx context.Context) error {
	return r.DB.WithContext(ctx).Where("1 = 1").Delete(&models.Laptop{}).Error
}

func (r *GormRepo) CountLaptops(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Laptop{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormRepo) AveragePrice(ctx context.Context) (float64, error) {
	var avg *float64
	if err := r.DB.WithContext(ctx).Model(&models.Laptop{}).
		Select("AVG(price)").Scan(&avg).Error; err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

func (r *GormRepo) MostExpensive(ctx context.Context) (*models.Laptop, error) {
	var laptop models.Laptop
	if err := r.DB.WithContext(ctx).Order("price DESC").First(&laptop).Error; err != nil {
		return nil, err
	}
	return &laptop, nil
}

func (r *GormRepo) LeastExpensive(ctx context.Context) (*models.Laptop, error) {
	var laptop models.Laptop
	if err := r.DB.WithContext(ctx).Order("price ASC").First(&laptop).Error; err != nil {
		return nil, err
	}
	return &laptop, nil
}
