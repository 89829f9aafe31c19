package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/soul/laptopkade/internal/api/models"
	"github.com/soul/laptopkade/internal/api/repo"
	"github.com/soul/laptopkade/internal/api/transport"
)

var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

type LaptopService struct {
	Repo *repo.GormRepo
}

func (s *LaptopService) CreateLaptop(ctx context.Context, req transport.CreateLaptopRequest) (*models.Laptop, error) {
	if req.Price == nil || *req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be valid", ErrValidation)
	}
	if req.Stock == nil || *req.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must be valid", ErrValidation)
	}

	laptop := &models.Laptop{
		Brand:        req.Brand,
		Model:        req.Model,
		Processor:    req.Processor,
		RAM:          req.RAM,
		Storage:      req.Storage,
		GraphicsCard: req.GraphicsCard,
		Price:        *req.Price,
		Stock:        *req.Stock,
		Description:  req.Description,
	}
	if err := s.Repo.CreateLaptop(ctx, laptop); err != nil {
		return nil, err
	}
	return laptop, nil
}

func (s *LaptopService) GetLaptop(ctx context.Context, id uint) (*models.Laptop, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: invalid laptop id", ErrValidation)
	}
	return s.Repo.GetLaptop(ctx, id)
}

func (s *LaptopService) ListLaptops(ctx context.Context) ([]models.Laptop, error) {
	return s.Repo.ListLaptops(ctx)
}

func (s *LaptopService) GetLaptopsByBrand(ctx context.Context, brand string) ([]models.Laptop, error) {
	if brand == "" {
		return nil, fmt.Errorf("%w: brand cannot be empty", ErrValidation)
	}
	return s.Repo.FindByBrand(ctx, brand)
}

func (s *LaptopService) GetLaptopsByModel(ctx context.Context, model string) ([]models.Laptop, error) {
	if model == "" {
		return nil, fmt.Errorf("%w: model cannot be empty", ErrValidation)
	}
	return s.Repo.FindByModel(ctx, model)
}

func (s *LaptopService) GetLaptopsUnderPrice(ctx context.Context, price float64) ([]models.Laptop, error) {
	if price < 0 {
		return nil, fmt.Errorf("%w: price must be valid", ErrValidation)
	}
	return s.Repo.FindByPriceLessThan(ctx, price)
}

func (s *LaptopService) GetLaptopsAbovePrice(ctx context.Context, price float64) ([]models.Laptop, error) {
	if price < 0 {
		return nil, fmt.Errorf("%w: price must be valid", ErrValidation)
	}
	return s.Repo.FindByPriceGreaterThan(ctx, price)
}

// GetLaptopsInPriceRange rejects negative bounds and min > max before any
// storage round-trip.
func (s *LaptopService) GetLaptopsInPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]models.Laptop, error) {
	if minPrice < 0 || maxPrice < 0 {
		return nil, fmt.Errorf("%w: prices must be valid", ErrValidation)
	}
	if minPrice > maxPrice {
		return nil, fmt.Errorf("%w: min price cannot be greater than max price", ErrValidation)
	}
	return s.Repo.FindInPriceRange(ctx, minPrice, maxPrice)
}

func (s *LaptopService) SearchLaptops(ctx context.Context, keyword string) ([]models.Laptop, error) {
	if keyword == "" {
		return nil, fmt.Errorf("%w: search keyword cannot be empty", ErrValidation)
	}
	return s.Repo.SearchLaptops(ctx, keyword)
}

func (s *LaptopService) GetLaptopsInStock(ctx context.Context) ([]models.Laptop, error) {
	return s.Repo.FindInStock(ctx)
}

func (s *LaptopService) GetLaptopsOutOfStock(ctx context.Context) ([]models.Laptop, error) {
	return s.Repo.FindOutOfStock(ctx)
}

// UpdateLaptop applies merge-patch semantics: a field overwrites the
// stored value only when present, non-empty and non-negative.
func (s *LaptopService) UpdateLaptop(ctx context.Context, id uint, req transport.UpdateLaptopRequest) (*models.Laptop, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: invalid laptop id", ErrValidation)
	}

	laptop, err := s.Repo.GetLaptop(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Brand != nil && *req.Brand != "" {
		laptop.Brand = *req.Brand
	}
	if req.Model != nil && *req.Model != "" {
		laptop.Model = *req.Model
	}
	if req.Processor != nil && *req.Processor != "" {
		laptop.Processor = *req.Processor
	}
	if req.RAM != nil && *req.RAM != "" {
		laptop.RAM = *req.RAM
	}
	if req.Storage != nil && *req.Storage != "" {
		laptop.Storage = *req.Storage
	}
	if req.GraphicsCard != nil && *req.GraphicsCard != "" {
		laptop.GraphicsCard = *req.GraphicsCard
	}
	if req.Price != nil && *req.Price >= 0 {
		laptop.Price = *req.Price
	}
	if req.Stock != nil && *req.Stock >= 0 {
		laptop.Stock = *req.Stock
	}
	if req.Description != nil && *req.Description != "" {
		laptop.Description = *req.Description
	}

	if err := s.Repo.SaveLaptop(ctx, laptop); err != nil {
		return nil, err
	}
	return laptop, nil
}

func (s *LaptopService) UpdateLaptopStock(ctx context.Context, id uint, stock int) (*models.Laptop, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: invalid laptop id", ErrValidation)
	}
	if stock < 0 {
		return nil, fmt.Errorf("%w: stock must be valid", ErrValidation)
	}

	laptop, err := s.Repo.GetLaptop(ctx, id)
	if err != nil {
		return nil, err
	}
	laptop.Stock = stock
	if err := s.Repo.SaveLaptop(ctx, laptop); err != nil {
		return nil, err
	}
	return laptop, nil
}

func (s *LaptopService) UpdateLaptopPrice(ctx context.Context, id uint, price float64) (*models.Laptop, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: invalid laptop id", ErrValidation)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price must be valid", ErrValidation)
	}

	laptop, err := s.Repo.GetLaptop(ctx, id)
	if err != nil {
		return nil, err
	}
	laptop.Price = price
	if err := s.Repo.SaveLaptop(ctx, laptop); err != nil {
		return nil, err
	}
	return laptop, nil
}

func (s *LaptopService) DeleteLaptop(ctx context.Context, id uint) error {
	if id == 0 {
		return fmt.Errorf("%w: invalid laptop id", ErrValidation)
	}
	return s.Repo.DeleteLaptop(ctx, id)
}

func (s *LaptopService) DeleteAllLaptops(ctx context.Context) error {
	return s.Repo.DeleteAllLaptops(ctx)
}

func (s *LaptopService) GetTotalLaptopCount(ctx context.Context) (int64, error) {
	return s.Repo.CountLaptops(ctx)
}

func (s *LaptopService) GetAveragePrice(ctx context.Context) (float64, error) {
	return s.Repo.AveragePrice(ctx)
}

func (s *LaptopService) GetMostExpensiveLaptop(ctx context.Context) (*models.Laptop, error) {
	return s.Repo.MostExpensive(ctx)
}

func (s *LaptopService) GetLeastExpensiveLaptop(ctx context.Context) (*models.Laptop, error) {
	return s.Repo.LeastExpensive(ctx)
}
