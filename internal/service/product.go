package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/felipesousa7/ecommerce-order-system/internal/apperr"
	"github.com/felipesousa7/ecommerce-order-system/internal/model"
	"github.com/felipesousa7/ecommerce-order-system/internal/storage"
)

type ProductService struct {
	products storage.ProductStore
}

func NewProductService(products storage.ProductStore) *ProductService {
	return &ProductService{products: products}
}

type CreateProduct struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
}

// UpdateProduct carries partial updates; nil fields are left unchanged.
type UpdateProduct struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Available   *bool            `json:"available"`
	ImageURL    *string          `json:"image_url"`
}

func (s *ProductService) Create(ctx context.Context, req CreateProduct) (*model.Product, error) {
	if req.Name == "" {
		return nil, apperr.Validationf("product name is required")
	}
	if !req.Price.IsPositive() {
		return nil, apperr.Validationf("product price must be positive")
	}

	exists, err := s.products.NameExists(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflictf("product with name %q already exists", req.Name)
	}

	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Available:   true,
		ImageURL:    req.ImageURL,
		CreatedAt:   time.Now(),
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id int64, req UpdateProduct) (*model.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != product.Name {
		exists, err := s.products.NameExists(ctx, *req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperr.Conflictf("product with name %q already exists", *req.Name)
		}
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if !req.Price.IsPositive() {
			return nil, apperr.Validationf("product price must be positive")
		}
		product.Price = *req.Price
	}
	if req.Available != nil {
		product.Available = *req.Available
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	return s.products.List(ctx)
}

func (s *ProductService) ListAvailable(ctx context.Context) ([]model.Product, error) {
	return s.products.ListAvailable(ctx)
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.products.Delete(ctx, id)
}
