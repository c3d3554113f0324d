package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/pharma_inventory/internal/domain"
	"github.com/Gunvolt24/pharma_inventory/internal/ports"
)

var _ ports.ProductService = (*ProductService)(nil)

// ProductService - прикладная логика каталога.
type ProductService struct {
	repo      ports.ProductRepository
	validator ports.ProductValidator
	log       ports.Logger
}

func NewProductService(repo ports.ProductRepository, validator ports.ProductValidator, log ports.Logger) *ProductService {
	return &ProductService{repo: repo, validator: validator, log: log}
}

// CreateProduct - новая позиция всегда active. Уникальность кода не проверяется.
func (s *ProductService) CreateProduct(ctx context.Context, in *domain.ProductCreate) (*domain.Product, error) {
	if in == nil {
		in = &domain.ProductCreate{}
	}
	if err := rejectInvalid(ctx, s.log, entityProduct, "create", s.validator.ValidateCreate(ctx, in)); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Product{
		Code:        in.Code,
		Name:        in.Name,
		Description: optional(in.Description),
		Laboratory:  optional(in.Laboratory),
		Status:      domain.StatusActive,
	})
	if err != nil {
		s.log.Errorf(ctx, "repo.Create product failed code=%s err=%v", in.Code, err)
		return nil, fmt.Errorf("create product: %w", err)
	}

	recordWrite(entityProduct, "create")
	s.log.Infof(ctx, "product created id=%s code=%s", created.ID, created.Code)
	return created, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProductService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	return s.repo.List(ctx, filter)
}

// ListActiveProducts - список для выбора товара при приёмке.
func (s *ProductService) ListActiveProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.ListActive(ctx)
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, in *domain.ProductUpdate) (*domain.Product, error) {
	if in == nil {
		in = &domain.ProductUpdate{}
	}
	if err := rejectInvalid(ctx, s.log, entityProduct, "update", s.validator.ValidateUpdate(ctx, in)); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, in)
	if err != nil {
		s.log.Warnf(ctx, "repo.Update product failed id=%s err=%v", id, err)
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}

	recordWrite(entityProduct, "update")
	s.log.Infof(ctx, "product updated id=%s", id)
	return updated, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Warnf(ctx, "repo.Delete product failed id=%s err=%v", id, err)
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	recordWrite(entityProduct, "delete")
	s.log.Infof(ctx, "product deleted id=%s", id)
	return nil
}

func (s *ProductService) ValidateProduct(ctx context.Context, in *domain.ProductCreate) domain.ValidationResult {
	return s.validator.ValidateCreate(ctx, in)
}
