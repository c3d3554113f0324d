package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/pharma_inventory/internal/domain"
	"github.com/Gunvolt24/pharma_inventory/internal/ports"
)

var _ ports.SupplierService = (*SupplierService)(nil)

// SupplierService - прикладная логика справочника поставщиков (без знаний о транспорте).
type SupplierService struct {
	repo      ports.SupplierRepository
	validator ports.SupplierValidator
	log       ports.Logger
}

// NewSupplierService - DI-конструктор.
func NewSupplierService(repo ports.SupplierRepository, validator ports.SupplierValidator, log ports.Logger) *SupplierService {
	return &SupplierService{repo: repo, validator: validator, log: log}
}

// CreateSupplier - проверка, затем сохранение. Статус всегда active, повторы кодов деятельности убираются.
func (s *SupplierService) CreateSupplier(ctx context.Context, in *domain.SupplierCreate) (*domain.Supplier, error) {
	if in == nil {
		in = &domain.SupplierCreate{}
	}
	if err := rejectInvalid(ctx, s.log, entitySupplier, "create", s.validator.ValidateCreate(ctx, in)); err != nil {
		return nil, err
	}

	codes := in.EconomicActivity.Dedup()
	if codes == nil {
		codes = domain.ActivityCodes{}
	}

	created, err := s.repo.Create(ctx, &domain.Supplier{
		IDType:           in.IDType,
		IDNumber:         in.IDNumber,
		Name:             in.Name,
		Address:          optional(in.Address),
		Phone:            optional(in.Phone),
		Email:            optional(in.Email),
		ContactPerson:    optional(in.ContactPerson),
		EconomicActivity: codes,
		Status:           domain.StatusActive,
	})
	if err != nil {
		s.log.Errorf(ctx, "repo.Create supplier failed id_number=%s err=%v", in.IDNumber, err)
		return nil, fmt.Errorf("create supplier: %w", err)
	}

	recordWrite(entitySupplier, "create")
	s.log.Infof(ctx, "supplier created id=%s id_type=%s", created.ID, created.IDType)
	return created, nil
}

// GetSupplier - (nil, nil), если поставщика нет.
func (s *SupplierService) GetSupplier(ctx context.Context, id string) (*domain.Supplier, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *SupplierService) ListSuppliers(ctx context.Context, filter domain.SupplierFilter) ([]*domain.Supplier, error) {
	return s.repo.List(ctx, filter)
}

// UpdateSupplier - частичное обновление: проверяются только переданные поля.
func (s *SupplierService) UpdateSupplier(ctx context.Context, id string, in *domain.SupplierUpdate) (*domain.Supplier, error) {
	if in == nil {
		in = &domain.SupplierUpdate{}
	}
	if err := rejectInvalid(ctx, s.log, entitySupplier, "update", s.validator.ValidateUpdate(ctx, in)); err != nil {
		return nil, err
	}

	patch := *in
	patch.EconomicActivity = in.EconomicActivity.Dedup()

	updated, err := s.repo.Update(ctx, id, &patch)
	if err != nil {
		s.log.Warnf(ctx, "repo.Update supplier failed id=%s err=%v", id, err)
		return nil, fmt.Errorf("update supplier %s: %w", id, err)
	}

	recordWrite(entitySupplier, "update")
	s.log.Infof(ctx, "supplier updated id=%s", id)
	return updated, nil
}

// DeleteSupplier - domain.ErrInUse, если на поставщика ссылаются приёмки.
func (s *SupplierService) DeleteSupplier(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Warnf(ctx, "repo.Delete supplier failed id=%s err=%v", id, err)
		return fmt.Errorf("delete supplier %s: %w", id, err)
	}
	recordWrite(entitySupplier, "delete")
	s.log.Infof(ctx, "supplier deleted id=%s", id)
	return nil
}

// ValidateSupplier - проверка без сохранения (для формы).
func (s *SupplierService) ValidateSupplier(ctx context.Context, in *domain.SupplierCreate) domain.ValidationResult {
	return s.validator.ValidateCreate(ctx, in)
}
