package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/pharma_inventory/internal/domain"
	"github.com/Gunvolt24/pharma_inventory/internal/ports"
	"github.com/Gunvolt24/pharma_inventory/pkg/validate"
)

var _ ports.ReceptionService = (*ReceptionService)(nil)

// ReceptionService - приёмки товара. Даты из формы разбираются в зоне loc,
// той же, что у валидатора.
type ReceptionService struct {
	repo      ports.ReceptionRepository
	validator ports.ReceptionValidator
	log       ports.Logger
	loc       *time.Location
}

// NewReceptionService - DI-конструктор; nil loc означает UTC.
func NewReceptionService(
	repo ports.ReceptionRepository,
	validator ports.ReceptionValidator,
	log ports.Logger,
	loc *time.Location,
) *ReceptionService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReceptionService{repo: repo, validator: validator, log: log, loc: loc}
}

// CreateReception - проверка, разбор дат, сохранение. Существование товара и поставщика проверяет хранилище.
func (s *ReceptionService) CreateReception(ctx context.Context, in *domain.ReceptionCreate) (*domain.Reception, error) {
	if in == nil {
		in = &domain.ReceptionCreate{}
	}
	if err := rejectInvalid(ctx, s.log, entityReception, "create", s.validator.ValidateCreate(ctx, in)); err != nil {
		return nil, err
	}

	rec, err := s.toReception(in)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, rec)
	if err != nil {
		s.log.Warnf(ctx, "repo.Create reception failed invoice=%s err=%v", in.InvoiceNumber, err)
		return nil, fmt.Errorf("create reception: %w", err)
	}

	recordWrite(entityReception, "create")
	s.log.Infof(ctx, "reception created id=%s product_id=%s quantity=%d", created.ID, created.ProductID, created.Quantity)
	return created, nil
}

func (s *ReceptionService) GetReception(ctx context.Context, id string) (*domain.Reception, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ReceptionService) ListReceptions(ctx context.Context, filter domain.ReceptionFilter) ([]*domain.Reception, error) {
	return s.repo.List(ctx, filter)
}

// UpdateReception - частичное обновление; пустая expiration_date снимает срок годности.
func (s *ReceptionService) UpdateReception(ctx context.Context, id string, in *domain.ReceptionUpdate) (*domain.Reception, error) {
	if in == nil {
		in = &domain.ReceptionUpdate{}
	}
	if err := rejectInvalid(ctx, s.log, entityReception, "update", s.validator.ValidateUpdate(ctx, in)); err != nil {
		return nil, err
	}

	patch, err := s.toPatch(in)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		s.log.Warnf(ctx, "repo.Update reception failed id=%s err=%v", id, err)
		return nil, fmt.Errorf("update reception %s: %w", id, err)
	}

	recordWrite(entityReception, "update")
	s.log.Infof(ctx, "reception updated id=%s", id)
	return updated, nil
}

func (s *ReceptionService) DeleteReception(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Warnf(ctx, "repo.Delete reception failed id=%s err=%v", id, err)
		return fmt.Errorf("delete reception %s: %w", id, err)
	}
	recordWrite(entityReception, "delete")
	s.log.Infof(ctx, "reception deleted id=%s", id)
	return nil
}

func (s *ReceptionService) ValidateReception(ctx context.Context, in *domain.ReceptionCreate) domain.ValidationResult {
	return s.validator.ValidateCreate(ctx, in)
}

// IngestMessage - приёмка, пришедшая событием от складского сканера (raw JSON).
// Некорректный JSON считается ошибкой валидации: такое сообщение не станет валидным при повторе.
func (s *ReceptionService) IngestMessage(ctx context.Context, raw []byte) error {
	var in domain.ReceptionCreate
	if err := validate.DecodeStrict(raw, &in); err != nil {
		s.log.Warnf(ctx, "reception event rejected: %v", err)
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	// По HTTP перечисления проверяет gin при разборе тела; событие из Kafka проверяем сами.
	if shape := validate.ShapeErrors(&in); len(shape) > 0 {
		return rejectInvalid(ctx, s.log, entityReception, "create", domain.NewValidationResult(shape))
	}

	if _, err := s.CreateReception(ctx, &in); err != nil {
		return fmt.Errorf("ingest reception: %w", err)
	}
	return nil
}

func (s *ReceptionService) toReception(in *domain.ReceptionCreate) (*domain.Reception, error) {
	receivedAt, err := validate.ParseTimestamp(in.ReceptionDate, s.loc)
	if err != nil {
		return nil, fmt.Errorf("reception_date: %w", err)
	}

	rec := &domain.Reception{
		ReceptionDate:      receivedAt,
		ProductID:          in.ProductID,
		SupplierID:         in.SupplierID,
		InvoiceNumber:      in.InvoiceNumber,
		Quantity:           in.Quantity,
		BatchNumber:        optional(in.BatchNumber),
		InvimaRegistration: optional(in.InvimaRegistration),
		PresentationState:  in.PresentationState,
		Notes:              optional(in.Notes),
	}

	if in.ExpirationDate != "" {
		expiresAt, err := validate.ParseTimestamp(in.ExpirationDate, s.loc)
		if err != nil {
			return nil, fmt.Errorf("expiration_date: %w", err)
		}
		rec.ExpirationDate = &expiresAt
	}
	return rec, nil
}

func (s *ReceptionService) toPatch(in *domain.ReceptionUpdate) (*domain.ReceptionPatch, error) {
	patch := &domain.ReceptionPatch{
		ProductID:          in.ProductID,
		SupplierID:         in.SupplierID,
		InvoiceNumber:      in.InvoiceNumber,
		Quantity:           in.Quantity,
		BatchNumber:        in.BatchNumber,
		InvimaRegistration: in.InvimaRegistration,
		PresentationState:  in.PresentationState,
		Notes:              in.Notes,
	}

	if in.ReceptionDate != nil {
		t, err := validate.ParseTimestamp(*in.ReceptionDate, s.loc)
		if err != nil {
			return nil, fmt.Errorf("reception_date: %w", err)
		}
		patch.ReceptionDate = &t
	}

	switch {
	case in.ExpirationDate == nil:
	case *in.ExpirationDate == "":
		patch.ClearExpirationDate = true
	default:
		t, err := validate.ParseTimestamp(*in.ExpirationDate, s.loc)
		if err != nil {
			return nil, fmt.Errorf("expiration_date: %w", err)
		}
		patch.ExpirationDate = &t
	}
	return patch, nil
}
