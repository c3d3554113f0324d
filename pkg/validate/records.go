package validate

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gunvolt24/pharma_inventory/internal/domain"
	"github.com/Gunvolt24/pharma_inventory/internal/ports"
)

// Entity - тип проверяемой записи.
type Entity string

const (
	EntitySupplier  Entity = "supplier"
	EntityProduct   Entity = "product"
	EntityReception Entity = "reception"
)

// Mode - создание или частичное обновление.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeUpdate Mode = "update"
)

// Target - сущность и режим, по которым выбирается набор правил.
type Target struct {
	Entity Entity
	Mode   Mode
}

func (t Target) String() string { return string(t.Entity) + "/" + string(t.Mode) }

// ParseTarget - разбор значений флагов CLI.
func ParseTarget(entity, mode string) (Target, error) {
	t := Target{
		Entity: Entity(strings.ToLower(strings.TrimSpace(entity))),
		Mode:   Mode(strings.ToLower(strings.TrimSpace(mode))),
	}
	if t.Mode == "" {
		t.Mode = ModeCreate
	}
	switch t.Entity {
	case EntitySupplier, EntityProduct, EntityReception:
	default:
		return Target{}, fmt.Errorf("unknown entity: %q", entity)
	}
	switch t.Mode {
	case ModeCreate, ModeUpdate:
	default:
		return Target{}, fmt.Errorf("unknown mode: %q", mode)
	}
	return t, nil
}

// newCandidate - пустой кандидат нужного типа для декодирования.
func (t Target) newCandidate() any {
	switch {
	case t.Entity == EntitySupplier && t.Mode == ModeCreate:
		return &domain.SupplierCreate{}
	case t.Entity == EntitySupplier:
		return &domain.SupplierUpdate{}
	case t.Entity == EntityProduct && t.Mode == ModeCreate:
		return &domain.ProductCreate{}
	case t.Entity == EntityProduct:
		return &domain.ProductUpdate{}
	case t.Mode == ModeCreate:
		return &domain.ReceptionCreate{}
	default:
		return &domain.ReceptionUpdate{}
	}
}

// Validators - валидаторы всех сущностей, собранные вместе для пакетной проверки.
type Validators struct {
	Suppliers  ports.SupplierValidator
	Products   ports.ProductValidator
	Receptions ports.ReceptionValidator
}

// NewValidators - стандартный набор; опции передаются валидатору приёмок.
func NewValidators(opts ...ReceptionOption) *Validators {
	return &Validators{
		Suppliers:  NewSupplierValidator(),
		Products:   NewProductValidator(),
		Receptions: NewReceptionValidator(opts...),
	}
}

// Validate - выбирает правило по типу кандидата.
func (vs *Validators) Validate(ctx context.Context, candidate any) (domain.ValidationResult, error) {
	switch c := candidate.(type) {
	case *domain.SupplierCreate:
		return vs.Suppliers.ValidateCreate(ctx, c), nil
	case *domain.SupplierUpdate:
		return vs.Suppliers.ValidateUpdate(ctx, c), nil
	case *domain.ProductCreate:
		return vs.Products.ValidateCreate(ctx, c), nil
	case *domain.ProductUpdate:
		return vs.Products.ValidateUpdate(ctx, c), nil
	case *domain.ReceptionCreate:
		return vs.Receptions.ValidateCreate(ctx, c), nil
	case *domain.ReceptionUpdate:
		return vs.Receptions.ValidateUpdate(ctx, c), nil
	default:
		return domain.ValidationResult{}, fmt.Errorf("unsupported candidate type %T", candidate)
	}
}
