package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/pharma_inventory/internal/domain"
	"github.com/Gunvolt24/pharma_inventory/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что SupplierRepository удовлетворяет интерфейсу SupplierRepository.
var _ ports.SupplierRepository = (*SupplierRepository)(nil)

const supplierColumns = `id::text, id_type, id_number, name, address, phone, email, contact_person,
	economic_activity, status, created_at, updated_at`

// SupplierRepository - поставщики на Postgres (pgxpool).
type SupplierRepository struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository - конструктор SupplierRepository.
func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepository {
	return &SupplierRepository{pool: pool}
}

// Create - вставка; id и временные метки назначает база.
func (r *SupplierRepository) Create(ctx context.Context, s *domain.Supplier) (*domain.Supplier, error) {
	if s == nil {
		return nil, errors.New("supplier is nil")
	}
	codes := []string(s.EconomicActivity)
	if codes == nil {
		codes = []string{}
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO suppliers (
			id_type, id_number, name, address, phone, email, contact_person, economic_activity, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+supplierColumns,
		string(s.IDType), s.IDNumber, s.Name, s.Address, s.Phone, s.Email, s.ContactPerson, codes, string(s.Status),
	)
	created, err := scanSupplier(row)
	if err != nil {
		return nil, writeErr("insert supplier", err)
	}
	return created, nil
}

// GetByID - (nil, nil), если записи нет или id не UUID.
func (r *SupplierRepository) GetByID(ctx context.Context, id string) (*domain.Supplier, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id)
	s, err := scanSupplier(row)
	if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select supplier: %w", err)
	}
	return s, nil
}

// List - новые сверху; q ищет по имени, номеру документа и email без учёта регистра.
func (r *SupplierRepository) List(ctx context.Context, filter domain.SupplierFilter) ([]*domain.Supplier, error) {
	var where whereBuilder
	if q := strings.TrimSpace(filter.Query); q != "" {
		where.add(`(name ILIKE $%[1]d OR id_number ILIKE $%[1]d OR email ILIKE $%[1]d)`, likePattern(q))
	}
	if filter.Status != "" {
		where.add(`status = $%[1]d`, string(filter.Status))
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+supplierColumns+` FROM suppliers`+where.sql()+` ORDER BY created_at DESC, id`, where.args...)
	if err != nil {
		return nil, fmt.Errorf("select suppliers: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.Supplier, 0)
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("suppliers rows: %w", err)
	}
	return out, nil
}

// Update - только переданные поля; пустые строки в необязательных полях превращаются в NULL.
func (r *SupplierRepository) Update(ctx context.Context, id string, patch *domain.SupplierUpdate) (*domain.Supplier, error) {
	var set setBuilder
	if patch != nil {
		if patch.IDType != nil {
			set.set("id_type", string(*patch.IDType))
		}
		set.setString("id_number", patch.IDNumber)
		set.setString("name", patch.Name)
		set.setNullable("address", patch.Address)
		set.setNullable("phone", patch.Phone)
		set.setNullable("email", patch.Email)
		set.setNullable("contact_person", patch.ContactPerson)
		if patch.EconomicActivity != nil {
			set.set("economic_activity", []string(patch.EconomicActivity))
		}
		if patch.Status != nil {
			set.set("status", string(*patch.Status))
		}
	}

	query, args := set.build("suppliers", id)
	s, err := scanSupplier(r.pool.QueryRow(ctx, query+` RETURNING `+supplierColumns, args...))
	if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
		return nil, fmt.Errorf("update supplier %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, writeErr("update supplier", err)
	}
	return s, nil
}

// Delete - domain.ErrInUse, если на поставщика ссылаются приёмки.
func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if isInvalidID(err) {
		return fmt.Errorf("delete supplier %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return deleteErr("delete supplier", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete supplier %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanSupplier(row pgx.Row) (*domain.Supplier, error) {
	var (
		s             domain.Supplier
		idType, state string
		codes         []string
	)
	if err := row.Scan(
		&s.ID, &idType, &s.IDNumber, &s.Name, &s.Address, &s.Phone, &s.Email, &s.ContactPerson,
		&codes, &state, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	s.IDType = domain.IDType(idType)
	s.Status = domain.Status(state)
	s.EconomicActivity = domain.ActivityCodes(codes)
	if s.EconomicActivity == nil {
		s.EconomicActivity = domain.ActivityCodes{}
	}
	return &s, nil
}
