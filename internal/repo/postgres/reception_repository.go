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

var _ ports.ReceptionRepository = (*ReceptionRepository)(nil)

// receptionSelect - приёмка вместе с товаром и поставщиком (по одной строке на приёмку).
const receptionSelect = `
	SELECT
		r.id::text, r.reception_date, r.product_id::text, r.supplier_id::text, r.invoice_number, r.quantity,
		r.batch_number, r.invima_registration, r.expiration_date, r.presentation_state, r.notes,
		r.created_at, r.updated_at,
		p.id::text, p.code, p.name, p.description, p.laboratory, p.status, p.created_at, p.updated_at,
		s.id::text, s.id_type, s.id_number, s.name, s.address, s.phone, s.email, s.contact_person,
		s.economic_activity, s.status, s.created_at, s.updated_at
	FROM product_receptions r
	JOIN products p ON p.id = r.product_id
	JOIN suppliers s ON s.id = r.supplier_id`

// ReceptionRepository - приёмки на Postgres. Целостность ссылок обеспечивают внешние ключи.
type ReceptionRepository struct {
	pool *pgxpool.Pool
}

func NewReceptionRepository(pool *pgxpool.Pool) *ReceptionRepository {
	return &ReceptionRepository{pool: pool}
}

// Create - вставка и повторное чтение с join.
func (r *ReceptionRepository) Create(ctx context.Context, rec *domain.Reception) (*domain.Reception, error) {
	if rec == nil {
		return nil, errors.New("reception is nil")
	}

	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO product_receptions (
			reception_date, product_id, supplier_id, invoice_number, quantity,
			batch_number, invima_registration, expiration_date, presentation_state, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id::text
	`,
		rec.ReceptionDate, rec.ProductID, rec.SupplierID, rec.InvoiceNumber, rec.Quantity,
		rec.BatchNumber, rec.InvimaRegistration, rec.ExpirationDate, string(rec.PresentationState), rec.Notes,
	).Scan(&id)
	if err != nil {
		return nil, referenceErr("insert reception", err)
	}
	return r.mustGet(ctx, id)
}

// GetByID - (nil, nil), если записи нет.
func (r *ReceptionRepository) GetByID(ctx context.Context, id string) (*domain.Reception, error) {
	rec, err := scanReception(r.pool.QueryRow(ctx, receptionSelect+` WHERE r.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select reception: %w", err)
	}
	return rec, nil
}

// List - свежие приёмки сверху; q ищет по товару, поставщику, номеру счёта и партии.
func (r *ReceptionRepository) List(ctx context.Context, filter domain.ReceptionFilter) ([]*domain.Reception, error) {
	var where whereBuilder
	if q := strings.TrimSpace(filter.Query); q != "" {
		where.add(`(p.name ILIKE $%[1]d OR s.name ILIKE $%[1]d OR r.invoice_number ILIKE $%[1]d OR r.batch_number ILIKE $%[1]d)`,
			likePattern(q))
	}
	if filter.State != "" {
		where.add(`r.presentation_state = $%[1]d`, string(filter.State))
	}

	rows, err := r.pool.Query(ctx, receptionSelect+where.sql()+` ORDER BY r.reception_date DESC, r.id`, where.args...)
	if err != nil {
		return nil, fmt.Errorf("select receptions: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.Reception, 0)
	for rows.Next() {
		rec, err := scanReception(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reception: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("receptions rows: %w", err)
	}
	return out, nil
}

// Update - частичное обновление; ClearExpirationDate записывает NULL.
func (r *ReceptionRepository) Update(ctx context.Context, id string, patch *domain.ReceptionPatch) (*domain.Reception, error) {
	var set setBuilder
	if patch != nil {
		if patch.ReceptionDate != nil {
			set.set("reception_date", *patch.ReceptionDate)
		}
		set.setString("product_id", patch.ProductID)
		set.setString("supplier_id", patch.SupplierID)
		set.setString("invoice_number", patch.InvoiceNumber)
		if patch.Quantity != nil {
			set.set("quantity", *patch.Quantity)
		}
		set.setNullable("batch_number", patch.BatchNumber)
		set.setNullable("invima_registration", patch.InvimaRegistration)
		switch {
		case patch.ClearExpirationDate:
			set.setRaw("expiration_date", "NULL")
		case patch.ExpirationDate != nil:
			set.set("expiration_date", *patch.ExpirationDate)
		}
		if patch.PresentationState != nil {
			set.set("presentation_state", string(*patch.PresentationState))
		}
		set.setNullable("notes", patch.Notes)
	}

	query, args := set.build("product_receptions", id)
	var updatedID string
	err := r.pool.QueryRow(ctx, query+` RETURNING id::text`, args...).Scan(&updatedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("update reception %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, referenceErr("update reception", err)
	}
	return r.mustGet(ctx, updatedID)
}

func (r *ReceptionRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM product_receptions WHERE id = $1`, id)
	if isInvalidID(err) {
		return fmt.Errorf("delete reception %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete reception: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete reception %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// mustGet - чтение только что записанной приёмки; её отсутствие означает гонку с удалением.
func (r *ReceptionRepository) mustGet(ctx context.Context, id string) (*domain.Reception, error) {
	rec, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("reread reception %s: %w", id, domain.ErrNotFound)
	}
	return rec, nil
}

func scanReception(row pgx.Row) (*domain.Reception, error) {
	var (
		rec                   domain.Reception
		p                     domain.Product
		s                     domain.Supplier
		presentation, pStatus string
		idType, sStatus       string
		codes                 []string
	)
	if err := row.Scan(
		&rec.ID, &rec.ReceptionDate, &rec.ProductID, &rec.SupplierID, &rec.InvoiceNumber, &rec.Quantity,
		&rec.BatchNumber, &rec.InvimaRegistration, &rec.ExpirationDate, &presentation, &rec.Notes,
		&rec.CreatedAt, &rec.UpdatedAt,
		&p.ID, &p.Code, &p.Name, &p.Description, &p.Laboratory, &pStatus, &p.CreatedAt, &p.UpdatedAt,
		&s.ID, &idType, &s.IDNumber, &s.Name, &s.Address, &s.Phone, &s.Email, &s.ContactPerson,
		&codes, &sStatus, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}

	rec.PresentationState = domain.PresentationState(presentation)
	p.Status = domain.Status(pStatus)
	s.IDType = domain.IDType(idType)
	s.Status = domain.Status(sStatus)
	s.EconomicActivity = domain.ActivityCodes(codes)
	if s.EconomicActivity == nil {
		s.EconomicActivity = domain.ActivityCodes{}
	}
	rec.Product = &p
	rec.Supplier = &s
	return &rec, nil
}
