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

var _ ports.ProductRepository = (*ProductRepository)(nil)

const productColumns = `id::text, code, name, description, laboratory, status, created_at, updated_at`

// ProductRepository - каталог на Postgres.
type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if p == nil {
		return nil, errors.New("product is nil")
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (code, name, description, laboratory, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+productColumns,
		p.Code, p.Name, p.Description, p.Laboratory, string(p.Status),
	)
	created, err := scanProduct(row)
	if err != nil {
		return nil, writeErr("insert product", err)
	}
	return created, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	p, err := scanProduct(r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select product: %w", err)
	}
	return p, nil
}

// List - новые сверху; q ищет по названию, коду и лаборатории.
func (r *ProductRepository) List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	var where whereBuilder
	if q := strings.TrimSpace(filter.Query); q != "" {
		where.add(`(name ILIKE $%[1]d OR code ILIKE $%[1]d OR laboratory ILIKE $%[1]d)`, likePattern(q))
	}
	if filter.Status != "" {
		where.add(`status = $%[1]d`, string(filter.Status))
	}
	return r.query(ctx, `SELECT `+productColumns+` FROM products`+where.sql()+` ORDER BY created_at DESC, id`, where.args...)
}

// ListActive - активные позиции по алфавиту.
func (r *ProductRepository) ListActive(ctx context.Context) ([]*domain.Product, error) {
	return r.query(ctx, `SELECT `+productColumns+` FROM products WHERE status = 'active' ORDER BY name, id`)
}

func (r *ProductRepository) Update(ctx context.Context, id string, patch *domain.ProductUpdate) (*domain.Product, error) {
	var set setBuilder
	if patch != nil {
		set.setString("code", patch.Code)
		set.setString("name", patch.Name)
		set.setNullable("description", patch.Description)
		set.setNullable("laboratory", patch.Laboratory)
		if patch.Status != nil {
			set.set("status", string(*patch.Status))
		}
	}

	query, args := set.build("products", id)
	p, err := scanProduct(r.pool.QueryRow(ctx, query+` RETURNING `+productColumns, args...))
	if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
		return nil, fmt.Errorf("update product %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, writeErr("update product", err)
	}
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if isInvalidID(err) {
		return fmt.Errorf("delete product %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return deleteErr("delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete product %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *ProductRepository) query(ctx context.Context, sql string, args ...any) ([]*domain.Product, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("products rows: %w", err)
	}
	return out, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		p     domain.Product
		state string
	)
	if err := row.Scan(&p.ID, &p.Code, &p.Name, &p.Description, &p.Laboratory, &state, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Status = domain.Status(state)
	return &p, nil
}
