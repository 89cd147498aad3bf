package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/supplychain-service/internal/domain"
)

// SupplierRepository defines persistence access for vendors.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *domain.Supplier) error
	Update(ctx context.Context, supplier *domain.Supplier) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Supplier, error)
	List(ctx context.Context, offset, limit int) ([]domain.Supplier, error)
}

type supplierRepository struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository returns a Postgres-backed implementation.
func NewSupplierRepository(pool *pgxpool.Pool) SupplierRepository {
	return &supplierRepository{pool: pool}
}

func (r *supplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	const query = `
        INSERT INTO suppliers (name, contact_name, email, phone, address, is_active)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		supplier.Name,
		supplier.ContactName,
		supplier.Email,
		supplier.Phone,
		supplier.Address,
		supplier.IsActive,
	).Scan(&supplier.ID)
}

func (r *supplierRepository) Update(ctx context.Context, supplier *domain.Supplier) error {
	const query = `
        UPDATE suppliers SET name=$1, contact_name=$2, email=$3, phone=$4, address=$5, is_active=$6
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		supplier.Name,
		supplier.ContactName,
		supplier.Email,
		supplier.Phone,
		supplier.Address,
		supplier.IsActive,
		supplier.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *supplierRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM suppliers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *supplierRepository) GetByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	const query = `
        SELECT id, name, contact_name, email, phone, address, is_active
        FROM suppliers WHERE id=$1`

	var supplier domain.Supplier
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&supplier.ID,
		&supplier.Name,
		&supplier.ContactName,
		&supplier.Email,
		&supplier.Phone,
		&supplier.Address,
		&supplier.IsActive,
	); err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepository) List(ctx context.Context, offset, limit int) ([]domain.Supplier, error) {
	const query = `
        SELECT id, name, contact_name, email, phone, address, is_active
        FROM suppliers ORDER BY id OFFSET $1 LIMIT $2`

	rows, err := r.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []domain.Supplier
	for rows.Next() {
		var supplier domain.Supplier
		if err := rows.Scan(
			&supplier.ID,
			&supplier.Name,
			&supplier.ContactName,
			&supplier.Email,
			&supplier.Phone,
			&supplier.Address,
			&supplier.IsActive,
		); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, supplier)
	}
	return suppliers, rows.Err()
}
