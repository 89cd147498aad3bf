package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/supplychain-service/internal/domain"
)

// InventoryRepository defines persistence access for stocked products.
type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) error
	Update(ctx context.Context, item *domain.InventoryItem) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.InventoryItem, error)
	List(ctx context.Context, offset, limit int) ([]domain.InventoryItem, error)
}

type inventoryRepository struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository returns a Postgres-backed implementation.
func NewInventoryRepository(pool *pgxpool.Pool) InventoryRepository {
	return &inventoryRepository{pool: pool}
}

func (r *inventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) error {
	const query = `
        INSERT INTO inventory (product_name, description, quantity, unit_price, category, location)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, last_updated`

	return r.pool.QueryRow(ctx, query,
		item.ProductName,
		item.Description,
		item.Quantity,
		item.UnitPrice,
		item.Category,
		item.Location,
	).Scan(&item.ID, &item.LastUpdated)
}

func (r *inventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	const query = `
        UPDATE inventory
        SET product_name=$1, description=$2, quantity=$3, unit_price=$4, category=$5, location=$6, last_updated=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		item.ProductName,
		item.Description,
		item.Quantity,
		item.UnitPrice,
		item.Category,
		item.Location,
		item.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *inventoryRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM inventory WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *inventoryRepository) GetByID(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	const query = `
        SELECT id, product_name, description, quantity, unit_price, category, location, last_updated
        FROM inventory WHERE id=$1`

	var item domain.InventoryItem
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.ProductName,
		&item.Description,
		&item.Quantity,
		&item.UnitPrice,
		&item.Category,
		&item.Location,
		&item.LastUpdated,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) List(ctx context.Context, offset, limit int) ([]domain.InventoryItem, error) {
	const query = `
        SELECT id, product_name, description, quantity, unit_price, category, location, last_updated
        FROM inventory ORDER BY id OFFSET $1 LIMIT $2`

	rows, err := r.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		var item domain.InventoryItem
		if err := rows.Scan(
			&item.ID,
			&item.ProductName,
			&item.Description,
			&item.Quantity,
			&item.UnitPrice,
			&item.Category,
			&item.Location,
			&item.LastUpdated,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
