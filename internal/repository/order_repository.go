package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/supplychain-service/internal/domain"
)

// OrderRepository defines persistence access for purchase orders.
type OrderRepository interface {
	// Create inserts the order with its items and decrements inventory
	// quantities in the same transaction.
	Create(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, offset, limit int) ([]domain.Order, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns a Postgres-backed implementation.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const insertOrder = `
        INSERT INTO orders (status, total_amount, supplier_id)
        VALUES ($1, $2, $3)
        RETURNING id, order_date`

	if err := tx.QueryRow(ctx, insertOrder,
		order.Status,
		order.TotalAmount,
		order.SupplierID,
	).Scan(&order.ID, &order.OrderDate); err != nil {
		return err
	}

	const insertItem = `
        INSERT INTO order_items (order_id, inventory_id, quantity, unit_price)
        VALUES ($1, $2, $3, $4)
        RETURNING id`

	const decrementStock = `
        UPDATE inventory SET quantity = quantity - $1, last_updated = NOW()
        WHERE id = $2`

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		if err := tx.QueryRow(ctx, insertItem,
			item.OrderID,
			item.InventoryID,
			item.Quantity,
			item.UnitPrice,
		).Scan(&item.ID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, decrementStock, item.Quantity, item.InventoryID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) Update(ctx context.Context, order *domain.Order) error {
	const query = `
        UPDATE orders SET status=$1, total_amount=$2, supplier_id=$3
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		order.Status,
		order.TotalAmount,
		order.SupplierID,
		order.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	const query = `
        SELECT id, order_date, status, total_amount, supplier_id
        FROM orders WHERE id=$1`

	var order domain.Order
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.OrderDate,
		&order.Status,
		&order.TotalAmount,
		&order.SupplierID,
	); err != nil {
		return nil, err
	}

	items, err := r.listItems(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context, offset, limit int) ([]domain.Order, error) {
	const query = `
        SELECT id, order_date, status, total_amount, supplier_id
        FROM orders ORDER BY id OFFSET $1 LIMIT $2`

	rows, err := r.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID,
			&order.OrderDate,
			&order.Status,
			&order.TotalAmount,
			&order.SupplierID,
		); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *orderRepository) listItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	const query = `
        SELECT id, order_id, inventory_id, quantity, unit_price
        FROM order_items WHERE order_id=$1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.InventoryID,
			&item.Quantity,
			&item.UnitPrice,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
