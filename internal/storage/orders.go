package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/felipesousa7/ecommerce-order-system/internal/apperr"
	"github.com/felipesousa7/ecommerce-order-system/internal/model"
)

type PGOrderStore struct {
	db *sql.DB
}

func NewPGOrderStore(db *sql.DB) *PGOrderStore {
	return &PGOrderStore{db: db}
}

func (s *PGOrderStore) Create(ctx context.Context, order *model.Order) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO orders (user_id, status, total_amount, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		order.UserID, order.Status, order.TotalAmount, order.CreatedAt,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err = tx.QueryRowContext(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity, unit_price, total_price)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id`,
			item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.TotalPrice,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

func (s *PGOrderStore) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	var o model.Order
	var updatedAt sql.NullTime
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, status, total_amount, created_at, updated_at
		 FROM orders WHERE id = $1`, id,
	).Scan(&o.ID, &o.UserID, &o.Status, &o.TotalAmount, &o.CreatedAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("order %d not found", id)
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		o.UpdatedAt = &t
	}

	items, err := s.itemsByOrder(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return &o, nil
}

func (s *PGOrderStore) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, status, total_amount, created_at, updated_at
		 FROM orders
		 WHERE user_id = $1
		 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		var updatedAt sql.NullTime
		if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.TotalAmount, &o.CreatedAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if updatedAt.Valid {
			t := updatedAt.Time
			o.UpdatedAt = &t
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	for i := range orders {
		items, err := s.itemsByOrder(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (s *PGOrderStore) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return apperr.NotFoundf("order %d not found", id)
	}

	return nil
}

func (s *PGOrderStore) itemsByOrder(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, order_id, product_id, quantity, unit_price, total_price
		 FROM order_items
		 WHERE order_id = $1
		 ORDER BY id ASC`, orderID)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return items, nil
}
