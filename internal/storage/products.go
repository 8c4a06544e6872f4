package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/felipesousa7/ecommerce-order-system/internal/apperr"
	"github.com/felipesousa7/ecommerce-order-system/internal/model"
)

type PGProductStore struct {
	db *sql.DB
}

func NewPGProductStore(db *sql.DB) *PGProductStore {
	return &PGProductStore{db: db}
}

func (s *PGProductStore) Create(ctx context.Context, product *model.Product) error {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO products (name, description, price, available, image_url, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		product.Name, product.Description, product.Price, product.Available,
		nullString(product.ImageURL), product.CreatedAt,
	).Scan(&product.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return apperr.Conflictf("product with name %q already exists", product.Name)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (s *PGProductStore) Update(ctx context.Context, product *model.Product) error {
	now := time.Now()
	res, err := s.db.ExecContext(ctx,
		`UPDATE products
		 SET name = $1, description = $2, price = $3, available = $4, image_url = $5, updated_at = $6
		 WHERE id = $7`,
		product.Name, product.Description, product.Price, product.Available,
		nullString(product.ImageURL), now, product.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return apperr.Conflictf("product with name %q already exists", product.Name)
		}
		return fmt.Errorf("update product: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return apperr.NotFoundf("product %d not found", product.ID)
	}
	product.UpdatedAt = &now

	return nil
}

func (s *PGProductStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return apperr.NotFoundf("product %d not found", id)
	}
	return nil
}

func (s *PGProductStore) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	var imageURL sql.NullString
	var updatedAt sql.NullTime
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, description, price, available, image_url, created_at, updated_at
		 FROM products WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Available, &imageURL, &p.CreatedAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("product %d not found", id)
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.ImageURL = imageURL.String
	if updatedAt.Valid {
		t := updatedAt.Time
		p.UpdatedAt = &t
	}
	return &p, nil
}

func (s *PGProductStore) List(ctx context.Context) ([]model.Product, error) {
	return s.list(ctx, `SELECT id, name, description, price, available, image_url, created_at, updated_at
		FROM products ORDER BY id ASC`)
}

func (s *PGProductStore) ListAvailable(ctx context.Context) ([]model.Product, error) {
	return s.list(ctx, `SELECT id, name, description, price, available, image_url, created_at, updated_at
		FROM products WHERE available ORDER BY id ASC`)
}

func (s *PGProductStore) NameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE name = $1)`, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check product name: %w", err)
	}
	return exists, nil
}

func (s *PGProductStore) list(ctx context.Context, query string) ([]model.Product, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		var imageURL sql.NullString
		var updatedAt sql.NullTime
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Available, &imageURL, &p.CreatedAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.ImageURL = imageURL.String
		if updatedAt.Valid {
			t := updatedAt.Time
			p.UpdatedAt = &t
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return products, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
