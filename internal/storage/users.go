package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/felipesousa7/ecommerce-order-system/internal/apperr"
	"github.com/felipesousa7/ecommerce-order-system/internal/model"
)

type PGUserStore struct {
	db *sql.DB
}

func NewPGUserStore(db *sql.DB) *PGUserStore {
	return &PGUserStore{db: db}
}

func (s *PGUserStore) Create(ctx context.Context, user *model.User) error {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO users (name, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		user.Name, user.Email, user.PasswordHash, user.Role,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return apperr.Conflictf("email %q already registered", user.Email)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *PGUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.get(ctx,
		`SELECT id, name, email, password_hash, role, created_at FROM users WHERE id = $1`, id)
}

func (s *PGUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.get(ctx,
		`SELECT id, name, email, password_hash, role, created_at FROM users WHERE email = $1`, email)
}

func (s *PGUserStore) get(ctx context.Context, query string, arg any) (*model.User, error) {
	var u model.User
	err := s.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("user not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
