package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/felipesousa7/ecommerce-order-system/internal/apperr"
	"github.com/felipesousa7/ecommerce-order-system/internal/model"
	"github.com/felipesousa7/ecommerce-order-system/internal/storage"
)

type AuthService struct {
	users storage.UserStore
}

func NewAuthService(users storage.UserStore) *AuthService {
	return &AuthService{users: users}
}

func (s *AuthService) Register(ctx context.Context, name, email, password, role string) (*model.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, apperr.Validationf("name, email and password are required")
	}
	if role == "" {
		role = model.RoleCustomer
	}
	if role != model.RoleCustomer && role != model.RoleAdmin {
		return nil, apperr.Validationf("unknown role %q", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, apperr.Validationf("invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, apperr.Validationf("invalid email or password")
	}

	return user, nil
}
