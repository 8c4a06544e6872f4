package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/felipesousa7/ecommerce-order-system/internal/apperr"
	"github.com/felipesousa7/ecommerce-order-system/internal/model"
	"github.com/felipesousa7/ecommerce-order-system/internal/storage"
)

func TestRegister(t *testing.T) {
	svc := NewAuthService(storage.NewMemUserStore())

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "s3cret", "")
	require.NoError(t, err)
	assert.Equal(t, model.RoleCustomer, user.Role)
	assert.NotZero(t, user.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword(user.PasswordHash, []byte("s3cret")))
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(storage.NewMemUserStore())

	_, err := svc.Register(context.Background(), "", "alice@example.com", "s3cret", "")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = svc.Register(context.Background(), "Alice", "alice@example.com", "s3cret", "superuser")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(storage.NewMemUserStore())

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "s3cret", "")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Other Alice", "alice@example.com", "s3cret", "")
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestAuthenticate(t *testing.T) {
	svc := NewAuthService(storage.NewMemUserStore())

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "s3cret", model.RoleAdmin)
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, user.Role)

	_, err = svc.Authenticate(context.Background(), "alice@example.com", "wrong")
	assert.Error(t, err)

	_, err = svc.Authenticate(context.Background(), "nobody@example.com", "s3cret")
	assert.Error(t, err)
}
