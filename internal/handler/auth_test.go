package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/felipesousa7/ecommerce-order-system/internal/service"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t, service.OutcomeApproved)
	env.register(t, "Alice", "alice@example.com", "")

	rec := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "s3cret",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "token")

	rec = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterDuplicateEmailEndpoint(t *testing.T) {
	env := newTestEnv(t, service.OutcomeApproved)
	env.register(t, "Alice", "alice@example.com", "")

	rec := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Other", "email": "alice@example.com", "password": "s3cret",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterValidationEndpoint(t *testing.T) {
	env := newTestEnv(t, service.OutcomeApproved)

	rec := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "alice@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
