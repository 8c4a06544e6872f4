package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validationf("empty cart")))
	assert.Equal(t, KindNotFound, KindOf(NotFoundf("order %d not found", 1)))
	assert.Equal(t, KindUnavailable, KindOf(Unavailablef("product gone")))
	assert.Equal(t, KindConflict, KindOf(Conflictf("duplicate name")))
	assert.Equal(t, KindInternal, KindOf(Internal("db down", errors.New("conn refused"))))
	assert.Equal(t, KindInternal, KindOf(errors.New("untyped")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("create order: %w", NotFoundf("product 9999 not found"))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindValidation))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "product 7 not found", NotFoundf("product %d not found", 7).Error())

	wrapped := Internal("update order", errors.New("timeout"))
	assert.Equal(t, "update order: timeout", wrapped.Error())
	assert.Equal(t, "timeout", errors.Unwrap(wrapped).Error())
}
