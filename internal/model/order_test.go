package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAdvanceForwardOnly(t *testing.T) {
	assert.True(t, StatusReceived.CanAdvance(StatusAwaitingPayment))
	assert.True(t, StatusAwaitingPayment.CanAdvance(StatusPaymentApproved))
	assert.True(t, StatusAwaitingPayment.CanAdvance(StatusPaymentRejected))
	assert.True(t, StatusPaymentApproved.CanAdvance(StatusStockReserved))

	// No going backward.
	assert.False(t, StatusAwaitingPayment.CanAdvance(StatusReceived))
	assert.False(t, StatusPaymentApproved.CanAdvance(StatusAwaitingPayment))
	assert.False(t, StatusPaymentApproved.CanAdvance(StatusReceived))

	// No skipping the payment step.
	assert.False(t, StatusReceived.CanAdvance(StatusPaymentApproved))
	assert.False(t, StatusReceived.CanAdvance(StatusStockReserved))
}

func TestCanAdvanceToError(t *testing.T) {
	assert.True(t, StatusReceived.CanAdvance(StatusError))
	assert.True(t, StatusAwaitingPayment.CanAdvance(StatusError))
	assert.True(t, StatusPaymentApproved.CanAdvance(StatusError))
}

func TestTerminalStatesNeverAdvance(t *testing.T) {
	for _, s := range []OrderStatus{StatusPaymentRejected, StatusStockReserved, StatusStockCancelled, StatusError} {
		assert.True(t, s.Terminal(), "%s should be terminal", s)
		assert.False(t, s.CanAdvance(StatusError), "%s should not advance even to ERROR", s)
		assert.False(t, s.CanAdvance(StatusAwaitingPayment))
	}

	assert.False(t, StatusReceived.Terminal())
	assert.False(t, StatusAwaitingPayment.Terminal())
	assert.False(t, StatusPaymentApproved.Terminal())
}

func TestValid(t *testing.T) {
	for _, s := range []OrderStatus{
		StatusReceived, StatusAwaitingPayment, StatusPaymentApproved,
		StatusPaymentRejected, StatusStockReserved, StatusStockCancelled, StatusError,
	} {
		assert.True(t, s.Valid())
	}
	assert.False(t, OrderStatus("SHIPPED").Valid())
	assert.False(t, OrderStatus("").Valid())
}
