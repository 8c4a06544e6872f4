package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateAlwaysResolves(t *testing.T) {
	sim := &PaymentSimulator{minDelay: 0, maxDelay: time.Millisecond, approvalRate: 0.8}

	for i := 0; i < 50; i++ {
		outcome, err := sim.Simulate(context.Background(), int64(i))
		require.NoError(t, err)
		assert.Contains(t, []PaymentOutcome{OutcomeApproved, OutcomeRejected}, outcome)
	}
}

func TestSimulateApprovalRateBounds(t *testing.T) {
	always := &PaymentSimulator{approvalRate: 1.1}
	outcome, err := always.Simulate(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, OutcomeApproved, outcome)

	never := &PaymentSimulator{approvalRate: 0}
	outcome, err = never.Simulate(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, OutcomeRejected, outcome)
}

func TestSimulateHonorsContext(t *testing.T) {
	sim := &PaymentSimulator{minDelay: time.Minute, maxDelay: 2 * time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sim.Simulate(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDefaultSimulatorConfig(t *testing.T) {
	sim := NewPaymentSimulator()
	assert.Equal(t, 2*time.Second, sim.minDelay)
	assert.Equal(t, 5*time.Second, sim.maxDelay)
	assert.InDelta(t, 0.8, sim.approvalRate, 0.0001)
}
