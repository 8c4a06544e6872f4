package service

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"
)

type PaymentOutcome string

const (
	OutcomeApproved PaymentOutcome = "APPROVED"
	OutcomeRejected PaymentOutcome = "REJECTED"
)

// PaymentSimulator models an external payment gateway: a randomized delay
// followed by a randomized approve/reject outcome. The delay bounds and
// approval rate are fields so tests can build fast deterministic variants.
type PaymentSimulator struct {
	minDelay     time.Duration
	maxDelay     time.Duration
	approvalRate float64
}

func NewPaymentSimulator() *PaymentSimulator {
	return &PaymentSimulator{
		minDelay:     2 * time.Second,
		maxDelay:     5 * time.Second,
		approvalRate: 0.8,
	}
}

// Simulate waits a uniform random delay in [minDelay, maxDelay) and resolves
// to APPROVED with probability approvalRate, REJECTED otherwise. It fails
// only if ctx is cancelled during the wait.
func (s *PaymentSimulator) Simulate(ctx context.Context, orderID int64) (PaymentOutcome, error) {
	delay := s.minDelay
	if spread := s.maxDelay - s.minDelay; spread > 0 {
		delay += rand.N(spread)
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
	}

	outcome := OutcomeRejected
	if rand.Float64() < s.approvalRate {
		outcome = OutcomeApproved
	}
	slog.Info("payment simulated", "order_id", orderID, "outcome", outcome)

	return outcome, nil
}
