package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/felipesousa7/ecommerce-order-system/internal/model"
	"github.com/felipesousa7/ecommerce-order-system/internal/service"
	"github.com/felipesousa7/ecommerce-order-system/internal/storage"
)

type PaymentSimulator interface {
	Simulate(ctx context.Context, orderID int64) (service.PaymentOutcome, error)
}

// Lifecycle drives a freshly created order through its state machine:
// AWAITING_PAYMENT, then PAYMENT_APPROVED or PAYMENT_REJECTED per the
// simulated payment, then the stock reservation side effect. Any failure
// along the way parks the order in ERROR; nothing propagates to callers.
type Lifecycle struct {
	pool     *Pool
	orders   storage.OrderStore
	payments PaymentSimulator
}

func NewLifecycle(pool *Pool, orders storage.OrderStore, payments PaymentSimulator) *Lifecycle {
	return &Lifecycle{pool: pool, orders: orders, payments: payments}
}

// Schedule launches the lifecycle for orderID detached from the caller. It
// never blocks and never fails: the worker reports only through the store.
func (l *Lifecycle) Schedule(orderID int64) {
	l.pool.Launch(fmt.Sprintf("order-lifecycle-%d", orderID), func(ctx context.Context) {
		l.Process(ctx, orderID)
	})
}

// Process runs the per-order state machine strictly in sequence. It receives
// only the order id and re-fetches the record, so no live object is shared
// with the request that created the order.
func (l *Lifecycle) Process(ctx context.Context, orderID int64) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("order lifecycle panicked", "order_id", orderID, "panic", r)
			l.fail(ctx, orderID)
		}
	}()

	order, err := l.orders.GetByID(ctx, orderID)
	if err != nil {
		slog.Error("order lifecycle: fetch failed", "order_id", orderID, "error", err)
		l.fail(ctx, orderID)
		return
	}

	if err := l.advance(ctx, orderID, order.Status, model.StatusAwaitingPayment); err != nil {
		slog.Error("order lifecycle: awaiting payment failed", "order_id", orderID, "error", err)
		l.fail(ctx, orderID)
		return
	}

	// The one suspension point: no lock is held while the payment resolves.
	outcome, err := l.payments.Simulate(ctx, orderID)
	if err != nil {
		slog.Error("order lifecycle: payment simulation failed", "order_id", orderID, "error", err)
		l.fail(ctx, orderID)
		return
	}

	next := model.StatusPaymentRejected
	if outcome == service.OutcomeApproved {
		next = model.StatusPaymentApproved
	}
	if err := l.advance(ctx, orderID, model.StatusAwaitingPayment, next); err != nil {
		slog.Error("order lifecycle: payment status update failed", "order_id", orderID, "error", err)
		l.fail(ctx, orderID)
		return
	}
	slog.Info("order payment resolved", "order_id", orderID, "status", next)

	// Stock reservation is a logged side effect: the persisted status stays
	// on the payment branch recorded above.
	if next == model.StatusPaymentApproved {
		slog.Info("stock reserved for order", "order_id", orderID)
	} else {
		slog.Info("stock reservation cancelled for order", "order_id", orderID)
	}
}

func (l *Lifecycle) advance(ctx context.Context, orderID int64, from, to model.OrderStatus) error {
	if !from.CanAdvance(to) {
		return fmt.Errorf("invalid transition %s -> %s", from, to)
	}
	return l.orders.UpdateStatus(ctx, orderID, to)
}

func (l *Lifecycle) fail(ctx context.Context, orderID int64) {
	if err := l.orders.UpdateStatus(ctx, orderID, model.StatusError); err != nil {
		slog.Error("order lifecycle: failed to mark order as ERROR", "order_id", orderID, "error", err)
	}
}
