package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusReceived        OrderStatus = "RECEIVED"
	StatusAwaitingPayment OrderStatus = "AWAITING_PAYMENT"
	StatusPaymentApproved OrderStatus = "PAYMENT_APPROVED"
	StatusPaymentRejected OrderStatus = "PAYMENT_REJECTED"
	StatusStockReserved   OrderStatus = "STOCK_RESERVED"
	StatusStockCancelled  OrderStatus = "STOCK_CANCELLED"
	StatusError           OrderStatus = "ERROR"
)

// transitions defines the forward-only lifecycle graph. ERROR is reachable
// from any non-terminal state and is handled in CanAdvance directly.
var transitions = map[OrderStatus][]OrderStatus{
	StatusReceived:        {StatusAwaitingPayment},
	StatusAwaitingPayment: {StatusPaymentApproved, StatusPaymentRejected},
	StatusPaymentApproved: {StatusStockReserved},
	StatusPaymentRejected: {StatusStockCancelled},
}

// CanAdvance reports whether the automated lifecycle may move an order from
// s to next. Terminal states never advance; no transition goes backward.
func (s OrderStatus) CanAdvance(next OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == StatusError {
		return true
	}
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further automated transition occurs from s.
// RECEIVED is stable but not terminal: the lifecycle worker picks it up.
func (s OrderStatus) Terminal() bool {
	switch s {
	case StatusPaymentRejected, StatusStockReserved, StatusStockCancelled, StatusError:
		return true
	}
	return false
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusReceived, StatusAwaitingPayment, StatusPaymentApproved,
		StatusPaymentRejected, StatusStockReserved, StatusStockCancelled, StatusError:
		return true
	}
	return false
}

type Order struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	Status      OrderStatus     `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Items       []OrderItem     `json:"items"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
}

type OrderItem struct {
	ID         int64           `json:"id"`
	OrderID    int64           `json:"order_id"`
	ProductID  int64           `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}
