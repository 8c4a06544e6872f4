package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/felipesousa7/ecommerce-order-system/internal/apperr"
	"github.com/felipesousa7/ecommerce-order-system/internal/model"
	"github.com/felipesousa7/ecommerce-order-system/internal/storage"
)

// OrderScheduler launches the detached lifecycle for a persisted order.
// Scheduling must never block or fail the caller.
type OrderScheduler interface {
	Schedule(orderID int64)
}

type CartItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type OrderItemView struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

type OrderView struct {
	ID          int64             `json:"id"`
	UserID      int64             `json:"user_id"`
	UserName    string            `json:"user_name"`
	Status      model.OrderStatus `json:"status"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Items       []OrderItemView   `json:"items"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   *time.Time        `json:"updated_at,omitempty"`
}

type OrderService struct {
	orders    storage.OrderStore
	products  storage.ProductStore
	users     storage.UserStore
	scheduler OrderScheduler
}

func NewOrderService(orders storage.OrderStore, products storage.ProductStore, users storage.UserStore, scheduler OrderScheduler) *OrderService {
	return &OrderService{orders: orders, products: products, users: users, scheduler: scheduler}
}

// Create validates the cart against the catalog, snapshots unit prices,
// persists the order with status RECEIVED and schedules its lifecycle
// worker. The response is returned before the lifecycle runs.
func (s *OrderService) Create(ctx context.Context, userID int64, items []CartItem) (*OrderView, error) {
	if len(items) == 0 {
		return nil, apperr.Validationf("order must contain at least one item")
	}

	order := &model.Order{
		UserID:    userID,
		Status:    model.StatusReceived,
		CreatedAt: time.Now(),
	}

	total := decimal.Zero
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, apperr.Validationf("quantity must be positive for product %d", item.ProductID)
		}

		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.Available {
			return nil, apperr.Unavailablef("product %q is not available", product.Name)
		}

		// Price snapshot: later catalog changes never affect this order.
		line := model.OrderItem{
			ProductID:  product.ID,
			Quantity:   item.Quantity,
			UnitPrice:  product.Price,
			TotalPrice: product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		}
		order.Items = append(order.Items, line)
		total = total.Add(line.TotalPrice)
	}
	order.TotalAmount = total

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}
	slog.Info("order created", "order_id", order.ID, "user_id", userID, "total", order.TotalAmount, "status", order.Status)

	s.scheduler.Schedule(order.ID)

	return s.present(ctx, order), nil
}

func (s *OrderService) GetByID(ctx context.Context, id int64) (*OrderView, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.present(ctx, order), nil
}

func (s *OrderService) ListByUser(ctx context.Context, userID int64) ([]OrderView, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, *s.present(ctx, &orders[i]))
	}
	return views, nil
}

// ForceStatus sets an order's status directly, bypassing both the lifecycle
// worker and the forward-only transition guard. Administrative use only.
func (s *OrderService) ForceStatus(ctx context.Context, id int64, status model.OrderStatus) (*OrderView, error) {
	if !status.Valid() {
		return nil, apperr.Validationf("unknown order status %q", status)
	}

	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	slog.Info("order status overridden", "order_id", id, "status", status)

	order.Status = status
	now := time.Now()
	order.UpdatedAt = &now

	return s.present(ctx, order), nil
}

// present assembles the client view of an order. Items whose product can no
// longer be resolved are omitted with a warning rather than failing the
// whole presentation.
func (s *OrderService) present(ctx context.Context, order *model.Order) *OrderView {
	view := &OrderView{
		ID:          order.ID,
		UserID:      order.UserID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		Items:       make([]OrderItemView, 0, len(order.Items)),
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}

	if user, err := s.users.GetByID(ctx, order.UserID); err == nil {
		view.UserName = user.Name
	} else {
		slog.Warn("user not found for order", "order_id", order.ID, "user_id", order.UserID)
		view.UserName = "unknown user"
	}

	for _, item := range order.Items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			slog.Warn("product not found for order item", "order_id", order.ID, "item_id", item.ID, "product_id", item.ProductID)
			continue
		}
		view.Items = append(view.Items, OrderItemView{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: product.Name,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			TotalPrice:  item.TotalPrice,
		})
	}

	return view
}
