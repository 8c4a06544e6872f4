package storage

import (
	"context"
	"sync"
	"time"

	"github.com/felipesousa7/ecommerce-order-system/internal/apperr"
	"github.com/felipesousa7/ecommerce-order-system/internal/model"
)

// In-memory store implementations with the same contracts as the Postgres
// ones. Used by tests and local experiments; every method hands out copies,
// so callers never share a live record.

type MemUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]model.User
}

func NewMemUserStore() *MemUserStore {
	return &MemUserStore{users: make(map[int64]model.User)}
}

func (s *MemUserStore) Create(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return apperr.Conflictf("email %q already registered", user.Email)
		}
	}

	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	s.users[user.ID] = *user
	return nil
}

func (s *MemUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, apperr.NotFoundf("user not found")
	}
	return &u, nil
}

func (s *MemUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, apperr.NotFoundf("user not found")
}

type MemProductStore struct {
	mu       sync.Mutex
	nextID   int64
	products map[int64]model.Product
}

func NewMemProductStore() *MemProductStore {
	return &MemProductStore{products: make(map[int64]model.Product)}
}

func (s *MemProductStore) Create(_ context.Context, product *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.Name == product.Name {
			return apperr.Conflictf("product with name %q already exists", product.Name)
		}
	}

	s.nextID++
	product.ID = s.nextID
	s.products[product.ID] = *product
	return nil
}

func (s *MemProductStore) Update(_ context.Context, product *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[product.ID]; !ok {
		return apperr.NotFoundf("product %d not found", product.ID)
	}
	now := time.Now()
	product.UpdatedAt = &now
	s.products[product.ID] = *product
	return nil
}

func (s *MemProductStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return apperr.NotFoundf("product %d not found", id)
	}
	delete(s.products, id)
	return nil
}

func (s *MemProductStore) GetByID(_ context.Context, id int64) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, apperr.NotFoundf("product %d not found", id)
	}
	return &p, nil
}

func (s *MemProductStore) List(_ context.Context) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]model.Product, 0, len(s.products))
	for id := int64(1); id <= s.nextID; id++ {
		if p, ok := s.products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

func (s *MemProductStore) ListAvailable(ctx context.Context) ([]model.Product, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	available := make([]model.Product, 0, len(all))
	for _, p := range all {
		if p.Available {
			available = append(available, p)
		}
	}
	return available, nil
}

func (s *MemProductStore) NameExists(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.Name == name {
			return true, nil
		}
	}
	return false, nil
}

type MemOrderStore struct {
	mu     sync.Mutex
	nextID int64
	orders map[int64]model.Order
}

func NewMemOrderStore() *MemOrderStore {
	return &MemOrderStore{orders: make(map[int64]model.Order)}
}

func (s *MemOrderStore) Create(_ context.Context, order *model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	order.ID = s.nextID
	for i := range order.Items {
		order.Items[i].ID = int64(i + 1)
		order.Items[i].OrderID = order.ID
	}
	s.orders[order.ID] = copyOrder(*order)
	return nil
}

func (s *MemOrderStore) GetByID(_ context.Context, id int64) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, apperr.NotFoundf("order %d not found", id)
	}
	out := copyOrder(o)
	return &out, nil
}

func (s *MemOrderStore) ListByUser(_ context.Context, userID int64) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []model.Order
	for id := s.nextID; id >= 1; id-- {
		if o, ok := s.orders[id]; ok && o.UserID == userID {
			orders = append(orders, copyOrder(o))
		}
	}
	return orders, nil
}

func (s *MemOrderStore) UpdateStatus(_ context.Context, id int64, status model.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return apperr.NotFoundf("order %d not found", id)
	}
	o.Status = status
	now := time.Now()
	o.UpdatedAt = &now
	s.orders[id] = o
	return nil
}

func copyOrder(o model.Order) model.Order {
	items := make([]model.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
