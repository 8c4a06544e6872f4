package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/felipesousa7/ecommerce-order-system/internal/model"
	"github.com/felipesousa7/ecommerce-order-system/internal/mw"
	"github.com/felipesousa7/ecommerce-order-system/internal/service"
	"github.com/felipesousa7/ecommerce-order-system/internal/storage"
	"github.com/felipesousa7/ecommerce-order-system/internal/worker"
)

const testSecret = "test-secret"

type testEnv struct {
	router   chi.Router
	pool     *worker.Pool
	products *storage.MemProductStore
}

// stubSimulator resolves instantly with a fixed outcome so handler tests can
// drive the full pipeline without real delays.
type stubSimulator struct {
	outcome service.PaymentOutcome
}

func (s *stubSimulator) Simulate(context.Context, int64) (service.PaymentOutcome, error) {
	return s.outcome, nil
}

func newTestEnv(t *testing.T, outcome service.PaymentOutcome) *testEnv {
	t.Helper()

	users := storage.NewMemUserStore()
	products := storage.NewMemProductStore()
	orders := storage.NewMemOrderStore()

	pool := worker.NewPool()
	lifecycle := worker.NewLifecycle(pool, orders, &stubSimulator{outcome: outcome})

	authSvc := service.NewAuthService(users)
	productSvc := service.NewProductService(products)
	orderSvc := service.NewOrderService(orders, products, users, lifecycle)

	r := chi.NewRouter()
	r.Post("/api/auth/register", RegisterHandler(authSvc, testSecret))
	r.Post("/api/auth/login", LoginHandler(authSvc, testSecret))
	r.Group(func(r chi.Router) {
		r.Use(mw.AuthMiddleware(testSecret))

		r.Get("/api/products", ListProductsHandler(productSvc))
		r.Get("/api/products/available", ListAvailableProductsHandler(productSvc))
		r.Get("/api/products/{id}", GetProductHandler(productSvc))

		r.Post("/api/orders", CreateOrderHandler(orderSvc))
		r.Get("/api/orders", ListOrdersHandler(orderSvc))
		r.Get("/api/orders/{id}", GetOrderHandler(orderSvc))

		r.Group(func(r chi.Router) {
			r.Use(mw.RequireRole(model.RoleAdmin))

			r.Post("/api/products", CreateProductHandler(productSvc))
			r.Put("/api/products/{id}", UpdateProductHandler(productSvc))
			r.Delete("/api/products/{id}", DeleteProductHandler(productSvc))

			r.Put("/api/orders/{id}/status", UpdateOrderStatusHandler(orderSvc))
		})
	})

	return &testEnv{router: r, pool: pool, products: products}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) register(t *testing.T, name, email, role string) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": name, "email": email, "password": "s3cret", "role": role,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (e *testEnv) seedProduct(t *testing.T, name, price string, available bool) *model.Product {
	t.Helper()
	p := &model.Product{
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Available: available,
		CreatedAt: time.Now(),
	}
	require.NoError(t, e.products.Create(context.Background(), p))
	return p
}
