package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/felipesousa7/ecommerce-order-system/internal/model"
	"github.com/felipesousa7/ecommerce-order-system/internal/mw"
	"github.com/felipesousa7/ecommerce-order-system/internal/service"
)

type createOrderRequest struct {
	Items []service.CartItem `json:"items"`
}

type updateStatusRequest struct {
	Status model.OrderStatus `json:"status"`
}

func CreateOrderHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := mw.UserID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		order, err := orderSvc.Create(r.Context(), userID, req.Items)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, order)
	}
}

func GetOrderHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid order id", http.StatusBadRequest)
			return
		}

		order, err := orderSvc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, order)
	}
}

func ListOrdersHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := mw.UserID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		orders, err := orderSvc.ListByUser(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, orders)
	}
}

func UpdateOrderStatusHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid order id", http.StatusBadRequest)
			return
		}

		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		order, err := orderSvc.ForceStatus(r.Context(), id, req.Status)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, order)
	}
}
