package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"carshield-admin-api/internal/model"
	"carshield-admin-api/internal/repository"
)

type OrderHandler struct {
	orderRepo *repository.OrderRepo
}

func NewOrderHandler(orderRepo *repository.OrderRepo) *OrderHandler {
	return &OrderHandler{orderRepo: orderRepo}
}

// List serves the order feed, newest first.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderRepo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database_error", "failed to list orders")
		return
	}
	if orders == nil {
		orders = []model.OrderRecord{}
	}
	writeJSON(w, http.StatusOK, model.OrdersResponse{Orders: orders})
}

// Get serves one order with its service lines.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	order, err := h.orderRepo.GetByID(r.Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		writeError(w, http.StatusNotFound, "not_found", "no such order")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database_error", "failed to load order")
		return
	}
	writeJSON(w, http.StatusOK, order)
}
