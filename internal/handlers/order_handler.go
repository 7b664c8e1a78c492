package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/PizzaBo93/posapppizza/internal/middleware"
	"github.com/PizzaBo93/posapppizza/internal/models"
	"github.com/PizzaBo93/posapppizza/internal/store"
)

const ordersTable = "orders"

type OrderHandler struct {
	store  *store.Client
	logger zerolog.Logger
}

func NewOrderHandler(storeClient *store.Client, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		store:  storeClient,
		logger: logger,
	}
}

// List returns the pending and paid orders of the caller's store, newest
// first. Visibility is scoped by the store_code embedded in the session.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		h.respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	result, err := h.store.Select(r.Context(), ordersTable, map[string]string{
		"store_code": "eq." + user.StoreCode,
		"status":     "in.(pending,paid)",
	}, "created_at.desc")
	if err != nil {
		h.logger.Error().Err(err).Str("store_code", user.StoreCode).Msg("Failed to list orders")
		h.respondWithError(w, http.StatusInternalServerError, "store_error", "Order storage request failed")
		return
	}

	h.respondWithRaw(w, http.StatusOK, result)
}

// Create validates the submitted order and inserts it with the server-owned
// fields filled in. Clients cannot set user_id, store_code, status or
// created_at.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		h.respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	if len(req.Items) == 0 || req.Total <= 0 {
		h.respondWithError(w, http.StatusBadRequest, "invalid_order", "Order must contain items and a positive total")
		return
	}

	order := models.Order{
		OrderType:   req.OrderType,
		TableNumber: req.TableNumber,
		Note:        req.Note,
		Items:       req.Items,
		Total:       req.Total,
		UserID:      user.ID,
		StoreCode:   user.StoreCode,
		Status:      models.OrderStatusPending,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	result, err := h.store.Insert(r.Context(), ordersTable, order)
	if err != nil {
		h.logger.Error().Err(err).Int("user_id", user.ID).Msg("Failed to create order")
		h.respondWithError(w, http.StatusInternalServerError, "store_error", "Order storage request failed")
		return
	}

	h.logger.Info().Int("user_id", user.ID).Str("store_code", user.StoreCode).Int("total", order.Total).Msg("Order created")
	h.respondWithRaw(w, http.StatusCreated, result)
}

// Update patches an order with the allow-listed fields. Requires the edit
// permission; there is no owner exception.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		h.respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	if !user.Permissions.CanEditOrder {
		h.respondWithError(w, http.StatusForbidden, "forbidden", "Insufficient permissions")
		return
	}

	orderID := mux.Vars(r)["id"]

	var update models.OrderUpdate
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&update); err != nil {
		h.respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid or unknown order fields")
		return
	}

	fields := update.Fields()
	if len(fields) == 0 {
		h.respondWithError(w, http.StatusBadRequest, "invalid_request", "No order fields to update")
		return
	}

	err := h.store.Patch(r.Context(), ordersTable, map[string]string{"id": "eq." + orderID}, fields)
	if err != nil {
		h.logger.Error().Err(err).Str("order_id", orderID).Msg("Failed to update order")
		h.respondWithError(w, http.StatusInternalServerError, "store_error", "Order storage request failed")
		return
	}

	h.logger.Info().Str("order_id", orderID).Int("user_id", user.ID).Msg("Order updated")
	h.respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Pay marks an order as paid with the payment method from the query string,
// defaulting to cash. Requires the pay permission.
func (h *OrderHandler) Pay(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		h.respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}

	if !user.Permissions.CanPayOrder {
		h.respondWithError(w, http.StatusForbidden, "forbidden", "Insufficient permissions")
		return
	}

	orderID := mux.Vars(r)["id"]

	method := r.URL.Query().Get("method")
	if method == "" {
		method = "cash"
	}

	err := h.store.Patch(r.Context(), ordersTable, map[string]string{"id": "eq." + orderID}, map[string]string{
		"status":         models.OrderStatusPaid,
		"payment_method": method,
	})
	if err != nil {
		h.logger.Error().Err(err).Str("order_id", orderID).Msg("Failed to pay order")
		h.respondWithError(w, http.StatusInternalServerError, "store_error", "Order storage request failed")
		return
	}

	h.logger.Info().Str("order_id", orderID).Str("method", method).Int("user_id", user.ID).Msg("Order paid")
	h.respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *OrderHandler) respondWithError(w http.ResponseWriter, code int, errorCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   errorCode,
		"message": message,
	})
}

func (h *OrderHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func (h *OrderHandler) respondWithRaw(w http.ResponseWriter, code int, body json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(body)
}
