package models

// CreateOrderRequest is the client-submitted part of an order. Server-owned
// fields (user_id, store_code, status, created_at) are injected before the
// record reaches the store.
type CreateOrderRequest struct {
	OrderType   string         `json:"order_type"`
	TableNumber *int           `json:"table_number,omitempty"`
	Note        string         `json:"note,omitempty"`
	Items       map[string]int `json:"items"`
	Total       int            `json:"total"`
}

// Order is the full record as inserted into the store's orders table.
type Order struct {
	ID            int            `json:"id,omitempty"`
	OrderType     string         `json:"order_type"`
	TableNumber   *int           `json:"table_number,omitempty"`
	Note          string         `json:"note,omitempty"`
	Items         map[string]int `json:"items"`
	Total         int            `json:"total"`
	UserID        int            `json:"user_id"`
	StoreCode     string         `json:"store_code"`
	Status        string         `json:"status"`
	PaymentMethod string         `json:"payment_method,omitempty"`
	CreatedAt     string         `json:"created_at"`
}

// OrderStatus values used by this service. Further states are owned by the
// store and pass through untouched.
const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
)

// OrderUpdate is the allow-list for PATCH /api/orders/{id}. Protected fields
// (id, user_id, store_code, created_at) are deliberately absent; unknown keys
// are rejected at decode time.
type OrderUpdate struct {
	OrderType   *string        `json:"order_type,omitempty"`
	TableNumber *int           `json:"table_number,omitempty"`
	Note        *string        `json:"note,omitempty"`
	Items       map[string]int `json:"items,omitempty"`
	Total       *int           `json:"total,omitempty"`
	Status      *string        `json:"status,omitempty"`
}

// Fields returns only the fields present in the request, keyed by store
// column name, ready to be sent as a partial update.
func (u *OrderUpdate) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if u.OrderType != nil {
		fields["order_type"] = *u.OrderType
	}
	if u.TableNumber != nil {
		fields["table_number"] = *u.TableNumber
	}
	if u.Note != nil {
		fields["note"] = *u.Note
	}
	if u.Items != nil {
		fields["items"] = u.Items
	}
	if u.Total != nil {
		fields["total"] = *u.Total
	}
	if u.Status != nil {
		fields["status"] = *u.Status
	}
	return fields
}
