package http

import (
	"time"

	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/product"
	"ordertrack/internal/core/domain/model/user"
)

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
}

// UpdateOrderRequest is the body of PATCH /api/v1/orders/:orderId. Nil
// fields are left untouched.
type UpdateOrderRequest struct {
	UserID    *string    `json:"user_id,omitempty"`
	ProductID *string    `json:"product_id,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// ChangeStatusRequest is the body of POST /api/v1/orders/:orderId/status.
// RecordedAt is optional; an assertion without a timestamp ranks as least
// recent.
type ChangeStatusRequest struct {
	Status     string     `json:"status"`
	RecordedAt *time.Time `json:"recorded_at,omitempty"`
}

// AcceptedResponse acknowledges an asynchronously relayed creation.
type AcceptedResponse struct {
	OrderID string `json:"order_id"`
}

// OrderResponse is one order with its derived current status.
type OrderResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	ProductID     string    `json:"product_id"`
	CreatedAt     time.Time `json:"created_at"`
	CurrentStatus string    `json:"current_status"`
}

// StatusBatchRequest is the body of POST /api/v1/statuses/batch.
type StatusBatchRequest struct {
	OrderIDs []string `json:"order_ids"`
}

// OrderDetailsResponse is an order enriched with the entities it references
// across service boundaries.
type OrderDetailsResponse struct {
	Order   OrderResponse    `json:"order"`
	User    *user.User       `json:"user"`
	Product *product.Product `json:"product"`
}

// CurrentStatusResponse pairs an order with its derived current status.
type CurrentStatusResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// StatusRecordResponse is one history record. RecordedAt is omitted for
// records whose assertion carried no timestamp.
type StatusRecordResponse struct {
	ID         string     `json:"id"`
	OrderID    string     `json:"order_id"`
	Status     string     `json:"status"`
	RecordedAt *time.Time `json:"recorded_at,omitempty"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toOrderResponse(resp queries.GetOrderQueryResponse) OrderResponse {
	return OrderResponse{
		ID:            resp.ID.String(),
		UserID:        resp.UserID.String(),
		ProductID:     resp.ProductID.String(),
		CreatedAt:     resp.CreatedAt,
		CurrentStatus: resp.CurrentStatus.String(),
	}
}

func toStatusRecordResponse(record queries.StatusRecordResponse) StatusRecordResponse {
	resp := StatusRecordResponse{
		ID:      record.ID.String(),
		OrderID: record.OrderID.String(),
		Status:  record.Status.String(),
	}
	if !record.RecordedAt.IsZero() {
		recordedAt := record.RecordedAt
		resp.RecordedAt = &recordedAt
	}
	return resp
}
