// Package http exposes the aggregator's REST surface. Mutations are relayed
// asynchronously: the server publishes a command and answers 202 Accepted;
// reads are served directly from the query handlers.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"ordertrack/internal/core/application/resolver"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/product"
	"ordertrack/internal/core/domain/model/user"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/messaging"
	"ordertrack/internal/pkg/errs"
)

// Server coordinates between HTTP handlers, the command relay, the entity
// resolver, and the query handlers.
type Server struct {
	publisher ports.CommandPublisher
	resolver  *resolver.Resolver

	// Query handlers
	getOrderHandler              queries.GetOrderQueryHandler
	getOrdersHandler             queries.GetOrdersQueryHandler
	getCurrentStatusHandler      queries.GetCurrentStatusQueryHandler
	getCurrentStatusesHandler    queries.GetCurrentStatusesQueryHandler
	getCurrentStatusBatchHandler queries.GetCurrentStatusBatchQueryHandler
	getStatusHistoryHandler      queries.GetStatusHistoryQueryHandler
	getStatusRecordHandler       queries.GetStatusRecordQueryHandler
}

// NewServer creates an HTTP server over the relay publisher and the query
// handlers.
func NewServer(
	publisher ports.CommandPublisher,
	entityResolver *resolver.Resolver,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getCurrentStatusHandler queries.GetCurrentStatusQueryHandler,
	getCurrentStatusesHandler queries.GetCurrentStatusesQueryHandler,
	getCurrentStatusBatchHandler queries.GetCurrentStatusBatchQueryHandler,
	getStatusHistoryHandler queries.GetStatusHistoryQueryHandler,
	getStatusRecordHandler queries.GetStatusRecordQueryHandler,
) *Server {
	return &Server{
		publisher:                    publisher,
		resolver:                     entityResolver,
		getOrderHandler:              getOrderHandler,
		getOrdersHandler:             getOrdersHandler,
		getCurrentStatusHandler:      getCurrentStatusHandler,
		getCurrentStatusesHandler:    getCurrentStatusesHandler,
		getCurrentStatusBatchHandler: getCurrentStatusBatchHandler,
		getStatusHistoryHandler:      getStatusHistoryHandler,
		getStatusRecordHandler:       getStatusRecordHandler,
	}
}

// RegisterRoutes attaches all aggregator routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.GET("/orders/:orderId/details", s.GetOrderDetails)
	api.PATCH("/orders/:orderId", s.UpdateOrder)
	api.DELETE("/orders/:orderId", s.DeleteOrder)
	api.POST("/orders/:orderId/status", s.ChangeOrderStatus)
	api.GET("/orders/:orderId/status", s.GetCurrentStatus)
	api.GET("/orders/:orderId/history", s.GetStatusHistory)
	api.GET("/statuses", s.GetCurrentStatuses)
	api.POST("/statuses/batch", s.GetCurrentStatusBatch)
	api.GET("/status-records/:recordId", s.GetStatusRecord)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// CreateOrder handles POST /api/v1/orders - relays an order registration.
// The order id is allocated here so redelivered creates stay idempotent.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if _, err := kernel.UUIDFromString(req.UserID); err != nil {
		return badRequest(ctx, "Invalid user id")
	}
	if _, err := kernel.UUIDFromString(req.ProductID); err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	orderID := kernel.NewUUID()
	cmd := messaging.OrderCreateCommand{
		OrderID:   orderID.String(),
		UserID:    req.UserID,
		ProductID: req.ProductID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusAccepted, AcceptedResponse{OrderID: orderID.String()})
}

// UpdateOrder handles PATCH /api/v1/orders/:orderId - relays a partial
// update. At least one field must be present.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if req.UserID == nil && req.ProductID == nil && req.CreatedAt == nil {
		return badRequest(ctx, "Update must change at least one field")
	}
	if req.UserID != nil {
		if _, err := kernel.UUIDFromString(*req.UserID); err != nil {
			return badRequest(ctx, "Invalid user id")
		}
	}
	if req.ProductID != nil {
		if _, err := kernel.UUIDFromString(*req.ProductID); err != nil {
			return badRequest(ctx, "Invalid product id")
		}
	}

	cmd := messaging.OrderUpdateCommand{
		OrderID:   orderID.String(),
		UserID:    req.UserID,
		ProductID: req.ProductID,
		CreatedAt: req.CreatedAt,
	}
	if err := s.publisher.Publish(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// ChangeOrderStatus handles POST /api/v1/orders/:orderId/status - relays a
// status assertion. A missing recorded_at travels as the zero time, which
// sorts as least recent.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ChangeStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if _, err := order.StatusFromString(req.Status); err != nil {
		return badRequest(ctx, "Unknown status name")
	}

	var recordedAt time.Time
	if req.RecordedAt != nil {
		recordedAt = req.RecordedAt.UTC()
	}

	cmd := messaging.StatusChangeCommand{
		OrderID:    orderID.String(),
		Status:     req.Status,
		RecordedAt: recordedAt,
	}
	if err := s.publisher.Publish(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// DeleteOrder handles DELETE /api/v1/orders/:orderId - relays an order
// removal; the history is retained as tombstones.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd := messaging.OrderDeleteCommand{OrderID: orderID.String()}
	if err := s.publisher.Publish(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return mapError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderResponse(resp))
}

// GetOrderDetails handles GET /api/v1/orders/:orderId/details - the order
// plus its user and product resolved from the owning services.
func (s *Server) GetOrderDetails(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return mapError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	resolvedUser, err := s.resolver.ResolveOne(ctx.Request().Context(), &user.User{ID: resp.UserID})
	if err != nil {
		return mapError(ctx, err)
	}
	resolvedProduct, err := s.resolver.ResolveOne(ctx.Request().Context(), &product.Product{ID: resp.ProductID})
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderDetailsResponse{
		Order:   toOrderResponse(resp),
		User:    resolvedUser.(*user.User),
		Product: resolvedProduct.(*product.Product),
	})
}

// GetOrders handles GET /api/v1/orders with optional user_id and product_id
// filters.
func (s *Server) GetOrders(ctx echo.Context) error {
	var userID, productID *kernel.UUID
	if raw := ctx.QueryParam("user_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid user id")
		}
		userID = &id
	}
	if raw := ctx.QueryParam("product_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid product id")
		}
		productID = &id
	}

	query, err := queries.NewGetOrdersQuery(userID, productID)
	if err != nil {
		return mapError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetCurrentStatus handles GET /api/v1/orders/:orderId/status.
func (s *Server) GetCurrentStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetCurrentStatusQuery(orderID)
	if err != nil {
		return mapError(ctx, err)
	}

	status, err := s.getCurrentStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, CurrentStatusResponse{
		OrderID: orderID.String(),
		Status:  status.String(),
	})
}

// GetCurrentStatuses handles GET /api/v1/statuses with an optional status
// filter on the derived current status.
func (s *Server) GetCurrentStatuses(ctx echo.Context) error {
	var filter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, "Unknown status name")
		}
		filter = &status
	}

	query, err := queries.NewGetCurrentStatusesQuery(filter)
	if err != nil {
		return mapError(ctx, err)
	}

	statuses, err := s.getCurrentStatusesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]CurrentStatusResponse, len(statuses))
	for i, cs := range statuses {
		response[i] = CurrentStatusResponse{
			OrderID: cs.OrderID.String(),
			Status:  cs.Status.String(),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetCurrentStatusBatch handles POST /api/v1/statuses/batch - current
// statuses for a set of orders. Ids with no history are omitted from the
// result.
func (s *Server) GetCurrentStatusBatch(ctx echo.Context) error {
	var req StatusBatchRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderIDs := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid order id")
		}
		orderIDs = append(orderIDs, id)
	}

	query, err := queries.NewGetCurrentStatusBatchQuery(orderIDs)
	if err != nil {
		return mapError(ctx, err)
	}

	statuses, err := s.getCurrentStatusBatchHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make(map[string]string, len(statuses))
	for orderID, status := range statuses {
		response[orderID.String()] = status.String()
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetStatusHistory handles GET /api/v1/orders/:orderId/history, returning
// records in ascending order.
func (s *Server) GetStatusHistory(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetStatusHistoryQuery(orderID)
	if err != nil {
		return mapError(ctx, err)
	}

	history, err := s.getStatusHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]StatusRecordResponse, len(history))
	for i, record := range history {
		response[i] = toStatusRecordResponse(record)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetStatusRecord handles GET /api/v1/status-records/:recordId.
func (s *Server) GetStatusRecord(ctx echo.Context) error {
	recordID, err := kernel.UUIDFromString(ctx.Param("recordId"))
	if err != nil {
		return badRequest(ctx, "Invalid record id")
	}

	query, err := queries.NewGetStatusRecordQuery(recordID)
	if err != nil {
		return mapError(ctx, err)
	}

	record, err := s.getStatusRecordHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toStatusRecordResponse(record))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapError translates application errors into HTTP status codes. Remote
// detail is never echoed back to the caller.
func mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Not found",
		})
	case errors.Is(err, errs.ErrRemoteCallFailed):
		return ctx.JSON(http.StatusBadGateway, ErrorResponse{
			Code:    http.StatusBadGateway,
			Message: "Upstream service unavailable",
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request",
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal error",
		})
	}
}
