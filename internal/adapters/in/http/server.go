package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"tableorders/internal/core/application/usecases/commands"
	"tableorders/internal/core/application/usecases/queries"
	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/core/domain/model/order"
	"tableorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateOrderCommandHandler handles order creation.
type CreateOrderCommandHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
}

// UpdateOrderStatusCommandHandler handles status transitions.
type UpdateOrderStatusCommandHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error)
}

// ConfirmOrderCommandHandler handles the confirm convenience transition.
type ConfirmOrderCommandHandler interface {
	Handle(ctx context.Context, cmd commands.ConfirmOrderCommand) (*order.Order, error)
}

// DeleteOrderCommandHandler handles order deletion.
type DeleteOrderCommandHandler interface {
	Handle(ctx context.Context, cmd commands.DeleteOrderCommand) (*order.Order, error)
}

// GetOrdersByStatusQueryHandler lists orders at a given status.
type GetOrdersByStatusQueryHandler interface {
	Handle(ctx context.Context, query queries.GetOrdersByStatusQuery) ([]queries.OrderResponse, error)
}

// GetOrdersCreatedSinceQueryHandler lists orders created at or after a point in time.
type GetOrdersCreatedSinceQueryHandler interface {
	Handle(ctx context.Context, query queries.GetOrdersCreatedSinceQuery) ([]queries.OrderResponse, error)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       CreateOrderCommandHandler
	updateOrderStatusHandler UpdateOrderStatusCommandHandler
	confirmOrderHandler      ConfirmOrderCommandHandler
	deleteOrderHandler       DeleteOrderCommandHandler

	// Query handlers
	ordersByStatusHandler     GetOrdersByStatusQueryHandler
	ordersCreatedSinceHandler GetOrdersCreatedSinceQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler CreateOrderCommandHandler,
	updateOrderStatusHandler UpdateOrderStatusCommandHandler,
	confirmOrderHandler ConfirmOrderCommandHandler,
	deleteOrderHandler DeleteOrderCommandHandler,
	ordersByStatusHandler GetOrdersByStatusQueryHandler,
	ordersCreatedSinceHandler GetOrdersCreatedSinceQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		updateOrderStatusHandler:  updateOrderStatusHandler,
		confirmOrderHandler:       confirmOrderHandler,
		deleteOrderHandler:        deleteOrderHandler,
		ordersByStatusHandler:     ordersByStatusHandler,
		ordersCreatedSinceHandler: ordersCreatedSinceHandler,
		logger:                    logger.With("component", "http"),
	}
}

// RegisterRoutes mounts the order API on the given echo instance. Order creation
// and the health probe are public; every other order route runs behind the staff
// middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, staff echo.MiddlewareFunc) {
	e.GET("/health", s.Health)
	e.POST("/orders", s.CreateOrder)

	g := e.Group("/orders", staff)
	g.GET("/pending", s.GetPendingOrders)
	g.GET("/confirmed", s.GetConfirmedOrders)
	g.GET("/status/:status", s.GetOrdersByStatus)
	g.GET("/today", s.GetTodayOrders)
	g.PATCH("/:id/status", s.UpdateOrderStatus)
	g.POST("/confirm/:id", s.ConfirmOrder)
	g.DELETE("/:id", s.DeleteOrder)
}

// MessageResponse is the body of message-only responses, errors included.
type MessageResponse struct {
	Message string `json:"message"`
}

// OrderEnvelope wraps a single order together with a human-readable outcome message.
type OrderEnvelope struct {
	Message string    `json:"message"`
	Order   OrderJSON `json:"order"`
}

// OrderJSON is the wire representation of an order.
type OrderJSON struct {
	ID        string            `json:"id"`
	TableID   string            `json:"tableId"`
	Items     []json.RawMessage `json:"items"`
	Location  string            `json:"location,omitempty"`
	IP        string            `json:"ip,omitempty"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	TableID  string            `json:"tableId"`
	Items    []json.RawMessage `json:"items"`
	Location string            `json:"location"`
	IP       string            `json:"ip"`
}

// UpdateOrderStatusRequest is the body of PATCH /orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

func orderToJSON(o *order.Order) OrderJSON {
	return OrderJSON{
		ID:        o.ID().String(),
		TableID:   o.TableID(),
		Items:     o.Items(),
		Location:  o.Location(),
		IP:        o.IP(),
		Status:    o.Status().String(),
		CreatedAt: o.CreatedAt(),
	}
}

func responseToJSON(r queries.OrderResponse) OrderJSON {
	return OrderJSON{
		ID:        r.ID.String(),
		TableID:   r.TableID,
		Items:     r.Items,
		Location:  r.Location,
		IP:        r.IP,
		Status:    r.Status.String(),
		CreatedAt: r.CreatedAt,
	}
}

func responsesToJSON(rs []queries.OrderResponse) []OrderJSON {
	out := make([]OrderJSON, len(rs))
	for i, r := range rs {
		out[i] = responseToJSON(r)
	}
	return out
}

// serverError logs the failure with detail and returns the fixed generic body.
// Internal error text never reaches the client.
func (s *Server) serverError(ctx echo.Context, op string, err error) error {
	s.logger.Error("request failed", "op", op, "error", err)
	return ctx.JSON(http.StatusInternalServerError, MessageResponse{Message: "Server error"})
}

func (s *Server) orderIDParam(ctx echo.Context) (kernel.UUID, bool) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, false
	}
	return id, true
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /orders. Open to unauthenticated callers so guests
// can place orders from the table.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body CreateOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: "Table ID and items are required"})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), body.TableID, body.Items, body.Location, body.IP)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: "Table ID and items are required"})
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.serverError(ctx, "create order", err)
	}

	return ctx.JSON(http.StatusCreated, OrderEnvelope{
		Message: "Order placed successfully",
		Order:   orderToJSON(created),
	})
}

// UpdateOrderStatus handles PATCH /orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, ok := s.orderIDParam(ctx)
	if !ok {
		return ctx.JSON(http.StatusNotFound, MessageResponse{Message: "Order not found"})
	}

	var body UpdateOrderStatusRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid status value"})
	}

	status, err := order.StatusFromString(body.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid status value"})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid status value"})
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, MessageResponse{Message: "Order not found"})
		}
		return s.serverError(ctx, "update order status", err)
	}

	return ctx.JSON(http.StatusOK, OrderEnvelope{
		Message: "Order status updated",
		Order:   orderToJSON(updated),
	})
}

// ConfirmOrder handles POST /orders/confirm/:id.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	id, ok := s.orderIDParam(ctx)
	if !ok {
		return ctx.JSON(http.StatusNotFound, MessageResponse{Message: "Order not found"})
	}

	cmd, err := commands.NewConfirmOrderCommand(id)
	if err != nil {
		return s.serverError(ctx, "confirm order", err)
	}

	confirmed, err := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, MessageResponse{Message: "Order not found"})
		}
		return s.serverError(ctx, "confirm order", err)
	}

	return ctx.JSON(http.StatusOK, OrderEnvelope{
		Message: "Order confirmed",
		Order:   orderToJSON(confirmed),
	})
}

// DeleteOrder handles DELETE /orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, ok := s.orderIDParam(ctx)
	if !ok {
		return ctx.JSON(http.StatusNotFound, MessageResponse{Message: "Order not found"})
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return s.serverError(ctx, "delete order", err)
	}

	deleted, err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, MessageResponse{Message: "Order not found"})
		}
		return s.serverError(ctx, "delete order", err)
	}

	return ctx.JSON(http.StatusOK, OrderEnvelope{
		Message: "Order deleted successfully",
		Order:   orderToJSON(deleted),
	})
}

// GetPendingOrders handles GET /orders/pending.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	return s.listByStatus(ctx, order.Pending, "list pending orders")
}

// GetConfirmedOrders handles GET /orders/confirmed.
func (s *Server) GetConfirmedOrders(ctx echo.Context) error {
	return s.listByStatus(ctx, order.Confirmed, "list confirmed orders")
}

// GetOrdersByStatus handles GET /orders/status/:status.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.Param("status"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid status"})
	}
	return s.listByStatus(ctx, status, "list orders by status")
}

func (s *Server) listByStatus(ctx echo.Context, status order.Status, op string) error {
	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return s.serverError(ctx, op, err)
	}

	orders, err := s.ordersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.serverError(ctx, op, err)
	}

	return ctx.JSON(http.StatusOK, responsesToJSON(orders))
}

// GetTodayOrders handles GET /orders/today. "Today" starts at local midnight.
func (s *Server) GetTodayOrders(ctx echo.Context) error {
	query, err := queries.NewGetOrdersCreatedSinceQuery(queries.StartOfToday(time.Now()))
	if err != nil {
		return s.serverError(ctx, "list today's orders", err)
	}

	orders, err := s.ordersCreatedSinceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.serverError(ctx, "list today's orders", err)
	}

	return ctx.JSON(http.StatusOK, responsesToJSON(orders))
}
