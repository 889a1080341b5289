// Package http exposes the ordering use cases over a REST API. Handlers
// translate between transport DTOs and commands/queries; HTTP status codes
// are derived from the error taxonomy, never from string matching.
package http

import (
	"net/http"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler        commands.CreateOrderCommandHandler
	confirmOrderHandler       commands.ConfirmOrderCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	shipOrderHandler          commands.ShipOrderCommandHandler
	deliverOrderHandler       commands.DeliverOrderCommandHandler
	addItemHandler            commands.AddOrderItemCommandHandler
	removeItemHandler         commands.RemoveOrderItemCommandHandler
	changeItemQuantityHandler commands.ChangeOrderItemQuantityCommandHandler
	deleteOrderHandler        commands.DeleteOrderCommandHandler

	getOrderHandler  queries.GetOrderQueryHandler
	getOrdersHandler queries.GetOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	addItemHandler commands.AddOrderItemCommandHandler,
	removeItemHandler commands.RemoveOrderItemCommandHandler,
	changeItemQuantityHandler commands.ChangeOrderItemQuantityCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		confirmOrderHandler:       confirmOrderHandler,
		cancelOrderHandler:        cancelOrderHandler,
		shipOrderHandler:          shipOrderHandler,
		deliverOrderHandler:       deliverOrderHandler,
		addItemHandler:            addItemHandler,
		removeItemHandler:         removeItemHandler,
		changeItemQuantityHandler: changeItemQuantityHandler,
		deleteOrderHandler:        deleteOrderHandler,
		getOrderHandler:           getOrderHandler,
		getOrdersHandler:          getOrdersHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.DELETE("/orders/:id", s.DeleteOrder)

	v1.POST("/orders/:id/confirm", s.ConfirmOrder)
	v1.POST("/orders/:id/cancel", s.CancelOrder)
	v1.POST("/orders/:id/ship", s.ShipOrder)
	v1.POST("/orders/:id/deliver", s.DeliverOrder)

	v1.POST("/orders/:id/items", s.AddOrderItem)
	v1.DELETE("/orders/:id/items/:productId", s.RemoveOrderItem)
	v1.PUT("/orders/:id/items/:productId", s.ChangeOrderItemQuantity)
}

// ErrorResponse is the API error shape.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OrderItemRequest carries one requested order position.
type OrderItemRequest struct {
	ProductID   string  `json:"product_id"`
	Quantity    int     `json:"quantity"`
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	UnitPrice   float64 `json:"unit_price"`
}

// CreateOrderRequest is the body of POST /api/v1/orders. Status and price
// are never accepted: every order starts Pending and price is derived.
type CreateOrderRequest struct {
	CustomerID   string             `json:"customer_id"`
	OrderDate    time.Time          `json:"order_date"`
	DeliveryDate time.Time          `json:"delivery_date"`
	Items        []OrderItemRequest `json:"items"`
}

// CreateOrderResponse returns the server-generated order identifier.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// ChangeQuantityRequest is the body of PUT .../items/:productId.
type ChangeQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_BODY",
			Message: "Invalid request body",
		})
	}

	customerID, err := kernel.CustomerIDFromString(req.CustomerID)
	if err != nil {
		return writeError(ctx, err)
	}

	orderDate := req.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now().UTC()
	}

	items := make([]commands.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.OrderItemInput{
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			Name:        item.Name,
			Description: item.Description,
			UnitPrice:   item.UnitPrice,
		})
	}

	orderID := kernel.NewOrderID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, orderDate, req.DeliveryDate, items)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders with an optional ?status= filter.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery()

	if statusParam := ctx.QueryParam("status"); statusParam != "" {
		status, err := order.StatusFromString(statusParam)
		if err != nil {
			return writeError(ctx, err)
		}
		query, err = queries.NewGetOrdersByStatusQuery(status)
		if err != nil {
			return writeError(ctx, err)
		}
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	snapshot, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(snapshot))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmOrder handles POST /api/v1/orders/:id/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.OrderID) error {
		cmd, err := commands.NewConfirmOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.OrderID) error {
		cmd, err := commands.NewCancelOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ShipOrder handles POST /api/v1/orders/:id/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.OrderID) error {
		cmd, err := commands.NewShipOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.shipOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.OrderID) error {
		cmd, err := commands.NewDeliverOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// AddOrderItem handles POST /api/v1/orders/:id/items.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req OrderItemRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_BODY",
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, commands.OrderItemInput{
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
		Name:        req.Name,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.addItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderItem handles DELETE /api/v1/orders/:id/items/:productId.
func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	productID, err := kernel.ProductIDFromString(ctx.Param("productId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, productID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.removeItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderItemQuantity handles PUT /api/v1/orders/:id/items/:productId.
func (s *Server) ChangeOrderItemQuantity(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	productID, err := kernel.ProductIDFromString(ctx.Param("productId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req ChangeQuantityRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_BODY",
			Message: "Invalid request body",
		})
	}

	quantity, err := order.NewProductQuantity(req.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderItemQuantityCommand(orderID, productID, quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.changeItemQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) transition(ctx echo.Context, run func(kernel.OrderID) error) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = run(orderID); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// writeError maps the error taxonomy onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch errs.CategoryOf(err) {
	case errs.CategoryValidation:
		status = http.StatusBadRequest
	case errs.CategoryNotFound:
		status = http.StatusNotFound
	case errs.CategoryLifecycleViolation, errs.CategoryConflict:
		status = http.StatusConflict
	case errs.CategoryInternal:
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    errs.CodeOf(err),
		Message: err.Error(),
	})
}
