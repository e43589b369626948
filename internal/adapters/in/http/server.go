// Package http exposes the storefront's order workflow over a JSON API.
// It coordinates between HTTP handlers and application use cases; all
// behavior lives in the command and query handlers.
package http

import (
	"errors"
	"net/http"

	"compras/internal/core/application/usecases/commands"
	"compras/internal/core/application/usecases/queries"
	"compras/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires the API routes to the command and query handlers.
type Server struct {
	// Command handlers
	checkoutHandler           commands.CheckoutCommandHandler
	setOrderStateHandler      commands.SetOrderStateCommandHandler
	addOrderEventHandler      commands.AddOrderEventCommandHandler
	advanceOrderHandler       commands.AdvanceOrderCommandHandler
	confirmReceivedHandler    commands.ConfirmReceivedCommandHandler
	confirmPaymentHandler     commands.ConfirmPaymentCommandHandler
	finishDeliveryHandler     commands.FinishDeliveryCommandHandler
	assignOperatorHandler     commands.AssignOperatorCommandHandler
	addCartItemHandler        commands.AddCartItemCommandHandler
	updateCartQuantityHandler commands.UpdateCartItemQuantityCommandHandler
	removeCartItemHandler     commands.RemoveCartItemCommandHandler

	// Query handlers
	trackingHandler       queries.GetTrackingQueryHandler
	orderHistoryHandler   queries.GetOrderHistoryQueryHandler
	readyOrdersHandler    queries.GetReadyOrdersQueryHandler
	assignedOrdersHandler queries.GetAssignedOrdersQueryHandler
	operatorsHandler      queries.GetOperatorsQueryHandler
	assignmentsHandler    queries.GetAssignmentsQueryHandler
	cartPreviewHandler    queries.GetCartPreviewQueryHandler
}

// NewServer creates the HTTP server over the given handlers.
func NewServer(
	checkoutHandler commands.CheckoutCommandHandler,
	setOrderStateHandler commands.SetOrderStateCommandHandler,
	addOrderEventHandler commands.AddOrderEventCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	confirmReceivedHandler commands.ConfirmReceivedCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	finishDeliveryHandler commands.FinishDeliveryCommandHandler,
	assignOperatorHandler commands.AssignOperatorCommandHandler,
	addCartItemHandler commands.AddCartItemCommandHandler,
	updateCartQuantityHandler commands.UpdateCartItemQuantityCommandHandler,
	removeCartItemHandler commands.RemoveCartItemCommandHandler,
	trackingHandler queries.GetTrackingQueryHandler,
	orderHistoryHandler queries.GetOrderHistoryQueryHandler,
	readyOrdersHandler queries.GetReadyOrdersQueryHandler,
	assignedOrdersHandler queries.GetAssignedOrdersQueryHandler,
	operatorsHandler queries.GetOperatorsQueryHandler,
	assignmentsHandler queries.GetAssignmentsQueryHandler,
	cartPreviewHandler queries.GetCartPreviewQueryHandler,
) *Server {
	return &Server{
		checkoutHandler:           checkoutHandler,
		setOrderStateHandler:      setOrderStateHandler,
		addOrderEventHandler:      addOrderEventHandler,
		advanceOrderHandler:       advanceOrderHandler,
		confirmReceivedHandler:    confirmReceivedHandler,
		confirmPaymentHandler:     confirmPaymentHandler,
		finishDeliveryHandler:     finishDeliveryHandler,
		assignOperatorHandler:     assignOperatorHandler,
		addCartItemHandler:        addCartItemHandler,
		updateCartQuantityHandler: updateCartQuantityHandler,
		removeCartItemHandler:     removeCartItemHandler,
		trackingHandler:           trackingHandler,
		orderHistoryHandler:       orderHistoryHandler,
		readyOrdersHandler:        readyOrdersHandler,
		assignedOrdersHandler:     assignedOrdersHandler,
		operatorsHandler:          operatorsHandler,
		assignmentsHandler:        assignmentsHandler,
		cartPreviewHandler:        cartPreviewHandler,
	}
}

// RegisterRoutes attaches every API route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/checkout", s.Checkout)
	api.POST("/orders/:folio/set-state", s.SetOrderState)
	api.POST("/orders/:folio/events", s.AddOrderEvent)
	api.GET("/orders/:folio/tracking", s.GetTracking)
	api.GET("/orders/history", s.GetOrderHistory)

	api.GET("/cart", s.GetCartPreview)
	api.GET("/cart/preview", s.GetCartPreview)
	api.POST("/cart/items", s.AddCartItem)
	api.PUT("/cart/items/:itemId", s.UpdateCartItem)
	api.DELETE("/cart/items/:itemId", s.RemoveCartItem)

	api.GET("/repartidor/orders-ready", s.GetReadyOrders)
	api.POST("/repartidor/orders/:folio/confirm-received", s.ConfirmReceived)
	api.POST("/repartidor/orders/:folio/confirm-payment", s.ConfirmPayment)
	api.POST("/repartidor/orders/:folio/finish-delivery", s.FinishDelivery)

	api.GET("/operator/orders-assigned", s.GetAssignedOrders)
	api.POST("/operator/orders/:orderId/advance", s.AdvanceOrder)

	api.GET("/supervisor/operators", s.GetOperators)
	api.POST("/supervisor/orders/:ordenId/assign-operator", s.AssignOperator)
	api.GET("/supervisor/orders/assignments", s.GetAssignments)
}

type errorResponse struct {
	Error string `json:"error"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

// writeError maps domain errors onto HTTP statuses: validation to 400, not
// found to 404, state conflicts to 409, everything else to 500.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrInvalidStateForAction), errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "error interno"})
	}
}
