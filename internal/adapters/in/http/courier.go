package http

import (
	"net/http"
	"strconv"
	"time"

	"compras/internal/core/application/usecases/commands"
	"compras/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type readyOrderResponse struct {
	ID         int64           `json:"id"`
	Folio      string          `json:"folio"`
	UsuarioID  int64           `json:"usuarioId"`
	Total      decimal.Decimal `json:"total"`
	MetodoPago string          `json:"metodoPago"`
	EstadoPago string          `json:"estadoPago"`
	CreadoEn   time.Time       `json:"creadoEn"`
	Direccion  *string         `json:"direccion"`
	Telefono   *string         `json:"telefono"`
}

// GetReadyOrders handles GET /api/repartidor/orders-ready.
func (s *Server) GetReadyOrders(ctx echo.Context) error {
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))

	var courierID *int64
	if raw := ctx.QueryParam("repartidorUsuarioId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "repartidorUsuarioId inválido"})
		}
		courierID = &parsed
	}

	query := queries.NewGetReadyOrdersQuery(limit, courierID)

	orders, err := s.readyOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := make([]readyOrderResponse, len(orders))
	for i, o := range orders {
		resp[i] = readyOrderResponse{
			ID:         o.ID,
			Folio:      o.Folio,
			UsuarioID:  o.UserID,
			Total:      o.Price,
			MetodoPago: o.PaymentMethod,
			EstadoPago: o.PaymentStatus,
			CreadoEn:   o.CreatedAt,
			Direccion:  o.Address,
			Telefono:   o.Phone,
		}
	}

	return ctx.JSON(http.StatusOK, resp)
}

type confirmReceivedRequest struct {
	RepartidorUsuarioID *int64 `json:"repartidorUsuarioId"`
}

// ConfirmReceived handles POST /api/repartidor/orders/:folio/confirm-received.
func (s *Server) ConfirmReceived(ctx echo.Context) error {
	var req confirmReceivedRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "cuerpo inválido"})
	}

	cmd, err := commands.NewConfirmReceivedCommand(ctx.Param("folio"), req.RepartidorUsuarioID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.confirmReceivedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, okResponse{OK: true})
}

type confirmPaymentRequest struct {
	Metodo     string  `json:"metodo"`
	Referencia *string `json:"referencia"`
}

// ConfirmPayment handles POST /api/repartidor/orders/:folio/confirm-payment.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	var req confirmPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "cuerpo inválido"})
	}

	cmd, err := commands.NewConfirmPaymentCommand(ctx.Param("folio"), req.Metodo, req.Referencia)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, okResponse{OK: true})
}

// FinishDelivery handles POST /api/repartidor/orders/:folio/finish-delivery.
func (s *Server) FinishDelivery(ctx echo.Context) error {
	cmd, err := commands.NewFinishDeliveryCommand(ctx.Param("folio"))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.finishDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, okResponse{OK: true})
}
