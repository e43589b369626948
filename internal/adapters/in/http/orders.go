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

type checkoutAddressRequest struct {
	Descripcion    *string `json:"descripcion"`
	ContactoNombre *string `json:"contactoNombre"`
	Telefono       *string `json:"telefono"`
	AreaID         *int64  `json:"areaId"`
	PuntoEntregaID *int64  `json:"puntoEntregaId"`
}

// checkoutRequest accepts both the metodoPago key storefront clients send
// and the short metodo spelling.
type checkoutRequest struct {
	UsuarioID   int64                   `json:"usuarioId"`
	MetodoPago  string                  `json:"metodoPago"`
	Metodo      string                  `json:"metodo"`
	Direccion   *checkoutAddressRequest `json:"direccion"`
	DraftItemID *int64                  `json:"draftItemId"`
}

func (r checkoutRequest) method() string {
	if r.MetodoPago != "" {
		return r.MetodoPago
	}
	return r.Metodo
}

type checkoutOrderResponse struct {
	OrdenID   int64  `json:"ordenId"`
	Folio     string `json:"folio"`
	Total     string `json:"total"`
	EntregaID int64  `json:"entregaId"`
}

type checkoutResponse struct {
	UsuarioID       int64                   `json:"usuarioId"`
	ItemsProcesados int                     `json:"itemsProcesados"`
	Ordenes         []checkoutOrderResponse `json:"ordenes"`
}

// Checkout handles POST /api/checkout.
func (s *Server) Checkout(ctx echo.Context) error {
	var req checkoutRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "cuerpo inválido"})
	}

	var address *commands.CheckoutAddress
	if req.Direccion != nil {
		address = &commands.CheckoutAddress{
			Description:     req.Direccion.Descripcion,
			ContactName:     req.Direccion.ContactoNombre,
			Phone:           req.Direccion.Telefono,
			AreaID:          req.Direccion.AreaID,
			DeliveryPointID: req.Direccion.PuntoEntregaID,
		}
	}

	cmd, err := commands.NewCheckoutCommand(req.UsuarioID, req.method(), address, req.DraftItemID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	orders := make([]checkoutOrderResponse, len(result.Orders))
	for i, o := range result.Orders {
		orders[i] = checkoutOrderResponse{
			OrdenID:   o.OrderID,
			Folio:     o.Folio,
			Total:     o.Total,
			EntregaID: o.DeliveryID,
		}
	}

	return ctx.JSON(http.StatusOK, checkoutResponse{
		UsuarioID:       result.UserID,
		ItemsProcesados: result.ItemsProcessed,
		Ordenes:         orders,
	})
}

// stateChangeRequest accepts both the English and Spanish key spellings the
// storefront clients send.
type stateChangeRequest struct {
	Code   string `json:"code"`
	Codigo string `json:"codigo"`
	Note   string `json:"note"`
	Notas  string `json:"notas"`
}

func (r stateChangeRequest) code() string {
	if r.Code != "" {
		return r.Code
	}
	return r.Codigo
}

func (r stateChangeRequest) note() string {
	if r.Note != "" {
		return r.Note
	}
	return r.Notas
}

// SetOrderState handles POST /api/orders/:folio/set-state.
func (s *Server) SetOrderState(ctx echo.Context) error {
	var req stateChangeRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "cuerpo inválido"})
	}

	cmd, err := commands.NewSetOrderStateCommand(ctx.Param("folio"), req.code(), req.note())
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.setOrderStateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, okResponse{OK: true})
}

// AddOrderEvent handles POST /api/orders/:folio/events.
func (s *Server) AddOrderEvent(ctx echo.Context) error {
	var req stateChangeRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "cuerpo inválido"})
	}

	cmd, err := commands.NewAddOrderEventCommand(ctx.Param("folio"), req.note())
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.addOrderEventHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, okResponse{OK: true})
}

type trackingOrderResponse struct {
	ID           int64           `json:"id"`
	Folio        string          `json:"folio"`
	UsuarioID    int64           `json:"usuarioId"`
	Total        decimal.Decimal `json:"total"`
	EstadoCodigo string          `json:"estadoCodigo"`
	EstadoNombre string          `json:"estadoNombre"`
	PasoPublico  *int            `json:"pasoPublico"`
}

type trackingDeliveryResponse struct {
	ID                  int64      `json:"id"`
	Estado              string     `json:"estado"`
	RepartidorUsuarioID *int64     `json:"repartidorUsuarioId"`
	CobradoEfectivoEn   *time.Time `json:"cobradoEfectivoEn"`
	EntregadoEn         *time.Time `json:"entregadoEn"`
}

type trackingEventResponse struct {
	ID       int64            `json:"id"`
	EstadoID int64            `json:"estadoId"`
	Lat      *decimal.Decimal `json:"lat"`
	Lng      *decimal.Decimal `json:"lng"`
	CreadoEn time.Time        `json:"creadoEn"`
}

type trackingStepResponse struct {
	Codigo      string `json:"codigo"`
	Nombre      string `json:"nombre"`
	PasoPublico int    `json:"pasoPublico"`
}

type trackingResponse struct {
	Orden   trackingOrderResponse     `json:"orden"`
	Entrega *trackingDeliveryResponse `json:"entrega"`
	Eventos []trackingEventResponse   `json:"eventos"`
	Steps   []trackingStepResponse    `json:"steps"`
}

// GetTracking handles GET /api/orders/:folio/tracking.
func (s *Server) GetTracking(ctx echo.Context) error {
	query, err := queries.NewGetTrackingQuery(ctx.Param("folio"))
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.trackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := trackingResponse{
		Orden: trackingOrderResponse{
			ID:           view.Order.ID,
			Folio:        view.Order.Folio,
			UsuarioID:    view.Order.UserID,
			Total:        view.Order.Total,
			EstadoCodigo: view.Order.StateCode,
			EstadoNombre: view.Order.StateName,
			PasoPublico:  view.Order.PublicStep,
		},
		Eventos: make([]trackingEventResponse, len(view.Events)),
		Steps:   make([]trackingStepResponse, len(view.Steps)),
	}

	if view.Delivery != nil {
		resp.Entrega = &trackingDeliveryResponse{
			ID:                  view.Delivery.ID,
			Estado:              view.Delivery.Status,
			RepartidorUsuarioID: view.Delivery.CourierID,
			CobradoEfectivoEn:   view.Delivery.CashCollectedAt,
			EntregadoEn:         view.Delivery.DeliveredAt,
		}
	}

	for i, event := range view.Events {
		resp.Eventos[i] = trackingEventResponse{
			ID:       event.ID,
			EstadoID: event.StateID,
			Lat:      event.Lat,
			Lng:      event.Lng,
			CreadoEn: event.CreatedAt,
		}
	}

	for i, step := range view.Steps {
		resp.Steps[i] = trackingStepResponse{
			Codigo:      step.Code,
			Nombre:      step.Name,
			PasoPublico: step.PublicStep,
		}
	}

	return ctx.JSON(http.StatusOK, resp)
}

type historyOrderResponse struct {
	ID           int64           `json:"id"`
	Folio        string          `json:"folio"`
	Total        decimal.Decimal `json:"total"`
	CreadoEn     time.Time       `json:"creadoEn"`
	EstadoCodigo string          `json:"estadoCodigo"`
	EstadoNombre string          `json:"estadoNombre"`
}

type historyItemResponse struct {
	ID             int64           `json:"id"`
	OrdenID        int64           `json:"ordenId"`
	ProductoID     int64           `json:"productoId"`
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type orderHistoryResponse struct {
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"pageSize"`
	Ordenes  []historyOrderResponse `json:"ordenes"`
	Items    []historyItemResponse  `json:"items"`
}

// GetOrderHistory handles GET /api/orders/history.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	userID, _ := strconv.ParseInt(ctx.QueryParam("usuarioId"), 10, 64)
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	pageSize, _ := strconv.Atoi(ctx.QueryParam("pageSize"))

	query, err := queries.NewGetOrderHistoryQuery(userID, page, pageSize)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.orderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := orderHistoryResponse{
		Total:    result.Total,
		Page:     result.Page,
		PageSize: result.PageSize,
		Ordenes:  make([]historyOrderResponse, len(result.Orders)),
		Items:    make([]historyItemResponse, len(result.Items)),
	}

	for i, o := range result.Orders {
		resp.Ordenes[i] = historyOrderResponse{
			ID:           o.ID,
			Folio:        o.Folio,
			Total:        o.Total,
			CreadoEn:     o.CreatedAt,
			EstadoCodigo: o.StateCode,
			EstadoNombre: o.StateName,
		}
	}

	for i, item := range result.Items {
		resp.Items[i] = historyItemResponse{
			ID:             item.ID,
			OrdenID:        item.OrderID,
			ProductoID:     item.ProductID,
			Producto:       item.ProductName,
			Cantidad:       item.Quantity,
			PrecioUnitario: item.UnitPrice,
			Subtotal:       item.Subtotal,
		}
	}

	return ctx.JSON(http.StatusOK, resp)
}
