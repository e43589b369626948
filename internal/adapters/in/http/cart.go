package http

import (
	"net/http"
	"strconv"

	"compras/internal/core/application/usecases/commands"
	"compras/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type addCartItemRequest struct {
	UsuarioID  int64 `json:"usuarioId"`
	ProductoID int64 `json:"productoId"`
	Cantidad   int   `json:"cantidad"`
}

// AddCartItem handles POST /api/cart/items.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var req addCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "cuerpo inválido"})
	}

	cmd, err := commands.NewAddCartItemCommand(req.UsuarioID, req.ProductoID, req.Cantidad)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.addCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, okResponse{OK: true})
}

type updateCartItemRequest struct {
	Cantidad int `json:"cantidad"`
}

// UpdateCartItem handles PUT /api/cart/items/:itemId.
func (s *Server) UpdateCartItem(ctx echo.Context) error {
	itemID, err := strconv.ParseInt(ctx.Param("itemId"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "itemId inválido"})
	}

	var req updateCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "cuerpo inválido"})
	}

	cmd, err := commands.NewUpdateCartItemQuantityCommand(itemID, req.Cantidad)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateCartQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, okResponse{OK: true})
}

// RemoveCartItem handles DELETE /api/cart/items/:itemId.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	itemID, err := strconv.ParseInt(ctx.Param("itemId"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "itemId inválido"})
	}

	cmd, err := commands.NewRemoveCartItemCommand(itemID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, okResponse{OK: true})
}

type cartPreviewItemResponse struct {
	ID             int64           `json:"id"`
	CarritoID      int64           `json:"carritoId"`
	ProductoID     int64           `json:"productoId"`
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type cartPreviewResponse struct {
	Items []cartPreviewItemResponse `json:"items"`
	Total decimal.Decimal           `json:"total"`
}

// GetCartPreview handles GET /api/cart and GET /api/cart/preview.
func (s *Server) GetCartPreview(ctx echo.Context) error {
	userID, _ := strconv.ParseInt(ctx.QueryParam("usuarioId"), 10, 64)

	query, err := queries.NewGetCartPreviewQuery(userID)
	if err != nil {
		return writeError(ctx, err)
	}

	preview, err := s.cartPreviewHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := cartPreviewResponse{
		Items: make([]cartPreviewItemResponse, len(preview.Items)),
		Total: preview.Total,
	}
	for i, item := range preview.Items {
		resp.Items[i] = cartPreviewItemResponse{
			ID:             item.ID,
			CarritoID:      item.CartID,
			ProductoID:     item.ProductID,
			Producto:       item.ProductName,
			Cantidad:       item.Quantity,
			PrecioUnitario: item.UnitPrice,
			Subtotal:       item.Subtotal,
		}
	}

	return ctx.JSON(http.StatusOK, resp)
}
