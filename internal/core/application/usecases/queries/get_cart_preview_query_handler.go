package queries

import (
	"context"
	"database/sql"
	"errors"

	"compras/internal/core/domain/model/cart"

	"gorm.io/gorm"
)

// GetCartPreviewQueryHandler reads the open cart's lines with product names
// and sums the total the way checkout will.
type GetCartPreviewQueryHandler struct {
	db *gorm.DB
}

// NewGetCartPreviewQueryHandler creates a handler for cart previews.
func NewGetCartPreviewQueryHandler(db *gorm.DB) GetCartPreviewQueryHandler {
	return GetCartPreviewQueryHandler{db: db}
}

// Handle builds the preview.
func (h GetCartPreviewQueryHandler) Handle(ctx context.Context, query GetCartPreviewQuery) (*GetCartPreviewQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	resp := &GetCartPreviewQueryResponse{Items: make([]CartPreviewItem, 0)}

	var cartID int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM carritos
		WHERE usuario_id = ? AND estado = ?
		ORDER BY id DESC
		LIMIT 1
	`, query.UserID(), cart.StatusOpen).Row().Scan(&cartID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return resp, nil
		}
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ci.id, ci.carrito_id, ci.producto_id, p.nombre, ci.cantidad, ci.precio_unitario,
		       (ci.cantidad * ci.precio_unitario) AS subtotal
		FROM carrito_items ci
		JOIN productos p ON p.id = ci.producto_id
		WHERE ci.carrito_id = ?
		ORDER BY ci.id ASC
	`, cartID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item CartPreviewItem
		if err = rows.Scan(&item.ID, &item.CartID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return nil, err
		}
		resp.Total = resp.Total.Add(item.Subtotal)
		resp.Items = append(resp.Items, item)
	}
	return resp, rows.Err()
}
