package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler reads a page of a user's orders with their
// items. Items for all orders of the page are fetched in one query.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for order history queries.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the paged listing. An empty page still reports the total
// order count.
func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context, query GetOrderHistoryQuery) (*GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	resp := &GetOrderHistoryQueryResponse{
		Page:     query.Page(),
		PageSize: query.PageSize(),
		Orders:   make([]HistoryOrder, 0, query.PageSize()),
		Items:    make([]HistoryItem, 0),
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM ordenes WHERE usuario_id = ?
	`, query.UserID()).Row().Scan(&resp.Total)
	if err != nil {
		return nil, err
	}

	offset := (query.Page() - 1) * query.PageSize()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT o.id, o.folio, o.total, o.creado_en, es.codigo, es.nombre
		FROM ordenes o
		LEFT JOIN estados es ON es.id = o.estado_actual_id
		WHERE o.usuario_id = ?
		ORDER BY o.creado_en DESC, o.id DESC
		LIMIT ? OFFSET ?
	`, query.UserID(), query.PageSize(), offset).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orderIDs := make([]int64, 0, query.PageSize())
	for rows.Next() {
		var o HistoryOrder
		var stateCode, stateName sql.NullString
		if err = rows.Scan(&o.ID, &o.Folio, &o.Total, &o.CreatedAt, &stateCode, &stateName); err != nil {
			return nil, err
		}
		o.StateCode = stateCode.String
		o.StateName = stateName.String
		resp.Orders = append(resp.Orders, o)
		orderIDs = append(orderIDs, o.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orderIDs) == 0 {
		return resp, nil
	}

	itemRows, err := h.db.WithContext(ctx).Raw(`
		SELECT oi.id, oi.orden_id, oi.producto_id, p.nombre,
		       oi.cantidad, oi.precio_unitario,
		       (oi.cantidad * oi.precio_unitario) AS subtotal
		FROM orden_items oi
		JOIN productos p ON p.id = oi.producto_id
		WHERE oi.orden_id IN ?
		ORDER BY oi.orden_id DESC, oi.id ASC
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item HistoryItem
		if err = itemRows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return nil, err
		}
		resp.Items = append(resp.Items, item)
	}
	return resp, itemRows.Err()
}
