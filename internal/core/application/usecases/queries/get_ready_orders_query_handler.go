package queries

import (
	"context"

	"compras/internal/core/domain/model/workflow"

	"gorm.io/gorm"
)

// GetReadyOrdersQueryHandler lists READY orders for the courier board. The
// state is matched by code, never by id.
type GetReadyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetReadyOrdersQueryHandler creates a handler for ready-order queries.
func NewGetReadyOrdersQueryHandler(db *gorm.DB) GetReadyOrdersQueryHandler {
	return GetReadyOrdersQueryHandler{db: db}
}

// Handle lists the orders, newest first.
func (h GetReadyOrdersQueryHandler) Handle(ctx context.Context, query GetReadyOrdersQuery) ([]GetReadyOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseSelect = `
		SELECT o.id, o.folio, o.usuario_id, o.total, o.metodo_pago, o.estado_pago,
		       o.creado_en, d.descripcion, d.telefono
		FROM ordenes o
		JOIN estados es ON es.id = o.estado_actual_id
		LEFT JOIN direcciones d ON d.id = o.direccion_id`

	var rowsQuery *gorm.DB
	if courierID := query.CourierID(); courierID != nil {
		rowsQuery = h.db.WithContext(ctx).Raw(baseSelect+`
		JOIN entregas en ON en.orden_id = o.id
		WHERE es.codigo = ? AND en.repartidor_usuario_id = ?
		ORDER BY o.creado_en DESC
		LIMIT ?`, workflow.StateCodeReady, *courierID, query.Limit())
	} else {
		rowsQuery = h.db.WithContext(ctx).Raw(baseSelect+`
		WHERE es.codigo = ?
		ORDER BY o.creado_en DESC
		LIMIT ?`, workflow.StateCodeReady, query.Limit())
	}

	rows, err := rowsQuery.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetReadyOrdersQueryResponse, 0, query.Limit())
	for rows.Next() {
		var o GetReadyOrdersQueryResponse
		if err = rows.Scan(&o.ID, &o.Folio, &o.UserID, &o.Price, &o.PaymentMethod,
			&o.PaymentStatus, &o.CreatedAt, &o.Address, &o.Phone); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
