package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAssignedOrdersQueryHandler lists orders joined to their operator
// assignments for the operator's work queue.
type GetAssignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignedOrdersQueryHandler creates a handler for assigned-order
// queries.
func NewGetAssignedOrdersQueryHandler(db *gorm.DB) GetAssignedOrdersQueryHandler {
	return GetAssignedOrdersQueryHandler{db: db}
}

// Handle lists the assigned orders, newest first.
func (h GetAssignedOrdersQueryHandler) Handle(ctx context.Context, query GetAssignedOrdersQuery) ([]GetAssignedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT o.id, o.folio, o.usuario_id, o.creado_en
		FROM ordenes o
		JOIN estados e ON e.id = o.estado_actual_id
		JOIN orden_operadores oo ON oo.orden_id = o.id
		WHERE (?::text IS NULL OR e.codigo = ?)
		  AND (?::bigint IS NULL OR oo.operador_usuario_id = ?)
		ORDER BY o.creado_en DESC
		LIMIT ?
	`, query.StateCode(), query.StateCode(), query.OperatorID(), query.OperatorID(),
		query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetAssignedOrdersQueryResponse, 0, query.Limit())
	for rows.Next() {
		var o GetAssignedOrdersQueryResponse
		if err = rows.Scan(&o.ID, &o.Folio, &o.UserID, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
