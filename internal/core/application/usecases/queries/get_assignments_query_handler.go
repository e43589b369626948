package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAssignmentsQueryHandler resolves operator assignments for a set of
// orders in one round trip.
type GetAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignmentsQueryHandler creates a handler for assignment lookups.
func NewGetAssignmentsQueryHandler(db *gorm.DB) GetAssignmentsQueryHandler {
	return GetAssignmentsQueryHandler{db: db}
}

// Handle resolves the assignments. Orders without one simply have no row in
// the result; an empty id set never touches the database.
func (h GetAssignmentsQueryHandler) Handle(ctx context.Context, query GetAssignmentsQuery) ([]GetAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	assignments := make([]GetAssignmentsQueryResponse, 0, len(query.OrderIDs()))
	if len(query.OrderIDs()) == 0 {
		return assignments, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT orden_id, operador_usuario_id
		FROM orden_operadores
		WHERE orden_id IN ?
	`, query.OrderIDs()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var a GetAssignmentsQueryResponse
		if err = rows.Scan(&a.OrderID, &a.OperatorID); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}
