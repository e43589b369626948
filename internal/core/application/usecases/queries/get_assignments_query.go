package queries

import (
	"errors"

	"compras/internal/pkg/guard"
)

var ErrGetAssignmentsQueryIsNotConstructed = errors.New(
	"GetAssignmentsQuery must be created via NewGetAssignmentsQuery constructor",
)

// GetAssignmentsQuery resolves the current operator assignment for a set of
// orders. Non-positive ids are dropped; an empty set is legal and yields an
// empty result.
type GetAssignmentsQuery struct {
	orderIDs []int64

	guard guard.ConstructorGuard
}

// NewGetAssignmentsQuery creates the query, keeping only positive order ids.
func NewGetAssignmentsQuery(orderIDs []int64) GetAssignmentsQuery {
	ids := make([]int64, 0, len(orderIDs))
	for _, id := range orderIDs {
		if id > 0 {
			ids = append(ids, id)
		}
	}

	return GetAssignmentsQuery{orderIDs: ids, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentsQueryIsNotConstructed)
}

// OrderIDs returns the filtered order ids.
func (q GetAssignmentsQuery) OrderIDs() []int64 {
	return q.orderIDs
}

// GetAssignmentsQueryResponse is one order-to-operator assignment.
type GetAssignmentsQueryResponse struct {
	OrderID    int64
	OperatorID int64
}
