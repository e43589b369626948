package queries

import (
	"errors"
	"time"

	"compras/internal/core/domain/model/workflow"
	"compras/internal/pkg/guard"
)

var ErrGetAssignedOrdersQueryIsNotConstructed = errors.New(
	"GetAssignedOrdersQuery must be created via NewGetAssignedOrdersQuery constructor",
)

const (
	assignedOrdersDefaultLimit = 100
	assignedOrdersMaxLimit     = 500
)

// GetAssignedOrdersQuery lists orders that have an operator assignment,
// optionally filtered by state code and by operator.
type GetAssignedOrdersQuery struct {
	stateCode  *string
	operatorID *int64
	limit      int

	guard guard.ConstructorGuard
}

// NewGetAssignedOrdersQuery creates the query. The state filter is
// normalized; an empty one means no filter.
func NewGetAssignedOrdersQuery(stateCode string, operatorID *int64, limit int) GetAssignedOrdersQuery {
	if limit <= 0 {
		limit = assignedOrdersDefaultLimit
	}
	if limit > assignedOrdersMaxLimit {
		limit = assignedOrdersMaxLimit
	}

	q := GetAssignedOrdersQuery{
		operatorID: operatorID,
		limit:      limit,
		guard:      guard.NewConstructorGuard(),
	}
	if code := workflow.NormalizeStateCode(stateCode); code != "" {
		q.stateCode = &code
	}
	return q
}

// Validate ensures the query was created through the constructor.
func (q GetAssignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedOrdersQueryIsNotConstructed)
}

// StateCode returns the optional state filter.
func (q GetAssignedOrdersQuery) StateCode() *string {
	return q.stateCode
}

// OperatorID returns the optional operator filter.
func (q GetAssignedOrdersQuery) OperatorID() *int64 {
	return q.operatorID
}

// Limit returns the clamped row cap.
func (q GetAssignedOrdersQuery) Limit() int {
	return q.limit
}

// GetAssignedOrdersQueryResponse is one assigned order.
type GetAssignedOrdersQueryResponse struct {
	ID        int64
	Folio     string
	UserID    int64
	CreatedAt time.Time
}
