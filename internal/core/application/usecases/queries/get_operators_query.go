package queries

import (
	"errors"

	"compras/internal/pkg/guard"
)

var ErrGetOperatorsQueryIsNotConstructed = errors.New(
	"GetOperatorsQuery must be created via NewGetOperatorsQuery constructor",
)

const (
	operatorsDefaultRole  = 5
	operatorsDefaultLimit = 500
	operatorsMaxLimit     = 5000
)

// GetOperatorsQuery lists users holding the operator role for the supervisor
// board. The listing changes rarely, so results go through a TTL cache.
type GetOperatorsQuery struct {
	roleID     int
	activeOnly bool
	limit      int

	guard guard.ConstructorGuard
}

// NewGetOperatorsQuery creates the query. Non-positive role and limit fall
// back to defaults.
func NewGetOperatorsQuery(roleID int, activeOnly bool, limit int) GetOperatorsQuery {
	if roleID <= 0 {
		roleID = operatorsDefaultRole
	}
	if limit <= 0 || limit > operatorsMaxLimit {
		limit = operatorsDefaultLimit
	}

	return GetOperatorsQuery{
		roleID:     roleID,
		activeOnly: activeOnly,
		limit:      limit,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetOperatorsQuery) Validate() error {
	return q.guard.Validate(ErrGetOperatorsQueryIsNotConstructed)
}

// RoleID returns the role filter.
func (q GetOperatorsQuery) RoleID() int {
	return q.roleID
}

// ActiveOnly reports whether inactive users are excluded.
func (q GetOperatorsQuery) ActiveOnly() bool {
	return q.activeOnly
}

// Limit returns the clamped row cap.
func (q GetOperatorsQuery) Limit() int {
	return q.limit
}

// GetOperatorsQueryResponse is one operator.
type GetOperatorsQueryResponse struct {
	UserID int64
	Name   string
	Email  string
}
