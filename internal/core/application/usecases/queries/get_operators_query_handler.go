package queries

import (
	"context"
	"fmt"

	"compras/internal/pkg/cache"

	"gorm.io/gorm"
)

// OperatorsCache is the TTL cache the operators listing reads through. The
// TTL is fixed at construction, so the caller decides the staleness budget.
type OperatorsCache = cache.Cache[string, []GetOperatorsQueryResponse]

// GetOperatorsQueryHandler lists operator users, serving repeat requests from
// the injected cache.
type GetOperatorsQueryHandler struct {
	db    *gorm.DB
	cache *OperatorsCache
}

// NewGetOperatorsQueryHandler creates a handler for operator listings.
func NewGetOperatorsQueryHandler(db *gorm.DB, c *OperatorsCache) GetOperatorsQueryHandler {
	return GetOperatorsQueryHandler{db: db, cache: c}
}

// Handle lists the operators, hitting the database only when the cache has
// no fresh entry for this parameter combination.
func (h GetOperatorsQueryHandler) Handle(ctx context.Context, query GetOperatorsQuery) ([]GetOperatorsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	active := 0
	if query.ActiveOnly() {
		active = 1
	}
	key := fmt.Sprintf("operators:rol=%d:act=%d:lim=%d", query.RoleID(), active, query.Limit())

	if cached, ok := h.cache.Get(key); ok {
		return cached, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT u.id, COALESCE(u.nombre, ''), COALESCE(u.correo, '')
		FROM usuarios u
		WHERE u.rol_id = ?
		  AND (? = 0 OR u.esta_activo)
		ORDER BY u.id DESC
		LIMIT ?
	`, query.RoleID(), active, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	operators := make([]GetOperatorsQueryResponse, 0, query.Limit())
	for rows.Next() {
		var op GetOperatorsQueryResponse
		if err = rows.Scan(&op.UserID, &op.Name, &op.Email); err != nil {
			return nil, err
		}
		operators = append(operators, op)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	h.cache.Set(key, operators)
	return operators, nil
}
