package ports

import (
	"context"

	"compras/internal/core/domain/model/personalization"
)

// PersonalizationRepository is the persistence contract for personalizations
// and their layer stacks.
type PersonalizationRepository interface {
	// GetByOwner retrieves all personalizations of one owner, layers
	// included, ordered by side.
	GetByOwner(ctx context.Context, owner personalization.Owner) ([]*personalization.Personalization, error)

	// Add persists a personalization and its layers, assigning generated
	// identifiers to the header and every layer.
	Add(ctx context.Context, p *personalization.Personalization) error
}
