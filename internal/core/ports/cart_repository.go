package ports

import (
	"context"

	"compras/internal/core/domain/model/cart"

	"github.com/shopspring/decimal"
)

// CartRepository is the persistence contract for cart aggregates.
type CartRepository interface {
	// Add persists a new cart, assigning its generated identifier.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists cart-level changes (status, timestamps).
	Update(ctx context.Context, aggregate *cart.Cart) error

	// GetOpenByUser retrieves the user's open cart with its items. Returns
	// errs.ObjectNotFoundError when the user has none.
	GetOpenByUser(ctx context.Context, userID int64) (*cart.Cart, error)

	// AddItem persists a new cart line, assigning its generated identifier.
	AddItem(ctx context.Context, item *cart.Item) error

	// GetItemByID retrieves a cart line by identifier.
	GetItemByID(ctx context.Context, itemID int64) (*cart.Item, error)

	// UpdateItem persists quantity and timestamp changes to a cart line.
	UpdateItem(ctx context.Context, item *cart.Item) error

	// RemoveItem deletes a cart line.
	RemoveItem(ctx context.Context, itemID int64) error
}

// ProductCatalog resolves current unit prices for active products. The
// catalog itself is maintained elsewhere; carts only read from it.
type ProductCatalog interface {
	// GetActivePrice returns the unit price of an active product. Returns
	// errs.ObjectNotFoundError when the product is missing or inactive.
	GetActivePrice(ctx context.Context, productID int64) (decimal.Decimal, error)
}
