package queries

import (
	"errors"

	"compras/internal/pkg/errs"
	"compras/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCartPreviewQueryIsNotConstructed = errors.New(
	"GetCartPreviewQuery must be created via NewGetCartPreviewQuery constructor",
)

// GetCartPreviewQuery shows a user what checkout would produce: the open
// cart's lines with product names and the running total.
type GetCartPreviewQuery struct {
	userID int64

	guard guard.ConstructorGuard
}

// NewGetCartPreviewQuery creates a preview query for the given user.
func NewGetCartPreviewQuery(userID int64) (GetCartPreviewQuery, error) {
	if userID <= 0 {
		return GetCartPreviewQuery{}, errs.NewValueIsRequiredError("usuarioId")
	}
	return GetCartPreviewQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartPreviewQuery) Validate() error {
	return q.guard.Validate(ErrGetCartPreviewQueryIsNotConstructed)
}

// UserID returns whose cart is previewed.
func (q GetCartPreviewQuery) UserID() int64 {
	return q.userID
}

// CartPreviewItem is one cart line in the preview.
type CartPreviewItem struct {
	ID          int64
	CartID      int64
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// GetCartPreviewQueryResponse is the preview. A user without an open cart
// gets an empty item list and a zero total, not an error.
type GetCartPreviewQueryResponse struct {
	Items []CartPreviewItem
	Total decimal.Decimal
}
