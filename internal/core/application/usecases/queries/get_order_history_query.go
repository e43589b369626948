package queries

import (
	"errors"
	"time"

	"compras/internal/pkg/errs"
	"compras/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

const (
	orderHistoryDefaultPageSize = 20
	orderHistoryMaxPageSize     = 100
)

// GetOrderHistoryQuery pages through a user's orders, newest first, with
// their line items. Out-of-range paging values fall back to defaults instead
// of erroring.
type GetOrderHistoryQuery struct {
	userID   int64
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates the query, clamping the paging values.
func NewGetOrderHistoryQuery(userID int64, page, pageSize int) (GetOrderHistoryQuery, error) {
	if userID <= 0 {
		return GetOrderHistoryQuery{}, errs.NewValueIsRequiredError("usuarioId")
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > orderHistoryMaxPageSize {
		pageSize = orderHistoryDefaultPageSize
	}

	return GetOrderHistoryQuery{
		userID:   userID,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// UserID returns whose orders are listed.
func (q GetOrderHistoryQuery) UserID() int64 {
	return q.userID
}

// Page returns the 1-based page number.
func (q GetOrderHistoryQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q GetOrderHistoryQuery) PageSize() int {
	return q.pageSize
}

// HistoryOrder is one order row of the history listing.
type HistoryOrder struct {
	ID        int64
	Folio     string
	Total     decimal.Decimal
	CreatedAt time.Time
	StateCode string
	StateName string
}

// HistoryItem is one line of an order in the history listing.
type HistoryItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// GetOrderHistoryQueryResponse is one page of the user's orders.
type GetOrderHistoryQueryResponse struct {
	Total    int64
	Page     int
	PageSize int
	Orders   []HistoryOrder
	Items    []HistoryItem
}
