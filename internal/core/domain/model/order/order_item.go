package order

import (
	"errors"
	"fmt"

	"compras/internal/core/domain/model/personalization"
	"compras/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem or RestoreOrderItem")

// OrderItem is one product line of an order, created exactly once at checkout
// from the corresponding cart line. Each side of the product may point at a
// personalization copied from the cart.
type OrderItem struct {
	id             int64
	ordenID        int64
	productoID     int64
	cantidad       int
	precioUnitario decimal.Decimal
	ladoAID        *int64
	ladoBID        *int64

	isConstructed bool
}

// NewOrderItem creates the order line for a cart line's product, quantity and
// captured unit price.
func NewOrderItem(ordenID, productoID int64, cantidad int, precioUnitario decimal.Decimal) (*OrderItem, error) {
	if ordenID <= 0 {
		return nil, errs.NewValueIsInvalidError("order item orden id")
	}
	if productoID <= 0 {
		return nil, errs.NewValueIsInvalidError("order item producto id")
	}
	if cantidad <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("cantidad",
			fmt.Errorf("%d is not greater than 0", cantidad))
	}
	if precioUnitario.IsNegative() {
		return nil, errs.NewValueIsInvalidError("precio unitario")
	}

	return &OrderItem{
		ordenID:        ordenID,
		productoID:     productoID,
		cantidad:       cantidad,
		precioUnitario: precioUnitario,
		isConstructed:  true,
	}, nil
}

// RestoreOrderItem rebuilds an order line from its persisted representation.
func RestoreOrderItem(id, ordenID, productoID int64, cantidad int, precioUnitario decimal.Decimal,
	ladoAID, ladoBID *int64) (*OrderItem, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("order item id")
	}

	return &OrderItem{
		id:             id,
		ordenID:        ordenID,
		productoID:     productoID,
		cantidad:       cantidad,
		precioUnitario: precioUnitario,
		ladoAID:        ladoAID,
		ladoBID:        ladoBID,
		isConstructed:  true,
	}, nil
}

// Validate ensures the OrderItem came from one of its constructors.
func (i *OrderItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrOrderItemIsNotConstructed
	}
	return nil
}

// ID returns the line's database identifier, zero until persisted.
func (i *OrderItem) ID() int64 {
	return i.id
}

// AssignID records the identifier generated on insert.
func (i *OrderItem) AssignID(id int64) error {
	if i.id != 0 {
		return errs.NewValueIsInvalidError("order item id already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("order item id")
	}
	i.id = id
	return nil
}

// OrderID returns the owning order's identifier.
func (i *OrderItem) OrderID() int64 {
	return i.ordenID
}

// ProductID returns the product of this line.
func (i *OrderItem) ProductID() int64 {
	return i.productoID
}

// Quantity returns the ordered quantity.
func (i *OrderItem) Quantity() int {
	return i.cantidad
}

// UnitPrice returns the unit price captured at checkout.
func (i *OrderItem) UnitPrice() decimal.Decimal {
	return i.precioUnitario
}

// Subtotal returns quantity times unit price.
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.precioUnitario.Mul(decimal.NewFromInt(int64(i.cantidad)))
}

// PersonalizationID returns the personalization copied onto the given side,
// nil when the side carries none.
func (i *OrderItem) PersonalizationID(side personalization.Side) *int64 {
	if side == personalization.SideB {
		return i.ladoBID
	}
	return i.ladoAID
}

// SetPersonalization points a side at the personalization the copier produced
// for it.
func (i *OrderItem) SetPersonalization(side personalization.Side, personalizationID int64) error {
	if personalizationID <= 0 {
		return errs.NewValueIsInvalidError("personalizacion id")
	}
	if err := side.Validate(); err != nil {
		return err
	}

	if side == personalization.SideB {
		i.ladoBID = &personalizationID
	} else {
		i.ladoAID = &personalizationID
	}
	return nil
}
