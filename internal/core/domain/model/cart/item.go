package cart

import (
	"time"

	"github.com/shopspring/decimal"

	"compras/internal/pkg/errs"
)

// Item is one product line in a cart. The unit price is captured from the
// catalog at add time so later catalog edits do not reprice open carts.
type Item struct {
	id             int64
	carritoID      int64
	productoID     int64
	cantidad       int
	precioUnitario decimal.Decimal
	creadoEn       time.Time
	actualizadoEn  time.Time
}

// NewItem adds a product line with the price captured from the catalog.
func NewItem(carritoID, productoID int64, cantidad int, precioUnitario decimal.Decimal, now time.Time) (*Item, error) {
	if carritoID <= 0 {
		return nil, errs.NewValueIsInvalidError("carrito item carrito id")
	}
	if productoID <= 0 {
		return nil, errs.NewValueIsInvalidError("carrito item producto id")
	}
	if cantidad <= 0 {
		return nil, errs.NewValueIsInvalidError("carrito item cantidad")
	}
	if precioUnitario.IsNegative() {
		return nil, errs.NewValueIsInvalidError("carrito item precio unitario")
	}

	return &Item{
		carritoID:      carritoID,
		productoID:     productoID,
		cantidad:       cantidad,
		precioUnitario: precioUnitario,
		creadoEn:       now,
		actualizadoEn:  now,
	}, nil
}

// RestoreItem rebuilds an item from its persisted row.
func RestoreItem(id, carritoID, productoID int64, cantidad int, precioUnitario decimal.Decimal,
	creadoEn, actualizadoEn time.Time) (*Item, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("carrito item id")
	}

	return &Item{
		id:             id,
		carritoID:      carritoID,
		productoID:     productoID,
		cantidad:       cantidad,
		precioUnitario: precioUnitario,
		creadoEn:       creadoEn,
		actualizadoEn:  actualizadoEn,
	}, nil
}

func (i *Item) ID() int64 {
	return i.id
}

// AssignID records the identifier generated on insert.
func (i *Item) AssignID(id int64) error {
	if i.id != 0 {
		return errs.NewValueIsInvalidError("carrito item id already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("carrito item id")
	}
	i.id = id
	return nil
}

func (i *Item) CartID() int64 {
	return i.carritoID
}

func (i *Item) ProductID() int64 {
	return i.productoID
}

func (i *Item) Quantity() int {
	return i.cantidad
}

func (i *Item) UnitPrice() decimal.Decimal {
	return i.precioUnitario
}

func (i *Item) CreatedAt() time.Time {
	return i.creadoEn
}

func (i *Item) UpdatedAt() time.Time {
	return i.actualizadoEn
}

// Subtotal is unit price times quantity.
func (i *Item) Subtotal() decimal.Decimal {
	return i.precioUnitario.Mul(decimal.NewFromInt(int64(i.cantidad)))
}

// AddQuantity merges a repeat add of the same product into this line.
func (i *Item) AddQuantity(cantidad int, now time.Time) error {
	if cantidad <= 0 {
		return errs.NewValueIsInvalidError("carrito item cantidad")
	}
	i.cantidad += cantidad
	i.actualizadoEn = now
	return nil
}

// SetQuantity replaces the quantity. Zero means the caller should remove the
// line instead.
func (i *Item) SetQuantity(cantidad int, now time.Time) error {
	if cantidad <= 0 {
		return errs.NewValueIsInvalidError("carrito item cantidad")
	}
	i.cantidad = cantidad
	i.actualizadoEn = now
	return nil
}
