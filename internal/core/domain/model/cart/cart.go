// Package cart holds the shopping cart aggregate. A user has at most one open
// cart at a time; checkout closes it and the next add-item opens a fresh one.
package cart

import (
	"errors"
	"time"

	"compras/internal/pkg/errs"
)

// Cart lifecycle states.
const (
	StatusOpen   = "abierto"
	StatusClosed = "cerrado"
)

var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart")

// Cart is the pre-checkout container of items for one user.
type Cart struct {
	id            int64
	usuarioID     int64
	estado        string
	creadoEn      time.Time
	actualizadoEn time.Time

	items []*Item

	isConstructed bool
}

// NewCart opens an empty cart for a user.
func NewCart(usuarioID int64, now time.Time) (*Cart, error) {
	if usuarioID <= 0 {
		return nil, errs.NewValueIsInvalidError("carrito usuario id")
	}

	return &Cart{
		usuarioID:     usuarioID,
		estado:        StatusOpen,
		creadoEn:      now,
		actualizadoEn: now,
		isConstructed: true,
	}, nil
}

// RestoreCart rebuilds a cart and its items from their persisted rows.
func RestoreCart(id, usuarioID int64, estado string, creadoEn, actualizadoEn time.Time, items []*Item) (*Cart, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("carrito id")
	}
	if estado != StatusOpen && estado != StatusClosed {
		return nil, errs.NewValueIsInvalidError("carrito estado")
	}

	return &Cart{
		id:            id,
		usuarioID:     usuarioID,
		estado:        estado,
		creadoEn:      creadoEn,
		actualizadoEn: actualizadoEn,
		items:         items,
		isConstructed: true,
	}, nil
}

// Validate ensures the Cart came from one of its constructors.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// ID returns the cart's database identifier, zero until persisted.
func (c *Cart) ID() int64 {
	return c.id
}

// AssignID records the identifier generated on insert.
func (c *Cart) AssignID(id int64) error {
	if c.id != 0 {
		return errs.NewValueIsInvalidError("carrito id already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("carrito id")
	}
	c.id = id
	return nil
}

// UserID returns the cart owner's user id.
func (c *Cart) UserID() int64 {
	return c.usuarioID
}

// Status returns abierto or cerrado.
func (c *Cart) Status() string {
	return c.estado
}

// IsOpen reports whether new items may still be added.
func (c *Cart) IsOpen() bool {
	return c.estado == StatusOpen
}

// CreatedAt returns when the cart was opened.
func (c *Cart) CreatedAt() time.Time {
	return c.creadoEn
}

// UpdatedAt returns the last modification time.
func (c *Cart) UpdatedAt() time.Time {
	return c.actualizadoEn
}

// Items returns the cart's items in load order.
func (c *Cart) Items() []*Item {
	return c.items
}

// ItemByProduct finds the item for a product, nil if absent. Carts hold at
// most one line per product; repeat adds merge quantities instead.
func (c *Cart) ItemByProduct(productoID int64) *Item {
	for _, it := range c.items {
		if it.ProductID() == productoID {
			return it
		}
	}
	return nil
}

// Touch refreshes the cart's update timestamp.
func (c *Cart) Touch(now time.Time) {
	c.actualizadoEn = now
}

// Close marks the cart consumed by checkout. Closing twice is a conflict so
// two concurrent checkouts of the same cart cannot both produce orders.
func (c *Cart) Close(now time.Time) error {
	if c.estado != StatusOpen {
		return errs.NewInvalidStateForActionError("checkout", c.estado)
	}
	c.estado = StatusClosed
	c.actualizadoEn = now
	return nil
}
