// Package personalization models the visual customization attached to one
// side of a product line: an ordered stack of photo/text/sticker/filter
// layers, owned by either a cart item or an order item.
//
// Ownership is a closed sum type rather than a free-form discriminator
// string; the persistence layer maps it to the propietario_tipo column.
package personalization

import (
	"fmt"

	"compras/internal/pkg/errs"
)

type ownerKind int

const (
	ownerKindUnknown ownerKind = iota
	ownerKindCartItem
	ownerKindOrderItem
)

// Discriminator values as persisted in propietario_tipo.
const (
	discriminatorCartItem  = "carrito_item"
	discriminatorOrderItem = "orden_item"
)

// Owner identifies which entity a personalization belongs to: a cart item
// before checkout, an order item after the copier has run. The zero value is
// invalid.
type Owner struct {
	kind ownerKind
	id   int64
}

// OwnerCartItem makes an owner pointing at a cart line.
func OwnerCartItem(id int64) Owner {
	return Owner{kind: ownerKindCartItem, id: id}
}

// OwnerOrderItem makes an owner pointing at an order line.
func OwnerOrderItem(id int64) Owner {
	return Owner{kind: ownerKindOrderItem, id: id}
}

// RestoreOwner rebuilds an owner from its persisted discriminator and id.
func RestoreOwner(discriminator string, id int64) (Owner, error) {
	if id <= 0 {
		return Owner{}, errs.NewValueIsInvalidError("propietario id")
	}
	switch discriminator {
	case discriminatorCartItem:
		return OwnerCartItem(id), nil
	case discriminatorOrderItem:
		return OwnerOrderItem(id), nil
	default:
		return Owner{}, errs.NewValueIsInvalidErrorWithCause("propietario tipo",
			fmt.Errorf("%q is not an owner discriminator", discriminator))
	}
}

// Validate reports whether the owner identifies an entity.
func (o Owner) Validate() error {
	if o.kind == ownerKindUnknown || o.id <= 0 {
		return errs.NewValueIsInvalidError("propietario")
	}
	return nil
}

// CartItemID returns the cart-line id and true when the owner is a cart item.
func (o Owner) CartItemID() (int64, bool) {
	if o.kind == ownerKindCartItem {
		return o.id, true
	}
	return 0, false
}

// OrderItemID returns the order-line id and true when the owner is an order item.
func (o Owner) OrderItemID() (int64, bool) {
	if o.kind == ownerKindOrderItem {
		return o.id, true
	}
	return 0, false
}

// Discriminator returns the persisted propietario_tipo value.
func (o Owner) Discriminator() string {
	switch o.kind {
	case ownerKindCartItem:
		return discriminatorCartItem
	case ownerKindOrderItem:
		return discriminatorOrderItem
	default:
		return ""
	}
}

// OwnerID returns the owning entity's identifier.
func (o Owner) OwnerID() int64 {
	return o.id
}

// IsEqual compares owners structurally.
func (o Owner) IsEqual(other Owner) bool {
	return o.kind == other.kind && o.id == other.id
}
