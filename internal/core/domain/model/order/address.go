package order

import (
	"compras/internal/pkg/errs"
)

// Address is a delivery address captured at checkout. It is written once and
// only ever read afterwards, so it carries no update behavior.
type Address struct {
	id             int64
	usuarioID      int64
	areaID         *int64
	puntoEntregaID *int64
	descripcion    *string
	contactoNombre *string
	telefono       *string
}

// NewAddress captures a delivery address for a user.
func NewAddress(usuarioID int64, areaID, puntoEntregaID *int64, descripcion, contactoNombre, telefono *string) (*Address, error) {
	if usuarioID <= 0 {
		return nil, errs.NewValueIsInvalidError("direccion usuario id")
	}

	return &Address{
		usuarioID:      usuarioID,
		areaID:         areaID,
		puntoEntregaID: puntoEntregaID,
		descripcion:    descripcion,
		contactoNombre: contactoNombre,
		telefono:       telefono,
	}, nil
}

// RestoreAddress rebuilds an address from its persisted row.
func RestoreAddress(id, usuarioID int64, areaID, puntoEntregaID *int64, descripcion, contactoNombre, telefono *string) (*Address, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("direccion id")
	}

	return &Address{
		id:             id,
		usuarioID:      usuarioID,
		areaID:         areaID,
		puntoEntregaID: puntoEntregaID,
		descripcion:    descripcion,
		contactoNombre: contactoNombre,
		telefono:       telefono,
	}, nil
}

func (a *Address) ID() int64 {
	return a.id
}

// AssignID records the identifier generated on insert.
func (a *Address) AssignID(id int64) error {
	if a.id != 0 {
		return errs.NewValueIsInvalidError("direccion id already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("direccion id")
	}
	a.id = id
	return nil
}

func (a *Address) UserID() int64 {
	return a.usuarioID
}

func (a *Address) AreaID() *int64 {
	return a.areaID
}

func (a *Address) DeliveryPointID() *int64 {
	return a.puntoEntregaID
}

func (a *Address) Description() *string {
	return a.descripcion
}

func (a *Address) ContactName() *string {
	return a.contactoNombre
}

func (a *Address) Phone() *string {
	return a.telefono
}
