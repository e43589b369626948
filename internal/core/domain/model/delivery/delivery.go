package delivery

import (
	"errors"
	"time"

	"compras/internal/pkg/errs"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Delivery is the courier-side aggregate for one order. It is upserted lazily
// (the transition executor creates it in pendiente if missing) and advanced by
// the three courier actions: confirm receipt, confirm payment, finish.
type Delivery struct {
	id                  int64
	ordenID             int64
	estado              Status
	repartidorUsuarioID *int64
	cobradoEfectivoEn   *time.Time
	entregadoEn         *time.Time

	isConstructed bool
}

// NewDelivery creates the pending delivery row for an order.
func NewDelivery(ordenID int64) (*Delivery, error) {
	if ordenID <= 0 {
		return nil, errs.NewValueIsInvalidError("entrega orden id")
	}

	return &Delivery{
		ordenID:       ordenID,
		estado:        StatusPending,
		isConstructed: true,
	}, nil
}

// RestoreDelivery rebuilds a delivery from its persisted representation.
func RestoreDelivery(id, ordenID int64, estado Status, repartidorUsuarioID *int64,
	cobradoEfectivoEn, entregadoEn *time.Time) (*Delivery, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("entrega id")
	}
	if err := estado.Validate(); err != nil {
		return nil, err
	}

	return &Delivery{
		id:                  id,
		ordenID:             ordenID,
		estado:              estado,
		repartidorUsuarioID: repartidorUsuarioID,
		cobradoEfectivoEn:   cobradoEfectivoEn,
		entregadoEn:         entregadoEn,
		isConstructed:       true,
	}, nil
}

// Validate ensures the Delivery came from one of its constructors.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's database identifier, zero until persisted.
func (d *Delivery) ID() int64 {
	return d.id
}

// AssignID records the identifier generated on insert.
func (d *Delivery) AssignID(id int64) error {
	if d.id != 0 {
		return errs.NewValueIsInvalidError("entrega id already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("entrega id")
	}
	d.id = id
	return nil
}

// OrderID returns the order this delivery belongs to.
func (d *Delivery) OrderID() int64 {
	return d.ordenID
}

// Status returns the delivery sub-state.
func (d *Delivery) Status() Status {
	return d.estado
}

// CourierID returns the assigned courier's user id, nil if none recorded.
func (d *Delivery) CourierID() *int64 {
	return d.repartidorUsuarioID
}

// CashCollectedAt returns when cash was collected, nil until confirm-payment
// runs for an efectivo order.
func (d *Delivery) CashCollectedAt() *time.Time {
	return d.cobradoEfectivoEn
}

// DeliveredAt returns when the handoff completed, nil until finish-delivery.
func (d *Delivery) DeliveredAt() *time.Time {
	return d.entregadoEn
}

// MarkEnRoute records that the courier picked the order up, optionally
// remembering which courier. Re-confirming while already en route just
// refreshes the courier id.
func (d *Delivery) MarkEnRoute(repartidorUsuarioID *int64) error {
	if d.estado == StatusDelivered {
		return errs.NewInvalidStateForActionError("confirm-received", string(d.estado))
	}

	d.estado = StatusEnRoute
	if repartidorUsuarioID != nil {
		d.repartidorUsuarioID = repartidorUsuarioID
	}
	return nil
}

// MarkCashCollected stamps the cash-collection timestamp.
func (d *Delivery) MarkCashCollected(now time.Time) {
	at := now
	d.cobradoEfectivoEn = &at
}

// MarkDelivered finishes the sub-workflow, stamping the completion time.
func (d *Delivery) MarkDelivered(now time.Time) error {
	if d.estado == StatusDelivered {
		return errs.NewInvalidStateForActionError("finish-delivery", string(d.estado))
	}

	d.estado = StatusDelivered
	at := now
	d.entregadoEn = &at
	return nil
}
