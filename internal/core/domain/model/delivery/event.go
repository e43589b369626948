package delivery

import (
	"time"

	"github.com/shopspring/decimal"

	"compras/internal/pkg/errs"
)

// Event is one append-only breadcrumb in a delivery's trail. It references
// the order's workflow state at the moment it was recorded. Events are never
// updated or deleted; the tracking view reads the most recent ones.
type Event struct {
	id        int64
	entregaID int64
	estadoID  int64
	lat       *decimal.Decimal
	lng       *decimal.Decimal
	creadoEn  time.Time
}

// NewEvent records a breadcrumb for the given delivery, referencing the
// order's workflow state. Coordinates are optional; couriers without GPS
// consent post events without them.
func NewEvent(entregaID, estadoID int64, lat, lng *decimal.Decimal, now time.Time) (*Event, error) {
	if entregaID <= 0 {
		return nil, errs.NewValueIsInvalidError("entrega id")
	}
	if estadoID <= 0 {
		return nil, errs.NewValueIsInvalidError("entrega evento estado id")
	}

	return &Event{
		entregaID: entregaID,
		estadoID:  estadoID,
		lat:       lat,
		lng:       lng,
		creadoEn:  now,
	}, nil
}

// RestoreEvent rebuilds an event from its persisted representation.
func RestoreEvent(id, entregaID, estadoID int64, lat, lng *decimal.Decimal, creadoEn time.Time) (*Event, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("entrega evento id")
	}

	return &Event{
		id:        id,
		entregaID: entregaID,
		estadoID:  estadoID,
		lat:       lat,
		lng:       lng,
		creadoEn:  creadoEn,
	}, nil
}

func (e *Event) ID() int64 {
	return e.id
}

// AssignID records the identifier generated on insert.
func (e *Event) AssignID(id int64) error {
	if e.id != 0 {
		return errs.NewValueIsInvalidError("entrega evento id already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("entrega evento id")
	}
	e.id = id
	return nil
}

func (e *Event) DeliveryID() int64 {
	return e.entregaID
}

// StateID returns the workflow state the event references.
func (e *Event) StateID() int64 {
	return e.estadoID
}

func (e *Event) Lat() *decimal.Decimal {
	return e.lat
}

func (e *Event) Lng() *decimal.Decimal {
	return e.lng
}

func (e *Event) CreatedAt() time.Time {
	return e.creadoEn
}
