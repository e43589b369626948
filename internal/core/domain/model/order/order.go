package order

import (
	"errors"
	"fmt"
	"time"

	"compras/internal/core/domain/model/workflow"
	"compras/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the workflow subject. It is born in its process's initial state at
// checkout and afterwards mutates only through the transition executor, which
// moves the current-state pointer and appends the audit trail.
//
// Invariants maintained here:
//   - The current state always belongs to the order's process
//   - The total is never negative
//   - The folio, once set, never changes
//
// The executor owns everything else (edge existence, history, delivery
// events); MoveTo deliberately performs no edge validation because the
// workflow graph is open (missing edges are synthesized, not rejected).
type Order struct {
	id             int64
	usuarioID      int64
	folio          Folio
	total          decimal.Decimal
	procesoID      int64
	estadoActualID int64
	estadoCodigo   string
	metodoPago     PaymentMethod
	estadoPago     PaymentStatus
	direccionID    *int64
	areaID         *int64
	qrTexto        string
	qrToken        string
	creadoEn       time.Time
	actualizadoEn  time.Time

	isConstructed bool
}

// NewOrder creates an order in the given initial state. Checkout is the only
// caller; qrToken is the opaque tracking token minted per order.
func NewOrder(usuarioID int64, folio Folio, total decimal.Decimal, process *workflow.Process,
	initial *workflow.State, metodo PaymentMethod, direccionID, areaID *int64, qrToken string,
	now time.Time) (*Order, error) {
	if err := errors.Join(process.Validate(), initial.Validate(), folio.Validate()); err != nil {
		return nil, err
	}
	if usuarioID <= 0 {
		return nil, errs.NewValueIsInvalidError("usuarioId")
	}
	if total.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf("%s is negative", total))
	}
	if err := metodo.ValidateForCheckout(); err != nil {
		return nil, err
	}
	if initial.ProcessID() != process.ID() {
		return nil, errs.NewValueIsInvalidErrorWithCause("estado inicial",
			fmt.Errorf("state %s does not belong to process %s", initial.Code(), process.Code()))
	}
	if !initial.IsInitial() {
		return nil, errs.NewConfigurationErrorWithCause("estado inicial",
			fmt.Errorf("state %s is not flagged initial", initial.Code()))
	}

	return &Order{
		usuarioID:      usuarioID,
		folio:          folio,
		total:          total,
		procesoID:      process.ID(),
		estadoActualID: initial.ID(),
		estadoCodigo:   initial.Code(),
		metodoPago:     metodo,
		estadoPago:     PaymentStatusPending,
		direccionID:    direccionID,
		areaID:         areaID,
		qrTexto:        folio.QRText(),
		qrToken:        qrToken,
		creadoEn:       now,
		actualizadoEn:  now,
		isConstructed:  true,
	}, nil
}

// RestoreOrder rebuilds an order from its persisted representation.
// estadoCodigo may be empty when the row was loaded without joining estados.
func RestoreOrder(id, usuarioID int64, folio Folio, total decimal.Decimal, procesoID, estadoActualID int64,
	estadoCodigo string, metodo PaymentMethod, estadoPago PaymentStatus, direccionID, areaID *int64,
	qrTexto, qrToken string, creadoEn, actualizadoEn time.Time) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("order id")
	}
	if err := folio.Validate(); err != nil {
		return nil, err
	}
	if err := estadoPago.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:             id,
		usuarioID:      usuarioID,
		folio:          folio,
		total:          total,
		procesoID:      procesoID,
		estadoActualID: estadoActualID,
		estadoCodigo:   workflow.NormalizeStateCode(estadoCodigo),
		metodoPago:     metodo,
		estadoPago:     estadoPago,
		direccionID:    direccionID,
		areaID:         areaID,
		qrTexto:        qrTexto,
		qrToken:        qrToken,
		creadoEn:       creadoEn,
		actualizadoEn:  actualizadoEn,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Order came from one of its constructors.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's database identifier, zero until persisted.
func (o *Order) ID() int64 {
	return o.id
}

// AssignID records the identifier generated on insert.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return errs.NewValueIsInvalidError("order id already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}
	o.id = id
	return nil
}

// UserID returns the owning user's identifier.
func (o *Order) UserID() int64 {
	return o.usuarioID
}

// Folio returns the human-readable order identifier.
func (o *Order) Folio() Folio {
	return o.folio
}

// Total returns the monetary total of the order.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// ProcessID returns the workflow process this order runs under.
func (o *Order) ProcessID() int64 {
	return o.procesoID
}

// CurrentStateID returns the current state's identifier.
func (o *Order) CurrentStateID() int64 {
	return o.estadoActualID
}

// CurrentStateCode returns the current state's code when it was loaded with
// the order, empty otherwise.
func (o *Order) CurrentStateCode() string {
	return o.estadoCodigo
}

// PaymentMethod returns how the order is to be paid.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.metodoPago
}

// PaymentStatus returns the order-level payment state.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.estadoPago
}

// AddressID returns the delivery address reference, nil when none was given.
func (o *Order) AddressID() *int64 {
	return o.direccionID
}

// AreaID returns the delivery area reference, nil when none was given.
func (o *Order) AreaID() *int64 {
	return o.areaID
}

// QRText returns the text encoded in the order's QR code.
func (o *Order) QRText() string {
	return o.qrTexto
}

// QRToken returns the opaque tracking token.
func (o *Order) QRToken() string {
	return o.qrToken
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.creadoEn
}

// UpdatedAt returns when the order was last touched.
func (o *Order) UpdatedAt() time.Time {
	return o.actualizadoEn
}

// IsInState reports whether the order currently sits in the state with the
// given code. It requires the state code to have been loaded with the order.
func (o *Order) IsInState(code string) bool {
	return o.estadoCodigo != "" && o.estadoCodigo == workflow.NormalizeStateCode(code)
}

// MoveTo points the order at a new current state and bumps the modified
// timestamp. The state must belong to the order's process. Re-applying the
// current state is allowed; the caller records another audit entry for it.
func (o *Order) MoveTo(to *workflow.State, now time.Time) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if to.ProcessID() != o.procesoID {
		return errs.NewValueIsInvalidErrorWithCause("estado destino",
			fmt.Errorf("state %s does not belong to process %d", to.Code(), o.procesoID))
	}

	o.estadoActualID = to.ID()
	o.estadoCodigo = to.Code()
	o.actualizadoEn = now
	return nil
}

// SetPaymentStatus updates the order-level payment state.
func (o *Order) SetPaymentStatus(status PaymentStatus, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.estadoPago = status
	o.actualizadoEn = now
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}
