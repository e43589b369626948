package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"compras/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how an order is (going to be) paid.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "efectivo"
	PaymentMethodCard     PaymentMethod = "tarjeta"
	PaymentMethodTransfer PaymentMethod = "transferencia"
)

// ParsePaymentMethod normalizes and validates a caller-supplied method.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(raw)))
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer:
		return m, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("metodoPago",
			fmt.Errorf("%q is not a payment method", raw))
	}
}

// ValidateForCheckout restricts the method to the two the storefront accepts
// at checkout time. Transfers only appear later, on courier collection.
func (m PaymentMethod) ValidateForCheckout() error {
	if m != PaymentMethodCash && m != PaymentMethodCard {
		return errs.NewValueIsInvalidErrorWithCause("metodoPago",
			fmt.Errorf("metodoPago debe ser 'efectivo' o 'tarjeta', got %q", string(m)))
	}
	return nil
}

func (m PaymentMethod) String() string {
	return string(m)
}

// PaymentStatus is the order-level payment state.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pendiente"
	PaymentStatusPaid       PaymentStatus = "pagado"
	PaymentStatusAuthorized PaymentStatus = "autorizado"
)

// Validate checks the status is one of the known values.
func (s PaymentStatus) Validate() error {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusAuthorized:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("estado pago",
			fmt.Errorf("%q is not a payment status", string(s)))
	}
}

func (s PaymentStatus) String() string {
	return string(s)
}

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

// Payment is one payment attempt recorded against an order. Cash settles
// immediately ("pagado" with a paid timestamp); card and transfer are recorded
// as authorized, their settlement happening outside this system.
type Payment struct {
	id         int64
	ordenID    int64
	metodo     PaymentMethod
	referencia *string
	estado     PaymentStatus
	monto      decimal.Decimal
	pagadoEn   *time.Time
	creadoEn   time.Time

	isConstructed bool
}

// NewPayment records a payment attempt of amount monto against an order. The
// resulting status and paid timestamp derive from the method: cash is paid on
// the spot, everything else is authorized pending settlement.
func NewPayment(ordenID int64, metodo PaymentMethod, referencia *string, monto decimal.Decimal, now time.Time) (*Payment, error) {
	if ordenID <= 0 {
		return nil, errs.NewValueIsInvalidError("payment orden id")
	}
	if _, err := ParsePaymentMethod(string(metodo)); err != nil {
		return nil, err
	}
	if monto.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("payment monto",
			fmt.Errorf("%s is negative", monto))
	}

	p := &Payment{
		ordenID:       ordenID,
		metodo:        metodo,
		referencia:    referencia,
		monto:         monto,
		creadoEn:      now,
		isConstructed: true,
	}
	if metodo == PaymentMethodCash {
		p.estado = PaymentStatusPaid
		paidAt := now
		p.pagadoEn = &paidAt
	} else {
		p.estado = PaymentStatusAuthorized
	}

	return p, nil
}

// RestorePayment rebuilds a Payment from its persisted representation.
func RestorePayment(id, ordenID int64, metodo PaymentMethod, referencia *string, estado PaymentStatus,
	monto decimal.Decimal, pagadoEn *time.Time, creadoEn time.Time) (*Payment, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("payment id")
	}
	if err := estado.Validate(); err != nil {
		return nil, err
	}

	return &Payment{
		id:            id,
		ordenID:       ordenID,
		metodo:        metodo,
		referencia:    referencia,
		estado:        estado,
		monto:         monto,
		pagadoEn:      pagadoEn,
		creadoEn:      creadoEn,
		isConstructed: true,
	}, nil
}

// Validate ensures the Payment came from one of its constructors.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's database identifier, zero until persisted.
func (p *Payment) ID() int64 {
	return p.id
}

// AssignID records the identifier generated on insert.
func (p *Payment) AssignID(id int64) error {
	if p.id != 0 {
		return errs.NewValueIsInvalidError("payment id already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("payment id")
	}
	p.id = id
	return nil
}

// OrderID returns the order this payment belongs to.
func (p *Payment) OrderID() int64 {
	return p.ordenID
}

// Method returns the payment method.
func (p *Payment) Method() PaymentMethod {
	return p.metodo
}

// Reference returns the provider reference, if any.
func (p *Payment) Reference() *string {
	return p.referencia
}

// Status returns the resulting status of the attempt.
func (p *Payment) Status() PaymentStatus {
	return p.estado
}

// Amount returns the amount of the attempt.
func (p *Payment) Amount() decimal.Decimal {
	return p.monto
}

// PaidAt returns when the payment settled, nil for authorized-only attempts.
func (p *Payment) PaidAt() *time.Time {
	return p.pagadoEn
}

// CreatedAt returns when the attempt was recorded.
func (p *Payment) CreatedAt() time.Time {
	return p.creadoEn
}
