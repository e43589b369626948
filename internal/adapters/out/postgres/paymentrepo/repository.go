// Package paymentrepo persists payment attempts.
package paymentrepo

import (
	"context"
	"time"

	"compras/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentDTO maps a payment attempt to the pagos table.
type PaymentDTO struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	OrdenID    int64 `gorm:"index"`
	Metodo     string
	Referencia *string
	Estado     string
	Monto      decimal.Decimal `gorm:"type:numeric(12,2)"`
	PagadoEn   *time.Time
	CreadoEn   time.Time
}

func (PaymentDTO) TableName() string {
	return "pagos"
}

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Add persists a new payment attempt and assigns its generated identifier.
func (r *GormPaymentRepository) Add(ctx context.Context, payment *order.Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	dto := PaymentDTO{
		OrdenID:    payment.OrderID(),
		Metodo:     payment.Method().String(),
		Referencia: payment.Reference(),
		Estado:     payment.Status().String(),
		Monto:      payment.Amount(),
		PagadoEn:   payment.PaidAt(),
		CreadoEn:   payment.CreatedAt(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return payment.AssignID(dto.ID)
}
