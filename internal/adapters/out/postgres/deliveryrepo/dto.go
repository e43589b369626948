// Package deliveryrepo persists the courier sub-workflow: one entregas row
// per order plus its breadcrumb trail.
package deliveryrepo

import (
	"time"

	"compras/internal/core/domain/model/delivery"

	"github.com/shopspring/decimal"
)

// DeliveryDTO maps a delivery to the entregas table.
type DeliveryDTO struct {
	ID                  int64 `gorm:"primaryKey;autoIncrement"`
	OrdenID             int64 `gorm:"uniqueIndex"`
	Estado              string
	RepartidorUsuarioID *int64
	CobradoEfectivoEn   *time.Time
	EntregadoEn         *time.Time
}

func (DeliveryDTO) TableName() string {
	return "entregas"
}

// EventDTO maps a delivery breadcrumb to the entrega_eventos table.
type EventDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	EntregaID int64 `gorm:"index"`
	EstadoID  int64
	Lat       *decimal.Decimal `gorm:"type:numeric(9,6)"`
	Lng       *decimal.Decimal `gorm:"type:numeric(9,6)"`
	CreadoEn  time.Time
}

func (EventDTO) TableName() string {
	return "entrega_eventos"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:                  d.ID(),
		OrdenID:             d.OrderID(),
		Estado:              d.Status().String(),
		RepartidorUsuarioID: d.CourierID(),
		CobradoEfectivoEn:   d.CashCollectedAt(),
		EntregadoEn:         d.DeliveredAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	return delivery.RestoreDelivery(dto.ID, dto.OrdenID, delivery.Status(dto.Estado),
		dto.RepartidorUsuarioID, dto.CobradoEfectivoEn, dto.EntregadoEn)
}

func eventFromDomain(e *delivery.Event) EventDTO {
	return EventDTO{
		ID:        e.ID(),
		EntregaID: e.DeliveryID(),
		EstadoID:  e.StateID(),
		Lat:       e.Lat(),
		Lng:       e.Lng(),
		CreadoEn:  e.CreatedAt(),
	}
}
