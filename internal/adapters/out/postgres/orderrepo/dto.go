// Package orderrepo persists order aggregates, their lines and the resolved
// per-side order images.
package orderrepo

import (
	"time"

	"compras/internal/core/domain/model/order"
	"compras/internal/core/domain/model/personalization"

	"github.com/shopspring/decimal"
)

// OrderDTO maps an order aggregate to the ordenes table.
type OrderDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	UsuarioID      int64 `gorm:"index"`
	Folio          string `gorm:"uniqueIndex"`
	Total          decimal.Decimal `gorm:"type:numeric(12,2)"`
	ProcesoID      int64
	EstadoActualID int64 `gorm:"index"`
	MetodoPago     string
	EstadoPago     string
	DireccionID    *int64
	AreaID         *int64
	QRTexto        string `gorm:"column:qr_texto"`
	QRToken        string `gorm:"column:qr_token"`
	CreadoEn       time.Time
	ActualizadoEn  time.Time
}

func (OrderDTO) TableName() string {
	return "ordenes"
}

// OrderItemDTO maps an order line to the orden_items table.
type OrderItemDTO struct {
	ID                     int64 `gorm:"primaryKey;autoIncrement"`
	OrdenID                int64 `gorm:"index"`
	ProductoID             int64
	Cantidad               int
	PrecioUnitario         decimal.Decimal `gorm:"type:numeric(12,2)"`
	PersonalizacionLadoAID *int64          `gorm:"column:personalizacion_lado_a_id"`
	PersonalizacionLadoBID *int64          `gorm:"column:personalizacion_lado_b_id"`
}

func (OrderItemDTO) TableName() string {
	return "orden_items"
}

// OrderImageDTO maps the resolved photo of one order side to the
// orden_imagenes table. Uniqueness is on (orden_id, lado).
type OrderImageDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	OrdenID   int64  `gorm:"uniqueIndex:ux_orden_imagenes_lado"`
	ArchivoID int64
	Lado      string `gorm:"uniqueIndex:ux_orden_imagenes_lado"`
	CreadoEn  time.Time
}

func (OrderImageDTO) TableName() string {
	return "orden_imagenes"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:             o.ID(),
		UsuarioID:      o.UserID(),
		Folio:          o.Folio().String(),
		Total:          o.Total(),
		ProcesoID:      o.ProcessID(),
		EstadoActualID: o.CurrentStateID(),
		MetodoPago:     o.PaymentMethod().String(),
		EstadoPago:     o.PaymentStatus().String(),
		DireccionID:    o.AddressID(),
		AreaID:         o.AreaID(),
		QRTexto:        o.QRText(),
		QRToken:        o.QRToken(),
		CreadoEn:       o.CreatedAt(),
		ActualizadoEn:  o.UpdatedAt(),
	}
}

// orderRow joins the ordenes row with its current state code so the restored
// aggregate can evaluate state preconditions without another lookup.
type orderRow struct {
	OrderDTO
	EstadoCodigo string
}

func toDomain(row orderRow) (*order.Order, error) {
	folio, err := order.ParseFolio(row.Folio)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(row.ID, row.UsuarioID, folio, row.Total,
		row.ProcesoID, row.EstadoActualID, row.EstadoCodigo,
		order.PaymentMethod(row.MetodoPago), order.PaymentStatus(row.EstadoPago),
		row.DireccionID, row.AreaID, row.QRTexto, row.QRToken,
		row.CreadoEn, row.ActualizadoEn)
}

func itemFromDomain(i *order.OrderItem) OrderItemDTO {
	return OrderItemDTO{
		ID:                     i.ID(),
		OrdenID:                i.OrderID(),
		ProductoID:             i.ProductID(),
		Cantidad:               i.Quantity(),
		PrecioUnitario:         i.UnitPrice(),
		PersonalizacionLadoAID: i.PersonalizationID(personalization.SideA),
		PersonalizacionLadoBID: i.PersonalizationID(personalization.SideB),
	}
}

func itemToDomain(dto OrderItemDTO) (*order.OrderItem, error) {
	return order.RestoreOrderItem(dto.ID, dto.OrdenID, dto.ProductoID,
		dto.Cantidad, dto.PrecioUnitario,
		dto.PersonalizacionLadoAID, dto.PersonalizacionLadoBID)
}
