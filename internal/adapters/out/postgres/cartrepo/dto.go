// Package cartrepo persists cart aggregates and their lines.
package cartrepo

import (
	"time"

	"compras/internal/core/domain/model/cart"

	"github.com/shopspring/decimal"
)

// CartDTO maps a cart aggregate to the carritos table.
type CartDTO struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	UsuarioID     int64  `gorm:"index"`
	Estado        string `gorm:"index"`
	CreadoEn      time.Time
	ActualizadoEn time.Time
}

// TableName overrides GORM's default naming to the schema's Spanish names.
func (CartDTO) TableName() string {
	return "carritos"
}

// ItemDTO maps a cart line to the carrito_items table.
type ItemDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	CarritoID      int64 `gorm:"uniqueIndex:ux_carrito_items_producto"`
	ProductoID     int64 `gorm:"uniqueIndex:ux_carrito_items_producto"`
	Cantidad       int
	PrecioUnitario decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreadoEn       time.Time
	ActualizadoEn  time.Time
}

func (ItemDTO) TableName() string {
	return "carrito_items"
}

func fromDomain(c *cart.Cart) CartDTO {
	return CartDTO{
		ID:            c.ID(),
		UsuarioID:     c.UserID(),
		Estado:        c.Status(),
		CreadoEn:      c.CreatedAt(),
		ActualizadoEn: c.UpdatedAt(),
	}
}

func toDomain(dto CartDTO, items []*cart.Item) (*cart.Cart, error) {
	return cart.RestoreCart(dto.ID, dto.UsuarioID, dto.Estado,
		dto.CreadoEn, dto.ActualizadoEn, items)
}

func itemFromDomain(i *cart.Item) ItemDTO {
	return ItemDTO{
		ID:             i.ID(),
		CarritoID:      i.CartID(),
		ProductoID:     i.ProductID(),
		Cantidad:       i.Quantity(),
		PrecioUnitario: i.UnitPrice(),
		CreadoEn:       i.CreatedAt(),
		ActualizadoEn:  i.UpdatedAt(),
	}
}

func itemToDomain(dto ItemDTO) (*cart.Item, error) {
	return cart.RestoreItem(dto.ID, dto.CarritoID, dto.ProductoID,
		dto.Cantidad, dto.PrecioUnitario, dto.CreadoEn, dto.ActualizadoEn)
}
