// Package addressrepo persists delivery addresses captured at checkout.
package addressrepo

import (
	"context"

	"compras/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// AddressDTO maps an address to the direcciones table.
type AddressDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	UsuarioID      int64 `gorm:"index"`
	AreaID         *int64
	PuntoEntregaID *int64
	Descripcion    *string
	ContactoNombre *string
	Telefono       *string
}

func (AddressDTO) TableName() string {
	return "direcciones"
}

// GormAddressRepository implements AddressRepository using GORM.
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GORM address repository.
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// Add persists a new address and assigns its generated identifier.
func (r *GormAddressRepository) Add(ctx context.Context, address *order.Address) error {
	dto := AddressDTO{
		UsuarioID:      address.UserID(),
		AreaID:         address.AreaID(),
		PuntoEntregaID: address.DeliveryPointID(),
		Descripcion:    address.Description(),
		ContactoNombre: address.ContactName(),
		Telefono:       address.Phone(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return address.AssignID(dto.ID)
}
