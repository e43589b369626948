package deliveryrepo

import (
	"context"
	"errors"

	"compras/internal/core/domain/model/delivery"
	"compras/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// EnsureForOrder retrieves the order's delivery, creating it in its initial
// sub-state when the order does not have one yet.
func (r *GormDeliveryRepository) EnsureForOrder(ctx context.Context, orderID int64) (*delivery.Delivery, error) {
	existing, err := r.GetByOrderID(ctx, orderID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	created, err := delivery.NewDelivery(orderID)
	if err != nil {
		return nil, err
	}

	dto := fromDomain(created)
	dto.ID = 0
	if createErr := r.db.WithContext(ctx).Create(&dto).Error; createErr != nil {
		if errors.Is(createErr, gorm.ErrDuplicatedKey) {
			return r.GetByOrderID(ctx, orderID)
		}
		return nil, createErr
	}

	if err := created.AssignID(dto.ID); err != nil {
		return nil, err
	}
	return created, nil
}

// GetByOrderID retrieves the order's delivery.
func (r *GormDeliveryRepository) GetByOrderID(ctx context.Context, orderID int64) (*delivery.Delivery, error) {
	var dto DeliveryDTO
	err := r.db.WithContext(ctx).
		Where("orden_id = ?", orderID).
		Order("id").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("entrega", orderID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update saves changes to a delivery.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"estado":                dto.Estado,
			"repartidor_usuario_id": dto.RepartidorUsuarioID,
			"cobrado_efectivo_en":   dto.CobradoEfectivoEn,
			"entregado_en":          dto.EntregadoEn,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("entrega", dto.ID)
	}

	return nil
}

// AddEvent appends one breadcrumb to a delivery's trail.
func (r *GormDeliveryRepository) AddEvent(ctx context.Context, event *delivery.Event) error {
	dto := eventFromDomain(event)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return event.AssignID(dto.ID)
}
