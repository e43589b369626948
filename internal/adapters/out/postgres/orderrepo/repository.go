package orderrepo

import (
	"context"
	"errors"
	"time"

	"compras/internal/core/domain/model/order"
	"compras/internal/core/domain/model/personalization"
	"compras/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

const orderWithStateQuery = `
SELECT o.*, COALESCE(es.codigo, '') AS estado_codigo
FROM ordenes o
LEFT JOIN estados es ON es.id = o.estado_actual_id`

// Add saves a new order and assigns its generated identifier.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// Update saves an existing order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id", "creado_en").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orden", dto.ID)
	}

	return nil
}

// GetByID retrieves an order by identifier, joined with its current state
// code.
func (r *GormOrderRepository) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	var row orderRow
	err := r.db.WithContext(ctx).
		Raw(orderWithStateQuery+" WHERE o.id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orden", id)
		}
		return nil, err
	}

	return toDomain(row)
}

// GetByFolio retrieves an order by its folio.
func (r *GormOrderRepository) GetByFolio(ctx context.Context, folio order.Folio) (*order.Order, error) {
	var row orderRow
	err := r.db.WithContext(ctx).
		Raw(orderWithStateQuery+" WHERE o.folio = ?", folio.String()).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orden", folio.String())
		}
		return nil, err
	}

	return toDomain(row)
}

// FolioExists reports whether any order already carries the folio.
func (r *GormOrderRepository) FolioExists(ctx context.Context, folio order.Folio) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("folio = ?", folio.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// AddItem saves a new order line and assigns its generated identifier.
func (r *GormOrderRepository) AddItem(ctx context.Context, item *order.OrderItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return item.AssignID(dto.ID)
}

// UpdateItem saves the personalization references of an order line.
func (r *GormOrderRepository) UpdateItem(ctx context.Context, item *order.OrderItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderItemDTO{}).Where("id = ?", item.ID()).
		Updates(map[string]any{
			"personalizacion_lado_a_id": item.PersonalizationID(personalization.SideA),
			"personalizacion_lado_b_id": item.PersonalizationID(personalization.SideB),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orden item", item.ID())
	}

	return nil
}

// GetItems retrieves an order's lines in insertion order.
func (r *GormOrderRepository) GetItems(ctx context.Context, orderID int64) ([]*order.OrderItem, error) {
	var dtos []OrderItemDTO
	err := r.db.WithContext(ctx).
		Where("orden_id = ?", orderID).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := itemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// UpsertImage records which uploaded file represents one side of the order,
// replacing any previous file for that side, and reparents the file to the
// order so cart cleanup cannot drop it.
func (r *GormOrderRepository) UpsertImage(ctx context.Context, orderID int64, side personalization.Side, fileID int64) error {
	dto := OrderImageDTO{
		OrdenID:   orderID,
		ArchivoID: fileID,
		Lado:      string(side),
		CreadoEn:  time.Now().UTC(),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "orden_id"}, {Name: "lado"}},
			DoUpdates: clause.AssignmentColumns([]string{"archivo_id", "creado_en"}),
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Exec(`
		UPDATE archivos
		SET propietario_tipo = 'orden', propietario_id = ?
		WHERE id = ?
		  AND (propietario_tipo IS NULL OR propietario_tipo = 'personalizacion')`,
		orderID, fileID).Error
}
