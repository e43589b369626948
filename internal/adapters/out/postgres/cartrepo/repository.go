package cartrepo

import (
	"context"
	"errors"

	"compras/internal/core/domain/model/cart"
	"compras/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Add saves a new cart and assigns its generated identifier.
func (r *GormCartRepository) Add(ctx context.Context, aggregate *cart.Cart) error {
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

// Update saves cart-level changes.
func (r *GormCartRepository) Update(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CartDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"estado":         dto.Estado,
			"actualizado_en": dto.ActualizadoEn,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("carrito", dto.ID)
	}

	return nil
}

// GetOpenByUser retrieves the user's most recent open cart with its items.
func (r *GormCartRepository) GetOpenByUser(ctx context.Context, userID int64) (*cart.Cart, error) {
	var dto CartDTO
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND estado = ?", userID, cart.StatusOpen).
		Order("id DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carrito abierto", userID)
		}
		return nil, err
	}

	var itemDTOs []ItemDTO
	err = r.db.WithContext(ctx).
		Where("carrito_id = ?", dto.ID).
		Order("id").
		Find(&itemDTOs).Error
	if err != nil {
		return nil, err
	}

	items := make([]*cart.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, err := itemToDomain(itemDTO)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return toDomain(dto, items)
}

// AddItem saves a new cart line and assigns its generated identifier.
func (r *GormCartRepository) AddItem(ctx context.Context, item *cart.Item) error {
	dto := itemFromDomain(item)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return item.AssignID(dto.ID)
}

// GetItemByID retrieves a cart line by identifier.
func (r *GormCartRepository) GetItemByID(ctx context.Context, itemID int64) (*cart.Item, error) {
	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carrito item", itemID)
		}
		return nil, err
	}

	return itemToDomain(dto)
}

// UpdateItem saves quantity and timestamp changes to a cart line.
func (r *GormCartRepository) UpdateItem(ctx context.Context, item *cart.Item) error {
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).Where("id = ?", item.ID()).
		Updates(map[string]any{
			"cantidad":       item.Quantity(),
			"actualizado_en": item.UpdatedAt(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("carrito item", item.ID())
	}

	return nil
}

// RemoveItem deletes a cart line.
func (r *GormCartRepository) RemoveItem(ctx context.Context, itemID int64) error {
	return r.db.WithContext(ctx).Delete(&ItemDTO{}, "id = ?", itemID).Error
}
