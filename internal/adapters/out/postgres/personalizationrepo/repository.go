package personalizationrepo

import (
	"context"

	"compras/internal/core/domain/model/personalization"

	"gorm.io/gorm"
)

// GormPersonalizationRepository implements PersonalizationRepository using
// GORM.
type GormPersonalizationRepository struct {
	db *gorm.DB
}

// NewGormPersonalizationRepository creates a new GORM personalization
// repository.
func NewGormPersonalizationRepository(db *gorm.DB) *GormPersonalizationRepository {
	return &GormPersonalizationRepository{db: db}
}

// GetByOwner retrieves all personalizations of one owner, layers included,
// ordered by side.
func (r *GormPersonalizationRepository) GetByOwner(ctx context.Context, owner personalization.Owner) ([]*personalization.Personalization, error) {
	var dtos []PersonalizationDTO
	err := r.db.WithContext(ctx).
		Where("propietario_tipo = ? AND propietario_id = ?", owner.Discriminator(), owner.OwnerID()).
		Order("lado, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	result := make([]*personalization.Personalization, 0, len(dtos))
	for _, dto := range dtos {
		layers, err := r.loadLayers(ctx, dto.ID)
		if err != nil {
			return nil, err
		}

		p, err := toDomain(dto, layers)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}

	return result, nil
}

// Add persists a personalization and its layers, assigning generated
// identifiers to the header and every layer.
func (r *GormPersonalizationRepository) Add(ctx context.Context, p *personalization.Personalization) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if err := p.AssignID(dto.ID); err != nil {
		return err
	}

	for _, layer := range p.Layers() {
		layerDTO := layerFromDomain(dto.ID, layer)
		layerDTO.ID = 0
		if err := r.db.WithContext(ctx).Create(&layerDTO).Error; err != nil {
			return err
		}
		layer.ID = layerDTO.ID
	}

	return nil
}

func (r *GormPersonalizationRepository) loadLayers(ctx context.Context, personalizationID int64) ([]*personalization.Layer, error) {
	var dtos []LayerDTO
	err := r.db.WithContext(ctx).
		Where("personalizacion_id = ?", personalizationID).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	layers := make([]*personalization.Layer, 0, len(dtos))
	for _, dto := range dtos {
		layers = append(layers, layerToDomain(dto))
	}

	return layers, nil
}
