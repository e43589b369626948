// Package personalizationrepo persists personalization headers and their
// ordered layer stacks.
package personalizationrepo

import (
	"compras/internal/core/domain/model/personalization"

	"github.com/shopspring/decimal"
)

// PersonalizationDTO maps a personalization header to the personalizaciones
// table. The owner is stored as a discriminator plus identifier pair.
type PersonalizationDTO struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	PropietarioTipo string `gorm:"index:ix_personalizaciones_owner"`
	PropietarioID   int64  `gorm:"index:ix_personalizaciones_owner"`
	Lado            string
	Captura         *string
}

func (PersonalizationDTO) TableName() string {
	return "personalizaciones"
}

// LayerDTO maps one stack element to the personalizacion_capas table. Only
// the columns relevant to the layer's kind are set.
type LayerDTO struct {
	ID                 int64 `gorm:"primaryKey;autoIncrement"`
	PersonalizacionID  int64 `gorm:"index"`
	TipoCapa           string
	ZIndex             *int
	PosX               *decimal.Decimal `gorm:"type:numeric(9,3)"`
	PosY               *decimal.Decimal `gorm:"type:numeric(9,3)"`
	Escala             *decimal.Decimal `gorm:"type:numeric(9,3)"`
	Rotacion           *decimal.Decimal `gorm:"type:numeric(9,3)"`
	Texto              *string
	Fuente             *string
	Color              *string
	ArchivoID          *int64
	StickerID          *int64
	FiltroID           *int64
	Datos              *string
}

func (LayerDTO) TableName() string {
	return "personalizacion_capas"
}

func fromDomain(p *personalization.Personalization) PersonalizationDTO {
	return PersonalizationDTO{
		ID:              p.ID(),
		PropietarioTipo: p.Owner().Discriminator(),
		PropietarioID:   p.Owner().OwnerID(),
		Lado:            string(p.Side()),
		Captura:         p.Capture(),
	}
}

func toDomain(dto PersonalizationDTO, layers []*personalization.Layer) (*personalization.Personalization, error) {
	owner, err := personalization.RestoreOwner(dto.PropietarioTipo, dto.PropietarioID)
	if err != nil {
		return nil, err
	}

	return personalization.RestorePersonalization(dto.ID, owner,
		personalization.Side(dto.Lado), dto.Captura, layers)
}

func layerFromDomain(personalizationID int64, l *personalization.Layer) LayerDTO {
	return LayerDTO{
		ID:                l.ID,
		PersonalizacionID: personalizationID,
		TipoCapa:          string(l.Kind),
		ZIndex:            l.ZIndex,
		PosX:              l.PosX,
		PosY:              l.PosY,
		Escala:            l.Escala,
		Rotacion:          l.Rotacion,
		Texto:             l.Texto,
		Fuente:            l.Fuente,
		Color:             l.Color,
		ArchivoID:         l.ArchivoID,
		StickerID:         l.StickerID,
		FiltroID:          l.FiltroID,
		Datos:             l.Datos,
	}
}

func layerToDomain(dto LayerDTO) *personalization.Layer {
	return &personalization.Layer{
		ID:        dto.ID,
		Kind:      personalization.LayerKind(dto.TipoCapa),
		ZIndex:    dto.ZIndex,
		PosX:      dto.PosX,
		PosY:      dto.PosY,
		Escala:    dto.Escala,
		Rotacion:  dto.Rotacion,
		Texto:     dto.Texto,
		Fuente:    dto.Fuente,
		Color:     dto.Color,
		ArchivoID: dto.ArchivoID,
		StickerID: dto.StickerID,
		FiltroID:  dto.FiltroID,
		Datos:     dto.Datos,
	}
}
