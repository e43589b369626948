package personalization

import (
	"fmt"

	"compras/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LayerKind is the kind of a personalization layer.
type LayerKind string

const (
	LayerKindPhoto   LayerKind = "foto"
	LayerKindText    LayerKind = "texto"
	LayerKindSticker LayerKind = "sticker"
	LayerKindFilter  LayerKind = "filtro"
)

// Validate checks the kind is one of the known values.
func (k LayerKind) Validate() error {
	switch k {
	case LayerKindPhoto, LayerKindText, LayerKindSticker, LayerKindFilter:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("tipo capa",
			fmt.Errorf("%q is not a layer kind", string(k)))
	}
}

// Layer is one element of a personalization's visual stack. Only the fields
// relevant to its kind are set; the rest stay nil. Layers are copied verbatim
// by the checkout copier, so this type is a plain carrier with no behavior
// beyond validation.
type Layer struct {
	ID        int64
	Kind      LayerKind
	ZIndex    *int
	PosX      *decimal.Decimal
	PosY      *decimal.Decimal
	Escala    *decimal.Decimal
	Rotacion  *decimal.Decimal
	Texto     *string
	Fuente    *string
	Color     *string
	ArchivoID *int64
	StickerID *int64
	FiltroID  *int64
	Datos     *string
}

// Validate checks the layer's kind.
func (l *Layer) Validate() error {
	if l == nil {
		return errs.NewValueIsRequiredError("capa")
	}
	return l.Kind.Validate()
}

// zOrder returns the stacking position, treating a missing z-index as zero
// the way the photo-resolution query does.
func (l *Layer) zOrder() int {
	if l.ZIndex == nil {
		return 0
	}
	return *l.ZIndex
}

// copyDetached returns a value copy of the layer stripped of its identity.
func (l *Layer) copyDetached() *Layer {
	dup := *l
	dup.ID = 0
	return &dup
}
