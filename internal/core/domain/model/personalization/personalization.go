package personalization

import (
	"errors"
	"fmt"

	"compras/internal/pkg/errs"
)

// Side identifies which face of the product a personalization decorates.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

// ParseSide normalizes a persisted lado value.
func ParseSide(raw string) (Side, error) {
	switch raw {
	case "A", "a":
		return SideA, nil
	case "B", "b":
		return SideB, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("lado",
			fmt.Errorf("%q is not a side", raw))
	}
}

// Validate checks the side is A or B.
func (s Side) Validate() error {
	if s != SideA && s != SideB {
		return errs.NewValueIsInvalidError("lado")
	}
	return nil
}

// Sides lists both product faces in order.
func Sides() []Side {
	return []Side{SideA, SideB}
}

var ErrPersonalizationIsNotConstructed = errors.New(
	"Personalization must be created via RestorePersonalization or CopyTo")

// Personalization is the ordered layer stack decorating one side of a product
// line. It is created interactively against a cart item (outside this
// system's scope) and copied, not moved, onto the order item at checkout so
// the closed cart keeps its original for audit.
type Personalization struct {
	id      int64
	owner   Owner
	lado    Side
	captura *string
	capas   []*Layer

	isConstructed bool
}

// RestorePersonalization rebuilds a personalization and its layer stack from
// persistence. Layers may be nil when the caller only needs the header row.
func RestorePersonalization(id int64, owner Owner, lado Side, captura *string, capas []*Layer) (*Personalization, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("personalizacion id")
	}
	if err := errors.Join(owner.Validate(), lado.Validate()); err != nil {
		return nil, err
	}
	for _, capa := range capas {
		if err := capa.Validate(); err != nil {
			return nil, err
		}
	}

	return &Personalization{
		id:            id,
		owner:         owner,
		lado:          lado,
		captura:       captura,
		capas:         capas,
		isConstructed: true,
	}, nil
}

// Validate ensures the Personalization came from one of its constructors.
func (p *Personalization) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPersonalizationIsNotConstructed
	}
	return nil
}

// ID returns the personalization's database identifier, zero for unpersisted
// copies.
func (p *Personalization) ID() int64 {
	return p.id
}

// AssignID records the identifier generated on insert.
func (p *Personalization) AssignID(id int64) error {
	if p.id != 0 {
		return errs.NewValueIsInvalidError("personalizacion id already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("personalizacion id")
	}
	p.id = id
	return nil
}

// Owner returns who the personalization belongs to.
func (p *Personalization) Owner() Owner {
	return p.owner
}

// Side returns which product face the personalization decorates.
func (p *Personalization) Side() Side {
	return p.lado
}

// Capture returns the rendered capture reference, if one was stored.
func (p *Personalization) Capture() *string {
	return p.captura
}

// Layers returns the layer stack.
func (p *Personalization) Layers() []*Layer {
	return p.capas
}

// CopyTo deep-copies the personalization and its whole layer stack onto a new
// owner. The copy has no identity until persisted; the source is untouched.
func (p *Personalization) CopyTo(owner Owner) (*Personalization, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	capas := make([]*Layer, 0, len(p.capas))
	for _, capa := range p.capas {
		capas = append(capas, capa.copyDetached())
	}

	return &Personalization{
		owner:         owner,
		lado:          p.lado,
		captura:       p.captura,
		capas:         capas,
		isConstructed: true,
	}, nil
}

// PhotoFileID resolves which uploaded file represents this side: the photo
// layer with a file reference, topmost first (z-index descending, then id
// descending). Returns nil when no photo layer carries a file.
func (p *Personalization) PhotoFileID() *int64 {
	var best *Layer
	for _, capa := range p.capas {
		if capa.Kind != LayerKindPhoto || capa.ArchivoID == nil {
			continue
		}
		if best == nil ||
			capa.zOrder() > best.zOrder() ||
			(capa.zOrder() == best.zOrder() && capa.ID > best.ID) {
			best = capa
		}
	}
	if best == nil {
		return nil
	}
	return best.ArchivoID
}
