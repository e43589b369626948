package workflow

import (
	"errors"
	"fmt"

	"compras/internal/pkg/errs"
)

var ErrTransitionIsNotConstructed = errors.New("Transition must be created via NewTransition or RestoreTransition")

// Transition is a declared (or synthesized) legal edge between two states of
// one process. Uniqueness is by (process, from, to); the code is generated
// from the state codes, never from numeric identifiers.
type Transition struct {
	id        int64
	procesoID int64
	codigo    string
	desdeID   int64
	hastaID   int64
	nombre    string

	isConstructed bool
}

// SynthesizedTransitionName is the display name given to edges the executor
// creates on demand.
const SynthesizedTransitionName = "Cambio de estado"

// NewTransition synthesizes an edge between two states of the same process.
// The generated code is SET-{fromCode}->{toCode}. A reflexive edge (from ==
// to) is legal; checkout and event-only history entries use one.
func NewTransition(process *Process, from, to *State) (*Transition, error) {
	if err := errors.Join(process.Validate(), from.Validate(), to.Validate()); err != nil {
		return nil, err
	}
	if from.ProcessID() != process.ID() || to.ProcessID() != process.ID() {
		return nil, errs.NewValueIsInvalidErrorWithCause("transition states",
			fmt.Errorf("states %s and %s must belong to process %s", from.Code(), to.Code(), process.Code()))
	}

	return &Transition{
		procesoID:     process.ID(),
		codigo:        fmt.Sprintf("SET-%s->%s", from.Code(), to.Code()),
		desdeID:       from.ID(),
		hastaID:       to.ID(),
		nombre:        SynthesizedTransitionName,
		isConstructed: true,
	}, nil
}

// RestoreTransition rebuilds a Transition from its persisted representation.
func RestoreTransition(id, procesoID int64, codigo string, desdeID, hastaID int64, nombre string) (*Transition, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("transition id")
	}
	if procesoID <= 0 || desdeID <= 0 || hastaID <= 0 {
		return nil, errs.NewValueIsInvalidError("transition references")
	}

	return &Transition{
		id:            id,
		procesoID:     procesoID,
		codigo:        codigo,
		desdeID:       desdeID,
		hastaID:       hastaID,
		nombre:        nombre,
		isConstructed: true,
	}, nil
}

// Validate ensures the Transition came from one of its constructors.
func (t *Transition) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransitionIsNotConstructed
	}
	return nil
}

// ID returns the transition's database identifier, zero until persisted.
func (t *Transition) ID() int64 {
	return t.id
}

// AssignID records the identifier generated on insert. It fails if the
// transition already has one.
func (t *Transition) AssignID(id int64) error {
	if t.id != 0 {
		return errs.NewValueIsInvalidError("transition id already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("transition id")
	}
	t.id = id
	return nil
}

// ProcessID returns the owning process's identifier.
func (t *Transition) ProcessID() int64 {
	return t.procesoID
}

// Code returns the transition code, e.g. SET-CRE->PROC.
func (t *Transition) Code() string {
	return t.codigo
}

// FromStateID returns the source state's identifier.
func (t *Transition) FromStateID() int64 {
	return t.desdeID
}

// ToStateID returns the destination state's identifier.
func (t *Transition) ToStateID() int64 {
	return t.hastaID
}

// Name returns the transition's display name.
func (t *Transition) Name() string {
	return t.nombre
}

// IsReflexive reports whether the edge loops back to its source state. Such
// edges carry event-only history entries.
func (t *Transition) IsReflexive() bool {
	return t.desdeID == t.hastaID
}
