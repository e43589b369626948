package workflow

import (
	"errors"
	"fmt"
	"strings"

	"compras/internal/pkg/errs"
)

// StateType flags a State's role inside its Process.
type StateType string

const (
	// StateTypeInitial marks the single entry state of a process ('I').
	StateTypeInitial StateType = "I"
	// StateTypeOrdinary marks an intermediate state ('N').
	StateTypeOrdinary StateType = "N"
	// StateTypeTerminal marks a final state ('F').
	StateTypeTerminal StateType = "F"
)

// Validate checks that the type flag is one of the known values.
func (t StateType) Validate() error {
	switch t {
	case StateTypeInitial, StateTypeOrdinary, StateTypeTerminal:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("state tipo",
			fmt.Errorf("%q is not a valid state type", string(t)))
	}
}

// Well-known state codes of the order process. The authoritative set lives in
// seed data; these constants exist for the paths that resolve states
// symbolically (courier actions, operator advance).
const (
	StateCodeCreated    = "CRE"
	StateCodeProcessing = "PROC"
	StateCodeReady      = "READY"
	StateCodeDone       = "DONE"
)

// NormalizeStateCode uppercases a caller-supplied state code the way the
// definition store compares them.
func NormalizeStateCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

var ErrStateIsNotConstructed = errors.New("State must be created via RestoreState constructor")

// State is one node of a Process's automaton. An optional public step number
// orders the states shown on customer-facing progress bars; states without one
// are internal.
type State struct {
	id          int64
	procesoID   int64
	codigo      string
	nombre      string
	tipo        StateType
	pasoPublico *int

	isConstructed bool
}

// RestoreState rebuilds a State from its persisted representation.
func RestoreState(id, procesoID int64, codigo, nombre string, tipo StateType, pasoPublico *int) (*State, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("state id")
	}
	if procesoID <= 0 {
		return nil, errs.NewValueIsInvalidError("state proceso id")
	}
	if codigo == "" {
		return nil, errs.NewValueIsRequiredError("state codigo")
	}
	if err := tipo.Validate(); err != nil {
		return nil, err
	}

	return &State{
		id:            id,
		procesoID:     procesoID,
		codigo:        NormalizeStateCode(codigo),
		nombre:        nombre,
		tipo:          tipo,
		pasoPublico:   pasoPublico,
		isConstructed: true,
	}, nil
}

// Validate ensures the State was rebuilt through RestoreState.
func (s *State) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStateIsNotConstructed
	}
	return nil
}

// ID returns the state's database identifier.
func (s *State) ID() int64 {
	return s.id
}

// ProcessID returns the owning process's identifier.
func (s *State) ProcessID() int64 {
	return s.procesoID
}

// Code returns the state code (e.g. CRE, PROC, READY, DONE).
func (s *State) Code() string {
	return s.codigo
}

// Name returns the display name of the state.
func (s *State) Name() string {
	return s.nombre
}

// Type returns the state's type flag.
func (s *State) Type() StateType {
	return s.tipo
}

// PublicStep returns the customer-facing step number, or nil for internal states.
func (s *State) PublicStep() *int {
	return s.pasoPublico
}

// IsInitial reports whether this is the process's entry state.
func (s *State) IsInitial() bool {
	return s.tipo == StateTypeInitial
}

// IsTerminal reports whether the state ends the process.
func (s *State) IsTerminal() bool {
	return s.tipo == StateTypeTerminal
}

// IsEqual compares two states by identifier.
func (s *State) IsEqual(other *State) bool {
	return other != nil && s.id == other.id
}
