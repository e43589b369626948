// Package workflow models the data-driven finite automaton that drives an
// order through its lifecycle: a Process owns a set of States and the
// Transitions declared (or synthesized) between them. The backing rows are
// seed data, read-only at request time.
package workflow

import (
	"errors"

	"compras/internal/pkg/errs"
)

// ProcessCodeOrders is the workflow every order belongs to.
const ProcessCodeOrders = "ORD"

var ErrProcessIsNotConstructed = errors.New("Process must be created via RestoreProcess constructor")

// Process is a named workflow definition. Instances always come from seed
// rows, so there is no creating constructor, only a restoring one.
type Process struct {
	id     int64
	codigo string
	nombre string

	isConstructed bool
}

// RestoreProcess rebuilds a Process from its persisted representation.
func RestoreProcess(id int64, codigo, nombre string) (*Process, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("process id")
	}
	if codigo == "" {
		return nil, errs.NewValueIsRequiredError("process codigo")
	}

	return &Process{
		id:            id,
		codigo:        codigo,
		nombre:        nombre,
		isConstructed: true,
	}, nil
}

// Validate ensures the Process was rebuilt through RestoreProcess.
func (p *Process) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProcessIsNotConstructed
	}
	return nil
}

// ID returns the process's database identifier.
func (p *Process) ID() int64 {
	return p.id
}

// Code returns the process code, e.g. "ORD".
func (p *Process) Code() string {
	return p.codigo
}

// Name returns the display name of the process.
func (p *Process) Name() string {
	return p.nombre
}
