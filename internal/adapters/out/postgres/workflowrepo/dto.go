// Package workflowrepo persists workflow definitions: processes, states and
// the transition edges between them.
package workflowrepo

import (
	"compras/internal/core/domain/model/workflow"
)

// ProcessDTO maps a workflow process to the procesos table.
type ProcessDTO struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Codigo string `gorm:"uniqueIndex"`
	Nombre string
}

// TableName overrides GORM's default naming to the schema's Spanish names.
func (ProcessDTO) TableName() string {
	return "procesos"
}

// StateDTO maps a workflow state to the estados table.
type StateDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	ProcesoID   int64 `gorm:"index"`
	Codigo      string
	Nombre      string
	Tipo        string
	PasoPublico *int
}

func (StateDTO) TableName() string {
	return "estados"
}

// TransitionDTO maps a transition edge to the transiciones table. Uniqueness
// is on (proceso_id, estado_desde_id, estado_hasta_id).
type TransitionDTO struct {
	ID            int64 `gorm:"primaryKey;autoIncrement"`
	ProcesoID     int64 `gorm:"uniqueIndex:ux_transiciones_edge"`
	Codigo        string
	EstadoDesdeID int64 `gorm:"column:estado_desde_id;uniqueIndex:ux_transiciones_edge"`
	EstadoHastaID int64 `gorm:"column:estado_hasta_id;uniqueIndex:ux_transiciones_edge"`
	Nombre        string
}

func (TransitionDTO) TableName() string {
	return "transiciones"
}

func processToDomain(dto ProcessDTO) (*workflow.Process, error) {
	return workflow.RestoreProcess(dto.ID, dto.Codigo, dto.Nombre)
}

func stateToDomain(dto StateDTO) (*workflow.State, error) {
	return workflow.RestoreState(dto.ID, dto.ProcesoID, dto.Codigo, dto.Nombre,
		workflow.StateType(dto.Tipo), dto.PasoPublico)
}

func transitionToDomain(dto TransitionDTO) (*workflow.Transition, error) {
	return workflow.RestoreTransition(dto.ID, dto.ProcesoID, dto.Codigo,
		dto.EstadoDesdeID, dto.EstadoHastaID, dto.Nombre)
}

func transitionFromDomain(t *workflow.Transition) TransitionDTO {
	return TransitionDTO{
		ID:            t.ID(),
		ProcesoID:     t.ProcessID(),
		Codigo:        t.Code(),
		EstadoDesdeID: t.FromStateID(),
		EstadoHastaID: t.ToStateID(),
		Nombre:        t.Name(),
	}
}
