package order

import (
	"time"

	"compras/internal/pkg/errs"
)

// Audit notes written by the workflow paths.
const (
	HistoryNoteOrderCreated = "Creación de orden"
	HistoryNoteManualEvent  = "Evento manual"
)

// HistoryNoteStateChange is the note appended on a state change.
func HistoryNoteStateChange(stateCode string) string {
	return "Cambio a " + stateCode
}

// HistoryEntry is one append-only row of an order's audit trail. The actor is
// nil for system-generated entries; the transition is nil for manual events
// that record no state change.
type HistoryEntry struct {
	id            int64
	ordenID       int64
	transicionID  *int64
	estadoNuevoID int64
	usuarioID     *int64
	nota          string
	creadoEn      time.Time
}

// NewHistoryEntry appends an audit row for an order.
func NewHistoryEntry(ordenID int64, transicionID *int64, estadoNuevoID int64, usuarioID *int64,
	nota string, now time.Time) (*HistoryEntry, error) {
	if ordenID <= 0 {
		return nil, errs.NewValueIsInvalidError("historial orden id")
	}
	if estadoNuevoID <= 0 {
		return nil, errs.NewValueIsInvalidError("historial estado nuevo id")
	}

	return &HistoryEntry{
		ordenID:       ordenID,
		transicionID:  transicionID,
		estadoNuevoID: estadoNuevoID,
		usuarioID:     usuarioID,
		nota:          nota,
		creadoEn:      now,
	}, nil
}

// RestoreHistoryEntry rebuilds an audit row from persistence.
func RestoreHistoryEntry(id, ordenID int64, transicionID *int64, estadoNuevoID int64, usuarioID *int64,
	nota string, creadoEn time.Time) (*HistoryEntry, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("historial id")
	}

	return &HistoryEntry{
		id:            id,
		ordenID:       ordenID,
		transicionID:  transicionID,
		estadoNuevoID: estadoNuevoID,
		usuarioID:     usuarioID,
		nota:          nota,
		creadoEn:      creadoEn,
	}, nil
}

func (h *HistoryEntry) ID() int64 {
	return h.id
}

// AssignID records the identifier generated on insert.
func (h *HistoryEntry) AssignID(id int64) error {
	if h.id != 0 {
		return errs.NewValueIsInvalidError("historial id already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("historial id")
	}
	h.id = id
	return nil
}

func (h *HistoryEntry) OrderID() int64 {
	return h.ordenID
}

func (h *HistoryEntry) TransitionID() *int64 {
	return h.transicionID
}

func (h *HistoryEntry) NewStateID() int64 {
	return h.estadoNuevoID
}

func (h *HistoryEntry) ActorID() *int64 {
	return h.usuarioID
}

func (h *HistoryEntry) Note() string {
	return h.nota
}

func (h *HistoryEntry) CreatedAt() time.Time {
	return h.creadoEn
}
