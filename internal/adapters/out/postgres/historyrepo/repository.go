// Package historyrepo appends to the order audit trail. The historial_flujo
// table is shared with other trackable objects, so every row written here
// carries the orden object type.
package historyrepo

import (
	"context"
	"time"

	"compras/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// historyObjectTypeOrder tags audit rows that belong to orders.
const historyObjectTypeOrder = "orden"

// HistoryDTO maps an audit row to the historial_flujo table.
type HistoryDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	ObjetoTipo   string `gorm:"index:ix_historial_objeto"`
	ObjetoID     int64  `gorm:"index:ix_historial_objeto"`
	TransicionID *int64
	EstadoID     int64
	UsuarioID    *int64
	Notas        string
	CreadoEn     time.Time
}

func (HistoryDTO) TableName() string {
	return "historial_flujo"
}

// GormHistoryRepository implements HistoryRepository using GORM.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Append persists one audit row and assigns its generated identifier.
func (r *GormHistoryRepository) Append(ctx context.Context, entry *order.HistoryEntry) error {
	dto := HistoryDTO{
		ObjetoTipo:   historyObjectTypeOrder,
		ObjetoID:     entry.OrderID(),
		TransicionID: entry.TransitionID(),
		EstadoID:     entry.NewStateID(),
		UsuarioID:    entry.ActorID(),
		Notas:        entry.Note(),
		CreadoEn:     entry.CreatedAt(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return entry.AssignID(dto.ID)
}
