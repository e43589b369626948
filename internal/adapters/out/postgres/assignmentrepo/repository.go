// Package assignmentrepo manages the order-to-operator assignment table.
// Each order has at most one operator; reassigning replaces the previous row.
package assignmentrepo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssignmentDTO maps an assignment to the orden_operadores table. Uniqueness
// is on orden_id.
type AssignmentDTO struct {
	ID                int64 `gorm:"primaryKey;autoIncrement"`
	OrdenID           int64 `gorm:"uniqueIndex"`
	OperadorUsuarioID int64
	AsignadoEn        time.Time
}

func (AssignmentDTO) TableName() string {
	return "orden_operadores"
}

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// Upsert assigns an operator to an order, replacing a previous one.
func (r *GormAssignmentRepository) Upsert(ctx context.Context, orderID, operatorID int64) error {
	dto := AssignmentDTO{
		OrdenID:           orderID,
		OperadorUsuarioID: operatorID,
		AsignadoEn:        time.Now().UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "orden_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"operador_usuario_id", "asignado_en"}),
		}).
		Create(&dto).Error
}

// Delete clears an order's assignment. Deleting a missing assignment is not
// an error.
func (r *GormAssignmentRepository) Delete(ctx context.Context, orderID int64) error {
	return r.db.WithContext(ctx).Delete(&AssignmentDTO{}, "orden_id = ?", orderID).Error
}
