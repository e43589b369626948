package queries

import (
	"context"
	"database/sql"
	"errors"

	"compras/internal/core/domain/model/workflow"
	"compras/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// trackingEventsLimit bounds the event list the tracking view returns.
const trackingEventsLimit = 20

// GetTrackingQueryHandler assembles the tracking view from the orders,
// entregas, entrega_eventos and estados tables.
type GetTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackingQueryHandler creates a handler for tracking queries.
func NewGetTrackingQueryHandler(db *gorm.DB) GetTrackingQueryHandler {
	return GetTrackingQueryHandler{db: db}
}

// Handle builds the tracking view. Returns errs.ObjectNotFoundError when no
// order carries the folio; a missing delivery row yields a nil Delivery
// section and no events rather than an error.
func (h GetTrackingQueryHandler) Handle(ctx context.Context, query GetTrackingQuery) (*GetTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	resp := &GetTrackingQueryResponse{
		Events: make([]TrackingEvent, 0, trackingEventsLimit),
		Steps:  make([]TrackingStep, 0, 4),
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT o.id, o.folio, o.usuario_id, o.total, o.proceso_id, o.estado_actual_id,
		       es.codigo, es.nombre, es.paso_publico
		FROM ordenes o
		LEFT JOIN estados es ON es.id = o.estado_actual_id
		WHERE o.folio = ?
		LIMIT 1
	`, query.Folio().String()).Row()

	var stateCode, stateName sql.NullString
	var publicStep sql.NullInt64
	err := row.Scan(
		&resp.Order.ID,
		&resp.Order.Folio,
		&resp.Order.UserID,
		&resp.Order.Total,
		&resp.Order.ProcessID,
		&resp.Order.StateID,
		&stateCode,
		&stateName,
		&publicStep,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("orden", query.Folio().String())
		}
		return nil, err
	}
	resp.Order.StateCode = stateCode.String
	resp.Order.StateName = stateName.String
	if publicStep.Valid {
		step := int(publicStep.Int64)
		resp.Order.PublicStep = &step
	}

	dlv, err := h.loadDelivery(ctx, resp.Order.ID)
	if err != nil {
		return nil, err
	}
	resp.Delivery = dlv

	if dlv != nil {
		resp.Events, err = h.loadEvents(ctx, dlv.ID)
		if err != nil {
			return nil, err
		}
	}

	resp.Steps, err = h.loadSteps(ctx)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (h GetTrackingQueryHandler) loadDelivery(ctx context.Context, orderID int64) (*TrackingDelivery, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT id, orden_id, repartidor_usuario_id, estado, cobrado_efectivo_en, entregado_en
		FROM entregas
		WHERE orden_id = ?
		LIMIT 1
	`, orderID).Row()

	var dlv TrackingDelivery
	err := row.Scan(&dlv.ID, &dlv.OrderID, &dlv.CourierID, &dlv.Status,
		&dlv.CashCollectedAt, &dlv.DeliveredAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &dlv, nil
}

func (h GetTrackingQueryHandler) loadEvents(ctx context.Context, deliveryID int64) ([]TrackingEvent, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, entrega_id, estado_id, lat, lng, creado_en
		FROM entrega_eventos
		WHERE entrega_id = ?
		ORDER BY id DESC
		LIMIT ?
	`, deliveryID, trackingEventsLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]TrackingEvent, 0, trackingEventsLimit)
	for rows.Next() {
		var event TrackingEvent
		var lat, lng decimal.NullDecimal
		if err = rows.Scan(&event.ID, &event.DeliveryID, &event.StateID,
			&lat, &lng, &event.CreatedAt); err != nil {
			return nil, err
		}
		if lat.Valid {
			event.Lat = &lat.Decimal
		}
		if lng.Valid {
			event.Lng = &lng.Decimal
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (h GetTrackingQueryHandler) loadSteps(ctx context.Context) ([]TrackingStep, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT es.codigo, es.nombre, es.paso_publico
		FROM estados es
		JOIN procesos p ON p.id = es.proceso_id
		WHERE p.codigo = ? AND es.paso_publico IS NOT NULL
		ORDER BY es.paso_publico
	`, workflow.ProcessCodeOrders).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	steps := make([]TrackingStep, 0, 4)
	for rows.Next() {
		var step TrackingStep
		if err = rows.Scan(&step.Code, &step.Name, &step.PublicStep); err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, rows.Err()
}
