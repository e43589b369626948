package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"compras/internal/core/application/usecases/commands"
	"compras/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type assignedOrderResponse struct {
	ID        int64     `json:"id"`
	Folio     string    `json:"folio"`
	UsuarioID int64     `json:"usuarioId"`
	CreadoEn  time.Time `json:"creadoEn"`
}

// GetAssignedOrders handles GET /api/operator/orders-assigned.
func (s *Server) GetAssignedOrders(ctx echo.Context) error {
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))

	var operatorID *int64
	if raw := ctx.QueryParam("operadorUsuarioId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "operadorUsuarioId inválido"})
		}
		operatorID = &parsed
	}

	query := queries.NewGetAssignedOrdersQuery(ctx.QueryParam("estado"), operatorID, limit)

	orders, err := s.assignedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := make([]assignedOrderResponse, len(orders))
	for i, o := range orders {
		resp[i] = assignedOrderResponse{
			ID:        o.ID,
			Folio:     o.Folio,
			UsuarioID: o.UserID,
			CreadoEn:  o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, resp)
}

type advanceOrderRequest struct {
	To   string `json:"to"`
	Note string `json:"note"`
}

// AdvanceOrder handles POST /api/operator/orders/:orderId/advance.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("orderId"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "orderId inválido"})
	}

	var req advanceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "cuerpo inválido"})
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, req.To, req.Note)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, okResponse{OK: true})
}

type operatorResponse struct {
	UsuarioID int64  `json:"usuarioId"`
	Nombre    string `json:"nombre"`
	Correo    string `json:"correo"`
}

// GetOperators handles GET /api/supervisor/operators.
func (s *Server) GetOperators(ctx echo.Context) error {
	roleID, _ := strconv.Atoi(ctx.QueryParam("rolId"))
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))
	activeOnly := ctx.QueryParam("soloActivos") == "1" || ctx.QueryParam("soloActivos") == "true"

	query := queries.NewGetOperatorsQuery(roleID, activeOnly, limit)

	operators, err := s.operatorsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := make([]operatorResponse, len(operators))
	for i, op := range operators {
		resp[i] = operatorResponse{
			UsuarioID: op.UserID,
			Nombre:    op.Name,
			Correo:    op.Email,
		}
	}

	return ctx.JSON(http.StatusOK, resp)
}

type assignOperatorRequest struct {
	OperadorUsuarioID *int64 `json:"operadorUsuarioId"`
}

// AssignOperator handles POST /api/supervisor/orders/:ordenId/assign-operator.
// A null operator clears the assignment and answers 204.
func (s *Server) AssignOperator(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("ordenId"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "ordenId inválido"})
	}

	var req assignOperatorRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "cuerpo inválido"})
	}

	cmd, err := commands.NewAssignOperatorCommand(orderID, req.OperadorUsuarioID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.assignOperatorHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	if req.OperadorUsuarioID == nil {
		return ctx.NoContent(http.StatusNoContent)
	}
	return ctx.JSON(http.StatusOK, okResponse{OK: true})
}

type assignmentResponse struct {
	OrdenID           int64 `json:"ordenId"`
	OperadorUsuarioID int64 `json:"operadorUsuarioId"`
}

// GetAssignments handles GET /api/supervisor/orders/assignments.
func (s *Server) GetAssignments(ctx echo.Context) error {
	var ids []int64
	for _, raw := range strings.Split(ctx.QueryParam("ids"), ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "ids inválidos"})
		}
		ids = append(ids, id)
	}

	query := queries.NewGetAssignmentsQuery(ids)

	assignments, err := s.assignmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := make([]assignmentResponse, len(assignments))
	for i, a := range assignments {
		resp[i] = assignmentResponse{
			OrdenID:           a.OrderID,
			OperadorUsuarioID: a.OperatorID,
		}
	}

	return ctx.JSON(http.StatusOK, resp)
}
