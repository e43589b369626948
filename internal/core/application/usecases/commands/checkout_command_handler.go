package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"compras/internal/core/domain/model/order"
	"compras/internal/core/domain/model/workflow"
	"compras/internal/core/domain/services"
	"compras/internal/pkg/errs"
	"compras/internal/pkg/metrics"
)

// folioMaxAttempts bounds the check-then-insert folio loop. Exhausting it is
// a ConflictError the caller must surface; checkout is never retried whole.
const folioMaxAttempts = 5

// CheckoutOrder is one order produced by a checkout.
type CheckoutOrder struct {
	OrderID    int64
	Folio      string
	Total      string
	DeliveryID int64
}

// CheckoutResult reports what a checkout produced.
type CheckoutResult struct {
	UserID         int64
	ItemsProcessed int
	Orders         []CheckoutOrder
}

// CheckoutCommandHandler turns the user's open cart into orders atomically:
// either every cart line becomes an order and the cart closes, or nothing
// changes.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	folios     services.FolioGenerator
	newToken   func() string
	metrics    *metrics.Metrics
	now        func() time.Time
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// newToken mints the opaque per-order tracking token.
func NewCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	folios services.FolioGenerator,
	newToken func() string,
	m *metrics.Metrics,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		folios:     folios,
		newToken:   newToken,
		metrics:    m,
		now:        time.Now,
	}
}

// Handle runs the checkout transaction.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*CheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	started := h.now()
	result, err := h.handle(ctx, cmd, started)

	h.metrics.CheckoutDuration.Observe(h.now().Sub(started).Seconds())
	if err != nil {
		h.metrics.CheckoutsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	h.metrics.CheckoutsTotal.WithLabelValues("ok").Inc()
	return result, nil
}

func (h *CheckoutCommandHandler) handle(ctx context.Context, cmd CheckoutCommand, now time.Time) (*CheckoutResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	openCart, err := cartRepo.GetOpenByUser(ctx, cmd.UserID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewValueIsInvalidErrorWithCause("carrito",
				fmt.Errorf("no open cart for user %d", cmd.UserID()))
		}
		return nil, err
	}
	if len(openCart.Items()) == 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("carrito",
			errors.New("cart is empty"))
	}

	var direccionID *int64
	var areaID *int64
	if addr := cmd.Address(); addr != nil {
		areaID = addr.AreaID
		address, err := order.NewAddress(cmd.UserID(), addr.AreaID, addr.DeliveryPointID,
			addr.Description, addr.ContactName, addr.Phone)
		if err != nil {
			return nil, err
		}
		if err = uow.AddressRepository().Add(ctx, address); err != nil {
			return nil, err
		}
		id := address.ID()
		direccionID = &id
	}

	wf := uow.WorkflowRepository()
	process, err := wf.GetProcessByCode(ctx, workflow.ProcessCodeOrders)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewConfigurationErrorWithCause("proceso ORD", err)
		}
		return nil, err
	}
	initial, err := wf.GetInitialState(ctx, process.ID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewConfigurationErrorWithCause("estado inicial ORD", err)
		}
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	userID := cmd.UserID()

	created := make([]CheckoutOrder, 0, len(openCart.Items()))
	for _, line := range openCart.Items() {
		folio, err := h.uniqueFolio(ctx, orderRepo, now)
		if err != nil {
			return nil, err
		}

		o, err := order.NewOrder(userID, folio, line.Subtotal(), process, initial,
			cmd.Method(), direccionID, areaID, h.newToken(), now)
		if err != nil {
			return nil, err
		}
		if err = orderRepo.Add(ctx, o); err != nil {
			return nil, err
		}

		item, err := order.NewOrderItem(o.ID(), line.ProductID(), line.Quantity(), line.UnitPrice())
		if err != nil {
			return nil, err
		}
		if err = orderRepo.AddItem(ctx, item); err != nil {
			return nil, err
		}

		if err = copyPersonalizations(ctx, uow.PersonalizationRepository(), orderRepo,
			line.ID(), item, cmd.DraftItemID()); err != nil {
			return nil, err
		}

		dlv, err := uow.DeliveryRepository().EnsureForOrder(ctx, o.ID())
		if err != nil {
			return nil, err
		}

		transition, err := wf.EnsureTransition(ctx, process, initial, initial)
		if err != nil {
			return nil, err
		}

		transitionID := transition.ID()
		entry, err := order.NewHistoryEntry(o.ID(), &transitionID, initial.ID(), &userID,
			order.HistoryNoteOrderCreated, now)
		if err != nil {
			return nil, err
		}
		if err = uow.HistoryRepository().Append(ctx, entry); err != nil {
			return nil, err
		}

		created = append(created, CheckoutOrder{
			OrderID:    o.ID(),
			Folio:      folio.String(),
			Total:      o.Total().StringFixed(2),
			DeliveryID: dlv.ID(),
		})
	}

	if err = openCart.Close(now); err != nil {
		return nil, err
	}
	if err = cartRepo.Update(ctx, openCart); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &CheckoutResult{
		UserID:         userID,
		ItemsProcessed: len(created),
		Orders:         created,
	}, nil
}

// uniqueFolio runs the bounded check-then-insert loop. The uniqueness check
// and the later insert are two statements, so a racing checkout can still
// collide between them; the orders table's unique index is the backstop.
func (h *CheckoutCommandHandler) uniqueFolio(ctx context.Context, repo interface {
	FolioExists(ctx context.Context, folio order.Folio) (bool, error)
}, now time.Time) (order.Folio, error) {
	for attempt := 0; attempt < folioMaxAttempts; attempt++ {
		folio, err := h.folios.Next(now)
		if err != nil {
			return order.Folio{}, err
		}
		exists, err := repo.FolioExists(ctx, folio)
		if err != nil {
			return order.Folio{}, err
		}
		if !exists {
			return folio, nil
		}
	}
	return order.Folio{}, errs.NewConflictErrorWithCause("folio",
		fmt.Errorf("no unique folio after %d attempts", folioMaxAttempts))
}
