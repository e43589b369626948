package commands

import (
	"context"
	"errors"
	"time"

	"compras/internal/core/domain/model/cart"
	"compras/internal/pkg/errs"
)

// AddCartItemCommandHandler adds a product line to the user's open cart. The
// unit price is captured from the catalog at add time.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	now        func() time.Time
}

// NewAddCartItemCommandHandler creates a handler for cart adds.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle finds or opens the user's cart, then merges or inserts the line.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	price, err := uow.ProductCatalog().GetActivePrice(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	now := h.now()
	cartRepo := uow.CartRepository()

	openCart, err := cartRepo.GetOpenByUser(ctx, cmd.UserID())
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		openCart, err = cart.NewCart(cmd.UserID(), now)
		if err != nil {
			return err
		}
		if err = cartRepo.Add(ctx, openCart); err != nil {
			return err
		}
	}

	if existing := openCart.ItemByProduct(cmd.ProductID()); existing != nil {
		if err = existing.AddQuantity(cmd.Quantity(), now); err != nil {
			return err
		}
		if err = cartRepo.UpdateItem(ctx, existing); err != nil {
			return err
		}
	} else {
		item, err := cart.NewItem(openCart.ID(), cmd.ProductID(), cmd.Quantity(), price, now)
		if err != nil {
			return err
		}
		if err = cartRepo.AddItem(ctx, item); err != nil {
			return err
		}
	}

	openCart.Touch(now)
	if err = cartRepo.Update(ctx, openCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
