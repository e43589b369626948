package commands_test

import (
	"testing"
	"time"

	"compras/internal/core/application/usecases/commands"
	"compras/internal/core/domain/model/cart"
	"compras/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func openCartWithLine(t *testing.T, userID int64) (*cart.Cart, *cart.Item) {
	t.Helper()
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	item, err := cart.RestoreItem(200, 20, 5, 2, decimal.RequireFromString("149.90"), now, now)
	require.NoError(t, err)
	c, err := cart.RestoreCart(20, userID, cart.StatusOpen, now, now, []*cart.Item{item})
	require.NoError(t, err)
	return c, item
}

func TestAddCartItemCommandHandler_Handle_NewCart(t *testing.T) {
	ctx := t.Context()
	price := decimal.RequireFromString("99.50")

	uow := NewMockCartUoW()
	uow.expectTx(ctx)
	uow.catalog.On("GetActivePrice", ctx, int64(5)).Return(price, nil).Once()
	uow.carts.On("GetOpenByUser", ctx, int64(7)).
		Return(nil, errs.NewObjectNotFoundError("carrito", 7)).Once()

	uow.carts.On("Add", ctx, mock.AnythingOfType("*cart.Cart")).
		Run(func(args mock.Arguments) {
			require.NoError(t, args.Get(1).(*cart.Cart).AssignID(20))
		}).
		Return(nil).Once()

	var line *cart.Item
	uow.carts.On("AddItem", ctx, mock.AnythingOfType("*cart.Item")).
		Run(func(args mock.Arguments) { line = args.Get(1).(*cart.Item) }).
		Return(nil).Once()
	uow.carts.On("Update", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil).Once()

	cmd, err := commands.NewAddCartItemCommand(7, 5, 2)
	require.NoError(t, err)

	h := commands.NewAddCartItemCommandHandler(&MockCartUoWFactory{uow: uow})
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, int64(20), line.CartID())
	require.Equal(t, int64(5), line.ProductID())
	require.Equal(t, 2, line.Quantity())
	require.True(t, line.UnitPrice().Equal(price))
	uow.assertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_MergesExistingLine(t *testing.T) {
	ctx := t.Context()
	openCart, line := openCartWithLine(t, 7)

	uow := NewMockCartUoW()
	uow.expectTx(ctx)
	uow.catalog.On("GetActivePrice", ctx, int64(5)).
		Return(decimal.RequireFromString("149.90"), nil).Once()
	uow.carts.On("GetOpenByUser", ctx, int64(7)).Return(openCart, nil).Once()
	uow.carts.On("UpdateItem", ctx, line).Return(nil).Once()
	uow.carts.On("Update", ctx, openCart).Return(nil).Once()

	cmd, err := commands.NewAddCartItemCommand(7, 5, 3)
	require.NoError(t, err)

	h := commands.NewAddCartItemCommandHandler(&MockCartUoWFactory{uow: uow})
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, 5, line.Quantity())
	uow.carts.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything)
	uow.assertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_InactiveProduct(t *testing.T) {
	ctx := t.Context()

	uow := NewMockCartUoW()
	uow.expectTxRolledBack(ctx)
	uow.catalog.On("GetActivePrice", ctx, int64(5)).
		Return(decimal.Zero, errs.NewObjectNotFoundError("producto", 5)).Once()

	cmd, err := commands.NewAddCartItemCommand(7, 5, 1)
	require.NoError(t, err)

	h := commands.NewAddCartItemCommandHandler(&MockCartUoWFactory{uow: uow})
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.carts.AssertNotCalled(t, "GetOpenByUser", mock.Anything, mock.Anything)
}

func TestNewAddCartItemCommand_Invalid(t *testing.T) {
	_, err := commands.NewAddCartItemCommand(0, 5, 1)
	require.Error(t, err)

	_, err = commands.NewAddCartItemCommand(7, 0, 1)
	require.Error(t, err)

	_, err = commands.NewAddCartItemCommand(7, 5, 0)
	require.Error(t, err)
}

func TestUpdateCartItemQuantityCommandHandler_Handle_SetQuantity(t *testing.T) {
	ctx := t.Context()
	_, line := openCartWithLine(t, 7)

	uow := NewMockCartUoW()
	uow.expectTx(ctx)
	uow.carts.On("GetItemByID", ctx, line.ID()).Return(line, nil).Once()
	uow.carts.On("UpdateItem", ctx, line).Return(nil).Once()

	cmd, err := commands.NewUpdateCartItemQuantityCommand(line.ID(), 7)
	require.NoError(t, err)

	h := commands.NewUpdateCartItemQuantityCommandHandler(&MockCartUoWFactory{uow: uow})
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, 7, line.Quantity())
}

func TestUpdateCartItemQuantityCommandHandler_Handle_ZeroRemoves(t *testing.T) {
	ctx := t.Context()
	_, line := openCartWithLine(t, 7)

	uow := NewMockCartUoW()
	uow.expectTx(ctx)
	uow.carts.On("GetItemByID", ctx, line.ID()).Return(line, nil).Once()
	uow.carts.On("RemoveItem", ctx, line.ID()).Return(nil).Once()

	cmd, err := commands.NewUpdateCartItemQuantityCommand(line.ID(), 0)
	require.NoError(t, err)

	h := commands.NewUpdateCartItemQuantityCommandHandler(&MockCartUoWFactory{uow: uow})
	require.NoError(t, h.Handle(ctx, cmd))
	uow.carts.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything)
}

func TestRemoveCartItemCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	uow := NewMockCartUoW()
	uow.expectTx(ctx)
	uow.carts.On("RemoveItem", ctx, int64(200)).Return(nil).Once()

	cmd, err := commands.NewRemoveCartItemCommand(200)
	require.NoError(t, err)

	h := commands.NewRemoveCartItemCommandHandler(&MockCartUoWFactory{uow: uow})
	require.NoError(t, h.Handle(ctx, cmd))
	uow.carts.AssertExpectations(t)
}
