package commands_test

import (
	"context"
	"testing"
	"time"

	"compras/internal/core/application/usecases/commands"
	"compras/internal/core/domain/model/cart"
	"compras/internal/core/domain/model/delivery"
	"compras/internal/core/domain/model/order"
	"compras/internal/core/domain/model/personalization"
	"compras/internal/core/domain/model/workflow"
	"compras/internal/core/ports"
	"compras/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWorkflowRepository struct{ mock.Mock }

func (m *MockWorkflowRepository) GetProcessByCode(ctx context.Context, code string) (*workflow.Process, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workflow.Process), args.Error(1)
}

func (m *MockWorkflowRepository) GetProcessByID(ctx context.Context, id int64) (*workflow.Process, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workflow.Process), args.Error(1)
}

func (m *MockWorkflowRepository) GetInitialState(ctx context.Context, processID int64) (*workflow.State, error) {
	args := m.Called(ctx, processID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workflow.State), args.Error(1)
}

func (m *MockWorkflowRepository) GetStateByCode(ctx context.Context, processID int64, code string) (*workflow.State, error) {
	args := m.Called(ctx, processID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workflow.State), args.Error(1)
}

func (m *MockWorkflowRepository) GetStateByID(ctx context.Context, id int64) (*workflow.State, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workflow.State), args.Error(1)
}

func (m *MockWorkflowRepository) FindTransition(ctx context.Context, processID, fromID, toID int64) (*workflow.Transition, error) {
	args := m.Called(ctx, processID, fromID, toID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workflow.Transition), args.Error(1)
}

func (m *MockWorkflowRepository) EnsureTransition(ctx context.Context, process *workflow.Process, from, to *workflow.State) (*workflow.Transition, error) {
	args := m.Called(ctx, process, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workflow.Transition), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByFolio(ctx context.Context, folio order.Folio) (*order.Order, error) {
	args := m.Called(ctx, folio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FolioExists(ctx context.Context, folio order.Folio) (bool, error) {
	args := m.Called(ctx, folio)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) AddItem(ctx context.Context, item *order.OrderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateItem(ctx context.Context, item *order.OrderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockOrderRepository) GetItems(ctx context.Context, orderID int64) ([]*order.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.OrderItem), args.Error(1)
}

func (m *MockOrderRepository) UpsertImage(ctx context.Context, orderID int64, side personalization.Side, fileID int64) error {
	args := m.Called(ctx, orderID, side, fileID)
	return args.Error(0)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Append(ctx context.Context, entry *order.HistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) EnsureForOrder(ctx context.Context, orderID int64) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetByOrderID(ctx context.Context, orderID int64) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDeliveryRepository) AddEvent(ctx context.Context, event *delivery.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, payment *order.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

type MockAddressRepository struct{ mock.Mock }

func (m *MockAddressRepository) Add(ctx context.Context, address *order.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Upsert(ctx context.Context, orderID, operatorID int64) error {
	args := m.Called(ctx, orderID, operatorID)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Delete(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockPersonalizationRepository struct{ mock.Mock }

func (m *MockPersonalizationRepository) GetByOwner(ctx context.Context, owner personalization.Owner) ([]*personalization.Personalization, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*personalization.Personalization), args.Error(1)
}

func (m *MockPersonalizationRepository) Add(ctx context.Context, p *personalization.Personalization) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Add(ctx context.Context, aggregate *cart.Cart) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCartRepository) Update(ctx context.Context, aggregate *cart.Cart) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCartRepository) GetOpenByUser(ctx context.Context, userID int64) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) AddItem(ctx context.Context, item *cart.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) GetItemByID(ctx context.Context, itemID int64) (*cart.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Item), args.Error(1)
}

func (m *MockCartRepository) UpdateItem(ctx context.Context, item *cart.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) RemoveItem(ctx context.Context, itemID int64) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) GetActivePrice(ctx context.Context, productID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// txMock provides Begin/Commit/Rollback for the unit of work mocks.
type txMock struct{ mock.Mock }

func (m *txMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// expectTx wires the usual Begin / Commit / deferred Rollback sequence.
func (m *txMock) expectTx(ctx context.Context) {
	m.On("Begin", ctx).Return(nil).Once()
	m.On("Commit", ctx).Return(nil).Once()
	m.On("Rollback", ctx).Return(nil).Once()
}

// expectTxRolledBack wires Begin plus the deferred Rollback for paths that
// fail before Commit.
func (m *txMock) expectTxRolledBack(ctx context.Context) {
	m.On("Begin", ctx).Return(nil).Once()
	m.On("Rollback", ctx).Return(nil).Once()
}

// MockOrderUoW bundles the repositories an order advance touches. The
// accessors hand out plain fields; only the transaction boundary is asserted.
type MockOrderUoW struct {
	txMock
	workflow *MockWorkflowRepository
	orders   *MockOrderRepository
	history  *MockHistoryRepository
	delivery *MockDeliveryRepository
}

func NewMockOrderUoW() *MockOrderUoW {
	return &MockOrderUoW{
		workflow: new(MockWorkflowRepository),
		orders:   new(MockOrderRepository),
		history:  new(MockHistoryRepository),
		delivery: new(MockDeliveryRepository),
	}
}

func (m *MockOrderUoW) WorkflowRepository() ports.WorkflowRepository { return m.workflow }
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository       { return m.orders }
func (m *MockOrderUoW) HistoryRepository() ports.HistoryRepository   { return m.history }
func (m *MockOrderUoW) DeliveryRepository() ports.DeliveryRepository { return m.delivery }

func (m *MockOrderUoW) assertExpectations(t *testing.T) {
	t.Helper()
	m.AssertExpectations(t)
	m.workflow.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.history.AssertExpectations(t)
	m.delivery.AssertExpectations(t)
}

type MockOrderUoWFactory struct{ uow *MockOrderUoW }

func (f *MockOrderUoWFactory) Create() commands.OrderUoW { return f.uow }

// MockCourierUoW adds payments to the order advance surface.
type MockCourierUoW struct {
	MockOrderUoW
	payments *MockPaymentRepository
}

func NewMockCourierUoW() *MockCourierUoW {
	m := &MockCourierUoW{payments: new(MockPaymentRepository)}
	m.workflow = new(MockWorkflowRepository)
	m.orders = new(MockOrderRepository)
	m.history = new(MockHistoryRepository)
	m.delivery = new(MockDeliveryRepository)
	return m
}

func (m *MockCourierUoW) PaymentRepository() ports.PaymentRepository { return m.payments }

func (m *MockCourierUoW) assertExpectations(t *testing.T) {
	t.Helper()
	m.MockOrderUoW.assertExpectations(t)
	m.payments.AssertExpectations(t)
}

type MockCourierUoWFactory struct{ uow *MockCourierUoW }

func (f *MockCourierUoWFactory) Create() commands.CourierUoW { return f.uow }

// MockCheckoutUoW spans every repository the checkout transaction writes.
type MockCheckoutUoW struct {
	MockOrderUoW
	carts            *MockCartRepository
	catalog          *MockProductCatalog
	personalizations *MockPersonalizationRepository
	addresses        *MockAddressRepository
}

func NewMockCheckoutUoW() *MockCheckoutUoW {
	m := &MockCheckoutUoW{
		carts:            new(MockCartRepository),
		catalog:          new(MockProductCatalog),
		personalizations: new(MockPersonalizationRepository),
		addresses:        new(MockAddressRepository),
	}
	m.workflow = new(MockWorkflowRepository)
	m.orders = new(MockOrderRepository)
	m.history = new(MockHistoryRepository)
	m.delivery = new(MockDeliveryRepository)
	return m
}

func (m *MockCheckoutUoW) CartRepository() ports.CartRepository { return m.carts }
func (m *MockCheckoutUoW) ProductCatalog() ports.ProductCatalog { return m.catalog }
func (m *MockCheckoutUoW) PersonalizationRepository() ports.PersonalizationRepository {
	return m.personalizations
}
func (m *MockCheckoutUoW) AddressRepository() ports.AddressRepository { return m.addresses }

func (m *MockCheckoutUoW) assertExpectations(t *testing.T) {
	t.Helper()
	m.MockOrderUoW.assertExpectations(t)
	m.carts.AssertExpectations(t)
	m.catalog.AssertExpectations(t)
	m.personalizations.AssertExpectations(t)
	m.addresses.AssertExpectations(t)
}

type MockCheckoutUoWFactory struct{ uow *MockCheckoutUoW }

func (f *MockCheckoutUoWFactory) Create() commands.CheckoutUoW { return f.uow }

type MockCartUoW struct {
	txMock
	carts   *MockCartRepository
	catalog *MockProductCatalog
}

func NewMockCartUoW() *MockCartUoW {
	return &MockCartUoW{
		carts:   new(MockCartRepository),
		catalog: new(MockProductCatalog),
	}
}

func (m *MockCartUoW) CartRepository() ports.CartRepository { return m.carts }
func (m *MockCartUoW) ProductCatalog() ports.ProductCatalog { return m.catalog }

func (m *MockCartUoW) assertExpectations(t *testing.T) {
	t.Helper()
	m.AssertExpectations(t)
	m.carts.AssertExpectations(t)
	m.catalog.AssertExpectations(t)
}

type MockCartUoWFactory struct{ uow *MockCartUoW }

func (f *MockCartUoWFactory) Create() commands.CartUoW { return f.uow }

type MockAssignmentUoW struct {
	txMock
	assignments *MockAssignmentRepository
}

func NewMockAssignmentUoW() *MockAssignmentUoW {
	return &MockAssignmentUoW{assignments: new(MockAssignmentRepository)}
}

func (m *MockAssignmentUoW) AssignmentRepository() ports.AssignmentRepository {
	return m.assignments
}

type MockAssignmentUoWFactory struct{ uow *MockAssignmentUoW }

func (f *MockAssignmentUoWFactory) Create() commands.AssignmentUoW { return f.uow }

// Fixtures shared by the handler tests. Identifiers are arbitrary seed-like
// values; nothing in the handlers may depend on them.

func newTestMetrics() *metrics.Metrics {
	return metrics.NewWith(prometheus.NewRegistry())
}

type workflowFixture struct {
	process *workflow.Process
	created *workflow.State
	proc    *workflow.State
	ready   *workflow.State
	done    *workflow.State
}

func newWorkflowFixture(t *testing.T) workflowFixture {
	t.Helper()

	process, err := workflow.RestoreProcess(1, workflow.ProcessCodeOrders, "Pedidos")
	require.NoError(t, err)

	step := func(n int) *int { return &n }

	created, err := workflow.RestoreState(10, 1, workflow.StateCodeCreated, "Creado",
		workflow.StateTypeInitial, step(1))
	require.NoError(t, err)
	proc, err := workflow.RestoreState(11, 1, workflow.StateCodeProcessing, "En proceso",
		workflow.StateTypeOrdinary, step(2))
	require.NoError(t, err)
	ready, err := workflow.RestoreState(12, 1, workflow.StateCodeReady, "Listo",
		workflow.StateTypeOrdinary, step(3))
	require.NoError(t, err)
	done, err := workflow.RestoreState(13, 1, workflow.StateCodeDone, "Entregado",
		workflow.StateTypeTerminal, step(4))
	require.NoError(t, err)

	return workflowFixture{process: process, created: created, proc: proc, ready: ready, done: done}
}

func (f workflowFixture) transitionBetween(t *testing.T, from, to *workflow.State) *workflow.Transition {
	t.Helper()
	tr, err := workflow.NewTransition(f.process, from, to)
	require.NoError(t, err)
	require.NoError(t, tr.AssignID(500+from.ID()*100+to.ID()))
	return tr
}

func testFolio(t *testing.T) order.Folio {
	t.Helper()
	f, err := order.NewFolio(time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC), 4321)
	require.NoError(t, err)
	return f
}

func testOrderInState(t *testing.T, f workflowFixture, st *workflow.State) *order.Order {
	t.Helper()
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	folio := testFolio(t)
	o, err := order.RestoreOrder(100, 7, folio, decimal.RequireFromString("250.00"),
		f.process.ID(), st.ID(), st.Code(), order.PaymentMethodCash, order.PaymentStatusPending,
		nil, nil, folio.QRText(), "tok-abc123", now, now)
	require.NoError(t, err)
	return o
}

func pendingDelivery(t *testing.T, orderID int64) *delivery.Delivery {
	t.Helper()
	d, err := delivery.RestoreDelivery(55, orderID, delivery.StatusPending, nil, nil, nil)
	require.NoError(t, err)
	return d
}

func int64Ref(v int64) *int64 { return &v }

func strRef(v string) *string { return &v }
