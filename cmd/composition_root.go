package cmd

import (
	"log/slog"
	"math/rand"
	"time"

	"compras/internal/adapters/in/http"
	"compras/internal/adapters/out/postgres"
	"compras/internal/core/application/usecases/commands"
	"compras/internal/core/application/usecases/queries"
	"compras/internal/core/domain/services"
	"compras/internal/jobs"
	"compras/internal/pkg/cache"
	"compras/internal/pkg/errs"
	"compras/internal/pkg/metrics"

	"github.com/jaevor/go-nanoid"
	"gorm.io/gorm"
)

// defaultOperatorsCacheTTL applies when OPERATORS_CACHE_TTL is not set.
const defaultOperatorsCacheTTL = 2 * time.Minute

// qrTokenLength is the length of the per-order tracking token.
const qrTokenLength = 21

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	metrics        *metrics.Metrics
	operatorsCache *queries.OperatorsCache
	folios         services.FolioGenerator
	newToken       func() string
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	ttl := defaultOperatorsCacheTTL
	if configs.OperatorsCacheTTL != "" {
		parsed, err := time.ParseDuration(configs.OperatorsCacheTTL)
		if err != nil {
			return CompositionRoot{}, errs.NewConfigurationErrorWithCause("OPERATORS_CACHE_TTL", err)
		}
		ttl = parsed
	}

	newToken, err := nanoid.Standard(qrTokenLength)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		metrics:        metrics.New(),
		operatorsCache: cache.New[string, []queries.GetOperatorsQueryResponse](ttl),
		folios:         services.NewFolioGenerator(rand.NewSource(time.Now().UnixNano())),
		newToken:       newToken,
	}, nil
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.gormDB, c.metrics, c.operatorsCache, logger)
}

// CreateServer wires every command and query handler into the HTTP server.
func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(
		c.CreateCheckoutCommandHandler(),
		c.CreateSetOrderStateCommandHandler(),
		c.CreateAddOrderEventCommandHandler(),
		c.CreateAdvanceOrderCommandHandler(),
		c.CreateConfirmReceivedCommandHandler(),
		c.CreateConfirmPaymentCommandHandler(),
		c.CreateFinishDeliveryCommandHandler(),
		c.CreateAssignOperatorCommandHandler(),
		c.CreateAddCartItemCommandHandler(),
		c.CreateUpdateCartItemQuantityCommandHandler(),
		c.CreateRemoveCartItemCommandHandler(),
		c.CreateGetTrackingQueryHandler(),
		c.CreateGetOrderHistoryQueryHandler(),
		c.CreateGetReadyOrdersQueryHandler(),
		c.CreateGetAssignedOrdersQueryHandler(),
		c.CreateGetOperatorsQueryHandler(),
		c.CreateGetAssignmentsQueryHandler(),
		c.CreateGetCartPreviewQueryHandler(),
	)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f, c.folios, c.newToken, c.metrics)
}

func (c *CompositionRoot) CreateSetOrderStateCommandHandler() commands.SetOrderStateCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetOrderStateCommandHandler(f, c.metrics)
}

func (c *CompositionRoot) CreateAddOrderEventCommandHandler() commands.AddOrderEventCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrderEventCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f, c.metrics)
}

func (c *CompositionRoot) CreateConfirmReceivedCommandHandler() commands.ConfirmReceivedCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmReceivedCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateFinishDeliveryCommandHandler() commands.FinishDeliveryCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFinishDeliveryCommandHandler(f, c.metrics)
}

func (c *CompositionRoot) CreateAssignOperatorCommandHandler() commands.AssignOperatorCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOperatorCommandHandler(f)
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCartItemQuantityCommandHandler() commands.UpdateCartItemQuantityCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCartItemQuantityCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreateGetTrackingQueryHandler() queries.GetTrackingQueryHandler {
	return queries.NewGetTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReadyOrdersQueryHandler() queries.GetReadyOrdersQueryHandler {
	return queries.NewGetReadyOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignedOrdersQueryHandler() queries.GetAssignedOrdersQueryHandler {
	return queries.NewGetAssignedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOperatorsQueryHandler() queries.GetOperatorsQueryHandler {
	return queries.NewGetOperatorsQueryHandler(c.gormDB, c.operatorsCache)
}

func (c *CompositionRoot) CreateGetAssignmentsQueryHandler() queries.GetAssignmentsQueryHandler {
	return queries.NewGetAssignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCartPreviewQueryHandler() queries.GetCartPreviewQueryHandler {
	return queries.NewGetCartPreviewQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}
