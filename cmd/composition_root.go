package cmd

import (
	"log/slog"
	"os"
	"strings"

	"ecommerce/internal/adapters/out/notifier"
	"ecommerce/internal/adapters/out/postgres"
	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/application/usecases/queries"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/core/domain/services"
	"ecommerce/internal/core/ports"
	"ecommerce/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	dispatcher *notifier.SlogDispatcher
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher: notifier.NewSlogDispatcher(logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderProductUoWFactory = FuncOrderProductUoWFactory(func() commands.OrderProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.transitionPolicy())
}

func (c *CompositionRoot) CreateRequestReturnCommandHandler() commands.RequestReturnCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestReturnCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelReturnCommandHandler() commands.CancelReturnCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelReturnCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateReturnTrackingCommandHandler() commands.UpdateReturnTrackingCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateReturnTrackingCommandHandler(f)
}

func (c *CompositionRoot) CreateIssueRefundCommandHandler() commands.IssueRefundCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewIssueRefundCommandHandler(f)
}

func (c *CompositionRoot) CreatePurgeOrderCommandHandler() commands.PurgeOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateRestockProductCommandHandler() commands.RestockProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRestockProductCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateShippingConfigCommandHandler() commands.UpdateShippingConfigCommandHandler {
	var f commands.TariffUoWFactory = FuncTariffUoWFactory(func() commands.TariffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShippingConfigCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateTaxTableCommandHandler() commands.UpdateTaxTableCommandHandler {
	var f commands.TariffUoWFactory = FuncTariffUoWFactory(func() commands.TariffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateTaxTableCommandHandler(f)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReturnedOrdersQueryHandler() queries.GetReturnedOrdersQueryHandler {
	return queries.NewGetReturnedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateQuoteOrderQueryHandler() queries.QuoteOrderQueryHandler {
	return queries.NewQuoteOrderQueryHandler(c.gormDB, services.NewPriceCalculator())
}

func (c *CompositionRoot) CreateNotificationDispatcher() ports.NotificationDispatcher {
	return c.dispatcher
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(&c.uowFactory, c.dispatcher, c.configs.ReturnReminderSchedule, c.logger)
}

func (c *CompositionRoot) transitionPolicy() order.TransitionPolicy {
	if strings.EqualFold(c.configs.OrderTransitionPolicy, "lax") {
		return order.LaxTransitions
	}
	return order.StrictTransitions
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncTariffUoWFactory func() commands.TariffUoW

func (f FuncTariffUoWFactory) Create() commands.TariffUoW {
	return f()
}

type FuncOrderProductUoWFactory func() commands.OrderProductUoW

func (f FuncOrderProductUoWFactory) Create() commands.OrderProductUoW {
	return f()
}
