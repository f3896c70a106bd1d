package cmd

import (
	"log/slog"
	"time"

	pizzariahttp "pizzaria/internal/adapters/in/http"
	"pizzaria/internal/adapters/out/postgres"
	"pizzaria/internal/core/application/usecases/commands"
	"pizzaria/internal/core/application/usecases/queries"
	"pizzaria/internal/core/domain/services"
	"pizzaria/internal/core/ports"
	"pizzaria/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    *services.PriceCatalog
	policy     services.AccessPolicy
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    services.NewDefaultPriceCatalog(),
		policy:     services.NewAccessPolicy(),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.catalog, c.policy)
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	return commands.NewAddItemCommandHandler(c.orderUoWFactory(), c.catalog, c.policy)
}

func (c *CompositionRoot) CreateRemoveItemCommandHandler() commands.RemoveItemCommandHandler {
	return commands.NewRemoveItemCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateFinalizeOrderCommandHandler() commands.FinalizeOrderCommandHandler {
	return commands.NewFinalizeOrderCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateReconcileOrderTotalsCommandHandler() commands.ReconcileOrderTotalsCommandHandler {
	return commands.NewReconcileOrderTotalsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB, c.policy)
}

// CreateUserRepository returns a repository bound to the main database
// connection, used for credential lookups outside any transaction.
func (c *CompositionRoot) CreateUserRepository() ports.UserRepository {
	return c.uowFactory.Create().UserRepository()
}

// CreateHTTPServer wires every handler into the API server.
func (c *CompositionRoot) CreateHTTPServer(tokenTTL time.Duration) *pizzariahttp.Server {
	return pizzariahttp.NewServer(
		c.CreateRegisterUserCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateAddItemCommandHandler(),
		c.CreateRemoveItemCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateFinalizeOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateUserRepository(),
		[]byte(c.config.JWTSecret),
		tokenTTL,
	)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReconcileOrderTotalsCommandHandler(), logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
