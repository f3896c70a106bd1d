// Package http exposes the order and account operations over a REST API.
// It coordinates between HTTP handlers and application use cases: requests
// are bound into commands or queries, and domain errors are translated to
// status codes in one place.
package http

import (
	"net/http"
	"time"

	"pizzaria/internal/core/application/usecases/commands"
	"pizzaria/internal/core/application/usecases/queries"
	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/core/ports"
	"pizzaria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP requests of the API.
type Server struct {
	// Command handlers
	registerUserHandler  commands.RegisterUserCommandHandler
	createOrderHandler   commands.CreateOrderCommandHandler
	addItemHandler       commands.AddItemCommandHandler
	removeItemHandler    commands.RemoveItemCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler
	finalizeOrderHandler commands.FinalizeOrderCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler

	// Login support
	users     ports.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	addItemHandler commands.AddItemCommandHandler,
	removeItemHandler commands.RemoveItemCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	finalizeOrderHandler commands.FinalizeOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	users ports.UserRepository,
	jwtSecret []byte,
	tokenTTL time.Duration,
) *Server {
	return &Server{
		registerUserHandler:  registerUserHandler,
		createOrderHandler:   createOrderHandler,
		addItemHandler:       addItemHandler,
		removeItemHandler:    removeItemHandler,
		cancelOrderHandler:   cancelOrderHandler,
		finalizeOrderHandler: finalizeOrderHandler,
		getOrderHandler:      getOrderHandler,
		listOrdersHandler:    listOrdersHandler,
		users:                users,
		jwtSecret:            jwtSecret,
		tokenTTL:             tokenTTL,
	}
}

// RegisterRoutes mounts all API routes on the echo instance. Auth routes and
// the health probe are public; everything under /orders requires a bearer token.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	auth := e.Group("/auth")
	auth.POST("/criar_conta", s.CreateAccount)
	auth.POST("/login", s.Login)

	orders := e.Group("/orders", BearerAuth(s.jwtSecret))
	orders.POST("/pedido", s.CreateOrder)
	orders.POST("/pedido/adicionar-item/:id", s.AddItem)
	orders.POST("/pedido/remover-item/:id", s.RemoveItem)
	orders.POST("/pedido/cancelar/:id", s.CancelOrder)
	orders.POST("/pedido/finalizar/:id", s.FinalizeOrder)
	orders.GET("/pedido/:id", s.GetOrder)
	orders.GET("/lista", s.ListOrders)
	orders.GET("/listar", s.ListAllOrders)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /orders/pedido - creates a new order with its
// line items. Omitting the owner id creates the order for the caller.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	actor := actorFromContext(ctx)

	ownerID := actor.ID
	if request.UsuarioID != "" {
		parsed, err := kernel.UUIDFromString(request.UsuarioID)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("usuario_id", err))
		}
		ownerID = parsed
	}

	command, err := commands.NewCreateOrderCommand(
		actor,
		kernel.NewUUID(),
		ownerID,
		request.Status,
		orderItemInputsFromRequest(request.Itens),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromAggregate(created))
}

// AddItem handles POST /orders/pedido/adicionar-item/:id - adds units of a
// flavor and size to an open order.
func (s *Server) AddItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var request ItemMutationRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	command, err := commands.NewAddItemCommand(
		actorFromContext(ctx),
		orderID,
		request.Sabor,
		request.Tamanho,
		request.Quantidade,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.addItemHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

// RemoveItem handles POST /orders/pedido/remover-item/:id - removes units of
// a flavor and size from an open order.
func (s *Server) RemoveItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var request ItemMutationRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	command, err := commands.NewRemoveItemCommand(
		actorFromContext(ctx),
		orderID,
		request.Sabor,
		request.Tamanho,
		request.Quantidade,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.removeItemHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RemoveItemResponse{
		Removido: removedItemResponse(result.Removed),
		Pedido:   orderResponseFromAggregate(result.Order),
	})
}

// CancelOrder handles POST /orders/pedido/cancelar/:id - cancels an order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	command, err := commands.NewCancelOrderCommand(actorFromContext(ctx), orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(cancelled))
}

// FinalizeOrder handles POST /orders/pedido/finalizar/:id - finalizes an
// order. Administrators only.
func (s *Server) FinalizeOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	command, err := commands.NewFinalizeOrderCommand(actorFromContext(ctx), orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	finalized, err := s.finalizeOrderHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(finalized))
}

// GetOrder handles GET /orders/pedido/:id - retrieves a single order with items.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	query, err := queries.NewGetOrderQuery(actorFromContext(ctx), orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	model, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromReadModel(model))
}

// ListOrders handles GET /orders/lista - lists the caller's own orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	return s.listOrders(ctx, false)
}

// ListAllOrders handles GET /orders/listar - lists every order in the system.
// Administrators only.
func (s *Server) ListAllOrders(ctx echo.Context) error {
	return s.listOrders(ctx, true)
}

func (s *Server) listOrders(ctx echo.Context, allUsers bool) error {
	query, err := queries.NewListOrdersQuery(actorFromContext(ctx), allUsers)
	if err != nil {
		return respondError(ctx, err)
	}

	models, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, len(models))
	for i, model := range models {
		response[i] = orderResponseFromReadModel(model)
	}

	return ctx.JSON(http.StatusOK, response)
}
