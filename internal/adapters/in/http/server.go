// Package http is the echo adapter exposing the order lifecycle to customers and
// kitchen staff. The caller's identity comes from trusted headers, see IdentityResolver.
package http

import (
	"log/slog"
	"net/http"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const customerContextKey = "customer"

// Server handles HTTP requests by delegating to application use cases.
type Server struct {
	// Command handlers
	addItemHandler  commands.AddItemCommandHandler
	confirmHandler  commands.ConfirmOrderCommandHandler
	pickNextHandler commands.PickNextOrderCommandHandler
	completeHandler commands.CompleteOrderCommandHandler

	// Query handlers
	currentPreparationHandler queries.GetCurrentPreparationQueryHandler
	placedOrdersHandler       queries.GetPlacedOrdersQueryHandler
	kitchenOverviewHandler    queries.GetKitchenOverviewQueryHandler

	identity IdentityResolver
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addItemHandler commands.AddItemCommandHandler,
	confirmHandler commands.ConfirmOrderCommandHandler,
	pickNextHandler commands.PickNextOrderCommandHandler,
	completeHandler commands.CompleteOrderCommandHandler,
	currentPreparationHandler queries.GetCurrentPreparationQueryHandler,
	placedOrdersHandler queries.GetPlacedOrdersQueryHandler,
	kitchenOverviewHandler queries.GetKitchenOverviewQueryHandler,
	identity IdentityResolver,
	logger *slog.Logger,
) *Server {
	return &Server{
		addItemHandler:            addItemHandler,
		confirmHandler:            confirmHandler,
		pickNextHandler:           pickNextHandler,
		completeHandler:           completeHandler,
		currentPreparationHandler: currentPreparationHandler,
		placedOrdersHandler:       placedOrdersHandler,
		kitchenOverviewHandler:    kitchenOverviewHandler,
		identity:                  identity,
		logger:                    logger,
	}
}

// Register mounts the API routes on e.
func (s *Server) Register(e *echo.Echo) {
	api := e.Group("/api/v1", s.authenticate)

	api.POST("/orders/draft/items", s.AddItem)
	api.POST("/orders/draft/confirm", s.ConfirmOrder)
	api.GET("/kitchen/queue", s.GetQueue)

	kitchen := s.requireRole(customer.RolePizzaMaker)
	api.POST("/kitchen/pick", s.PickNextOrder, kitchen)
	api.POST("/orders/:id/complete", s.CompleteOrder, kitchen)
	api.GET("/kitchen/current", s.GetCurrentPreparation, kitchen)
	api.GET("/kitchen/overview", s.GetKitchenOverview, kitchen)
}

// AddItem handles POST /api/v1/orders/draft/items - adds a pizza to the caller's draft.
func (s *Server) AddItem(ctx echo.Context) error {
	var req AddItemRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	item, err := toLineItem(req)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddItemCommand(caller(ctx), item)
	if err != nil {
		return s.fail(ctx, err)
	}

	draft, err := s.addItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(draft))
}

// ConfirmOrder handles POST /api/v1/orders/draft/confirm - places the caller's draft.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	cmd, err := commands.NewConfirmOrderCommand(caller(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}

	placed, err := s.confirmHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(placed))
}

// PickNextOrder handles POST /api/v1/kitchen/pick - starts the oldest placed order.
// Responds 204 when the queue is empty.
func (s *Server) PickNextOrder(ctx echo.Context) error {
	cmd, err := commands.NewPickNextOrderCommand(caller(ctx).ID())
	if err != nil {
		return s.fail(ctx, err)
	}

	started, err := s.pickNextHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	if started == nil {
		return ctx.NoContent(http.StatusNoContent)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(started))
}

// CompleteOrder handles POST /api/v1/orders/:id/complete - prices and serves an order.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	receipt, err := s.completeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toReceiptResponse(receipt))
}

// GetCurrentPreparation handles GET /api/v1/kitchen/current - the caller's order in progress.
func (s *Server) GetCurrentPreparation(ctx echo.Context) error {
	query, err := queries.NewGetCurrentPreparationQuery(caller(ctx).ID())
	if err != nil {
		return s.fail(ctx, err)
	}

	current, err := s.currentPreparationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPreparationResponse(current))
}

// GetQueue handles GET /api/v1/kitchen/queue - placed orders in pick order.
func (s *Server) GetQueue(ctx echo.Context) error {
	queue, err := s.placedOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetPlacedOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toQueueResponse(queue))
}

// GetKitchenOverview handles GET /api/v1/kitchen/overview - who is preparing what.
func (s *Server) GetKitchenOverview(ctx echo.Context) error {
	overview, err := s.kitchenOverviewHandler.Handle(ctx.Request().Context(), queries.NewGetKitchenOverviewQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOverviewResponse(overview))
}

func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		c, err := s.identity.Resolve(ctx.Request().Header)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: err.Error(),
			})
		}
		ctx.Set(customerContextKey, c)
		return next(ctx)
	}
}

func (s *Server) requireRole(role customer.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !caller(ctx).HasRole(role) {
				return ctx.JSON(http.StatusForbidden, ErrorResponse{
					Code:    http.StatusForbidden,
					Message: string(role) + " role required",
				})
			}
			return next(ctx)
		}
	}
}

// caller returns the customer stored by authenticate.
func caller(ctx echo.Context) customer.Customer {
	c, _ := ctx.Get(customerContextKey).(customer.Customer)
	return c
}

func toLineItem(req AddItemRequest) (order.LineItem, error) {
	if req.PizzaID == "" {
		return order.LineItem{}, errs.NewValueIsRequiredError("pizza_id")
	}
	pizzaID, err := kernel.UUIDFromString(req.PizzaID)
	if err != nil {
		return order.LineItem{}, err
	}

	if req.Price == "" {
		return order.LineItem{}, errs.NewValueIsRequiredError("price")
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return order.LineItem{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}

	return order.NewLineItem(pizzaID, req.Name, price, req.Toppings...)
}
