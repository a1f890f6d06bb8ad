// Package http exposes the delivery engine over an echo HTTP API.
package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/chat"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

const courierIDContextKey = "courierID"

// Server coordinates between HTTP handlers and application use cases.
// Courier-facing routes authenticate with a bearer token carrying the
// courier's id; the assignment hook and the registry write path do not.
type Server struct {
	// Command handlers
	assignOrderHandler           commands.AssignOrderCommandHandler
	acceptOrderHandler           commands.AcceptOrderCommandHandler
	markPickedUpHandler          commands.MarkPickedUpCommandHandler
	completeOrderHandler         commands.CompleteOrderCommandHandler
	postChatMessageHandler       commands.PostChatMessageCommandHandler
	registerCourierHandler       commands.RegisterCourierCommandHandler
	updateCourierLocationHandler commands.UpdateCourierLocationCommandHandler

	// Query handlers
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler
	getAssignedOrdersHandler  queries.GetAssignedOrdersQueryHandler
	getChatMessagesHandler    queries.GetChatMessagesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	assignOrderHandler commands.AssignOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	markPickedUpHandler commands.MarkPickedUpCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	postChatMessageHandler commands.PostChatMessageCommandHandler,
	registerCourierHandler commands.RegisterCourierCommandHandler,
	updateCourierLocationHandler commands.UpdateCourierLocationCommandHandler,
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler,
	getAssignedOrdersHandler queries.GetAssignedOrdersQueryHandler,
	getChatMessagesHandler queries.GetChatMessagesQueryHandler,
) *Server {
	return &Server{
		assignOrderHandler:           assignOrderHandler,
		acceptOrderHandler:           acceptOrderHandler,
		markPickedUpHandler:          markPickedUpHandler,
		completeOrderHandler:         completeOrderHandler,
		postChatMessageHandler:       postChatMessageHandler,
		registerCourierHandler:       registerCourierHandler,
		updateCourierLocationHandler: updateCourierLocationHandler,
		getAvailableOrdersHandler:    getAvailableOrdersHandler,
		getAssignedOrdersHandler:     getAssignedOrdersHandler,
		getChatMessagesHandler:       getChatMessagesHandler,
	}
}

// requestValidator adapts go-playground/validator to echo's Validator
// interface.
type requestValidator struct {
	validate *validator.Validate
}

func (v requestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// RegisterRoutes wires every route and the request validator into e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = requestValidator{validate: validator.New()}

	e.GET("/health", s.Health)
	e.POST("/delivery/assign", s.AssignOrder)
	e.POST("/couriers", s.RegisterCourier)
	e.GET("/chat/:orderId", s.GetChatMessages)
	e.POST("/chat/send", s.PostChatMessage)

	authed := e.Group("", s.courierAuth)
	authed.GET("/delivery/orders", s.GetAvailableOrders)
	authed.GET("/delivery/assigned", s.GetAssignedOrders)
	authed.POST("/delivery/orders/:orderId/accept", s.AcceptOrder)
	authed.PATCH("/delivery/:orderId/pickup", s.MarkPickedUp)
	authed.PATCH("/delivery/:orderId/complete", s.CompleteOrder)
	authed.PATCH("/couriers/location", s.UpdateCourierLocation)
}

// courierAuth resolves the bearer token to a courier id. The token is the
// courier's UUID issued at registration.
func (s *Server) courierAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "Missing bearer token",
			})
		}

		courierID, err := kernel.UUIDFromString(token)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "Invalid bearer token",
			})
		}

		ctx.Set(courierIDContextKey, courierID)
		return next(ctx)
	}
}

func courierIDFromContext(ctx echo.Context) kernel.UUID {
	courierID, _ := ctx.Get(courierIDContextKey).(kernel.UUID)
	return courierID
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// AssignOrder handles POST /delivery/assign - the paid-order hook that
// creates a delivery record and offers it to nearby couriers.
func (s *Server) AssignOrder(ctx echo.Context) error {
	var request AssignOrderRequest
	if err := bindAndValidate(ctx, &request); err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, request.Address)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	result, err := s.assignOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AssignOrderResponse{
		Order:            orderToResponse(result.AssignedOrder),
		NotifiedCouriers: result.NotifiedCouriers,
	})
}

// GetAvailableOrders handles GET /delivery/orders - the courier's feed of
// pending orders within matching range.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	query, err := queries.NewGetAvailableOrdersQuery(courierIDFromContext(ctx))
	if err != nil {
		return badRequest(ctx, "Invalid courier id: "+err.Error())
	}

	rows, err := s.getAvailableOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, availableOrdersToResponse(rows))
}

// GetAssignedOrders handles GET /delivery/assigned - the courier's current
// workload.
func (s *Server) GetAssignedOrders(ctx echo.Context) error {
	query, err := queries.NewGetAssignedOrdersQuery(courierIDFromContext(ctx))
	if err != nil {
		return badRequest(ctx, "Invalid courier id: "+err.Error())
	}

	rows, err := s.getAssignedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, assignedOrdersToResponse(rows))
}

// AcceptOrder handles POST /delivery/orders/:orderId/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	assignedOrderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewAcceptOrderCommand(assignedOrderID, courierIDFromContext(ctx))
	if err != nil {
		return badRequest(ctx, "Invalid accept data: "+err.Error())
	}

	accepted, err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderActionResponse{
		Message: "Order accepted",
		Order:   orderToResponse(accepted),
	})
}

// MarkPickedUp handles PATCH /delivery/:orderId/pickup.
func (s *Server) MarkPickedUp(ctx echo.Context) error {
	assignedOrderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewMarkPickedUpCommand(assignedOrderID, courierIDFromContext(ctx))
	if err != nil {
		return badRequest(ctx, "Invalid pickup data: "+err.Error())
	}

	pickedUp, err := s.markPickedUpHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderActionResponse{
		Message: "Order picked up",
		Order:   orderToResponse(pickedUp),
	})
}

// CompleteOrder handles PATCH /delivery/:orderId/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	assignedOrderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCompleteOrderCommand(assignedOrderID, courierIDFromContext(ctx))
	if err != nil {
		return badRequest(ctx, "Invalid completion data: "+err.Error())
	}

	completed, err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderActionResponse{
		Message: "Order delivered",
		Order:   orderToResponse(completed),
	})
}

// GetChatMessages handles GET /chat/:orderId - full conversation replay.
func (s *Server) GetChatMessages(ctx echo.Context) error {
	assignedOrderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetChatMessagesQuery(assignedOrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	rows, err := s.getChatMessagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, chatMessagesToResponse(rows))
}

// PostChatMessage handles POST /chat/send.
func (s *Server) PostChatMessage(ctx echo.Context) error {
	var request PostChatMessageRequest
	if err := bindAndValidate(ctx, &request); err != nil {
		return err
	}

	assignedOrderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	sender, err := chat.SenderFromString(request.Sender)
	if err != nil {
		return badRequest(ctx, "Invalid sender: "+err.Error())
	}

	cmd, err := commands.NewPostChatMessageCommand(assignedOrderID, sender, request.Message)
	if err != nil {
		return badRequest(ctx, "Invalid message data: "+err.Error())
	}

	message, err := s.postChatMessageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, chatMessageToResponse(message))
}

// RegisterCourier handles POST /couriers - the registry write path.
func (s *Server) RegisterCourier(ctx echo.Context) error {
	var request RegisterCourierRequest
	if err := bindAndValidate(ctx, &request); err != nil {
		return err
	}

	location, err := kernel.NewGeoPoint(request.Location.Lat, request.Location.Lng)
	if err != nil {
		return badRequest(ctx, "Invalid location: "+err.Error())
	}

	cmd, err := commands.NewRegisterCourierCommand(
		request.Name, request.Phone, request.Email, request.ChatID, location)
	if err != nil {
		return badRequest(ctx, "Invalid courier data: "+err.Error())
	}

	registered, err := s.registerCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, courierToResponse(registered))
}

// UpdateCourierLocation handles PATCH /couriers/location - the courier
// client's own position and availability report.
func (s *Server) UpdateCourierLocation(ctx echo.Context) error {
	var request UpdateCourierLocationRequest
	if err := bindAndValidate(ctx, &request); err != nil {
		return err
	}

	location, err := kernel.NewGeoPoint(request.Location.Lat, request.Location.Lng)
	if err != nil {
		return badRequest(ctx, "Invalid location: "+err.Error())
	}

	cmd, err := commands.NewUpdateCourierLocationCommand(
		courierIDFromContext(ctx), location, request.IsAvailable)
	if err != nil {
		return badRequest(ctx, "Invalid location data: "+err.Error())
	}

	if _, err := s.updateCourierLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func bindAndValidate(ctx echo.Context, request any) error {
	if err := ctx.Bind(request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(request); err != nil {
		return badRequest(ctx, "Invalid request body: "+err.Error())
	}
	return nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// renderError maps use-case failures onto the error-kind status contract:
// unknown ids are 404, losing the accept race or an impossible transition is
// 409, acting on another courier's order is 403 and an unresolvable address
// is 422.
func (s *Server) renderError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrOrderAlreadyTaken),
		errors.Is(err, order.ErrInvalidStatusTransition),
		errors.Is(err, commands.ErrOrderAlreadyAssigned):
		status = http.StatusConflict
	case errors.Is(err, order.ErrNotOrderCourier):
		status = http.StatusForbidden
	case errors.Is(err, ports.ErrAddressNotResolved):
		status = http.StatusUnprocessableEntity
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
