package http

import (
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/chat"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
)

// Error is the uniform error body for every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Location carries a coordinate pair on the wire.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// AssignOrderRequest is the collaborator hook body: a paid commerce order
// ready for delivery assignment.
type AssignOrderRequest struct {
	OrderID string `json:"orderId" validate:"required,uuid"`
	Address string `json:"address" validate:"required"`
}

// AssignOrderResponse reports the created delivery record and how many
// couriers were offered it.
type AssignOrderResponse struct {
	Order            Order `json:"order"`
	NotifiedCouriers int   `json:"notifiedCouriers"`
}

// Order is the wire form of an assigned order.
type Order struct {
	ID       string   `json:"id"`
	OrderID  string   `json:"orderId"`
	Location Location `json:"location"`
	Status   string   `json:"status"`
	Courier  *string  `json:"courierId,omitempty"`
}

// OrderActionResponse wraps a lifecycle action result.
type OrderActionResponse struct {
	Message string `json:"message"`
	Order   Order  `json:"order"`
}

// AvailableOrder is one entry in a courier's pending-order feed.
type AvailableOrder struct {
	ID         string   `json:"id"`
	OrderID    string   `json:"orderId"`
	Location   Location `json:"location"`
	DistanceKm float64  `json:"distanceKm"`
}

// AssignedOrder is one entry in a courier's current workload.
type AssignedOrder struct {
	ID       string   `json:"id"`
	OrderID  string   `json:"orderId"`
	Location Location `json:"location"`
	Status   string   `json:"status"`
}

// AvailableOrdersResponse lists the orders a courier can accept.
type AvailableOrdersResponse struct {
	Orders []AvailableOrder `json:"orders"`
}

// AssignedOrdersResponse lists a courier's accepted and picked up orders.
type AssignedOrdersResponse struct {
	Orders []AssignedOrder `json:"orders"`
}

// PostChatMessageRequest appends a message to an order conversation.
type PostChatMessageRequest struct {
	OrderID string `json:"orderId" validate:"required,uuid"`
	Sender  string `json:"sender" validate:"required,oneof=customer courier"`
	Message string `json:"message" validate:"required"`
}

// ChatMessage is the wire form of one conversation entry.
type ChatMessage struct {
	ID      string    `json:"id"`
	Sender  string    `json:"sender"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sentAt"`
}

// RegisterCourierRequest is the registry write path body.
type RegisterCourierRequest struct {
	Name     string   `json:"name" validate:"required"`
	Phone    string   `json:"phone" validate:"required"`
	Email    string   `json:"email" validate:"omitempty,email"`
	ChatID   int64    `json:"chatId"`
	Location Location `json:"location"`
}

// RegisterCourierResponse returns the stored courier's identifier.
type RegisterCourierResponse struct {
	ID string `json:"id"`
}

// UpdateCourierLocationRequest is the courier client's own position and
// availability report.
type UpdateCourierLocationRequest struct {
	Location    Location `json:"location"`
	IsAvailable bool     `json:"isAvailable"`
}

func orderToResponse(assignedOrder *order.AssignedOrder) Order {
	response := Order{
		ID:      assignedOrder.ID().String(),
		OrderID: assignedOrder.OrderID().String(),
		Location: Location{
			Lat: assignedOrder.CustomerLocation().Lat(),
			Lng: assignedOrder.CustomerLocation().Lng(),
		},
		Status: assignedOrder.Status().String(),
	}
	if courierID := assignedOrder.Courier(); courierID != nil {
		id := courierID.String()
		response.Courier = &id
	}
	return response
}

func availableOrdersToResponse(rows []queries.GetAvailableOrdersQueryResponse) AvailableOrdersResponse {
	orders := make([]AvailableOrder, len(rows))
	for i, row := range rows {
		orders[i] = AvailableOrder{
			ID:         row.ID.String(),
			OrderID:    row.OrderID.String(),
			Location:   Location{Lat: row.CustomerLocation.Lat(), Lng: row.CustomerLocation.Lng()},
			DistanceKm: row.DistanceKm,
		}
	}
	return AvailableOrdersResponse{Orders: orders}
}

func assignedOrdersToResponse(rows []queries.GetAssignedOrdersQueryResponse) AssignedOrdersResponse {
	orders := make([]AssignedOrder, len(rows))
	for i, row := range rows {
		orders[i] = AssignedOrder{
			ID:       row.ID.String(),
			OrderID:  row.OrderID.String(),
			Location: Location{Lat: row.CustomerLocation.Lat(), Lng: row.CustomerLocation.Lng()},
			Status:   row.Status.String(),
		}
	}
	return AssignedOrdersResponse{Orders: orders}
}

func chatMessagesToResponse(rows []queries.GetChatMessagesQueryResponse) []ChatMessage {
	messages := make([]ChatMessage, len(rows))
	for i, row := range rows {
		messages[i] = ChatMessage{
			ID:      row.ID.String(),
			Sender:  row.Sender.String(),
			Message: row.Text,
			SentAt:  row.SentAt,
		}
	}
	return messages
}

func chatMessageToResponse(message *chat.Message) ChatMessage {
	return ChatMessage{
		ID:      message.ID().String(),
		Sender:  message.Sender().String(),
		Message: message.Text(),
		SentAt:  message.SentAt(),
	}
}

func courierToResponse(registered *courier.Courier) RegisterCourierResponse {
	return RegisterCourierResponse{ID: registered.ID().String()}
}
