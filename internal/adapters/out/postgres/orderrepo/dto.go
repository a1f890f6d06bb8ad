// Package orderrepo provides data transfer objects and mapping functions for
// assigned order persistence. It implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"github.com/google/uuid"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting assigned order
// aggregates. The commerce order link carries a unique index, which is what
// enforces one delivery record per order at the storage level.
type OrderDTO struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID   `gorm:"type:uuid;uniqueIndex;not null"`
	CourierID *uuid.UUID  `gorm:"type:uuid;index"`
	Location  GeoPointDTO `gorm:"embedded;embeddedPrefix:location_"`
	Status    int         `gorm:"index"`
}

// TableName specifies the database table name for assigned order entities.
func (OrderDTO) TableName() string {
	return "assigned_orders"
}

// GeoPointDTO represents the embedded customer coordinates within the
// assigned orders table.
type GeoPointDTO struct {
	Lat float64 `gorm:"type:double precision"`
	Lng float64 `gorm:"type:double precision"`
}

// fromDomain converts an assigned order aggregate to its database
// representation.
func fromDomain(assignedOrder *order.AssignedOrder) OrderDTO {
	var courierID *uuid.UUID
	if id := assignedOrder.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return OrderDTO{
		ID:        assignedOrder.ID().Bytes(),
		OrderID:   assignedOrder.OrderID().Bytes(),
		CourierID: courierID,
		Location: GeoPointDTO{
			Lat: assignedOrder.CustomerLocation().Lat(),
			Lng: assignedOrder.CustomerLocation().Lng(),
		},
		Status: int(assignedOrder.Status()),
	}
}

// toDomain converts a database DTO to an assigned order aggregate.
// Reconstructs the complete aggregate including status and courier binding
// using RestoreAssignedOrder.
func toDomain(dto OrderDTO) (*order.AssignedOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	location, err := kernel.NewGeoPoint(dto.Location.Lat, dto.Location.Lng)
	if err != nil {
		return nil, err
	}

	return order.RestoreAssignedOrder(id, orderID, location, order.Status(dto.Status), courierID)
}
