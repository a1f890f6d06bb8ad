// Package courierrepo provides data transfer objects and mapping functions
// for courier persistence. It implements the repository pattern for the
// courier domain aggregate, handling the conversion between domain entities
// and database representations.
package courierrepo

import (
	"github.com/google/uuid"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
)

// CourierDTO represents the database structure for persisting courier
// aggregates. The availability flag is indexed because every matching pass
// filters on it.
type CourierDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name        string      `gorm:"type:varchar(255);not null"`
	Phone       string      `gorm:"type:varchar(32);not null"`
	Email       string      `gorm:"type:varchar(255)"`
	ChatID      int64       `gorm:"type:bigint"`
	Location    GeoPointDTO `gorm:"embedded;embeddedPrefix:location_"`
	IsAvailable bool        `gorm:"index"`
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// GeoPointDTO represents the embedded location coordinates within the
// couriers table.
type GeoPointDTO struct {
	Lat float64 `gorm:"type:double precision"`
	Lng float64 `gorm:"type:double precision"`
}

// fromDomain converts a courier domain aggregate to its database
// representation.
func fromDomain(aCourier *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:     aCourier.ID().Bytes(),
		Name:   aCourier.Name(),
		Phone:  aCourier.Phone(),
		Email:  aCourier.Email(),
		ChatID: aCourier.ChatID(),
		Location: GeoPointDTO{
			Lat: aCourier.Location().Lat(),
			Lng: aCourier.Location().Lng(),
		},
		IsAvailable: aCourier.IsAvailable(),
	}
}

// toDomain converts a database DTO to a courier domain aggregate using
// RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Lat, dto.Location.Lng)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.Name, dto.Phone, dto.Email, dto.ChatID, location, dto.IsAvailable)
}
