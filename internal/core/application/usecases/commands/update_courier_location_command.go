package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateCourierLocationCommandIsNotConstructed = errors.New(
	"UpdateCourierLocationCommand must be created via NewUpdateCourierLocationCommand constructor",
)

// UpdateCourierLocationCommand moves a courier to a new position and updates
// their availability for matching. Couriers report this periodically from the
// field; the latest report wins.
type UpdateCourierLocationCommand struct { //nolint:recvcheck //using for validation
	courierID   kernel.UUID
	location    kernel.GeoPoint
	isAvailable bool

	guard guard.ConstructorGuard
}

// NewUpdateCourierLocationCommand creates a command to record a courier's
// position report. Validates the courier ID and the location.
func NewUpdateCourierLocationCommand(courierID kernel.UUID, location kernel.GeoPoint, isAvailable bool) (UpdateCourierLocationCommand, error) {
	updateCommand := UpdateCourierLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setCourierID(courierID),
		updateCommand.setLocation(location),
	); err != nil {
		return UpdateCourierLocationCommand{}, err
	}

	updateCommand.isAvailable = isAvailable
	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateCourierLocationCommandIsNotConstructed if validation fails.
func (c UpdateCourierLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierLocationCommandIsNotConstructed)
}

// CourierID returns the reporting courier's identifier.
func (c UpdateCourierLocationCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Location returns the reported position.
func (c UpdateCourierLocationCommand) Location() kernel.GeoPoint {
	return c.location
}

// IsAvailable reports whether the courier wants to receive offers.
func (c UpdateCourierLocationCommand) IsAvailable() bool {
	return c.isAvailable
}

func (c *UpdateCourierLocationCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *UpdateCourierLocationCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
