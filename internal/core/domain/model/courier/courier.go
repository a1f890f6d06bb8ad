package courier

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a courier without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier constructor")
)

// Courier represents a delivery person able to fulfill orders.
//
// The assignment engine treats couriers as read-only: identity and contact
// details are set at registration, while location and availability are
// mutated only through the courier's own client (UpdateLocation /
// SetAvailability). The matching path never writes courier state.
//
// Contact channels carried for notification fan-out:
//   - phone: voice/SMS contact shown to the customer and used in templates
//   - email: best-effort email channel (may be empty)
//   - chatID: messenger chat identifier for the chat-app channel (0 when the
//     courier has not linked a messenger account)
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the courier's human-readable name
	name string
	// phone is the courier's contact number (required)
	phone string
	// email is the courier's email address (optional)
	email string
	// chatID is the messenger chat identifier (0 when unlinked)
	chatID int64
	// location is the courier's last known position, reported by their client
	location kernel.GeoPoint
	// isAvailable reports readiness to take new orders
	isAvailable bool
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier registers a new courier at the given starting location.
// Couriers start unavailable; their client flips availability once they go on
// shift. Name and phone are required; email and chatID may be empty.
//
// Example:
//
//	location, _ := kernel.NewGeoPoint(6.9300, 79.8600)
//	c, err := courier.NewCourier(kernel.NewUUID(), "Amal", "+94771234567", "amal@example.com", 0, location)
func NewCourier(
	id kernel.UUID,
	name string,
	phone string,
	email string,
	chatID int64,
	location kernel.GeoPoint,
) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
		c.setLocation(location),
	); err != nil {
		return nil, err
	}

	c.email = email
	c.chatID = chatID
	return c, nil
}

// RestoreCourier reconstructs a Courier from persistence, including the
// availability flag that NewCourier always starts as false.
func RestoreCourier(
	id kernel.UUID,
	name string,
	phone string,
	email string,
	chatID int64,
	location kernel.GeoPoint,
	isAvailable bool,
) (*Courier, error) {
	c, err := NewCourier(id, name, phone, email, chatID, location)
	if err != nil {
		return nil, err
	}

	c.isAvailable = isAvailable
	return c, nil
}

// Validate ensures the Courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by identity.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's name.
func (c *Courier) Name() string {
	return c.name
}

// Phone returns the courier's contact number.
func (c *Courier) Phone() string {
	return c.phone
}

// Email returns the courier's email address, possibly empty.
func (c *Courier) Email() string {
	return c.email
}

// ChatID returns the messenger chat identifier, 0 when unlinked.
func (c *Courier) ChatID() int64 {
	return c.chatID
}

// Location returns the courier's last known position.
func (c *Courier) Location() kernel.GeoPoint {
	return c.location
}

// IsAvailable reports whether the courier is ready to take new orders.
func (c *Courier) IsAvailable() bool {
	return c.isAvailable
}

// UpdateLocation records a position report from the courier's client.
func (c *Courier) UpdateLocation(location kernel.GeoPoint) error {
	return c.setLocation(location)
}

// SetAvailability flips the courier's readiness to take new orders.
func (c *Courier) SetAvailability(isAvailable bool) {
	c.isAvailable = isAvailable
}

// setID validates and sets the courier's identifier. Construction only.
func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// setName validates and sets the courier's name. Construction only.
func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

// setPhone validates and sets the courier's phone number. Construction only.
func (c *Courier) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}

func (c *Courier) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
