package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrRegisterCourierCommandIsNotConstructed = errors.New(
		"RegisterCourierCommand must be created via NewRegisterCourierCommand constructor",
	)
	ErrCourierNameIsRequired  = errors.New("courier name is required")
	ErrCourierPhoneIsRequired = errors.New("courier phone is required")
)

// RegisterCourierCommand creates a courier profile. A phone number is the one
// mandatory contact channel; email and messenger chat ID are optional extras
// for assignment offers.
type RegisterCourierCommand struct { //nolint:recvcheck //using for validation
	name     string
	phone    string
	email    string
	chatID   int64
	location kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewRegisterCourierCommand creates a command to register a courier.
// Validates that name and phone are present and the location is valid.
func NewRegisterCourierCommand(name, phone, email string, chatID int64, location kernel.GeoPoint) (RegisterCourierCommand, error) {
	registerCommand := RegisterCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setName(name),
		registerCommand.setPhone(phone),
		registerCommand.setLocation(location),
	); err != nil {
		return RegisterCourierCommand{}, err
	}

	registerCommand.email = email
	registerCommand.chatID = chatID
	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterCourierCommandIsNotConstructed if validation fails.
func (c RegisterCourierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCourierCommandIsNotConstructed)
}

// Name returns the courier's display name.
func (c RegisterCourierCommand) Name() string {
	return c.name
}

// Phone returns the courier's phone number.
func (c RegisterCourierCommand) Phone() string {
	return c.phone
}

// Email returns the courier's email address, empty when not provided.
func (c RegisterCourierCommand) Email() string {
	return c.email
}

// ChatID returns the courier's messenger chat ID, zero when not provided.
func (c RegisterCourierCommand) ChatID() int64 {
	return c.chatID
}

// Location returns the courier's starting position.
func (c RegisterCourierCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *RegisterCourierCommand) setName(name string) error {
	if name == "" {
		return ErrCourierNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterCourierCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrCourierPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *RegisterCourierCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
