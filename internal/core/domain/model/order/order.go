package order

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
)

var (
	// ErrAssignedOrderIsNotConstructed is returned when an AssignedOrder was not
	// created through NewAssignedOrder or RestoreAssignedOrder.
	ErrAssignedOrderIsNotConstructed = errors.New(
		"AssignedOrder must be created via NewAssignedOrder or RestoreAssignedOrder constructor")

	// ErrOrderAlreadyTaken is returned when a courier tries to accept an order
	// that has already left the pending state. This is the conflict a courier
	// sees after losing the accept race.
	ErrOrderAlreadyTaken = errors.New("order is already taken")

	// ErrInvalidStatusTransition is returned when an operation violates the
	// lifecycle state machine.
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrNotOrderCourier is returned when a courier attempts a transition on an
	// order that belongs to a different courier (or to no courier yet).
	ErrNotOrderCourier = errors.New("order does not belong to this courier")
)

// AssignedOrder is the delivery-lifecycle record of a commerce order. It is
// the aggregate root that tracks an order from pending through acceptance,
// pickup, and delivery.
//
// Invariants:
//   - Linked 1:1 to a commerce order via OrderID, under its own identity
//   - CustomerLocation is immutable once set
//   - A courier reference exists iff the status is past pending
//   - At most one courier for the entire lifetime; no reassignment
//   - Status transitions are monotonic; delivered is terminal
//   - Never deleted; completed orders remain as a historical record
type AssignedOrder struct {
	// id is the unique identifier of the delivery record
	id kernel.UUID

	// orderID links to the commerce order this record tracks
	orderID kernel.UUID

	// courierID is the accepting courier (nil while pending)
	courierID *kernel.UUID

	// customerLocation is the geocoded delivery destination
	customerLocation kernel.GeoPoint

	// status is the current lifecycle state
	status Status

	// isConstructed ensures the aggregate was created via a constructor
	isConstructed bool
}

// NewAssignedOrder creates the delivery record for a freshly placed order.
// The record starts in pending status with no courier.
//
// Parameters:
//   - id: identity of the delivery record (must be a valid UUID)
//   - orderID: the commerce order being tracked (must be a valid UUID)
//   - customerLocation: the geocoded destination (must be constructed)
//
// Example:
//
//	location, _ := kernel.NewGeoPoint(6.9271, 79.8612)
//	assigned, err := order.NewAssignedOrder(kernel.NewUUID(), commerceOrderID, location)
func NewAssignedOrder(id kernel.UUID, orderID kernel.UUID, customerLocation kernel.GeoPoint) (*AssignedOrder, error) {
	assignedOrder := &AssignedOrder{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		assignedOrder.setID(id),
		assignedOrder.setOrderID(orderID),
		assignedOrder.setCustomerLocation(customerLocation),
	); err != nil {
		return nil, err
	}

	return assignedOrder, nil
}

// RestoreAssignedOrder reconstructs an AssignedOrder from persistence.
// Unlike NewAssignedOrder it accepts any lifecycle state, but still enforces
// the courier/status consistency invariant: restored pending orders must not
// carry a courier, and restored non-pending orders must.
func RestoreAssignedOrder(
	id kernel.UUID,
	orderID kernel.UUID,
	customerLocation kernel.GeoPoint,
	status Status,
	courierID *kernel.UUID,
) (*AssignedOrder, error) {
	assignedOrder := &AssignedOrder{
		isConstructed: true,
	}

	if err := errors.Join(
		assignedOrder.setID(id),
		assignedOrder.setOrderID(orderID),
		assignedOrder.setCustomerLocation(customerLocation),
		status.Validate(),
		status.ValidateCanHaveCourier(courierID != nil),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		cID := *courierID
		assignedOrder.courierID = &cID
	}

	assignedOrder.status = status
	return assignedOrder, nil
}

// Validate ensures the aggregate was created through a constructor.
func (o *AssignedOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrAssignedOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two delivery records by identity.
func (o *AssignedOrder) IsEqual(other *AssignedOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the delivery record's unique identifier.
func (o *AssignedOrder) ID() kernel.UUID {
	return o.id
}

// OrderID returns the commerce order this record tracks.
func (o *AssignedOrder) OrderID() kernel.UUID {
	return o.orderID
}

// CustomerLocation returns the geocoded delivery destination.
func (o *AssignedOrder) CustomerLocation() kernel.GeoPoint {
	return o.customerLocation
}

// Status returns the current lifecycle state.
func (o *AssignedOrder) Status() Status {
	return o.status
}

// Courier returns the accepting courier's ID, or nil while pending.
func (o *AssignedOrder) Courier() *kernel.UUID {
	return o.courierID
}

// Accept claims the order for a courier.
//
// Pending is the only state an order can be accepted from; a second accept
// fails with ErrOrderAlreadyTaken. This in-memory transition is backed by an
// atomic conditional update in the repository, so concurrent accepts produce
// at most one winner.
func (o *AssignedOrder) Accept(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// MarkPickedUp records that the owning courier collected the order.
// Fails with ErrNotOrderCourier when called by any other courier and with
// ErrInvalidStatusTransition unless the order is in accepted status.
func (o *AssignedOrder) MarkPickedUp(courierID kernel.UUID) error {
	if err := o.validateOwnership(courierID); err != nil {
		return err
	}

	newStatus, err := o.status.PickUp()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete records delivery to the customer.
//
// Only ownership is a hard precondition: the owning courier may complete from
// accepted or pickedUp status (skipping the pickup step is allowed, matching
// the Status.Complete transition table). Delivered is terminal.
func (o *AssignedOrder) Complete(courierID kernel.UUID) error {
	if err := o.validateOwnership(courierID); err != nil {
		return err
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// validateOwnership checks that the order belongs to the requesting courier.
func (o *AssignedOrder) validateOwnership(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if o.courierID == nil || !o.courierID.IsEqual(courierID) {
		return ErrNotOrderCourier
	}

	return nil
}

// setID validates and sets the record's identifier. Construction only.
func (o *AssignedOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOrderID validates and sets the commerce order link. Construction only.
func (o *AssignedOrder) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	o.orderID = orderID
	return nil
}

// setCustomerLocation validates and sets the destination. Construction only.
func (o *AssignedOrder) setCustomerLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.customerLocation = location
	return nil
}
