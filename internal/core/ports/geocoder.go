package ports

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
)

// ErrAddressNotResolved is returned when the geocoding provider yields no
// result for an address or coordinate pair. For order assignment this failure
// is fatal: no delivery record is created and the caller decides whether to
// re-invoke later.
var ErrAddressNotResolved = errors.New("address could not be resolved")

// Geocoder resolves free-text addresses and coordinates into each other,
// isolating the engine from any specific mapping provider. Both calls hit an
// external service and must honor ctx cancellation; implementations carry a
// request timeout of a few seconds so a slow provider cannot stall order
// placement.
type Geocoder interface {
	// Forward resolves a free-text address to coordinates.
	// Returns ErrAddressNotResolved when the provider finds nothing.
	Forward(ctx context.Context, address string) (kernel.GeoPoint, error)

	// Reverse resolves coordinates to a human-readable address.
	// Returns ErrAddressNotResolved when the provider finds nothing.
	Reverse(ctx context.Context, point kernel.GeoPoint) (string, error)
}
