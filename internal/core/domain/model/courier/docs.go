// Package courier contains the Courier entity: a delivery person with contact
// channels, a last-known location, and an availability flag.
//
// The assignment engine only reads couriers; location and availability are
// written through the courier's own client. Contact details feed the
// notification fan-out when a nearby order appears.
package courier
