// Package order contains the AssignedOrder aggregate: the delivery-lifecycle
// record of a commerce order, distinct from the commerce order itself.
//
// The aggregate enforces the monotonic state machine
// pending → accepted → pickedUp → delivered, binds at most one courier for the
// record's lifetime, and keeps the courier reference consistent with the
// status at every step. Accepting is the only contended operation; the domain
// validates the transition and the persistence layer guards the race with an
// atomic conditional update.
package order
