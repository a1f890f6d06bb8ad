// Package services contains domain services: business logic that spans
// aggregates without belonging to any single one. CourierMatcher pairs a
// pending order with the couriers eligible to be offered it.
package services
