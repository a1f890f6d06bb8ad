// Package kernel provides core domain primitives shared across the dispatch
// engine's domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - GeoPoint: a geographic coordinate pair with haversine distance and
//     radius matching
//
// These primitives are immutable, thread-safe, and enforce their invariants at
// construction time; zero values fail validation.
package kernel
