// Package errs provides standardized error types for the dispatch engine.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for message formatting
//   - Unwrap() returning the sentinel, so errors.Is classification works
//
// Domain-specific failures (accept conflicts, ownership violations, invalid
// transitions) are sentinel errors owned by the packages that raise them;
// this package covers the generic validation and lookup failures shared by
// every layer.
package errs
