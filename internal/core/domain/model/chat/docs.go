// Package chat contains the per-order message log shared by a customer and
// the courier handling their delivery. Messages are append-only and replayed
// in full on every poll; the log never influences the order state machine.
package chat
