// Package screens contains the concrete installer screens.
//
// Allowed here:
// - screen implementations embedding the core variant bases
// - screen-local presentation and interaction wiring
//
// Not allowed here:
// - hub layout policy and key registry ownership
// - low-level widget rendering primitives
package screens
