// Package core contains the installer's screen contracts and orchestration.
//
// Allowed here:
// - screen variant bases (standalone, normal, personalization) and their
//   construction guards
// - the screen registry, flow sequencing and the named worker registry
// - message contracts shared across hubs and screens
//
// Not allowed here:
// - concrete screen implementations
// - low-level widget rendering primitives
package core
