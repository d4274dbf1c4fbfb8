// Package widgets contains low-level rendering primitives shared by the hub
// and standalone presentation code.
package widgets
