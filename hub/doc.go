// Package hub implements the installer's dashboard: a selector grid of the
// screens registered under one hub category, gating of the install on every
// screen reporting completed, and the progress overlay that hosts
// personalization screens while the payload installs.
package hub
