// Package common contains shared sentinel errors used across vouchbot
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors, caught at the handler boundary.
	ErrSelfVouch        = errors.New("self vouch rejected")
	ErrPermissionDenied = errors.New("permission denied")

	// Selection session outcomes that abort a vouch.
	ErrSelectionTimedOut = errors.New("selection timed out")

	// Store errors. Not retried; the handler reports a generic failure
	// while the wrapped detail goes to the operator log.
	ErrStore = errors.New("store failure")

	// Non-fatal degradations.
	ErrUserResolution = errors.New("user resolution failed")
	ErrLogMirror      = errors.New("log mirror failed")

	// Fatal at startup only.
	ErrConfigMissing = errors.New("missing or invalid configuration")
)
