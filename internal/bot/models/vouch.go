// Package models defines the persisted data model for vouchbot.
package models

import "time"

// Vouch is the sole persisted entity: one user endorsing another for a
// specific product with free-text feedback. Records are immutable once
// created; the only destructive operation is bulk deletion by target.
//
// User identifiers are Discord snowflakes, carried as opaque strings.
type Vouch struct {
	// ID is the store-assigned, monotonically increasing identifier.
	// Never reused, even after deletion.
	ID int64

	// TargetUserID is the user being vouched for.
	TargetUserID string

	// AuthorUserID is the user who submitted the vouch.
	// Always differs from TargetUserID (self-vouching is rejected).
	AuthorUserID string

	// Product is one of the catalog identifiers. Stored as free text;
	// the store does not validate it against the catalog.
	Product string

	// Feedback is the caller-supplied message, unbounded length.
	Feedback string

	// CreatedAt is set by the store at insertion time, UTC.
	CreatedAt time.Time
}

// TopEntry is one leaderboard row: a target and the number of vouches
// recorded for them.
type TopEntry struct {
	TargetUserID string
	Count        int64
}
