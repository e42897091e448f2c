package models

// User represents one tracked participant.
//
// Users are created the first time a message arrives from an unknown author
// and are never deleted. The platform-assigned ID is the only stable key;
// Name is a denormalized copy of the author's display name, refreshed on
// every upsert (last write wins). Name must never be used as a storage key.
type User struct {
	// ID is the chat platform's stable identifier for the author.
	ID string

	// Name is the author's display name at the time of the last upsert.
	Name string

	// GoalOz and GoalTime are reserved. The schema carries the columns and
	// the store can write them, but no command reads or exposes them.
	GoalOz   *float64
	GoalTime *string
}
