package utils

import "github.com/google/uuid"

// GenerateUUIDv7 returns a time-ordered UUID for new records. Rows
// created together stay adjacent in the index even before an admin
// assigns them a sort order.
func GenerateUUIDv7() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		// v7 only fails when the random source does; fall back to v4.
		return uuid.New()
	}
	return id
}
