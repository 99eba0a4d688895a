package models

import "time"

// SeedMarker records that a collection's built-in defaults were offered once.
// The marker, not the collection's row count, is what prevents re-seeding: a
// collection an admin empties on purpose stays empty across restarts.
type SeedMarker struct {
	Collection string    `gorm:"primaryKey" json:"collection"`
	SeededAt   time.Time `gorm:"autoCreateTime" json:"seeded_at"`
}
