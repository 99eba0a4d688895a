package models

import "time"

// QuoteCart is the durable slot for one visitor's in-progress quote.
// Payload is the JSON-serialized item list; one row per visitor cookie.
type QuoteCart struct {
	VisitorID string    `gorm:"primaryKey" json:"visitor_id"`
	Payload   string    `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
