package models

import "time"

// Event is a trade-show appearance. Date is a human-readable label such as
// "September 2025"; the admin form round-trips it to a YYYY-MM month value
// on a best-effort basis.
type Event struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Date        string    `gorm:"not null" json:"date"`
	Location    string    `gorm:"not null" json:"location"`
	Description string    `gorm:"not null" json:"description"`
	Link        string    `json:"link"`
	PDFURL      string    `json:"pdf_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
