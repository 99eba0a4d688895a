package models

import "time"

// Product is one catalog entry. The ID is a URL-safe slug derived from the
// name at creation time and never changes afterwards; quote-cart items and
// categories reference it by that slug.
type Product struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	ImageURL    string `json:"image_url"`
	PDFURL      string `json:"pdf_url"`
	Category    string `gorm:"index;not null" json:"category"`
	SortOrder   int    `gorm:"default:0" json:"sort_order"`
	Archived    bool   `gorm:"default:false" json:"archived"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
