package models

import "time"

// Contact is one inbound quote request. Append-only: rows are created by the
// public contact endpoint and only ever read back by the admin dashboard.
// Products holds the formatted quote-cart summary verbatim ("Name (x2), ...").
type Contact struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	Email           string    `gorm:"not null" json:"email"`
	Company         string    `json:"company"`
	Phone           string    `json:"phone"`
	Message         string    `json:"message"`
	ProductInterest string    `json:"product_interest"`
	Products        string    `json:"products"`
	CreatedAt       time.Time `json:"created_at"`
}
