package quote

import (
	"encoding/json"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/colemarcuccilli/IBEwebsite/models"
)

// Store persists one cart per visitor id as a JSON payload. It is the durable
// slot behind the visitor cookie: carts survive reloads and tab closure and go
// away only when the visitor clears them (or the cookie expires).
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Load returns the visitor's cart. A missing row or a payload that fails to
// parse both come back as an empty cart; parse failures are logged, never
// surfaced.
func (s *Store) Load(visitorID string) Cart {
	var row models.QuoteCart
	if err := s.db.First(&row, "visitor_id = ?", visitorID).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("❌ Failed to load quote cart for %s: %v", visitorID, err)
		}
		return Cart{}
	}

	var cart Cart
	if err := json.Unmarshal([]byte(row.Payload), &cart); err != nil {
		log.Printf("❌ Malformed quote cart payload for %s, starting fresh: %v", visitorID, err)
		return Cart{}
	}
	return cart
}

// Save upserts the visitor's cart. Last save wins; two tabs sharing the same
// visitor cookie can race and that is accepted.
func (s *Store) Save(visitorID string, cart Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return err
	}

	row := models.QuoteCart{
		VisitorID: visitorID,
		Payload:   string(payload),
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "visitor_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
}

// Clear drops the visitor's stored cart entirely.
func (s *Store) Clear(visitorID string) error {
	return s.db.Delete(&models.QuoteCart{}, "visitor_id = ?", visitorID).Error
}
