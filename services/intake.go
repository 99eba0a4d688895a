package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/colemarcuccilli/IBEwebsite/models"
)

// ErrVerifierNotConfigured means the server has no challenge secret at all.
// Submissions cannot be accepted in that state.
var ErrVerifierNotConfigured = errors.New("verification service not configured")

// ErrForwardFailed marks a spreadsheet forward failure, so callers can tell
// it apart from a verifier transport failure.
var ErrForwardFailed = errors.New("spreadsheet forward failed")

// ContactSubmission is the raw public form payload.
type ContactSubmission struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Company         string `json:"company"`
	Phone           string `json:"phone"`
	Message         string `json:"message"`
	ProductInterest string `json:"productInterest"`
	Products        string `json:"products"`
}

// ContactStore persists accepted leads.
type ContactStore interface {
	Create(ctx context.Context, contact *models.Contact) error
}

// GormContactStore is the production ContactStore.
type GormContactStore struct {
	DB *gorm.DB
}

func (s *GormContactStore) Create(ctx context.Context, contact *models.Contact) error {
	return s.DB.WithContext(ctx).Create(contact).Error
}

// IntakePipeline runs a contact submission through verify -> persist ->
// notify. Verification failure aborts everything with no side effects.
// Persist and email failures are logged and swallowed: the design prefers a
// delivered lead over strict consistency. The spreadsheet forward is the step
// whose outcome the visitor actually sees.
type IntakePipeline struct {
	Verifier  Verifier
	Store     ContactStore
	Mailer    Mailer               // optional
	Forwarder Forwarder            // optional
	Notify    func(models.Contact) // optional hook, fed by the admin websocket feed
}

// Submit processes one submission and returns the contact record that was
// (or would have been) persisted. token is the visitor's challenge token.
func (p *IntakePipeline) Submit(ctx context.Context, sub ContactSubmission, token string) (models.Contact, error) {
	if p.Verifier == nil {
		return models.Contact{}, ErrVerifierNotConfigured
	}
	if err := p.Verifier.Verify(ctx, token); err != nil {
		return models.Contact{}, err
	}

	contact := models.Contact{
		ID:              uuid.NewString(),
		Name:            sub.Name,
		Email:           sub.Email,
		Company:         sub.Company,
		Phone:           sub.Phone,
		Message:         sub.Message,
		ProductInterest: sub.ProductInterest,
		Products:        sub.Products,
	}

	if p.Store != nil {
		if err := p.Store.Create(ctx, &contact); err != nil {
			log.Printf("❌ Failed to persist contact from %s: %v", sub.Email, err)
		} else if p.Notify != nil {
			p.Notify(contact)
		}
	}

	// Email and spreadsheet are independent channels; neither blocks the
	// other, and only the spreadsheet outcome is reported.
	var wg sync.WaitGroup
	var forwardErr error

	if p.Mailer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := p.Mailer.SendContactNotification(ctx, contact); err != nil {
				log.Printf("❌ Failed to send contact notification email: %v", err)
			}
		}()
	}

	if p.Forwarder != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			forwardErr = p.Forwarder.Forward(ctx, sub)
		}()
	} else {
		log.Printf("📋 Sheet webhook not configured, lead from %s logged only", sub.Email)
	}

	wg.Wait()

	if forwardErr != nil {
		log.Printf("❌ Failed to forward contact to spreadsheet: %v", forwardErr)
		return contact, fmt.Errorf("%w: %w", ErrForwardFailed, forwardErr)
	}
	return contact, nil
}
