package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/colemarcuccilli/IBEwebsite/models"
)

// DefaultResendEndpoint is the Resend send-email API.
const DefaultResendEndpoint = "https://api.resend.com/emails"

// Mailer delivers the internal notification for a new lead.
type Mailer interface {
	SendContactNotification(ctx context.Context, contact models.Contact) error
}

// ResendMailer sends the notification through Resend's HTTP API with reply-to
// set to the submitter, so the sales team can answer the lead directly.
type ResendMailer struct {
	APIKey     string
	From       string
	Recipients []string
	Endpoint   string
	Client     *http.Client
}

func NewResendMailer(apiKey, from string, recipients []string) *ResendMailer {
	return &ResendMailer{
		APIKey:     apiKey,
		From:       from,
		Recipients: recipients,
		Endpoint:   DefaultResendEndpoint,
		Client:     &http.Client{Timeout: 10 * time.Second},
	}
}

var contactEmailTmpl = template.Must(template.New("contact").Parse(`<h2>New Quote Request</h2>
<table cellpadding="6">
  <tr><td><strong>Name</strong></td><td>{{.Name}}</td></tr>
  <tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
  {{if .Company}}<tr><td><strong>Company</strong></td><td>{{.Company}}</td></tr>{{end}}
  {{if .Phone}}<tr><td><strong>Phone</strong></td><td>{{.Phone}}</td></tr>{{end}}
  {{if .ProductInterest}}<tr><td><strong>Product Interest</strong></td><td>{{.ProductInterest}}</td></tr>{{end}}
  {{if .Products}}<tr><td><strong>Quote Cart</strong></td><td>{{.Products}}</td></tr>{{end}}
  {{if .Message}}<tr><td><strong>Message</strong></td><td>{{.Message}}</td></tr>{{end}}
</table>`))

func (m *ResendMailer) SendContactNotification(ctx context.Context, contact models.Contact) error {
	var html bytes.Buffer
	if err := contactEmailTmpl.Execute(&html, contact); err != nil {
		return err
	}

	payload, err := json.Marshal(map[string]interface{}{
		"from":     m.From,
		"to":       m.Recipients,
		"reply_to": contact.Email,
		"subject":  fmt.Sprintf("New quote request from %s", contact.Name),
		"html":     html.String(),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.APIKey)

	res, err := m.Client.Do(req)
	if err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		return fmt.Errorf("email provider returned %d", res.StatusCode)
	}
	return nil
}
