package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Forwarder mirrors a submission into the sales team's spreadsheet.
type Forwarder interface {
	Forward(ctx context.Context, sub ContactSubmission) error
}

// SheetsForwarder POSTs the raw form fields plus a server-generated timestamp
// to a Google Apps Script webhook that appends a spreadsheet row.
type SheetsForwarder struct {
	URL    string
	Client *http.Client
	Now    func() time.Time
}

func NewSheetsForwarder(url string) *SheetsForwarder {
	return &SheetsForwarder{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
		Now:    time.Now,
	}
}

func (f *SheetsForwarder) Forward(ctx context.Context, sub ContactSubmission) error {
	payload, err := json.Marshal(map[string]string{
		"name":            sub.Name,
		"email":           sub.Email,
		"company":         sub.Company,
		"phone":           sub.Phone,
		"message":         sub.Message,
		"productInterest": sub.ProductInterest,
		"products":        sub.Products,
		"timestamp":       f.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.URL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("sheet forward failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		return fmt.Errorf("sheet webhook returned %d", res.StatusCode)
	}
	return nil
}
