package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colemarcuccilli/IBEwebsite/models"
)

func TestResendMailerPayload(t *testing.T) {
	var got map[string]interface{}
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := NewResendMailer("key-123", "noreply@ibequipment.com", []string{"sales@ibequipment.com"})
	m.Endpoint = srv.URL

	contact := models.Contact{
		Name:     "Cole",
		Email:    "cole@example.com",
		Products: "Bread Racks (x2)",
	}
	require.NoError(t, m.SendContactNotification(context.Background(), contact))

	assert.Equal(t, "Bearer key-123", auth)
	assert.Equal(t, "noreply@ibequipment.com", got["from"])
	assert.Equal(t, "cole@example.com", got["reply_to"])
	assert.Equal(t, "New quote request from Cole", got["subject"])

	html, _ := got["html"].(string)
	assert.Contains(t, html, "Bread Racks (x2)")
	assert.NotContains(t, html, "Company", "empty fields stay out of the template")
}

func TestResendMailerErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	m := NewResendMailer("key", "from@x.com", []string{"to@x.com"})
	m.Endpoint = srv.URL

	err := m.SendContactNotification(context.Background(), models.Contact{Name: "A", Email: "a@x.com"})
	assert.Error(t, err)
}

func TestSheetsForwarderPayload(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	f := NewSheetsForwarder(srv.URL)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f.Now = func() time.Time { return fixed }

	sub := ContactSubmission{
		Name:     "Cole",
		Email:    "cole@example.com",
		Products: "Widget (x2), Gadget (x1)",
	}
	require.NoError(t, f.Forward(context.Background(), sub))

	assert.Equal(t, "Cole", got["name"])
	assert.Equal(t, "Widget (x2), Gadget (x1)", got["products"])
	assert.Equal(t, "2026-03-01T12:00:00Z", got["timestamp"])
}

func TestSheetsForwarderErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := NewSheetsForwarder(srv.URL)
	assert.Error(t, f.Forward(context.Background(), ContactSubmission{Name: "A", Email: "a@x.com"}))
}
