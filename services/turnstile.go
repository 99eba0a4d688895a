package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTurnstileEndpoint is Cloudflare's siteverify API.
const DefaultTurnstileEndpoint = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// ErrVerificationFailed means the challenge service rejected the visitor's
// token. The submission must be dropped with no side effects.
var ErrVerificationFailed = errors.New("turnstile verification failed")

// Verifier checks a visitor-supplied bot-challenge token.
type Verifier interface {
	Verify(ctx context.Context, token string) error
}

// TurnstileVerifier forwards the token and the shared secret to Cloudflare
// and trusts the boolean success field in the response.
type TurnstileVerifier struct {
	Secret   string
	Endpoint string
	Client   *http.Client
}

func NewTurnstileVerifier(secret string) *TurnstileVerifier {
	return &TurnstileVerifier{
		Secret:   secret,
		Endpoint: DefaultTurnstileEndpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *TurnstileVerifier) Verify(ctx context.Context, token string) error {
	form := url.Values{
		"secret":   {v.Secret},
		"response": {token},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := v.Client.Do(req)
	if err != nil {
		return fmt.Errorf("turnstile request failed: %w", err)
	}
	defer res.Body.Close()

	var body struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return fmt.Errorf("turnstile response unreadable: %w", err)
	}

	if !body.Success {
		return ErrVerificationFailed
	}
	return nil
}
