package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Provider delivers one email. Delivery is best effort; callers record the
// outcome but never fail the triggering request on a provider error.
type Provider interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

type ProviderConfig struct {
	Kind           string
	ResendAPIKey   string
	SendgridAPIKey string
	From           string
}

func NewProvider(cfg ProviderConfig) Provider {
	from := cfg.From
	if from == "" {
		from = "noreply@research-hub.local"
	}
	switch cfg.Kind {
	case "", "console":
		return consoleProvider{}
	case "resend":
		if cfg.ResendAPIKey == "" {
			log.Printf("mail provider resend selected without API key, falling back to console")
			return consoleProvider{}
		}
		return resendProvider{apiKey: cfg.ResendAPIKey, from: from}
	case "sendgrid":
		if cfg.SendgridAPIKey == "" {
			log.Printf("mail provider sendgrid selected without API key, falling back to console")
			return consoleProvider{}
		}
		return sendgridProvider{apiKey: cfg.SendgridAPIKey, from: from}
	default:
		log.Printf("unknown mail provider %q, falling back to console", cfg.Kind)
		return consoleProvider{}
	}
}

type consoleProvider struct{}

func (consoleProvider) Send(ctx context.Context, recipient, subject, body string) error {
	log.Printf("mail to=%s subject=%q body=%q", recipient, subject, body)
	return nil
}

type resendProvider struct {
	apiKey string
	from   string
}

func (p resendProvider) Send(ctx context.Context, recipient, subject, body string) error {
	payload := map[string]interface{}{
		"from":    p.from,
		"to":      []string{recipient},
		"subject": subject,
		"text":    body,
	}
	return postJSON(ctx, "https://api.resend.com/emails", "Bearer "+p.apiKey, payload)
}

type sendgridProvider struct {
	apiKey string
	from   string
}

func (p sendgridProvider) Send(ctx context.Context, recipient, subject, body string) error {
	payload := map[string]interface{}{
		"personalizations": []map[string]interface{}{
			{"to": []map[string]string{{"email": recipient}}},
		},
		"from":    map[string]string{"email": p.from},
		"subject": subject,
		"content": []map[string]string{{"type": "text/plain", "value": body}},
	}
	return postJSON(ctx, "https://api.sendgrid.com/v3/mail/send", "Bearer "+p.apiKey, payload)
}

func postJSON(ctx context.Context, url, authorization string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authorization)
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail provider rejected request: %s", resp.Status)
	}
	return nil
}
