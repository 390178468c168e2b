package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"talent-notify/internal/pkg/config"
	"talent-notify/internal/pkg/errs"
	"talent-notify/internal/usecase/commands"
)

// ResendProvider delivers mail through the Resend HTTP API.
type ResendProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewResendProvider(cfg config.MailConfig) *ResendProvider {
	return &ResendProvider{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendResponse struct {
	ID string `json:"id"`
}

func (p *ResendProvider) Send(ctx context.Context, msg commands.OutboundMessage) (string, error) {
	body, err := json.Marshal(resendRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return "", errs.Wrap(err, "failed to encode resend request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return "", errs.Wrap(err, "failed to build resend request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "resend request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Resend error bodies are small; keep a bounded excerpt for the log row.
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", errs.New(fmt.Sprintf("resend returned status %d: %s", resp.StatusCode, string(excerpt)))
	}

	var out resendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errs.Wrap(err, "failed to decode resend response")
	}

	return out.ID, nil
}
