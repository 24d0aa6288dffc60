package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const resendBaseURL = "https://api.resend.com"

// ResendClient sends email through the Resend REST API.
type ResendClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewResendClient creates a Resend API client.
func NewResendClient(apiKey string) *ResendClient {
	return &ResendClient{
		apiKey:     apiKey,
		baseURL:    resendBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Send posts a single email to the Resend transmissions endpoint. A non-2xx
// response is returned as an error carrying the response body.
func (c *ResendClient) Send(ctx context.Context, msg Message) error {
	payload := map[string]interface{}{
		"from":    msg.From,
		"to":      []string{msg.To},
		"subject": msg.Subject,
		"html":    msg.HTML,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("resend: encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("resend: building request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("resend: sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("resend: status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	return nil
}
