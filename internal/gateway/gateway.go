package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/magpress/payment-service/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrGatewayTimeout marks a charge call that exceeded its hard timeout. It is
// distinct from a decline: a decline is a business outcome, a timeout is a
// fault that triggers the caller's retry/fallback policy.
var ErrGatewayTimeout = errors.New("payment gateway timed out")

// ProviderError carries the provider's status code and response body for
// non-2xx answers.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("payment gateway returned status %d: %s", e.StatusCode, e.Body)
}

// HeaderFactory supplies credential headers for outbound provider calls.
type HeaderFactory interface {
	Headers() http.Header
}

// APIKeyHeaderFactory authenticates with a static API key on the
// Authorization header.
type APIKeyHeaderFactory struct {
	APIKey string
}

func (f APIKeyHeaderFactory) Headers() http.Header {
	h := http.Header{}
	h.Set("Authorization", f.APIKey)
	return h
}

// Client is the synchronous request/response client to the external charge
// provider. Every call is bounded by a hard timeout.
type Client struct {
	baseURL string
	headers HeaderFactory
	client  *http.Client
}

func NewClient(baseURL string, headers HeaderFactory, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		headers: headers,
		client:  &http.Client{Timeout: timeout},
	}
}

// Charge posts the instrument to the provider and returns its confirmation.
// A decline comes back as a negative Confirmation, not an error.
func (c *Client) Charge(ctx context.Context, instrument models.PaymentInstrument) (models.Confirmation, error) {
	body, err := json.Marshal(instrument)
	if err != nil {
		return models.Confirmation{}, fmt.Errorf("error marshaling instrument: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payment", bytes.NewReader(body))
	if err != nil {
		return models.Confirmation{}, fmt.Errorf("error building gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, values := range c.headers.Headers() {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
			logrus.Errorf("gateway charge timed out: %s", err.Error())
			return models.Confirmation{}, ErrGatewayTimeout
		}
		return models.Confirmation{}, fmt.Errorf("error calling payment gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return models.Confirmation{}, &ProviderError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var confirmation models.Confirmation
	if err := json.NewDecoder(resp.Body).Decode(&confirmation); err != nil {
		return models.Confirmation{}, fmt.Errorf("error decoding gateway confirmation: %w", err)
	}

	return confirmation, nil
}
