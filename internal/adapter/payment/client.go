package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"
)

// Client exposes hosted checkout session creation against the payment
// gateway.
type Client interface {
	CreateSession(ctx context.Context, orderID string, priceCents int64, description string) (sessionID, sessionURL string, err error)
}

// HTTPClient implements Client via the gateway's HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type sessionRequest struct {
	OrderID     string `json:"order_id"`
	AmountCents int64  `json:"amount_cents"`
	Description string `json:"description"`
}

type sessionResponse struct {
	SessionID  string `json:"session_id"`
	SessionURL string `json:"session_url"`
}

// NewHTTPClient creates a gateway client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse payment gateway url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("payment gateway url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// CreateSession opens a hosted checkout session correlated to the order.
func (c *HTTPClient) CreateSession(ctx context.Context, orderID string, priceCents int64, description string) (string, string, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/checkout/sessions")

	body, err := json.Marshal(sessionRequest{OrderID: orderID, AmountCents: priceCents, Description: description})
	if err != nil {
		return "", "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("checkout session request failed",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(respBody)))
		return "", "", fmt.Errorf("payment gateway error: %s", resp.Status)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", err
	}
	var data sessionResponse
	if err := json.Unmarshal(respBody, &data); err != nil {
		return "", "", err
	}
	if data.SessionID == "" || data.SessionURL == "" {
		return "", "", fmt.Errorf("payment gateway returned incomplete session")
	}
	return data.SessionID, data.SessionURL, nil
}
