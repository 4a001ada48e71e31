package blobstore

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
	"strconv"
	"time"
)

// Client exposes the opaque document store: blob upload, delete, and signed
// download URLs. Originals and completed translations live in distinct
// buckets.
type Client interface {
	Upload(ctx context.Context, bucket, blobPath string, data []byte, contentType string) error
	Delete(ctx context.Context, bucket, blobPath string) error
	SignedURL(ctx context.Context, bucket, blobPath string, ttl time.Duration) (string, error)
}

// HTTPClient implements Client against the store's HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type signedURLResponse struct {
	URL string `json:"url"`
}

// NewHTTPClient creates a document store client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse blob store url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("blob store url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// Upload stores a blob, overwriting any existing object at the path.
func (c *HTTPClient) Upload(ctx context.Context, bucket, blobPath string, data []byte, contentType string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.objectURL(bucket, blobPath), bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("blob upload failed",
			slog.String("bucket", bucket),
			slog.String("path", blobPath),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)))
		return fmt.Errorf("blob store error: %s", resp.Status)
	}
	return nil
}

// Delete removes a blob. Deleting a missing blob is not an error.
func (c *HTTPClient) Delete(ctx context.Context, bucket, blobPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.objectURL(bucket, blobPath), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound:
		return nil
	default:
		return fmt.Errorf("blob store error: %s", resp.Status)
	}
}

// SignedURL obtains a time-limited download URL for a blob.
func (c *HTTPClient) SignedURL(ctx context.Context, bucket, blobPath string, ttl time.Duration) (string, error) {
	endpoint := c.objectURL(bucket, blobPath) + "?sign=" + strconv.Itoa(int(ttl.Seconds()))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("blob store error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	var data signedURLResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return "", err
	}
	if data.URL == "" {
		return "", fmt.Errorf("blob store returned empty signed url")
	}
	return data.URL, nil
}

func (c *HTTPClient) objectURL(bucket, blobPath string) string {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, bucket, blobPath)
	return endpoint.String()
}
