package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"applicant-portal-service/internal/config"
	"applicant-portal-service/internal/models"
)

// AddressResolver locates the backend through service discovery. Consul's
// registry implements it; tests use a stub.
type AddressResolver interface {
	GetServiceAddress(serviceName string, protocol string) (string, error)
}

// Client consumes the matcher/billing backend over HTTP. Every operation is
// scoped to the acting user, forwarded through the X-User-ID header the
// gateway tier trusts.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	resolver    AddressResolver
}

func NewClient(cfg *config.UpstreamConfig, resolver AddressResolver) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:     cfg.BaseURL,
		serviceName: cfg.ServiceName,
		resolver:    resolver,
	}
}

// resolveBaseURL prefers a live Consul address and falls back to the
// configured static URL when discovery is unavailable.
func (c *Client) resolveBaseURL() string {
	if c.resolver != nil {
		address, err := c.resolver.GetServiceAddress(c.serviceName, "http")
		if err == nil && address != "" {
			return "http://" + address
		}
		log.Printf("falling back to static backend URL: %v", err)
	}
	return c.baseURL
}

// GetConfig fetches the user's job preferences config, optionally scoped to
// one subscription. A 404 returns ErrNotFound.
func (c *Client) GetConfig(ctx context.Context, userID, subscriptionID string) (*models.ConfigPublic, error) {
	query := url.Values{}
	if subscriptionID != "" {
		query.Set("subscription_id", subscriptionID)
	}

	var cfg models.ConfigPublic
	if err := c.doJSON(ctx, http.MethodGet, "/configs/job-preferences", query, userID, nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UpdateConfig creates or updates the config. The backend serves both cases
// through the same endpoint.
func (c *Client) UpdateConfig(ctx context.Context, userID, subscriptionID string, cfg *models.ConfigPublic) error {
	query := url.Values{}
	if subscriptionID != "" {
		query.Set("subscription_id", subscriptionID)
	}
	return c.doJSON(ctx, http.MethodPut, "/configs/job-preferences", query, userID, cfg, nil)
}

// GetPlainTextResume returns the raw resume payload. The backend may answer
// with a structured object or a JSON-encoded string; the transform layer
// sorts that out, so the body passes through untouched.
func (c *Client) GetPlainTextResume(ctx context.Context, userID string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, "/configs/plain-text-resume", nil, userID, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) UpdatePlainTextResume(ctx context.Context, userID string, resume *models.ResumeAPI) error {
	return c.doJSON(ctx, http.MethodPut, "/configs/plain-text-resume", nil, userID, resume, nil)
}

func (c *Client) GetUserSubscriptions(ctx context.Context, userID string, onlyActive bool) ([]models.Subscription, error) {
	query := url.Values{}
	if onlyActive {
		query.Set("only_active", "true")
	}

	var subscriptions []models.Subscription
	if err := c.doJSON(ctx, http.MethodGet, "/subscriptions", query, userID, nil, &subscriptions); err != nil {
		return nil, err
	}
	if subscriptions == nil {
		subscriptions = []models.Subscription{}
	}
	return subscriptions, nil
}

func (c *Client) ReadPaymentsByCurrentUser(ctx context.Context, userID string, skip, limit int) (*models.PaymentPage, error) {
	query := url.Values{}
	query.Set("skip", strconv.Itoa(skip))
	query.Set("limit", strconv.Itoa(limit))

	var page models.PaymentPage
	if err := c.doJSON(ctx, http.MethodGet, "/payments", query, userID, nil, &page); err != nil {
		return nil, err
	}
	if page.Data == nil {
		page.Data = []models.Payment{}
	}
	return &page, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, userID string, in, out any) error {
	endpoint := c.resolveBaseURL() + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-User-ID", userID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return NewUnknownFailure(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		log.Printf("backend %s %s returned %d in %s", method, path, resp.StatusCode, time.Since(start))
		return NewHTTPFailure(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return NewUnknownFailure(fmt.Sprintf("failed to decode backend response: %v", err))
		}
	}
	return nil
}
