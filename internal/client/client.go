// Package client is a typed REST client for the DataLab API used by the admin console.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/datalab-ge/datalab-api/internal/analytics"
	"github.com/datalab-ge/datalab-api/internal/config"
	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/datalab-ge/datalab-api/internal/pricing"
	"github.com/google/uuid"
)

// ErrNotFound matches any 404 response
var ErrNotFound = errors.New("resource not found")

// StatusError is returned for every non-2xx response
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Problem    *domain.APIError
}

func (e *StatusError) Error() string {
	msg := http.StatusText(e.StatusCode)
	if e.Problem != nil && e.Problem.Detail != "" {
		msg = e.Problem.Detail
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, msg)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Client talks to the API rooted at <base URL>/api
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a client. A zero timeout keeps the transport default.
func New(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("api base URL is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid api base URL %q", baseURL)
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + "/api",
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// NewFromConfig creates a client from the console configuration
func NewFromConfig(cfg *config.ClientConfig) (*Client, error) {
	return New(cfg.APIBaseURL, cfg.APIKey, cfg.TimeoutDuration())
}

// BaseURL returns the API root including the /api suffix
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode}
		var problem domain.APIError
		if err := json.NewDecoder(resp.Body).Decode(&problem); err == nil {
			statusErr.Problem = &problem
		}
		return statusErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

// Service requests

func (c *Client) CreateServiceRequest(ctx context.Context, req *domain.CreateServiceRequestRequest) (*domain.CreateServiceRequestResponse, error) {
	var out domain.CreateServiceRequestResponse
	if err := c.do(ctx, http.MethodPost, "/service-requests/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListServiceRequests(ctx context.Context) ([]domain.ServiceRequestDTO, error) {
	var out []domain.ServiceRequestDTO
	if err := c.do(ctx, http.MethodGet, "/service-requests/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListArchivedServiceRequests(ctx context.Context) ([]domain.ServiceRequestDTO, error) {
	var out []domain.ServiceRequestDTO
	if err := c.do(ctx, http.MethodGet, "/service-requests/archived", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCase looks a case up by its public code
func (c *Client) GetCase(ctx context.Context, caseID string) (*domain.CaseRecord, error) {
	var out domain.CaseRecord
	if err := c.do(ctx, http.MethodGet, "/service-requests/"+url.PathEscape(caseID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateServiceRequest(ctx context.Context, id uuid.UUID, req *domain.UpdateServiceRequestRequest) (*domain.ServiceRequestDTO, error) {
	var out domain.ServiceRequestDTO
	if err := c.do(ctx, http.MethodPut, "/service-requests/"+id.String(), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ArchiveServiceRequest(ctx context.Context, id uuid.UUID) (*domain.ServiceRequestDTO, error) {
	var out domain.ServiceRequestDTO
	if err := c.do(ctx, http.MethodPut, "/service-requests/"+id.String()+"/archive", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ServiceRequestHistory(ctx context.Context, id uuid.UUID) ([]domain.StatusHistoryDTO, error) {
	var out []domain.StatusHistoryDTO
	if err := c.do(ctx, http.MethodGet, "/service-requests/"+id.String()+"/history", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Contact messages

func (c *Client) ListContactMessages(ctx context.Context) ([]domain.ContactMessageDTO, error) {
	var out []domain.ContactMessageDTO
	if err := c.do(ctx, http.MethodGet, "/contact/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ContactStats(ctx context.Context) (*domain.ContactStatsDTO, error) {
	var out domain.ContactStatsDTO
	if err := c.do(ctx, http.MethodGet, "/contact/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateContactStatus(ctx context.Context, id uuid.UUID, status domain.ContactMessageStatus) error {
	req := domain.UpdateContactStatusRequest{Status: status}
	return c.do(ctx, http.MethodPut, "/contact/"+id.String()+"/status", req, nil)
}

// Testimonials

func (c *Client) ListAllTestimonials(ctx context.Context) ([]domain.TestimonialDTO, error) {
	var out []domain.TestimonialDTO
	if err := c.do(ctx, http.MethodGet, "/testimonials/all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateTestimonial(ctx context.Context, id uuid.UUID, req *domain.UpdateTestimonialRequest) (*domain.TestimonialDTO, error) {
	var out domain.TestimonialDTO
	if err := c.do(ctx, http.MethodPut, "/testimonials/"+id.String(), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Pricing and analytics

func (c *Client) EstimatePrice(ctx context.Context, sel pricing.Selection) (*pricing.Estimate, error) {
	var out pricing.Estimate
	if err := c.do(ctx, http.MethodPost, "/price-estimate/", sel, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Analytics(ctx context.Context, tf analytics.Timeframe) (*analytics.Report, error) {
	var out analytics.Report
	if err := c.do(ctx, http.MethodGet, "/analytics/metrics?timeframe="+url.QueryEscape(string(tf)), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
