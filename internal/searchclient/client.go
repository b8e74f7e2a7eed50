package searchclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/baechuer/real-time-ressys/services/destination-service/internal/logger"
	"github.com/baechuer/real-time-ressys/services/destination-service/internal/transport/http/middleware"
)

var (
	ErrTimeout     = errors.New("suggestions_timeout")
	ErrUnavailable = errors.New("suggestions_unavailable")
)

// StatusError is a non-200 answer from the suggestion API.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("suggestions error [%d] %s: %s", e.StatusCode, e.Code, e.Message)
}

// Suggestion is one city as served by GET /suggestions.
type Suggestion struct {
	Name    string `json:"city_ascii"`
	Country string `json:"country"`
	ISO2    string `json:"iso2"`
	Flag    string `json:"flag"`
}

type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

const DefaultTimeout = 2 * time.Second

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

type ClientOption func(*Client)

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.HTTPClient = hc
	}
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: &middleware.TracingTransport{Base: http.DefaultTransport, TracerName: "citytool"},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Suggest calls GET /suggestions?q= once. There are no retries.
func (c *Client) Suggest(ctx context.Context, query string) ([]Suggestion, error) {
	var out []Suggestion
	if err := c.get(ctx, "/suggestions?"+url.Values{"q": {query}}.Encode(), &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Suggestion{}
	}
	return out, nil
}

// Random asks the API for one catalog city.
func (c *Client) Random(ctx context.Context) (Suggestion, error) {
	var out Suggestion
	err := c.get(ctx, "/api/cities/random", &out)
	return out, err
}

func (c *Client) get(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Log.Debug().Err(err).Str("url", req.URL.String()).Dur("duration", time.Since(start)).Msg("suggestions_request_failed")
		return mapError(err)
	}
	defer resp.Body.Close()

	logger.Log.Debug().Int("status", resp.StatusCode).Str("url", req.URL.String()).Dur("duration", time.Since(start)).Msg("suggestions_request_completed")

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode suggestions: %w", err)
	}
	return nil
}

// mapError keeps cancellation visible so callers can drop superseded requests.
func mapError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return ErrTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	if errors.Is(err, context.Canceled) {
		return context.Canceled
	}
	return ErrUnavailable
}

func decodeError(resp *http.Response) error {
	var body apiError
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error.Code != "" {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Code:       body.Error.Code,
			Message:    body.Error.Message,
		}
	}
	return &StatusError{
		StatusCode: resp.StatusCode,
		Code:       "unexpected_status",
		Message:    fmt.Sprintf("unexpected status: %d", resp.StatusCode),
	}
}
