// Package client talks to the site-data API on behalf of the admin editor.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"viukon-cms/logging"
	"viukon-cms/models"

	"github.com/sony/gobreaker"
)

const (
	DefaultTimeout      = 5 * time.Second
	DefaultRetryBackoff = 250 * time.Millisecond
)

type Options struct {
	Timeout      time.Duration
	RetryBackoff time.Duration
	HTTPClient   *http.Client
	BreakerName  string
}

type LoginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	timeout    time.Duration
	backoff    time.Duration

	mu    sync.RWMutex
	token string
}

// New returns a client for the API rooted at baseURL, e.g. "http://localhost:5001".
func New(baseURL string, opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.RetryBackoff <= 0 {
		opts.RetryBackoff = DefaultRetryBackoff
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{}
	}
	if opts.BreakerName == "" {
		opts.BreakerName = "sitedata-api-cb"
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        opts.BreakerName,
		MaxRequests: 1,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		// 4xx responses count as successes.
		IsSuccessful: func(err error) bool {
			var serverErr *ServerError
			if errors.As(err, &serverErr) {
				return !serverErr.Temporary()
			}
			return err == nil
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: opts.HTTPClient,
		breaker:    breaker,
		timeout:    opts.Timeout,
		backoff:    opts.RetryBackoff,
	}
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Login exchanges admin credentials for a token used on later writes.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return nil, fmt.Errorf("encoding login request: %w", err)
	}

	var resp LoginResponse
	if err := c.do(ctx, "login", http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return nil, err
	}
	c.SetToken(resp.Token)
	return &resp, nil
}

func (c *Client) FetchDocument(ctx context.Context) (*models.SiteData, error) {
	var doc models.SiteData
	if err := c.do(ctx, "fetch site data", http.MethodGet, "/api/sitedata", nil, &doc); err != nil {
		return nil, err
	}
	doc.Normalize()
	return &doc, nil
}

// ReplaceDocument overwrites the stored document with doc.
func (c *Client) ReplaceDocument(ctx context.Context, doc *models.SiteData) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding site data: %w", err)
	}
	return c.do(ctx, "replace site data", http.MethodPut, "/api/sitedata", body, nil)
}

// do runs one request through the breaker, retrying once on a network error.
func (c *Client) do(ctx context.Context, op, method, path string, body []byte, out any) error {
	err := c.execute(ctx, op, method, path, body, out)

	var netErr *NetworkError
	if !errors.As(err, &netErr) || errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return err
	}

	logging.Logger.Debugf("Event ID: CLIENT_RETRY, Description: Retrying %s after %v: %v", op, c.backoff, err)
	timer := time.NewTimer(c.backoff)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return &NetworkError{Op: op, Err: ctx.Err()}
	case <-timer.C:
	}
	return c.execute(ctx, op, method, path, body, out)
}

func (c *Client) execute(ctx context.Context, op, method, path string, body []byte, out any) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.roundTrip(ctx, op, method, path, body, out)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return &NetworkError{Op: op, Err: err}
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, op, method, path string, body []byte, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: building request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		serverErr := &ServerError{Op: op, StatusCode: resp.StatusCode}
		var payload struct {
			Message string              `json:"message"`
			Errors  []models.FieldError `json:"errors"`
		}
		if json.Unmarshal(data, &payload) == nil {
			serverErr.Message = payload.Message
			serverErr.Problems = payload.Errors
		} else {
			serverErr.Message = strings.TrimSpace(string(data))
		}
		logging.Logger.Debugf("Event ID: CLIENT_SERVER_ERROR, Description: %v", serverErr)
		return serverErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decoding response: %w", op, err)
	}
	return nil
}
