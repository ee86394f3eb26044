package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/jrsteele09/go-aqua-client/aquamodel"
	apperrors "github.com/jrsteele09/go-aqua-client/internal/errors"
)

// Backend endpoint paths
const (
	PathLogin      = "/login"
	PathRegister   = "/register"
	PathData       = "/api/data"
	PathStatistics = "/api/statistics"
)

const (
	contentTypeJSON = "application/json"
	requestIDHeader = "X-Request-ID"
)

// Client talks to the aqua backend. Every operation issues exactly one
// request; there are no retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets a timeout on every request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend origin the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Login posts credentials to /login.
func (c *Client) Login(ctx context.Context, creds aquamodel.Credentials) (*aquamodel.AuthResponse, error) {
	return c.authenticate(ctx, PathLogin, creds)
}

// Register posts credentials to /register.
func (c *Client) Register(ctx context.Context, creds aquamodel.Credentials) (*aquamodel.AuthResponse, error) {
	return c.authenticate(ctx, PathRegister, creds)
}

func (c *Client) authenticate(ctx context.Context, path string, creds aquamodel.Credentials) (*aquamodel.AuthResponse, error) {
	var resp aquamodel.AuthResponse
	if err := c.do(ctx, c.httpClient, http.MethodPost, path, creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetData fetches the current app state. Fields missing from the response
// are left nil in the returned patch.
func (c *Client) GetData(ctx context.Context, token string) (aquamodel.StatePatch, error) {
	var patch aquamodel.StatePatch
	hc, err := c.bearerClient(token)
	if err != nil {
		return patch, err
	}
	if err := c.do(ctx, hc, http.MethodGet, PathData, nil, &patch); err != nil {
		return aquamodel.StatePatch{}, err
	}
	return patch, nil
}

// SaveData pushes the full app state. The response body is ignored.
func (c *Client) SaveData(ctx context.Context, token string, state aquamodel.State) error {
	hc, err := c.bearerClient(token)
	if err != nil {
		return err
	}
	return c.do(ctx, hc, http.MethodPost, PathData, state, nil)
}

// GetStatistics fetches the aggregate statistics record.
func (c *Client) GetStatistics(ctx context.Context, token string) (aquamodel.Statistics, error) {
	var stats aquamodel.Statistics
	hc, err := c.bearerClient(token)
	if err != nil {
		return stats, err
	}
	if err := c.do(ctx, hc, http.MethodGet, PathStatistics, nil, &stats); err != nil {
		return aquamodel.Statistics{}, err
	}
	return stats, nil
}

// bearerClient wraps the base client so that every request carries
// "Authorization: Bearer <token>".
func (c *Client) bearerClient(token string) (*http.Client, error) {
	if token == "" {
		return nil, apperrors.ErrNoToken
	}
	return &http.Client{
		Timeout: c.httpClient.Timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   c.httpClient.Transport,
		},
	}, nil
}

func (c *Client) do(ctx context.Context, hc *http.Client, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "Client.do Marshal")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "Client.do NewRequest")
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set(requestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}

	resp, err := hc.Do(req)
	if err != nil {
		log.Debug().Str("request_id", requestID).Str("method", method).Str("path", path).Err(err).Msg("backend request failed")
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	log.Debug().Str("request_id", requestID).Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("backend response")

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "%s %s read body", method, path)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(method, path, resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "%s %s decode", method, path)
	}
	return nil
}
