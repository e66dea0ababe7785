// Package xtract provides a client for the remote AI document
// classification and extraction API.
package xtract

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/sells-group/loanpack/internal/model"
)

// Client defines the extraction service operations.
type Client interface {
	// Process submits one file for classification and extraction.
	// componentID optionally references a previously registered template
	// set; pass "" to let the service use its predefined templates.
	Process(ctx context.Context, file []byte, fileName, componentID string) (*ProcessResponse, error)
	// RegisterComponent registers a template set and returns its component id.
	RegisterComponent(ctx context.Context, req RegisterComponentRequest) (*RegisterComponentResponse, error)
	// PredefinedTemplates lists the service's built-in templates.
	PredefinedTemplates(ctx context.Context) ([]model.DocumentTemplate, error)
}

// ProcessResponse is the parsed extraction result for one document.
type ProcessResponse struct {
	DetectedTemplate string                 `json:"detectedTemplate"`
	Fields           []model.ExtractedField `json:"fields"`
}

// RegisterComponentRequest registers a set of document templates.
type RegisterComponentRequest struct {
	EnableClassifier bool                     `json:"enableClassifier"`
	EnableExtraction bool                     `json:"enableExtraction"`
	Templates        []model.DocumentTemplate `json:"templates"`
}

// RegisterComponentResponse carries the id grouping the registered templates.
type RegisterComponentResponse struct {
	ComponentID string `json:"componentId"`
}

// APIError is a non-2xx response from the extraction service. The response
// body is kept verbatim for diagnostics.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("xtract: api returned %d: %s", e.StatusCode, e.Body)
}

// IsTimeout reports whether err is a timed-out extraction call (deadline
// exceeded or a net-level timeout).
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithProcessTimeout bounds each document submission. The remote service can
// hang; the default ceiling is 60s.
func WithProcessTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		c.processTimeout = d
	}
}

// WithRegisterTimeout bounds template registration. Default 30s.
func WithRegisterTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		c.registerTimeout = d
	}
}

// WithRateLimit caps outbound submissions per second. Zero disables limiting.
func WithRateLimit(rps float64) Option {
	return func(c *httpClient) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

type httpClient struct {
	authToken       string
	baseURL         string
	processTimeout  time.Duration
	registerTimeout time.Duration
	limiter         *rate.Limiter
	http            *http.Client
}

// NewClient creates an extraction service client. No retries are performed:
// a single extraction attempt is atomic and idempotent, so retrying is the
// caller's decision.
func NewClient(authToken string, opts ...Option) Client {
	c := &httpClient{
		authToken:       authToken,
		baseURL:         "https://api.xtractflow.com",
		processTimeout:  60 * time.Second,
		registerTimeout: 30 * time.Second,
		http: &http.Client{
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *httpClient) Process(ctx context.Context, file []byte, fileName, componentID string) (*ProcessResponse, error) {
	if len(file) == 0 {
		return nil, eris.Errorf("xtract: empty file %q", fileName)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "xtract: rate limit wait")
		}
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("inputFile", fileName)
	if err != nil {
		return nil, eris.Wrap(err, "xtract: build multipart body")
	}
	if _, err := part.Write(file); err != nil {
		return nil, eris.Wrap(err, "xtract: write file part")
	}
	if componentID != "" {
		if err := mw.WriteField("componentId", componentID); err != nil {
			return nil, eris.Wrap(err, "xtract: write componentId field")
		}
	}
	if err := mw.Close(); err != nil {
		return nil, eris.Wrap(err, "xtract: close multipart body")
	}

	ctx, cancel := context.WithTimeout(ctx, c.processTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/process", &body)
	if err != nil {
		return nil, eris.Wrap(err, "xtract: build process request")
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	respBody, err := c.do(req)
	if err != nil {
		return nil, eris.Wrapf(err, "xtract: process %s", fileName)
	}

	var out ProcessResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, eris.Wrapf(err, "xtract: decode process response for %s", fileName)
	}
	return &out, nil
}

func (c *httpClient) RegisterComponent(ctx context.Context, regReq RegisterComponentRequest) (*RegisterComponentResponse, error) {
	payload, err := json.Marshal(regReq)
	if err != nil {
		return nil, eris.Wrap(err, "xtract: encode register request")
	}

	ctx, cancel := context.WithTimeout(ctx, c.registerTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/register-component", bytes.NewReader(payload))
	if err != nil {
		return nil, eris.Wrap(err, "xtract: build register request")
	}
	req.Header.Set("Content-Type", "application/json")

	respBody, err := c.do(req)
	if err != nil {
		return nil, eris.Wrap(err, "xtract: register component")
	}

	var out RegisterComponentResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, eris.Wrap(err, "xtract: decode register response")
	}
	return &out, nil
}

func (c *httpClient) PredefinedTemplates(ctx context.Context) ([]model.DocumentTemplate, error) {
	ctx, cancel := context.WithTimeout(ctx, c.registerTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/get-predefined-templates", nil)
	if err != nil {
		return nil, eris.Wrap(err, "xtract: build templates request")
	}

	respBody, err := c.do(req)
	if err != nil {
		return nil, eris.Wrap(err, "xtract: get predefined templates")
	}

	var out []model.DocumentTemplate
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, eris.Wrap(err, "xtract: decode templates response")
	}
	return out, nil
}

// do executes one request with auth headers and returns the body, or an
// *APIError for non-2xx status.
func (c *httpClient) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Authorization", "Bearer "+c.authToken)
	req.Header.Set("User-Agent", "loanpack/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
