// internal/infrastructure/commerce/client.go
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	jsonAPIContentType = "application/vnd.api+json"
	jsonContentType    = "application/json"
)

// Client talks to the headless commerce backend. It does not retry; failures are returned
// to the caller as they happened.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     logrus.FieldLogger
}

// NewClient creates a client for the backend at cfg.BaseURL
func NewClient(cfg config.CommerceConfig, logger logrus.FieldLogger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL: cfg.BaseURL,
		logger:  logger.WithField("component", "commerce"),
	}
}

type tokenKey struct{}

// WithToken returns a context whose requests carry token as a bearer credential
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

type request struct {
	method  string
	path    string
	query   url.Values
	body    any
	jsonAPI bool
}

func (c *Client) do(ctx context.Context, req request, out any) error {
	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("json.Marshal: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, body)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	contentType := jsonContentType
	if req.jsonAPI {
		contentType = jsonAPIContentType
	}
	httpReq.Header.Set("Accept", contentType)
	if body != nil {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if token := tokenFrom(ctx); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"method": req.method,
			"path":   req.path,
		}).Error("Commerce backend request failed")
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("io.ReadAll: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			Method:     req.method,
			Path:       req.path,
			StatusCode: resp.StatusCode,
			Body:       string(data),
		}
		c.logger.WithFields(logrus.Fields{
			"method":      req.method,
			"path":        req.path,
			"status_code": resp.StatusCode,
		}).Warn("Commerce backend returned an error status")
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("json.Unmarshal %s: %w", req.path, err)
	}

	return nil
}
