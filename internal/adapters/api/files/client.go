package files

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

	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/bnema/files-billing-cli/internal/ports"
	"github.com/google/uuid"
)

const (
	maxResponseBytes = 1 << 20
	maxInvoicePDF    = 32 << 20

	defaultRequestTimeout = 30 * time.Second
	requestIDHeader       = "X-Request-Id"
)

// TokenSource returns the bearer token for the next request.
type TokenSource func(ctx context.Context) (string, error)

// Client talks to the Files billing REST API.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	Token          TokenSource
	RequestTimeout time.Duration
	UserAgent      string
}

var _ ports.BillingAPI = (*Client)(nil)

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// statusError keeps the HTTP status next to the taxonomy error so callers
// can treat 404 as "none".
type statusError struct {
	status int
	err    error
}

func (e *statusError) Error() string { return e.err.Error() }
func (e *statusError) Unwrap() error { return e.err }

func isNotFound(err error) bool {
	var serr *statusError
	return errors.As(err, &serr) && serr.status == http.StatusNotFound
}

// do sends one request and decodes a JSON response into out when out is not
// nil. Non-2xx responses become domain remote call failures.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	resp, cancel, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer cancel()
	defer func() { _ = resp.Body.Close() }()

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}

	return nil
}

// send returns a response with a 2xx status. The caller closes the body and
// calls cancel once done with it.
func (c *Client) send(ctx context.Context, method, path string, body any) (*http.Response, context.CancelFunc, error) {
	endpoint, err := c.endpoint(path)
	if err != nil {
		return nil, nil, err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	requestCtx, cancel := c.requestContext(ctx)

	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, reader)
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	if c.Token != nil {
		token, err := c.Token(ctx)
		if err != nil {
			cancel()
			return nil, nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		cancel()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, ctxErr
		}
		return nil, nil, domain.RemoteCallFailure("", "", fmt.Errorf("%s %s: %w", method, path, err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer cancel()
		defer func() { _ = resp.Body.Close() }()
		return nil, nil, decodeError(method, path, resp)
	}

	return resp, cancel, nil
}

func decodeError(method, path string, resp *http.Response) error {
	var envelope errorEnvelope
	_ = json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&envelope)

	code := envelope.Error.Code
	message := envelope.Error.Message
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		code = "unauthorized"
	}

	cause := fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	return &statusError{status: resp.StatusCode, err: domain.RemoteCallFailure(code, message, cause)}
}

func (c *Client) endpoint(path string) (string, error) {
	if c.BaseURL == "" {
		return "", errors.New("api base url is required")
	}

	base, err := url.Parse(strings.TrimRight(c.BaseURL, "/") + "/")
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if base.Host == "" {
		return "", errors.New("api base url host is required")
	}

	ref, err := url.Parse(strings.TrimLeft(path, "/"))
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}

	return base.ResolveReference(ref).String(), nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return context.WithCancel(ctx)
	}

	timeout := c.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return context.WithTimeout(ctx, timeout)
}
