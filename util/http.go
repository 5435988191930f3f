package util

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/dymensionxyz/kaspa-validator/errors"
)

// HTTPRequest describes a single call made through DoHTTPRequest.
type HTTPRequest struct {
	URL     string
	Headers map[string]string
	Body    []byte
}

// DoHTTPRequest performs a GET, or a POST when a body is given, and returns the response body.
// Transport failures and 5xx answers come back as retryable network or service-unavailable errors,
// other non-2xx answers as service errors and 404 as not found.
func DoHTTPRequest(ctx context.Context, client *http.Client, r HTTPRequest) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}

	method := http.MethodGet

	var body io.Reader
	if r.Body != nil {
		method = http.MethodPost
		body = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.URL, body)
	if err != nil {
		return nil, errors.NewServiceError("failed to create http request", err)
	}

	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	req.Header.Set("Accept", "application/json")

	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.NewContextCanceledError("http request [%s] cancelled", r.URL, ctx.Err())
		}

		return nil, errors.NewNetworkError("http request [%s] failed", r.URL, err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewNetworkError("http request [%s] failed to read body", r.URL, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return b, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.NewNotFoundError("http request [%s] returned status code [%d] with body [%s]", r.URL, resp.StatusCode, string(b))
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return nil, errors.NewServiceUnavailableError("http request [%s] returned status code [%d] with body [%s]", r.URL, resp.StatusCode, string(b))
	default:
		return nil, errors.NewServiceError("http request [%s] returned status code [%d] with body [%s]", r.URL, resp.StatusCode, string(b))
	}
}
