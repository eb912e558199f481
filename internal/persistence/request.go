package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/felixbrock/matchadmin/internal/app"
)

type reqConfig struct {
	Method    string
	Url       string
	UrlParams url.Values
	Headers   []string
	Body      []byte
}

type requester struct {
	client  *http.Client
	limiter *rate.Limiter
}

// NewLimiter builds the outbound request limiter. A non-positive rps
// disables throttling.
func NewLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

// do sends the request and returns the response body when the status matches
// expectedResCode. Any other status is decoded as a BackendError.
func (rq requester) do(ctx context.Context, config reqConfig, expectedResCode int) ([]byte, error) {
	if rq.limiter != nil {
		if err := rq.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	target := config.Url
	if len(config.UrlParams) > 0 {
		target = target + "?" + config.UrlParams.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, config.Method, target, bytes.NewReader(config.Body))

	if err != nil {
		return nil, err
	}

	for i := 0; i < len(config.Headers); i++ {
		headerKV := strings.SplitN(config.Headers[i], ":", 2)
		if len(headerKV) != 2 {
			continue
		}
		req.Header.Add(strings.TrimSpace(headerKV[0]), strings.TrimSpace(headerKV[1]))
	}

	client := rq.client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)

	if err != nil {
		return nil, err
	}

	body, err := app.ReadBody(resp.Body)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode != expectedResCode {
		return nil, decodeBackendError(resp.StatusCode, body)
	}

	return body, nil
}

func decodeBackendError(status int, body []byte) *BackendError {
	backendErr := &BackendError{Status: status}

	if err := json.Unmarshal(body, backendErr); err != nil || backendErr.Message == "" {
		backendErr.Message = strings.TrimSpace(string(body))
	}
	if backendErr.Message == "" {
		backendErr.Message = http.StatusText(status)
	}

	return backendErr
}
