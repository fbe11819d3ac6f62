// Package sources implements the signal adapters that read public ecosystem APIs.
package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
)

const (
	defaultUserAgent = "NarrativeScanner/1.0"
	maxBodyBytes     = 8 << 20
)

// Options configure a single adapter.
type Options struct {
	Endpoint  string
	Limit     int
	UserAgent string
}

func (o Options) limit(fallback int) int {
	if o.Limit <= 0 {
		return fallback
	}
	return o.Limit
}

func (o Options) userAgent() string {
	if o.UserAgent == "" {
		return defaultUserAgent
	}
	return o.UserAgent
}

// NewHTTPClient returns the client shared by adapters.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

func defaultClient(client *http.Client) *http.Client {
	if client == nil {
		return NewHTTPClient(0)
	}
	return client
}

// fetchJSON performs one GET and parses the body. Transport and status errors
// are returned; a body that is not valid JSON yields an empty result instead.
func fetchJSON(ctx context.Context, client *http.Client, endpoint string, query url.Values, userAgent string) (gjson.Result, error) {
	target, err := withQuery(endpoint, query)
	if err != nil {
		return gjson.Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return gjson.Result{}, fmt.Errorf("%s returned %s", endpoint, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("read body: %w", err)
	}

	return parseLenient(body), nil
}

func parseLenient(body []byte) gjson.Result {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}
	}
	return gjson.ParseBytes(body)
}

func withQuery(endpoint string, query url.Values) (string, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %s: %w", endpoint, err)
	}
	if len(query) == 0 {
		return parsed.String(), nil
	}

	q := parsed.Query()
	for key, values := range query {
		for i, v := range values {
			if i == 0 {
				q.Set(key, v)
				continue
			}
			q.Add(key, v)
		}
	}
	parsed.RawQuery = q.Encode()
	return parsed.String(), nil
}
