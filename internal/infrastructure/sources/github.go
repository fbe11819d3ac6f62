package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"NarrativeScanner/internal/scanner"
)

const githubLookback = 30 * 24 * time.Hour

// GitHubScanner lists the most-starred repositories created recently for the ecosystem.
type GitHubScanner struct {
	client    *http.Client
	opts      Options
	ecosystem string
	now       func() time.Time
}

var _ scanner.Adapter = (*GitHubScanner)(nil)

// NewGitHubScanner wires an HTTP client; limit defaults to 10.
func NewGitHubScanner(client *http.Client, opts Options, ecosystem string, now func() time.Time) *GitHubScanner {
	if now == nil {
		now = time.Now
	}
	return &GitHubScanner{client: defaultClient(client), opts: opts, ecosystem: ecosystem, now: now}
}

// Name identifies the adapter inside the registry.
func (g *GitHubScanner) Name() string { return "GitHub" }

// Category labels the produced signal.
func (g *GitHubScanner) Category() string { return "development" }

// Scan returns one "<name>: <stars> ⭐ (<language>)" line per repository.
func (g *GitHubScanner) Scan(ctx context.Context) ([]string, error) {
	limit := g.opts.limit(10)
	since := g.now().UTC().Add(-githubLookback).Format("2006-01-02")

	query := url.Values{}
	query.Set("q", fmt.Sprintf("%s created:>=%s", g.ecosystem, since))
	query.Set("sort", "stars")
	query.Set("order", "desc")
	query.Set("per_page", strconv.Itoa(limit))

	doc, err := fetchJSON(ctx, g.client, g.opts.Endpoint, query, g.opts.userAgent())
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, limit)
	for _, item := range doc.Get("items").Array() {
		if len(lines) >= limit {
			break
		}
		name := strings.TrimSpace(item.Get("name").String())
		if name == "" {
			continue
		}
		language := strings.TrimSpace(item.Get("language").String())
		if language == "" {
			language = "Unknown"
		}
		lines = append(lines, fmt.Sprintf("%s: %d ⭐ (%s)", name, item.Get("stargazers_count").Int(), language))
	}
	return lines, nil
}
