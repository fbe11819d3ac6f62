package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"NarrativeScanner/internal/scanner"
)

// RedditScanner reads hot posts from the ecosystem subreddit.
type RedditScanner struct {
	client    *http.Client
	opts      Options
	subreddit string
}

var _ scanner.Adapter = (*RedditScanner)(nil)

// NewRedditScanner wires an HTTP client. An endpoint containing %s gets the subreddit substituted.
func NewRedditScanner(client *http.Client, opts Options, subreddit string) *RedditScanner {
	return &RedditScanner{client: defaultClient(client), opts: opts, subreddit: subreddit}
}

func (r *RedditScanner) Name() string     { return "Reddit" }
func (r *RedditScanner) Category() string { return "community" }

// Scan returns one "<title> (<score> upvotes)" line per post, skipping pinned posts.
func (r *RedditScanner) Scan(ctx context.Context) ([]string, error) {
	limit := r.opts.limit(10)

	endpoint := r.opts.Endpoint
	if strings.Contains(endpoint, "%s") {
		endpoint = fmt.Sprintf(endpoint, r.subreddit)
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	doc, err := fetchJSON(ctx, r.client, endpoint, query, r.opts.userAgent())
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, limit)
	for _, child := range doc.Get("data.children").Array() {
		if len(lines) >= limit {
			break
		}
		post := child.Get("data")
		if post.Get("stickied").Bool() {
			continue
		}
		title := plainText(post.Get("title").String())
		if title == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s (%d upvotes)", title, post.Get("score").Int()))
	}
	return lines, nil
}
