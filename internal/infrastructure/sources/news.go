package sources

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"NarrativeScanner/internal/scanner"
)

// NewsScanner reads the latest headlines tagged with the ecosystem symbol.
type NewsScanner struct {
	client *http.Client
	opts   Options
	symbol string
}

var _ scanner.Adapter = (*NewsScanner)(nil)

// NewNewsScanner wires an HTTP client; limit defaults to 8.
func NewNewsScanner(client *http.Client, opts Options, symbol string) *NewsScanner {
	return &NewsScanner{client: defaultClient(client), opts: opts, symbol: strings.ToUpper(symbol)}
}

func (n *NewsScanner) Name() string     { return "News" }
func (n *NewsScanner) Category() string { return "news" }

// Scan returns one cleaned headline per article.
func (n *NewsScanner) Scan(ctx context.Context) ([]string, error) {
	limit := n.opts.limit(8)

	query := url.Values{}
	query.Set("lang", "EN")
	if n.symbol != "" {
		query.Set("categories", n.symbol)
	}

	doc, err := fetchJSON(ctx, n.client, n.opts.Endpoint, query, n.opts.userAgent())
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, limit)
	for _, article := range doc.Get("Data").Array() {
		if len(lines) >= limit {
			break
		}
		if title := plainText(article.Get("title").String()); title != "" {
			lines = append(lines, title)
		}
	}
	return lines, nil
}
