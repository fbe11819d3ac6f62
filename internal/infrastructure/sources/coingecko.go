package sources

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"NarrativeScanner/internal/scanner"
)

// CoinGeckoScanner reads the market-wide trending coin list.
type CoinGeckoScanner struct {
	client *http.Client
	opts   Options
}

var _ scanner.Adapter = (*CoinGeckoScanner)(nil)

// NewCoinGeckoScanner wires an HTTP client; limit defaults to 7.
func NewCoinGeckoScanner(client *http.Client, opts Options) *CoinGeckoScanner {
	return &CoinGeckoScanner{client: defaultClient(client), opts: opts}
}

func (c *CoinGeckoScanner) Name() string     { return "CoinGecko" }
func (c *CoinGeckoScanner) Category() string { return "market" }

// Scan returns one "<name> (<SYMBOL>) rank #<rank>" line per trending coin.
func (c *CoinGeckoScanner) Scan(ctx context.Context) ([]string, error) {
	limit := c.opts.limit(7)

	doc, err := fetchJSON(ctx, c.client, c.opts.Endpoint, nil, c.opts.userAgent())
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, limit)
	for _, coin := range doc.Get("coins").Array() {
		if len(lines) >= limit {
			break
		}
		item := coin.Get("item")
		name := strings.TrimSpace(item.Get("name").String())
		if name == "" {
			continue
		}
		rank := "n/a"
		if r := item.Get("market_cap_rank"); r.Type == gjson.Number {
			rank = fmt.Sprintf("#%d", r.Int())
		}
		lines = append(lines, fmt.Sprintf("%s (%s) rank %s", name, strings.ToUpper(item.Get("symbol").String()), rank))
	}
	return lines, nil
}
