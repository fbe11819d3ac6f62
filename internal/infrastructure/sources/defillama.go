package sources

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"NarrativeScanner/internal/scanner"
)

// DeFiLlamaScanner ranks the chain's protocols by total value locked.
type DeFiLlamaScanner struct {
	client *http.Client
	opts   Options
	chain  string
}

var _ scanner.Adapter = (*DeFiLlamaScanner)(nil)

// NewDeFiLlamaScanner wires an HTTP client; limit defaults to 10.
func NewDeFiLlamaScanner(client *http.Client, opts Options, chain string) *DeFiLlamaScanner {
	return &DeFiLlamaScanner{client: defaultClient(client), opts: opts, chain: chain}
}

func (d *DeFiLlamaScanner) Name() string     { return "DeFiLlama" }
func (d *DeFiLlamaScanner) Category() string { return "defi" }

type protocolTVL struct {
	name     string
	category string
	tvl      decimal.Decimal
}

// Scan returns one "<name> (<category>): $<tvl>" line per protocol deployed on the chain.
func (d *DeFiLlamaScanner) Scan(ctx context.Context) ([]string, error) {
	limit := d.opts.limit(10)

	doc, err := fetchJSON(ctx, d.client, d.opts.Endpoint, nil, d.opts.userAgent())
	if err != nil {
		return nil, err
	}

	var protocols []protocolTVL
	for _, item := range doc.Array() {
		if !d.onChain(item.Get("chains")) {
			continue
		}
		name := strings.TrimSpace(item.Get("name").String())
		if name == "" {
			continue
		}
		category := strings.TrimSpace(item.Get("category").String())
		if category == "" {
			category = "Other"
		}
		protocols = append(protocols, protocolTVL{name: name, category: category, tvl: d.chainTVL(item)})
	}

	sort.SliceStable(protocols, func(i, j int) bool {
		return protocols[i].tvl.GreaterThan(protocols[j].tvl)
	})

	lines := make([]string, 0, limit)
	for _, p := range protocols {
		if len(lines) >= limit {
			break
		}
		lines = append(lines, fmt.Sprintf("%s (%s): %s", p.name, p.category, compactUSD(p.tvl)))
	}
	return lines, nil
}

func (d *DeFiLlamaScanner) onChain(chains gjson.Result) bool {
	if d.chain == "" {
		return true
	}
	for _, c := range chains.Array() {
		if strings.EqualFold(c.String(), d.chain) {
			return true
		}
	}
	return false
}

// chainTVL prefers the per-chain figure and falls back to the protocol total.
func (d *DeFiLlamaScanner) chainTVL(item gjson.Result) decimal.Decimal {
	if d.chain != "" {
		var perChain gjson.Result
		item.Get("chainTvls").ForEach(func(key, value gjson.Result) bool {
			if strings.EqualFold(key.String(), d.chain) {
				perChain = value
				return false
			}
			return true
		})
		if perChain.Exists() {
			return parseAmount(perChain.Raw)
		}
	}
	return parseAmount(item.Get("tvl").Raw)
}
