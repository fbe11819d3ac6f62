package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, body string, inspect func(r *http.Request)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if inspect != nil {
			inspect(r)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestGitHubScannerScan(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)
	var got url.Values
	server := serve(t, `{"items":[
		{"name":"cool-nft-marketplace","stargazers_count":500,"language":"Rust"},
		{"name":"agent-kit","stargazers_count":120,"language":null},
		{"name":"","stargazers_count":1},
		{"name":"overflow","stargazers_count":3,"language":"Go"}
	]}`, func(r *http.Request) { got = r.URL.Query() })

	sc := NewGitHubScanner(server.Client(), Options{Endpoint: server.URL, Limit: 2}, "solana", func() time.Time { return now })
	lines, err := sc.Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"cool-nft-marketplace: 500 ⭐ (Rust)",
		"agent-kit: 120 ⭐ (Unknown)",
	}, lines)
	assert.Equal(t, "solana created:>=2026-09-16", got.Get("q"))
	assert.Equal(t, "stars", got.Get("sort"))
	assert.Equal(t, "2", got.Get("per_page"))
	assert.Equal(t, "GitHub", sc.Name())
	assert.Equal(t, "development", sc.Category())
}

func TestRedditScannerScan(t *testing.T) {
	t.Parallel()

	var path string
	server := serve(t, `{"data":{"children":[
		{"data":{"title":"Weekly thread","score":5,"stickied":true}},
		{"data":{"title":"Jito &amp; restaking <b>explained</b>","score":321}},
		{"data":{"title":"Bonk to the moon","score":99}}
	]}}`, func(r *http.Request) { path = r.URL.Path })

	sc := NewRedditScanner(server.Client(), Options{Endpoint: server.URL + "/r/%s/hot.json"}, "solana")
	lines, err := sc.Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/r/solana/hot.json", path)
	assert.Equal(t, []string{
		"Jito & restaking explained (321 upvotes)",
		"Bonk to the moon (99 upvotes)",
	}, lines)
}

func TestNewsScannerScan(t *testing.T) {
	t.Parallel()

	var categories string
	server := serve(t, `{"Data":[{"title":"USDC   payments grow"},{"title":""},{"title":"DePIN &quot;summer&quot;"}]}`,
		func(r *http.Request) { categories = r.URL.Query().Get("categories") })

	sc := NewNewsScanner(server.Client(), Options{Endpoint: server.URL}, "sol")
	lines, err := sc.Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "SOL", categories)
	assert.Equal(t, []string{"USDC payments grow", `DePIN "summer"`}, lines)
}

func TestDeFiLlamaScannerScan(t *testing.T) {
	t.Parallel()

	server := serve(t, `[
		{"name":"Jito","category":"Liquid Staking","chains":["Solana"],"tvl":2500000000,"chainTvls":{"Solana":2400000000}},
		{"name":"Aave","category":"Lending","chains":["Ethereum","Polygon"],"tvl":9000000000},
		{"name":"Raydium","category":"Dexes","chains":["solana"],"tvl":1500000000.5},
		{"name":"Tiny","chains":["Solana"],"tvl":512.4},
		{"name":"Broken","category":"Dexes","chains":["Solana"],"tvl":null}
	]`, nil)

	sc := NewDeFiLlamaScanner(server.Client(), Options{Endpoint: server.URL, Limit: 3}, "Solana")
	lines, err := sc.Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Jito (Liquid Staking): $2.40B",
		"Raydium (Dexes): $1.50B",
		"Tiny (Other): $512",
	}, lines)
}

func TestCoinGeckoScannerScan(t *testing.T) {
	t.Parallel()

	server := serve(t, `{"coins":[
		{"item":{"name":"Bonk","symbol":"bonk","market_cap_rank":60}},
		{"item":{"name":"Fresh","symbol":"frsh","market_cap_rank":null}}
	]}`, nil)

	sc := NewCoinGeckoScanner(server.Client(), Options{Endpoint: server.URL})
	lines, err := sc.Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Bonk (BONK) rank #60", "Fresh (FRSH) rank n/a"}, lines)
}

func TestMalformedJSONYieldsEmpty(t *testing.T) {
	t.Parallel()

	server := serve(t, `{"coins": [ this is not json`, nil)

	lines, err := NewCoinGeckoScanner(server.Client(), Options{Endpoint: server.URL}).Scan(context.Background())
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestStatusErrorIsReturned(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := NewNewsScanner(server.Client(), Options{Endpoint: server.URL}, "SOL").Scan(context.Background())
	assert.ErrorContains(t, err, "429")
}

func TestCompactUSD(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"1250000000": "$1.25B",
		"830100000":  "$830.10M",
		"12000":      "$12.00K",
		"999.6":      "$1000",
		"0":          "$0",
	}
	for in, want := range cases {
		assert.Equal(t, want, compactUSD(decimal.RequireFromString(in)), in)
	}
	assert.True(t, parseAmount("null").IsZero())
	assert.True(t, parseAmount("garbage").IsZero())
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b", plainText("  a \n b "))
	assert.Equal(t, "Tom & Jerry", plainText("<p>Tom &amp; <i>Jerry</i></p>"))
}
