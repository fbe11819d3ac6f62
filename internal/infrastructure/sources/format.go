package sources

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
)

var (
	billion  = decimal.NewFromInt(1_000_000_000)
	million  = decimal.NewFromInt(1_000_000)
	thousand = decimal.NewFromInt(1_000)
)

// plainText drops markup and entities from upstream titles and collapses whitespace.
func plainText(raw string) string {
	if !strings.ContainsAny(raw, "<&") {
		return strings.Join(strings.Fields(raw), " ")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return strings.Join(strings.Fields(raw), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// compactUSD renders an amount as $1.25B, $830.10M, $12.00K or $512.
func compactUSD(amount decimal.Decimal) string {
	abs := amount.Abs()
	switch {
	case abs.GreaterThanOrEqual(billion):
		return "$" + amount.Div(billion).StringFixed(2) + "B"
	case abs.GreaterThanOrEqual(million):
		return "$" + amount.Div(million).StringFixed(2) + "M"
	case abs.GreaterThanOrEqual(thousand):
		return "$" + amount.Div(thousand).StringFixed(2) + "K"
	default:
		return "$" + amount.StringFixed(0)
	}
}

// parseAmount reads a raw JSON number; anything unparsable counts as zero.
func parseAmount(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.Trim(raw, `"`))
	if err != nil {
		return decimal.Zero
	}
	return d
}
