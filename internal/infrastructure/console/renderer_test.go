package console

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NarrativeScanner/internal/domain"
)

func report() domain.Report {
	return domain.NewReport("run-1", time.Date(2026, time.October, 16, 8, 0, 0, 0, time.UTC),
		[]domain.Signal{domain.NewSignal("CoinGecko", "market", []string{"Bonk (BONK) rank #60"})},
		[]domain.Narrative{{
			Name:       "Meme Coin Infrastructure",
			Confidence: domain.ConfidenceHigh,
			Evidence:   "meme launches dominate",
			Timeframe:  domain.TimeframePeak,
			Keywords:   []string{"meme", "bonk"},
		}},
		[]domain.BuildIdea{{
			Title:        "Launch Safety Scanner",
			Description:  "checks launches",
			NarrativeRef: "Meme Coin Infrastructure",
			TargetMarket: "Retail meme traders",
			Difficulty:   domain.DifficultyMedium,
		}},
	)
}

func TestRenderSummary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf).Render(report(), false))
	out := buf.String()

	assert.Contains(t, out, "Signals: 1  Narratives: 1  Build ideas: 1")
	assert.Contains(t, out, "Sources: CoinGecko")
	assert.Contains(t, out, "1. Meme Coin Infrastructure")
	assert.Contains(t, out, "Launch Safety Scanner (Meme Coin Infrastructure, Medium difficulty)")
	assert.NotContains(t, out, "Bonk (BONK) rank #60")
	assert.NotContains(t, out, "meme launches dominate")
}

func TestRenderVerbose(t *testing.T) {
	t.Parallel()

	out := Format(report(), true)

	assert.Contains(t, out, "  - Bonk (BONK) rank #60")
	assert.Contains(t, out, "meme launches dominate")
	assert.Contains(t, out, "keywords: meme, bonk")
	assert.Contains(t, out, "target: Retail meme traders")
}
