package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NarrativeScanner/internal/domain"
)

func sampleReport() domain.Report {
	signals := []domain.Signal{domain.NewSignal("GitHub", "development", []string{"cool-nft-marketplace: 500 ⭐ (Rust)"})}
	narratives := []domain.Narrative{{Name: "NFT Innovation", Confidence: domain.ConfidenceMedium, Timeframe: "Ongoing"}}
	ideas := []domain.BuildIdea{{Title: "NFT Royalty Analytics", NarrativeRef: "NFT Innovation", Difficulty: domain.DifficultyLow}}
	at := time.Date(2026, time.October, 16, 9, 30, 0, 0, time.UTC)
	return domain.NewReport("run-1", at, signals, narratives, ideas)
}

func TestJSONWriterWrite(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "reports")
	path, err := NewJSONWriter(dir).Write(context.Background(), sampleReport())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "narratives-2026-10-16.json"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	for _, key := range []string{"runId", "timestamp", "signals", "narratives", "buildIdeas", "summary"} {
		assert.Contains(t, doc, key)
	}
	assert.Equal(t, "2026-10-16T09:30:00Z", doc["timestamp"])

	ideas := doc["buildIdeas"].([]any)
	assert.Equal(t, "NFT Innovation", ideas[0].(map[string]any)["narrative"])

	summary := doc["summary"].(map[string]any)
	assert.EqualValues(t, 1, summary["signals"])
	assert.EqualValues(t, 1, summary["buildIdeas"])
}

func TestJSONWriterFailsOnUnwritableDir(t *testing.T) {
	t.Parallel()

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := NewJSONWriter(filepath.Join(blocker, "sub")).Write(context.Background(), sampleReport())
	assert.ErrorContains(t, err, "create output dir")
}
