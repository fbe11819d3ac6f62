package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"NarrativeScanner/internal/domain"
	"NarrativeScanner/internal/narrative"
)

type staticSource struct{ signals []domain.Signal }

func (s staticSource) Collect(context.Context) []domain.Signal { return s.signals }

type MockWriter struct{ mock.Mock }

func (m *MockWriter) Write(ctx context.Context, report domain.Report) (string, error) {
	args := m.Called(ctx, report)
	return args.String(0), args.Error(1)
}

type MockRenderer struct{ mock.Mock }

func (m *MockRenderer) Render(report domain.Report, verbose bool) error {
	return m.Called(report, verbose).Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) PublishDigest(ctx context.Context, digest string) error {
	return m.Called(ctx, digest).Error(0)
}

var fixedNow = time.Date(2026, time.October, 16, 7, 0, 0, 0, time.UTC)

func newTestPipeline(signals []domain.Signal, deps PipelineDeps) *Pipeline {
	deps.Source = staticSource{signals: signals}
	deps.Detector = narrative.NewDetector(nil, nil)
	deps.Generator = narrative.NewGenerator(narrative.DefaultCatalog())
	deps.Clock = func() time.Time { return fixedNow }
	deps.NewRunID = func() string { return "run-42" }
	return NewPipeline(deps)
}

func TestRunSavesRendersAndNotifies(t *testing.T) {
	t.Parallel()

	signals := []domain.Signal{
		domain.NewSignal("CoinGecko", "market", []string{"Bonk (BONK) rank #60", "dogwifhat (WIF) rank #40"}),
	}

	writer := new(MockWriter)
	renderer := new(MockRenderer)
	notifier := new(MockNotifier)
	writer.On("Write", mock.Anything, mock.AnythingOfType("domain.Report")).Return("reports/narratives-2026-10-16.json", nil)
	renderer.On("Render", mock.AnythingOfType("domain.Report"), true).Return(nil)
	notifier.On("PublishDigest", mock.Anything, mock.MatchedBy(func(d string) bool {
		return strings.Contains(d, "Meme Coin Infrastructure")
	})).Return(nil)

	p := newTestPipeline(signals, PipelineDeps{Writer: writer, Renderer: renderer, Notifier: notifier})
	result, err := p.Run(context.Background(), RunOptions{Verbose: true, Save: true})
	require.NoError(t, err)

	assert.Equal(t, "reports/narratives-2026-10-16.json", result.SavedPath)
	report := result.Report
	assert.Equal(t, "run-42", report.RunID)
	assert.Equal(t, fixedNow, report.Timestamp)
	assert.Equal(t, narrative.MemeCoinInfrastructure, report.Narratives[0].Name)
	assert.Len(t, report.Narratives, 3)
	assert.Len(t, report.BuildIdeas, 5)
	assert.Equal(t, domain.Summary{
		Signals:        1,
		Narratives:     3,
		BuildIdeas:     5,
		Sources:        []string{"CoinGecko"},
		HighConfidence: 1,
	}, report.Summary)

	writer.AssertExpectations(t)
	renderer.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestRunWithoutSaveSkipsWriter(t *testing.T) {
	t.Parallel()

	writer := new(MockWriter)
	renderer := new(MockRenderer)
	renderer.On("Render", mock.Anything, false).Return(nil)

	p := newTestPipeline(nil, PipelineDeps{Writer: writer, Renderer: renderer})
	result, err := p.Run(context.Background(), RunOptions{})
	require.NoError(t, err)

	assert.Empty(t, result.SavedPath)
	writer.AssertNotCalled(t, "Write", mock.Anything, mock.Anything)
	assert.Len(t, result.Report.Narratives, narrative.MinNarratives)
	assert.NotNil(t, result.Report.Signals)
}

func TestRunPropagatesWriteFailure(t *testing.T) {
	t.Parallel()

	writer := new(MockWriter)
	renderer := new(MockRenderer)
	writer.On("Write", mock.Anything, mock.Anything).Return("", errors.New("disk full"))

	p := newTestPipeline(nil, PipelineDeps{Writer: writer, Renderer: renderer})
	_, err := p.Run(context.Background(), RunOptions{Save: true})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save report: disk full")
	renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
}

func TestRunPropagatesNotifierFailure(t *testing.T) {
	t.Parallel()

	notifier := new(MockNotifier)
	notifier.On("PublishDigest", mock.Anything, mock.Anything).Return(errors.New("telegram down"))

	p := newTestPipeline(nil, PipelineDeps{Notifier: notifier})
	_, err := p.Run(context.Background(), RunOptions{})

	assert.ErrorContains(t, err, "publish digest")
}

func TestOperationsAreIndependentlyCallable(t *testing.T) {
	t.Parallel()

	p := NewPipeline(PipelineDeps{})

	assert.Empty(t, p.Aggregate(context.Background()))

	narratives := p.DetectNarratives([]domain.Signal{{Source: "GitHub", Data: []string{"cool-nft-marketplace: 500 stars"}}})
	assert.Equal(t, narrative.NFTInnovation, narratives[0].Name)

	ideas := p.GenerateBuildIdeas([]domain.Narrative{{Name: narrative.MemeCoinInfrastructure}})
	assert.Len(t, ideas, 3)

	report := p.Detect(context.Background())
	assert.NotEmpty(t, report.RunID)
	assert.Len(t, report.Narratives, 2)
}

func TestBuildDigest(t *testing.T) {
	t.Parallel()

	report := domain.NewReport("r", fixedNow, nil,
		[]domain.Narrative{{Name: narrative.AIAgents, Confidence: domain.ConfidenceHigh, Timeframe: domain.TimeframeEmerging}},
		[]domain.BuildIdea{{Title: "Agent Wallet Guardrails", NarrativeRef: narrative.AIAgents, Description: "caps spend"}},
	)

	digest := BuildDigest(report)
	assert.Contains(t, digest, "Narrative scan 2026-10-16 (0 signals)")
	assert.Contains(t, digest, "- AI Agents [High, Emerging]")
	assert.Contains(t, digest, "- Agent Wallet Guardrails (AI Agents): caps spend")
}
