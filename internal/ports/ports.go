package ports

import (
	"context"
	"time"

	"NarrativeScanner/internal/domain"
)

// SignalSource aggregates upstream adapters into signals. It never fails.
type SignalSource interface {
	Collect(ctx context.Context) []domain.Signal
}

// NarrativeDetector turns signals into narratives.
type NarrativeDetector interface {
	Detect(signals []domain.Signal) []domain.Narrative
}

// IdeaGenerator maps narratives to build ideas.
type IdeaGenerator interface {
	Generate(narratives []domain.Narrative) []domain.BuildIdea
}

// ReportWriter persists a finished report and returns where it went.
type ReportWriter interface {
	Write(ctx context.Context, report domain.Report) (string, error)
}

// Renderer prints a report to the console.
type Renderer interface {
	Render(report domain.Report, verbose bool) error
}

// Notifier streams a report digest to Telegram or other channels.
type Notifier interface {
	PublishDigest(ctx context.Context, digest string) error
}

// Scheduler controls when pipelines execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
