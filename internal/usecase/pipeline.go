package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"NarrativeScanner/internal/domain"
	"NarrativeScanner/internal/narrative"
	"NarrativeScanner/internal/ports"
)

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Source    ports.SignalSource
	Detector  ports.NarrativeDetector
	Generator ports.IdeaGenerator
	Writer    ports.ReportWriter
	Renderer  ports.Renderer
	Notifier  ports.Notifier
	Logger    *slog.Logger
	Clock     func() time.Time
	NewRunID  func() string
}

// RunOptions mirror the two command-line flags.
type RunOptions struct {
	Verbose bool
	Save    bool
}

// Result is what a run produced, plus where the report was saved.
type Result struct {
	Report    domain.Report
	SavedPath string
}

// Pipeline implements the narrative-detection workflow.
type Pipeline struct {
	source    ports.SignalSource
	detector  ports.NarrativeDetector
	generator ports.IdeaGenerator
	writer    ports.ReportWriter
	renderer  ports.Renderer
	notifier  ports.Notifier
	logger    *slog.Logger
	clock     func() time.Time
	newRunID  func() string
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	p := &Pipeline{
		source:    deps.Source,
		detector:  deps.Detector,
		generator: deps.Generator,
		writer:    deps.Writer,
		renderer:  deps.Renderer,
		notifier:  deps.Notifier,
		logger:    deps.Logger,
		clock:     deps.Clock,
		newRunID:  deps.NewRunID,
	}
	if p.detector == nil {
		p.detector = narrative.NewDetector(nil, nil)
	}
	if p.generator == nil {
		p.generator = narrative.NewGenerator(nil)
	}
	if p.clock == nil {
		p.clock = time.Now
	}
	if p.newRunID == nil {
		p.newRunID = uuid.NewString
	}
	return p
}

// Aggregate collects signals from every configured source.
func (p *Pipeline) Aggregate(ctx context.Context) []domain.Signal {
	if p.source == nil {
		return []domain.Signal{}
	}
	return p.source.Collect(ctx)
}

// DetectNarratives runs the rule engine over signals.
func (p *Pipeline) DetectNarratives(signals []domain.Signal) []domain.Narrative {
	return p.detector.Detect(signals)
}

// GenerateBuildIdeas maps narratives to templated ideas.
func (p *Pipeline) GenerateBuildIdeas(narratives []domain.Narrative) []domain.BuildIdea {
	return p.generator.Generate(narratives)
}

// Detect aggregates, detects and generates, and assembles the report without side effects.
func (p *Pipeline) Detect(ctx context.Context) domain.Report {
	signals := p.Aggregate(ctx)
	narratives := p.DetectNarratives(signals)
	ideas := p.GenerateBuildIdeas(narratives)
	return domain.NewReport(p.newRunID(), p.clock(), signals, narratives, ideas)
}

// Run executes one full pass: detect, optionally save, render, and notify.
func (p *Pipeline) Run(ctx context.Context, opts RunOptions) (Result, error) {
	report := p.Detect(ctx)
	result := Result{Report: report}

	p.info("narratives detected",
		"run_id", report.RunID,
		"signals", report.Summary.Signals,
		"narratives", report.Summary.Narratives,
		"ideas", report.Summary.BuildIdeas)

	if opts.Save && p.writer != nil {
		path, err := p.writer.Write(ctx, report)
		if err != nil {
			return result, fmt.Errorf("save report: %w", err)
		}
		result.SavedPath = path
		p.info("report saved", "path", path)
	}

	if p.renderer != nil {
		if err := p.renderer.Render(report, opts.Verbose); err != nil {
			return result, fmt.Errorf("render report: %w", err)
		}
	}

	if p.notifier != nil {
		if err := p.notifier.PublishDigest(ctx, BuildDigest(report)); err != nil {
			return result, fmt.Errorf("publish digest: %w", err)
		}
	}

	return result, nil
}

// BuildDigest renders the short plain-text form used by notifiers.
func BuildDigest(report domain.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Narrative scan %s (%d signals)\n\n", report.Day(), report.Summary.Signals)

	b.WriteString("Narratives:\n")
	for _, n := range report.Narratives {
		fmt.Fprintf(&b, "- %s [%s, %s]\n", n.Name, n.Confidence, n.Timeframe)
	}

	b.WriteString("\nBuild ideas:\n")
	for _, idea := range report.BuildIdeas {
		fmt.Fprintf(&b, "- %s (%s): %s\n", idea.Title, idea.NarrativeRef, idea.Description)
	}

	return b.String()
}

func (p *Pipeline) info(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}
