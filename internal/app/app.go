package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"NarrativeScanner/internal/config"
	"NarrativeScanner/internal/infrastructure/console"
	"NarrativeScanner/internal/infrastructure/scheduler"
	"NarrativeScanner/internal/infrastructure/sources"
	"NarrativeScanner/internal/infrastructure/storage"
	"NarrativeScanner/internal/infrastructure/telegram"
	"NarrativeScanner/internal/logging"
	"NarrativeScanner/internal/narrative"
	"NarrativeScanner/internal/ports"
	"NarrativeScanner/internal/scanner"
	"NarrativeScanner/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	registry *scanner.Registry
	pipeline *usecase.Pipeline
}

// New builds a runnable application instance writing console output to out.
func New(cfg config.Config, baseLogger *slog.Logger, out io.Writer) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	registry := NewRegistry(cfg, sources.NewHTTPClient(cfg.HTTP.Timeout()), baseLogger.With("component", "scanner"))

	var notifier ports.Notifier
	if cfg.Notifications.Telegram.Configured() {
		notifier = telegram.NewNotifier(cfg.Notifications.Telegram.BotToken, cfg.Notifications.Telegram.ChatID)
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:    registry,
		Detector:  narrative.NewDetector(narrative.DefaultRules(), narrative.DefaultNarratives()),
		Generator: narrative.NewGenerator(narrative.DefaultCatalog()),
		Writer:    storage.NewJSONWriter(cfg.Output.Dir),
		Renderer:  console.NewRenderer(out),
		Notifier:  notifier,
		Logger:    baseLogger.With("component", "pipeline"),
	})

	return &Application{cfg: cfg, logger: baseLogger, registry: registry, pipeline: pipeline}
}

// NewRegistry registers the enabled adapters in their fixed declared order.
func NewRegistry(cfg config.Config, client *http.Client, logger *slog.Logger) *scanner.Registry {
	registry := scanner.NewRegistry(cfg.HTTP.Timeout(), logger)
	ua := cfg.HTTP.UserAgent
	src := cfg.Sources

	options := func(s config.SourceConfig) (sources.Options, bool) {
		if !s.IsEnabled() || s.Endpoint == "" {
			return sources.Options{}, false
		}
		return sources.Options{Endpoint: s.Endpoint, Limit: s.Limit, UserAgent: ua}, true
	}

	if opts, ok := options(src.GitHub); ok {
		registry.Register(sources.NewGitHubScanner(client, opts, cfg.Ecosystem.Name, nil))
	}
	if opts, ok := options(src.Reddit); ok {
		registry.Register(sources.NewRedditScanner(client, opts, cfg.Ecosystem.Name))
	}
	if opts, ok := options(src.News); ok {
		registry.Register(sources.NewNewsScanner(client, opts, cfg.Ecosystem.Symbol))
	}
	if opts, ok := options(src.DeFiLlama); ok {
		registry.Register(sources.NewDeFiLlamaScanner(client, opts, cfg.Ecosystem.Chain))
	}
	if opts, ok := options(src.CoinGecko); ok {
		registry.Register(sources.NewCoinGeckoScanner(client, opts))
	}

	return registry
}

// Pipeline exposes the wired pipeline for programmatic use.
func (a *Application) Pipeline() *usecase.Pipeline {
	return a.pipeline
}

// Sources lists the adapters that will be queried.
func (a *Application) Sources() []string {
	return a.registry.Names()
}

// Run performs a single pipeline execution, or keeps repeating it on the
// configured schedule until ctx is cancelled.
func (a *Application) Run(ctx context.Context, opts usecase.RunOptions) error {
	if a.pipeline == nil {
		return nil
	}

	interval := a.cfg.Schedule.Every()
	if interval <= 0 {
		_, err := a.pipeline.Run(ctx, opts)
		return err
	}

	driver := scheduler.NewIntervalScheduler(interval)
	sched := usecase.NewScheduler(driver, a.pipeline, opts, a.logger.With("component", "scheduler"))
	if err := sched.Start(ctx); err != nil {
		return err
	}
	a.logger.Info("scheduled runs started", "interval", interval.String(), "sources", a.registry.Names())

	<-ctx.Done()
	return sched.Stop(context.WithoutCancel(ctx))
}
