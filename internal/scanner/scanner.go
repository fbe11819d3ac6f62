package scanner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"NarrativeScanner/internal/domain"
	"NarrativeScanner/internal/ports"
)

// Adapter wraps one read-only upstream call and returns formatted snippets.
type Adapter interface {
	Name() string
	Category() string
	Scan(ctx context.Context) ([]string, error)
}

// Registry keeps adapters in declaration order and runs them fail-soft.
type Registry struct {
	adapters []Adapter
	index    map[string]int
	timeout  time.Duration
	logger   *slog.Logger
}

var _ ports.SignalSource = (*Registry)(nil)

// NewRegistry builds an empty registry. A positive timeout bounds every scan.
func NewRegistry(timeout time.Duration, logger *slog.Logger) *Registry {
	return &Registry{index: map[string]int{}, timeout: timeout, logger: logger}
}

// Register appends an adapter, or replaces one with the same name in place.
func (r *Registry) Register(adapter Adapter) {
	if adapter == nil {
		return
	}
	if r.index == nil {
		r.index = map[string]int{}
	}
	if pos, ok := r.index[adapter.Name()]; ok {
		r.adapters[pos] = adapter
		return
	}
	r.index[adapter.Name()] = len(r.adapters)
	r.adapters = append(r.adapters, adapter)
}

// Resolve returns an adapter by name or an error if it is absent.
func (r *Registry) Resolve(name string) (Adapter, error) {
	if pos, ok := r.index[name]; ok {
		return r.adapters[pos], nil
	}
	return nil, fmt.Errorf("adapter %s is not registered", name)
}

// Names lists registered adapters in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.adapters))
	for _, a := range r.adapters {
		names = append(names, a.Name())
	}
	return names
}

// Collect runs every adapter concurrently and returns the non-empty results as
// signals in declaration order. Adapter failures only drop that adapter's signal.
func (r *Registry) Collect(ctx context.Context) []domain.Signal {
	results := make([][]string, len(r.adapters))

	var group errgroup.Group
	for i, adapter := range r.adapters {
		i, adapter := i, adapter
		group.Go(func() error {
			results[i] = r.SafeScan(ctx, adapter)
			return nil
		})
	}
	_ = group.Wait()

	signals := make([]domain.Signal, 0, len(r.adapters))
	for i, adapter := range r.adapters {
		if len(results[i]) == 0 {
			continue
		}
		signals = append(signals, domain.NewSignal(adapter.Name(), adapter.Category(), results[i]))
	}

	r.debug("collect done", "adapters", len(r.adapters), "signals", len(signals))
	return signals
}

// SafeScan runs one adapter under the registry timeout and converts any error
// or panic into an empty result.
func (r *Registry) SafeScan(ctx context.Context, adapter Adapter) (snippets []string) {
	defer func() {
		if rec := recover(); rec != nil {
			r.warn("adapter panicked", "adapter", adapter.Name(), "panic", fmt.Sprint(rec))
			snippets = []string{}
		}
	}()

	scanCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		scanCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	started := time.Now()
	out, err := adapter.Scan(scanCtx)
	if err != nil {
		r.warn("adapter failed", "adapter", adapter.Name(), "error", err, "elapsed", time.Since(started))
		return []string{}
	}
	if out == nil {
		out = []string{}
	}
	r.debug("adapter produced snippets", "adapter", adapter.Name(), "count", len(out), "elapsed", time.Since(started))
	return out
}

func (r *Registry) debug(msg string, args ...interface{}) {
	if r.logger != nil {
		r.logger.Debug(msg, args...)
	}
}

func (r *Registry) warn(msg string, args ...interface{}) {
	if r.logger != nil {
		r.logger.Warn(msg, args...)
	}
}
