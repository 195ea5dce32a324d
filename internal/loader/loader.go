// Package loader fetches a list from the backend and renders it into a
// table surface. Only the most recently started load may write the surface.
package loader

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/heartmarshall/minervactl/internal/domain"
	"github.com/heartmarshall/minervactl/internal/view"
)

// Surface is the display target of a Loader.
type Surface interface {
	Replace(rows []view.Row)
	ShowEmpty(text string)
}

// FetchFunc retrieves the items for an encoded filter query.
type FetchFunc[T any] func(ctx context.Context, query string) ([]T, error)

// RenderFunc maps items to table rows.
type RenderFunc[T any] func(items []T) []view.Row

// Config describes one list.
type Config[T any] struct {
	Name         string
	Fetch        FetchFunc[T]
	Render       RenderFunc[T]
	Surface      Surface
	Notifier     view.Notifier
	EmptyText    string
	FailureLabel string
	// OnLoaded, when set, receives the items of every rendered load.
	OnLoaded func(items []T)
}

// Loader runs loads for a single list.
type Loader[T any] struct {
	cfg        Config[T]
	generation atomic.Uint64
	log        *slog.Logger

	// renderMu serializes the latest-check with the surface write.
	renderMu sync.Mutex
}

// New creates a Loader.
func New[T any](cfg Config[T], logger *slog.Logger) *Loader[T] {
	return &Loader[T]{
		cfg: cfg,
		log: logger.With("component", "loader", "list", cfg.Name),
	}
}

// Load fetches the list for query and renders it. It returns the number of
// items rendered. A load overtaken by a newer one returns domain.ErrStale
// and leaves the surface alone. A failed load alerts once, keeps the
// previous content and returns an error marked as alerted.
func (l *Loader[T]) Load(ctx context.Context, query string) (int, error) {
	gen := l.generation.Add(1)

	items, err := l.cfg.Fetch(ctx, query)

	l.renderMu.Lock()
	defer l.renderMu.Unlock()

	if !l.isLatest(gen) {
		l.log.DebugContext(ctx, "discarding stale load",
			slog.Uint64("generation", gen),
			slog.String("query", query),
		)
		return 0, domain.ErrStale
	}

	if err != nil {
		l.log.ErrorContext(ctx, "load failed",
			slog.String("query", query),
			slog.String("error", err.Error()),
		)
		l.cfg.Notifier.Alert(view.FailureMessage(l.cfg.FailureLabel, err))
		return 0, view.MarkAlerted(fmt.Errorf("load %s: %w", l.cfg.Name, err))
	}

	if len(items) == 0 {
		l.cfg.Surface.ShowEmpty(l.cfg.EmptyText)
	} else {
		l.cfg.Surface.Replace(l.cfg.Render(items))
	}
	if l.cfg.OnLoaded != nil {
		l.cfg.OnLoaded(items)
	}

	l.log.DebugContext(ctx, "load rendered",
		slog.String("query", query),
		slog.Int("items", len(items)),
	)
	return len(items), nil
}

func (l *Loader[T]) isLatest(gen uint64) bool {
	return l.generation.Load() == gen
}
