// Package dispatch runs operator mutations: one primary request, then an
// optional fire-and-forget audit, then the follow-ups in order.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/minervactl/internal/domain"
	"github.com/heartmarshall/minervactl/internal/view"
	"github.com/heartmarshall/minervactl/pkg/ctxutil"
)

const defaultAuditTimeout = 10 * time.Second

// FollowUp runs after a successful mutation. It reports its own failures to
// the operator.
type FollowUp func(ctx context.Context) error

// Mutation is a single state-changing operator action.
type Mutation struct {
	// Name identifies the action in logs, e.g. "category.create".
	Name string
	// FailureLabel prefixes the alert shown when Do fails.
	FailureLabel string
	Do           func(ctx context.Context) error
	// Audit, when set, is started in the background after Do succeeds.
	Audit func(ctx context.Context) error
	Then  []FollowUp
}

// Dispatcher executes mutations and tracks background audit work.
type Dispatcher struct {
	notifier     view.Notifier
	auditTimeout time.Duration
	log          *slog.Logger

	wg sync.WaitGroup
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithAuditTimeout bounds every background task.
func WithAuditTimeout(d time.Duration) Option {
	return func(disp *Dispatcher) { disp.auditTimeout = d }
}

// New creates a Dispatcher that alerts through notifier.
func New(notifier view.Notifier, logger *slog.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		notifier:     notifier,
		auditTimeout: defaultAuditTimeout,
		log:          logger.With("component", "dispatch"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch performs m. If Do fails, exactly one alert is shown, nothing else
// runs, and the returned error is marked as alerted. Follow-up failures do
// not fail the mutation.
func (d *Dispatcher) Dispatch(ctx context.Context, m Mutation) error {
	ctx = ctxutil.WithAction(ctx, m.Name)

	if err := m.Do(ctx); err != nil {
		d.log.ErrorContext(ctx, "mutation failed",
			slog.String("action", m.Name),
			slog.String("error", err.Error()),
		)
		d.notifier.Alert(view.FailureMessage(m.FailureLabel, err))
		return view.MarkAlerted(fmt.Errorf("%s: %w", m.Name, err))
	}

	d.log.DebugContext(ctx, "mutation done", slog.String("action", m.Name))

	if m.Audit != nil {
		d.Go(ctx, m.Name+".audit", m.Audit)
	}

	for i, f := range m.Then {
		if err := f(ctx); err != nil && !errors.Is(err, domain.ErrStale) {
			d.log.WarnContext(ctx, "follow-up failed",
				slog.String("action", m.Name),
				slog.Int("step", i),
				slog.String("error", err.Error()),
			)
		}
	}
	return nil
}

// Go runs fn in the background, detached from ctx cancellation and bounded
// by the audit timeout. Failures are logged and never surface.
func (d *Dispatcher) Go(ctx context.Context, name string, fn func(ctx context.Context) error) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.auditTimeout)
		defer cancel()

		if err := fn(bg); err != nil {
			d.log.WarnContext(bg, "background task failed",
				slog.String("task", name),
				slog.String("error", err.Error()),
			)
		}
	}()
}

// Wait blocks until every background task has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
