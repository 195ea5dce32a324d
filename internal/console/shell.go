package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/heartmarshall/minervactl/internal/domain"
	"github.com/heartmarshall/minervactl/internal/view"
	"github.com/heartmarshall/minervactl/pkg/ctxutil"
)

const prompt = "minerva> "

// Shell reads events line by line and routes them through a Table.
type Shell struct {
	table *Table
	out   io.Writer
	drain func()
	log   *slog.Logger

	outMu   sync.Mutex
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewShell creates a Shell. drain, when non-nil, is called on exit after
// in-flight handlers finish, to flush background work such as audits.
func NewShell(table *Table, out io.Writer, drain func(), logger *slog.Logger) *Shell {
	return &Shell{
		table: table,
		out:   out,
		drain: drain,
		log:   logger.With("component", "console", "session", uuid.NewString()),
	}
}

// Run processes events from in until quit, exit, EOF or ctx cancellation,
// then waits for in-flight work.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-stop:
				return
			}
		}
		readErr <- sc.Err()
	}()

	defer s.Wait()
	s.running.Store(true)
	defer s.running.Store(false)

	s.printf("%s", prompt)
	for {
		select {
		case <-ctx.Done():
			s.log.InfoContext(ctx, "shell interrupted")
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("console: read: %w", err)
					}
				default:
				}
				return nil
			}
			if quit := s.handleLine(ctx, line); quit {
				return nil
			}
			s.printf("%s", prompt)
		}
	}
}

// Wait blocks until every in-flight handler and background task is done.
func (s *Shell) Wait() {
	s.wg.Wait()
	if s.drain != nil {
		s.drain()
	}
}

func (s *Shell) handleLine(ctx context.Context, line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false
	}

	ev, err := ParseLine(line)
	if err != nil {
		s.printf("❌ %v\n", err)
		return false
	}

	switch ev.Name {
	case "quit", "exit":
		return true
	case "wait":
		s.Wait()
		return false
	}

	b, ok := s.table.Lookup(ev.Name)
	if !ok {
		s.printf("Comando desconocido: %s. Escribí \"help\" para ver los comandos.\n", ev.Name)
		return false
	}

	ctx = ctxutil.WithAction(ctx, ev.Name)
	if b.Async {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.report(ctx, ev, b.Handle(ctx, ev))
			// The render above landed after the prompt; show it again.
			if s.running.Load() {
				s.printf("%s", prompt)
			}
		}()
		return false
	}
	s.report(ctx, ev, b.Handle(ctx, ev))
	return false
}

// report prints errors the handler has not already shown to the operator.
func (s *Shell) report(ctx context.Context, ev Event, err error) {
	if err == nil || errors.Is(err, domain.ErrStale) {
		return
	}
	s.log.DebugContext(ctx, "event failed", slog.String("event", ev.Name), slog.String("error", err.Error()))
	if view.WasAlerted(err) {
		return
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		s.printf("❌ %s\n", view.FailureMessage("Uso: "+s.usage(ev.Name), err))
		return
	}
	s.printf("❌ %v\n", err)
}

func (s *Shell) usage(name string) string {
	if b, ok := s.table.Lookup(name); ok && b.Usage != "" {
		return b.Usage
	}
	return name
}

func (s *Shell) printf(format string, args ...any) {
	s.outMu.Lock()
	defer s.outMu.Unlock()
	fmt.Fprintf(s.out, format, args...)
}
