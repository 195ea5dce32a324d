// Package activity implements the activity log page: user and type filter
// options, the filtered activity table and report exports.
package activity

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/heartmarshall/minervactl/internal/domain"
	"github.com/heartmarshall/minervactl/internal/loader"
	"github.com/heartmarshall/minervactl/internal/view"
)

type activityClient interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListActivities(ctx context.Context, rawQuery string) ([]domain.Activity, error)
	ExportActivities(ctx context.Context, format domain.ExportFormat, rawQuery string, w io.Writer) (string, error)
}

// Operator-facing failure labels.
const (
	labelLoadActivities = "Error al cargar actividades"
	labelLoadUsers      = "Error al cargar usuarios"
	labelExport         = "Error al exportar actividades"
)

// Surfaces are the tables the page renders into.
type Surfaces struct {
	Activities loader.Surface
	Users      loader.Surface
}

// Service holds the page state: the current filter and the user options.
type Service struct {
	client   activityClient
	notifier view.Notifier
	log      *slog.Logger

	activities *loader.Loader[domain.Activity]
	users      *loader.Loader[domain.User]
	userOpts   view.Options

	mu     sync.RWMutex
	filter domain.ActivityFilter
}

// NewService creates the activity page service.
func NewService(
	log *slog.Logger,
	client activityClient,
	notifier view.Notifier,
	surfaces Surfaces,
) *Service {
	s := &Service{
		client:   client,
		notifier: notifier,
		log:      log.With("service", "activity"),
	}

	s.activities = loader.New(loader.Config[domain.Activity]{
		Name:         "activities",
		Fetch:        client.ListActivities,
		Render:       view.ActivityRows,
		Surface:      surfaces.Activities,
		Notifier:     notifier,
		EmptyText:    view.EmptyActivities,
		FailureLabel: labelLoadActivities,
	}, log)

	s.users = loader.New(loader.Config[domain.User]{
		Name: "users",
		Fetch: func(ctx context.Context, _ string) ([]domain.User, error) {
			return client.ListUsers(ctx)
		},
		Render:       view.UserRows,
		Surface:      surfaces.Users,
		Notifier:     notifier,
		EmptyText:    view.EmptyUsers,
		FailureLabel: labelLoadUsers,
		OnLoaded: func(users []domain.User) {
			s.userOpts.Replace(view.UserOptions(users))
		},
	}, log)

	return s
}
