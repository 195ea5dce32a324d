// Package classification implements the link classification page: category
// management, the filtered link table and the per-link editor.
package classification

import (
	"context"
	"log/slog"
	"sync"

	"github.com/heartmarshall/minervactl/internal/dispatch"
	"github.com/heartmarshall/minervactl/internal/domain"
	"github.com/heartmarshall/minervactl/internal/loader"
	"github.com/heartmarshall/minervactl/internal/view"
)

type backendClient interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, name string) (domain.Category, error)
	RenameCategory(ctx context.Context, id int64, name string) (domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListLinks(ctx context.Context, rawQuery string) ([]domain.Link, error)
	GetLink(ctx context.Context, id int64) (domain.Link, error)
	UpdateLink(ctx context.Context, id int64, upd domain.LinkUpdate) error

	RecordClick(ctx context.Context, url string) error
}

type categoryResolver interface {
	Resolve(ctx context.Context, links []domain.Link) ([]domain.Link, error)
}

// Operator-facing texts.
const (
	labelLoadCategories = "Error al cargar las categorías"
	labelCreateCategory = "Error al agregar categoría"
	labelRenameCategory = "Error al actualizar categoría"
	labelDeleteCategory = "Error al eliminar categoría"
	labelLoadLinks      = "Error al cargar links"
	labelOpenLink       = "Error al cargar las categorías del link"
	labelClassify       = "Error al actualizar el link"
	labelSetStatus      = "Error al actualizar el estado"

	msgEmptyCategoryName = "El nombre de la categoría no puede estar vacío."
	msgConfirmDelete     = "¿Estás seguro de que quieres eliminar esta categoría? Esto no se puede deshacer."
)

// Surfaces are the tables the page renders into.
type Surfaces struct {
	Categories loader.Surface
	Links      loader.Surface
}

// Service holds the page state: category options, the link filter and the
// open editor.
type Service struct {
	client     backendClient
	resolver   categoryResolver
	dispatcher *dispatch.Dispatcher
	notifier   view.Notifier
	log        *slog.Logger

	categories *loader.Loader[domain.Category]
	links      *loader.Loader[domain.Link]
	catOpts    view.Options

	mu     sync.RWMutex
	filter domain.LinkFilter
	editor *Editor
}

// NewService creates the classification page service.
func NewService(
	log *slog.Logger,
	client backendClient,
	resolver categoryResolver,
	dispatcher *dispatch.Dispatcher,
	notifier view.Notifier,
	surfaces Surfaces,
) *Service {
	s := &Service{
		client:     client,
		resolver:   resolver,
		dispatcher: dispatcher,
		notifier:   notifier,
		log:        log.With("service", "classification"),
	}

	s.categories = loader.New(loader.Config[domain.Category]{
		Name: "categories",
		Fetch: func(ctx context.Context, _ string) ([]domain.Category, error) {
			return client.ListCategories(ctx)
		},
		Render:       view.CategoryRows,
		Surface:      surfaces.Categories,
		Notifier:     notifier,
		EmptyText:    view.EmptyCategories,
		FailureLabel: labelLoadCategories,
		OnLoaded: func(cats []domain.Category) {
			s.catOpts.Replace(view.CategoryOptions(cats))
		},
	}, log)

	s.links = loader.New(loader.Config[domain.Link]{
		Name:         "links",
		Fetch:        s.fetchLinks,
		Render:       view.LinkRows,
		Surface:      surfaces.Links,
		Notifier:     notifier,
		EmptyText:    view.EmptyLinks,
		FailureLabel: labelLoadLinks,
	}, log)

	return s
}

// fetchLinks lists links and fills in category names the backend sent as
// bare ids. A failed lookup keeps the ids.
func (s *Service) fetchLinks(ctx context.Context, query string) ([]domain.Link, error) {
	links, err := s.client.ListLinks(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, links), nil
}

func (s *Service) resolve(ctx context.Context, links []domain.Link) []domain.Link {
	if s.resolver == nil {
		return links
	}
	resolved, err := s.resolver.Resolve(ctx, links)
	if err != nil {
		s.log.WarnContext(ctx, "category names unresolved", slog.String("error", err.Error()))
		return links
	}
	return resolved
}

// reloadLinks is the follow-up used after link mutations.
func (s *Service) reloadLinks(ctx context.Context) error {
	_, err := s.LoadLinks(ctx)
	return err
}

// reloadCategories is the follow-up used after category mutations.
func (s *Service) reloadCategories(ctx context.Context) error {
	_, err := s.LoadCategories(ctx)
	return err
}
