package classification

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/minervactl/internal/adapter/minerva"
	"github.com/heartmarshall/minervactl/internal/dispatch"
	"github.com/heartmarshall/minervactl/internal/domain"
	"github.com/heartmarshall/minervactl/internal/view"
	"github.com/heartmarshall/minervactl/internal/view/viewtest"
)

//go:generate moq -out backend_client_mock_test.go -pkg classification . backendClient
//go:generate moq -out category_resolver_mock_test.go -pkg classification . categoryResolver

type testPage struct {
	svc        *Service
	client     *backendClientMock
	dispatcher *dispatch.Dispatcher
	notifier   *viewtest.Notifier
	categories *view.Table
	links      *view.Table
}

func newTestPage(t *testing.T, client *backendClientMock, resolver categoryResolver) testPage {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := testPage{
		client:     client,
		notifier:   &viewtest.Notifier{},
		categories: view.NewTable("Categorías", view.CategoryHeaders, nil),
		links:      view.NewTable("Links", view.LinkHeaders, nil),
	}
	p.dispatcher = dispatch.New(p.notifier, logger)
	p.svc = NewService(logger, client, resolver, p.dispatcher, p.notifier,
		Surfaces{Categories: p.categories, Links: p.links})
	return p
}

func listCategoriesOK(cats ...domain.Category) func(context.Context) ([]domain.Category, error) {
	return func(context.Context) ([]domain.Category, error) { return cats, nil }
}

func listLinksOK(links ...domain.Link) func(context.Context, string) ([]domain.Link, error) {
	return func(context.Context, string) ([]domain.Link, error) { return links, nil }
}

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

func TestLoadCategories_FillsTableAndOptions(t *testing.T) {
	t.Parallel()

	client := &backendClientMock{
		ListCategoriesFunc: listCategoriesOK(domain.Category{ID: 1, Name: "Policiales"}, domain.Category{ID: 2, Name: "Economía"}),
	}
	p := newTestPage(t, client, nil)

	n, err := p.svc.LoadCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []view.Row{{"1", "Policiales"}, {"2", "Economía"}}, p.categories.Rows())
	assert.Equal(t, []view.Option{{Value: "1", Label: "Policiales"}, {Value: "2", Label: "Economía"}}, p.svc.CategoryOptions())
}

func TestLoadCategories_Empty(t *testing.T) {
	t.Parallel()

	p := newTestPage(t, &backendClientMock{ListCategoriesFunc: listCategoriesOK()}, nil)

	_, err := p.svc.LoadCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []view.Row{{view.EmptyCategories}}, p.categories.Rows())
}

func TestCreateCategory_Success(t *testing.T) {
	t.Parallel()

	client := &backendClientMock{
		CreateCategoryFunc: func(ctx context.Context, name string) (domain.Category, error) {
			return domain.Category{ID: 9, Name: name}, nil
		},
		ListCategoriesFunc: listCategoriesOK(domain.Category{ID: 9, Name: "Judiciales"}),
	}
	p := newTestPage(t, client, nil)
	field := view.NewTextField("  Asuntos   Judiciales ")

	err := p.svc.CreateCategory(context.Background(), field)
	require.NoError(t, err)

	require.Len(t, client.CreateCategoryCalls(), 1)
	assert.Equal(t, "Asuntos Judiciales", client.CreateCategoryCalls()[0].Name)
	assert.Equal(t, "", field.Value(), "input cleared")
	assert.Len(t, client.ListCategoriesCalls(), 1, "exactly one reload")
	assert.Empty(t, p.notifier.Alerts())
}

func TestCreateCategory_EmptyName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "   "} {
		name := name
		t.Run(fmt.Sprintf("%q", name), func(t *testing.T) {
			t.Parallel()

			client := &backendClientMock{}
			p := newTestPage(t, client, nil)
			field := view.NewTextField(name)

			err := p.svc.CreateCategory(context.Background(), field)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.True(t, view.WasAlerted(err))

			assert.Equal(t, []string{msgEmptyCategoryName}, p.notifier.Alerts())
			assert.Empty(t, client.CreateCategoryCalls())
			assert.Empty(t, client.ListCategoriesCalls())
			assert.Equal(t, name, field.Value())
		})
	}
}

func TestCreateCategory_ServerError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		wantAlert string
	}{
		{
			name:      "detail",
			err:       fmt.Errorf("minerva: create category: %w", &minerva.APIError{Status: 400, Detail: `{"nombre":["categoría with this nombre already exists."]}`}),
			wantAlert: labelCreateCategory + `: {"nombre":["categoría with this nombre already exists."]}`,
		},
		{
			name:      "no detail",
			err:       &minerva.APIError{Status: 500},
			wantAlert: labelCreateCategory + ". " + view.GenericFailure,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := &backendClientMock{
				CreateCategoryFunc: func(context.Context, string) (domain.Category, error) {
					return domain.Category{}, tt.err
				},
			}
			p := newTestPage(t, client, nil)
			field := view.NewTextField("Policiales")

			err := p.svc.CreateCategory(context.Background(), field)
			require.Error(t, err)

			assert.Equal(t, []string{tt.wantAlert}, p.notifier.Alerts())
			assert.Empty(t, client.ListCategoriesCalls(), "no reload on failure")
			assert.Equal(t, "Policiales", field.Value(), "input kept on failure")
		})
	}
}

func TestRenameCategory(t *testing.T) {
	t.Parallel()

	client := &backendClientMock{
		RenameCategoryFunc: func(ctx context.Context, id int64, name string) (domain.Category, error) {
			return domain.Category{ID: id, Name: name}, nil
		},
		ListCategoriesFunc: listCategoriesOK(domain.Category{ID: 3, Name: "Deportes"}),
	}
	p := newTestPage(t, client, nil)

	require.NoError(t, p.svc.RenameCategory(context.Background(), 3, view.NewTextField("Deportes")))
	require.Len(t, client.RenameCategoryCalls(), 1)
	assert.Equal(t, int64(3), client.RenameCategoryCalls()[0].ID)
	assert.Len(t, client.ListCategoriesCalls(), 1)
}

func TestRenameCategory_EmptyName(t *testing.T) {
	t.Parallel()

	client := &backendClientMock{}
	p := newTestPage(t, client, nil)

	err := p.svc.RenameCategory(context.Background(), 3, view.NewTextField(" "))
	require.Error(t, err)
	assert.Equal(t, []string{msgEmptyCategoryName}, p.notifier.Alerts())
	assert.Empty(t, client.RenameCategoryCalls())
}

func TestDeleteCategory(t *testing.T) {
	t.Parallel()

	t.Run("confirmed", func(t *testing.T) {
		t.Parallel()

		client := &backendClientMock{
			DeleteCategoryFunc: func(context.Context, int64) error { return nil },
			ListCategoriesFunc: listCategoriesOK(),
		}
		p := newTestPage(t, client, nil)
		confirm := &viewtest.Confirmer{Answer: true}

		deleted, err := p.svc.DeleteCategory(context.Background(), 4, confirm)
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Equal(t, []string{msgConfirmDelete}, confirm.Prompts())
		require.Len(t, client.DeleteCategoryCalls(), 1)
		assert.Equal(t, int64(4), client.DeleteCategoryCalls()[0].ID)
		assert.Len(t, client.ListCategoriesCalls(), 1)
	})

	t.Run("declined", func(t *testing.T) {
		t.Parallel()

		client := &backendClientMock{}
		p := newTestPage(t, client, nil)

		deleted, err := p.svc.DeleteCategory(context.Background(), 4, &viewtest.Confirmer{Answer: false})
		require.NoError(t, err)
		assert.False(t, deleted)
		assert.Empty(t, client.DeleteCategoryCalls())
		assert.Empty(t, p.notifier.Alerts())
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()

		client := &backendClientMock{
			DeleteCategoryFunc: func(context.Context, int64) error {
				return &minerva.APIError{Status: 404, Detail: "No encontrado."}
			},
		}
		p := newTestPage(t, client, nil)

		deleted, err := p.svc.DeleteCategory(context.Background(), 4, view.AlwaysConfirm{})
		require.Error(t, err)
		assert.False(t, deleted)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, []string{labelDeleteCategory + ": No encontrado."}, p.notifier.Alerts())
		assert.Empty(t, client.ListCategoriesCalls())
	})
}

// ---------------------------------------------------------------------------
// Links
// ---------------------------------------------------------------------------

func TestLoadLinks_UsesFilterAndResolver(t *testing.T) {
	t.Parallel()

	client := &backendClientMock{
		ListLinksFunc: listLinksOK(
			domain.Link{ID: 1, URL: "https://a", Status: domain.LinkStatusPending, Categories: []domain.CategoryRef{{ID: 4}}},
			domain.Link{ID: 2, URL: "https://b", Status: domain.LinkStatusApproved},
		),
	}
	resolver := &categoryResolverMock{
		ResolveFunc: func(ctx context.Context, links []domain.Link) ([]domain.Link, error) {
			out := append([]domain.Link(nil), links...)
			out[0].Categories = []domain.CategoryRef{{ID: 4, Name: "Economía"}}
			return out, nil
		},
	}
	p := newTestPage(t, client, resolver)

	n, err := p.svc.ApplyFilter(context.Background(), domain.LinkFilter{From: "2025-01-01", CategoryID: "4"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, "fecha_inicio=2025-01-01&categoria_id=4", client.ListLinksCalls()[0].RawQuery)
	assert.Len(t, resolver.ResolveCalls(), 1)

	rows := p.links.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "Economía", rows[0][3])
	assert.Equal(t, "Clasificar", rows[0][5])
	assert.Equal(t, view.NoCategory, rows[1][3])
	assert.Equal(t, "Ver/Editar", rows[1][5])
}

func TestLoadLinks_ResolverFailureKeepsIDs(t *testing.T) {
	t.Parallel()

	client := &backendClientMock{
		ListLinksFunc: listLinksOK(domain.Link{ID: 1, Categories: []domain.CategoryRef{{ID: 4}}}),
	}
	resolver := &categoryResolverMock{
		ResolveFunc: func(ctx context.Context, links []domain.Link) ([]domain.Link, error) {
			return links, errors.New("boom")
		},
	}
	p := newTestPage(t, client, resolver)

	_, err := p.svc.LoadLinks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "#4", p.links.Rows()[0][3])
	assert.Empty(t, p.notifier.Alerts())
}

func TestLoadLinks_EmptyAndFailure(t *testing.T) {
	t.Parallel()

	fail := false
	client := &backendClientMock{
		ListLinksFunc: func(context.Context, string) ([]domain.Link, error) {
			if fail {
				return nil, errors.New("timeout")
			}
			return nil, nil
		},
	}
	p := newTestPage(t, client, nil)

	_, err := p.svc.LoadLinks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []view.Row{{view.EmptyLinks}}, p.links.Rows())

	fail = true
	_, err = p.svc.LoadLinks(context.Background())
	require.Error(t, err)
	assert.Equal(t, []string{labelLoadLinks + ". " + view.GenericFailure}, p.notifier.Alerts())
	assert.Equal(t, []view.Row{{view.EmptyLinks}}, p.links.Rows())
}

func TestOpenLink(t *testing.T) {
	t.Parallel()

	client := &backendClientMock{
		ListCategoriesFunc: listCategoriesOK(domain.Category{ID: 1, Name: "Policiales"}, domain.Category{ID: 2, Name: "Economía"}),
		GetLinkFunc: func(ctx context.Context, id int64) (domain.Link, error) {
			return domain.Link{ID: id, URL: "https://a", Categories: []domain.CategoryRef{{ID: 2, Name: "Economía"}}}, nil
		},
	}
	p := newTestPage(t, client, nil)
	_, err := p.svc.LoadCategories(context.Background())
	require.NoError(t, err)

	ed, err := p.svc.OpenLink(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), ed.Link.ID)
	assert.Equal(t, []int64{2}, ed.Selected)
	assert.True(t, ed.IsSelected(2))
	assert.False(t, ed.IsSelected(1))
	assert.Len(t, ed.Options, 2)

	cur, ok := p.svc.CurrentEditor()
	require.True(t, ok)
	assert.Equal(t, ed.Link.ID, cur.Link.ID)
}

func TestOpenLink_Failure(t *testing.T) {
	t.Parallel()

	client := &backendClientMock{
		GetLinkFunc: func(context.Context, int64) (domain.Link, error) {
			return domain.Link{}, &minerva.APIError{Status: 404, Detail: "No encontrado."}
		},
	}
	p := newTestPage(t, client, nil)

	_, err := p.svc.OpenLink(context.Background(), 5)
	require.Error(t, err)
	assert.Equal(t, []string{labelOpenLink + ": No encontrado."}, p.notifier.Alerts())
	_, ok := p.svc.CurrentEditor()
	assert.False(t, ok)
}

func TestClassify_OneAuditOneReload(t *testing.T) {
	t.Parallel()

	for _, auditErr := range []error{nil, errors.New("audit down")} {
		auditErr := auditErr
		t.Run(fmt.Sprintf("audit error %v", auditErr), func(t *testing.T) {
			t.Parallel()

			client := &backendClientMock{
				GetLinkFunc: func(ctx context.Context, id int64) (domain.Link, error) {
					return domain.Link{ID: id}, nil
				},
				UpdateLinkFunc:  func(context.Context, int64, domain.LinkUpdate) error { return nil },
				RecordClickFunc: func(context.Context, string) error { return auditErr },
				ListLinksFunc:   listLinksOK(domain.Link{ID: 7, Status: domain.LinkStatusApproved}),
			}
			p := newTestPage(t, client, nil)
			_, err := p.svc.OpenLink(context.Background(), 7)
			require.NoError(t, err)

			err = p.svc.Classify(context.Background(), ClassifyInput{
				LinkID:      7,
				Status:      domain.LinkStatusApproved,
				CategoryIDs: []int64{1, 4},
			})
			require.NoError(t, err)
			p.dispatcher.Wait()

			updates := client.UpdateLinkCalls()
			require.Len(t, updates, 1)
			assert.Equal(t, int64(7), updates[0].ID)
			assert.Equal(t, domain.LinkUpdate{Status: domain.LinkStatusApproved, CategoryIDs: []int64{1, 4}}, updates[0].Upd)

			clicks := client.RecordClickCalls()
			require.Len(t, clicks, 1)
			assert.Equal(t, "Acción aprobado en link 7", clicks[0].URL)

			assert.Len(t, client.ListLinksCalls(), 1)
			assert.Equal(t, []string{"Link 7 actualizado a aprobado correctamente."}, p.notifier.Notices())
			assert.Empty(t, p.notifier.Alerts())

			_, open := p.svc.CurrentEditor()
			assert.False(t, open, "editor closed")
		})
	}
}

func TestClassify_Failure(t *testing.T) {
	t.Parallel()

	client := &backendClientMock{
		UpdateLinkFunc: func(context.Context, int64, domain.LinkUpdate) error {
			return &minerva.APIError{Status: 400, Detail: "Estado inválido"}
		},
	}
	p := newTestPage(t, client, nil)

	err := p.svc.Classify(context.Background(), ClassifyInput{LinkID: 7, Status: domain.LinkStatusRejected, CategoryIDs: []int64{}})
	require.Error(t, err)
	p.dispatcher.Wait()

	assert.Equal(t, []string{labelClassify + ": Estado inválido"}, p.notifier.Alerts())
	assert.Empty(t, client.RecordClickCalls())
	assert.Empty(t, client.ListLinksCalls())
	assert.Empty(t, p.notifier.Notices())
}

func TestClassify_InvalidInput(t *testing.T) {
	t.Parallel()

	client := &backendClientMock{}
	p := newTestPage(t, client, nil)

	err := p.svc.Classify(context.Background(), ClassifyInput{LinkID: 0, Status: "borrado"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Len(t, p.notifier.Alerts(), 1)
	assert.Empty(t, client.UpdateLinkCalls())
}

func TestSetStatus_OneAuditOneReload(t *testing.T) {
	t.Parallel()

	for _, auditErr := range []error{nil, errors.New("audit down")} {
		auditErr := auditErr
		t.Run(fmt.Sprintf("audit error %v", auditErr), func(t *testing.T) {
			t.Parallel()

			client := &backendClientMock{
				UpdateLinkFunc:  func(context.Context, int64, domain.LinkUpdate) error { return nil },
				RecordClickFunc: func(context.Context, string) error { return auditErr },
				ListLinksFunc:   listLinksOK(),
			}
			p := newTestPage(t, client, nil)

			require.NoError(t, p.svc.SetStatus(context.Background(), 3, domain.LinkStatusApproved))
			p.dispatcher.Wait()

			updates := client.UpdateLinkCalls()
			require.Len(t, updates, 1)
			assert.Nil(t, updates[0].Upd.CategoryIDs, "categories untouched")
			assert.Equal(t, domain.LinkStatusApproved, updates[0].Upd.Status)

			clicks := client.RecordClickCalls()
			require.Len(t, clicks, 1)
			assert.Equal(t, "Acción aprobado en link 3", clicks[0].URL)

			assert.Len(t, client.ListLinksCalls(), 1)
			assert.Empty(t, p.notifier.Alerts())
		})
	}
}

func TestSetStatus_FailureNoAuditNoReload(t *testing.T) {
	t.Parallel()

	client := &backendClientMock{
		UpdateLinkFunc: func(context.Context, int64, domain.LinkUpdate) error {
			return &minerva.APIError{Status: 400, Detail: "Estado inválido."}
		},
	}
	p := newTestPage(t, client, nil)

	err := p.svc.SetStatus(context.Background(), 3, domain.LinkStatusRejected)
	p.dispatcher.Wait()

	require.Error(t, err)
	assert.Empty(t, client.RecordClickCalls())
	assert.Empty(t, client.ListLinksCalls())
	assert.Len(t, p.notifier.Alerts(), 1)
}

func TestVisit(t *testing.T) {
	t.Parallel()

	client := &backendClientMock{
		RecordClickFunc: func(context.Context, string) error { return errors.New("offline") },
	}
	p := newTestPage(t, client, nil)

	p.svc.Visit(context.Background(), "https://diario.example/nota")
	p.dispatcher.Wait()

	require.Len(t, client.RecordClickCalls(), 1)
	assert.Equal(t, "https://diario.example/nota", client.RecordClickCalls()[0].URL)
	assert.Empty(t, p.notifier.Alerts())
}
