package classification

import (
	"context"
	"github.com/heartmarshall/minervactl/internal/domain"
	"sync"
)

var _ backendClient = &backendClientMock{}

type backendClientMock struct {
	ListCategoriesFunc func(ctx context.Context) ([]domain.Category, error)
	CreateCategoryFunc func(ctx context.Context, name string) (domain.Category, error)
	RenameCategoryFunc func(ctx context.Context, id int64, name string) (domain.Category, error)
	DeleteCategoryFunc func(ctx context.Context, id int64) error
	ListLinksFunc      func(ctx context.Context, rawQuery string) ([]domain.Link, error)
	GetLinkFunc        func(ctx context.Context, id int64) (domain.Link, error)
	UpdateLinkFunc     func(ctx context.Context, id int64, upd domain.LinkUpdate) error
	RecordClickFunc    func(ctx context.Context, url string) error

	calls struct {
		ListCategories []struct {
			Ctx context.Context
		}
		CreateCategory []struct {
			Ctx  context.Context
			Name string
		}
		RenameCategory []struct {
			Ctx  context.Context
			ID   int64
			Name string
		}
		DeleteCategory []struct {
			Ctx context.Context
			ID  int64
		}
		ListLinks []struct {
			Ctx      context.Context
			RawQuery string
		}
		GetLink []struct {
			Ctx context.Context
			ID  int64
		}
		UpdateLink []struct {
			Ctx context.Context
			ID  int64
			Upd domain.LinkUpdate
		}
		RecordClick []struct {
			Ctx context.Context
			URL string
		}
	}
	lockListCategories sync.RWMutex
	lockCreateCategory sync.RWMutex
	lockRenameCategory sync.RWMutex
	lockDeleteCategory sync.RWMutex
	lockListLinks      sync.RWMutex
	lockGetLink        sync.RWMutex
	lockUpdateLink     sync.RWMutex
	lockRecordClick    sync.RWMutex
}

func (mock *backendClientMock) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if mock.ListCategoriesFunc == nil {
		panic("backendClientMock.ListCategoriesFunc: method is nil but backendClient.ListCategories was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListCategories.Lock()
	mock.calls.ListCategories = append(mock.calls.ListCategories, callInfo)
	mock.lockListCategories.Unlock()
	return mock.ListCategoriesFunc(ctx)
}

func (mock *backendClientMock) ListCategoriesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListCategories.RLock()
	calls := mock.calls.ListCategories
	mock.lockListCategories.RUnlock()
	return calls
}

func (mock *backendClientMock) CreateCategory(ctx context.Context, name string) (domain.Category, error) {
	if mock.CreateCategoryFunc == nil {
		panic("backendClientMock.CreateCategoryFunc: method is nil but backendClient.CreateCategory was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockCreateCategory.Lock()
	mock.calls.CreateCategory = append(mock.calls.CreateCategory, callInfo)
	mock.lockCreateCategory.Unlock()
	return mock.CreateCategoryFunc(ctx, name)
}

func (mock *backendClientMock) CreateCategoryCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockCreateCategory.RLock()
	calls := mock.calls.CreateCategory
	mock.lockCreateCategory.RUnlock()
	return calls
}

func (mock *backendClientMock) RenameCategory(ctx context.Context, id int64, name string) (domain.Category, error) {
	if mock.RenameCategoryFunc == nil {
		panic("backendClientMock.RenameCategoryFunc: method is nil but backendClient.RenameCategory was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   int64
		Name string
	}{Ctx: ctx, ID: id, Name: name}
	mock.lockRenameCategory.Lock()
	mock.calls.RenameCategory = append(mock.calls.RenameCategory, callInfo)
	mock.lockRenameCategory.Unlock()
	return mock.RenameCategoryFunc(ctx, id, name)
}

func (mock *backendClientMock) RenameCategoryCalls() []struct {
	Ctx  context.Context
	ID   int64
	Name string
} {
	mock.lockRenameCategory.RLock()
	calls := mock.calls.RenameCategory
	mock.lockRenameCategory.RUnlock()
	return calls
}

func (mock *backendClientMock) DeleteCategory(ctx context.Context, id int64) error {
	if mock.DeleteCategoryFunc == nil {
		panic("backendClientMock.DeleteCategoryFunc: method is nil but backendClient.DeleteCategory was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDeleteCategory.Lock()
	mock.calls.DeleteCategory = append(mock.calls.DeleteCategory, callInfo)
	mock.lockDeleteCategory.Unlock()
	return mock.DeleteCategoryFunc(ctx, id)
}

func (mock *backendClientMock) DeleteCategoryCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDeleteCategory.RLock()
	calls := mock.calls.DeleteCategory
	mock.lockDeleteCategory.RUnlock()
	return calls
}

func (mock *backendClientMock) ListLinks(ctx context.Context, rawQuery string) ([]domain.Link, error) {
	if mock.ListLinksFunc == nil {
		panic("backendClientMock.ListLinksFunc: method is nil but backendClient.ListLinks was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RawQuery string
	}{Ctx: ctx, RawQuery: rawQuery}
	mock.lockListLinks.Lock()
	mock.calls.ListLinks = append(mock.calls.ListLinks, callInfo)
	mock.lockListLinks.Unlock()
	return mock.ListLinksFunc(ctx, rawQuery)
}

func (mock *backendClientMock) ListLinksCalls() []struct {
	Ctx      context.Context
	RawQuery string
} {
	mock.lockListLinks.RLock()
	calls := mock.calls.ListLinks
	mock.lockListLinks.RUnlock()
	return calls
}

func (mock *backendClientMock) GetLink(ctx context.Context, id int64) (domain.Link, error) {
	if mock.GetLinkFunc == nil {
		panic("backendClientMock.GetLinkFunc: method is nil but backendClient.GetLink was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetLink.Lock()
	mock.calls.GetLink = append(mock.calls.GetLink, callInfo)
	mock.lockGetLink.Unlock()
	return mock.GetLinkFunc(ctx, id)
}

func (mock *backendClientMock) GetLinkCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetLink.RLock()
	calls := mock.calls.GetLink
	mock.lockGetLink.RUnlock()
	return calls
}

func (mock *backendClientMock) UpdateLink(ctx context.Context, id int64, upd domain.LinkUpdate) error {
	if mock.UpdateLinkFunc == nil {
		panic("backendClientMock.UpdateLinkFunc: method is nil but backendClient.UpdateLink was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
		Upd domain.LinkUpdate
	}{Ctx: ctx, ID: id, Upd: upd}
	mock.lockUpdateLink.Lock()
	mock.calls.UpdateLink = append(mock.calls.UpdateLink, callInfo)
	mock.lockUpdateLink.Unlock()
	return mock.UpdateLinkFunc(ctx, id, upd)
}

func (mock *backendClientMock) UpdateLinkCalls() []struct {
	Ctx context.Context
	ID  int64
	Upd domain.LinkUpdate
} {
	mock.lockUpdateLink.RLock()
	calls := mock.calls.UpdateLink
	mock.lockUpdateLink.RUnlock()
	return calls
}

func (mock *backendClientMock) RecordClick(ctx context.Context, url string) error {
	if mock.RecordClickFunc == nil {
		panic("backendClientMock.RecordClickFunc: method is nil but backendClient.RecordClick was just called")
	}
	callInfo := struct {
		Ctx context.Context
		URL string
	}{Ctx: ctx, URL: url}
	mock.lockRecordClick.Lock()
	mock.calls.RecordClick = append(mock.calls.RecordClick, callInfo)
	mock.lockRecordClick.Unlock()
	return mock.RecordClickFunc(ctx, url)
}

func (mock *backendClientMock) RecordClickCalls() []struct {
	Ctx context.Context
	URL string
} {
	mock.lockRecordClick.RLock()
	calls := mock.calls.RecordClick
	mock.lockRecordClick.RUnlock()
	return calls
}
