package classification

import (
	"context"
	"github.com/heartmarshall/minervactl/internal/domain"
	"sync"
)

var _ categoryResolver = &categoryResolverMock{}

type categoryResolverMock struct {
	ResolveFunc func(ctx context.Context, links []domain.Link) ([]domain.Link, error)

	calls struct {
		Resolve []struct {
			Ctx   context.Context
			Links []domain.Link
		}
	}
	lockResolve sync.RWMutex
}

func (mock *categoryResolverMock) Resolve(ctx context.Context, links []domain.Link) ([]domain.Link, error) {
	if mock.ResolveFunc == nil {
		panic("categoryResolverMock.ResolveFunc: method is nil but categoryResolver.Resolve was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Links []domain.Link
	}{Ctx: ctx, Links: links}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, links)
}

func (mock *categoryResolverMock) ResolveCalls() []struct {
	Ctx   context.Context
	Links []domain.Link
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}
