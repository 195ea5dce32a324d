package activity

import (
	"context"
	"github.com/heartmarshall/minervactl/internal/domain"
	"io"
	"sync"
)

var _ activityClient = &activityClientMock{}

type activityClientMock struct {
	ListUsersFunc        func(ctx context.Context) ([]domain.User, error)
	ListActivitiesFunc   func(ctx context.Context, rawQuery string) ([]domain.Activity, error)
	ExportActivitiesFunc func(ctx context.Context, format domain.ExportFormat, rawQuery string, w io.Writer) (string, error)

	calls struct {
		ListUsers []struct {
			Ctx context.Context
		}
		ListActivities []struct {
			Ctx      context.Context
			RawQuery string
		}
		ExportActivities []struct {
			Ctx      context.Context
			Format   domain.ExportFormat
			RawQuery string
			W        io.Writer
		}
	}
	lockListUsers        sync.RWMutex
	lockListActivities   sync.RWMutex
	lockExportActivities sync.RWMutex
}

func (mock *activityClientMock) ListUsers(ctx context.Context) ([]domain.User, error) {
	if mock.ListUsersFunc == nil {
		panic("activityClientMock.ListUsersFunc: method is nil but activityClient.ListUsers was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListUsers.Lock()
	mock.calls.ListUsers = append(mock.calls.ListUsers, callInfo)
	mock.lockListUsers.Unlock()
	return mock.ListUsersFunc(ctx)
}

func (mock *activityClientMock) ListUsersCalls() []struct {
	Ctx context.Context
} {
	mock.lockListUsers.RLock()
	calls := mock.calls.ListUsers
	mock.lockListUsers.RUnlock()
	return calls
}

func (mock *activityClientMock) ListActivities(ctx context.Context, rawQuery string) ([]domain.Activity, error) {
	if mock.ListActivitiesFunc == nil {
		panic("activityClientMock.ListActivitiesFunc: method is nil but activityClient.ListActivities was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RawQuery string
	}{Ctx: ctx, RawQuery: rawQuery}
	mock.lockListActivities.Lock()
	mock.calls.ListActivities = append(mock.calls.ListActivities, callInfo)
	mock.lockListActivities.Unlock()
	return mock.ListActivitiesFunc(ctx, rawQuery)
}

func (mock *activityClientMock) ListActivitiesCalls() []struct {
	Ctx      context.Context
	RawQuery string
} {
	mock.lockListActivities.RLock()
	calls := mock.calls.ListActivities
	mock.lockListActivities.RUnlock()
	return calls
}

func (mock *activityClientMock) ExportActivities(ctx context.Context, format domain.ExportFormat, rawQuery string, w io.Writer) (string, error) {
	if mock.ExportActivitiesFunc == nil {
		panic("activityClientMock.ExportActivitiesFunc: method is nil but activityClient.ExportActivities was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Format   domain.ExportFormat
		RawQuery string
		W        io.Writer
	}{Ctx: ctx, Format: format, RawQuery: rawQuery, W: w}
	mock.lockExportActivities.Lock()
	mock.calls.ExportActivities = append(mock.calls.ExportActivities, callInfo)
	mock.lockExportActivities.Unlock()
	return mock.ExportActivitiesFunc(ctx, format, rawQuery, w)
}

func (mock *activityClientMock) ExportActivitiesCalls() []struct {
	Ctx      context.Context
	Format   domain.ExportFormat
	RawQuery string
	W        io.Writer
} {
	mock.lockExportActivities.RLock()
	calls := mock.calls.ExportActivities
	mock.lockExportActivities.RUnlock()
	return calls
}
