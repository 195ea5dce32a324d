package activity

import (
	"context"

	"github.com/heartmarshall/minervactl/internal/domain"
	"github.com/heartmarshall/minervactl/internal/view"
)

// LoadUsers refreshes the user table and the user filter options.
func (s *Service) LoadUsers(ctx context.Context) (int, error) {
	return s.users.Load(ctx, "")
}

// UserOptions returns the user filter options from the last user load.
func (s *Service) UserOptions() []view.Option {
	return s.userOpts.Items()
}

// Types returns the fixed activity type filter options.
func (s *Service) Types() []view.Option {
	return view.TypeOptions()
}

// SetFilter replaces the current filter. It does not reload.
func (s *Service) SetFilter(f domain.ActivityFilter) {
	s.mu.Lock()
	s.filter = f
	s.mu.Unlock()
}

// Filter returns the current filter.
func (s *Service) Filter() domain.ActivityFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// Apply loads the activity table with the current filter.
func (s *Service) Apply(ctx context.Context) (int, error) {
	return s.activities.Load(ctx, s.Filter().Query())
}

// ApplyFilter sets f and loads the activity table with it.
func (s *Service) ApplyFilter(ctx context.Context, f domain.ActivityFilter) (int, error) {
	s.SetFilter(f)
	return s.Apply(ctx)
}
