package classification

import (
	"context"

	"github.com/heartmarshall/minervactl/internal/dispatch"
	"github.com/heartmarshall/minervactl/internal/domain"
	"github.com/heartmarshall/minervactl/internal/view"
)

// LoadCategories refreshes the category table and the category options
// used for filtering and assignment.
func (s *Service) LoadCategories(ctx context.Context) (int, error) {
	return s.categories.Load(ctx, "")
}

// CategoryOptions returns the options from the last category load.
func (s *Service) CategoryOptions() []view.Option {
	return s.catOpts.Items()
}

// CreateCategory creates a category named after the normalized field
// content. An empty name alerts without contacting the backend. On success
// the field is cleared and the categories reloaded.
func (s *Service) CreateCategory(ctx context.Context, field view.Field) error {
	in := CategoryNameInput{Name: domain.NormalizeName(field.Value())}
	if err := in.Validate(false); err != nil {
		s.notifier.Alert(msgEmptyCategoryName)
		return view.MarkAlerted(err)
	}

	return s.dispatcher.Dispatch(ctx, dispatch.Mutation{
		Name:         "category.create",
		FailureLabel: labelCreateCategory,
		Do: func(ctx context.Context) error {
			_, err := s.client.CreateCategory(ctx, in.Name)
			return err
		},
		Then: []dispatch.FollowUp{
			func(context.Context) error { field.Clear(); return nil },
			s.reloadCategories,
		},
	})
}

// RenameCategory renames category id to the field content and reloads.
func (s *Service) RenameCategory(ctx context.Context, id int64, field view.Field) error {
	in := CategoryNameInput{ID: id, Name: domain.NormalizeName(field.Value())}
	if err := in.Validate(true); err != nil {
		if in.Name == "" {
			s.notifier.Alert(msgEmptyCategoryName)
		} else {
			s.notifier.Alert(view.FailureMessage(labelRenameCategory, err))
		}
		return view.MarkAlerted(err)
	}

	return s.dispatcher.Dispatch(ctx, dispatch.Mutation{
		Name:         "category.rename",
		FailureLabel: labelRenameCategory,
		Do: func(ctx context.Context) error {
			_, err := s.client.RenameCategory(ctx, in.ID, in.Name)
			return err
		},
		Then: []dispatch.FollowUp{s.reloadCategories},
	})
}

// DeleteCategory removes category id after the operator confirms. A
// declined confirmation sends nothing.
func (s *Service) DeleteCategory(ctx context.Context, id int64, confirm view.Confirmer) (bool, error) {
	if !confirm.Confirm(msgConfirmDelete) {
		return false, nil
	}

	err := s.dispatcher.Dispatch(ctx, dispatch.Mutation{
		Name:         "category.delete",
		FailureLabel: labelDeleteCategory,
		Do: func(ctx context.Context) error {
			return s.client.DeleteCategory(ctx, id)
		},
		Then: []dispatch.FollowUp{s.reloadCategories},
	})
	return err == nil, err
}
