package classification

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/minervactl/internal/dispatch"
	"github.com/heartmarshall/minervactl/internal/domain"
	"github.com/heartmarshall/minervactl/internal/view"
)

// Editor is the snapshot shown when a link is opened for classification.
type Editor struct {
	Link     domain.Link
	Selected []int64
	Options  []view.Option
}

// IsSelected reports whether category id is preselected.
func (e Editor) IsSelected(id int64) bool {
	return slices.Contains(e.Selected, id)
}

// SetFilter replaces the link filter. It does not reload.
func (s *Service) SetFilter(f domain.LinkFilter) {
	s.mu.Lock()
	s.filter = f
	s.mu.Unlock()
}

// Filter returns the current link filter.
func (s *Service) Filter() domain.LinkFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// LoadLinks loads the link table with the current filter.
func (s *Service) LoadLinks(ctx context.Context) (int, error) {
	return s.links.Load(ctx, s.Filter().Query())
}

// ApplyFilter sets f and loads the link table with it.
func (s *Service) ApplyFilter(ctx context.Context, f domain.LinkFilter) (int, error) {
	s.SetFilter(f)
	return s.LoadLinks(ctx)
}

// OpenLink fetches link id and opens the editor with its current categories
// preselected.
func (s *Service) OpenLink(ctx context.Context, id int64) (Editor, error) {
	link, err := s.client.GetLink(ctx, id)
	if err != nil {
		s.log.ErrorContext(ctx, "open link failed", slog.Int64("link_id", id), slog.String("error", err.Error()))
		s.notifier.Alert(view.FailureMessage(labelOpenLink, err))
		return Editor{}, view.MarkAlerted(fmt.Errorf("open link: %w", err))
	}
	if link.ID == 0 {
		link.ID = id
	}
	if resolved := s.resolve(ctx, []domain.Link{link}); len(resolved) == 1 {
		link = resolved[0]
	}

	ed := Editor{
		Link:     link,
		Selected: link.CategoryIDs(),
		Options:  s.catOpts.Items(),
	}

	s.mu.Lock()
	s.editor = &ed
	s.mu.Unlock()
	return ed, nil
}

// CurrentEditor returns the open editor, if any.
func (s *Service) CurrentEditor() (Editor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.editor == nil {
		return Editor{}, false
	}
	return *s.editor, true
}

// CloseEditor closes the editor.
func (s *Service) CloseEditor() {
	s.mu.Lock()
	s.editor = nil
	s.mu.Unlock()
}

// Classify records a moderation decision with its category assignment.
// After the PATCH succeeds the click audit is fired in the background, the
// operator is notified, the editor closes and the link table reloads once.
func (s *Service) Classify(ctx context.Context, in ClassifyInput) error {
	if err := in.Validate(); err != nil {
		s.notifier.Alert(view.FailureMessage(labelClassify, err))
		return view.MarkAlerted(err)
	}

	return s.dispatcher.Dispatch(ctx, dispatch.Mutation{
		Name:         "link.classify",
		FailureLabel: labelClassify,
		Do: func(ctx context.Context) error {
			return s.client.UpdateLink(ctx, in.LinkID, domain.LinkUpdate{Status: in.Status, CategoryIDs: in.CategoryIDs})
		},
		Audit: func(ctx context.Context) error {
			return s.client.RecordClick(ctx, auditText(in.Status, in.LinkID))
		},
		Then: []dispatch.FollowUp{
			func(context.Context) error {
				s.notifier.Notice(fmt.Sprintf("Link %d actualizado a %s correctamente.", in.LinkID, in.Status))
				return nil
			},
			func(context.Context) error { s.CloseEditor(); return nil },
			s.reloadLinks,
		},
	})
}

// SetStatus changes only the status of link id. Like Classify it fires the
// click audit in the background and reloads the table once.
func (s *Service) SetStatus(ctx context.Context, id int64, status domain.LinkStatus) error {
	in := ClassifyInput{LinkID: id, Status: status}
	if err := in.Validate(); err != nil {
		s.notifier.Alert(view.FailureMessage(labelSetStatus, err))
		return view.MarkAlerted(err)
	}

	return s.dispatcher.Dispatch(ctx, dispatch.Mutation{
		Name:         "link.status",
		FailureLabel: labelSetStatus,
		Do: func(ctx context.Context) error {
			return s.client.UpdateLink(ctx, id, domain.LinkUpdate{Status: status})
		},
		Audit: func(ctx context.Context) error {
			return s.client.RecordClick(ctx, auditText(status, id))
		},
		Then: []dispatch.FollowUp{
			func(context.Context) error {
				s.notifier.Notice(fmt.Sprintf("Link %d: %s", id, status.Label()))
				return nil
			},
			s.reloadLinks,
		},
	})
}

// Visit records that the operator opened url. The request runs in the
// background and failures are only logged.
func (s *Service) Visit(ctx context.Context, url string) {
	s.dispatcher.Go(ctx, "link.visit", func(ctx context.Context) error {
		return s.client.RecordClick(ctx, url)
	})
}

func auditText(status domain.LinkStatus, id int64) string {
	return fmt.Sprintf("Acción %s en link %d", status, id)
}
