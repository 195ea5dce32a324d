package activity

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/heartmarshall/minervactl/internal/view"
)

// Export downloads the report for the current filter into in.Dir and
// returns the written path. The file only appears once the download is
// complete.
func (s *Service) Export(ctx context.Context, in ExportInput) (string, error) {
	if err := in.Validate(); err != nil {
		s.notifier.Alert(view.FailureMessage(labelExport, err))
		return "", view.MarkAlerted(err)
	}

	path, err := s.download(ctx, in)
	if err != nil {
		s.log.ErrorContext(ctx, "export failed",
			slog.String("format", in.Format.String()),
			slog.String("error", err.Error()),
		)
		s.notifier.Alert(view.FailureMessage(labelExport, err))
		return "", view.MarkAlerted(fmt.Errorf("export activities: %w", err))
	}

	s.log.DebugContext(ctx, "export written", slog.String("path", path))
	s.notifier.Notice(fmt.Sprintf("Reporte exportado en %s", path))
	return path, nil
}

func (s *Service) download(ctx context.Context, in ExportInput) (string, error) {
	if err := os.MkdirAll(in.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create dir: %w", err)
	}

	tmp, err := os.CreateTemp(in.Dir, ".minervactl-export-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	name, err := s.client.ExportActivities(ctx, in.Format, s.Filter().Query(), tmp)
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close temp file: %w", closeErr)
	}
	if err != nil {
		return "", err
	}

	path := filepath.Join(in.Dir, name)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("rename: %w", err)
	}
	return path, nil
}
