package minerva

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/minervactl/internal/domain"
	"github.com/heartmarshall/minervactl/internal/query"
)

var exportPaths = map[domain.ExportFormat]string{
	domain.ExportFormatXLSX: activitiesPath + "exportar_excel/",
	domain.ExportFormatPDF:  activitiesPath + "exportar_pdf/",
}

// ExportActivities streams the activity report for rawQuery into w and
// returns the filename suggested by the server, or the format's default.
// The export views require a logged-in session; an HTML response means the
// backend redirected to its login page.
func (c *Client) ExportActivities(ctx context.Context, format domain.ExportFormat, rawQuery string, w io.Writer) (string, error) {
	path, ok := exportPaths[format]
	if !ok {
		return "", fmt.Errorf("minerva: export activities: %w", domain.NewValidationError("format", "must be xlsx or pdf"))
	}

	resp, err := c.send(ctx, "export activities", http.MethodGet, query.Join(path, rawQuery), nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("minerva: export activities: %w", newAPIError(resp.StatusCode, raw))
	}
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html") {
		return "", fmt.Errorf("minerva: export activities: login page returned: %w", domain.ErrUnauthorized)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return "", fmt.Errorf("minerva: export activities: write: %w", err)
	}
	return attachmentName(resp.Header.Get("Content-Disposition"), format.DefaultFilename()), nil
}

func attachmentName(disposition, fallback string) string {
	if disposition == "" {
		return fallback
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return fallback
	}
	name := filepath.Base(strings.TrimSpace(params["filename"]))
	if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		return fallback
	}
	return name
}
