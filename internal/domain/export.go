package domain

import "strings"

// ExportFormat is a downloadable activity report format.
type ExportFormat string

const (
	ExportFormatXLSX ExportFormat = "xlsx"
	ExportFormatPDF  ExportFormat = "pdf"
)

func (f ExportFormat) String() string { return string(f) }

func (f ExportFormat) IsValid() bool {
	return f == ExportFormatXLSX || f == ExportFormatPDF
}

// DefaultFilename is the name used when the server does not suggest one.
func (f ExportFormat) DefaultFilename() string {
	return "actividades." + string(f)
}

// ParseExportFormat accepts "xlsx", "excel" and "pdf" in any case.
func ParseExportFormat(raw string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "xlsx", "excel":
		return ExportFormatXLSX, nil
	case "pdf":
		return ExportFormatPDF, nil
	}
	return "", NewValidationError("format", "must be xlsx or pdf")
}
