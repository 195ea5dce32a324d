package domain

import "strings"

// ActivityType is the category tag of an audit-log entry.
type ActivityType string

const (
	ActivityTypeLogin              ActivityType = "login"
	ActivityTypeLogout             ActivityType = "logout"
	ActivityTypeLinkUpload         ActivityType = "carga_link"
	ActivityTypeStatusChange       ActivityType = "cambio_estado"
	ActivityTypeLinkClick          ActivityType = "clic_link"
	ActivityTypeArticleCreated     ActivityType = "creacion_articulo"
	ActivityTypeLinkClassified     ActivityType = "clasificacion_link"
	ActivityTypeReportUpload       ActivityType = "carge_informe"
	ActivityTypeBandReportExported ActivityType = "exportar_informe_banda"
	ActivityTypeOther              ActivityType = "otro"
)

var activityTypeLabels = map[ActivityType]string{
	ActivityTypeLogin:              "Inicio de sesión",
	ActivityTypeLogout:             "Cierre de sesión",
	ActivityTypeLinkUpload:         "Carga de Link",
	ActivityTypeStatusChange:       "Cambio de Estado",
	ActivityTypeLinkClick:          "Clic en Link",
	ActivityTypeArticleCreated:     "Creación de Artículo",
	ActivityTypeLinkClassified:     "Clasificacion del Link",
	ActivityTypeReportUpload:       "carga de informe",
	ActivityTypeBandReportExported: "Exportó informe de banda",
	ActivityTypeOther:              "Otro",
}

// ActivityTypes returns every known activity type in display order.
func ActivityTypes() []ActivityType {
	return []ActivityType{
		ActivityTypeLogin,
		ActivityTypeLogout,
		ActivityTypeLinkUpload,
		ActivityTypeStatusChange,
		ActivityTypeLinkClick,
		ActivityTypeArticleCreated,
		ActivityTypeLinkClassified,
		ActivityTypeReportUpload,
		ActivityTypeBandReportExported,
		ActivityTypeOther,
	}
}

func (t ActivityType) String() string { return string(t) }

func (t ActivityType) IsValid() bool {
	_, ok := activityTypeLabels[t]
	return ok
}

// Label returns the human-readable name of the type.
func (t ActivityType) Label() string {
	if l, ok := activityTypeLabels[t]; ok {
		return l
	}
	return t.Humanize()
}

// Humanize renders the raw tag with underscores replaced by spaces.
func (t ActivityType) Humanize() string {
	return strings.ReplaceAll(string(t), "_", " ")
}

// LinkStatus is the moderation state of a Link. Any state may follow any other.
type LinkStatus string

const (
	LinkStatusPending  LinkStatus = "pendiente"
	LinkStatusApproved LinkStatus = "aprobado"
	LinkStatusRejected LinkStatus = "descartado"
)

func (s LinkStatus) String() string { return string(s) }

func (s LinkStatus) IsValid() bool {
	switch s {
	case LinkStatusPending, LinkStatusApproved, LinkStatusRejected:
		return true
	}
	return false
}

// Label returns the badge text shown for the status.
func (s LinkStatus) Label() string {
	return strings.ToUpper(string(s))
}

// IsDecided reports whether a moderation decision has been taken.
func (s LinkStatus) IsDecided() bool {
	return s == LinkStatusApproved || s == LinkStatusRejected
}

// ParseLinkStatus accepts the wire value or the English alias
// (pending, approved, rejected).
func ParseLinkStatus(raw string) (LinkStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pendiente", "pending":
		return LinkStatusPending, nil
	case "aprobado", "approved", "approve":
		return LinkStatusApproved, nil
	case "descartado", "rejected", "reject":
		return LinkStatusRejected, nil
	}
	return "", NewValidationError("estado", "must be one of pendiente, aprobado, descartado")
}
