package view

import (
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/minervactl/internal/domain"
)

// Fallback and empty-state texts.
const (
	AnonymousActor = "(anónimo)"
	NoCategory     = "Sin categoría"

	EmptyActivities = "No se encontraron actividades con los filtros aplicados."
	EmptyLinks      = "No se encontraron links con los filtros seleccionados."
	EmptyCategories = "No hay categorías cargadas."
	EmptyUsers      = "No hay usuarios."
)

const (
	dateTimeLayout = "02/01/2006 15:04:05"
	dateLayout     = "02/01/2006"
)

// Table headers.
var (
	ActivityHeaders = []string{"Fecha", "Usuario", "Tipo", "Descripción"}
	LinkHeaders     = []string{"ID", "URL", "Fecha", "Categorías", "Estado", "Acción"}
	CategoryHeaders = []string{"ID", "Nombre"}
	UserHeaders     = []string{"Usuario"}
	TypeHeaders     = []string{"Tipo", "Descripción"}
)

// ActivityRows maps activities to table rows.
func ActivityRows(activities []domain.Activity) []Row {
	rows := make([]Row, 0, len(activities))
	for _, a := range activities {
		actor := AnonymousActor
		if !a.IsAnonymous() {
			actor = *a.Actor
		}
		rows = append(rows, Row{
			formatTime(a.OccurredAt, dateTimeLayout),
			actor,
			a.Type.Humanize(),
			a.Description,
		})
	}
	return rows
}

// LinkRows maps links to table rows.
func LinkRows(links []domain.Link) []Row {
	rows := make([]Row, 0, len(links))
	for _, l := range links {
		rows = append(rows, Row{
			strconv.FormatInt(l.ID, 10),
			l.URL,
			formatTime(l.UploadedAt, dateLayout),
			CategoryList(l.Categories),
			statusLabel(l.Status),
			linkAction(l.Status),
		})
	}
	return rows
}

// CategoryList renders assigned categories, or NoCategory when there are none.
// Unresolved references render as "#<id>".
func CategoryList(refs []domain.CategoryRef) string {
	if len(refs) == 0 {
		return NoCategory
	}
	names := make([]string, 0, len(refs))
	for _, r := range refs {
		if r.Resolved() {
			names = append(names, r.Name)
		} else {
			names = append(names, "#"+strconv.FormatInt(r.ID, 10))
		}
	}
	return strings.Join(names, ", ")
}

// CategoryRows maps categories to table rows.
func CategoryRows(categories []domain.Category) []Row {
	rows := make([]Row, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, Row{strconv.FormatInt(c.ID, 10), c.Name})
	}
	return rows
}

// CategoryOptions maps categories to select options keyed by id.
func CategoryOptions(categories []domain.Category) []Option {
	opts := make([]Option, 0, len(categories))
	for _, c := range categories {
		opts = append(opts, Option{Value: strconv.FormatInt(c.ID, 10), Label: c.Name})
	}
	return opts
}

// UserRows maps users to table rows.
func UserRows(users []domain.User) []Row {
	rows := make([]Row, 0, len(users))
	for _, u := range users {
		rows = append(rows, Row{u.Username})
	}
	return rows
}

// UserOptions maps users to select options keyed by username.
func UserOptions(users []domain.User) []Option {
	opts := make([]Option, 0, len(users))
	for _, u := range users {
		opts = append(opts, Option{Value: u.Username, Label: u.Username})
	}
	return opts
}

// TypeOptions lists the activity types as select options.
func TypeOptions() []Option {
	types := domain.ActivityTypes()
	opts := make([]Option, 0, len(types))
	for _, t := range types {
		opts = append(opts, Option{Value: t.String(), Label: t.Label()})
	}
	return opts
}

// OptionRows maps options to two-column rows.
func OptionRows(opts []Option) []Row {
	rows := make([]Row, 0, len(opts))
	for _, o := range opts {
		rows = append(rows, Row{o.Value, o.Label})
	}
	return rows
}

func statusLabel(s domain.LinkStatus) string {
	if s == "" {
		return domain.LinkStatusPending.Label()
	}
	return s.Label()
}

func linkAction(s domain.LinkStatus) string {
	if s.IsDecided() {
		return "Ver/Editar"
	}
	return "Clasificar"
}

func formatTime(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(layout)
}
