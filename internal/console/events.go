package console

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/heartmarshall/minervactl/internal/domain"
	"github.com/heartmarshall/minervactl/internal/service/activity"
	"github.com/heartmarshall/minervactl/internal/service/classification"
	"github.com/heartmarshall/minervactl/internal/view"
)

type activityPage interface {
	LoadUsers(ctx context.Context) (int, error)
	Types() []view.Option
	Filter() domain.ActivityFilter
	Apply(ctx context.Context) (int, error)
	ApplyFilter(ctx context.Context, f domain.ActivityFilter) (int, error)
	Export(ctx context.Context, in activity.ExportInput) (string, error)
}

type classificationPage interface {
	LoadCategories(ctx context.Context) (int, error)
	CreateCategory(ctx context.Context, field view.Field) error
	RenameCategory(ctx context.Context, id int64, field view.Field) error
	DeleteCategory(ctx context.Context, id int64, confirm view.Confirmer) (bool, error)

	Filter() domain.LinkFilter
	LoadLinks(ctx context.Context) (int, error)
	ApplyFilter(ctx context.Context, f domain.LinkFilter) (int, error)
	OpenLink(ctx context.Context, id int64) (classification.Editor, error)
	CurrentEditor() (classification.Editor, bool)
	Classify(ctx context.Context, in classification.ClassifyInput) error
	SetStatus(ctx context.Context, id int64, status domain.LinkStatus) error
	Visit(ctx context.Context, url string)
}

// Pages are the page services the console drives.
type Pages struct {
	Activity       activityPage
	Classification classificationPage
	Confirm        view.Confirmer
	ExportDir      string
	Out            io.Writer
}

// NewPageTable registers every console event.
func NewPageTable(p Pages) (*Table, error) {
	h := &handlers{Pages: p}
	bindings := []Binding{
		{Name: "activities", Usage: "activities [usuario=] [tipo=] [desde=] [hasta=] | activities all", Help: "Lista la actividad con los filtros dados", Async: true, Handle: h.activities},
		{Name: "export", Usage: "export xlsx|pdf [dir]", Help: "Exporta la actividad filtrada", Handle: h.export},
		{Name: "users", Usage: "users", Help: "Lista los usuarios", Async: true, Handle: h.users},
		{Name: "types", Usage: "types", Help: "Lista los tipos de actividad", Handle: h.types},
		{Name: "categories", Usage: "categories", Help: "Lista las categorías", Async: true, Handle: h.categories},
		{Name: "category.add", Usage: "category.add <nombre>", Help: "Crea una categoría", Handle: h.categoryAdd},
		{Name: "category.rename", Usage: "category.rename <id> <nombre>", Help: "Renombra una categoría", Handle: h.categoryRename},
		{Name: "category.delete", Usage: "category.delete <id> [sí]", Help: "Elimina una categoría", Handle: h.categoryDelete},
		{Name: "links", Usage: "links [fecha_inicio=] [fecha_fin=] [categoria_id=] [estado=] | links all", Help: "Lista los links con los filtros dados", Async: true, Handle: h.links},
		{Name: "link.show", Usage: "link.show <id>", Help: "Abre un link para clasificarlo", Handle: h.linkShow},
		{Name: "link.approve", Usage: "link.approve <id> [categorias=1,2]", Help: "Aprueba un link", Handle: h.classify(domain.LinkStatusApproved)},
		{Name: "link.reject", Usage: "link.reject <id> [categorias=1,2]", Help: "Descarta un link", Handle: h.classify(domain.LinkStatusRejected)},
		{Name: "link.status", Usage: "link.status <id> <pendiente|aprobado|descartado>", Help: "Cambia solo el estado de un link", Handle: h.linkStatus},
		{Name: "link.visit", Usage: "link.visit <url>", Help: "Registra la visita a un link", Handle: h.linkVisit},
	}

	// help lists the table it is registered in.
	var table *Table
	bindings = append(bindings, Binding{
		Name:  "help",
		Usage: "help",
		Help:  "Muestra esta ayuda",
		Handle: func(context.Context, Event) error {
			printHelp(p.Out, table)
			return nil
		},
	})

	table, err := NewTable(bindings...)
	if err != nil {
		return nil, err
	}
	return table, nil
}

type handlers struct {
	Pages
}

func (h *handlers) activities(ctx context.Context, ev Event) error {
	if ev.Arg(0) == "all" {
		_, err := h.Activity.ApplyFilter(ctx, domain.ActivityFilter{})
		return err
	}
	if len(ev.Params) == 0 {
		_, err := h.Activity.Apply(ctx)
		return err
	}
	f, err := ParseActivityFilter(ev.Params)
	if err != nil {
		return err
	}
	_, err = h.Activity.ApplyFilter(ctx, f)
	return err
}

func (h *handlers) export(ctx context.Context, ev Event) error {
	format, err := domain.ParseExportFormat(ev.Arg(0))
	if err != nil {
		return err
	}
	dir := ev.Arg(1)
	if dir == "" {
		dir = h.ExportDir
	}
	_, err = h.Activity.Export(ctx, activity.ExportInput{Format: format, Dir: dir})
	return err
}

func (h *handlers) users(ctx context.Context, _ Event) error {
	_, err := h.Activity.LoadUsers(ctx)
	return err
}

func (h *handlers) types(context.Context, Event) error {
	t := view.NewTable("Tipos de actividad", view.TypeHeaders, h.Out)
	t.Replace(view.OptionRows(h.Activity.Types()))
	return nil
}

func (h *handlers) categories(ctx context.Context, _ Event) error {
	_, err := h.Classification.LoadCategories(ctx)
	return err
}

func (h *handlers) categoryAdd(ctx context.Context, ev Event) error {
	return h.Classification.CreateCategory(ctx, view.NewTextField(strings.Join(ev.Args, " ")))
}

func (h *handlers) categoryRename(ctx context.Context, ev Event) error {
	id, err := ParseID(ev.Arg(0))
	if err != nil {
		return err
	}
	return h.Classification.RenameCategory(ctx, id, view.NewTextField(strings.Join(ev.Args[1:], " ")))
}

func (h *handlers) categoryDelete(ctx context.Context, ev Event) error {
	id, err := ParseID(ev.Arg(0))
	if err != nil {
		return err
	}
	confirm := h.Confirm
	if isYes(ev.Arg(1)) {
		confirm = view.AlwaysConfirm{}
	}
	_, err = h.Classification.DeleteCategory(ctx, id, confirm)
	return err
}

func isYes(s string) bool {
	switch strings.ToLower(s) {
	case "s", "si", "sí", "y", "yes":
		return true
	}
	return false
}

// RepeatToConfirm declines every prompt and asks the operator to repeat the
// event with a trailing "sí". The shell owns stdin, so it cannot ask inline.
type RepeatToConfirm struct {
	Out io.Writer
}

func (r RepeatToConfirm) Confirm(prompt string) bool {
	fmt.Fprintf(r.Out, "%s\nRepetí el comando agregando \"sí\" para confirmar.\n", prompt)
	return false
}

func (h *handlers) links(ctx context.Context, ev Event) error {
	if ev.Arg(0) == "all" {
		_, err := h.Classification.ApplyFilter(ctx, domain.LinkFilter{})
		return err
	}
	if len(ev.Params) == 0 {
		_, err := h.Classification.LoadLinks(ctx)
		return err
	}
	f, err := ParseLinkFilter(ev.Params)
	if err != nil {
		return err
	}
	_, err = h.Classification.ApplyFilter(ctx, f)
	return err
}

func (h *handlers) linkShow(ctx context.Context, ev Event) error {
	id, err := ParseID(ev.Arg(0))
	if err != nil {
		return err
	}
	ed, err := h.Classification.OpenLink(ctx, id)
	if err != nil {
		return err
	}
	PrintEditor(h.Out, ed)
	return nil
}

// classify applies status with the categories given as a param, else the
// selection of the open editor for the same link, else leaves them as is.
func (h *handlers) classify(status domain.LinkStatus) Handler {
	return func(ctx context.Context, ev Event) error {
		id, err := ParseID(ev.Arg(0))
		if err != nil {
			return err
		}

		var ids []int64
		if raw, ok := ev.Param("categorias", "categories"); ok {
			if ids, err = ParseIDList(raw); err != nil {
				return err
			}
		} else if ed, open := h.Classification.CurrentEditor(); open && ed.Link.ID == id {
			ids = ed.Selected
		}

		return h.Classification.Classify(ctx, classification.ClassifyInput{
			LinkID:      id,
			Status:      status,
			CategoryIDs: ids,
		})
	}
}

func (h *handlers) linkStatus(ctx context.Context, ev Event) error {
	id, err := ParseID(ev.Arg(0))
	if err != nil {
		return err
	}
	raw := ev.Arg(1)
	if v, ok := ev.Param("estado", "status"); ok {
		raw = v
	}
	status, err := domain.ParseLinkStatus(raw)
	if err != nil {
		return err
	}
	return h.Classification.SetStatus(ctx, id, status)
}

func (h *handlers) linkVisit(ctx context.Context, ev Event) error {
	url := ev.Arg(0)
	if url == "" {
		return domain.NewValidationError("url", "required")
	}
	h.Classification.Visit(ctx, url)
	return nil
}

// PrintEditor writes the link editor snapshot.
func PrintEditor(w io.Writer, ed classification.Editor) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Link\t%d\n", ed.Link.ID)
	fmt.Fprintf(tw, "URL\t%s\n", ed.Link.URL)
	fmt.Fprintf(tw, "Estado\t%s\n", ed.Link.Status.Label())
	fmt.Fprintf(tw, "Categorías\t%s\n", view.CategoryList(ed.Link.Categories))
	tw.Flush()

	if len(ed.Options) == 0 {
		return
	}
	fmt.Fprintln(w, "Asignables:")
	for _, o := range ed.Options {
		mark := " "
		if id, err := strconv.ParseInt(o.Value, 10, 64); err == nil && ed.IsSelected(id) {
			mark = "x"
		}
		fmt.Fprintf(w, "  [%s] %s %s\n", mark, o.Value, o.Label)
	}
}

func printHelp(w io.Writer, t *Table) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, b := range t.Bindings() {
		fmt.Fprintf(tw, "%s\t%s\n", b.Usage, b.Help)
	}
	fmt.Fprintf(tw, "%s\t%s\n", "wait", "Espera a que terminen las cargas en curso")
	fmt.Fprintf(tw, "%s\t%s\n", "quit | exit", "Sale de la consola")
	tw.Flush()
}
