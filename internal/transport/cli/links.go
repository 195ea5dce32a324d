package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/minervactl/internal/app"
	"github.com/heartmarshall/minervactl/internal/console"
	"github.com/heartmarshall/minervactl/internal/domain"
	"github.com/heartmarshall/minervactl/internal/service/classification"
)

func newLinksCommand(r *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "links",
		Short: "Links cargados y su clasificación",
	}
	cmd.AddCommand(
		newLinksListCommand(r),
		&cobra.Command{
			Use:   "show <id>",
			Short: "Muestra un link con sus categorías asignables",
			Args:  cobra.ExactArgs(1),
			RunE: r.run(func(ctx context.Context, a *app.App, args []string) error {
				id, err := console.ParseID(args[0])
				if err != nil {
					return err
				}
				// The editor's assignable options come from the category list.
				if _, err := a.Classification.LoadCategories(ctx); err != nil {
					return err
				}
				ed, err := a.Classification.OpenLink(ctx, id)
				if err != nil {
					return err
				}
				console.PrintEditor(r.out(), ed)
				return nil
			}),
		},
		newClassifyCommand(r, "approve", "Aprueba un link", domain.LinkStatusApproved),
		newClassifyCommand(r, "reject", "Descarta un link", domain.LinkStatusRejected),
		&cobra.Command{
			Use:   "status <id> <pendiente|aprobado|descartado>",
			Short: "Cambia solo el estado de un link",
			Args:  cobra.ExactArgs(2),
			RunE: r.run(func(ctx context.Context, a *app.App, args []string) error {
				id, err := console.ParseID(args[0])
				if err != nil {
					return err
				}
				status, err := domain.ParseLinkStatus(args[1])
				if err != nil {
					return err
				}
				return a.Classification.SetStatus(ctx, id, status)
			}),
		},
		&cobra.Command{
			Use:   "visit <url>",
			Short: "Registra la visita a un link",
			Args:  cobra.ExactArgs(1),
			RunE: r.run(func(ctx context.Context, a *app.App, args []string) error {
				a.Classification.Visit(ctx, args[0])
				return nil
			}),
		},
	)
	return cmd
}

func newLinksListCommand(r *runtime) *cobra.Command {
	params := map[string]*string{
		"fecha_inicio": new(string),
		"fecha_fin":    new(string),
		"categoria_id": new(string),
		"estado":       new(string),
	}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista los links con los filtros dados",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, a *app.App, _ []string) error {
			set := make(map[string]string, len(params))
			for k, v := range params {
				if *v != "" {
					set[k] = *v
				}
			}
			f, err := console.ParseLinkFilter(set)
			if err != nil {
				return err
			}
			_, err = a.Classification.ApplyFilter(ctx, f)
			return err
		}),
	}
	fl := cmd.Flags()
	fl.StringVar(params["fecha_inicio"], "desde", "", "fecha de carga inicial (YYYY-MM-DD)")
	fl.StringVar(params["fecha_fin"], "hasta", "", "fecha de carga final (YYYY-MM-DD)")
	fl.StringVar(params["categoria_id"], "categoria", "", "id de categoría")
	fl.StringVar(params["estado"], "estado", "", "pendiente, aprobado o descartado")
	return cmd
}

// newClassifyCommand sets a link's status. Without --categorias the current
// assignment is kept; an empty --categorias clears it.
func newClassifyCommand(r *runtime, use, short string, status domain.LinkStatus) *cobra.Command {
	var categories string
	cmd := &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = r.run(func(ctx context.Context, a *app.App, args []string) error {
		id, err := console.ParseID(args[0])
		if err != nil {
			return err
		}
		in := classification.ClassifyInput{LinkID: id, Status: status}
		if cmd.Flags().Changed("categorias") {
			if in.CategoryIDs, err = console.ParseIDList(categories); err != nil {
				return err
			}
		}
		return a.Classification.Classify(ctx, in)
	})
	cmd.Flags().StringVar(&categories, "categorias", "", "ids de categoría separados por coma")
	return cmd
}
