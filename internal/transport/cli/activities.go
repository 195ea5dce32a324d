package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/minervactl/internal/app"
	"github.com/heartmarshall/minervactl/internal/domain"
	"github.com/heartmarshall/minervactl/internal/service/activity"
	"github.com/heartmarshall/minervactl/internal/view"
)

func newActivitiesCommand(r *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activities",
		Aliases: []string{"actividades"},
		Short:   "Actividad de los usuarios",
	}
	cmd.AddCommand(
		newActivitiesListCommand(r),
		newActivitiesTypesCommand(r),
		newActivitiesExportCommand(r),
	)
	return cmd
}

func addActivityFilterFlags(cmd *cobra.Command, f *domain.ActivityFilter) {
	fl := cmd.Flags()
	fl.StringVar(&f.User, "usuario", "", "filtra por usuario")
	fl.StringVar(&f.Type, "tipo", "", "filtra por tipo de actividad (ver \"activities types\")")
	fl.StringVar(&f.From, "desde", "", "fecha inicial (YYYY-MM-DD)")
	fl.StringVar(&f.To, "hasta", "", "fecha final (YYYY-MM-DD)")
}

func newActivitiesListCommand(r *runtime) *cobra.Command {
	var f domain.ActivityFilter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista la actividad con los filtros dados",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, a *app.App, _ []string) error {
			_, err := a.Activity.ApplyFilter(ctx, f)
			return err
		}),
	}
	addActivityFilterFlags(cmd, &f)
	return cmd
}

func newActivitiesTypesCommand(r *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "Lista los tipos de actividad",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			t := view.NewTable("Tipos de actividad", view.TypeHeaders, r.out())
			t.Replace(view.OptionRows(view.TypeOptions()))
			return nil
		},
	}
}

func newActivitiesExportCommand(r *runtime) *cobra.Command {
	var (
		f      domain.ActivityFilter
		format string
		dir    string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exporta la actividad filtrada a xlsx o pdf",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, a *app.App, _ []string) error {
			fmtv, err := domain.ParseExportFormat(format)
			if err != nil {
				return err
			}
			if dir == "" {
				dir = a.Config.Export.Dir
			}
			a.Activity.SetFilter(f)
			_, err = a.Activity.Export(ctx, activity.ExportInput{Format: fmtv, Dir: dir})
			return err
		}),
	}
	addActivityFilterFlags(cmd, &f)
	cmd.Flags().StringVar(&format, "format", string(domain.ExportFormatXLSX), "formato: xlsx o pdf")
	cmd.Flags().StringVar(&dir, "dir", "", "directorio de destino (por defecto export.dir)")
	return cmd
}
