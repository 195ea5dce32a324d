package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/minervactl/internal/app"
)

func newUsersCommand(r *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"usuarios"},
		Short:   "Usuarios del backend",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Lista los usuarios (opciones del filtro de actividad)",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, a *app.App, _ []string) error {
			_, err := a.Activity.LoadUsers(ctx)
			return err
		}),
	})
	return cmd
}
