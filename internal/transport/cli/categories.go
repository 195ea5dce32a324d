package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/minervactl/internal/app"
	"github.com/heartmarshall/minervactl/internal/console"
	"github.com/heartmarshall/minervactl/internal/view"
)

func newCategoriesCommand(r *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"categorias"},
		Short:   "Categorías de clasificación",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Lista las categorías",
			Args:  cobra.NoArgs,
			RunE: r.run(func(ctx context.Context, a *app.App, _ []string) error {
				_, err := a.Classification.LoadCategories(ctx)
				return err
			}),
		},
		&cobra.Command{
			Use:   "create <nombre>",
			Short: "Crea una categoría",
			Args:  cobra.ArbitraryArgs,
			RunE: r.run(func(ctx context.Context, a *app.App, args []string) error {
				return a.Classification.CreateCategory(ctx, view.NewTextField(strings.Join(args, " ")))
			}),
		},
		&cobra.Command{
			Use:   "rename <id> <nombre>",
			Short: "Renombra una categoría",
			Args:  cobra.MinimumNArgs(1),
			RunE: r.run(func(ctx context.Context, a *app.App, args []string) error {
				id, err := console.ParseID(args[0])
				if err != nil {
					return err
				}
				return a.Classification.RenameCategory(ctx, id, view.NewTextField(strings.Join(args[1:], " ")))
			}),
		},
		newCategoriesDeleteCommand(r),
	)
	return cmd
}

func newCategoriesDeleteCommand(r *runtime) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Elimina una categoría",
		Args:  cobra.ExactArgs(1),
		RunE: r.run(func(ctx context.Context, a *app.App, args []string) error {
			id, err := console.ParseID(args[0])
			if err != nil {
				return err
			}
			_, err = a.Classification.DeleteCategory(ctx, id, a.Confirmer(yes))
			return err
		}),
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "no pedir confirmación")
	return cmd
}
