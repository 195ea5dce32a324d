package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/minervactl/internal/app"
)

func newShellCommand(r *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Consola interactiva (escribí \"help\" para ver los comandos)",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, a *app.App, _ []string) error {
			return a.RunShell(ctx)
		}),
	}
}
