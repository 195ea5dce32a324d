package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/minervactl/internal/app"
)

func newVersionCommand(r *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Muestra la versión",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(r.out(), "minervactl %s\n", app.BuildVersion())
		},
	}
}
