// Package cli exposes the pages as cobra commands. One-shot commands build
// the App, run a single page operation and wait for background audits.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/minervactl/internal/app"
	"github.com/heartmarshall/minervactl/internal/config"
)

// ConfigLoader loads configuration from an optional file path.
type ConfigLoader func(path string) (*config.Config, error)

// Option configures the root command.
type Option func(*runtime)

// WithConfigLoader replaces config.LoadFrom.
func WithConfigLoader(fn ConfigLoader) Option {
	return func(r *runtime) { r.loadConfig = fn }
}

type runtime struct {
	io         app.IO
	loadConfig ConfigLoader

	configPath string
	logLevel   string
}

// NewRootCommand builds the minervactl command tree.
func NewRootCommand(stdio app.IO, opts ...Option) *cobra.Command {
	r := &runtime{io: stdio, loadConfig: config.LoadFrom}
	for _, opt := range opts {
		opt(r)
	}

	root := &cobra.Command{
		Use:           "minervactl",
		Short:         "Consola de moderación de Minerva",
		Long:          "minervactl consulta la actividad de los usuarios y clasifica los links cargados en el backend de Minerva.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetIn(stdio.In)
	root.SetOut(stdio.Out)
	root.SetErr(stdio.Err)

	pf := root.PersistentFlags()
	pf.StringVar(&r.configPath, "config", "", "ruta del archivo YAML (por defecto CONFIG_PATH o ./minervactl.yaml)")
	pf.StringVar(&r.logLevel, "log-level", "", "nivel de log: debug, info, warn, error")

	root.AddCommand(
		newActivitiesCommand(r),
		newUsersCommand(r),
		newCategoriesCommand(r),
		newLinksCommand(r),
		newSessionCommand(r),
		newShellCommand(r),
		newVersionCommand(r),
	)
	return root
}

func (r *runtime) config() (*config.Config, error) {
	path := r.configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := r.loadConfig(path)
	if err != nil {
		return nil, err
	}
	if r.logLevel != "" {
		cfg.Log.Level = r.logLevel
	}
	return cfg, nil
}

// run builds the App, calls fn and waits for background work before
// returning.
func (r *runtime) run(fn func(ctx context.Context, a *app.App, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := r.config()
		if err != nil {
			return err
		}

		a, err := app.New(cfg, app.NewLogger(cfg.Log, r.io.Err), r.io)
		if err != nil {
			return err
		}
		defer a.Close()

		return fn(cmd.Context(), a, args)
	}
}

func (r *runtime) out() io.Writer { return r.io.Out }
