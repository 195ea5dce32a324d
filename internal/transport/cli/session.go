package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/minervactl/internal/session"
)

func newSessionCommand(r *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "session",
		Aliases: []string{"sesion"},
		Short:   "Cookies de sesión guardadas (sessionid, csrftoken)",
		Long: `Guarda las cookies de una sesión iniciada en el navegador para que minervactl
las envíe al backend. El token anti-CSRF se toma de la cookie configurada en
session.csrf_cookie.

Ejemplo:
  minervactl session set sessionid abc123 csrftoken def456`,
	}

	var reveal bool
	show := &cobra.Command{
		Use:   "show",
		Short: "Muestra las cookies guardadas",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			store, err := r.openSession()
			if err != nil {
				return err
			}
			all := store.All()
			if len(all) == 0 {
				fmt.Fprintf(r.out(), "No hay sesión guardada en %s\n", store.Path())
				return nil
			}
			keys := make([]string, 0, len(all))
			for k := range all {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			for _, k := range keys {
				v := all[k]
				if !reveal {
					v = mask(v)
				}
				fmt.Fprintf(r.out(), "%s=%s\n", k, v)
			}
			return nil
		},
	}
	show.Flags().BoolVar(&reveal, "reveal", false, "muestra los valores completos")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <nombre> <valor> [<nombre> <valor>...]",
			Short: "Guarda una o más cookies",
			Args: func(_ *cobra.Command, args []string) error {
				if len(args) == 0 || len(args)%2 != 0 {
					return fmt.Errorf("se esperan pares <nombre> <valor>")
				}
				return nil
			},
			RunE: func(_ *cobra.Command, args []string) error {
				store, err := r.openSession()
				if err != nil {
					return err
				}
				for i := 0; i < len(args); i += 2 {
					store.Set(strings.TrimSpace(args[i]), args[i+1])
				}
				if err := store.Save(); err != nil {
					return err
				}
				fmt.Fprintf(r.out(), "Sesión guardada en %s\n", store.Path())
				return nil
			},
		},
		show,
		&cobra.Command{
			Use:   "clear",
			Short: "Borra la sesión guardada",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				store, err := r.openSession()
				if err != nil {
					return err
				}
				store.Clear()
				if err := store.Save(); err != nil {
					return err
				}
				fmt.Fprintln(r.out(), "Sesión borrada")
				return nil
			},
		},
	)
	return cmd
}

func (r *runtime) openSession() (*session.Store, error) {
	cfg, err := r.config()
	if err != nil {
		return nil, err
	}
	return session.Open(cfg.Session.Path)
}

// mask keeps the first four characters of a secret.
func mask(v string) string {
	if len(v) <= 4 {
		return strings.Repeat("*", len(v))
	}
	return v[:4] + strings.Repeat("*", 8)
}
