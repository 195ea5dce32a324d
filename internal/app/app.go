package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"

	"github.com/heartmarshall/minervactl/internal/adapter/minerva"
	"github.com/heartmarshall/minervactl/internal/config"
	"github.com/heartmarshall/minervactl/internal/console"
	"github.com/heartmarshall/minervactl/internal/dataloader"
	"github.com/heartmarshall/minervactl/internal/dispatch"
	"github.com/heartmarshall/minervactl/internal/service/activity"
	"github.com/heartmarshall/minervactl/internal/service/classification"
	"github.com/heartmarshall/minervactl/internal/session"
	"github.com/heartmarshall/minervactl/internal/view"
)

// IO is the operator's terminal.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Tables are the display surfaces shared by the pages.
type Tables struct {
	Activities *view.Table
	Users      *view.Table
	Categories *view.Table
	Links      *view.Table
}

// App holds the wired components for one invocation.
type App struct {
	Config  *config.Config
	Log     *slog.Logger
	Session *session.Store
	Client  *minerva.Client

	Notifier   *view.Console
	Dispatcher *dispatch.Dispatcher
	Tables     Tables

	Activity       *activity.Service
	Classification *classification.Service

	io IO
}

// New wires the session store, the REST client and both pages.
func New(cfg *config.Config, logger *slog.Logger, stdio IO) (*App, error) {
	store, err := session.Open(cfg.Session.Path)
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(cfg.Backend.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	client := minerva.New(cfg.Backend, logger,
		minerva.WithCookieJar(session.NewJar(store, base, logger)),
		minerva.WithCSRF(cfg.Session.CSRFHeader, session.NewTokenProvider(store, cfg.Session.CSRFCookie)),
	)

	// Tables, alerts and the shell prompt write under one lock.
	stdio.Out, stdio.Err = view.SharedWriters(stdio.Out, stdio.Err)
	notifier := view.NewConsole(stdio.Out, stdio.Err)
	dispatcher := dispatch.New(notifier, logger)

	tables := Tables{
		Activities: view.NewTable("Actividad", view.ActivityHeaders, stdio.Out),
		Users:      view.NewTable("Usuarios", view.UserHeaders, stdio.Out),
		Categories: view.NewTable("Categorías", view.CategoryHeaders, stdio.Out),
		Links:      view.NewTable("Links", view.LinkHeaders, stdio.Out),
	}

	a := &App{
		Config:     cfg,
		Log:        logger,
		Session:    store,
		Client:     client,
		Notifier:   notifier,
		Dispatcher: dispatcher,
		Tables:     tables,
		io:         stdio,
	}

	a.Activity = activity.NewService(logger, client, notifier, activity.Surfaces{
		Activities: tables.Activities,
		Users:      tables.Users,
	})
	a.Classification = classification.NewService(logger, client, dataloader.NewResolver(client), dispatcher, notifier, classification.Surfaces{
		Categories: tables.Categories,
		Links:      tables.Links,
	})

	logger.Debug("app wired",
		slog.String("version", BuildVersion()),
		slog.String("base_url", cfg.Backend.BaseURL),
		slog.String("session_path", store.Path()),
	)

	return a, nil
}

// Confirmer returns the confirmation source for destructive actions:
// always yes when assumeYes is set, else an interactive prompt.
func (a *App) Confirmer(assumeYes bool) view.Confirmer {
	if assumeYes {
		return view.AlwaysConfirm{}
	}
	return view.NewPrompt(a.io.In, a.io.Err)
}

// Pages returns the console pages backed by this App.
func (a *App) Pages(confirm view.Confirmer) console.Pages {
	return console.Pages{
		Activity:       a.Activity,
		Classification: a.Classification,
		Confirm:        confirm,
		ExportDir:      a.Config.Export.Dir,
		Out:            a.io.Out,
	}
}

// RunShell starts the interactive console on the App's input.
func (a *App) RunShell(ctx context.Context) error {
	table, err := console.NewPageTable(a.Pages(console.RepeatToConfirm{Out: a.io.Err}))
	if err != nil {
		return err
	}
	a.Log.Info("shell started", slog.String("version", BuildVersion()))
	return console.NewShell(table, a.io.Out, a.Dispatcher.Wait, a.Log).Run(ctx, a.io.In)
}

// Close waits for background audit requests to finish.
func (a *App) Close() {
	a.Dispatcher.Wait()
}
