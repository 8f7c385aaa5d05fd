package bootstrap

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	cataloginadapter "instalike/internal/modules/catalog/adapter/in"
	catalogoutadapter "instalike/internal/modules/catalog/adapter/out"
	catalogservice "instalike/internal/modules/catalog/service"
	catalogusecase "instalike/internal/modules/catalog/usecase"
	sessioninadapter "instalike/internal/modules/session/adapter/in"
	sessionoutadapter "instalike/internal/modules/session/adapter/out"
	sessionout "instalike/internal/modules/session/port/out"
	sessionservice "instalike/internal/modules/session/service"
	sessionusecase "instalike/internal/modules/session/usecase"
	"instalike/internal/platform/config"
	uiapp "instalike/internal/ui/app"
)

type App struct {
	Config     config.Config
	SessionCLI sessioninadapter.CLIHandler
	CatalogTUI cataloginadapter.TUIHandler

	log    logrus.FieldLogger
	closer io.Closer
}

func New(cfg config.Config, log logrus.FieldLogger) (*App, error) {
	store, closer, err := newRecordStore(cfg)
	if err != nil {
		return nil, err
	}
	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(store),
		log.WithField("backend", cfg.SessionBackend),
	)
	catalogUC := catalogusecase.NewInteractor(catalogservice.NewCatalogService(
		catalogoutadapter.NewYAMLCatalogSource(cfg.CatalogPath),
	))

	return &App{
		Config:     cfg,
		SessionCLI: sessioninadapter.NewCLIHandler(sessionUC),
		CatalogTUI: cataloginadapter.NewTUIHandler(catalogUC),
		log:        log,
		closer:     closer,
	}, nil
}

// Close releases the session backend, if it holds anything open.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func newRecordStore(cfg config.Config) (sessionout.RecordStore, io.Closer, error) {
	switch cfg.SessionBackend {
	case config.BackendSQLite:
		store, err := sessionoutadapter.NewSQLiteRecordStore(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("new sqlite session store: %w", err)
		}
		return store, store, nil
	default:
		return sessionoutadapter.NewFileRecordStore(cfg.StateDir), nil, nil
	}
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.SessionCLI, app.CatalogTUI, uiapp.Options{
		Width:         app.Config.Width,
		MarkdownStyle: app.Config.MarkdownStyle,
		Log:           app.log,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
