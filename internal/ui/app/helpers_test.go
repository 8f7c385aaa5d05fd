package app_test

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	catalogin "instalike/internal/modules/catalog/adapter/in"
	catalogout "instalike/internal/modules/catalog/adapter/out"
	catalogservice "instalike/internal/modules/catalog/service"
	catalogusecase "instalike/internal/modules/catalog/usecase"
	sessionin "instalike/internal/modules/session/adapter/in"
	sessionout "instalike/internal/modules/session/adapter/out"
	"instalike/internal/modules/session/domain"
	sessiondto "instalike/internal/modules/session/dto"
	sessionservice "instalike/internal/modules/session/service"
	sessionusecase "instalike/internal/modules/session/usecase"
	"instalike/internal/platform/logging"
	"instalike/internal/ui/app"
)

type harness struct {
	dir     string
	session sessionin.CLIHandler
	catalog catalogin.TUIHandler
}

func newHarness(t *testing.T) harness {
	t.Helper()
	dir := t.TempDir()
	uc := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(sessionout.NewFileRecordStore(dir)),
		logging.Discard(),
	)
	cat := catalogusecase.NewInteractor(catalogservice.NewCatalogService(catalogout.NewYAMLCatalogSource("")))
	return harness{dir: dir, session: sessionin.NewCLIHandler(uc), catalog: catalogin.NewTUIHandler(cat)}
}

func (h harness) recordPath() string { return filepath.Join(h.dir, domain.StorageKey+".json") }

func (h harness) current(t *testing.T) (sessiondto.SessionOutput, bool) {
	t.Helper()
	return h.session.Current(context.Background()).Get()
}

// boot builds the model, sizes it and runs Init to completion.
func (h harness) boot(t *testing.T) app.Model {
	t.Helper()
	m := app.NewModel(h.session, h.catalog, app.Options{Width: 80, MarkdownStyle: "notty", Log: logging.Discard()})
	m = drain(t, m, m.Init(), 0)
	return step(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
}

// step feeds one message and then every message its commands produce.
func step(t *testing.T, m app.Model, msg tea.Msg) app.Model {
	t.Helper()
	next, cmd := m.Update(msg)
	return drain(t, next.(app.Model), cmd, 0)
}

func drain(t *testing.T, m app.Model, cmd tea.Cmd, depth int) app.Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	if depth > 32 {
		t.Fatalf("command chain did not settle")
	}
	switch msg := cmd().(type) {
	case nil, tea.QuitMsg:
	case tea.BatchMsg:
		for _, c := range msg {
			m = drain(t, m, c, depth+1)
		}
	default:
		next, next2 := m.Update(msg)
		m = drain(t, next.(app.Model), next2, depth+1)
	}
	return m
}

func keys(t *testing.T, m app.Model, ks ...string) app.Model {
	t.Helper()
	for _, k := range ks {
		m = step(t, m, press(k))
	}
	return m
}

func typeText(t *testing.T, m app.Model, s string) app.Model {
	t.Helper()
	return step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func press(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	case "ctrl+x":
		return tea.KeyMsg{Type: tea.KeyCtrlX}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func login(t *testing.T, m app.Model, username string) app.Model {
	t.Helper()
	m = typeText(t, m, username)
	return keys(t, m, "enter")
}
