package app_test

import (
	"testing"

	sessiondto "instalike/internal/modules/session/dto"
	"instalike/internal/ui/app"
	"instalike/internal/ui/nav"
	"instalike/internal/ui/views"
)

func TestRegistryCoversEveryRoute(t *testing.T) {
	t.Parallel()
	reg := app.NewRegistry()
	titles := map[nav.Route]string{
		nav.Login:    "Insta-like",
		nav.Home:     "Instagram",
		nav.Search:   "Поиск",
		nav.Direct:   "Direct",
		nav.Activity: "Активность",
		nav.Edit:     "Редактировать профиль",
		nav.Settings: "Настройки",
		nav.Create:   "Создать",
	}
	for route, want := range titles {
		v := reg.Resolve(route)(views.Context{MarkdownStyle: "notty"}, true)
		if got := v.Frame().Title; got != want {
			t.Fatalf("%s: expected title %q, got %q", route, want, got)
		}
	}
	c := views.Context{Session: sessiondto.SessionOutput{Username: "abc"}}
	if got := reg.Resolve(nav.Profile)(c, true).Frame().Title; got != "abc" {
		t.Fatalf("profile: expected the username as title, got %q", got)
	}
}

func TestRegistryFallbackFollowsPresence(t *testing.T) {
	t.Parallel()
	reg := app.NewRegistry()
	unknown := nav.Route(99)
	if got := reg.Resolve(unknown)(views.Context{}, true).Frame().Title; got != "Instagram" {
		t.Fatalf("expected home with a session, got %q", got)
	}
	if got := reg.Resolve(unknown)(views.Context{}, false).Frame().Title; got != "Insta-like" {
		t.Fatalf("expected login without a session, got %q", got)
	}
}
