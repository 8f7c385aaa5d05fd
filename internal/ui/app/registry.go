package app

import (
	"instalike/internal/ui/nav"
	"instalike/internal/ui/views"
	activityview "instalike/internal/ui/views/activity"
	createview "instalike/internal/ui/views/create"
	directview "instalike/internal/ui/views/direct"
	editview "instalike/internal/ui/views/edit"
	homeview "instalike/internal/ui/views/home"
	loginview "instalike/internal/ui/views/login"
	profileview "instalike/internal/ui/views/profile"
	searchview "instalike/internal/ui/views/search"
	settingsview "instalike/internal/ui/views/settings"
)

// Producer builds a fresh view each time its route is entered.
type Producer func(c views.Context, presence bool) views.View

// Registry maps routes to producers. Routes without an entry get the default
// producer, which shows Home when a session is present and Login otherwise.
type Registry struct {
	producers map[nav.Route]Producer
}

func NewRegistry() Registry {
	r := Registry{producers: make(map[nav.Route]Producer, len(nav.All()))}
	r.Register(nav.Login, func(c views.Context, _ bool) views.View { return loginview.New(c) })
	r.Register(nav.Home, func(c views.Context, _ bool) views.View { return homeview.New(c) })
	r.Register(nav.Search, func(c views.Context, _ bool) views.View { return searchview.New(c) })
	r.Register(nav.Direct, func(c views.Context, _ bool) views.View { return directview.New(c) })
	r.Register(nav.Activity, func(c views.Context, _ bool) views.View { return activityview.New(c) })
	r.Register(nav.Profile, func(c views.Context, _ bool) views.View { return profileview.New(c) })
	r.Register(nav.Edit, func(c views.Context, _ bool) views.View { return editview.New(c) })
	r.Register(nav.Settings, func(c views.Context, _ bool) views.View { return settingsview.New(c) })
	r.Register(nav.Create, func(c views.Context, _ bool) views.View { return createview.New(c) })
	return r
}

func (r Registry) Register(route nav.Route, p Producer) {
	r.producers[route] = p
}

func (r Registry) Resolve(route nav.Route) Producer {
	if p, ok := r.producers[route]; ok {
		return p
	}
	return r.fallback
}

func (r Registry) fallback(c views.Context, present bool) views.View {
	landing := nav.Login
	if present {
		landing = nav.Home
	}
	if p, ok := r.producers[landing]; ok {
		return p(c, present)
	}
	if present {
		return homeview.New(c)
	}
	return loginview.New(c)
}
