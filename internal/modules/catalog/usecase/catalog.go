package usecase

import (
	"context"
	"fmt"
	"net/url"

	"instalike/internal/modules/catalog/dto"
	catalogin "instalike/internal/modules/catalog/port/in"
	"instalike/internal/modules/catalog/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func avatarFor(handle string) string {
	return "https://i.pravatar.cc/150?u=" + url.QueryEscape(handle)
}

func squareImage(seed string, size int) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/%d/%d", url.PathEscape(seed), size, size)
}

func (i *Interactor) Feed(ctx context.Context) ([]dto.PostOutput, error) {
	c, err := i.svc.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PostOutput, 0, len(c.Feed))
	for _, p := range c.Feed {
		out = append(out, dto.PostOutput{ID: p.ID, User: p.User, Avatar: p.Avatar, Image: p.Image, Caption: p.Caption})
	}
	return out, nil
}

func (i *Interactor) Stories(ctx context.Context) ([]dto.StoryOutput, error) {
	c, err := i.svc.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoryOutput, 0, len(c.Stories))
	for _, h := range c.Stories {
		out = append(out, dto.StoryOutput{Handle: h, Avatar: avatarFor(h)})
	}
	return out, nil
}

func (i *Interactor) Search(ctx context.Context, query string) ([]dto.SearchResultOutput, error) {
	c, err := i.svc.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	handles := c.Search.Filter(query)
	out := make([]dto.SearchResultOutput, 0, len(handles))
	for _, h := range handles {
		out = append(out, dto.SearchResultOutput{Handle: h, Image: squareImage(h, 400)})
	}
	return out, nil
}

func (i *Interactor) Chats(ctx context.Context) ([]dto.ChatOutput, error) {
	c, err := i.svc.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChatOutput, 0, len(c.Chats))
	for _, ch := range c.Chats {
		out = append(out, dto.ChatOutput{ID: ch.ID, User: ch.User, Text: ch.Text, Avatar: ch.Avatar})
	}
	return out, nil
}

func (i *Interactor) Activity(ctx context.Context) ([]dto.ActivityOutput, error) {
	c, err := i.svc.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActivityOutput, 0, len(c.Activity))
	for _, a := range c.Activity {
		out = append(out, dto.ActivityOutput{ID: a.ID, Text: a.Text, When: a.When})
	}
	return out, nil
}

func (i *Interactor) Profile(ctx context.Context) (dto.ProfileOutput, error) {
	c, err := i.svc.Catalog(ctx)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	highlights := make([]dto.HighlightOutput, 0, len(c.Profile.Highlights))
	for _, h := range c.Profile.Highlights {
		item := dto.HighlightOutput{Label: h.Label, Empty: h.Empty}
		if !h.Empty {
			item.Image = squareImage(h.Label, 120)
		}
		highlights = append(highlights, item)
	}
	return dto.ProfileOutput{
		Posts:      append([]string(nil), c.Profile.Posts...),
		Followers:  append([]string(nil), c.Profile.Followers...),
		Following:  append([]string(nil), c.Profile.Following...),
		Highlights: highlights,
	}, nil
}
