package in

import (
	"context"

	"instalike/internal/modules/catalog/dto"
	catalogin "instalike/internal/modules/catalog/port/in"
)

// TUIHandler exposes the catalog to terminal views.
type TUIHandler struct {
	usecase catalogin.Usecase
}

func NewTUIHandler(usecase catalogin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Feed(ctx context.Context) ([]dto.PostOutput, error) { return h.usecase.Feed(ctx) }

func (h TUIHandler) Stories(ctx context.Context) ([]dto.StoryOutput, error) {
	return h.usecase.Stories(ctx)
}

func (h TUIHandler) Search(ctx context.Context, query string) ([]dto.SearchResultOutput, error) {
	return h.usecase.Search(ctx, query)
}

func (h TUIHandler) Chats(ctx context.Context) ([]dto.ChatOutput, error) { return h.usecase.Chats(ctx) }

func (h TUIHandler) Activity(ctx context.Context) ([]dto.ActivityOutput, error) {
	return h.usecase.Activity(ctx)
}

func (h TUIHandler) Profile(ctx context.Context) (dto.ProfileOutput, error) {
	return h.usecase.Profile(ctx)
}
