package in

import (
	"context"

	"instalike/internal/modules/catalog/dto"
)

type Usecase interface {
	Feed(ctx context.Context) ([]dto.PostOutput, error)
	Stories(ctx context.Context) ([]dto.StoryOutput, error)
	Search(ctx context.Context, query string) ([]dto.SearchResultOutput, error)
	Chats(ctx context.Context) ([]dto.ChatOutput, error)
	Activity(ctx context.Context) ([]dto.ActivityOutput, error)
	Profile(ctx context.Context) (dto.ProfileOutput, error)
}
