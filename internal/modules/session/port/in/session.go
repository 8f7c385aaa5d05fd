package in

import (
	"context"

	"instalike/internal/modules/session/dto"
)

type Usecase interface {
	Current(ctx context.Context) dto.Presence
	Set(ctx context.Context, input dto.ProfileInput) error
	Clear(ctx context.Context) error
	Login(ctx context.Context, input dto.LoginInput) (dto.SessionOutput, error)
	SaveProfile(ctx context.Context, input dto.ProfileInput) (dto.SessionOutput, error)
	Logout(ctx context.Context) error
}
