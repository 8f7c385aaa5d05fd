package in

import (
	"context"

	sessiondto "instalike/internal/modules/session/dto"
	sessionin "instalike/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Current(ctx context.Context) sessiondto.Presence {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) Login(ctx context.Context, username, avatarURL string) (sessiondto.SessionOutput, error) {
	return h.usecase.Login(ctx, sessiondto.LoginInput{Username: username, AvatarURL: avatarURL})
}

func (h CLIHandler) SaveProfile(ctx context.Context, username, avatarURL, bio string) (sessiondto.SessionOutput, error) {
	return h.usecase.SaveProfile(ctx, sessiondto.ProfileInput{Username: username, AvatarURL: avatarURL, Bio: bio})
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}
