package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"instalike/internal/modules/session/domain"
	"instalike/internal/modules/session/dto"
	sessionin "instalike/internal/modules/session/port/in"
	"instalike/internal/modules/session/service"
	apperrors "instalike/internal/platform/errors"
)

type Interactor struct {
	svc *service.SessionService
	log logrus.FieldLogger
}

func NewInteractor(svc *service.SessionService, log logrus.FieldLogger) sessionin.Usecase {
	return &Interactor{svc: svc, log: log}
}

// Current never fails: anything other than a well-formed record counts as
// logged out.
func (i *Interactor) Current(ctx context.Context) dto.Presence {
	session, err := i.svc.Load(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNoSession) {
			i.log.WithError(err).Warn("session record ignored")
		}
		return dto.Absent()
	}
	return dto.Present(toOutput(session))
}

// Set overwrites the stored record with the normalized input.
func (i *Interactor) Set(ctx context.Context, input dto.ProfileInput) error {
	session := domain.Session{Username: input.Username, AvatarURL: input.AvatarURL, Bio: input.Bio}.Normalize()
	if !session.Valid() {
		return apperrors.ErrEmptyRequiredField
	}
	return i.svc.Save(ctx, session)
}

func (i *Interactor) Clear(ctx context.Context) error {
	return i.svc.Clear(ctx)
}

func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) (dto.SessionOutput, error) {
	if strings.TrimSpace(input.Username) == "" {
		return dto.SessionOutput{}, apperrors.ErrEmptyRequiredField
	}
	session := domain.Session{Username: input.Username, AvatarURL: input.AvatarURL}.Normalize()
	session.Bio = domain.DefaultBio
	if err := i.svc.Save(ctx, session); err != nil {
		return dto.SessionOutput{}, err
	}
	i.log.WithField("username", session.Username).Info("logged in")
	return toOutput(session), nil
}

func (i *Interactor) SaveProfile(ctx context.Context, input dto.ProfileInput) (dto.SessionOutput, error) {
	if strings.TrimSpace(input.Username) == "" {
		return dto.SessionOutput{}, apperrors.ErrEmptyRequiredField
	}
	session := domain.Session{Username: input.Username, AvatarURL: input.AvatarURL, Bio: input.Bio}.Normalize()
	if err := i.svc.Save(ctx, session); err != nil {
		return dto.SessionOutput{}, err
	}
	i.log.WithField("username", session.Username).Info("profile saved")
	return toOutput(session), nil
}

func (i *Interactor) Logout(ctx context.Context) error {
	if err := i.svc.Clear(ctx); err != nil {
		return err
	}
	i.log.Info("logged out")
	return nil
}

func toOutput(s domain.Session) dto.SessionOutput {
	return dto.SessionOutput{Username: s.Username, AvatarURL: s.AvatarURL, Bio: s.Bio}
}
