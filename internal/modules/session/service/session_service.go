package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"instalike/internal/modules/session/domain"
	sessionout "instalike/internal/modules/session/port/out"
	apperrors "instalike/internal/platform/errors"
)

type SessionService struct {
	store sessionout.RecordStore
}

func NewSessionService(store sessionout.RecordStore) *SessionService {
	return &SessionService{store: store}
}

// Load decodes the stored record and normalizes it. A missing record yields
// ErrNoSession; an unparsable or blank one yields ErrMalformedSession.
func (s *SessionService) Load(ctx context.Context) (domain.Session, error) {
	payload, err := s.store.Read(ctx, domain.StorageKey)
	if err != nil {
		return domain.Session{}, err
	}
	session := domain.Session{}
	if err := json.Unmarshal(payload, &session); err != nil {
		return domain.Session{}, fmt.Errorf("%w: %v", apperrors.ErrMalformedSession, err)
	}
	if !session.Valid() {
		return domain.Session{}, fmt.Errorf("%w: username is empty", apperrors.ErrMalformedSession)
	}
	return session.Normalize(), nil
}

func (s *SessionService) Save(ctx context.Context, session domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.store.Write(ctx, domain.StorageKey, payload)
}

func (s *SessionService) Clear(ctx context.Context) error {
	err := s.store.Remove(ctx, domain.StorageKey)
	if errors.Is(err, apperrors.ErrNoSession) {
		return nil
	}
	return err
}
