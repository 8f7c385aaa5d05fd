package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"instalike/internal/modules/session/domain"
	"instalike/internal/modules/session/service"
	apperrors "instalike/internal/platform/errors"
)

type memStore struct {
	records map[string][]byte
	removed int
}

func (m *memStore) Read(_ context.Context, key string) ([]byte, error) {
	b, ok := m.records[key]
	if !ok {
		return nil, apperrors.ErrNoSession
	}
	return b, nil
}

func (m *memStore) Write(_ context.Context, key string, payload []byte) error {
	m.records[key] = payload
	return nil
}

func (m *memStore) Remove(_ context.Context, key string) error {
	m.removed++
	delete(m.records, key)
	return nil
}

func TestSaveSerializesFullRecordUnderStorageKey(t *testing.T) {
	t.Parallel()
	store := &memStore{records: map[string][]byte{}}
	svc := service.NewSessionService(store)
	if err := svc.Save(context.Background(), domain.Session{Username: "a", AvatarURL: "x", Bio: ""}); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, ok := store.records["insta_like_user"]
	if !ok {
		t.Fatalf("record must be stored under insta_like_user")
	}
	decoded := map[string]any{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode stored record: %v", err)
	}
	for _, field := range []string{"username", "avatarUrl", "bio"} {
		if _, ok := decoded[field]; !ok {
			t.Fatalf("stored record missing %q: %s", field, raw)
		}
	}
}

func TestLoadDistinguishesMissingAndMalformed(t *testing.T) {
	t.Parallel()
	store := &memStore{records: map[string][]byte{}}
	svc := service.NewSessionService(store)
	if _, err := svc.Load(context.Background()); !errors.Is(err, apperrors.ErrNoSession) {
		t.Fatalf("expected no session error, got %v", err)
	}
	store.records[domain.StorageKey] = []byte("nope")
	if _, err := svc.Load(context.Background()); !errors.Is(err, apperrors.ErrMalformedSession) {
		t.Fatalf("expected malformed session error, got %v", err)
	}
}

func TestClearDelegatesToStore(t *testing.T) {
	t.Parallel()
	store := &memStore{records: map[string][]byte{domain.StorageKey: []byte(`{"username":"a"}`)}}
	svc := service.NewSessionService(store)
	if err := svc.Clear(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if store.removed != 1 || len(store.records) != 0 {
		t.Fatalf("expected record removed, got removed=%d records=%d", store.removed, len(store.records))
	}
}
