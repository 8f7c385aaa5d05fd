package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	sessionout "instalike/internal/modules/session/port/out"
	apperrors "instalike/internal/platform/errors"
)

// FileRecordStore keeps each key in its own JSON file under dir.
type FileRecordStore struct {
	dir string
}

func NewFileRecordStore(dir string) sessionout.RecordStore {
	return &FileRecordStore{dir: dir}
}

func (s *FileRecordStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileRecordStore) Read(_ context.Context, key string) ([]byte, error) {
	payload, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.ErrNoSession
		}
		return nil, fmt.Errorf("read session record: %w", err)
	}
	return payload, nil
}

func (s *FileRecordStore) Write(_ context.Context, key string, payload []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write session record: %w", err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("replace session record: %w", err)
	}
	return nil
}

func (s *FileRecordStore) Remove(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear session record: %w", err)
	}
	return nil
}
