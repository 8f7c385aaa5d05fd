package out

import "context"

// RecordStore persists raw serialized records under a key. Read of a missing
// key returns apperrors.ErrNoSession.
type RecordStore interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, payload []byte) error
	Remove(ctx context.Context, key string) error
}
