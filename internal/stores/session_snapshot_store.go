package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"device-telemetry/internal/models"
	"device-telemetry/internal/shared/filestorages"
)

var (
	ErrSessionSnapshotAlreadyExist = errors.New("session snapshot already exists")
	ErrSessionSnapshotNotFound     = errors.New("session snapshot not found")
)

// SessionSnapshotStore writes session snapshots as JSON files. Put is create-if-not-exists:
// a session is exported once, and a second export of the same session ID returns
// ErrSessionSnapshotAlreadyExist instead of replacing the first file.
//
// Snapshots are export artifacts. Open streams the stored bytes back unchanged; nothing
// decodes them into a live session.
//
//go:generate mockgen -source=session_snapshot_store.go -destination=./mocks/session_snapshot_store_mock.go -package=mocks
type SessionSnapshotStore interface {
	Put(ctx context.Context, snapshot *models.SessionSnapshot) error
	Open(ctx context.Context, sessionID string) (io.ReadCloser, error)
}

type sessionSnapshotStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewSessionSnapshotStore(fileStorage filestorages.FileStorage) SessionSnapshotStore {
	return &sessionSnapshotStore{fileStorage: fileStorage, dir: "session-snapshots"}
}

func (s *sessionSnapshotStore) Put(ctx context.Context, snapshot *models.SessionSnapshot) error {
	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal session snapshot: %w", err)
	}

	_, err = s.fileStorage.Put(ctx, s.getKey(snapshot.SessionID), bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrSessionSnapshotAlreadyExist
		}
		return fmt.Errorf("failed to put session snapshot: %w", err)
	}
	return nil
}

func (s *sessionSnapshotStore) Open(ctx context.Context, sessionID string) (io.ReadCloser, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(sessionID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrSessionSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to open session snapshot: %w", err)
	}
	return readCloser, nil
}

func (s *sessionSnapshotStore) getKey(sessionID string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, sessionID)
}
