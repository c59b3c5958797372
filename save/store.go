package save

import (
	"errors"
	"fmt"
	"log/slog"

	"quackshot/game"
)

// Store reads and writes session snapshots
type Store interface {
	game.SnapshotSource
	game.SnapshotSink
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*RemoteStore)(nil)
)

// Open picks a store: a server profile when remoteURL is set, otherwise the YAML file at path.
// A remote store without a profile id creates one.
func Open(path, remoteURL, profileID string) (Store, error) {
	if remoteURL == "" {
		return NewFileStore(path), nil
	}
	store := NewRemoteStore(remoteURL, profileID)
	if profileID == "" {
		if _, err := store.CreateProfile(); err != nil {
			return nil, fmt.Errorf("create profile: %w", err)
		}
	}
	return store, nil
}

// Restore loads the snapshot and builds a session saving back to the store.
// A missing save starts fresh; a broken one is logged and also starts fresh.
func Restore(store Store, log *slog.Logger) *game.Session {
	snap, err := store.Load()
	switch {
	case err == nil:
	case errors.Is(err, game.ErrNotFound):
		log.Info("no saved progress, starting fresh")
	default:
		log.Warn("could not load saved progress", "error", err)
	}
	return game.NewSession(snap, store)
}
