package dropdown

import (
	"context"
	"encoding/json"
	"errors"
)

// Store keeps widget snapshots between requests.
type Store interface {
	// Load returns the snapshot for id or ErrNotFound.
	Load(ctx context.Context, id string) (Snapshot, error)
	// Save stores the snapshot under id, refreshing its expiration.
	Save(ctx context.Context, id string, snap Snapshot) error
	// Delete removes the snapshot for id. Missing ids are not an error.
	Delete(ctx context.Context, id string) error
}

func marshalSnapshot(snap Snapshot) ([]byte, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, errors.Join(ErrMarshal, err)
	}
	return data, nil
}

func unmarshalSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, errors.Join(ErrUnmarshal, err)
	}
	return snap, nil
}
