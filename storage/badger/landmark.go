package badger

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/roamly/waypoint/core"
	"github.com/roamly/waypoint/storage"
)

// LandmarkRepository implements storage.LandmarkRepository for BadgerDB.
type LandmarkRepository struct {
	backend *Backend
}

var _ storage.LandmarkRepository = (*LandmarkRepository)(nil)

// NewLandmarkRepository creates a new LandmarkRepository.
func NewLandmarkRepository(backend *Backend) (storage.LandmarkRepository, error) {
	return &LandmarkRepository{backend: backend}, nil
}

// Close is a no-op; landmark IDs are content-based, so no sequence is held.
func (r *LandmarkRepository) Close() error {
	return nil
}

// AddLandmarks adds one or more landmarks to storage.
func (r *LandmarkRepository) AddLandmarks(ctx context.Context, landmarks ...*core.Landmark) ([]*core.Landmark, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, landmark := range landmarks {
			if err := core.ValidateLandmark(landmark); err != nil {
				return err
			}

			if landmark.Id == 0 {
				landmark.Id = core.LandmarkIDFromName(landmark.Name)
			}

			landmark.InsertedAt = time.Now().UTC()
			landmark.UpdatedAt = landmark.InsertedAt

			// Store primary record
			key := makeLandmarkKey(landmark.Id)
			value := storage.MarshalLandmark(landmark)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update name index
			nameKey := makeLandmarkNameKey(landmark.Name)
			if err := tx.Set(nameKey, storage.MarshalID(landmark.Id)); err != nil {
				return err
			}

			// Update geohash cell index
			if landmark.Geohash != "" {
				cellKey := makeLandmarkCellKey(landmark.Geohash, landmark.Id)
				if err := tx.Set(cellKey, storage.MarshalID(landmark.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return landmarks, err
}

// GetLandmark retrieves a single landmark by ID.
func (r *LandmarkRepository) GetLandmark(ctx context.Context, id core.ID) (*core.Landmark, error) {
	var landmark *core.Landmark
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		landmark, err = r.readLandmark(tx, makeLandmarkKey(id))
		if err != nil {
			return err
		}
		if landmark == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return landmark, nil
}

// GetLandmarkByName retrieves a landmark by its display name via the
// normalized-name index.
func (r *LandmarkRepository) GetLandmarkByName(ctx context.Context, name string) (*core.Landmark, error) {
	var landmark *core.Landmark
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeLandmarkNameKey(name))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}

		var id core.ID
		if err := item.Value(func(val []byte) error {
			var err error
			id, err = storage.UnmarshalID(val)
			return err
		}); err != nil {
			return err
		}

		landmark, err = r.readLandmark(tx, makeLandmarkKey(id))
		if err != nil {
			return err
		}
		if landmark == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return landmark, nil
}

// GetLandmarksByGeohash retrieves all landmarks registered in the given
// geohash cell. Exact cell equality only; an empty cell yields an empty
// slice, not an error.
func (r *LandmarkRepository) GetLandmarksByGeohash(ctx context.Context, cell string) ([]*core.Landmark, error) {
	results := []*core.Landmark{}
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makePartialLandmarkCellKey(cell)

		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var id core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			landmark, err := r.readLandmark(tx, makeLandmarkKey(id))
			if err != nil {
				return err
			}
			if landmark != nil {
				results = append(results, landmark)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// ScanLandmarks retrieves all landmarks. No ordering guarantee.
func (r *LandmarkRepository) ScanLandmarks(ctx context.Context) ([]*core.Landmark, error) {
	var results []*core.Landmark
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := []byte(landmarkPrefix + ":")

		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if !bytes.HasPrefix(iter.Item().Key(), prefix) {
				continue
			}
			landmark, err := r.readLandmarkItem(iter.Item())
			if err != nil {
				return err
			}
			if landmark != nil {
				results = append(results, landmark)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// readLandmark reads a landmark by key within a transaction.
// Returns nil (no error) if the key doesn't exist.
func (r *LandmarkRepository) readLandmark(tx *badger.Txn, key []byte) (*core.Landmark, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.readLandmarkItem(item)
}

func (r *LandmarkRepository) readLandmarkItem(item *badger.Item) (*core.Landmark, error) {
	var landmark *core.Landmark
	err := item.Value(func(val []byte) error {
		var err error
		landmark, err = storage.UnmarshalLandmark(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return landmark, nil
}
