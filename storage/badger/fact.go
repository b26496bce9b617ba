package badger

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/roamly/waypoint/core"
	"github.com/roamly/waypoint/storage"
)

// FactRepository implements storage.FactRepository for BadgerDB.
type FactRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.FactRepository = (*FactRepository)(nil)

// NewFactRepository creates a new FactRepository.
func NewFactRepository(backend *Backend) (storage.FactRepository, error) {
	idSeq, err := backend.GetSequence(factIDSeq)
	if err != nil {
		return nil, err
	}

	return &FactRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *FactRepository) Close() error {
	return r.idSeq.Release()
}

// AddFacts adds one or more facts to storage.
func (r *FactRepository) AddFacts(ctx context.Context, facts ...*core.Fact) ([]*core.Fact, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, fact := range facts {
			if err := core.ValidateFact(fact); err != nil {
				return err
			}

			nextID, err := r.idSeq.Next()
			if err != nil {
				return err
			}
			// BadgerDB sequences can return 0 on first call, so we skip it
			if nextID == 0 {
				nextID, err = r.idSeq.Next()
				if err != nil {
					return err
				}
			}
			fact.Id = core.ID(nextID)
			fact.InsertedAt = time.Now().UTC()

			key := makeFactKey(fact.LandmarkId, fact.Id)
			value := storage.MarshalFact(fact)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return facts, err
}

// UpdateFacts rewrites existing facts in place, preserving the stored
// InsertedAt timestamp.
func (r *FactRepository) UpdateFacts(ctx context.Context, facts ...*core.Fact) ([]*core.Fact, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, fact := range facts {
			if err := core.ValidateFact(fact); err != nil {
				return err
			}
			if fact.Id == 0 {
				return storage.ErrNotFound
			}

			key := makeFactKey(fact.LandmarkId, fact.Id)
			item, err := tx.Get(key)
			if err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					return storage.ErrNotFound
				}
				return err
			}

			var stored *core.Fact
			if err := item.Value(func(val []byte) error {
				var err error
				stored, err = storage.UnmarshalFact(val)
				return err
			}); err != nil {
				return err
			}
			fact.InsertedAt = stored.InsertedAt

			if err := tx.Set(key, storage.MarshalFact(fact)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return facts, err
}

// GetFact retrieves a single fact by landmark and fact ID.
func (r *FactRepository) GetFact(ctx context.Context, landmarkID, id core.ID) (*core.Fact, error) {
	var fact *core.Fact
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeFactKey(landmarkID, id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			fact, err = storage.UnmarshalFact(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return fact, nil
}

// GetFactsByLandmark retrieves all facts stored for a landmark.
func (r *FactRepository) GetFactsByLandmark(ctx context.Context, landmarkID core.ID) ([]*core.Fact, error) {
	results := []*core.Fact{}
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makePartialFactKey(landmarkID)

		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var fact *core.Fact
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				fact, err = storage.UnmarshalFact(val)
				return err
			}); err != nil {
				return err
			}
			if fact != nil {
				results = append(results, fact)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// FindSimilarFacts finds the landmark's facts most similar to the given
// vector. Same landmark-scoped contract as FindSimilarQA.
func (r *FactRepository) FindSimilarFacts(ctx context.Context, landmarkID core.ID, vector []float32, minSimilarity float32, limit int) ([]*core.FactMatch, error) {
	var results []*core.FactMatch

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makePartialFactKey(landmarkID)

		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if contextDone(ctx) {
				return ctx.Err()
			}

			var fact *core.Fact
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				fact, err = storage.UnmarshalFact(val)
				return err
			}); err != nil {
				return err
			}
			if fact == nil || len(fact.Vector) == 0 {
				continue
			}

			similarity := dotProduct(vector, fact.Vector)
			if similarity >= minSimilarity {
				results = append(results, &core.FactMatch{
					Fact:  fact,
					Score: similarity,
				})
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b *core.FactMatch) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return b.Fact.InsertedAt.Compare(a.Fact.InsertedAt)
	})

	if len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}
