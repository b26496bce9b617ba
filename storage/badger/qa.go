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

// QARepository implements storage.QARepository for BadgerDB.
type QARepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.QARepository = (*QARepository)(nil)

// NewQARepository creates a new QARepository.
func NewQARepository(backend *Backend) (storage.QARepository, error) {
	idSeq, err := backend.GetSequence(qaPairIDSeq)
	if err != nil {
		return nil, err
	}

	return &QARepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *QARepository) Close() error {
	return r.idSeq.Release()
}

// AddQAPairs adds one or more QA pairs to storage. Duplicate phrasings
// are stored as-is; they are a recall improvement, not a conflict.
func (r *QARepository) AddQAPairs(ctx context.Context, pairs ...*core.QAPair) ([]*core.QAPair, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, pair := range pairs {
			if err := core.ValidateQAPair(pair); err != nil {
				return err
			}

			// Always generate new ID from sequence
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
			pair.Id = core.ID(nextID)
			pair.InsertedAt = time.Now().UTC()

			key := makeQAPairKey(pair.LandmarkId, pair.Id)
			value := storage.MarshalQAPair(pair)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return pairs, err
}

// UpdateQAPairs rewrites existing QA pairs in place, preserving the
// stored InsertedAt timestamp.
func (r *QARepository) UpdateQAPairs(ctx context.Context, pairs ...*core.QAPair) ([]*core.QAPair, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, pair := range pairs {
			if err := core.ValidateQAPair(pair); err != nil {
				return err
			}
			if pair.Id == 0 {
				return storage.ErrNotFound
			}

			key := makeQAPairKey(pair.LandmarkId, pair.Id)
			item, err := tx.Get(key)
			if err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					return storage.ErrNotFound
				}
				return err
			}

			var stored *core.QAPair
			if err := item.Value(func(val []byte) error {
				var err error
				stored, err = storage.UnmarshalQAPair(val)
				return err
			}); err != nil {
				return err
			}
			pair.InsertedAt = stored.InsertedAt

			if err := tx.Set(key, storage.MarshalQAPair(pair)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return pairs, err
}

// GetQAPair retrieves a single QA pair by landmark and pair ID.
func (r *QARepository) GetQAPair(ctx context.Context, landmarkID, id core.ID) (*core.QAPair, error) {
	var pair *core.QAPair
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeQAPairKey(landmarkID, id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			pair, err = storage.UnmarshalQAPair(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// GetQAPairsByLandmark retrieves all QA pairs stored for a landmark.
func (r *QARepository) GetQAPairsByLandmark(ctx context.Context, landmarkID core.ID) ([]*core.QAPair, error) {
	results := []*core.QAPair{}
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makePartialQAPairKey(landmarkID)

		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var pair *core.QAPair
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				pair, err = storage.UnmarshalQAPair(val)
				return err
			}); err != nil {
				return err
			}
			if pair != nil {
				results = append(results, pair)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// FindSimilarQA finds the landmark's QA pairs most similar to the given
// vector. The scan never leaves the landmark's key range, so matching
// cannot cross landmark boundaries.
func (r *QARepository) FindSimilarQA(ctx context.Context, landmarkID core.ID, vector []float32, minSimilarity float32, limit int) ([]*core.QAMatch, error) {
	var results []*core.QAMatch

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makePartialQAPairKey(landmarkID)

		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if contextDone(ctx) {
				return ctx.Err()
			}

			var pair *core.QAPair
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				pair, err = storage.UnmarshalQAPair(val)
				return err
			}); err != nil {
				return err
			}
			if pair == nil || len(pair.Vector) == 0 {
				continue
			}

			// Cosine similarity (dot product for normalized vectors)
			similarity := dotProduct(vector, pair.Vector)
			if similarity >= minSimilarity {
				results = append(results, &core.QAMatch{
					Pair:  pair,
					Score: similarity,
				})
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}

	// Sort by similarity descending, freshest first on ties so newly
	// learned content wins.
	slices.SortFunc(results, func(a, b *core.QAMatch) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return b.Pair.InsertedAt.Compare(a.Pair.InsertedAt)
	})

	if len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}
