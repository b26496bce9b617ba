package storage

import (
	"context"

	"github.com/roamly/waypoint/core"
)

// LandmarkRepository provides operations for managing landmark records.
// Implementations must be thread-safe and support concurrent access.
type LandmarkRepository interface {
	// AddLandmarks adds one or more landmarks to storage.
	// For landmarks with ID=0, derives the content-based ID from the name.
	// Sets InsertedAt/UpdatedAt timestamps.
	// Returns the landmarks with IDs and timestamps populated.
	AddLandmarks(ctx context.Context, landmarks ...*core.Landmark) ([]*core.Landmark, error)

	// GetLandmark retrieves a single landmark by ID.
	// Returns ErrNotFound if the landmark doesn't exist.
	GetLandmark(ctx context.Context, id core.ID) (*core.Landmark, error)

	// GetLandmarkByName retrieves a landmark by its display name.
	// Lookup is case-insensitive via the normalized name index.
	// Returns ErrNotFound if no matching landmark exists.
	GetLandmarkByName(ctx context.Context, name string) (*core.Landmark, error)

	// GetLandmarksByGeohash retrieves all landmarks registered in the
	// given geohash cell. Exact cell equality only, no prefix expansion.
	// Returns an empty slice (not an error) when the cell is empty.
	GetLandmarksByGeohash(ctx context.Context, cell string) ([]*core.Landmark, error)

	// ScanLandmarks retrieves all landmarks. No ordering guarantee.
	ScanLandmarks(ctx context.Context) ([]*core.Landmark, error)

	// Close closes the repository and releases resources.
	Close() error
}

// QARepository provides operations for managing cached QA pairs.
// Pairs are scoped to a landmark: similarity search never crosses
// landmark boundaries.
type QARepository interface {
	// AddQAPairs adds one or more QA pairs to storage.
	// Generates sequence IDs for pairs with ID=0 and sets InsertedAt.
	// Duplicate phrasings are allowed; no uniqueness is enforced.
	AddQAPairs(ctx context.Context, pairs ...*core.QAPair) ([]*core.QAPair, error)

	// GetQAPair retrieves a single QA pair by landmark and pair ID.
	// Returns ErrNotFound if the pair doesn't exist.
	GetQAPair(ctx context.Context, landmarkID, id core.ID) (*core.QAPair, error)

	// GetQAPairsByLandmark retrieves all QA pairs stored for a landmark.
	GetQAPairsByLandmark(ctx context.Context, landmarkID core.ID) ([]*core.QAPair, error)

	// UpdateQAPairs rewrites existing QA pairs in place. Every pair must
	// carry the ID and LandmarkId of a stored pair. InsertedAt is
	// preserved from the stored pair. Returns ErrNotFound if any pair
	// does not exist.
	UpdateQAPairs(ctx context.Context, pairs ...*core.QAPair) ([]*core.QAPair, error)

	// FindSimilarQA finds the landmark's QA pairs most similar to the
	// given vector. Returns pairs with similarity >= minSimilarity, up
	// to limit results, ordered by score descending with ties broken by
	// most recent insertion.
	FindSimilarQA(ctx context.Context, landmarkID core.ID, vector []float32, minSimilarity float32, limit int) ([]*core.QAMatch, error)

	// Close closes the repository and releases resources.
	Close() error
}

// FactRepository provides operations for managing landmark facts.
// Same landmark scoping rules as QARepository.
type FactRepository interface {
	// AddFacts adds one or more facts to storage.
	// Generates sequence IDs for facts with ID=0 and sets InsertedAt.
	AddFacts(ctx context.Context, facts ...*core.Fact) ([]*core.Fact, error)

	// GetFact retrieves a single fact by landmark and fact ID.
	// Returns ErrNotFound if the fact doesn't exist.
	GetFact(ctx context.Context, landmarkID, id core.ID) (*core.Fact, error)

	// GetFactsByLandmark retrieves all facts stored for a landmark.
	GetFactsByLandmark(ctx context.Context, landmarkID core.ID) ([]*core.Fact, error)

	// UpdateFacts rewrites existing facts in place. Same contract as
	// QARepository.UpdateQAPairs.
	UpdateFacts(ctx context.Context, facts ...*core.Fact) ([]*core.Fact, error)

	// FindSimilarFacts finds the landmark's facts most similar to the
	// given vector. Same contract as QARepository.FindSimilarQA.
	FindSimilarFacts(ctx context.Context, landmarkID core.ID, vector []float32, minSimilarity float32, limit int) ([]*core.FactMatch, error)

	// Close closes the repository and releases resources.
	Close() error
}
