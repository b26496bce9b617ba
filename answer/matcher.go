package answer

import (
	"context"
	"log/slog"

	"github.com/roamly/waypoint/ai"
	"github.com/roamly/waypoint/core"
	"github.com/roamly/waypoint/semantic"
	"github.com/roamly/waypoint/storage"
)

// DefaultMatchLimit is the number of candidates a matcher returns when
// the caller passes k <= 0.
const DefaultMatchLimit = 3

// QAMatcher ranks a landmark's cached question/answer pairs against a
// query by embedding similarity.
type QAMatcher struct {
	pairs    storage.QARepository
	embedder ai.Embedder
	logger   *slog.Logger
}

// NewQAMatcher creates a matcher over the given QA repository.
func NewQAMatcher(pairs storage.QARepository, embedder ai.Embedder) (*QAMatcher, error) {
	if pairs == nil {
		return nil, ErrQARepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	return &QAMatcher{
		pairs:    pairs,
		embedder: embedder,
		logger:   slog.Default().With("component", "qa-matcher"),
	}, nil
}

// Search returns at most k pairs of the landmark ranked by similarity
// to the query, best first. Empty results are valid: they mean no
// cached content yet.
func (m *QAMatcher) Search(ctx context.Context, query string, landmarkID core.ID, k int) ([]*core.QAMatch, error) {
	if k <= 0 {
		k = DefaultMatchLimit
	}

	vector, err := m.embedder.EmbedText(ctx, query)
	if err != nil {
		m.logger.Error("error embedding query", "err", err)
		return nil, err
	}
	vector = semantic.NormalizeVector(vector)

	matches, err := m.pairs.FindSimilarQA(ctx, landmarkID, vector, 0, k)
	if err != nil {
		m.logger.Error("error searching QA pairs", "landmarkID", landmarkID, "err", err)
		return nil, err
	}

	m.logger.Debug("qa search", "landmarkID", landmarkID, "hits", len(matches))
	return matches, nil
}

// FactMatcher ranks a landmark's cached facts against a query by
// embedding similarity.
type FactMatcher struct {
	facts    storage.FactRepository
	embedder ai.Embedder
	logger   *slog.Logger
}

// NewFactMatcher creates a matcher over the given fact repository.
func NewFactMatcher(facts storage.FactRepository, embedder ai.Embedder) (*FactMatcher, error) {
	if facts == nil {
		return nil, ErrFactRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	return &FactMatcher{
		facts:    facts,
		embedder: embedder,
		logger:   slog.Default().With("component", "fact-matcher"),
	}, nil
}

// Search returns at most k facts of the landmark ranked by similarity
// to the query, best first.
func (m *FactMatcher) Search(ctx context.Context, query string, landmarkID core.ID, k int) ([]*core.FactMatch, error) {
	if k <= 0 {
		k = DefaultMatchLimit
	}

	vector, err := m.embedder.EmbedText(ctx, query)
	if err != nil {
		m.logger.Error("error embedding query", "err", err)
		return nil, err
	}
	vector = semantic.NormalizeVector(vector)

	matches, err := m.facts.FindSimilarFacts(ctx, landmarkID, vector, 0, k)
	if err != nil {
		m.logger.Error("error searching facts", "landmarkID", landmarkID, "err", err)
		return nil, err
	}

	m.logger.Debug("fact search", "landmarkID", landmarkID, "hits", len(matches))
	return matches, nil
}
