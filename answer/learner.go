package answer

import (
	"context"
	"log/slog"

	"github.com/roamly/waypoint/ai"
	"github.com/roamly/waypoint/core"
	"github.com/roamly/waypoint/semantic"
	"github.com/roamly/waypoint/storage"
)

// Learner writes freshly generated answers and facts back to the store
// so future similar questions are served from cache. Writes are
// fire-and-forget: failures are logged at warn and never surfaced to
// the caller, because losing a cache entry must not fail the answer.
type Learner struct {
	pairs    storage.QARepository
	facts    storage.FactRepository
	embedder ai.Embedder
	logger   *slog.Logger
}

// NewLearner creates a write-back learner.
func NewLearner(pairs storage.QARepository, facts storage.FactRepository, embedder ai.Embedder) (*Learner, error) {
	if pairs == nil {
		return nil, ErrQARepositoryRequired
	}
	if facts == nil {
		return nil, ErrFactRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	return &Learner{
		pairs:    pairs,
		facts:    facts,
		embedder: embedder,
		logger:   slog.Default().With("component", "learner"),
	}, nil
}

// Record persists a generated question/answer pair for the landmark.
// Duplicates with different phrasing are expected and improve recall.
func (l *Learner) Record(ctx context.Context, question, answer string, landmarkID core.ID, key core.SemanticKey) {
	vector, err := l.embedder.EmbedText(ctx, question)
	if err != nil {
		l.logger.Warn("write-back skipped, embedding failed",
			"landmarkID", landmarkID, "err", err)
		return
	}

	pair := &core.QAPair{
		LandmarkId: landmarkID,
		Question:   question,
		Answer:     answer,
		Key:        key,
		Vector:     semantic.NormalizeVector(vector),
	}

	if _, err := l.pairs.AddQAPairs(ctx, pair); err != nil {
		l.logger.Warn("write-back failed for QA pair",
			"landmarkID", landmarkID, "err", err)
		return
	}

	l.logger.Debug("learned QA pair", "landmarkID", landmarkID, "key", key)
}

// RecordFact persists an extracted fact for the landmark.
func (l *Learner) RecordFact(ctx context.Context, text, factKey string, landmarkID core.ID) {
	vector, err := l.embedder.EmbedText(ctx, text)
	if err != nil {
		l.logger.Warn("write-back skipped, embedding failed",
			"landmarkID", landmarkID, "err", err)
		return
	}

	fact := &core.Fact{
		LandmarkId: landmarkID,
		FactKey:    factKey,
		Text:       text,
		Vector:     semantic.NormalizeVector(vector),
	}

	if _, err := l.facts.AddFacts(ctx, fact); err != nil {
		l.logger.Warn("write-back failed for fact",
			"landmarkID", landmarkID, "factKey", factKey, "err", err)
		return
	}

	l.logger.Debug("learned fact", "landmarkID", landmarkID, "factKey", factKey)
}
