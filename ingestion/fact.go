package ingestion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roamly/waypoint/ai"
	"github.com/roamly/waypoint/core"
	"github.com/roamly/waypoint/semantic"
	"github.com/roamly/waypoint/storage"
)

// factSeeder embeds seed fact texts and stores the resulting facts.
type factSeeder struct {
	facts    storage.FactRepository
	embedder ai.Embedder
	logger   *slog.Logger
}

func newFactSeeder(facts storage.FactRepository, embedder ai.Embedder, logger *slog.Logger) (*factSeeder, error) {
	if facts == nil {
		return nil, ErrFactRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &factSeeder{
		facts:    facts,
		embedder: embedder,
		logger:   logger.With("seeder", "facts"),
	}, nil
}

// seed embeds one batch of fact seeds and stores them for the landmark.
// Returns the number of facts stored.
func (fs *factSeeder) seed(ctx context.Context, landmarkID core.ID, seeds []FactSeed) (int, error) {
	if len(seeds) == 0 {
		return 0, nil
	}

	fs.logger.Debug("embedding fact batch", "landmarkID", landmarkID, "facts", len(seeds))

	texts := make([]string, len(seeds))
	for i, seed := range seeds {
		texts[i] = seed.Text
	}

	embeddings, err := fs.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return 0, err
	}
	if len(embeddings) != len(seeds) {
		return 0, fmt.Errorf("embedding result mismatch. expected %d, received %d",
			len(seeds), len(embeddings))
	}

	facts := make([]*core.Fact, len(seeds))
	for i, seed := range seeds {
		facts[i] = &core.Fact{
			LandmarkId: landmarkID,
			FactKey:    seed.FactKey,
			Text:       seed.Text,
			Vector:     semantic.NormalizeVector(embeddings[i]),
		}
	}

	added, err := fs.facts.AddFacts(ctx, facts...)
	if err != nil {
		return 0, err
	}

	return len(added), nil
}
