// Copyright 2025 Roamly Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


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

// qaSeeder embeds seed questions and stores the resulting QA pairs.
type qaSeeder struct {
	pairs    storage.QARepository
	embedder ai.Embedder
	logger   *slog.Logger
}

func newQASeeder(pairs storage.QARepository, embedder ai.Embedder, logger *slog.Logger) (*qaSeeder, error) {
	if pairs == nil {
		return nil, ErrQARepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &qaSeeder{
		pairs:    pairs,
		embedder: embedder,
		logger:   logger.With("seeder", "qa"),
	}, nil
}

// seed embeds one batch of QA seeds and stores them for the landmark.
// Returns the number of pairs stored.
func (qs *qaSeeder) seed(ctx context.Context, landmarkID core.ID, seeds []QASeed) (int, error) {
	if len(seeds) == 0 {
		return 0, nil
	}

	qs.logger.Debug("embedding qa batch", "landmarkID", landmarkID, "pairs", len(seeds))

	texts := make([]string, len(seeds))
	for i, seed := range seeds {
		texts[i] = seed.Question
	}

	embeddings, err := qs.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return 0, err
	}
	if len(embeddings) != len(seeds) {
		return 0, fmt.Errorf("embedding result mismatch. expected %d, received %d",
			len(seeds), len(embeddings))
	}

	pairs := make([]*core.QAPair, len(seeds))
	for i, seed := range seeds {
		pairs[i] = &core.QAPair{
			LandmarkId: landmarkID,
			Question:   seed.Question,
			Answer:     seed.Answer,
			Key:        core.SemanticKey(seed.Key),
			Vector:     semantic.NormalizeVector(embeddings[i]),
		}
	}

	added, err := qs.pairs.AddQAPairs(ctx, pairs...)
	if err != nil {
		return 0, err
	}

	return len(added), nil
}
