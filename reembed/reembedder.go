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


package reembed

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/roamly/waypoint/ai"
	"github.com/roamly/waypoint/core"
	"github.com/roamly/waypoint/semantic"
	"github.com/roamly/waypoint/storage"
)

// Config holds configuration for a reembedding run.
type Config struct {
	// BatchSize is the number of items to embed in each request
	BatchSize int

	// ReportInterval is how often to report progress (number of items)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed operations
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// QAReembedder rewrites the vectors of every stored QA pair.
type QAReembedder struct {
	landmarks storage.LandmarkRepository
	pairs     storage.QARepository
	embedder  ai.Embedder
	config    *Config
	progress  io.Writer
}

// NewQAReembedder creates a QA pair reembedder.
// progress: where to write progress output (typically os.Stderr)
func NewQAReembedder(landmarks storage.LandmarkRepository, pairs storage.QARepository, embedder ai.Embedder, config *Config, progress io.Writer) (*QAReembedder, error) {
	if landmarks == nil {
		return nil, ErrLandmarkRepositoryRequired
	}
	if pairs == nil {
		return nil, ErrQARepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if config == nil {
		config = DefaultConfig()
	}

	return &QAReembedder{
		landmarks: landmarks,
		pairs:     pairs,
		embedder:  embedder,
		config:    config,
		progress:  progress,
	}, nil
}

// Run reembeds every QA pair of every landmark, updating records in
// place. Progress is reported to the configured writer.
func (r *QAReembedder) Run(ctx context.Context) error {
	landmarks, err := r.landmarks.ScanLandmarks(ctx)
	if err != nil {
		return fmt.Errorf("failed to scan landmarks: %w", err)
	}

	byLandmark := make(map[core.ID][]*core.QAPair, len(landmarks))
	total := 0
	for _, landmark := range landmarks {
		pairs, err := r.pairs.GetQAPairsByLandmark(ctx, landmark.Id)
		if err != nil {
			return fmt.Errorf("failed to load qa pairs for %q: %w", landmark.Name, err)
		}
		byLandmark[landmark.Id] = pairs
		total += len(pairs)
	}

	if total == 0 {
		fmt.Fprintf(r.progress, "No qa pairs found in database (0 items)\n")
		return nil
	}

	fmt.Fprintf(r.progress, "Starting reembedding of %d qa pairs (batch size: %d)\n",
		total, r.config.BatchSize)

	tracker := NewProgressTracker(r.progress, total, r.config.ReportInterval)
	tracker.Start()

	for _, pairs := range byLandmark {
		for batch := range slices.Chunk(pairs, r.config.BatchSize) {
			if err := r.processBatch(ctx, batch); err != nil {
				return err
			}
			tracker.Increment(len(batch))
		}
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reembedding complete. Processed %d qa pairs in %v (%.1f items/sec)\n",
		total, elapsed.Round(time.Second), float64(total)/elapsed.Seconds())

	return nil
}

// processBatch embeds one batch of questions and updates the pairs.
func (r *QAReembedder) processBatch(ctx context.Context, batch []*core.QAPair) error {
	texts := make([]string, len(batch))
	for i, pair := range batch {
		texts[i] = pair.Question
	}

	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = r.embedder.EmbedTexts(ctx, texts)
		return err
	}, r.config.MaxRetries, r.config.RetryDelay)
	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", r.config.MaxRetries, err)
	}

	if len(embeddings) != len(batch) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(batch), len(embeddings))
	}

	for i := range batch {
		batch[i].Vector = semantic.NormalizeVector(embeddings[i])
	}

	if _, err := r.pairs.UpdateQAPairs(ctx, batch...); err != nil {
		return fmt.Errorf("failed to update qa pairs: %w", err)
	}

	return nil
}
