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

// FactReembedder rewrites the vectors of every stored fact.
type FactReembedder struct {
	landmarks storage.LandmarkRepository
	facts     storage.FactRepository
	embedder  ai.Embedder
	config    *Config
	progress  io.Writer
}

// NewFactReembedder creates a fact reembedder.
func NewFactReembedder(landmarks storage.LandmarkRepository, facts storage.FactRepository, embedder ai.Embedder, config *Config, progress io.Writer) (*FactReembedder, error) {
	if landmarks == nil {
		return nil, ErrLandmarkRepositoryRequired
	}
	if facts == nil {
		return nil, ErrFactRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if config == nil {
		config = DefaultConfig()
	}

	return &FactReembedder{
		landmarks: landmarks,
		facts:     facts,
		embedder:  embedder,
		config:    config,
		progress:  progress,
	}, nil
}

// Run reembeds every fact of every landmark, updating records in place.
func (r *FactReembedder) Run(ctx context.Context) error {
	landmarks, err := r.landmarks.ScanLandmarks(ctx)
	if err != nil {
		return fmt.Errorf("failed to scan landmarks: %w", err)
	}

	byLandmark := make(map[core.ID][]*core.Fact, len(landmarks))
	total := 0
	for _, landmark := range landmarks {
		facts, err := r.facts.GetFactsByLandmark(ctx, landmark.Id)
		if err != nil {
			return fmt.Errorf("failed to load facts for %q: %w", landmark.Name, err)
		}
		byLandmark[landmark.Id] = facts
		total += len(facts)
	}

	if total == 0 {
		fmt.Fprintf(r.progress, "No facts found in database (0 items)\n")
		return nil
	}

	fmt.Fprintf(r.progress, "Starting reembedding of %d facts (batch size: %d)\n",
		total, r.config.BatchSize)

	tracker := NewProgressTracker(r.progress, total, r.config.ReportInterval)
	tracker.Start()

	for _, facts := range byLandmark {
		for batch := range slices.Chunk(facts, r.config.BatchSize) {
			if err := r.processBatch(ctx, batch); err != nil {
				return err
			}
			tracker.Increment(len(batch))
		}
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reembedding complete. Processed %d facts in %v (%.1f items/sec)\n",
		total, elapsed.Round(time.Second), float64(total)/elapsed.Seconds())

	return nil
}

func (r *FactReembedder) processBatch(ctx context.Context, batch []*core.Fact) error {
	texts := make([]string, len(batch))
	for i, fact := range batch {
		texts[i] = fact.Text
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

	if _, err := r.facts.UpdateFacts(ctx, batch...); err != nil {
		return fmt.Errorf("failed to update facts: %w", err)
	}

	return nil
}
