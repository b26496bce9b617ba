package semantic

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/roamly/waypoint/ai"
	"github.com/roamly/waypoint/core"
)

// DefaultFloor is the minimum similarity a key's best example must
// reach for classification to commit to that key.
const DefaultFloor float32 = 0.4

// Classifier assigns a semantic key to a question by embedding the
// question and comparing it against pre-embedded example phrasings.
type Classifier struct {
	embedder ai.Embedder
	floor    float32
	examples map[core.SemanticKey][]string
	logger   *slog.Logger

	mu    sync.Mutex
	cache map[core.SemanticKey][][]float32
}

// Option configures a Classifier.
type Option func(*Classifier) error

// WithFloor sets the confidence floor below which a question stays
// unclassified. Default is DefaultFloor.
func WithFloor(floor float32) Option {
	return func(c *Classifier) error {
		if floor < 0 || floor > 1 {
			return ErrInvalidFloor
		}
		c.floor = floor
		return nil
	}
}

// WithExamples replaces the example phrasings used for classification.
// Default is DefaultExamples.
func WithExamples(examples map[core.SemanticKey][]string) Option {
	return func(c *Classifier) error {
		if examples != nil {
			c.examples = examples
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewClassifier creates a semantic key classifier backed by the embedder.
func NewClassifier(embedder ai.Embedder, opts ...Option) (*Classifier, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	c := &Classifier{
		embedder: embedder,
		floor:    DefaultFloor,
		examples: DefaultExamples,
		logger:   slog.Default(),
		cache:    make(map[core.SemanticKey][][]float32),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Floor returns the classifier's confidence floor.
func (c *Classifier) Floor() float32 {
	return c.floor
}

// Classify returns the best semantic key for the question among
// availableKeys, with its confidence. Empty availableKeys, or a best
// score below the floor, yields core.KeyUnclassified with zero
// confidence and no error. A key with no example set is skipped.
func (c *Classifier) Classify(ctx context.Context, question string, availableKeys []core.SemanticKey) (core.SemanticKey, float32, error) {
	if len(availableKeys) == 0 {
		return core.KeyUnclassified, 0, nil
	}

	question = strings.ToLower(strings.TrimSpace(question))
	if question == "" {
		return core.KeyUnclassified, 0, nil
	}

	queryVector, err := c.embedder.EmbedText(ctx, question)
	if err != nil {
		c.logger.Error("error embedding question for classification", "err", err)
		return core.KeyUnclassified, 0, err
	}
	queryVector = NormalizeVector(queryVector)

	best := core.KeyUnclassified
	var bestScore float32

	for _, key := range availableKeys {
		vectors, err := c.exampleVectors(ctx, key)
		if err != nil {
			return core.KeyUnclassified, 0, err
		}

		for _, vector := range vectors {
			score := CosineSimilarity(queryVector, vector)
			if score > bestScore {
				bestScore = score
				best = key
			}
		}
	}

	if best == core.KeyUnclassified || bestScore < c.floor {
		c.logger.Debug("question below classification floor",
			"bestKey", best,
			"bestScore", bestScore,
			"floor", c.floor)
		return core.KeyUnclassified, 0, nil
	}

	c.logger.Debug("classified question", "key", best, "score", bestScore)
	return best, bestScore, nil
}

// exampleVectors returns the cached embeddings for a key's examples,
// embedding and caching them on first use. Keys without examples yield
// an empty slice.
func (c *Classifier) exampleVectors(ctx context.Context, key core.SemanticKey) ([][]float32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if vectors, ok := c.cache[key]; ok {
		return vectors, nil
	}

	phrases, ok := c.examples[key]
	if !ok || len(phrases) == 0 {
		c.cache[key] = nil
		return nil, nil
	}

	embedded, err := c.embedder.EmbedTexts(ctx, phrases)
	if err != nil {
		c.logger.Error("error embedding example phrases", "key", key, "err", err)
		return nil, err
	}

	vectors := make([][]float32, len(embedded))
	for i, v := range embedded {
		vectors[i] = NormalizeVector(v)
	}
	c.cache[key] = vectors

	return vectors, nil
}
