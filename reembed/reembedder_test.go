package reembed

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamly/waypoint/ai/mock"
	"github.com/roamly/waypoint/core"
	"github.com/roamly/waypoint/storage"
	"github.com/roamly/waypoint/storage/badger"
)

func setupTestRepositories(t *testing.T) (storage.LandmarkRepository, storage.QARepository, storage.FactRepository) {
	t.Helper()

	landmarkRepo, qaRepo, factRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)

	t.Cleanup(func() {
		factRepo.Close()
		qaRepo.Close()
		landmarkRepo.Close()
		backend.Close()
	})

	return landmarkRepo, qaRepo, factRepo
}

func seedLandmark(t *testing.T, repo storage.LandmarkRepository) *core.Landmark {
	t.Helper()

	added, err := repo.AddLandmarks(context.Background(), &core.Landmark{
		Name:       "Hollywood Sign",
		Coordinate: core.Coordinate{Latitude: 34.1341, Longitude: -118.3215},
		Geohash:    "9q5f5t",
	})
	require.NoError(t, err)
	require.Len(t, added, 1)
	return added[0]
}

// replacingEmbedder returns the same fixed vector for every text.
func replacingEmbedder(vector []float32) *mock.MockEmbedder {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i := range texts {
			out[i] = vector
		}
		return out, nil
	}
	return embedder
}

func testConfig() *Config {
	return &Config{
		BatchSize:      2,
		ReportInterval: 1,
		MaxRetries:     2,
		RetryDelay:     time.Millisecond,
	}
}

func TestNewQAReembedderValidation(t *testing.T) {
	landmarkRepo, qaRepo, _ := setupTestRepositories(t)
	embedder := mock.NewMockEmbedder()

	_, err := NewQAReembedder(nil, qaRepo, embedder, nil, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrLandmarkRepositoryRequired)

	_, err = NewQAReembedder(landmarkRepo, nil, embedder, nil, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrQARepositoryRequired)

	_, err = NewQAReembedder(landmarkRepo, qaRepo, nil, nil, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrEmbedderRequired)

	// nil config falls back to defaults
	reembedder, err := NewQAReembedder(landmarkRepo, qaRepo, embedder, nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().BatchSize, reembedder.config.BatchSize)
}

func TestNewFactReembedderValidation(t *testing.T) {
	landmarkRepo, _, factRepo := setupTestRepositories(t)
	embedder := mock.NewMockEmbedder()

	_, err := NewFactReembedder(nil, factRepo, embedder, nil, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrLandmarkRepositoryRequired)

	_, err = NewFactReembedder(landmarkRepo, nil, embedder, nil, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrFactRepositoryRequired)

	_, err = NewFactReembedder(landmarkRepo, factRepo, nil, nil, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrEmbedderRequired)
}

func TestQAReembedderRun(t *testing.T) {
	ctx := context.Background()
	landmarkRepo, qaRepo, _ := setupTestRepositories(t)
	landmark := seedLandmark(t, landmarkRepo)

	stored, err := qaRepo.AddQAPairs(ctx,
		&core.QAPair{LandmarkId: landmark.Id, Question: "When was it built?", Answer: "1923.", Key: core.SemanticKey("origin.general"), Vector: []float32{1, 0, 0}},
		&core.QAPair{LandmarkId: landmark.Id, Question: "How tall is it?", Answer: "45 feet.", Key: core.SemanticKey("height.general"), Vector: []float32{1, 0, 0}},
		&core.QAPair{LandmarkId: landmark.Id, Question: "Who paid for it?", Answer: "A real estate syndicate.", Key: core.KeyUnclassified, Vector: []float32{1, 0, 0}},
	)
	require.NoError(t, err)
	require.Len(t, stored, 3)

	var buf bytes.Buffer
	reembedder, err := NewQAReembedder(landmarkRepo, qaRepo, replacingEmbedder([]float32{0, 2, 0}), testConfig(), &buf)
	require.NoError(t, err)

	require.NoError(t, reembedder.Run(ctx))

	updated, err := qaRepo.GetQAPairsByLandmark(ctx, landmark.Id)
	require.NoError(t, err)
	require.Len(t, updated, 3)
	for _, pair := range updated {
		// New vectors are normalized before storage.
		assert.Equal(t, []float32{0, 1, 0}, pair.Vector)
	}

	output := buf.String()
	assert.Contains(t, output, "Starting reembedding of 3 qa pairs")
	assert.Contains(t, output, "Reembedding complete. Processed 3 qa pairs")
}

func TestFactReembedderRun(t *testing.T) {
	ctx := context.Background()
	landmarkRepo, _, factRepo := setupTestRepositories(t)
	landmark := seedLandmark(t, landmarkRepo)

	stored, err := factRepo.AddFacts(ctx,
		&core.Fact{LandmarkId: landmark.Id, FactKey: "origin.general", Text: "Built in 1923 as an advertisement.", Vector: []float32{1, 0, 0}},
		&core.Fact{LandmarkId: landmark.Id, FactKey: "height.general", Text: "The letters stand 45 feet tall.", Vector: []float32{1, 0, 0}},
	)
	require.NoError(t, err)
	require.Len(t, stored, 2)

	var buf bytes.Buffer
	reembedder, err := NewFactReembedder(landmarkRepo, factRepo, replacingEmbedder([]float32{0, 0, 3}), testConfig(), &buf)
	require.NoError(t, err)

	require.NoError(t, reembedder.Run(ctx))

	updated, err := factRepo.GetFactsByLandmark(ctx, landmark.Id)
	require.NoError(t, err)
	require.Len(t, updated, 2)
	for _, fact := range updated {
		assert.Equal(t, []float32{0, 0, 1}, fact.Vector)
	}

	output := buf.String()
	assert.Contains(t, output, "Processed 2 facts")
}

func TestQAReembedderRunEmpty(t *testing.T) {
	landmarkRepo, qaRepo, _ := setupTestRepositories(t)
	seedLandmark(t, landmarkRepo)

	var buf bytes.Buffer
	reembedder, err := NewQAReembedder(landmarkRepo, qaRepo, mock.NewMockEmbedder(), testConfig(), &buf)
	require.NoError(t, err)

	require.NoError(t, reembedder.Run(context.Background()))
	assert.Contains(t, buf.String(), "No qa pairs found")
}

func TestQAReembedderRunEmbedderFailure(t *testing.T) {
	ctx := context.Background()
	landmarkRepo, qaRepo, _ := setupTestRepositories(t)
	landmark := seedLandmark(t, landmarkRepo)

	_, err := qaRepo.AddQAPairs(ctx, &core.QAPair{
		LandmarkId: landmark.Id,
		Question:   "When was it built?",
		Answer:     "1923.",
		Key:        core.KeyUnclassified,
		Vector:     []float32{1, 0, 0},
	})
	require.NoError(t, err)

	boom := errors.New("embedding service unavailable")
	calls := 0
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		calls++
		return nil, boom
	}

	var buf bytes.Buffer
	reembedder, err := NewQAReembedder(landmarkRepo, qaRepo, embedder, testConfig(), &buf)
	require.NoError(t, err)

	err = reembedder.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls, "should retry up to MaxRetries")

	// Stored vector is untouched on failure.
	pairs, err := qaRepo.GetQAPairsByLandmark(ctx, landmark.Id)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, []float32{1, 0, 0}, pairs[0].Vector)
}
