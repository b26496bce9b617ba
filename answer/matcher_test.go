package answer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamly/waypoint/ai/mock"
	"github.com/roamly/waypoint/core"
	badgerstore "github.com/roamly/waypoint/storage/badger"
)

// fixedEmbedder returns vec for every embedding call.
func fixedEmbedder(vec []float32) *mock.MockEmbedder {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return vec, nil
	}
	return embedder
}

func TestQAMatcherSearch(t *testing.T) {
	landmarkRepo, qaRepo, factRepo, backend, err := badgerstore.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { factRepo.Close(); qaRepo.Close(); landmarkRepo.Close(); backend.Close() }()

	ctx := context.Background()
	landmarkID := core.LandmarkIDFromName("Hollywood Sign")

	pairs := []*core.QAPair{
		{LandmarkId: landmarkID, Question: "when was it built", Answer: "1923", Vector: []float32{1, 0, 0}},
		{LandmarkId: landmarkID, Question: "how tall is it", Answer: "45 feet", Vector: []float32{0, 1, 0}},
	}
	_, err = qaRepo.AddQAPairs(ctx, pairs...)
	require.NoError(t, err)

	matcher, err := NewQAMatcher(qaRepo, fixedEmbedder([]float32{1, 0, 0}))
	require.NoError(t, err)

	matches, err := matcher.Search(ctx, "when was the sign built", landmarkID, 3)
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, "1923", matches[0].Pair.Answer)
	assert.InDelta(t, 1.0, matches[0].Score, 1e-5)
}

func TestQAMatcherEmptyStore(t *testing.T) {
	landmarkRepo, qaRepo, factRepo, backend, err := badgerstore.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { factRepo.Close(); qaRepo.Close(); landmarkRepo.Close(); backend.Close() }()

	matcher, err := NewQAMatcher(qaRepo, fixedEmbedder([]float32{1, 0, 0}))
	require.NoError(t, err)

	// Empty is valid: no cached content yet.
	matches, err := matcher.Search(context.Background(), "anything", core.ID(1), 3)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestQAMatcherDefaultLimit(t *testing.T) {
	landmarkRepo, qaRepo, factRepo, backend, err := badgerstore.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { factRepo.Close(); qaRepo.Close(); landmarkRepo.Close(); backend.Close() }()

	ctx := context.Background()
	landmarkID := core.LandmarkIDFromName("Hollywood Sign")

	for range 5 {
		_, err = qaRepo.AddQAPairs(ctx, &core.QAPair{
			LandmarkId: landmarkID,
			Question:   "q",
			Answer:     "a",
			Vector:     []float32{1, 0, 0},
		})
		require.NoError(t, err)
	}

	matcher, err := NewQAMatcher(qaRepo, fixedEmbedder([]float32{1, 0, 0}))
	require.NoError(t, err)

	matches, err := matcher.Search(ctx, "q", landmarkID, 0)
	require.NoError(t, err)
	assert.Len(t, matches, DefaultMatchLimit)
}

func TestQAMatcherEmbedderError(t *testing.T) {
	landmarkRepo, qaRepo, factRepo, backend, err := badgerstore.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { factRepo.Close(); qaRepo.Close(); landmarkRepo.Close(); backend.Close() }()

	boom := errors.New("embedding service down")
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, boom
	}

	matcher, err := NewQAMatcher(qaRepo, embedder)
	require.NoError(t, err)

	_, err = matcher.Search(context.Background(), "q", core.ID(1), 3)
	assert.ErrorIs(t, err, boom)
}

func TestFactMatcherSearch(t *testing.T) {
	landmarkRepo, qaRepo, factRepo, backend, err := badgerstore.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { factRepo.Close(); qaRepo.Close(); landmarkRepo.Close(); backend.Close() }()

	ctx := context.Background()
	landmarkID := core.LandmarkIDFromName("Hollywood Sign")

	facts := []*core.Fact{
		{LandmarkId: landmarkID, FactKey: "height", Text: "45 feet tall", Vector: []float32{1, 0, 0}},
		{LandmarkId: landmarkID, FactKey: "origin", Text: "built in 1923", Vector: []float32{0, 1, 0}},
	}
	_, err = factRepo.AddFacts(ctx, facts...)
	require.NoError(t, err)

	matcher, err := NewFactMatcher(factRepo, fixedEmbedder([]float32{0, 1, 0}))
	require.NoError(t, err)

	matches, err := matcher.Search(ctx, "when did it go up", landmarkID, 3)
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, "built in 1923", matches[0].Fact.Text)
}

func TestMatcherConstructorsValidate(t *testing.T) {
	_, err := NewQAMatcher(nil, mock.NewMockEmbedder())
	assert.ErrorIs(t, err, ErrQARepositoryRequired)

	_, err = NewFactMatcher(nil, mock.NewMockEmbedder())
	assert.ErrorIs(t, err, ErrFactRepositoryRequired)
}
