package answer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamly/waypoint/core"
	"github.com/roamly/waypoint/geo"
	badgerstore "github.com/roamly/waypoint/storage/badger"
)

func TestInterpretPatterns(t *testing.T) {
	interpreter := NewInterpreter(nil)
	ctx := context.Background()

	tests := []struct {
		text      string
		reference string
	}{
		{"Tell me about the Eiffel Tower", "Eiffel Tower"},
		{"tell me about hollywood sign", "hollywood sign"},
		{"What is the Statue of Liberty?", "Statue of Liberty"},
		{"what's the Hollywood Sign", "Hollywood Sign"},
		{"about the Eiffel Tower please", "Eiffel Tower please"},
	}

	for _, tt := range tests {
		result, err := interpreter.Interpret(ctx, tt.text, nil)
		require.NoError(t, err, tt.text)
		assert.Equal(t, InterpretationGeneral, result.Type, tt.text)
		assert.Equal(t, tt.reference, result.LandmarkName, tt.text)
	}
}

func TestInterpretFirstPatternWins(t *testing.T) {
	interpreter := NewInterpreter(nil)

	// "tell me about" must win over the bare "about" pattern.
	result, err := interpreter.Interpret(context.Background(), "tell me about the Eiffel Tower", nil)
	require.NoError(t, err)
	assert.Equal(t, "Eiffel Tower", result.LandmarkName)
}

func TestInterpretNoMatchWithoutCoordinate(t *testing.T) {
	interpreter := NewInterpreter(nil)

	result, err := interpreter.Interpret(context.Background(), "how do I get home", nil)
	require.NoError(t, err)
	assert.Equal(t, InterpretationNoMatch, result.Type)
	assert.Contains(t, result.Prompt, "Tell me about")
}

func TestInterpretProximitySuggestion(t *testing.T) {
	landmarkRepo, qaRepo, factRepo, backend, err := badgerstore.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { factRepo.Close(); qaRepo.Close(); landmarkRepo.Close(); backend.Close() }()

	ctx := context.Background()

	_, err = landmarkRepo.AddLandmarks(ctx, &core.Landmark{
		Name:       "Hollywood Sign",
		Coordinate: core.Coordinate{Latitude: 34.1341, Longitude: -118.3215},
		Geohash:    geo.Encode(34.1341, -118.3215, geo.DefaultPrecision),
	})
	require.NoError(t, err)

	index, err := geo.NewIndex(landmarkRepo)
	require.NoError(t, err)
	interpreter := NewInterpreter(index)

	coordinate := &core.Coordinate{Latitude: 34.1342, Longitude: -118.3219}
	result, err := interpreter.Interpret(ctx, "hmm what should I see", coordinate)
	require.NoError(t, err)

	assert.Equal(t, InterpretationSuggestion, result.Type)
	assert.Equal(t, "Hollywood Sign", result.LandmarkName)
	require.NotNil(t, result.Landmark)
	assert.Contains(t, result.Prompt, "Hollywood Sign")
}

func TestInterpretEmptyCellFallsToNoMatch(t *testing.T) {
	landmarkRepo, qaRepo, factRepo, backend, err := badgerstore.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { factRepo.Close(); qaRepo.Close(); landmarkRepo.Close(); backend.Close() }()

	index, err := geo.NewIndex(landmarkRepo)
	require.NoError(t, err)
	interpreter := NewInterpreter(index)

	coordinate := &core.Coordinate{Latitude: 0, Longitude: 0}
	result, err := interpreter.Interpret(context.Background(), "anything interesting here", coordinate)
	require.NoError(t, err)
	assert.Equal(t, InterpretationNoMatch, result.Type)
}
