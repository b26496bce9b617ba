package mock

import (
	"context"
	"fmt"

	"github.com/roamly/waypoint/ai"
)

// MockGenerator is a test double for ai.AnswerGenerator.
// It allows custom behavior injection via function fields.
type MockGenerator struct {
	// GenerateAnswerFunc is called by GenerateAnswer if set.
	// If nil, uses default canned behavior.
	GenerateAnswerFunc func(ctx context.Context, request ai.GenerationRequest) (string, error)

	callCount int
}

// NewMockGenerator creates a mock generator with default canned behavior.
// Note: Returns concrete type to allow test assertions via GetMockGenerator().
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// GenerateAnswer produces a canned answer that echoes the request.
// Default behavior: a deterministic sentence naming the landmark and question.
func (m *MockGenerator) GenerateAnswer(ctx context.Context, request ai.GenerationRequest) (string, error) {
	m.callCount++

	if m.GenerateAnswerFunc != nil {
		return m.GenerateAnswerFunc(ctx, request)
	}

	if request.GuidanceTopic != "" {
		return fmt.Sprintf("About the %s of %s: %s",
			request.GuidanceTopic, request.LandmarkName, request.Question), nil
	}
	return fmt.Sprintf("About %s: %s", request.LandmarkName, request.Question), nil
}

// CallCount returns the number of times GenerateAnswer was called.
func (m *MockGenerator) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockGenerator) Reset() {
	m.callCount = 0
	m.GenerateAnswerFunc = nil
}
