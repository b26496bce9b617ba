package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// AnswerGenerator produces a natural-language answer about a landmark.
// Implementations must be thread-safe for concurrent use.
type AnswerGenerator interface {
	// GenerateAnswer produces a spoken-style answer for the request's
	// question. The landmark fields give the generator its grounding
	// context; the visitor fields steer tone and emphasis.
	// Returns an error if generation fails.
	GenerateAnswer(ctx context.Context, request GenerationRequest) (string, error)
}

// GenerationRequest carries everything an AnswerGenerator needs to
// produce one answer.
type GenerationRequest struct {
	// Question is the visitor's question, verbatim.
	Question string

	// LandmarkName is the display name of the landmark being asked about.
	LandmarkName string

	// City and Country locate the landmark. Either may be empty.
	City    string
	Country string

	// GuidanceTopic, when non-empty, names the topic the answer should
	// emphasize (e.g. "architecture.style"). Empty means no steering.
	GuidanceTopic string

	// Interest is the visitor's stated interest (see Interests).
	// Empty means unknown.
	Interest string

	// VisitorCountry is where the visitor is from. Empty means unknown.
	VisitorCountry string

	// AgeGroup is the visitor's age bucket label ("young", "middleage",
	// "old"). Empty means unknown.
	AgeGroup string
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and AnswerGenerator instances,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// AnswerGenerator returns the answer generation service.
	// The returned AnswerGenerator is safe for concurrent use.
	AnswerGenerator() AnswerGenerator

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
