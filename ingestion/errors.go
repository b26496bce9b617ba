package ingestion

import "errors"

var (
	// ErrQARepositoryRequired is returned when a QA repository is not provided.
	ErrQARepositoryRequired = errors.New("qa repository required")

	// ErrFactRepositoryRequired is returned when a fact repository is not provided.
	ErrFactRepositoryRequired = errors.New("fact repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrLandmarkRequired is returned when seeding without a landmark id.
	ErrLandmarkRequired = errors.New("landmark id required")

	// ErrInvalidSeedFile is returned when a seed file fails validation.
	ErrInvalidSeedFile = errors.New("invalid seed file")
)
