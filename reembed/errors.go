package reembed

import "errors"

var (
	// ErrInvalidMaxAttempts is returned when maxAttempts is <= 0
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrLandmarkRepositoryRequired is returned when a landmark repository is not provided.
	ErrLandmarkRepositoryRequired = errors.New("landmark repository required")

	// ErrQARepositoryRequired is returned when a QA repository is not provided.
	ErrQARepositoryRequired = errors.New("qa repository required")

	// ErrFactRepositoryRequired is returned when a fact repository is not provided.
	ErrFactRepositoryRequired = errors.New("fact repository required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")
)
