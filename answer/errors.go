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


package answer

import "errors"

var (
	// ErrLandmarkRepositoryRequired is returned when a landmark repository is not provided.
	ErrLandmarkRepositoryRequired = errors.New("landmark repository required")

	// ErrQARepositoryRequired is returned when a QA repository is not provided.
	ErrQARepositoryRequired = errors.New("QA repository required")

	// ErrFactRepositoryRequired is returned when a fact repository is not provided.
	ErrFactRepositoryRequired = errors.New("fact repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrInvalidThreshold is returned when a confidence threshold is out of range.
	ErrInvalidThreshold = errors.New("threshold must be between 0 and 1")

	// ErrInvalidLimit is returned when a match limit is not positive.
	ErrInvalidLimit = errors.New("match limit must be positive")
)
