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


package core

import "errors"

// Domain errors
var (
	// ErrLandmarkNotFound indicates the question referenced an unknown landmark.
	ErrLandmarkNotFound = errors.New("landmark not found")

	// ErrNoMatchExtracted indicates no landmark reference could be found or inferred.
	ErrNoMatchExtracted = errors.New("no landmark reference extracted")

	// ErrGenerationFailed indicates the external answer backend failed.
	ErrGenerationFailed = errors.New("answer generation failed")

	// ErrInvalidLandmark indicates a Landmark failed validation.
	ErrInvalidLandmark = errors.New("invalid landmark")

	// ErrInvalidQAPair indicates a QAPair failed validation.
	ErrInvalidQAPair = errors.New("invalid qa pair")

	// ErrInvalidFact indicates a Fact failed validation.
	ErrInvalidFact = errors.New("invalid fact")

	// ErrInvalidCoordinate indicates a coordinate outside valid ranges.
	ErrInvalidCoordinate = errors.New("coordinate out of range")

	// ErrInvalidSemanticKey indicates a key without the category.subcategory shape.
	ErrInvalidSemanticKey = errors.New("invalid semantic key")

	// ErrEmptyName indicates the landmark Name field is empty.
	ErrEmptyName = errors.New("landmark name cannot be empty")

	// ErrEmptyQuestion indicates the Question field is empty.
	ErrEmptyQuestion = errors.New("question cannot be empty")

	// ErrEmptyAnswer indicates the Answer field is empty.
	ErrEmptyAnswer = errors.New("answer cannot be empty")

	// ErrEmptyFactKey indicates the FactKey field is empty.
	ErrEmptyFactKey = errors.New("fact key cannot be empty")

	// ErrEmptyFactText indicates the fact Text field is empty.
	ErrEmptyFactText = errors.New("fact text cannot be empty")
)
