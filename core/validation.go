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

import "fmt"

// ValidateCoordinate validates that a coordinate lies within the valid
// latitude [-90,90] and longitude [-180,180] ranges.
func ValidateCoordinate(c Coordinate) error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v", ErrInvalidCoordinate, c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v", ErrInvalidCoordinate, c.Longitude)
	}
	return nil
}

// ValidateLandmark validates a Landmark according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - Coordinate must be within valid ranges
//   - Every response key must have the category.subcategory shape
//
// NOT validated (populated at write time):
//   - Geohash (set by registration from the coordinate)
//   - ID (derived from the name if zero)
func ValidateLandmark(landmark *Landmark) error {
	if landmark == nil {
		return fmt.Errorf("%w: landmark is nil", ErrInvalidLandmark)
	}

	if landmark.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidLandmark, ErrEmptyName)
	}

	if err := ValidateCoordinate(landmark.Coordinate); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLandmark, err)
	}

	for key := range landmark.Responses {
		if !key.IsValid() {
			return fmt.Errorf("%w: %w: %q", ErrInvalidLandmark, ErrInvalidSemanticKey, key)
		}
	}

	return nil
}

// ValidateQAPair validates a QAPair according to domain rules.
//
// Validation rules:
//   - LandmarkId must be set
//   - Question and Answer must not be empty
//   - Key, when set, must have the category.subcategory shape
//
// NOT validated:
//   - Vector (can be empty until embedded)
//   - ID (0 is valid from database sequences)
func ValidateQAPair(pair *QAPair) error {
	if pair == nil {
		return fmt.Errorf("%w: pair is nil", ErrInvalidQAPair)
	}

	if pair.LandmarkId == 0 {
		return fmt.Errorf("%w: landmark id is required", ErrInvalidQAPair)
	}

	if pair.Question == "" {
		return fmt.Errorf("%w: %w", ErrInvalidQAPair, ErrEmptyQuestion)
	}

	if pair.Answer == "" {
		return fmt.Errorf("%w: %w", ErrInvalidQAPair, ErrEmptyAnswer)
	}

	if pair.Key != KeyUnclassified && !pair.Key.IsValid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidQAPair, ErrInvalidSemanticKey, pair.Key)
	}

	return nil
}

// ValidateFact validates a Fact according to domain rules.
//
// Validation rules:
//   - LandmarkId must be set
//   - FactKey and Text must not be empty
func ValidateFact(fact *Fact) error {
	if fact == nil {
		return fmt.Errorf("%w: fact is nil", ErrInvalidFact)
	}

	if fact.LandmarkId == 0 {
		return fmt.Errorf("%w: landmark id is required", ErrInvalidFact)
	}

	if fact.FactKey == "" {
		return fmt.Errorf("%w: %w", ErrInvalidFact, ErrEmptyFactKey)
	}

	if fact.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidFact, ErrEmptyFactText)
	}

	return nil
}
