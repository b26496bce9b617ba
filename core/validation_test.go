package core

import (
	"errors"
	"testing"
)

func TestValidateLandmark(t *testing.T) {
	tests := []struct {
		name     string
		landmark *Landmark
		wantErr  error
	}{
		{
			name: "valid landmark",
			landmark: &Landmark{
				Name:       "Hollywood Sign",
				Coordinate: Coordinate{Latitude: 34.1341, Longitude: -118.3215},
				City:       "Los Angeles",
				Country:    "United States",
				Responses: map[SemanticKey]TieredResponse{
					"height.general": {Small: "45 feet tall"},
				},
			},
			wantErr: nil,
		},
		{
			name: "valid landmark without responses",
			landmark: &Landmark{
				Name:       "Eiffel Tower",
				Coordinate: Coordinate{Latitude: 48.8584, Longitude: 2.2945},
			},
			wantErr: nil,
		},
		{
			name:     "nil landmark",
			landmark: nil,
			wantErr:  ErrInvalidLandmark,
		},
		{
			name: "empty name",
			landmark: &Landmark{
				Coordinate: Coordinate{Latitude: 1, Longitude: 1},
			},
			wantErr: ErrEmptyName,
		},
		{
			name: "latitude out of range",
			landmark: &Landmark{
				Name:       "Nowhere",
				Coordinate: Coordinate{Latitude: 91, Longitude: 0},
			},
			wantErr: ErrInvalidCoordinate,
		},
		{
			name: "longitude out of range",
			landmark: &Landmark{
				Name:       "Nowhere",
				Coordinate: Coordinate{Latitude: 0, Longitude: -181},
			},
			wantErr: ErrInvalidCoordinate,
		},
		{
			name: "malformed response key",
			landmark: &Landmark{
				Name:       "Hollywood Sign",
				Coordinate: Coordinate{Latitude: 34.1341, Longitude: -118.3215},
				Responses: map[SemanticKey]TieredResponse{
					"height": {Small: "45 feet tall"},
				},
			},
			wantErr: ErrInvalidSemanticKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLandmark(tt.landmark)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateLandmark() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateLandmark() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateQAPair(t *testing.T) {
	tests := []struct {
		name    string
		pair    *QAPair
		wantErr error
	}{
		{
			name: "valid pair",
			pair: &QAPair{
				LandmarkId: 1,
				Question:   "how tall is it?",
				Answer:     "It stands at 45 feet tall.",
				Key:        "height.general",
			},
			wantErr: nil,
		},
		{
			name: "valid pair without key",
			pair: &QAPair{
				LandmarkId: 1,
				Question:   "how tall is it?",
				Answer:     "45 feet.",
			},
			wantErr: nil,
		},
		{
			name: "valid pair with empty vector",
			pair: &QAPair{
				LandmarkId: 1,
				Question:   "when was it built?",
				Answer:     "1923.",
				Vector:     nil,
			},
			wantErr: nil,
		},
		{
			name:    "nil pair",
			pair:    nil,
			wantErr: ErrInvalidQAPair,
		},
		{
			name: "missing landmark id",
			pair: &QAPair{
				Question: "how tall is it?",
				Answer:   "45 feet.",
			},
			wantErr: ErrInvalidQAPair,
		},
		{
			name: "empty question",
			pair: &QAPair{
				LandmarkId: 1,
				Answer:     "45 feet.",
			},
			wantErr: ErrEmptyQuestion,
		},
		{
			name: "empty answer",
			pair: &QAPair{
				LandmarkId: 1,
				Question:   "how tall is it?",
			},
			wantErr: ErrEmptyAnswer,
		},
		{
			name: "malformed key",
			pair: &QAPair{
				LandmarkId: 1,
				Question:   "how tall is it?",
				Answer:     "45 feet.",
				Key:        "height",
			},
			wantErr: ErrInvalidSemanticKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQAPair(tt.pair)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateQAPair() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateQAPair() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateFact(t *testing.T) {
	tests := []struct {
		name    string
		fact    *Fact
		wantErr error
	}{
		{
			name: "valid fact",
			fact: &Fact{
				LandmarkId: 1,
				FactKey:    "completion_year",
				Text:       "1923",
			},
			wantErr: nil,
		},
		{
			name:    "nil fact",
			fact:    nil,
			wantErr: ErrInvalidFact,
		},
		{
			name: "missing landmark id",
			fact: &Fact{
				FactKey: "completion_year",
				Text:    "1923",
			},
			wantErr: ErrInvalidFact,
		},
		{
			name: "empty fact key",
			fact: &Fact{
				LandmarkId: 1,
				Text:       "1923",
			},
			wantErr: ErrEmptyFactKey,
		},
		{
			name: "empty text",
			fact: &Fact{
				LandmarkId: 1,
				FactKey:    "completion_year",
			},
			wantErr: ErrEmptyFactText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFact(tt.fact)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateFact() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateFact() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
