package ingestion

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/roamly/waypoint/core"
)

// QASeed is one curated question/answer pair to embed and store.
type QASeed struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Key      string `json:"key,omitempty"`
}

// FactSeed is one curated fact to embed and store.
type FactSeed struct {
	FactKey string `json:"fact_key"`
	Text    string `json:"text"`
}

// ResponseSeed carries the tiered response texts for one semantic key.
type ResponseSeed struct {
	Small  string `json:"small,omitempty"`
	Middle string `json:"middle,omitempty"`
	Large  string `json:"large,omitempty"`
}

// LandmarkSeed describes one landmark and its curated knowledge.
type LandmarkSeed struct {
	Name      string                  `json:"name"`
	Latitude  float64                 `json:"latitude"`
	Longitude float64                 `json:"longitude"`
	City      string                  `json:"city,omitempty"`
	Country   string                  `json:"country,omitempty"`
	Responses map[string]ResponseSeed `json:"responses,omitempty"`
	QAPairs   []QASeed                `json:"qa_pairs,omitempty"`
	Facts     []FactSeed              `json:"facts,omitempty"`
}

// Landmark converts the seed into a storable landmark. The geohash is
// left empty; registration derives it from the coordinate.
func (s *LandmarkSeed) Landmark() *core.Landmark {
	landmark := &core.Landmark{
		Name: s.Name,
		Coordinate: core.Coordinate{
			Latitude:  s.Latitude,
			Longitude: s.Longitude,
		},
		City:    s.City,
		Country: s.Country,
	}

	if len(s.Responses) > 0 {
		landmark.Responses = make(map[core.SemanticKey]core.TieredResponse, len(s.Responses))
		for key, response := range s.Responses {
			landmark.Responses[core.SemanticKey(key)] = core.TieredResponse{
				Small:  response.Small,
				Middle: response.Middle,
				Large:  response.Large,
			}
		}
	}

	return landmark
}

// SeedFile is the on-disk seed format consumed by the seed command.
type SeedFile struct {
	Landmarks []LandmarkSeed `json:"landmarks"`
}

// Validate checks the seed file for structural problems before any
// embedding work starts.
func (f *SeedFile) Validate() error {
	if len(f.Landmarks) == 0 {
		return fmt.Errorf("%w: no landmarks", ErrInvalidSeedFile)
	}

	for i, landmark := range f.Landmarks {
		if landmark.Name == "" {
			return fmt.Errorf("%w: landmark %d has no name", ErrInvalidSeedFile, i)
		}
		coordinate := core.Coordinate{Latitude: landmark.Latitude, Longitude: landmark.Longitude}
		if err := core.ValidateCoordinate(coordinate); err != nil {
			return fmt.Errorf("%w: landmark %q: %w", ErrInvalidSeedFile, landmark.Name, err)
		}
		for j, pair := range landmark.QAPairs {
			if pair.Question == "" || pair.Answer == "" {
				return fmt.Errorf("%w: landmark %q pair %d needs question and answer",
					ErrInvalidSeedFile, landmark.Name, j)
			}
			key := core.SemanticKey(pair.Key)
			if key != core.KeyUnclassified && !key.IsValid() {
				return fmt.Errorf("%w: landmark %q pair %d key %q",
					ErrInvalidSeedFile, landmark.Name, j, pair.Key)
			}
		}
		for j, fact := range landmark.Facts {
			if fact.Text == "" {
				return fmt.Errorf("%w: landmark %q fact %d has no text",
					ErrInvalidSeedFile, landmark.Name, j)
			}
		}
	}

	return nil
}

// LoadSeedFile reads and validates a JSON seed file.
func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file SeedFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeedFile, err)
	}

	if err := file.Validate(); err != nil {
		return nil, err
	}

	return &file, nil
}
