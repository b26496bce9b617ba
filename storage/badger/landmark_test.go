package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/roamly/waypoint/core"
	"github.com/roamly/waypoint/storage"
)

func TestLandmarkBasics(t *testing.T) {
	landmarkRepo, qaRepo, factRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { factRepo.Close(); qaRepo.Close(); landmarkRepo.Close(); backend.Close() }()

	ctx := context.Background()

	landmark := &core.Landmark{
		Name:       "Hollywood Sign",
		Coordinate: core.Coordinate{Latitude: 34.1341, Longitude: -118.3215},
		City:       "Los Angeles",
		Country:    "USA",
		Geohash:    "9q5f5t",
		Responses: map[core.SemanticKey]core.TieredResponse{
			"origin.general": {Small: "Built in 1923.", Middle: "Built in 1923 as an ad.", Large: "Built in 1923 as a real estate advertisement."},
		},
	}

	added, err := landmarkRepo.AddLandmarks(ctx, landmark)
	if err != nil {
		t.Fatalf("Failed to add landmark: %v", err)
	}

	if len(added) != 1 {
		t.Fatalf("Expected 1 landmark, got %d", len(added))
	}

	if added[0].Id == 0 {
		t.Fatal("Expected non-zero ID")
	}

	if added[0].InsertedAt.IsZero() || added[0].UpdatedAt.IsZero() {
		t.Fatal("Expected timestamps to be set")
	}

	// Retrieve by ID
	retrieved, err := landmarkRepo.GetLandmark(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get landmark: %v", err)
	}

	if retrieved.Name != "Hollywood Sign" {
		t.Fatalf("Expected 'Hollywood Sign', got '%s'", retrieved.Name)
	}

	if retrieved.Responses["origin.general"].Small != "Built in 1923." {
		t.Fatal("Expected tiered responses to round-trip")
	}
}

func TestGetLandmarkByName(t *testing.T) {
	landmarkRepo, qaRepo, factRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { factRepo.Close(); qaRepo.Close(); landmarkRepo.Close(); backend.Close() }()

	ctx := context.Background()

	landmark := &core.Landmark{
		Name:       "Eiffel Tower",
		Coordinate: core.Coordinate{Latitude: 48.858370, Longitude: 2.294481},
		City:       "Paris",
		Country:    "France",
	}
	if _, err := landmarkRepo.AddLandmarks(ctx, landmark); err != nil {
		t.Fatalf("Failed to add landmark: %v", err)
	}

	// Lookup is case and whitespace insensitive
	for _, name := range []string{"Eiffel Tower", "eiffel tower", "EIFFEL   TOWER"} {
		found, err := landmarkRepo.GetLandmarkByName(ctx, name)
		if err != nil {
			t.Fatalf("Failed to find landmark by name %q: %v", name, err)
		}
		if found.Name != "Eiffel Tower" {
			t.Fatalf("Expected 'Eiffel Tower', got '%s'", found.Name)
		}
	}

	_, err = landmarkRepo.GetLandmarkByName(ctx, "Statue of Liberty")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for unknown name, got %v", err)
	}
}

func TestGetLandmarkNotFound(t *testing.T) {
	landmarkRepo, qaRepo, factRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { factRepo.Close(); qaRepo.Close(); landmarkRepo.Close(); backend.Close() }()

	_, err = landmarkRepo.GetLandmark(context.Background(), core.ID(12345))
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestGetLandmarksByGeohash(t *testing.T) {
	landmarkRepo, qaRepo, factRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { factRepo.Close(); qaRepo.Close(); landmarkRepo.Close(); backend.Close() }()

	ctx := context.Background()

	landmarks := []*core.Landmark{
		{
			Name:       "Hollywood Sign",
			Coordinate: core.Coordinate{Latitude: 34.1341, Longitude: -118.3215},
			Geohash:    "9q5f5t",
		},
		{
			Name:       "Griffith Observatory",
			Coordinate: core.Coordinate{Latitude: 34.1184, Longitude: -118.3004},
			Geohash:    "9q5f6m",
		},
		{
			Name:       "Eiffel Tower",
			Coordinate: core.Coordinate{Latitude: 48.858370, Longitude: 2.294481},
			Geohash:    "u09tun",
		},
	}
	if _, err := landmarkRepo.AddLandmarks(ctx, landmarks...); err != nil {
		t.Fatalf("Failed to add landmarks: %v", err)
	}

	// Exact cell
	found, err := landmarkRepo.GetLandmarksByGeohash(ctx, "9q5f5t")
	if err != nil {
		t.Fatalf("Failed to query by geohash: %v", err)
	}
	if len(found) != 1 || found[0].Name != "Hollywood Sign" {
		t.Fatalf("Expected Hollywood Sign only, got %d results", len(found))
	}

	// Shorter prefix matches both Los Angeles landmarks
	found, err = landmarkRepo.GetLandmarksByGeohash(ctx, "9q5f")
	if err != nil {
		t.Fatalf("Failed to query by geohash prefix: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("Expected 2 landmarks under prefix 9q5f, got %d", len(found))
	}

	// Unmatched cell yields an empty slice, not an error
	found, err = landmarkRepo.GetLandmarksByGeohash(ctx, "dr5r7p")
	if err != nil {
		t.Fatalf("Failed to query empty cell: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("Expected no landmarks, got %d", len(found))
	}
}

func TestScanLandmarks(t *testing.T) {
	landmarkRepo, qaRepo, factRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { factRepo.Close(); qaRepo.Close(); landmarkRepo.Close(); backend.Close() }()

	ctx := context.Background()

	landmarks := []*core.Landmark{
		{Name: "Hollywood Sign", Coordinate: core.Coordinate{Latitude: 34.1341, Longitude: -118.3215}},
		{Name: "Eiffel Tower", Coordinate: core.Coordinate{Latitude: 48.858370, Longitude: 2.294481}},
		{Name: "Statue of Liberty", Coordinate: core.Coordinate{Latitude: 40.689247, Longitude: -74.044502}},
	}
	if _, err := landmarkRepo.AddLandmarks(ctx, landmarks...); err != nil {
		t.Fatalf("Failed to add landmarks: %v", err)
	}

	all, err := landmarkRepo.ScanLandmarks(ctx)
	if err != nil {
		t.Fatalf("Failed to scan landmarks: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 landmarks, got %d", len(all))
	}
}

func TestAddLandmarkValidation(t *testing.T) {
	landmarkRepo, qaRepo, factRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { factRepo.Close(); qaRepo.Close(); landmarkRepo.Close(); backend.Close() }()

	ctx := context.Background()

	// Missing name
	_, err = landmarkRepo.AddLandmarks(ctx, &core.Landmark{
		Coordinate: core.Coordinate{Latitude: 34.1341, Longitude: -118.3215},
	})
	if err == nil {
		t.Fatal("Expected error for landmark without a name")
	}

	// Out-of-range coordinate
	_, err = landmarkRepo.AddLandmarks(ctx, &core.Landmark{
		Name:       "Nowhere",
		Coordinate: core.Coordinate{Latitude: 95.0, Longitude: 0.0},
	})
	if !errors.Is(err, core.ErrInvalidCoordinate) {
		t.Fatalf("Expected ErrInvalidCoordinate, got %v", err)
	}
}

func TestClosedBackendReportsStoreUnavailable(t *testing.T) {
	landmarkRepo, qaRepo, factRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}

	ctx := context.Background()

	added, err := landmarkRepo.AddLandmarks(ctx, &core.Landmark{
		Name:       "Hollywood Sign",
		Coordinate: core.Coordinate{Latitude: 34.1341, Longitude: -118.3215},
		Geohash:    "9q5f5t",
	})
	if err != nil {
		t.Fatalf("Failed to add landmark: %v", err)
	}

	factRepo.Close()
	qaRepo.Close()
	landmarkRepo.Close()
	backend.Close()

	// Reads and writes against the closed store surface the retryable
	// sentinel, not a raw backend error.
	_, err = landmarkRepo.GetLandmark(ctx, added[0].Id)
	if !errors.Is(err, storage.ErrStoreUnavailable) {
		t.Fatalf("Expected ErrStoreUnavailable reading, got %v", err)
	}

	_, err = landmarkRepo.AddLandmarks(ctx, &core.Landmark{
		Name:       "Griffith Observatory",
		Coordinate: core.Coordinate{Latitude: 34.1184, Longitude: -118.3004},
		Geohash:    "9q5fk3",
	})
	if !errors.Is(err, storage.ErrStoreUnavailable) {
		t.Fatalf("Expected ErrStoreUnavailable writing, got %v", err)
	}
}
