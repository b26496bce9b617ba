package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/roamly/waypoint/core"
	"github.com/roamly/waypoint/storage"
)

func TestFactBasics(t *testing.T) {
	landmarkRepo, qaRepo, factRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { factRepo.Close(); qaRepo.Close(); landmarkRepo.Close(); backend.Close() }()

	ctx := context.Background()
	landmarkID := core.LandmarkIDFromName("Hollywood Sign")

	fact := &core.Fact{
		LandmarkId: landmarkID,
		FactKey:    "height",
		Text:       "The letters are 45 feet tall.",
		Vector:     []float32{0.2, 0.4, 0.6},
	}

	added, err := factRepo.AddFacts(ctx, fact)
	if err != nil {
		t.Fatalf("Failed to add fact: %v", err)
	}

	if len(added) != 1 {
		t.Fatalf("Expected 1 fact, got %d", len(added))
	}

	retrieved, err := factRepo.GetFact(ctx, landmarkID, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get fact: %v", err)
	}

	if retrieved.FactKey != "height" {
		t.Fatalf("Unexpected fact key: %s", retrieved.FactKey)
	}

	if retrieved.Text != "The letters are 45 feet tall." {
		t.Fatalf("Unexpected fact text: %s", retrieved.Text)
	}
}

func TestGetFactsByLandmark(t *testing.T) {
	landmarkRepo, qaRepo, factRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { factRepo.Close(); qaRepo.Close(); landmarkRepo.Close(); backend.Close() }()

	ctx := context.Background()
	signID := core.LandmarkIDFromName("Hollywood Sign")
	towerID := core.LandmarkIDFromName("Eiffel Tower")

	facts := []*core.Fact{
		{LandmarkId: signID, FactKey: "height", Text: "45 feet tall"},
		{LandmarkId: signID, FactKey: "origin", Text: "built in 1923"},
		{LandmarkId: towerID, FactKey: "height", Text: "330 meters tall"},
	}
	if _, err := factRepo.AddFacts(ctx, facts...); err != nil {
		t.Fatalf("Failed to add facts: %v", err)
	}

	signFacts, err := factRepo.GetFactsByLandmark(ctx, signID)
	if err != nil {
		t.Fatalf("Failed to get facts: %v", err)
	}
	if len(signFacts) != 2 {
		t.Fatalf("Expected 2 facts for sign, got %d", len(signFacts))
	}
}

func TestFindSimilarFacts(t *testing.T) {
	landmarkRepo, qaRepo, factRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { factRepo.Close(); qaRepo.Close(); landmarkRepo.Close(); backend.Close() }()

	ctx := context.Background()
	signID := core.LandmarkIDFromName("Hollywood Sign")
	towerID := core.LandmarkIDFromName("Eiffel Tower")

	facts := []*core.Fact{
		{LandmarkId: signID, FactKey: "height", Text: "45 feet tall", Vector: []float32{1.0, 0.0, 0.0}},
		{LandmarkId: signID, FactKey: "origin", Text: "built in 1923", Vector: []float32{0.0, 1.0, 0.0}},
		{LandmarkId: towerID, FactKey: "height", Text: "330 meters", Vector: []float32{1.0, 0.0, 0.0}},
	}
	if _, err := factRepo.AddFacts(ctx, facts...); err != nil {
		t.Fatalf("Failed to add facts: %v", err)
	}

	matches, err := factRepo.FindSimilarFacts(ctx, signID, []float32{1.0, 0.0, 0.0}, 0.5, 10)
	if err != nil {
		t.Fatalf("Failed to find similar facts: %v", err)
	}

	if len(matches) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(matches))
	}

	if matches[0].Fact.FactKey != "height" || matches[0].Fact.LandmarkId != signID {
		t.Fatal("Expected the sign's height fact")
	}
}

func TestFactValidation(t *testing.T) {
	landmarkRepo, qaRepo, factRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { factRepo.Close(); qaRepo.Close(); landmarkRepo.Close(); backend.Close() }()

	ctx := context.Background()

	_, err = factRepo.AddFacts(ctx, &core.Fact{LandmarkId: 1, FactKey: "height"})
	if !errors.Is(err, core.ErrEmptyFactText) {
		t.Fatalf("Expected ErrEmptyFactText, got %v", err)
	}

	_, err = factRepo.AddFacts(ctx, &core.Fact{FactKey: "height", Text: "tall"})
	if !errors.Is(err, core.ErrInvalidFact) {
		t.Fatalf("Expected ErrInvalidFact without landmark id, got %v", err)
	}
}

func TestGetFactNotFound(t *testing.T) {
	landmarkRepo, qaRepo, factRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { factRepo.Close(); qaRepo.Close(); landmarkRepo.Close(); backend.Close() }()

	_, err = factRepo.GetFact(context.Background(), core.ID(1), core.ID(42))
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestUpdateFacts(t *testing.T) {
	landmarkRepo, qaRepo, factRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { factRepo.Close(); qaRepo.Close(); landmarkRepo.Close(); backend.Close() }()

	ctx := context.Background()
	landmarkID := core.LandmarkIDFromName("Hollywood Sign")

	added, err := factRepo.AddFacts(ctx, &core.Fact{
		LandmarkId: landmarkID,
		FactKey:    "completion_year",
		Text:       "Completed in 1923.",
		Vector:     []float32{1, 0, 0},
	})
	if err != nil {
		t.Fatalf("Failed to add fact: %v", err)
	}
	insertedAt := added[0].InsertedAt

	updated := *added[0]
	updated.Vector = []float32{0, 1, 0}
	if _, err := factRepo.UpdateFacts(ctx, &updated); err != nil {
		t.Fatalf("Failed to update fact: %v", err)
	}

	retrieved, err := factRepo.GetFact(ctx, landmarkID, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get fact: %v", err)
	}

	if retrieved.Vector[1] != 1 {
		t.Fatalf("Expected updated vector, got %v", retrieved.Vector)
	}

	if !retrieved.InsertedAt.Equal(insertedAt) {
		t.Fatalf("Expected InsertedAt %v preserved, got %v", insertedAt, retrieved.InsertedAt)
	}
}

func TestUpdateFactNotFound(t *testing.T) {
	landmarkRepo, qaRepo, factRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { factRepo.Close(); qaRepo.Close(); landmarkRepo.Close(); backend.Close() }()

	ctx := context.Background()
	landmarkID := core.LandmarkIDFromName("Hollywood Sign")

	_, err = factRepo.UpdateFacts(ctx, &core.Fact{
		Id:         9999,
		LandmarkId: landmarkID,
		FactKey:    "k",
		Text:       "t",
	})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for missing fact, got %v", err)
	}
}
