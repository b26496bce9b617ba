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


package waypoint

import (
	"context"
	"log/slog"

	"github.com/roamly/waypoint/ai"
	"github.com/roamly/waypoint/ai/openai"
	"github.com/roamly/waypoint/answer"
	"github.com/roamly/waypoint/core"
	"github.com/roamly/waypoint/geo"
	"github.com/roamly/waypoint/ingestion"
	"github.com/roamly/waypoint/storage"
	"github.com/roamly/waypoint/storage/badger"
)

type Database struct {
	backend      *badger.Backend
	landmarkRepo storage.LandmarkRepository
	qaRepo       storage.QARepository
	factRepo     storage.FactRepository
	provider     ai.AIProvider
	index        *geo.Index
	logger       *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig  *ai.Config
	precision int
}

// WithAIConfig overrides the AI provider configuration.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithGeohashPrecision sets the proximity cell precision used for
// landmark registration and lookup.
func WithGeohashPrecision(precision int) DatabaseOption {
	return func(o *databaseOptions) {
		o.precision = precision
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{
		aiConfig:  ai.DefaultConfig(), // Default if not provided
		precision: geo.DefaultPrecision,
	}
	for _, opt := range opts {
		opt(options)
	}
	// Open backend
	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	// Create landmark repository
	landmarkRepo, err := badger.NewLandmarkRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create QA repository
	qaRepo, err := badger.NewQARepository(backend)
	if err != nil {
		landmarkRepo.Close()
		backend.Close()
		return nil, err
	}

	// Create fact repository
	factRepo, err := badger.NewFactRepository(backend)
	if err != nil {
		qaRepo.Close()
		landmarkRepo.Close()
		backend.Close()
		return nil, err
	}

	// Create AI provider with configured settings
	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		factRepo.Close()
		qaRepo.Close()
		landmarkRepo.Close()
		backend.Close()
		return nil, err
	}

	index, err := geo.NewIndex(landmarkRepo, geo.WithPrecision(options.precision))
	if err != nil {
		provider.Close()
		factRepo.Close()
		qaRepo.Close()
		landmarkRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:      backend,
		landmarkRepo: landmarkRepo,
		qaRepo:       qaRepo,
		factRepo:     factRepo,
		provider:     provider,
		index:        index,
		logger:       slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	// Close AI provider first
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	// Close repositories
	if err := db.factRepo.Close(); err != nil {
		db.logger.Error("error closing fact repository", "err", err)
		return err
	}
	if err := db.qaRepo.Close(); err != nil {
		db.logger.Error("error closing qa repository", "err", err)
		return err
	}
	if err := db.landmarkRepo.Close(); err != nil {
		db.logger.Error("error closing landmark repository", "err", err)
		return err
	}

	// Close backend
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) LandmarkRepository() storage.LandmarkRepository {
	return db.landmarkRepo
}

func (db *Database) QARepository() storage.QARepository {
	return db.qaRepo
}

func (db *Database) FactRepository() storage.FactRepository {
	return db.factRepo
}

// AIProvider returns the configured embedding and generation services.
func (db *Database) AIProvider() ai.AIProvider {
	return db.provider
}

// ProximityIndex returns the geohash proximity index over the landmark
// repository.
func (db *Database) ProximityIndex() *geo.Index {
	return db.index
}

// RegisterLandmark stores a landmark, deriving its geohash cell from
// the coordinate at the index's precision.
func (db *Database) RegisterLandmark(ctx context.Context, landmark *core.Landmark) (*core.Landmark, error) {
	if err := core.ValidateLandmark(landmark); err != nil {
		return nil, err
	}

	landmark.Geohash = geo.Encode(
		landmark.Coordinate.Latitude,
		landmark.Coordinate.Longitude,
		db.index.Precision())

	added, err := db.landmarkRepo.AddLandmarks(ctx, landmark)
	if err != nil {
		return nil, err
	}
	return added[0], nil
}

func (db *Database) NewSeedPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(db.qaRepo, db.factRepo, db.provider, opts...)
}

func (db *Database) NewEngine(opts ...answer.EngineOption) (*answer.Engine, error) {
	return answer.NewEngine(db.landmarkRepo, db.qaRepo, db.factRepo, db.provider, db.index, opts...)
}
