package geo

import (
	"context"
	"log/slog"
	"sort"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/roamly/waypoint/core"
	"github.com/roamly/waypoint/storage"
)

// Index finds landmarks near a coordinate by geohash cell lookup.
type Index struct {
	landmarks storage.LandmarkRepository
	precision int
	logger    *slog.Logger
}

// Option configures an Index.
type Option func(*Index) error

// WithPrecision sets the geohash precision used for cell lookups.
// Default is DefaultPrecision.
func WithPrecision(precision int) Option {
	return func(idx *Index) error {
		if precision < 1 || precision > maxPrecision {
			return ErrInvalidPrecision
		}
		idx.precision = precision
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(idx *Index) error {
		if logger == nil {
			logger = slog.Default()
		}
		idx.logger = logger
		return nil
	}
}

// NewIndex creates a proximity index over the given landmark repository.
func NewIndex(landmarks storage.LandmarkRepository, opts ...Option) (*Index, error) {
	if landmarks == nil {
		return nil, ErrLandmarkRepositoryRequired
	}

	idx := &Index{
		landmarks: landmarks,
		precision: DefaultPrecision,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(idx); err != nil {
			return nil, err
		}
	}

	return idx, nil
}

// Precision returns the geohash precision used for cell lookups.
func (idx *Index) Precision() int {
	return idx.precision
}

// FindNear returns landmarks whose stored geohash cell matches the cell
// of the given coordinate at the index precision, ordered nearest first.
// A coordinate with no landmarks in its cell yields an empty slice.
func (idx *Index) FindNear(ctx context.Context, latitude, longitude float64) ([]*core.Landmark, error) {
	if err := core.ValidateCoordinate(core.Coordinate{Latitude: latitude, Longitude: longitude}); err != nil {
		return nil, err
	}

	cell := Encode(latitude, longitude, idx.precision)

	found, err := idx.landmarks.GetLandmarksByGeohash(ctx, cell)
	if err != nil {
		idx.logger.Error("error querying landmarks by geohash", "cell", cell, "err", err)
		return nil, err
	}

	idx.logger.Debug("proximity lookup", "cell", cell, "hits", len(found))

	origin := s2.LatLngFromDegrees(latitude, longitude)
	distances := make(map[core.ID]s1.Angle, len(found))
	for _, landmark := range found {
		target := s2.LatLngFromDegrees(landmark.Coordinate.Latitude, landmark.Coordinate.Longitude)
		distances[landmark.Id] = origin.Distance(target)
	}

	sort.Slice(found, func(i, j int) bool {
		return distances[found[i].Id] < distances[found[j].Id]
	})

	return found, nil
}

// Nearest returns the single closest landmark in the coordinate's cell,
// or nil when the cell is empty.
func (idx *Index) Nearest(ctx context.Context, latitude, longitude float64) (*core.Landmark, error) {
	found, err := idx.FindNear(ctx, latitude, longitude)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}
