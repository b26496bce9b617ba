package geo

import (
	"strings"
	"testing"

	geohash "github.com/TomiHiltunen/geohash-golang"
	"github.com/stretchr/testify/assert"
)

func TestEncode_Deterministic(t *testing.T) {
	coords := []struct {
		lat, lon float64
	}{
		{34.1342, -118.3219},
		{48.858370, 2.294481},
		{40.689247, -74.044502},
		{0, 0},
		{-33.8568, 151.2153},
	}

	for _, c := range coords {
		first := Encode(c.lat, c.lon, 8)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, Encode(c.lat, c.lon, 8))
		}
	}
}

func TestEncode_KnownValues(t *testing.T) {
	tests := []struct {
		name      string
		lat, lon  float64
		precision int
		want      string
	}{
		{name: "hollywood hills", lat: 34.1342, lon: -118.3219, precision: 6, want: "9q5f5t"},
		{name: "hollywood hills long", lat: 34.1342, lon: -118.3219, precision: 12, want: "9q5f5tbw5uhd"},
		{name: "eiffel tower", lat: 48.858370, lon: 2.294481, precision: 6, want: "u09tun"},
		{name: "statue of liberty", lat: 40.689247, lon: -74.044502, precision: 6, want: "dr5r7p"},
		{name: "null island", lat: 0, lon: 0, precision: 6, want: "s00000"},
		{name: "north east corner", lat: 90, lon: 180, precision: 6, want: "zzzzzz"},
		{name: "south west corner", lat: -90, lon: -180, precision: 6, want: "000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.lat, tt.lon, tt.precision))
		})
	}
}

// Cross-check against an independent geohash implementation.
func TestEncode_MatchesReferenceImplementation(t *testing.T) {
	coords := []struct {
		lat, lon float64
	}{
		{34.1342, -118.3219},
		{34.13425221700465, -118.32189112901952},
		{48.858370, 2.294481},
		{-33.8568, 151.2153},
		{51.500729, -0.124625},
	}

	for _, c := range coords {
		for _, precision := range []int{4, 6, 8, 12} {
			want := geohash.EncodeWithPrecision(c.lat, c.lon, precision)
			assert.Equal(t, want, Encode(c.lat, c.lon, precision),
				"lat=%v lon=%v precision=%d", c.lat, c.lon, precision)
		}
	}
}

// Increasing precision refines the cell: each longer hash extends the
// shorter one. Exact boundary coordinates are excluded here since a
// boundary bit flip can legitimately break the prefix property.
func TestEncode_MonotonicRefinement(t *testing.T) {
	coords := []struct {
		lat, lon float64
	}{
		{34.1342, -118.3219},
		{48.858370, 2.294481},
		{-23.550520, -46.633308},
		{35.658581, 139.745438},
	}

	for _, c := range coords {
		prev := ""
		for precision := 1; precision <= 12; precision++ {
			h := Encode(c.lat, c.lon, precision)
			assert.Len(t, h, precision)
			assert.True(t, strings.HasPrefix(h, prev),
				"precision %d hash %q does not extend %q", precision, h, prev)
			prev = h
		}
	}
}

func TestEncode_InvalidPrecisionDefaults(t *testing.T) {
	assert.Len(t, Encode(34.1342, -118.3219, 0), DefaultPrecision)
	assert.Len(t, Encode(34.1342, -118.3219, -3), DefaultPrecision)
}

// Edge-adjacent coordinates can land in cells with no common prefix.
// This asymmetry is inherent to geohashing; downstream code relies only
// on exact equality, so the behavior is pinned rather than "fixed".
func TestEncode_BoundaryAsymmetry(t *testing.T) {
	west := Encode(45.0, -0.0000001, 6)
	east := Encode(45.0, 0.0000001, 6)
	assert.NotEqual(t, west, east)
	assert.NotEqual(t, west[0], east[0], "prime meridian neighbors should fall in different top-level cells")
}
