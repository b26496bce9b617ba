package geo

import "strings"

// base32 geohash alphabet: digits and lowercase letters excluding a, i, l, o.
const encodeAlphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

// DefaultPrecision is the cell precision used for landmark registration
// and proximity lookup. Six characters is roughly a 1.2km x 0.6km cell.
const DefaultPrecision = 6

// maxPrecision is the longest cell string Encode emits.
const maxPrecision = 12

// Encode returns the geohash cell for a coordinate at the given
// precision. The encoding alternately bisects the longitude range
// [-180,180] and the latitude range [-90,90], longitude first,
// appending one bit per step (1 when the value falls in the upper half)
// and emitting one alphabet character per five bits.
//
// Encode is pure and deterministic. Cells sharing a prefix are
// geographically near, but the converse does not hold: coordinates
// adjacent across a cell boundary can hash to dissimilar strings.
// Callers must rely only on exact cell equality at fixed precision.
func Encode(latitude, longitude float64, precision int) string {
	if precision < 1 {
		precision = DefaultPrecision
	}

	latMin, latMax := -90.0, 90.0
	lonMin, lonMax := -180.0, 180.0

	var sb strings.Builder
	sb.Grow(precision)

	acc := 0
	bits := 0
	even := true // even steps bisect longitude

	for sb.Len() < precision {
		if even {
			mid := (lonMin + lonMax) / 2
			if longitude >= mid {
				acc = acc<<1 | 1
				lonMin = mid
			} else {
				acc <<= 1
				lonMax = mid
			}
		} else {
			mid := (latMin + latMax) / 2
			if latitude >= mid {
				acc = acc<<1 | 1
				latMin = mid
			} else {
				acc <<= 1
				latMax = mid
			}
		}
		even = !even

		bits++
		if bits == 5 {
			sb.WriteByte(encodeAlphabet[acc])
			acc = 0
			bits = 0
		}
	}

	return sb.String()
}
