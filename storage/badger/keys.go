package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/roamly/waypoint/core"
)

// Key prefixes for different data types
const (
	landmarkPrefix     = "lmkrec"
	landmarkNamePrefix = "lmkname"
	landmarkCellPrefix = "lmkcell"
	qaPairPrefix       = "qarec"
	qaPairIDSeq        = "qaseq"
	factPrefix         = "factrec"
	factIDSeq          = "factseq"
)

// makeLandmarkKey generates a key for a landmark by ID.
func makeLandmarkKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", landmarkPrefix, id))
}

// makeLandmarkNameKey generates a key for the normalized-name index.
// Format: prefix:normalizedName
func makeLandmarkNameKey(name string) []byte {
	return []byte(landmarkNamePrefix + ":" + core.NormalizeLandmarkName(name))
}

// makeLandmarkCellKey generates a composite key for the geohash cell index.
// Format: prefix:cell:id
func makeLandmarkCellKey(cell string, id core.ID) []byte {
	prefix := landmarkCellPrefix + ":" + cell + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	// BigEndian so lexicographic sort matches numeric order
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialLandmarkCellKey generates the scan prefix for one geohash cell.
// Format: prefix:cell:
func makePartialLandmarkCellKey(cell string) []byte {
	return []byte(landmarkCellPrefix + ":" + cell + ":")
}

// makeQAPairKey generates a composite key for a QA pair.
// Format: prefix:landmarkID:pairID. Embedding the landmark ID in the
// key keeps similarity scans restricted to one landmark's range.
func makeQAPairKey(landmarkID, id core.ID) []byte {
	prefix := qaPairPrefix + ":"
	buf := make([]byte, len(prefix)+16)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(landmarkID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialQAPairKey generates the scan prefix for one landmark's QA pairs.
func makePartialQAPairKey(landmarkID core.ID) []byte {
	prefix := qaPairPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(landmarkID))
	return buf
}

// makeFactKey generates a composite key for a fact.
// Format: prefix:landmarkID:factID
func makeFactKey(landmarkID, id core.ID) []byte {
	prefix := factPrefix + ":"
	buf := make([]byte, len(prefix)+16)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(landmarkID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialFactKey generates the scan prefix for one landmark's facts.
func makePartialFactKey(landmarkID core.ID) []byte {
	prefix := factPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(landmarkID))
	return buf
}
