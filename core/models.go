package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"sort"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Landmarks use content-based IDs derived from their normalized name;
// QA pairs and facts use database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// NormalizeLandmarkName converts a display name to its canonical form:
// lowercased, with runs of whitespace collapsed to single underscores.
// "Hollywood Sign" becomes "hollywood_sign".
func NormalizeLandmarkName(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	return strings.Join(fields, "_")
}

// LandmarkIDFromName derives the content-based ID for a landmark from
// its display name. The same name always yields the same ID.
func LandmarkIDFromName(name string) ID {
	return IDFromContent(NormalizeLandmarkName(name))
}

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// SemanticKey is a dotted topic label of the form "category.subcategory",
// e.g. "height.general". Keys are drawn from a closed, per-landmark
// vocabulary; classification never invents new ones.
type SemanticKey string

// KeyUnclassified is the sentinel returned when no key can be assigned
// with sufficient confidence.
const KeyUnclassified SemanticKey = ""

// Category returns the part before the first dot, or the whole key if
// there is no dot.
func (k SemanticKey) Category() string {
	if i := strings.IndexByte(string(k), '.'); i >= 0 {
		return string(k)[:i]
	}
	return string(k)
}

// Subcategory returns the part after the first dot, or "" if there is none.
func (k SemanticKey) Subcategory() string {
	if i := strings.IndexByte(string(k), '.'); i >= 0 {
		return string(k)[i+1:]
	}
	return ""
}

// IsValid reports whether the key has the "category.subcategory" shape
// with both halves non-empty.
func (k SemanticKey) IsValid() bool {
	return k.Category() != "" && k.Subcategory() != ""
}

// AgeGroup buckets a visitor's age for response personalization.
type AgeGroup int

const (
	// AgeGroupYoung covers ages under 30.
	AgeGroupYoung AgeGroup = iota + 1
	// AgeGroupMiddle covers ages 30 through 60.
	AgeGroupMiddle
	// AgeGroupOld covers ages above 60.
	AgeGroupOld
)

// String returns the canonical bucket label.
func (g AgeGroup) String() string {
	switch g {
	case AgeGroupYoung:
		return "young"
	case AgeGroupMiddle:
		return "middleage"
	case AgeGroupOld:
		return "old"
	default:
		return "unknown"
	}
}

// ClassifyAge buckets an age value: under 30 is young, 30-60 is
// middleage, above 60 is old.
func ClassifyAge(age int) AgeGroup {
	switch {
	case age < 30:
		return AgeGroupYoung
	case age <= 60:
		return AgeGroupMiddle
	default:
		return AgeGroupOld
	}
}

// ResponseTier selects one of the enumerated response lengths stored
// per semantic key. Tiers are fixed; response lookup never constructs
// keys from free-form strings.
type ResponseTier int

const (
	// TierSmall is the short response variant.
	TierSmall ResponseTier = iota + 1
	// TierMiddle is the medium response variant.
	TierMiddle
	// TierLarge is the long response variant.
	TierLarge
)

// String returns the canonical tier label.
func (t ResponseTier) String() string {
	switch t {
	case TierSmall:
		return "small"
	case TierMiddle:
		return "middle"
	case TierLarge:
		return "large"
	default:
		return "unknown"
	}
}

// TierForAgeGroup maps an age bucket to a response tier: young visitors
// get the short variant, middleage the medium one, old the long one.
func TierForAgeGroup(g AgeGroup) ResponseTier {
	switch g {
	case AgeGroupYoung:
		return TierSmall
	case AgeGroupMiddle:
		return TierMiddle
	default:
		return TierLarge
	}
}

// TieredResponse holds the per-tier text variants for one semantic key.
type TieredResponse struct {
	Small  string
	Middle string
	Large  string
}

// ForTier returns the text for the requested tier, falling back to the
// nearest populated variant (middle, then small, then large) when the
// requested one is empty. Returns "" only if all tiers are empty.
func (r TieredResponse) ForTier(t ResponseTier) string {
	switch t {
	case TierSmall:
		if r.Small != "" {
			return r.Small
		}
	case TierMiddle:
		if r.Middle != "" {
			return r.Middle
		}
	case TierLarge:
		if r.Large != "" {
			return r.Large
		}
	}
	if r.Middle != "" {
		return r.Middle
	}
	if r.Small != "" {
		return r.Small
	}
	return r.Large
}

// Landmark is a registered physical point of interest. Landmarks are
// created by property registration and are read-only to the retrieval
// engine.
type Landmark struct {
	Id         ID
	Name       string
	Coordinate Coordinate
	City       string
	Country    string
	Geohash    string // cell at the registration precision, set at write time
	Responses  map[SemanticKey]TieredResponse
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// AvailableKeys returns the landmark's semantic key vocabulary in
// sorted order. Classification is restricted to this set.
func (l *Landmark) AvailableKeys() []SemanticKey {
	keys := make([]SemanticKey, 0, len(l.Responses))
	for k := range l.Responses {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// QAPair is a cached question/answer pair for one landmark. The text
// never changes once stored; the vector is rewritten when the
// embedding model changes. Near-duplicate phrasings are expected and
// improve recall.
type QAPair struct {
	Id         ID
	LandmarkId ID
	Question   string
	Answer     string
	Key        SemanticKey
	Vector     []float32 // embedding of Question
	InsertedAt time.Time
}

// Fact is a short canonical fact about one landmark, e.g. fact key
// "completion_year" with text "1923". Same lifecycle as QAPair.
type Fact struct {
	Id         ID
	LandmarkId ID
	FactKey    string
	Text       string
	Vector     []float32 // embedding of Text
	InsertedAt time.Time
}

// QAMatch is a ranked QA pair candidate with a normalized similarity
// score in [0,1].
type QAMatch struct {
	Pair  *QAPair
	Score float32
}

// FactMatch is a ranked fact candidate with a normalized similarity
// score in [0,1].
type FactMatch struct {
	Fact  *Fact
	Score float32
}

// Strategy names the decision branch that produced an answer.
type Strategy int

const (
	// StrategyQAMatch returns a cached QA pair answer verbatim.
	StrategyQAMatch Strategy = iota + 1
	// StrategyFactMatch returns stored fact text.
	StrategyFactMatch
	// StrategySemanticGenerate invokes generation guided by a classified key.
	StrategySemanticGenerate
	// StrategyGenericGenerate invokes generation with no topical guidance.
	StrategyGenericGenerate
)

// String returns the canonical strategy label.
func (s Strategy) String() string {
	switch s {
	case StrategyQAMatch:
		return "qa_match"
	case StrategyFactMatch:
		return "fact_match"
	case StrategySemanticGenerate:
		return "semantic_generate"
	case StrategyGenericGenerate:
		return "generic_generate"
	default:
		return "unknown"
	}
}

// Generated reports whether the strategy invoked the external backend.
// Only generated answers are eligible for write-back.
func (s Strategy) Generated() bool {
	return s == StrategySemanticGenerate || s == StrategyGenericGenerate
}
