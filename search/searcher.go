package search

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/roamly/waypoint/ai"
	"github.com/roamly/waypoint/core"
	"github.com/roamly/waypoint/semantic"
	"github.com/roamly/waypoint/storage"
)

// semanticFloor is the minimum similarity for a vector hit. Kept below
// the answering thresholds so the tool surfaces near-miss candidates.
const semanticFloor = 0.40

// Result is one ranked search hit. Exactly one of Pair and Fact is set.
type Result struct {
	Pair  *core.QAPair
	Fact  *core.Fact
	Score float32
}

// Key returns the semantic key of the underlying record.
func (r *Result) Key() core.SemanticKey {
	if r.Pair != nil {
		return r.Pair.Key
	}
	return core.SemanticKey(r.Fact.FactKey)
}

// Text returns the stored text of the underlying record.
func (r *Result) Text() string {
	if r.Pair != nil {
		return r.Pair.Question + " / " + r.Pair.Answer
	}
	return r.Fact.Text
}

// Searcher provides hybrid semantic and verbatim search over one
// landmark's stored QA pairs and facts.
type Searcher struct {
	pairs    storage.QARepository
	facts    storage.FactRepository
	embedder ai.Embedder
	logger   *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	pairs storage.QARepository,
	facts storage.FactRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Searcher, error) {
	if pairs == nil {
		return nil, ErrQARepositoryRequired
	}
	if facts == nil {
		return nil, ErrFactRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	s := &Searcher{
		pairs:    pairs,
		facts:    facts,
		embedder: provider.Embedder(),
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// FindSimilar searches the landmark's knowledge for records matching
// the query. Returns up to maxHits results, ranked by relevance score.
func (s *Searcher) FindSimilar(ctx context.Context, landmarkID core.ID, query string, maxHits int) ([]*Result, error) {
	return s.FindSimilarWithMonitor(ctx, landmarkID, query, maxHits, nil)
}

// FindSimilarWithMonitor searches with monitoring. The monitor receives
// callbacks at each stage of the search process.
//
// Two signals are combined. The vector signal embeds the query and
// finds stored records above the semantic floor; the verbatim signal
// scans record text for every non-stop-word of the query. A record hit
// by both signals scores 1.5x its similarity, verbatim-only hits score
// a fixed 1.2, vector-only hits score their raw similarity.
func (s *Searcher) FindSimilarWithMonitor(ctx context.Context, landmarkID core.ID, query string, maxHits int, monitor SearchMonitor) ([]*Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	// 1. Vector signal
	embedding, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}
	vector := semantic.NormalizeVector(embedding)

	qaMatches, err := s.pairs.FindSimilarQA(ctx, landmarkID, vector, semanticFloor, maxHits)
	if err != nil {
		s.logger.Error("error querying for similar qa pairs", "err", err)
		return nil, err
	}
	factMatches, err := s.facts.FindSimilarFacts(ctx, landmarkID, vector, semanticFloor, maxHits)
	if err != nil {
		s.logger.Error("error querying for similar facts", "err", err)
		return nil, err
	}
	monitor.AfterSemanticSearch(qaMatches, factMatches)

	pairScores := make(map[core.ID]float32, len(qaMatches))
	for _, match := range qaMatches {
		pairScores[match.Pair.Id] = match.Score
	}
	factScores := make(map[core.ID]float32, len(factMatches))
	for _, match := range factMatches {
		factScores[match.Fact.Id] = match.Score
	}

	// 2. Verbatim signal over the landmark's full record set
	allPairs, err := s.pairs.GetQAPairsByLandmark(ctx, landmarkID)
	if err != nil {
		s.logger.Error("error retrieving qa pairs", "landmarkID", landmarkID, "err", err)
		return nil, err
	}
	allFacts, err := s.facts.GetFactsByLandmark(ctx, landmarkID)
	if err != nil {
		s.logger.Error("error retrieving facts", "landmarkID", landmarkID, "err", err)
		return nil, err
	}

	verbatimPairs := make(map[core.ID]bool)
	verbatimPairIds := make([]uint64, 0)
	for _, pair := range allPairs {
		if containsAllQueryWords(pair.Question+" "+pair.Answer, query) {
			verbatimPairs[pair.Id] = true
			verbatimPairIds = append(verbatimPairIds, uint64(pair.Id))
		}
	}
	verbatimFacts := make(map[core.ID]bool)
	verbatimFactIds := make([]uint64, 0)
	for _, fact := range allFacts {
		if containsAllQueryWords(fact.Text, query) {
			verbatimFacts[fact.Id] = true
			verbatimFactIds = append(verbatimFactIds, uint64(fact.Id))
		}
	}
	monitor.AfterVerbatimScan(verbatimPairIds, verbatimFactIds)

	// 3. Combine and score
	results := make([]*Result, 0, len(pairScores)+len(factScores))
	for _, pair := range allPairs {
		result := s.score(&Result{Pair: pair}, pairScores[pair.Id], verbatimPairs[pair.Id], monitor)
		if result != nil {
			results = append(results, result)
		}
	}
	for _, fact := range allFacts {
		result := s.score(&Result{Fact: fact}, factScores[fact.Id], verbatimFacts[fact.Id], monitor)
		if result != nil {
			results = append(results, result)
		}
	}

	// Sort by score descending
	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > maxHits {
		results = results[:maxHits]
	}
	monitor.Finish(results)

	return results, nil
}

// score assigns the combined relevance score, or returns nil when
// neither signal hit the record.
func (s *Searcher) score(result *Result, similarity float32, verbatim bool, monitor SearchMonitor) *Result {
	inSemantic := similarity > 0

	switch {
	case inSemantic && verbatim:
		result.Score = 1.5 * similarity
		monitor.SemanticAndVerbatimHit(result)
	case verbatim:
		result.Score = 1.2
		monitor.VerbatimHit(result)
	case inSemantic:
		result.Score = similarity
		monitor.SemanticHit(result)
	default:
		return nil
	}
	return result
}
