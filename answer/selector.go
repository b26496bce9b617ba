package answer

import (
	"log/slog"

	"github.com/roamly/waypoint/core"
)

// Default confidence thresholds for the strategy chain. Illustrative
// starting points pending empirical tuning, hence configurable.
const (
	DefaultQAThreshold   float32 = 0.70
	DefaultFactThreshold float32 = 0.60
	DefaultSemanticFloor float32 = 0.40
)

// Thresholds holds the minimum confidence each strategy state demands.
type Thresholds struct {
	// QAMatch is the minimum similarity for answering from a cached
	// QA pair verbatim.
	QAMatch float32

	// FactMatch is the minimum similarity for answering from a cached
	// fact.
	FactMatch float32

	// SemanticFloor is the minimum classification confidence for
	// key-guided generation.
	SemanticFloor float32
}

// DefaultThresholds returns the default strategy thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		QAMatch:       DefaultQAThreshold,
		FactMatch:     DefaultFactThreshold,
		SemanticFloor: DefaultSemanticFloor,
	}
}

// Validate checks that every threshold lies in [0,1].
func (t Thresholds) Validate() error {
	for _, v := range []float32{t.QAMatch, t.FactMatch, t.SemanticFloor} {
		if v < 0 || v > 1 {
			return ErrInvalidThreshold
		}
	}
	return nil
}

// Evidence is everything the selector weighs: the best cached matches
// and the classified semantic key. Failed gathering stages contribute
// empty evidence, which degrades exactly like low confidence.
type Evidence struct {
	QAMatches     []*core.QAMatch
	FactMatches   []*core.FactMatch
	Key           core.SemanticKey
	KeyConfidence float32
}

// Selection is the selector's verdict. For the cached strategies the
// Answer is filled from the store; for the generate strategies the
// caller produces the answer, steered by Key when present.
type Selection struct {
	Strategy   core.Strategy
	Answer     string
	Key        core.SemanticKey
	Confidence float32
}

// Selector walks the strategy chain in strict priority order.
type Selector struct {
	thresholds Thresholds
	logger     *slog.Logger
}

// SelectorOption configures a Selector.
type SelectorOption func(*Selector) error

// WithThresholds replaces the default strategy thresholds.
func WithThresholds(t Thresholds) SelectorOption {
	return func(s *Selector) error {
		if err := t.Validate(); err != nil {
			return err
		}
		s.thresholds = t
		return nil
	}
}

// WithSelectorLogger sets a custom logger.
// Default is slog.Default().
func WithSelectorLogger(logger *slog.Logger) SelectorOption {
	return func(s *Selector) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSelector creates a strategy selector.
func NewSelector(opts ...SelectorOption) (*Selector, error) {
	s := &Selector{
		thresholds: DefaultThresholds(),
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Thresholds returns the selector's configured thresholds.
func (s *Selector) Thresholds() Thresholds {
	return s.thresholds
}

// Select walks the chain qa_match, fact_match, semantic_generate,
// generic_generate and commits to the first state whose threshold is
// met. Priority governs selection, not maximum score: a QA match above
// its threshold wins even when a fact scores higher. Falling through is
// normal control flow, logged at debug only.
func (s *Selector) Select(evidence Evidence) Selection {
	if match := bestQA(evidence.QAMatches); match != nil && match.Score >= s.thresholds.QAMatch {
		return Selection{
			Strategy:   core.StrategyQAMatch,
			Answer:     match.Pair.Answer,
			Key:        match.Pair.Key,
			Confidence: match.Score,
		}
	}
	s.logger.Debug("no confident QA match", "threshold", s.thresholds.QAMatch)

	if match := bestFact(evidence.FactMatches); match != nil && match.Score >= s.thresholds.FactMatch {
		return Selection{
			Strategy:   core.StrategyFactMatch,
			Answer:     match.Fact.Text,
			Confidence: match.Score,
		}
	}
	s.logger.Debug("no confident fact match", "threshold", s.thresholds.FactMatch)

	if evidence.Key != core.KeyUnclassified && evidence.KeyConfidence >= s.thresholds.SemanticFloor {
		return Selection{
			Strategy:   core.StrategySemanticGenerate,
			Key:        evidence.Key,
			Confidence: evidence.KeyConfidence,
		}
	}
	s.logger.Debug("no confident semantic key", "floor", s.thresholds.SemanticFloor)

	return Selection{Strategy: core.StrategyGenericGenerate}
}

// bestQA returns the top-ranked match. Lists arrive sorted descending.
func bestQA(matches []*core.QAMatch) *core.QAMatch {
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

func bestFact(matches []*core.FactMatch) *core.FactMatch {
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}
