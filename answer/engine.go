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


package answer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/roamly/waypoint/ai"
	"github.com/roamly/waypoint/core"
	"github.com/roamly/waypoint/geo"
	"github.com/roamly/waypoint/semantic"
	"github.com/roamly/waypoint/storage"
)

// AskRequest is one question about a landmark. The landmark is resolved
// from LandmarkID when set, otherwise from LandmarkName, otherwise from
// the coordinate via proximity lookup.
type AskRequest struct {
	Question     string
	LandmarkID   core.ID
	LandmarkName string
	Coordinate   *core.Coordinate

	// Visitor persona, all optional.
	Age            int
	Interest       string
	VisitorCountry string
}

// Result is the engine's answer, always carrying the strategy that
// produced it for observability.
type Result struct {
	Strategy   core.Strategy
	Answer     string
	MatchedKey core.SemanticKey
	Confidence float32
}

// Engine is the retrieval and answer-selection pipeline: interpret,
// classify, match, select, generate, learn.
type Engine struct {
	landmarks   storage.LandmarkRepository
	qaMatcher   *QAMatcher
	factMatcher *FactMatcher
	classifier  *semantic.Classifier
	generator   ai.AnswerGenerator
	learner     *Learner
	selector    *Selector
	interpreter *Interpreter
	matchLimit  int
	logger      *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine) error

// WithEngineThresholds replaces the strategy thresholds.
func WithEngineThresholds(t Thresholds) EngineOption {
	return func(e *Engine) error {
		selector, err := NewSelector(WithThresholds(t))
		if err != nil {
			return err
		}
		e.selector = selector
		return nil
	}
}

// WithMatchLimit sets how many candidates each matcher retrieves.
// Default is DefaultMatchLimit.
func WithMatchLimit(k int) EngineOption {
	return func(e *Engine) error {
		if k < 1 {
			return ErrInvalidLimit
		}
		e.matchLimit = k
		return nil
	}
}

// WithEngineLogger sets a custom logger.
// Default is slog.Default().
func WithEngineLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine wires the full pipeline over the given repositories and AI
// provider. The proximity index may be nil to disable coordinate
// fallback.
func NewEngine(
	landmarks storage.LandmarkRepository,
	pairs storage.QARepository,
	facts storage.FactRepository,
	provider ai.AIProvider,
	index *geo.Index,
	opts ...EngineOption,
) (*Engine, error) {
	if landmarks == nil {
		return nil, ErrLandmarkRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	qaMatcher, err := NewQAMatcher(pairs, provider.Embedder())
	if err != nil {
		return nil, err
	}
	factMatcher, err := NewFactMatcher(facts, provider.Embedder())
	if err != nil {
		return nil, err
	}
	classifier, err := semantic.NewClassifier(provider.Embedder())
	if err != nil {
		return nil, err
	}
	learner, err := NewLearner(pairs, facts, provider.Embedder())
	if err != nil {
		return nil, err
	}
	selector, err := NewSelector()
	if err != nil {
		return nil, err
	}

	e := &Engine{
		landmarks:   landmarks,
		qaMatcher:   qaMatcher,
		factMatcher: factMatcher,
		classifier:  classifier,
		generator:   provider.AnswerGenerator(),
		learner:     learner,
		selector:    selector,
		interpreter: NewInterpreter(index),
		matchLimit:  DefaultMatchLimit,
		logger:      slog.Default().With("component", "answer-engine"),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// AnswerQuestion runs the full pipeline for one question. The returned
// result always names the strategy taken. Generation failures propagate
// wrapped in core.ErrGenerationFailed; everything softer degrades down
// the strategy chain.
func (e *Engine) AnswerQuestion(ctx context.Context, request AskRequest) (*Result, error) {
	landmark, err := e.resolveLandmark(ctx, request)
	if err != nil {
		return nil, err
	}

	// Classification first: its key steers generation if matching
	// comes up empty. A classifier error degrades to unclassified.
	key, keyConfidence, err := e.classifier.Classify(ctx, request.Question, landmark.AvailableKeys())
	if err != nil {
		e.logger.Warn("classification failed, continuing unclassified", "err", err)
		key, keyConfidence = core.KeyUnclassified, 0
	}

	// QA and fact matching are mutually independent; run them
	// concurrently. Branch failures are captured per branch and
	// degrade like empty results, they never abort the request.
	var qaMatches []*core.QAMatch
	var factMatches []*core.FactMatch
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		matches, err := e.qaMatcher.Search(groupCtx, request.Question, landmark.Id, e.matchLimit)
		if err != nil {
			e.logger.Warn("QA search failed, degrading", "err", err)
			return nil
		}
		qaMatches = matches
		return nil
	})
	group.Go(func() error {
		matches, err := e.factMatcher.Search(groupCtx, request.Question, landmark.Id, e.matchLimit)
		if err != nil {
			e.logger.Warn("fact search failed, degrading", "err", err)
			return nil
		}
		factMatches = matches
		return nil
	})
	// Branches never return errors; Wait only collects completion.
	_ = group.Wait()

	selection := e.selector.Select(Evidence{
		QAMatches:     qaMatches,
		FactMatches:   factMatches,
		Key:           key,
		KeyConfidence: keyConfidence,
	})

	result := &Result{
		Strategy:   selection.Strategy,
		Answer:     selection.Answer,
		MatchedKey: selection.Key,
		Confidence: selection.Confidence,
	}

	if selection.Strategy.Generated() {
		answer, err := e.generator.GenerateAnswer(ctx, ai.GenerationRequest{
			Question:       request.Question,
			LandmarkName:   landmark.Name,
			City:           landmark.City,
			Country:        landmark.Country,
			GuidanceTopic:  string(selection.Key),
			Interest:       request.Interest,
			VisitorCountry: request.VisitorCountry,
			AgeGroup:       ageGroupLabel(request.Age),
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", core.ErrGenerationFailed, err)
		}
		result.Answer = answer

		// Write-back only after generation; cached answers must not
		// re-accumulate.
		e.learner.Record(ctx, request.Question, answer, landmark.Id, selection.Key)
	}

	e.logger.Debug("answered question",
		"landmark", landmark.Name,
		"strategy", result.Strategy.String(),
		"key", result.MatchedKey,
		"confidence", result.Confidence)

	return result, nil
}

// InterpretVoiceQuery extracts a landmark reference from free text,
// suggesting a nearby landmark when a coordinate is given.
func (e *Engine) InterpretVoiceQuery(ctx context.Context, text string, coordinate *core.Coordinate) (*Interpretation, error) {
	return e.interpreter.Interpret(ctx, text, coordinate)
}

// ClassifySemanticKey classifies a question against an explicit key
// vocabulary.
func (e *Engine) ClassifySemanticKey(ctx context.Context, question string, availableKeys []core.SemanticKey) (core.SemanticKey, float32, error) {
	return e.classifier.Classify(ctx, question, availableKeys)
}

// Introduce assembles a spoken welcome for a named landmark from its
// stored tiered responses.
func (e *Engine) Introduce(ctx context.Context, landmarkName string, interests []string, age int) (string, error) {
	landmark, err := e.landmarks.GetLandmarkByName(ctx, landmarkName)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", fmt.Errorf("%w: %q", core.ErrLandmarkNotFound, landmarkName)
		}
		return "", err
	}
	return AssembleIntroduction(landmark, interests, core.ClassifyAge(age)), nil
}

// resolveLandmark resolves the request's target landmark by id, name,
// or proximity, in that order.
func (e *Engine) resolveLandmark(ctx context.Context, request AskRequest) (*core.Landmark, error) {
	if request.LandmarkID != 0 {
		landmark, err := e.landmarks.GetLandmark(ctx, request.LandmarkID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, fmt.Errorf("%w: id %d", core.ErrLandmarkNotFound, request.LandmarkID)
			}
			return nil, err
		}
		return landmark, nil
	}

	if request.LandmarkName != "" {
		landmark, err := e.landmarks.GetLandmarkByName(ctx, request.LandmarkName)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, fmt.Errorf("%w: %q", core.ErrLandmarkNotFound, request.LandmarkName)
			}
			return nil, err
		}
		return landmark, nil
	}

	if request.Coordinate != nil && e.interpreter.index != nil {
		nearest, err := e.interpreter.index.Nearest(ctx, request.Coordinate.Latitude, request.Coordinate.Longitude)
		if err != nil {
			return nil, err
		}
		if nearest != nil {
			return nearest, nil
		}
	}

	return nil, fmt.Errorf("%w: no landmark reference in request", core.ErrNoMatchExtracted)
}

// ageGroupLabel buckets an age for prompt steering. Zero means the age
// is unknown.
func ageGroupLabel(age int) string {
	if age <= 0 {
		return ""
	}
	return core.ClassifyAge(age).String()
}
