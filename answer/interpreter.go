package answer

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/roamly/waypoint/core"
	"github.com/roamly/waypoint/geo"
)

// InterpretationType names the outcome of interpreting a voice query.
type InterpretationType string

const (
	// InterpretationGeneral means a landmark reference was extracted
	// from the text.
	InterpretationGeneral InterpretationType = "general"

	// InterpretationSuggestion means no reference was extracted but a
	// nearby landmark is proposed for confirmation.
	InterpretationSuggestion InterpretationType = "suggestion"

	// InterpretationNoMatch means no landmark could be found or inferred.
	InterpretationNoMatch InterpretationType = "no_match"
)

// Interpretation is the result of interpreting a free-text query.
type Interpretation struct {
	Type InterpretationType

	// LandmarkName is the extracted or suggested landmark reference.
	// Empty for no_match.
	LandmarkName string

	// Landmark is the suggested landmark for suggestion results.
	Landmark *core.Landmark

	// Prompt is a user-facing follow-up: a confirmation question for
	// suggestions, example phrasing for no_match.
	Prompt string
}

// queryPattern pairs a pattern with the capture group holding the
// landmark reference. Evaluated in order; first capturing match wins.
// Keeping this as data means new phrasings are additive.
type queryPattern struct {
	pattern *regexp.Regexp
	group   int
}

var queryPatterns = []queryPattern{
	{regexp.MustCompile(`(?i)tell me about (?:the )?(.+)`), 1},
	{regexp.MustCompile(`(?i)what(?:'s| is) (?:the )?(.+)`), 1},
	{regexp.MustCompile(`(?i)about (?:the )?(.+)`), 1},
}

// Interpreter extracts a landmark reference from free text, falling
// back to a proximity suggestion when a coordinate is available.
// Pattern matching is a cheap filter before the semantic pipeline runs;
// it stays conservative to avoid false landmark commitments.
type Interpreter struct {
	index  *geo.Index
	logger *slog.Logger
}

// NewInterpreter creates an interpreter. The proximity index may be nil,
// in which case coordinate fallback is disabled.
func NewInterpreter(index *geo.Index) *Interpreter {
	return &Interpreter{
		index:  index,
		logger: slog.Default().With("component", "interpreter"),
	}
}

// Interpret resolves free text into a landmark reference. A coordinate,
// when given, enables the proximity suggestion fallback.
func (i *Interpreter) Interpret(ctx context.Context, text string, coordinate *core.Coordinate) (*Interpretation, error) {
	for _, qp := range queryPatterns {
		match := qp.pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		reference := strings.TrimSpace(strings.Trim(strings.TrimSpace(match[qp.group]), "?.!,"))
		if reference == "" {
			continue
		}

		i.logger.Debug("extracted landmark reference", "reference", reference)
		return &Interpretation{
			Type:         InterpretationGeneral,
			LandmarkName: reference,
		}, nil
	}

	if coordinate != nil && i.index != nil {
		nearest, err := i.index.Nearest(ctx, coordinate.Latitude, coordinate.Longitude)
		if err != nil {
			return nil, err
		}
		if nearest != nil {
			return &Interpretation{
				Type:         InterpretationSuggestion,
				LandmarkName: nearest.Name,
				Landmark:     nearest,
				Prompt:       fmt.Sprintf("You're near %s. Would you like to hear about it?", nearest.Name),
			}, nil
		}
	}

	return &Interpretation{
		Type:   InterpretationNoMatch,
		Prompt: `Try asking about a landmark by name, for example "Tell me about the Eiffel Tower".`,
	}, nil
}
