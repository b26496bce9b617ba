package answer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roamly/waypoint/core"
)

func introductionLandmark() *core.Landmark {
	return &core.Landmark{
		Name: "Hollywood Sign",
		Responses: map[core.SemanticKey]core.TieredResponse{
			"height.general": {
				Small:  "It's 45 feet tall.",
				Middle: "The letters stand 45 feet tall.",
				Large:  "Each of the letters stands about 45 feet tall on Mount Lee.",
			},
			"origin.general": {
				Small:  "Built in 1923.",
				Middle: "It went up in 1923 as a real estate ad.",
				Large:  "It went up in 1923 advertising the Hollywoodland development and was never meant to last.",
			},
		},
	}
}

func TestAssembleIntroduction(t *testing.T) {
	text := AssembleIntroduction(introductionLandmark(), nil, core.AgeGroupYoung)

	assert.Contains(t, text, "Hey there! Welcome to the Hollywood Sign.")
	// Young visitors get the small tier.
	assert.Contains(t, text, "It's 45 feet tall.")
	assert.Contains(t, text, "Built in 1923.")
	assert.NotContains(t, text, "Mount Lee")
}

func TestAssembleIntroductionTiers(t *testing.T) {
	middle := AssembleIntroduction(introductionLandmark(), nil, core.AgeGroupMiddle)
	assert.Contains(t, middle, "The letters stand 45 feet tall.")

	old := AssembleIntroduction(introductionLandmark(), nil, core.AgeGroupOld)
	assert.Contains(t, old, "Mount Lee")
}

func TestAssembleIntroductionInterestPhrase(t *testing.T) {
	t.Run("movies", func(t *testing.T) {
		text := AssembleIntroduction(introductionLandmark(), []string{"Running", "Movies"}, core.AgeGroupYoung)
		assert.Contains(t, text, "If you're into films")
	})

	t.Run("photography", func(t *testing.T) {
		text := AssembleIntroduction(introductionLandmark(), []string{"Photography"}, core.AgeGroupYoung)
		assert.Contains(t, text, "favorite for photographers")
	})

	t.Run("movies wins over history", func(t *testing.T) {
		text := AssembleIntroduction(introductionLandmark(), []string{"History", "TV"}, core.AgeGroupYoung)
		assert.Contains(t, text, "If you're into films")
		assert.NotContains(t, text, "must-see")
	})

	t.Run("no recognized interest", func(t *testing.T) {
		text := AssembleIntroduction(introductionLandmark(), []string{"Knitting"}, core.AgeGroupYoung)
		assert.NotContains(t, text, "films")
	})
}

func TestAssembleIntroductionNilLandmark(t *testing.T) {
	assert.Empty(t, AssembleIntroduction(nil, nil, core.AgeGroupYoung))
}
