package answer

import (
	"slices"
	"strings"

	"github.com/roamly/waypoint/core"
)

// interestPhrases maps a visitor interest to a welcome-line hook.
// Checked in order; the first interest with a phrase wins.
var interestPhrases = []struct {
	interests []string
	phrase    string
}{
	{[]string{"Movies", "TV"}, "If you're into films, you'll especially love this spot! "},
	{[]string{"Photography"}, "It's also a favorite for photographers. "},
	{[]string{"History"}, "Its long history makes it a must-see. "},
}

// AssembleIntroduction builds a spoken welcome for a landmark from its
// stored tiered responses: a greeting, an interest hook when one of the
// visitor's interests has one, then the landmark's facts at the tier
// matching the visitor's age bucket, in key order.
func AssembleIntroduction(landmark *core.Landmark, interests []string, ageGroup core.AgeGroup) string {
	if landmark == nil {
		return ""
	}

	tier := core.TierForAgeGroup(ageGroup)

	var sb strings.Builder
	sb.WriteString("Hey there! Welcome to the ")
	sb.WriteString(landmark.Name)
	sb.WriteString(". ")

	for _, ip := range interestPhrases {
		matched := false
		for _, interest := range ip.interests {
			if slices.Contains(interests, interest) {
				matched = true
				break
			}
		}
		if matched {
			sb.WriteString(ip.phrase)
			break
		}
	}

	for _, key := range landmark.AvailableKeys() {
		text := landmark.Responses[key].ForTier(tier)
		if text == "" {
			continue
		}
		sb.WriteString(text)
		sb.WriteString(" ")
	}

	return strings.TrimSpace(sb.String())
}
