package semantic

import "github.com/roamly/waypoint/core"

// DefaultExamples maps each semantic key to labeled example phrasings.
// Classification embeds these and compares the question against them,
// so adding a phrasing here is all it takes to teach a new wording.
var DefaultExamples = map[core.SemanticKey][]string{
	"origin.general": {
		"how did it come to be",
		"when was it built",
		"how was it created",
		"what's the history",
		"origin story",
	},
	"origin.name": {
		"name meaning",
		"why called",
		"naming",
		"name origin",
		"what does the name mean",
	},
	"architecture.style": {
		"what style is it",
		"architecture",
		"design",
		"how does it look",
		"architectural features",
		"architectural style",
	},
	"height.general": {
		"how tall",
		"height",
		"how high",
		"tallness",
		"elevation",
	},
	"experience.vibe": {
		"what's the vibe",
		"atmosphere",
		"feel",
		"mood",
		"what's it like",
	},
	"access.cost": {
		"how much",
		"cost",
		"price",
		"ticket",
		"entry fee",
	},
	"access.hours": {
		"hours",
		"opening times",
		"when open",
		"schedule",
	},
	"culture.symbolism": {
		"symbols",
		"meaning",
		"symbolism",
		"cultural significance",
	},
	"myths.legends": {
		"myths",
		"legends",
		"stories",
		"folklore",
		"tales",
	},
	"access.crowds": {
		"crowds",
		"busy",
		"crowded",
		"people",
		"visitors",
	},
}
