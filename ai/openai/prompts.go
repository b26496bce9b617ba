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


package openai

import (
	"fmt"
	"strings"

	"github.com/roamly/waypoint/ai"
)

const generatorSystemPrompt = "You are a friendly and knowledgeable travel guide."

// buildAnswerPrompt renders the user prompt for an answer generation
// request. The visitor fields are optional; each adds one line of
// steering when present.
func buildAnswerPrompt(request ai.GenerationRequest) string {
	var sb strings.Builder

	location := request.LandmarkName
	if request.City != "" {
		location += " in " + request.City
	}
	if request.Country != "" {
		location += ", " + request.Country
	}

	sb.WriteString("You are a knowledgeable local tour guide. A traveler")
	if request.VisitorCountry != "" {
		fmt.Fprintf(&sb, " from %s", request.VisitorCountry)
	}
	if request.Interest != "" {
		fmt.Fprintf(&sb, " who enjoys %s", request.Interest)
	}
	fmt.Fprintf(&sb, " is asking about %s.\n\n", location)

	fmt.Fprintf(&sb, "Question: %s\n\n", request.Question)

	sb.WriteString("Please provide a helpful, engaging response that's:\n")
	sb.WriteString("- Accurate and informative\n")
	if request.Interest != "" {
		fmt.Fprintf(&sb, "- Tailored to someone interested in %s\n", request.Interest)
	}
	sb.WriteString("- Friendly and conversational\n")
	sb.WriteString("- Under 200 words\n")
	sb.WriteString("- Easy to read out loud\n")

	if request.GuidanceTopic != "" {
		fmt.Fprintf(&sb, "\nFocus the answer on the landmark's %s.\n",
			describeTopic(request.GuidanceTopic))
	}

	switch request.AgeGroup {
	case "young":
		sb.WriteString("\nKeep it short and punchy for a young audience.\n")
	case "middleage":
		sb.WriteString("\nWrite a medium-length response.\n")
	case "old":
		sb.WriteString("\nTake your time and include the richer historical detail.\n")
	}

	return sb.String()
}

// describeTopic turns a dotted topic key like "architecture.style" into
// prompt-friendly prose ("architecture, specifically its style").
func describeTopic(topic string) string {
	category, subcategory, found := strings.Cut(topic, ".")
	if !found || subcategory == "" || subcategory == "general" {
		return category
	}
	return fmt.Sprintf("%s, specifically its %s", category, subcategory)
}
