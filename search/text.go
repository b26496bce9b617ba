package search

import "strings"

// stopWords are skipped when checking for verbatim matches. Question
// words are included since queries here are questions.
var stopWords = makeWordSet(
	"the", "a", "an", "be", "is", "are", "was", "to", "of", "and",
	"in", "that", "have", "it", "for", "not", "on", "with", "as",
	"you", "do", "at", "this", "but", "by", "from",
	"what", "when", "where", "who", "how", "why",
)

const punctuation = ".,!?;:'\"-()[]{}"

func makeWordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, word := range words {
		set[word] = true
	}
	return set
}

// tokenizeAndFilter lowercases, trims punctuation, and drops stop words.
func tokenizeAndFilter(text string) []string {
	words := strings.Fields(text)
	filtered := make([]string, 0, len(words))

	for _, word := range words {
		cleaned := strings.ToLower(strings.Trim(word, punctuation))
		if cleaned != "" && !stopWords[cleaned] {
			filtered = append(filtered, cleaned)
		}
	}

	return filtered
}

// containsAllQueryWords reports whether every filtered query word
// appears in the document. A query of only stop words matches nothing.
func containsAllQueryWords(document, query string) bool {
	queryWords := tokenizeAndFilter(query)
	if len(queryWords) == 0 {
		return false
	}

	docWords := makeWordSet(tokenizeAndFilter(document)...)
	for _, word := range queryWords {
		if !docWords[word] {
			return false
		}
	}

	return true
}
