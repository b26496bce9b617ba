// Package semantic classifies visitor questions into the dotted
// semantic keys (category.subcategory) that landmark responses are
// stored under.
//
// Classification is embedding-based: each key carries a set of example
// phrasings (see DefaultExamples), the classifier embeds them once and
// caches the vectors, then scores an incoming question by its best
// cosine similarity against any example of any available key. Scores
// below the confidence floor leave the question unclassified rather
// than guessing.
package semantic
