// Package reembed provides functionality for reembedding stored QA
// pairs and facts with new or updated embedding models.
//
// Stored vectors are only comparable when every entry was embedded by
// the same model, so switching models requires rewriting all of them.
// This package walks every landmark's QA pairs and facts in batches,
// regenerates the vectors, and updates the records in place, with
// progress tracking and retry logic for the embedding service.
package reembed
