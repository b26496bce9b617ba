// Package ingestion provides batch seeding of landmark knowledge.
//
// The Pipeline type embeds and stores curated QA pairs and facts for a
// landmark, including:
//   - Batch embedding of seed questions and fact texts
//   - Normalizing vectors before storage
//   - Writing pairs and facts through the repositories
//
// QA and fact batches are processed concurrently using worker pools to
// maximize throughput against the embedding service. Seeding is
// synchronous from the caller's point of view: Seed returns once every
// batch has been stored, reporting counts and any batch failures.
package ingestion
