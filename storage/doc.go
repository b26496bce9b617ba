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


// Package storage provides the storage abstraction layer for waypoint.
//
// This package defines repository interfaces that decouple storage
// implementation from the retrieval engine. It allows different storage
// backends (BadgerDB, in-memory, etc.) to be used interchangeably.
//
// # Repositories
//
//   - LandmarkRepository: landmark records plus the normalized-name and
//     geohash-cell indexes used for lookup and proximity filtering
//   - QARepository: cached question/answer pairs with landmark-scoped
//     vector similarity search
//   - FactRepository: short canonical facts with the same scoping rules
//
// Landmark scoping is an invariant of the data model: every QA pair and
// fact belongs to exactly one landmark, and similarity search restricts
// its candidate set to that landmark before scoring.
//
// # Constructor Return Type Pattern
//
// Public constructors return interface types to enforce abstraction:
//
//	repo, err := badger.NewLandmarkRepository(backend)  // storage.LandmarkRepository
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines. The backing store gives
// last-writer-wins semantics for independent insertions; duplicate
// learned entries are expected and harmless.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation and
// timeout support.
package storage
