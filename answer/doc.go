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


// Package answer implements the retrieval and answer-selection
// pipeline for landmark questions.
//
// The pipeline runs in stages: the Interpreter extracts a landmark
// reference from free text (or suggests a nearby landmark from a
// coordinate), the semantic classifier assigns a topic key, the QA and
// fact matchers search the landmark's cached content concurrently, and
// the Selector commits to the first strategy whose confidence threshold
// is met, in strict priority order:
//
//  1. qa_match: a cached QA pair answers verbatim
//  2. fact_match: a cached fact answers
//  3. semantic_generate: generation steered by the classified key
//  4. generic_generate: generation with no topical guidance
//
// Stage failures degrade down the chain exactly like low confidence;
// only generation failures surface as errors. After a generated answer
// the Learner writes the pair back so the next similar question is a
// qa_match. The Engine type ties the stages together behind
// AnswerQuestion, InterpretVoiceQuery, ClassifySemanticKey, and
// Introduce.
package answer
