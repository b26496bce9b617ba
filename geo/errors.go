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


package geo

import "errors"

var (
	// ErrLandmarkRepositoryRequired is returned when a landmark repository is not provided.
	ErrLandmarkRepositoryRequired = errors.New("landmark repository required")

	// ErrInvalidPrecision is returned when a geohash precision is out of range.
	ErrInvalidPrecision = errors.New("precision must be between 1 and 12")
)
