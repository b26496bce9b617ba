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


package badger

import "github.com/roamly/waypoint/storage"

// NewMemoryRepositories creates in-memory landmark, QA, and fact
// repositories for testing. Returns landmarkRepo, qaRepo, factRepo,
// backend, and error. Caller must close all repos and the backend when done.
func NewMemoryRepositories() (storage.LandmarkRepository, storage.QARepository, storage.FactRepository, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	landmarkRepo, err := NewLandmarkRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, nil, err
	}

	qaRepo, err := NewQARepository(backend)
	if err != nil {
		landmarkRepo.Close()
		backend.Close()
		return nil, nil, nil, nil, err
	}

	factRepo, err := NewFactRepository(backend)
	if err != nil {
		qaRepo.Close()
		landmarkRepo.Close()
		backend.Close()
		return nil, nil, nil, nil, err
	}

	return landmarkRepo, qaRepo, factRepo, backend, nil
}
