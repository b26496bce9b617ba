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


package storage

import (
	"github.com/roamly/waypoint/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	var id core.ID
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalLandmark serializes a Landmark to bytes.
func MarshalLandmark(landmark *core.Landmark) []byte {
	buf := make([]byte, core.LandmarkMUS.Size(*landmark))
	core.LandmarkMUS.Marshal(*landmark, buf)
	return buf
}

// UnmarshalLandmark deserializes a Landmark from bytes.
func UnmarshalLandmark(data []byte) (*core.Landmark, error) {
	landmark, _, err := core.LandmarkMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &landmark, nil
}

// MarshalQAPair serializes a QAPair to bytes.
func MarshalQAPair(pair *core.QAPair) []byte {
	buf := make([]byte, core.QAPairMUS.Size(*pair))
	core.QAPairMUS.Marshal(*pair, buf)
	return buf
}

// UnmarshalQAPair deserializes a QAPair from bytes.
func UnmarshalQAPair(data []byte) (*core.QAPair, error) {
	pair, _, err := core.QAPairMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &pair, nil
}

// MarshalFact serializes a Fact to bytes.
func MarshalFact(fact *core.Fact) []byte {
	buf := make([]byte, core.FactMUS.Size(*fact))
	core.FactMUS.Marshal(*fact, buf)
	return buf
}

// UnmarshalFact deserializes a Fact from bytes.
func UnmarshalFact(data []byte) (*core.Fact, error) {
	fact, _, err := core.FactMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &fact, nil
}
