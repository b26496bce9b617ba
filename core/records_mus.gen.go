// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	mapK1tnODZzyUAwBf3xG3ZMwwΞΞ   = ord.NewMapSer[SemanticKey, TieredResponse](SemanticKeyMUS, TieredResponseMUS)
	sliceaΣgUzjlij3FhNvqTa2dnAAΞΞ = ord.NewSliceSer[float32](varint.Float32)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var SemanticKeyMUS = semanticKeyMUS{}

type semanticKeyMUS struct{}

func (s semanticKeyMUS) Marshal(v SemanticKey, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s semanticKeyMUS) Unmarshal(bs []byte) (v SemanticKey, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = SemanticKey(tmp)
	return
}

func (s semanticKeyMUS) Size(v SemanticKey) (size int) {
	return ord.String.Size(string(v))
}

func (s semanticKeyMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var CoordinateMUS = coordinateMUS{}

type coordinateMUS struct{}

func (s coordinateMUS) Marshal(v Coordinate, bs []byte) (n int) {
	n = varint.Float64.Marshal(v.Latitude, bs)
	return n + varint.Float64.Marshal(v.Longitude, bs[n:])
}

func (s coordinateMUS) Unmarshal(bs []byte) (v Coordinate, n int, err error) {
	v.Latitude, n, err = varint.Float64.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Longitude, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	return
}

func (s coordinateMUS) Size(v Coordinate) (size int) {
	size = varint.Float64.Size(v.Latitude)
	return size + varint.Float64.Size(v.Longitude)
}

func (s coordinateMUS) Skip(bs []byte) (n int, err error) {
	n, err = varint.Float64.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	return
}

var TieredResponseMUS = tieredResponseMUS{}

type tieredResponseMUS struct{}

func (s tieredResponseMUS) Marshal(v TieredResponse, bs []byte) (n int) {
	n = ord.String.Marshal(v.Small, bs)
	n += ord.String.Marshal(v.Middle, bs[n:])
	return n + ord.String.Marshal(v.Large, bs[n:])
}

func (s tieredResponseMUS) Unmarshal(bs []byte) (v TieredResponse, n int, err error) {
	v.Small, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Middle, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Large, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s tieredResponseMUS) Size(v TieredResponse) (size int) {
	size = ord.String.Size(v.Small)
	size += ord.String.Size(v.Middle)
	return size + ord.String.Size(v.Large)
}

func (s tieredResponseMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var LandmarkMUS = landmarkMUS{}

type landmarkMUS struct{}

func (s landmarkMUS) Marshal(v Landmark, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += CoordinateMUS.Marshal(v.Coordinate, bs[n:])
	n += ord.String.Marshal(v.City, bs[n:])
	n += ord.String.Marshal(v.Country, bs[n:])
	n += ord.String.Marshal(v.Geohash, bs[n:])
	n += mapK1tnODZzyUAwBf3xG3ZMwwΞΞ.Marshal(v.Responses, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s landmarkMUS) Unmarshal(bs []byte) (v Landmark, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Coordinate, n1, err = CoordinateMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.City, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Country, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Geohash, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Responses, n1, err = mapK1tnODZzyUAwBf3xG3ZMwwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s landmarkMUS) Size(v Landmark) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Name)
	size += CoordinateMUS.Size(v.Coordinate)
	size += ord.String.Size(v.City)
	size += ord.String.Size(v.Country)
	size += ord.String.Size(v.Geohash)
	size += mapK1tnODZzyUAwBf3xG3ZMwwΞΞ.Size(v.Responses)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s landmarkMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = CoordinateMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = mapK1tnODZzyUAwBf3xG3ZMwwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var QAPairMUS = qAPairMUS{}

type qAPairMUS struct{}

func (s qAPairMUS) Marshal(v QAPair, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += IDMUS.Marshal(v.LandmarkId, bs[n:])
	n += ord.String.Marshal(v.Question, bs[n:])
	n += ord.String.Marshal(v.Answer, bs[n:])
	n += SemanticKeyMUS.Marshal(v.Key, bs[n:])
	n += sliceaΣgUzjlij3FhNvqTa2dnAAΞΞ.Marshal(v.Vector, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
}

func (s qAPairMUS) Unmarshal(bs []byte) (v QAPair, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.LandmarkId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Question, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Answer, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Key, n1, err = SemanticKeyMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = sliceaΣgUzjlij3FhNvqTa2dnAAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s qAPairMUS) Size(v QAPair) (size int) {
	size = IDMUS.Size(v.Id)
	size += IDMUS.Size(v.LandmarkId)
	size += ord.String.Size(v.Question)
	size += ord.String.Size(v.Answer)
	size += SemanticKeyMUS.Size(v.Key)
	size += sliceaΣgUzjlij3FhNvqTa2dnAAΞΞ.Size(v.Vector)
	return size + raw.TimeUnixMicro.Size(v.InsertedAt)
}

func (s qAPairMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = SemanticKeyMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceaΣgUzjlij3FhNvqTa2dnAAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var FactMUS = factMUS{}

type factMUS struct{}

func (s factMUS) Marshal(v Fact, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += IDMUS.Marshal(v.LandmarkId, bs[n:])
	n += ord.String.Marshal(v.FactKey, bs[n:])
	n += ord.String.Marshal(v.Text, bs[n:])
	n += sliceaΣgUzjlij3FhNvqTa2dnAAΞΞ.Marshal(v.Vector, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
}

func (s factMUS) Unmarshal(bs []byte) (v Fact, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.LandmarkId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.FactKey, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = sliceaΣgUzjlij3FhNvqTa2dnAAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s factMUS) Size(v Fact) (size int) {
	size = IDMUS.Size(v.Id)
	size += IDMUS.Size(v.LandmarkId)
	size += ord.String.Size(v.FactKey)
	size += ord.String.Size(v.Text)
	size += sliceaΣgUzjlij3FhNvqTa2dnAAΞΞ.Size(v.Vector)
	return size + raw.TimeUnixMicro.Size(v.InsertedAt)
}

func (s factMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceaΣgUzjlij3FhNvqTa2dnAAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
