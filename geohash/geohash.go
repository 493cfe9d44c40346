// Copyright 2019-2024 Xu Ruibo (hustxurb@163.com) and Contributors
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

// Package geohash encodes latitude/longitude pairs into interleaved integer
// geohashes of 1..32 bits per axis, decodes them back into bounding boxes and
// computes neighbor cells directly on the integer representation.
//
// All functions are pure and safe for concurrent use.
package geohash

import "github.com/cockroachdb/errors"

const Version = "1.0.0"

const (
	LAT_MIN  = -90
	LAT_MAX  = 90
	LONG_MIN = -180
	LONG_MAX = 180

	MinStep = 1
	MaxStep = 32
)

var (
	LatRange  = Range{Max: LAT_MAX, Min: LAT_MIN}
	LongRange = Range{Max: LONG_MAX, Min: LONG_MIN}
)

// Encode encodes a coordinate on the full [-90, 90] x [-180, 180] grid.
// The same step must be passed to Decode and Neighbor to use the result.
// step is a uint8: callers holding a wider integer must range check it before
// converting, since 256 and above wrap into [0, 255].
func Encode(latitude, longitude float64, step uint8) (uint64, error) {
	hash, err := EncodeWithRange(LatRange, LongRange, latitude, longitude, step)
	if err != nil {
		return 0, err
	}
	return hash.Bits, nil
}

// EncodeWithRange encodes a coordinate on the grid spanned by latRange and longRange.
func EncodeWithRange(
	latRange, longRange Range,
	latitude, longitude float64,
	step uint8) (HashBits, error) {

	hash := HashBits{}

	if step < MinStep || step > MaxStep {
		return hash, errors.Wrapf(ErrStepOutOfRange, "step %d not in [%d, %d]", step, MinStep, MaxStep)
	}

	if !latRange.valid() {
		return hash, errors.Wrapf(ErrInvalidRange, "latitude range [%v, %v]", latRange.Min, latRange.Max)
	}
	if !longRange.valid() {
		return hash, errors.Wrapf(ErrInvalidRange, "longitude range [%v, %v]", longRange.Min, longRange.Max)
	}

	if !latRange.Contains(latitude) {
		return hash, errors.Wrapf(ErrLatitudeOutOfRange,
			"latitude %v not in [%v, %v]", latitude, latRange.Min, latRange.Max)
	}
	if !longRange.Contains(longitude) {
		return hash, errors.Wrapf(ErrLongitudeOutOfRange,
			"longitude %v not in [%v, %v]", longitude, longRange.Min, longRange.Max)
	}

	hash.Bits = interleave64(
		quantize(latRange, latitude, step),
		quantize(longRange, longitude, step))
	hash.Step = step
	return hash, nil
}

// quantize maps v in r to a cell index in [0, 2^step - 1].
func quantize(r Range, v float64, step uint8) uint32 {
	offset := (v - r.Min) / r.Scale()
	offset *= float64(uint64(1) << step)

	idx := uint64(offset)
	if top := uint64(1)<<step - 1; idx > top {
		idx = top
	}
	return uint32(idx)
}

// Decode returns the cell that bits denotes on the full grid.
func Decode(bits uint64, step uint8) BoundingBox {
	return DecodeWithRange(LatRange, LongRange, HashBits{Bits: bits, Step: step})
}

// DecodeWithRange decodes hash on the grid spanned by latRange and longRange.
// Steps above MaxStep decode as MaxStep.
func DecodeWithRange(latRange, longRange Range, hash HashBits) BoundingBox {
	latScale := latRange.Scale()
	longScale := longRange.Scale()

	step := hash.Step
	if step > MaxStep {
		step = MaxStep
	}
	ilato, ilono := deinterleave64(hash.Bits & stepMask(step))

	var x = float64(uint64(1) << step)

	// explicit float64 conversions forbid fused multiply-add
	box := BoundingBox{}
	box.MinLatitude = latRange.Min + float64((float64(ilato)/x)*latScale)
	box.MaxLatitude = latRange.Min + float64(((float64(ilato)+1)/x)*latScale)
	box.MinLongitude = longRange.Min + float64((float64(ilono)/x)*longScale)
	box.MaxLongitude = longRange.Min + float64(((float64(ilono)+1)/x)*longScale)

	box.Latitude = (box.MinLatitude + box.MaxLatitude) / 2
	box.Longitude = (box.MinLongitude + box.MaxLongitude) / 2

	return box
}

// Center returns the center of the cell on the full grid as (latitude, longitude).
func Center(bits uint64, step uint8) (float64, float64) {
	box := Decode(bits, step)
	return box.Latitude, box.Longitude
}
