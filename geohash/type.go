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

package geohash

import "math"

// Range bounds one coordinate axis.
type Range struct {
	Max float64
	Min float64
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) Scale() float64 {
	return r.Max - r.Min
}

func (r Range) valid() bool {
	return !math.IsNaN(r.Min) && !math.IsNaN(r.Max) &&
		!math.IsInf(r.Min, 0) && !math.IsInf(r.Max, 0) &&
		r.Min < r.Max
}

// HashBits is an encoded cell. Only the low 2*Step bits of Bits are used:
// bit 2*i holds latitude bit i and bit 2*i+1 holds longitude bit i.
type HashBits struct {
	Bits uint64
	Step uint8
}

func (hash HashBits) IsZero() bool {
	return hash.Bits == 0 && hash.Step == 0
}

// Valid reports whether Step is a legal precision and Bits fits in 2*Step bits.
func (hash HashBits) Valid() bool {
	if hash.Step < MinStep || hash.Step > MaxStep {
		return false
	}
	return hash.Bits&^stepMask(hash.Step) == 0
}

func (hash *HashBits) Clean() {
	hash.Bits = 0
	hash.Step = 0
}

// BoundingBox is the cell a HashBits denotes. Latitude and Longitude are
// the center of the box.
type BoundingBox struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	MinLatitude  float64 `json:"min_latitude"`
	MaxLatitude  float64 `json:"max_latitude"`
	MinLongitude float64 `json:"min_longitude"`
	MaxLongitude float64 `json:"max_longitude"`
}

// Width is the longitude extent of the box.
func (b BoundingBox) Width() float64 {
	return b.MaxLongitude - b.MinLongitude
}

// Height is the latitude extent of the box.
func (b BoundingBox) Height() float64 {
	return b.MaxLatitude - b.MinLatitude
}

func (b BoundingBox) Contains(latitude, longitude float64) bool {
	return latitude >= b.MinLatitude && latitude <= b.MaxLatitude &&
		longitude >= b.MinLongitude && longitude <= b.MaxLongitude
}

type Neighbors struct {
	North     HashBits
	East      HashBits
	West      HashBits
	South     HashBits
	SouthWest HashBits
	SouthEast HashBits
	NorthWest HashBits
	NorthEast HashBits
}

// Get returns the neighbor in direction d, or a zero HashBits for an
// unknown direction.
func (n *Neighbors) Get(d Direction) HashBits {
	switch d {
	case North:
		return n.North
	case East:
		return n.East
	case West:
		return n.West
	case South:
		return n.South
	case SouthWest:
		return n.SouthWest
	case SouthEast:
		return n.SouthEast
	case NorthWest:
		return n.NorthWest
	case NorthEast:
		return n.NorthEast
	}
	return HashBits{}
}

func (n *Neighbors) set(d Direction, hash HashBits) {
	switch d {
	case North:
		n.North = hash
	case East:
		n.East = hash
	case West:
		n.West = hash
	case South:
		n.South = hash
	case SouthWest:
		n.SouthWest = hash
	case SouthEast:
		n.SouthEast = hash
	case NorthWest:
		n.NorthWest = hash
	case NorthEast:
		n.NorthEast = hash
	}
}
