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

import "github.com/cockroachdb/errors"

// Neighbor returns the cell next to bits in direction d.
func Neighbor(bits uint64, d Direction, step uint8) (uint64, error) {
	hash, err := GetNeighbor(HashBits{Bits: bits, Step: step}, d)
	if err != nil {
		return 0, err
	}
	return hash.Bits, nil
}

// NeighborsOf returns the 8 cells around bits.
func NeighborsOf(bits uint64, step uint8) Neighbors {
	return GetNeighbors(HashBits{Bits: bits, Step: step})
}

func GetNeighbor(hash HashBits, d Direction) (HashBits, error) {
	if !d.Valid() {
		return HashBits{}, errors.Wrapf(ErrInvalidDirection, "direction %d", int(d))
	}
	long, lat := d.Offset()
	return Move(hash, long, lat), nil
}

func GetNeighbors(hash HashBits) Neighbors {
	var neighbors Neighbors
	for _, d := range Directions {
		long, lat := d.Offset()
		neighbors.set(d, Move(hash, long, lat))
	}
	return neighbors
}

// Move shifts hash by one cell along each axis whose delta is non-zero; the
// sign of the delta picks the direction. Moving past the edge of the grid
// wraps around modulo 2^step within that axis.
func Move(hash HashBits, dLong, dLat int8) HashBits {
	moveX(&hash, dLong)
	moveY(&hash, dLat)
	return hash
}

// moveX steps the longitude bits (odd positions).
func moveX(hash *HashBits, d int8) *HashBits {
	if d == 0 {
		return hash
	}

	var x uint64 = hash.Bits & oddBits
	var y uint64 = hash.Bits & evenBits

	// zz forces the latitude positions to 1 so the carry or borrow skips them.
	var zz uint64 = evenBits & stepMask(hash.Step)

	if d > 0 {
		x = x + (zz + 1)
	} else {
		x = x | zz
		x = x - (zz + 1)
	}

	x &= oddBits & stepMask(hash.Step)
	hash.Bits = x | (y & stepMask(hash.Step))
	return hash
}

// moveY steps the latitude bits (even positions).
func moveY(hash *HashBits, d int8) *HashBits {
	if d == 0 {
		return hash
	}

	var x uint64 = hash.Bits & oddBits
	var y uint64 = hash.Bits & evenBits

	var zz uint64 = oddBits & stepMask(hash.Step)

	if d > 0 {
		y = y + (zz + 1)
	} else {
		y = y | zz
		y = y - (zz + 1)
	}

	y &= evenBits & stepMask(hash.Step)
	hash.Bits = (x & stepMask(hash.Step)) | y
	return hash
}
