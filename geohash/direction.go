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

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

type Direction int

const (
	North Direction = iota
	East
	West
	South
	SouthWest
	SouthEast
	NorthWest
	NorthEast
)

var Directions = [8]Direction{North, East, West, South, SouthWest, SouthEast, NorthWest, NorthEast}

type offset struct {
	long int8
	lat  int8
}

var directionOffsets = [8]offset{
	North:     {long: 0, lat: 1},
	East:      {long: 1, lat: 0},
	West:      {long: -1, lat: 0},
	South:     {long: 0, lat: -1},
	SouthWest: {long: -1, lat: -1},
	SouthEast: {long: 1, lat: -1},
	NorthWest: {long: -1, lat: 1},
	NorthEast: {long: 1, lat: 1},
}

var directionNames = [8]string{
	North:     "north",
	East:      "east",
	West:      "west",
	South:     "south",
	SouthWest: "south_west",
	SouthEast: "south_east",
	NorthWest: "north_west",
	NorthEast: "north_east",
}

var directionAliases = map[string]Direction{
	"n":  North,
	"e":  East,
	"w":  West,
	"s":  South,
	"sw": SouthWest,
	"se": SouthEast,
	"nw": NorthWest,
	"ne": NorthEast,
}

func (d Direction) Valid() bool {
	return d >= North && d <= NorthEast
}

// Offset returns the one-step move of d as (dLong, dLat).
func (d Direction) Offset() (int8, int8) {
	if !d.Valid() {
		return 0, 0
	}
	o := directionOffsets[d]
	return o.long, o.lat
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case SouthWest:
		return NorthEast
	case NorthEast:
		return SouthWest
	case SouthEast:
		return NorthWest
	case NorthWest:
		return SouthEast
	}
	return d
}

func (d Direction) String() string {
	if !d.Valid() {
		return "direction(" + strconv.Itoa(int(d)) + ")"
	}
	return directionNames[d]
}

// ParseDirection accepts the names returned by String, the short compass
// forms and the numeric values 0..7, case-insensitively. "south-west" and
// "southwest" are also accepted.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if d, ok := directionAliases[name]; ok {
		return d, nil
	}
	if n, err := strconv.Atoi(name); err == nil {
		if d := Direction(n); d.Valid() {
			return d, nil
		}
		return 0, errors.Wrapf(ErrInvalidDirection, "direction %d", n)
	}
	name = strings.ReplaceAll(name, "-", "_")
	for i, n := range directionNames {
		if name == n || name == strings.ReplaceAll(n, "_", "") {
			return Direction(i), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidDirection, "direction %q", s)
}

func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, errors.Wrapf(ErrInvalidDirection, "direction %d", int(d))
	}
	return []byte(directionNames[d]), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
