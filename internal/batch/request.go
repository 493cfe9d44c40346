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

package batch

import (
	"github.com/cockroachdb/errors"
	"github.com/zuoyebang/geohashint/butils/json"
	"github.com/zuoyebang/geohashint/geohash"
	"github.com/zuoyebang/geohashint/internal/errn"
)

const (
	OpEncode    = "encode"
	OpDecode    = "decode"
	OpNeighbor  = "neighbor"
	OpNeighbors = "neighbors"
)

var knownOps = map[string]bool{
	OpEncode:    true,
	OpDecode:    true,
	OpNeighbor:  true,
	OpNeighbors: true,
}

type Request struct {
	Op        string   `json:"op"`
	Lat       *float64 `json:"lat,omitempty"`
	Lng       *float64 `json:"lng,omitempty"`
	Value     *uint64  `json:"value,omitempty"`
	Direction string   `json:"direction,omitempty"`
	Steps     *int     `json:"steps,omitempty"`
}

type Response struct {
	Seq       uint64               `json:"seq"`
	Value     *uint64              `json:"value,omitempty"`
	Box       *geohash.BoundingBox `json:"box,omitempty"`
	Neighbors *NeighborCells       `json:"neighbors,omitempty"`
	Error     string               `json:"error,omitempty"`

	op string
}

func (r *Response) Failed() bool {
	return r.Error != ""
}

type NeighborCells struct {
	North     uint64 `json:"north"`
	East      uint64 `json:"east"`
	West      uint64 `json:"west"`
	South     uint64 `json:"south"`
	SouthWest uint64 `json:"south_west"`
	SouthEast uint64 `json:"south_east"`
	NorthWest uint64 `json:"north_west"`
	NorthEast uint64 `json:"north_east"`
}

// NewNeighborCells flattens n into the wire form.
func NewNeighborCells(n geohash.Neighbors) *NeighborCells {
	return &NeighborCells{
		North:     n.North.Bits,
		East:      n.East.Bits,
		West:      n.West.Bits,
		South:     n.South.Bits,
		SouthWest: n.SouthWest.Bits,
		SouthEast: n.SouthEast.Bits,
		NorthWest: n.NorthWest.Bits,
		NorthEast: n.NorthEast.Bits,
	}
}

// evaluate never fails; problems are reported in Response.Error.
func evaluate(line []byte, defaultSteps uint8) *Response {
	res := &Response{}
	req := &Request{}
	if err := json.Unmarshal(line, req); err != nil {
		res.Error = "malformed request: " + err.Error()
		return res
	}
	res.op = req.Op
	if err := req.do(res, defaultSteps); err != nil {
		res.Error = err.Error()
	}
	return res
}

func (req *Request) steps(defaultSteps uint8) (uint8, error) {
	if req.Steps == nil {
		return defaultSteps, nil
	}
	s := *req.Steps
	if s < geohash.MinStep || s > geohash.MaxStep {
		return 0, errors.Wrapf(geohash.ErrStepOutOfRange, "steps %d", s)
	}
	return uint8(s), nil
}

func (req *Request) value() (uint64, error) {
	if req.Value == nil {
		return 0, errors.Wrapf(errn.ErrArgsLen, "%s needs value", req.Op)
	}
	return *req.Value, nil
}

func (req *Request) do(res *Response, defaultSteps uint8) error {
	if !knownOps[req.Op] {
		return errn.OpUnknownErr(req.Op)
	}
	step, err := req.steps(defaultSteps)
	if err != nil {
		return err
	}

	switch req.Op {
	case OpEncode:
		if req.Lat == nil || req.Lng == nil {
			return errors.Wrap(errn.ErrArgsLen, "encode needs lat and lng")
		}
		bits, err := geohash.Encode(*req.Lat, *req.Lng, step)
		if err != nil {
			return err
		}
		res.Value = &bits
	case OpDecode:
		bits, err := req.value()
		if err != nil {
			return err
		}
		box := geohash.Decode(bits, step)
		res.Box = &box
	case OpNeighbor:
		bits, err := req.value()
		if err != nil {
			return err
		}
		d, err := geohash.ParseDirection(req.Direction)
		if err != nil {
			return err
		}
		n, err := geohash.Neighbor(bits, d, step)
		if err != nil {
			return err
		}
		res.Value = &n
	case OpNeighbors:
		bits, err := req.value()
		if err != nil {
			return err
		}
		res.Neighbors = NewNeighborCells(geohash.NeighborsOf(bits, step))
	}
	return nil
}
