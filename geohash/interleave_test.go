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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveInterleave moves one bit at a time.
func naiveInterleave(lat, long uint32, step uint8) uint64 {
	var v uint64
	for i := uint(0); i < uint(step); i++ {
		v |= uint64(lat>>i&1) << (2 * i)
		v |= uint64(long>>i&1) << (2*i + 1)
	}
	return v
}

func TestInterleaveKnownValues(t *testing.T) {
	assert.Equal(t, uint64(825366), Interleave(582, 673, 10))
	assert.Equal(t, uint64(1), Interleave(1, 0, 1))
	assert.Equal(t, uint64(2), Interleave(0, 1, 1))
	assert.Equal(t, uint64(3), Interleave(1, 1, 1))
	assert.Equal(t, ^uint64(0), Interleave(^uint32(0), ^uint32(0), 32))
	assert.Equal(t, evenBits, Interleave(^uint32(0), 0, 32))
	assert.Equal(t, oddBits, Interleave(0, ^uint32(0), 32))

	lat, long := Deinterleave(825366, 10)
	assert.Equal(t, uint32(582), lat)
	assert.Equal(t, uint32(673), long)
}

func TestInterleaveDropsBitsAboveStep(t *testing.T) {
	assert.Equal(t, Interleave(5, 6, 3), Interleave(5|1<<3, 6|1<<7, 3))
	assert.Equal(t, uint64(0), Interleave(1<<10, 1<<10, 10)>>20)

	lat, long := Deinterleave(Interleave(5, 6, 3)|1<<6|1<<9, 3)
	assert.Equal(t, uint32(5), lat)
	assert.Equal(t, uint32(6), long)
}

func TestInterleaveInverse(t *testing.T) {
	r := &sampler{state: 42}
	for step := uint8(MinStep); step <= MaxStep; step++ {
		m := axisMask(step)
		cases := [][2]uint32{{0, 0}, {m, m}, {m, 0}, {0, m}, {1, m - 1}}
		for i := 0; i < 200; i++ {
			cases = append(cases, [2]uint32{uint32(r.next()) & m, uint32(r.next()) & m})
		}
		for _, c := range cases {
			bits := Interleave(c[0], c[1], step)
			require.Equal(t, naiveInterleave(c[0], c[1], step), bits, "step %d", step)
			require.Zero(t, bits&^stepMask(step), "step %d", step)

			lat, long := Deinterleave(bits, step)
			require.Equal(t, c[0], lat, "step %d", step)
			require.Equal(t, c[1], long, "step %d", step)
		}
	}
}

func TestStepMask(t *testing.T) {
	assert.Equal(t, uint64(3), stepMask(1))
	assert.Equal(t, uint64(1)<<20-1, stepMask(10))
	assert.Equal(t, ^uint64(0), stepMask(32))
	assert.Equal(t, uint32(1), axisMask(1))
	assert.Equal(t, ^uint32(0), axisMask(32))
}

func BenchmarkInterleave(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Interleave(uint32(i), uint32(i>>3), 26)
	}
}

func BenchmarkDeinterleave(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Deinterleave(uint64(i)*2654435761, 26)
	}
}
