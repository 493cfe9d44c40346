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

// From: https://graphics.stanford.edu/~seander/bithacks.html#InterleaveBMN
var (
	s = [6]uint32{0, 1, 2, 4, 8, 16}

	b = [6]uint64{
		0x5555555555555555,
		0x3333333333333333,
		0x0F0F0F0F0F0F0F0F,
		0x00FF00FF00FF00FF,
		0x0000FFFF0000FFFF,
		0x00000000FFFFFFFF,
	}
)

const (
	evenBits uint64 = 0x5555555555555555
	oddBits  uint64 = 0xaaaaaaaaaaaaaaaa
)

// stepMask selects the low 2*step bits.
func stepMask(step uint8) uint64 {
	if step >= MaxStep {
		return ^uint64(0)
	}
	return (uint64(1) << (2 * uint(step))) - 1
}

func axisMask(step uint8) uint32 {
	if step >= MaxStep {
		return ^uint32(0)
	}
	return (uint32(1) << uint(step)) - 1
}

// Interleave places bit i of lat at position 2*i and bit i of long at
// position 2*i+1, for i < step. Bits of lat and long at or above step are
// ignored.
func Interleave(lat, long uint32, step uint8) uint64 {
	m := axisMask(step)
	return interleave64(lat&m, long&m)
}

// Deinterleave is the inverse of Interleave. Bits at or above 2*step are
// ignored.
func Deinterleave(bits uint64, step uint8) (lat uint32, long uint32) {
	return deinterleave64(bits & stepMask(step))
}

// interleave64 puts the bits of xlo in the even positions and the bits of
// ylo in the odd ones.
func interleave64(xlo uint32, ylo uint32) uint64 {
	var x, y uint64 = uint64(xlo), uint64(ylo)
	x = (x | x<<s[5]) & b[4]
	y = (y | y<<s[5]) & b[4]

	x = (x | x<<s[4]) & b[3]
	y = (y | y<<s[4]) & b[3]

	x = (x | x<<s[3]) & b[2]
	y = (y | y<<s[3]) & b[2]

	x = (x | x<<s[2]) & b[1]
	y = (y | y<<s[2]) & b[1]

	x = (x | x<<s[1]) & b[0]
	y = (y | y<<s[1]) & b[0]

	return x | (y << 1)
}

// derived from http://stackoverflow.com/questions/4909263
func deinterleave64(interleaved uint64) (uint32, uint32) {
	x, y := interleaved, interleaved>>1

	x = (x | (x >> s[0])) & b[0]
	y = (y | (y >> s[0])) & b[0]

	x = (x | (x >> s[1])) & b[1]
	y = (y | (y >> s[1])) & b[1]

	x = (x | (x >> s[2])) & b[2]
	y = (y | (y >> s[2])) & b[2]

	x = (x | (x >> s[3])) & b[3]
	y = (y | (y >> s[3])) & b[3]

	x = (x | (x >> s[4])) & b[4]
	y = (y | (y >> s[4])) & b[4]

	x = (x | (x >> s[5])) & b[5]
	y = (y | (y >> s[5])) & b[5]

	return uint32(x), uint32(y)
}
