// Copyright 2025 go-bitfield Authors
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

package bitfield

// This file provides the double-word shift primitive: a word-wide window
// taken at an arbitrary bit offset inside the 2W-bit value formed by two
// adjacent words. The portable emulation is the correctness reference; on
// amd64 the 32/64-bit kernels are rebound to SHRD assembly by dispatch init.

// Kernel bindings for the widths that can have hardware kernels.
// Overridden in dispatch init on accelerated targets.
var (
	shrd32 func(low, high uint32, bits uint) uint32 = shiftWindowEmulated[uint32]
	shrd64 func(low, high uint64, bits uint) uint64 = shiftWindowEmulated[uint64]
)

// ShiftWindow returns the W-bit value starting bits positions into the 2W-bit
// value formed by (high:low):
//
//	2W                W                    0
//	+-----------------+--------------------+
//	|      high       |       low          |
//	+--------+--------+-----------+--------+
//	         |      result        |<--bits--
//	         +--------------------+
//
// bits must be in [0, W); the result for bits >= W is unspecified.
func ShiftWindow[T Word](low, high T, bits uint) T {
	switch any(low).(type) {
	case uint32:
		return T(shrd32(uint32(low), uint32(high), bits))
	case uint64:
		return T(shrd64(uint64(low), uint64(high), bits))
	default:
		// 8- and 16-bit words have no double shift instruction anywhere.
		return shiftWindowEmulated(low, high, bits)
	}
}

// shiftWindowEmulated is the portable form of ShiftWindow and the oracle the
// hardware kernels are tested against. Go defines shifts by >= W as 0, so the
// formula is total on bits in [0, W), including bits == 0.
func shiftWindowEmulated[T Word](low, high T, bits uint) T {
	return low>>bits | high<<(wordBits[T]()-bits)
}
