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

// Single-field extraction and insertion over a two-word window. These are the
// random-access primitives; for streaming use Extractor and Writer, which keep
// a normalized (word index, bit offset) cursor across calls.

// Kernel bindings for the widths that can have hardware kernels.
// Overridden in dispatch init when the CPU supports BMI2.
var (
	extract32 func(w0, w1 uint32, bit, bits uint) uint32 = extractBitRangePortable[uint32]
	extract64 func(w0, w1 uint64, bit, bits uint) uint64 = extractBitRangePortable[uint64]
)

// ExtractBitRange returns the bits-wide unsigned field starting at bit within
// the 2W-bit window formed by (w1:w0), right-justified with every bit at
// position >= bits cleared. bits == 0 yields 0 regardless of the window
// contents. bit must be in [0, W); bits must be in [0, W), except that
// bits == W is permitted when bit == 0 (the single-word fast path).
func ExtractBitRange[T Word](w0, w1 T, bit, bits uint) T {
	switch any(w0).(type) {
	case uint32:
		return T(extract32(uint32(w0), uint32(w1), bit, bits))
	case uint64:
		return T(extract64(uint64(w0), uint64(w1), bit, bits))
	default:
		return extractBitRangePortable(w0, w1, bit, bits)
	}
}

// extractBitRangePortable is the reference form of ExtractBitRange.
func extractBitRangePortable[T Word](w0, w1 T, bit, bits uint) T {
	if bits == 0 {
		// Masking alone cannot produce 0 here: a bits-1 mask built from a
		// zero-width field would be 0 only after the explicit check.
		return 0
	}
	if bit+bits <= wordBits[T]() {
		return w0 >> bit & (T(1)<<bits - 1)
	}
	return ShiftWindow(w0, w1, bit) & (T(1)<<bits - 1)
}

// ExtractAt reads the bits-wide field starting at absolute bit position pos
// in words. It reads the word after the one holding pos unconditionally, so
// words needs its trailing padding word even for non-straddling fields.
func ExtractAt[T Word](words []T, pos uint64, bits uint) T {
	w := uint64(wordBits[T]())
	i := pos / w
	return ExtractBitRange(words[i], words[i+1], uint(pos%w), bits)
}

// SetBits returns in with the bits-wide field at position bit replaced by
// val. val must not have bits set at or above position bits, and the field
// must fit entirely within the word (bit+bits <= W).
func SetBits[T Word](in, val T, bit, bits uint) T {
	mask := (T(1)<<bits - 1) << bit
	return in&^mask | val<<bit&mask
}

// SetBitRange writes the bits-wide field val into p at position bit without
// disturbing any bit outside the field, splitting across p[0] and p[1] when
// the field straddles the word boundary. p[1] is touched only in the
// straddling case. bits == 0 neither reads nor writes. val must not have
// bits set at or above position bits.
func SetBitRange[T Word](p []T, val T, bit, bits uint) {
	if bits == 0 {
		return
	}
	bits0 := bits
	if w := wordBits[T]() - bit; w < bits0 {
		bits0 = w
	}
	p[0] = SetBits(p[0], val, bit, bits0)
	if bits1 := bits - bits0; bits1 != 0 {
		p[1] = SetBits(p[1], val>>bits0, 0, bits1)
	}
}

// SetAt writes the bits-wide field val at absolute bit position pos in words.
func SetAt[T Word](words []T, val T, pos uint64, bits uint) {
	if bits == 0 {
		return
	}
	w := uint64(wordBits[T]())
	SetBitRange(words[pos/w:], val, uint(pos%w), bits)
}
