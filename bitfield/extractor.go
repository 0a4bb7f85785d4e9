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

// Extractor streams fixed-width fields out of a packed word array. It is
// built for the sequential case, amortizing memory traffic through a cached
// buffer; for random access use ExtractBitRange or ExtractAt directly.
//
// An Extractor holds no ownership over the backing array, which must outlive
// it and carry its trailing Padding word. There is no end-of-stream
// detection: exhaustion is entirely the caller's responsibility.
type Extractor[T Word] struct {
	cur Cursor[T, *CachedBuffer[T]]
}

// NewExtractor returns an Extractor positioned at bit 0 of words.
func NewExtractor[T Word](words []T) *Extractor[T] {
	return &Extractor[T]{cur: Cursor[T, *CachedBuffer[T]]{buf: NewCachedBuffer(words)}}
}

// Uint reads the next bits-wide field as an unsigned value, zero-extended.
func (x *Extractor[T]) Uint(bits uint) T {
	return x.cur.Extract(bits)
}

// Advance skips the next bits positions without decoding them.
func (x *Extractor[T]) Advance(bits uint) {
	x.cur.Advance(bits)
}

// ExtractSlice fills dst with consecutive bits-wide fields, left to right.
func (x *Extractor[T]) ExtractSlice(dst []T, bits uint) {
	for i := range dst {
		dst[i] = x.cur.Extract(bits)
	}
}

// Extract reads the next bits-wide field into destination kind D: unsigned
// destinations receive the zero-extended field, signed destinations the
// two's-complement sign-extended field.
func Extract[D Integers, T Word](x *Extractor[T], bits uint) D {
	return fixupExtract[D](x.cur.Extract(bits), bits)
}

// Extract2 reads two fields strictly left to right, each advancing the
// cursor in turn. It is a call-site convenience only: semantically identical
// to the equivalent sequence of single-field Extract calls.
func Extract2[D1, D2 Integers, T Word](x *Extractor[T], dst1 *D1, bits1 uint, dst2 *D2, bits2 uint) {
	*dst1 = Extract[D1](x, bits1)
	*dst2 = Extract[D2](x, bits2)
}

// Extract3 reads three fields strictly left to right.
func Extract3[D1, D2, D3 Integers, T Word](x *Extractor[T], dst1 *D1, bits1 uint, dst2 *D2, bits2 uint, dst3 *D3, bits3 uint) {
	*dst1 = Extract[D1](x, bits1)
	*dst2 = Extract[D2](x, bits2)
	*dst3 = Extract[D3](x, bits3)
}

// Extract4 reads four fields strictly left to right.
func Extract4[D1, D2, D3, D4 Integers, T Word](x *Extractor[T], dst1 *D1, bits1 uint, dst2 *D2, bits2 uint, dst3 *D3, bits3 uint, dst4 *D4, bits4 uint) {
	*dst1 = Extract[D1](x, bits1)
	*dst2 = Extract[D2](x, bits2)
	*dst3 = Extract[D3](x, bits3)
	*dst4 = Extract[D4](x, bits4)
}
