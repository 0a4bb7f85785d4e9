// Package bitfield implements a low-level codec for integer fields packed
// contiguously into an array of fixed-width machine words.
//
// Fields are arbitrary sub-word runs of bits, least-significant-bit first,
// with no embedded schema, length prefix, or self-description: the caller
// supplies every field width per call. The package provides the double-word
// shift primitive, single-field extract/set over a two-word window, and
// streaming extractor/writer cursors that walk an unbounded bitstream with
// O(1) state. It is the substrate for compact binary record formats that
// pack fixed-width columns tighter than byte boundaries.
//
// Basic usage:
//
//	words := make([]uint64, n+bitfield.Padding)
//
//	w := bitfield.NewWriter(words)
//	w.Write(id, 17)
//	w.Write(flags, 3)
//
//	x := bitfield.NewExtractor(words)
//	id := x.Uint(17)
//	flags := x.Uint(3)
//
// No operation allocates, blocks, or returns an error. Contract violations
// (field width above the word width on the two-word path, missing padding
// word, values with bits set above the field width) are caller defects; see
// the documentation of the individual operations.
package bitfield

import "unsafe"

// Word is a constraint for the fixed-width unsigned integer types that can
// back a packed bitstream.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// SignedInts is a constraint for signed integer destination types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer destination types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer destination types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Padding is the number of trailing padding words that must follow the last
// word holding real data in a backing array. Readers fetch the current and
// next word unconditionally, so a stream occupying n words needs an array of
// at least n+Padding words. Writers need the padding word only if a write may
// straddle past the final real word.
const Padding = 1

// wordBits returns the width of T in bits.
func wordBits[T Word]() uint {
	var dummy T
	return uint(unsafe.Sizeof(dummy)) * 8
}
