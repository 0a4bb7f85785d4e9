package bitfield

// Writer streams fixed-width fields into a packed word array in place,
// mirroring Extractor with an identically normalized cursor. Writes touch
// the word after the cursor only when a field straddles the word boundary,
// so the backing array needs its trailing Padding word only if a write may
// straddle past the final real word.
type Writer[T Word] struct {
	words  []T
	bitOfs uint
}

// NewWriter returns a Writer positioned at bit 0 of words.
func NewWriter[T Word](words []T) *Writer[T] {
	return &Writer[T]{words: words}
}

// Write stores the bits-wide field val at the cursor and advances past it.
// val must not have bits set at or above position bits; bits == 0 is a
// no-op that moves nothing.
func (w *Writer[T]) Write(val T, bits uint) {
	SetBitRange(w.words, val, w.bitOfs, bits)
	wb := wordBits[T]()
	w.bitOfs += bits
	w.words = w.words[w.bitOfs/wb:]
	w.bitOfs %= wb
}

// Advance skips the next bits positions, leaving their contents untouched.
func (w *Writer[T]) Advance(bits uint) {
	wb := wordBits[T]()
	w.bitOfs += bits
	w.words = w.words[w.bitOfs/wb:]
	w.bitOfs %= wb
}
