package bitfield

// Cursor composes a buffer strategy with a sub-word bit offset. It is the
// mechanism that makes unbounded sequential access possible with O(1) state:
// no field ever requires tracking more than one word position and one offset
// below the word width.
type Cursor[T Word, B Buffer[T]] struct {
	buf    B
	bitOfs uint
}

// NewCursor returns a Cursor over buf starting at bit offset 0.
func NewCursor[T Word, B Buffer[T]](buf B) *Cursor[T, B] {
	return &Cursor[T, B]{buf: buf}
}

// Extract reads the next bits-wide field and advances the cursor past it.
func (c *Cursor[T, B]) Extract(bits uint) T {
	v := ExtractBitRange(c.buf.Curr(), c.buf.Next(), c.bitOfs, bits)
	c.Advance(bits)
	return v
}

// Advance moves the cursor bits positions forward, folding whole-word
// overflow into buffer movement so the bit offset stays in [0, W).
func (c *Cursor[T, B]) Advance(bits uint) {
	w := wordBits[T]()
	c.bitOfs += bits
	c.buf.Advance(int(c.bitOfs / w))
	c.bitOfs %= w
}
