package bitfield

import (
	"math/rand"
	"testing"
)

// TestCursorSequentialEquivalence checks that streaming N fields through a
// cursor equals extracting the same fields with direct two-word calls at the
// accumulated cumulative offsets, for both buffer strategies.
func TestCursorSequentialEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(10))

	// 512 words hold 32768 bits, more than 500 fields of at most 63 bits.
	words := make([]uint64, 512+Padding)
	for i := range words {
		words[i] = rng.Uint64()
	}

	widths := make([]uint, 500)
	for i := range widths {
		widths[i] = uint(rng.Intn(64)) // 0 widths included on purpose
	}

	t.Run("direct", func(t *testing.T) {
		c := NewCursor[uint64](NewDirectBuffer(words))
		pos := uint64(0)
		for i, bits := range widths {
			want := ExtractAt(words, pos, bits)
			got := c.Extract(bits)
			if got != want {
				t.Fatalf("field %d (pos %d, bits %d): cursor %#x, direct %#x", i, pos, bits, got, want)
			}
			pos += uint64(bits)
		}
	})

	t.Run("cached", func(t *testing.T) {
		c := NewCursor[uint64](NewCachedBuffer(words))
		pos := uint64(0)
		for i, bits := range widths {
			want := ExtractAt(words, pos, bits)
			got := c.Extract(bits)
			if got != want {
				t.Fatalf("field %d (pos %d, bits %d): cursor %#x, direct %#x", i, pos, bits, got, want)
			}
			pos += uint64(bits)
		}
	})
}

func TestCursorAdvanceNormalization(t *testing.T) {
	words := make([]uint8, 64+Padding)
	for i := range words {
		words[i] = uint8(i * 37)
	}

	c := NewCursor[uint8](NewCachedBuffer(words))
	pos := uint64(0)
	skips := []uint{0, 1, 7, 8, 9, 3, 21, 5, 2, 6}
	for _, s := range skips {
		c.Advance(s)
		pos += uint64(s)
		want := ExtractAt(words, pos, 5)
		got := ExtractBitRange(c.buf.Curr(), c.buf.Next(), c.bitOfs, 5)
		if got != want {
			t.Fatalf("after skip to pos %d: got %#x, want %#x", pos, got, want)
		}
		if c.bitOfs >= 8 {
			t.Fatalf("bit offset %d not normalized below the word width", c.bitOfs)
		}
	}
}
