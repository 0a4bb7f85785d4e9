package bitfield

import (
	"math/rand"
	"testing"
)

func TestShiftWindowEmulated(t *testing.T) {
	t.Run("uint16", func(t *testing.T) {
		tests := []struct {
			name      string
			low, high uint16
			bits      uint
			want      uint16
		}{
			{
				name: "zero_shift_is_low",
				low:  0xABCD, high: 0x1234, bits: 0,
				want: 0xABCD,
			},
			{
				name: "nibble",
				low:  0xABCD, high: 0x1234, bits: 4,
				want: 0x4ABC,
			},
			{
				name: "byte",
				low:  0xABCD, high: 0x1234, bits: 8,
				want: 0x34AB,
			},
			{
				name: "almost_word",
				low:  0xABCD, high: 0x1234, bits: 15,
				want: 0x2469, // low bit 15 plus high bits 14..0
			},
			{
				name: "zero_words",
				low:  0, high: 0, bits: 7,
				want: 0,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got := shiftWindowEmulated(tt.low, tt.high, tt.bits)
				if got != tt.want {
					t.Errorf("shiftWindowEmulated(%#x, %#x, %d) = %#x, want %#x",
						tt.low, tt.high, tt.bits, got, tt.want)
				}
			})
		}
	})

	t.Run("uint8_exhaustive_against_wide", func(t *testing.T) {
		// Compute the expected window in a 16-bit value: (high:low) >> bits.
		for low := 0; low < 256; low++ {
			for high := 0; high < 256; high++ {
				for bits := uint(0); bits < 8; bits++ {
					wide := uint16(low) | uint16(high)<<8
					want := uint8(wide >> bits)
					got := shiftWindowEmulated(uint8(low), uint8(high), bits)
					if got != want {
						t.Fatalf("shiftWindowEmulated(%#x, %#x, %d) = %#x, want %#x",
							low, high, bits, got, want)
					}
				}
			}
		}
	})

	t.Run("uint32_against_wide", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 10000; i++ {
			low, high := rng.Uint32(), rng.Uint32()
			bits := uint(rng.Intn(32))
			wide := uint64(low) | uint64(high)<<32
			want := uint32(wide >> bits)
			got := shiftWindowEmulated(low, high, bits)
			if got != want {
				t.Fatalf("shiftWindowEmulated(%#x, %#x, %d) = %#x, want %#x",
					low, high, bits, got, want)
			}
		}
	})
}

// TestShiftWindowMatchesEmulated pins the dispatched kernels to the portable
// oracle. On amd64 without the purego tag this exercises the SHRD assembly.
func TestShiftWindowMatchesEmulated(t *testing.T) {
	t.Logf("acceleration: %s", Acceleration())

	t.Run("uint32", func(t *testing.T) {
		rng := rand.New(rand.NewSource(2))
		for i := 0; i < 100000; i++ {
			low, high := rng.Uint32(), rng.Uint32()
			bits := uint(rng.Intn(32))
			want := shiftWindowEmulated(low, high, bits)
			got := ShiftWindow(low, high, bits)
			if got != want {
				t.Fatalf("ShiftWindow(%#x, %#x, %d) = %#x, emulated %#x",
					low, high, bits, got, want)
			}
		}
	})

	t.Run("uint64", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		for i := 0; i < 100000; i++ {
			low, high := rng.Uint64(), rng.Uint64()
			bits := uint(rng.Intn(64))
			want := shiftWindowEmulated(low, high, bits)
			got := ShiftWindow(low, high, bits)
			if got != want {
				t.Fatalf("ShiftWindow(%#x, %#x, %d) = %#x, emulated %#x",
					low, high, bits, got, want)
			}
		}
	})

	t.Run("uint64_boundaries", func(t *testing.T) {
		words := []uint64{0, 1, 0x8000000000000000, ^uint64(0), 0x5555555555555555, 0xAAAAAAAAAAAAAAAA}
		for _, low := range words {
			for _, high := range words {
				for bits := uint(0); bits < 64; bits++ {
					want := shiftWindowEmulated(low, high, bits)
					got := ShiftWindow(low, high, bits)
					if got != want {
						t.Fatalf("ShiftWindow(%#x, %#x, %d) = %#x, emulated %#x",
							low, high, bits, got, want)
					}
				}
			}
		}
	})

	t.Run("uint8_and_uint16_use_emulation", func(t *testing.T) {
		for bits := uint(0); bits < 8; bits++ {
			if got, want := ShiftWindow(uint8(0xCD), uint8(0x12), bits), shiftWindowEmulated(uint8(0xCD), uint8(0x12), bits); got != want {
				t.Fatalf("uint8 bits=%d: got %#x, want %#x", bits, got, want)
			}
		}
		for bits := uint(0); bits < 16; bits++ {
			if got, want := ShiftWindow(uint16(0xABCD), uint16(0x1234), bits), shiftWindowEmulated(uint16(0xABCD), uint16(0x1234), bits); got != want {
				t.Fatalf("uint16 bits=%d: got %#x, want %#x", bits, got, want)
			}
		}
	})
}

func BenchmarkShiftWindow64(b *testing.B) {
	var sink uint64
	for i := 0; i < b.N; i++ {
		sink += ShiftWindow(uint64(i), uint64(i)*3, uint(i)&63)
	}
	_ = sink
}

func BenchmarkShiftWindowEmulated64(b *testing.B) {
	var sink uint64
	for i := 0; i < b.N; i++ {
		sink += shiftWindowEmulated(uint64(i), uint64(i)*3, uint(i)&63)
	}
	_ = sink
}
