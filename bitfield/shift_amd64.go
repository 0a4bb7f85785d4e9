//go:build amd64 && !purego

package bitfield

// Hand-written kernels in shift_amd64.s. Contracts match the portable forms:
// bit and bits below the word width (bits == W allowed for extract when
// bit == 0); the extract kernels are branch-free, handling bits == 0 through
// BZHI's zero-width mask.

//go:noescape
func shrdAsm32(low, high uint32, bits uint) uint32

//go:noescape
func shrdAsm64(low, high uint64, bits uint) uint64

//go:noescape
func extractAsm32(w0, w1 uint32, bit, bits uint) uint32

//go:noescape
func extractAsm64(w0, w1 uint64, bit, bits uint) uint64
