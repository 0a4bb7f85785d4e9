//go:build !amd64 || purego

package bitfield

// Non-amd64 targets keep the portable kernel bindings. arm64 has no
// double-precision shift instruction; EXTR could serve a future kernel.

// HasBMI2 returns false on non-amd64 targets (BMI2 is x86-specific).
func HasBMI2() bool {
	return false
}
