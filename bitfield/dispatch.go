package bitfield

import (
	"os"
	"strconv"
)

// AccelLevel identifies which implementation of the shift and extract
// kernels is bound for 32- and 64-bit words. 8- and 16-bit words always use
// the portable forms.
type AccelLevel int

const (
	// AccelPortable indicates the pure Go reference implementations.
	AccelPortable AccelLevel = iota

	// AccelSHRD indicates the amd64 double-precision shift kernel.
	AccelSHRD

	// AccelBMI2 indicates the amd64 SHRD kernel plus the fused
	// branch-free SHRD+BZHI extract kernel (Haswell+).
	AccelBMI2
)

// String returns a human-readable name for the acceleration level.
func (l AccelLevel) String() string {
	switch l {
	case AccelPortable:
		return "portable"
	case AccelSHRD:
		return "shrd"
	case AccelBMI2:
		return "bmi2"
	default:
		return "unknown"
	}
}

// currentAccel is the kernel binding for this runtime.
// Overridden by init() in dispatch_*.go files.
var currentAccel AccelLevel

// Acceleration returns the kernel binding in use.
func Acceleration() AccelLevel {
	return currentAccel
}

// Accelerated reports whether any hardware kernel is bound.
func Accelerated() bool {
	return currentAccel != AccelPortable
}

// NoAccelEnv checks if the BITFIELD_NOACCEL environment variable is set.
// When set, the portable implementations are used regardless of CPU
// capabilities. This is useful for testing and debugging.
func NoAccelEnv() bool {
	val := os.Getenv("BITFIELD_NOACCEL")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
