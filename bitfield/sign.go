package bitfield

// SignExtend replicates the sign bit of a bits-wide field held in the low
// bits of raw into every higher-order bit, turning the field into a full
// two's-complement value. bits == 0 and bits == W return raw unchanged.
// Branch-free: the sign bit is folded in arithmetically, never tested.
func SignExtend[T Word](raw T, bits uint) T {
	sign := raw >> (bits - 1) & 1
	return raw | (0-sign)<<bits
}

// fixupExtract converts a raw extracted field to the destination kind D,
// sign-extending when D is a signed integer type. The kind switch resolves
// per instantiation; there is no branching on the field contents.
func fixupExtract[D Integers, T Word](raw T, bits uint) D {
	var d D
	switch any(d).(type) {
	case int8, int16, int32, int64:
		return D(SignExtend(uint64(raw), bits))
	default:
		return D(raw)
	}
}
