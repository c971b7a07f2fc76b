package leb128

import "math/bits"

const (
	// ContinuationBit is set on every byte of an encoded value except the last.
	ContinuationBit = 1 << 7
	// SignBit is the sign of a signed value, read from its last byte.
	SignBit = 1 << 6

	// MaxLen is the maximum length of an encoded 64 bit value.
	MaxLen = 10
)

func lowBitsOfByte(b byte) byte {
	return b &^ ContinuationBit
}

func lowBitsOfUint64(v uint64) byte {
	return lowBitsOfByte(byte(v))
}

// SizeUnsigned returns the number of bytes EncodeUnsigned writes for v.
func SizeUnsigned(v uint64) int {
	n := (bits.Len64(v) + 6) / 7
	if n == 0 {
		return 1
	}
	return n
}

// SizeSigned returns the number of bytes EncodeSigned writes for v.
func SizeSigned(v int64) int {
	// one extra bit for the sign of the last byte.
	n := bits.Len64(uint64(v^(v>>63))) + 1
	return (n + 6) / 7
}
