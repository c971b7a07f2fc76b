package leb128

import "io"

// AppendUnsigned appends the unsigned Little Endian Base 128 encoding of
// x to dst and returns the extended buffer.
func AppendUnsigned(dst []byte, x uint64) []byte {
	for {
		b := lowBitsOfUint64(x)
		x >>= 7
		if x != 0 {
			b |= ContinuationBit
		}
		dst = append(dst, b)
		if x == 0 {
			return dst
		}
	}
}

// AppendSigned appends the signed Little Endian Base 128 encoding of x to
// dst and returns the extended buffer.
func AppendSigned(dst []byte, x int64) []byte {
	for {
		b := lowBitsOfUint64(uint64(x))
		x >>= 7

		signb := b & SignBit

		if (x == 0 && signb == 0) || (x == -1 && signb != 0) {
			return append(dst, b)
		}
		dst = append(dst, b|ContinuationBit)
	}
}

// EncodeUnsigned encodes x to the unsigned Little Endian Base 128 format
// into out. It returns the number of bytes written and any error returned
// by out.
func EncodeUnsigned(out io.Writer, x uint64) (int, error) {
	var buf [MaxLen]byte
	return write(out, AppendUnsigned(buf[:0], x))
}

// EncodeSigned encodes x to the signed Little Endian Base 128 format into
// out. It returns the number of bytes written and any error returned by
// out.
func EncodeSigned(out io.Writer, x int64) (int, error) {
	var buf [MaxLen]byte
	return write(out, AppendSigned(buf[:0], x))
}

func write(out io.Writer, p []byte) (int, error) {
	n, err := out.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}
