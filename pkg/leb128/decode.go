package leb128

import (
	"errors"
	"io"
	"math/bits"

	"github.com/go-delve/leb128/pkg/logflags"
)

// DecodeUnsigned decodes an unsigned Little Endian Base 128
// represented number.
func DecodeUnsigned(r io.Reader) (uint64, error) {
	result, _, err := DecodeUnsignedLen(r)
	return result, err
}

// DecodeSigned decodes a signed Little Endian Base 128
// represented number.
func DecodeSigned(r io.Reader) (int64, error) {
	result, _, err := DecodeSignedLen(r)
	return result, err
}

// DecodeUnsignedLen is like DecodeUnsigned but also returns the number of
// bytes consumed from r, including on error.
func DecodeUnsignedLen(r io.Reader) (uint64, uint32, error) {
	var (
		br     = byteReader(r)
		result uint64
		shift  uint
		length uint32
	)

	for {
		b, err := readByte(br)
		if err != nil {
			return 0, length, decodeError(err, "unsigned", length, shift)
		}
		length++

		low := uint64(lowBitsOfByte(b))
		if uint(bits.LeadingZeros64(low)) < shift {
			return 0, length, decodeError(ErrOverflow, "unsigned", length, shift)
		}

		result |= low << shift

		// High order bit clear, last byte.
		if b&ContinuationBit == 0 {
			return result, length, nil
		}

		shift += 7
	}
}

// DecodeSignedLen is like DecodeSigned but also returns the number of
// bytes consumed from r, including on error.
func DecodeSignedLen(r io.Reader) (int64, uint32, error) {
	var (
		br     = byteReader(r)
		b      byte
		err    error
		result int64
		shift  uint
		length uint32
	)

	for {
		b, err = readByte(br)
		if err != nil {
			return 0, length, decodeError(err, "signed", length, shift)
		}
		length++

		low := lowBitsOfByte(b)

		// The bits a negative last byte leaves above the top of the
		// value are sign extension, measure the magnitude instead. Bit 63
		// must then be one of them.
		overflow := uint(bits.LeadingZeros64(uint64(low))) < shift
		if b&ContinuationBit == 0 && b&SignBit != 0 {
			overflow = uint(bits.LeadingZeros64(uint64(low^0x7f))) <= shift
		}
		if overflow {
			return 0, length, decodeError(ErrOverflow, "signed", length, shift)
		}

		result |= int64(low) << shift
		shift += 7
		if b&ContinuationBit == 0 {
			break
		}
	}

	if shift < 64 && b&SignBit != 0 {
		result |= -1 << shift
	}

	return result, length, nil
}

func byteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return &singleByteReader{r: r}
}

// singleByteReader reads from r one byte at a time so that nothing past
// the end of the encoded value is consumed.
type singleByteReader struct {
	r   io.Reader
	buf [1]byte
}

func (s *singleByteReader) ReadByte() (byte, error) {
	n, err := s.r.Read(s.buf[:])
	if n == 1 {
		return s.buf[0], nil
	}
	if err == nil {
		// a zero length read is the end of the data, not a retry.
		err = io.EOF
	}
	return 0, err
}

func readByte(br io.ByteReader) (byte, error) {
	b, err := br.ReadByte()
	switch {
	case err == nil:
		return b, nil
	case errors.Is(err, io.EOF):
		return 0, ErrUnexpectedEndOfData
	default:
		return 0, &IOError{Err: err}
	}
}

func decodeError(err error, kind string, length uint32, shift uint) error {
	if logflags.LEB128() {
		logflags.LEB128Logger().WithError(err).WithFields(logflags.Fields{
			"kind":   kind,
			"length": length,
			"shift":  shift,
		}).Debug("could not decode value")
	}
	return err
}
