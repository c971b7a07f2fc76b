// Package leb128 provides encoders and decoders for the Little Endian Base 128 format.
// The Little Endian Base 128 format is defined in the DWARF v4 standard,
// section 7.6, page 161 and following.
//
// Values are written to any io.Writer and read from any io.Reader. Readers
// that also implement io.ByteReader (bytes.Buffer, bytes.Reader,
// bufio.Reader) are consumed one ReadByte at a time, every other reader
// one single byte Read at a time, so the stream is always left positioned
// right after the last byte of the decoded value:
//
//	var buf bytes.Buffer
//	leb128.EncodeSigned(&buf, -12345)
//	leb128.EncodeUnsigned(&buf, 98765)
//
//	s, _ := leb128.DecodeSigned(&buf)   // -12345
//	u, _ := leb128.DecodeUnsigned(&buf) // 98765
//
// Decoding fails with ErrUnexpectedEndOfData when the input ends before a
// byte with a clear continuation bit, with ErrOverflow when the value does
// not fit in 64 bits and with an *IOError when the reader itself fails.
package leb128
