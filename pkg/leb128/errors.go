package leb128

import "errors"

var (
	// ErrUnexpectedEndOfData is returned when the input ends in the middle
	// of an encoded value.
	ErrUnexpectedEndOfData = errors.New("leb128: unexpected end of data while reading")
	// ErrOverflow is returned when the value being read does not fit in
	// 64 bits.
	ErrOverflow = errors.New("leb128: the number being read is larger than can be represented")
)

// IOError is returned when the underlying reader fails.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return "leb128: " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}
