package leb128_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-delve/leb128/pkg/leb128"
)

func Example() {
	var buf bytes.Buffer
	leb128.EncodeSigned(&buf, -12345)
	leb128.EncodeUnsigned(&buf, 98765)
	fmt.Printf("% x\n", buf.Bytes())

	s, _ := leb128.DecodeSigned(&buf)
	u, _ := leb128.DecodeUnsigned(&buf)
	fmt.Println(s, u)
	// Output:
	// c7 9f 7f cd 83 06
	// -12345 98765
}

func ExampleDecodeUnsigned() {
	_, err := leb128.DecodeUnsigned(bytes.NewReader([]byte{0x80}))
	fmt.Println(errors.Is(err, leb128.ErrUnexpectedEndOfData))
	// Output:
	// true
}

func ExampleAppendSigned() {
	fmt.Printf("% x\n", leb128.AppendSigned(nil, 127))
	fmt.Printf("% x\n", leb128.AppendSigned(nil, -128))
	// Output:
	// ff 00
	// 80 7f
}
