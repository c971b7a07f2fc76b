package leb128

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"testing"

	yaml "gopkg.in/yaml.v2"
)

type vectors struct {
	Unsigned []struct {
		Value uint64 `yaml:"value"`
		Bytes []int  `yaml:"bytes"`
	} `yaml:"unsigned"`
	Signed []struct {
		Value int64 `yaml:"value"`
		Bytes []int `yaml:"bytes"`
	} `yaml:"signed"`
}

func loadVectors(t *testing.T) *vectors {
	t.Helper()
	data, err := ioutil.ReadFile(filepath.Join("testdata", "vectors.yaml"))
	if err != nil {
		t.Fatalf("could not read test vectors: %v", err)
	}
	var v vectors
	if err := yaml.Unmarshal(data, &v); err != nil {
		t.Fatalf("could not parse test vectors: %v", err)
	}
	if len(v.Unsigned) == 0 || len(v.Signed) == 0 {
		t.Fatal("no test vectors")
	}
	return &v
}

func toBytes(in []int) []byte {
	out := make([]byte, len(in))
	for i := range in {
		out[i] = byte(in[i])
	}
	return out
}

func TestUnsignedVectors(t *testing.T) {
	for _, tc := range loadVectors(t).Unsigned {
		enc := toBytes(tc.Bytes)
		var buf bytes.Buffer
		if _, err := EncodeUnsigned(&buf, tc.Value); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(buf.Bytes(), enc) {
			t.Errorf("encode %d: got %x, expected %x", tc.Value, buf.Bytes(), enc)
		}
		out, err := DecodeUnsigned(bytes.NewReader(enc))
		if err != nil || out != tc.Value {
			t.Errorf("decode %x: got %d %v, expected %d", enc, out, err, tc.Value)
		}
	}
}

func TestSignedVectors(t *testing.T) {
	for _, tc := range loadVectors(t).Signed {
		enc := toBytes(tc.Bytes)
		var buf bytes.Buffer
		if _, err := EncodeSigned(&buf, tc.Value); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(buf.Bytes(), enc) {
			t.Errorf("encode %d: got %x, expected %x", tc.Value, buf.Bytes(), enc)
		}
		out, err := DecodeSigned(bytes.NewReader(enc))
		if err != nil || out != tc.Value {
			t.Errorf("decode %x: got %d %v, expected %d", enc, out, err, tc.Value)
		}
	}
}
