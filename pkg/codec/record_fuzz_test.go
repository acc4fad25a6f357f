//go:build fuzz
// +build fuzz

package codec_test

import (
	"errors"
	"testing"

	"github.com/barnettben/Datastream/pkg/codec"
	"github.com/barnettben/Datastream/pkg/codec/codectest"
)

// FuzzRecordCodec_Decode checks that arbitrary input never panics and only
// fails with a codec error
func FuzzRecordCodec_Decode(f *testing.F) {
	c := codec.NewRecordCodec()

	f.Add(codectest.RealNMRDetails)
	f.Add(codectest.RealAddress)
	f.Add(codectest.RealBreedDetails)
	for _, id := range codec.Identifiers {
		f.Add(codectest.Sample(id))
	}

	f.Fuzz(func(t *testing.T, line string) {
		_, err := c.Decode(line)
		if err == nil {
			return
		}
		var cerr *codec.Error
		if !errors.As(err, &cerr) {
			t.Fatalf("Decode returned %T, want *codec.Error: %v", err, err)
		}
	})
}

// FuzzChecksum_SingleByteMutation checks that changing one character of the
// body always invalidates the checksum
func FuzzChecksum_SingleByteMutation(f *testing.F) {
	f.Add(uint8(0), uint8('X'))
	f.Add(uint8(40), uint8('0'))
	f.Add(uint8(70), uint8(' '))

	f.Fuzz(func(t *testing.T, pos, b uint8) {
		idx := int(pos) % codec.ChecksumOffset
		b &= 0x7f
		line := []byte(codectest.RealNMRDetails)
		if line[idx] == b {
			t.Skip("mutation is a no-op")
		}
		line[idx] = b
		if codec.ValidateChecksum(string(line)) {
			t.Fatalf("mutating byte %d to %q kept checksum valid", idx, b)
		}
	})
}
