//go:build bench
// +build bench

package codec_test

import (
	"testing"

	"github.com/barnettben/Datastream/pkg/codec"
	"github.com/barnettben/Datastream/pkg/codec/codectest"
)

func BenchmarkRecordCodec_Decode(b *testing.B) {
	benchmarks := []struct {
		name string
		line string
	}{
		{"address", codectest.RealAddress},
		{"nmr details", codectest.RealNMRDetails},
		{"current lactation", codectest.Sample(codec.IDCurrentLactation)},
		{"calendar quarter", codectest.Sample(codec.IDWeighingCalendarQuarter)},
	}

	for _, strict := range []bool{false, true} {
		c := codec.NewRecordCodec()
		prefix := "default/"
		if strict {
			c = codec.NewStrictRecordCodec()
			prefix = "strict/"
		}
		for _, bm := range benchmarks {
			b.Run(prefix+bm.name, func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := c.Decode(bm.line); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkComputeChecksum(b *testing.B) {
	line := codectest.RealNMRDetails
	for i := 0; i < b.N; i++ {
		_ = codec.ComputeChecksum(line)
	}
}
