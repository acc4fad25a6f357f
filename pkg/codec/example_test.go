package codec_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/barnettben/Datastream/pkg/codec"
)

// ExampleRecordCodec_Decode decodes the herd details record
func ExampleRecordCodec_Decode() {
	c := codec.NewRecordCodec()

	line := "H1,69,01,15,14,11,00,00,00,00,00,89000,01,FOR DEMO USE ONLY   ,880201,,03750"
	rec, err := c.Decode(line)
	if err != nil {
		log.Fatal(err)
	}

	h1 := rec.(*codec.NMRDetails)
	fmt.Printf("Identifier: %s\n", h1.ID)
	fmt.Printf("Prefix: %s\n", h1.HerdPrefix)
	fmt.Printf("Enrolled: %s\n", h1.EnrolDate.Format("2006-01-02"))
	fmt.Printf("Checksum valid: %v\n", h1.ChecksumIsValid)

	// Output:
	// Identifier: H1
	// Prefix: FOR DEMO USE ONLY
	// Enrolled: 1988-02-01
	// Checksum valid: true
}

// ExampleNewStrictRecordCodec shows how a corrupted line is rejected
func ExampleNewStrictRecordCodec() {
	line := "H4,                                   ,                               ,01234"

	rec, err := codec.NewRecordCodec().Decode(line)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Default codec, checksum valid: %v\n", rec.RecordHeader().ChecksumIsValid)

	_, err = codec.NewStrictRecordCodec().Decode(line)
	fmt.Printf("Strict codec rejects: %v\n", errors.Is(err, codec.ErrInvalidChecksum))

	// Output:
	// Default codec, checksum valid: false
	// Strict codec rejects: true
}

// ExampleComputeChecksum shows the checksum arithmetic
func ExampleComputeChecksum() {
	body := "H4,                                   ,                               ,"
	fmt.Println(codec.FormatChecksum(codec.ComputeChecksum(body)))

	// Output:
	// 02368
}
