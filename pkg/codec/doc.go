// Package codec decodes the records of a Datastream herd file.
//
// A Datastream file is a sequence of fixed width text records exchanged
// between milk recording organisations and farm software. The codec package
// turns one line into one typed record. Assembling records into herds,
// animals and lactations is the job of the datastream package.
//
// # Record Format
//
// Every record is exactly 76 ASCII characters:
//
//	[ID(2)][Content(69)][Checksum(5)]
//
// Fields:
//   - ID: two character identifier such as H1 or SX. The first character
//     names the section the record belongs to.
//   - Content: fields at fixed offsets. Real files separate fields with
//     commas but the decoder only relies on offsets.
//   - Checksum: five decimal digits at offset 71.
//
// Numeric fields may carry an implied decimal point. A field with a divisor
// of 10 stores 1234 for 123.4. Dates are written yyMMdd.
//
// # Checksum
//
// The checksum is the sum of the byte values of characters 0 to 70. It is
// compared for exact equality with the trailing five digits; there is no
// modulus.
//
// # Usage
//
// Decoding one line:
//
//	c := codec.NewRecordCodec()
//
//	rec, err := c.Decode(line)
//	if err != nil {
//	    return err
//	}
//
//	switch r := rec.(type) {
//	case *codec.NMRDetails:
//	    fmt.Println(r.HerdPrefix)
//	case *codec.AddressRecord:
//	    fmt.Println(r.Content)
//	}
//
// The default codec decodes lines with a bad checksum and reports it through
// Header.ChecksumIsValid. A strict codec rejects them with ErrInvalidChecksum:
//
//	c := codec.NewStrictRecordCodec()
//	_, err := c.Decode(line)
//	if errors.Is(err, codec.ErrInvalidChecksum) {
//	    // handle corruption
//	}
//
// # Errors
//
// Every failure is an *Error carrying an ErrorCode. Use errors.Is with the
// Err variables to test the kind, or errors.As to reach the context text and
// line number.
//
// # Thread Safety
//
// RecordCodec holds no mutable state and is safe for concurrent use.
package codec
