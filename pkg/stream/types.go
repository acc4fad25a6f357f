package stream

import (
	"context"

	"github.com/barnettben/Datastream/pkg/codec"
)

// ReaderConfig holds configuration for the record reader
type ReaderConfig struct {
	FilePath string // Path to the Datastream file
	Strict   bool   // Validate length and checksum before decoding
}

// RecordSource yields decoded records in file order. ReadNext returns
// io.EOF once the source is exhausted.
type RecordSource interface {
	ReadNext(ctx context.Context) (codec.Record, error)
}

// RecordIterator provides streaming access to records
type RecordIterator interface {
	Next() bool
	Record() codec.Record
	Err() error
	Close() error
}
