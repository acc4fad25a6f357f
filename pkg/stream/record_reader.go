package stream

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/barnettben/Datastream/pkg/codec"
)

// RecordReader provides sequential access to the records of a Datastream file
type RecordReader struct {
	file   *os.File
	lines  *LineSource
	codec  *codec.RecordCodec
	config ReaderConfig
}

// NewRecordReader opens the file named in config
func NewRecordReader(config ReaderConfig) (*RecordReader, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, err
	}

	r := NewRecordReaderFrom(file, config.Strict)
	r.file = file
	r.config = config
	return r, nil
}

// NewRecordReaderFrom creates a reader over an open stream. The caller keeps
// ownership of rd.
func NewRecordReaderFrom(rd io.Reader, strict bool) *RecordReader {
	c := codec.NewRecordCodec()
	if strict {
		c = codec.NewStrictRecordCodec()
	}
	return &RecordReader{
		lines:  NewLineSource(rd),
		codec:  c,
		config: ReaderConfig{Strict: strict},
	}
}

// ReadNext decodes the next line. It returns io.EOF at the end of the stream.
// Decode failures are *codec.Error values carrying the line number.
func (r *RecordReader) ReadNext(ctx context.Context) (codec.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	line, err := r.lines.Next()
	if err != nil {
		return nil, err
	}

	rec, err := r.codec.Decode(line)
	if err != nil {
		var cerr *codec.Error
		if errors.As(err, &cerr) {
			cerr.Line = r.lines.Line()
		}
		return nil, err
	}
	return rec, nil
}

// Line returns the 1-based line number of the last record read
func (r *RecordReader) Line() int {
	return r.lines.Line()
}

// Strict reports whether records are validated before decoding
func (r *RecordReader) Strict() bool {
	return r.config.Strict
}

// Iterator returns a streaming iterator for records
func (r *RecordReader) Iterator(ctx context.Context) RecordIterator {
	return &recordIterator{ctx: ctx, reader: r}
}

// Close closes the file if the reader opened it
func (r *RecordReader) Close() error {
	if r.file == nil {
		return nil
	}
	return r.file.Close()
}

// recordIterator implements RecordIterator for streaming access
type recordIterator struct {
	ctx    context.Context
	reader *RecordReader
	record codec.Record
	err    error
}

func (it *recordIterator) Next() bool {
	if it.err != nil {
		return false
	}
	it.record, it.err = it.reader.ReadNext(it.ctx)
	return it.err == nil
}

func (it *recordIterator) Record() codec.Record {
	return it.record
}

// Err returns the error that stopped iteration, or nil at a clean end of stream
func (it *recordIterator) Err() error {
	if errors.Is(it.err, io.EOF) {
		return nil
	}
	return it.err
}

func (it *recordIterator) Close() error {
	// The underlying reader is owned by the caller
	return nil
}
