package stream

import (
	"context"

	"github.com/barnettben/Datastream/pkg/codec"
)

// Cursor puts a single slot of lookahead in front of a RecordSource.
// Peek returns the same result until Next consumes it; errors, including
// io.EOF, are held in the slot like records.
type Cursor struct {
	src    RecordSource
	full   bool
	record codec.Record
	err    error
}

// NewCursor creates a cursor over src
func NewCursor(src RecordSource) *Cursor {
	return &Cursor{src: src}
}

// Peek returns the next record without consuming it
func (c *Cursor) Peek(ctx context.Context) (codec.Record, error) {
	if !c.full {
		c.record, c.err = c.src.ReadNext(ctx)
		c.full = true
	}
	return c.record, c.err
}

// Next returns the peeked record if there is one, otherwise reads the next
// record from the source
func (c *Cursor) Next(ctx context.Context) (codec.Record, error) {
	if c.full {
		c.full = false
		rec, err := c.record, c.err
		c.record, c.err = nil, nil
		return rec, err
	}
	return c.src.ReadNext(ctx)
}
