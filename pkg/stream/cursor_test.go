package stream

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barnettben/Datastream/pkg/codec"
	"github.com/barnettben/Datastream/pkg/codec/codectest"
)

// countingSource records how many reads reach the underlying source
type countingSource struct {
	src   RecordSource
	reads int
}

func (c *countingSource) ReadNext(ctx context.Context) (codec.Record, error) {
	c.reads++
	return c.src.ReadNext(ctx)
}

func newCountingCursor(lines ...string) (*Cursor, *countingSource) {
	src := &countingSource{src: NewRecordReaderFrom(strings.NewReader(joinLines(lines...)), false)}
	return NewCursor(src), src
}

func TestCursor_PeekIsIdempotent(t *testing.T) {
	ctx := context.Background()
	cur, src := newCountingCursor(codectest.RealNMRDetails, codectest.RealAddress)

	first, err := cur.Peek(ctx)
	require.NoError(t, err)
	second, err := cur.Peek(ctx)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, src.reads)

	next, err := cur.Next(ctx)
	require.NoError(t, err)
	assert.Same(t, first, next)
	assert.Equal(t, 1, src.reads)

	rec, err := cur.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, codec.IDAddress3, rec.RecordHeader().ID)
	assert.Equal(t, 2, src.reads)

	_, err = cur.Peek(ctx)
	assert.ErrorIs(t, err, io.EOF)
	_, err = cur.Next(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestCursor_ErrorsAreHeldInSlot(t *testing.T) {
	ctx := context.Background()
	cur, src := newCountingCursor("ZZ"+strings.Repeat(" ", 74), codectest.RealAddress)

	_, err := cur.Peek(ctx)
	require.True(t, errors.Is(err, codec.ErrUnknownIdentifier))
	_, err = cur.Peek(ctx)
	require.True(t, errors.Is(err, codec.ErrUnknownIdentifier))
	assert.Equal(t, 1, src.reads)

	_, err = cur.Next(ctx)
	assert.ErrorIs(t, err, codec.ErrUnknownIdentifier)

	rec, err := cur.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, codec.IDAddress3, rec.RecordHeader().ID)
}

func TestCursor_NextWithoutPeek(t *testing.T) {
	ctx := context.Background()
	cur, src := newCountingCursor(codectest.RealNMRDetails, codectest.RealAddress, codectest.RealBreedDetails)

	var ids []codec.Identifier
	for {
		rec, err := cur.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		ids = append(ids, rec.RecordHeader().ID)
	}
	assert.Equal(t, []codec.Identifier{codec.IDNMRDetails, codec.IDAddress3, codec.IDBreedDetails1}, ids)
	assert.Equal(t, 4, src.reads)
}
