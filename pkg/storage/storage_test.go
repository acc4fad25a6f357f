package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barnettben/Datastream/pkg/datastream"
	"github.com/barnettben/Datastream/pkg/datastream/datastreamtest"
)

func openArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func parseDoc(t *testing.T, lineNumbers ...string) *datastream.Document {
	t.Helper()
	doc, err := datastream.ParseReader(context.Background(),
		strings.NewReader(datastreamtest.File(lineNumbers...)), datastream.Options{})
	require.NoError(t, err)
	return doc
}

func TestArchive_PutGet(t *testing.T) {
	a := openArchive(t)
	doc := parseDoc(t, "0042", "0043")

	entry, err := a.Put("DSMEMBER.DAT", doc)
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "DSMEMBER.DAT", entry.Source)
	assert.Equal(t, 2, entry.Summary.Animals)
	assert.WithinDuration(t, time.Now(), entry.StoredAt, 5*time.Second)

	got, err := a.Get(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.Summary(), got.Summary())
	assert.Equal(t, doc.Animals[1].Identity, got.Animals[1].Identity)
	assert.Equal(t, doc.Animals[0].Breed.Name, got.Animals[0].Breed.Name)
	assert.Equal(t, doc.KnownBreeds.Len(), got.KnownBreeds.Len())
	assert.Equal(t, "HF", got.Breed(1).Abbreviation)

	stored, err := a.Entry(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, stored.ID)
	assert.True(t, entry.StoredAt.Equal(stored.StoredAt))
}

func TestArchive_GetErrors(t *testing.T) {
	a := openArchive(t)

	_, err := a.Get(ksuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = a.Get("not-a-ksuid")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = a.Entry(ksuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestArchive_ListNewestFirst(t *testing.T) {
	a := openArchive(t)
	doc := parseDoc(t)

	entries, err := a.List()
	require.NoError(t, err)
	assert.Empty(t, entries)

	base := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	var ids []string
	for i, source := range []string{"a.dat", "b.dat", "c.dat"} {
		id, err := ksuid.NewRandomWithTime(base.Add(time.Duration(i) * time.Minute))
		require.NoError(t, err)
		entry, err := a.put(id, source, doc)
		require.NoError(t, err)
		ids = append(ids, entry.ID)
	}

	entries, err = a.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, ids[2], entries[0].ID)
	assert.Equal(t, "c.dat", entries[0].Source)
	assert.Equal(t, ids[0], entries[2].ID)
	assert.Equal(t, base, entries[2].StoredAt)
}

func TestArchive_Delete(t *testing.T) {
	a := openArchive(t)
	entry, err := a.Put("x.dat", parseDoc(t))
	require.NoError(t, err)

	require.NoError(t, a.Delete(entry.ID))

	_, err = a.Get(entry.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, a.Delete(entry.ID), ErrNotFound)
	assert.ErrorIs(t, a.Delete("??"), ErrInvalidID)

	entries, err := a.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestArchive_Reopen(t *testing.T) {
	dir := t.TempDir()
	a, err := Open(dir)
	require.NoError(t, err)
	entry, err := a.Put("x.dat", parseDoc(t))
	require.NoError(t, err)
	require.NoError(t, a.Close())

	a, err = Open(dir)
	require.NoError(t, err)
	defer a.Close()

	doc, err := a.Get(entry.ID)
	require.NoError(t, err)
	assert.Len(t, doc.Animals, 1)
}
